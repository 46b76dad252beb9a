package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sensory-map-api/docs"
	"sensory-map-api/internal/config"
	"sensory-map-api/internal/handler"
	"sensory-map-api/internal/privacy"
	"sensory-map-api/internal/projection"
	"sensory-map-api/internal/repository"
	"sensory-map-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Sensory Map API
//	@version		1.0
//	@description	Privacy-tiered location resolution and sensory report pins.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	settings, err := privacy.NewSettings(config.Privacy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid privacy settings")
	}

	// Initialize layers
	repo := repository.NewRepository(conn)
	snapshots := projection.NewSnapshotStore()

	resolveService := service.NewResolveService(repo, settings, service.ResolveOptions{
		StreetRadiusMeters: config.Resolve.StreetRadiusMeters,
		CandidateCacheTTL:  config.Resolve.CandidateCacheTTL,
	})
	pinService := service.NewPinService(snapshots)
	refresher := service.NewRefresher(repo, snapshots, config.Pins.Lookback, config.Pins.DebounceDelay)
	go refresher.Run(ctx, config.Pins.RefreshInterval)

	resolveHandler := handler.NewResolveHandler(resolveService)
	pinsHandler := handler.NewPinsHandler(pinService, handler.PinDefaults{
		Cluster: config.Pins.ClusterByDefault,
		MaxPins: config.Pins.MaxPins,
	})
	settingsHandler := handler.NewSettingsHandler(settings)
	reportsHandler := handler.NewReportsHandler(refresher)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"generation": snapshots.Load().Generation,
		})
	})

	r.GET("/resolve", resolveHandler.Resolve)
	r.GET("/pins", pinsHandler.Pins)
	r.GET("/settings/privacy", settingsHandler.Get)
	r.PUT("/settings/privacy", settingsHandler.Update)
	r.POST("/reports/changed", reportsHandler.Changed)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{Addr: config.ServerAddress, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
