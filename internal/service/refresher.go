package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sensory-map-api/internal/models"
	"sensory-map-api/internal/projection"

	"github.com/rs/zerolog/log"
)

// ReportRepository interface for dependency injection
type ReportRepository interface {
	ListReportsSince(ctx context.Context, since time.Time) ([]models.RawReport, error)
}

// ReportPublisher receives each freshly loaded report set.
type ReportPublisher interface {
	Replace(reports []models.RawReport) *projection.Snapshot
}

// Refresher polls persisted reports and publishes them as a new snapshot
// generation. Change notifications are debounced into a single reload.
// Loads never overlap, so generations are published in query order.
type Refresher struct {
	mu        sync.Mutex
	repo      ReportRepository
	publisher ReportPublisher
	lookback  time.Duration
	timeout   time.Duration
	debouncer *projection.Debouncer
	now       func() time.Time
}

// NewRefresher creates a refresher loading reports newer than lookback.
func NewRefresher(repo ReportRepository, publisher ReportPublisher, lookback, debounce time.Duration) *Refresher {
	return &Refresher{
		repo:      repo,
		publisher: publisher,
		lookback:  lookback,
		timeout:   30 * time.Second,
		debouncer: projection.NewDebouncer(debounce),
		now:       time.Now,
	}
}

// Refresh loads reports once and publishes them.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := r.now().Add(-r.lookback)
	reports, err := r.repo.ListReportsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("service: failed to load reports: %w", err)
	}

	snap := r.publisher.Replace(reports)
	log.Debug().
		Uint64("generation", snap.Generation).
		Int("reports", len(snap.Reports)).
		Msg("report snapshot refreshed")
	return nil
}

// Run refreshes immediately and then every interval until ctx is done.
func (r *Refresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer r.debouncer.Cancel()

	for {
		if err := r.refreshWithTimeout(ctx); err != nil {
			log.Error().Err(err).Msg("report refresh failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Notify signals that persisted reports changed. Bursts collapse into one refresh.
func (r *Refresher) Notify() {
	r.debouncer.Schedule(func() {
		if err := r.refreshWithTimeout(context.Background()); err != nil {
			log.Error().Err(err).Msg("report refresh after change notification failed")
		}
	})
}

func (r *Refresher) refreshWithTimeout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.Refresh(ctx)
}
