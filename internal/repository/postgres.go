package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sensory-map-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads places, addresses and reports from PostgreSQL/PostGIS.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindPlaceCandidates returns points of interest within radiusMeters of the coordinates, nearest first.
func (r *Repository) FindPlaceCandidates(ctx context.Context, lat, lon, radiusMeters float64) ([]models.PlaceCandidate, error) {
	sql := `
		SELECT
			name,
			category,
			relevance,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM places
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 25
	`

	rows, err := r.db.Query(ctx, sql, lat, lon, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute candidate query: %w", err)
	}
	defer rows.Close()

	candidates := []models.PlaceCandidate{}
	for rows.Next() {
		var c models.PlaceCandidate
		if err := rows.Scan(&c.Name, &c.Category, &c.Relevance, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan place candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return candidates, nil
}

// FindNearestAddress returns the closest address within radiusMeters, or nil if there is none.
func (r *Repository) FindNearestAddress(ctx context.Context, lat, lon, radiusMeters float64) (*models.Address, error) {
	sql := `
		SELECT
			id,
			region,
			locality,
			street,
			number,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM addresses
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var addr models.Address
	err := r.db.QueryRow(ctx, sql, lat, lon, radiusMeters).Scan(
		&addr.ID,
		&addr.Region,
		&addr.Locality,
		&addr.Street,
		&addr.Number,
		&addr.Latitude,
		&addr.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &addr, nil
}

// ListReportsSince returns reports created at or after since, oldest first.
func (r *Repository) ListReportsSince(ctx context.Context, since time.Time) ([]models.RawReport, error) {
	sql := `
		SELECT
			id::text,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude,
			noise,
			crowds,
			lighting,
			quiet_score,
			created_at,
			submitter,
			display_name,
			display_tier,
			confidence
		FROM reports
		WHERE created_at >= $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, sql, since)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute report query: %w", err)
	}
	defer rows.Close()

	reports := []models.RawReport{}
	for rows.Next() {
		var (
			rep  models.RawReport
			id   string
			tier *string
		)
		err := rows.Scan(
			&id,
			&rep.Latitude,
			&rep.Longitude,
			&rep.Noise,
			&rep.Crowds,
			&rep.Lighting,
			&rep.QuietScore,
			&rep.Timestamp,
			&rep.Submitter,
			&rep.DisplayName,
			&tier,
			&rep.Confidence,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan report: %w", err)
		}

		if rep.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("repository: invalid report id %q: %w", id, err)
		}
		if tier != nil {
			t, err := models.ParseTier(*tier)
			if err != nil {
				return nil, fmt.Errorf("repository: report %s: %w", id, err)
			}
			rep.DisplayTier = &t
		}

		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return reports, nil
}
