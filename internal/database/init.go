package database

import (
	"context"
	"fmt"

	"github.com/yourusername/homestretch/internal/config"
)

// schema holds the career archive DDL. Statements are idempotent so the
// daemon can bootstrap a fresh database on startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS careers (
		id UUID PRIMARY KEY,
		horse_name TEXT NOT NULL,
		speed INT NOT NULL,
		stamina INT NOT NULL,
		power INT NOT NULL,
		races_won INT NOT NULL,
		races_run INT NOT NULL,
		total_training INT NOT NULL,
		earnings NUMERIC(14,2) NOT NULL DEFAULT 0,
		completed_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS race_results (
		race_id UUID NOT NULL,
		career_id UUID NOT NULL REFERENCES careers(id) ON DELETE CASCADE,
		race_name TEXT NOT NULL,
		turn INT NOT NULL,
		horse_id UUID NOT NULL,
		horse_name TEXT NOT NULL,
		rank INT NOT NULL,
		performance DOUBLE PRECISION NOT NULL,
		finish_time DOUBLE PRECISION NOT NULL,
		prize NUMERIC(14,2) NOT NULL DEFAULT 0,
		resolved_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (race_id, horse_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_race_results_career ON race_results (career_id, turn)`,
}

// Initialize creates a database connection pool and ensures the archive
// schema exists
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply archive schema: %w", err)
		}
	}

	return db, nil
}
