package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/homestretch/internal/database"
	"github.com/yourusername/homestretch/internal/models"
)

const errScanCareer = "failed to scan career: %w"

// PostgresCareerRepository implements CareerRepository for PostgreSQL
type PostgresCareerRepository struct {
	db *database.DB
}

// NewPostgresCareerRepository creates a new career archive repository
func NewPostgresCareerRepository(db *database.DB) CareerRepository {
	return &PostgresCareerRepository{db: db}
}

// Create inserts a new archived career
func (r *PostgresCareerRepository) Create(ctx context.Context, record *models.CareerRecord) error {
	query := `
		INSERT INTO careers (id, horse_name, speed, stamina, power, races_won, races_run,
		                     total_training, earnings, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		record.ID, record.HorseName,
		record.FinalStats.Speed, record.FinalStats.Stamina, record.FinalStats.Power,
		record.RacesWon, record.RacesRun, record.TotalTraining,
		record.Earnings, record.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create career record: %w", err)
	}

	return nil
}

// GetByID retrieves an archived career by ID
func (r *PostgresCareerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CareerRecord, error) {
	query := `
		SELECT id, horse_name, speed, stamina, power, races_won, races_run,
		       total_training, earnings, completed_at, created_at
		FROM careers WHERE id = $1
	`

	record := &models.CareerRecord{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&record.ID, &record.HorseName,
		&record.FinalStats.Speed, &record.FinalStats.Stamina, &record.FinalStats.Power,
		&record.RacesWon, &record.RacesRun, &record.TotalTraining,
		&record.Earnings, &record.CompletedAt, &record.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get career record: %w", err)
	}

	return record, nil
}

// GetRecent retrieves the most recently completed careers
func (r *PostgresCareerRepository) GetRecent(ctx context.Context, limit int) ([]*models.CareerRecord, error) {
	query := `
		SELECT id, horse_name, speed, stamina, power, races_won, races_run,
		       total_training, earnings, completed_at, created_at
		FROM careers
		ORDER BY completed_at DESC
		LIMIT $1
	`

	return r.queryRecords(ctx, query, limit)
}

// GetTopByWins retrieves careers ranked by race wins, earnings breaking ties
func (r *PostgresCareerRepository) GetTopByWins(ctx context.Context, limit int) ([]*models.CareerRecord, error) {
	query := `
		SELECT id, horse_name, speed, stamina, power, races_won, races_run,
		       total_training, earnings, completed_at, created_at
		FROM careers
		ORDER BY races_won DESC, earnings DESC
		LIMIT $1
	`

	return r.queryRecords(ctx, query, limit)
}

// Delete removes an archived career and its race results
func (r *PostgresCareerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM careers WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete career record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *PostgresCareerRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*models.CareerRecord, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query career records: %w", err)
	}
	defer rows.Close()

	var records []*models.CareerRecord
	for rows.Next() {
		record := &models.CareerRecord{}
		err := rows.Scan(
			&record.ID, &record.HorseName,
			&record.FinalStats.Speed, &record.FinalStats.Stamina, &record.FinalStats.Power,
			&record.RacesWon, &record.RacesRun, &record.TotalTraining,
			&record.Earnings, &record.CompletedAt, &record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanCareer, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
