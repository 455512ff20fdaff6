package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/homestretch/internal/database"
	"github.com/yourusername/homestretch/internal/models"
)

const errScanPlacement = "failed to scan placement: %w"

// PostgresRaceResultRepository implements RaceResultRepository for PostgreSQL
type PostgresRaceResultRepository struct {
	db *database.DB
}

// NewPostgresRaceResultRepository creates a new race result repository
func NewPostgresRaceResultRepository(db *database.DB) RaceResultRepository {
	return &PostgresRaceResultRepository{db: db}
}

// InsertBatch archives all placements for the given results using a bulk COPY
func (r *PostgresRaceResultRepository) InsertBatch(ctx context.Context, careerID uuid.UUID, results []*models.RaceResult) error {
	if len(results) == 0 {
		return nil
	}

	columns := []string{
		"race_id", "career_id", "race_name", "turn",
		"horse_id", "horse_name", "rank", "performance", "finish_time", "prize", "resolved_at",
	}

	var copyFromSource [][]interface{}
	for _, res := range results {
		for _, p := range res.Placements {
			copyFromSource = append(copyFromSource, []interface{}{
				res.RaceID, careerID, res.RaceName, res.Turn,
				p.HorseID, p.HorseName, p.Rank, p.Performance, p.Time, p.Prize, res.ResolvedAt,
			})
		}
	}

	copyCount, err := r.db.GetPool().CopyFrom(
		ctx,
		pgx.Identifier{"race_results"},
		columns,
		pgx.CopyFromRows(copyFromSource),
	)
	if err != nil {
		return fmt.Errorf("failed to batch insert race results: %w", err)
	}

	if copyCount != int64(len(copyFromSource)) {
		return fmt.Errorf("inserted %d rows, expected %d", copyCount, len(copyFromSource))
	}

	return nil
}

// GetByCareerID retrieves every archived race for a career, ordered by turn
func (r *PostgresRaceResultRepository) GetByCareerID(ctx context.Context, careerID uuid.UUID) ([]*models.RaceResult, error) {
	query := `
		SELECT race_id, race_name, turn, horse_id, horse_name, rank, performance,
		       finish_time, prize, resolved_at
		FROM race_results
		WHERE career_id = $1
		ORDER BY turn ASC, rank ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, careerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query race results: %w", err)
	}
	defer rows.Close()

	var results []*models.RaceResult
	byRace := make(map[uuid.UUID]*models.RaceResult)
	for rows.Next() {
		var raceID uuid.UUID
		var raceName string
		var turn int
		var p models.Placement
		result := &models.RaceResult{}
		err := rows.Scan(
			&raceID, &raceName, &turn,
			&p.HorseID, &p.HorseName, &p.Rank, &p.Performance, &p.Time, &p.Prize,
			&result.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanPlacement, err)
		}

		existing, ok := byRace[raceID]
		if !ok {
			result.RaceID = raceID
			result.RaceName = raceName
			result.Turn = turn
			byRace[raceID] = result
			results = append(results, result)
			existing = result
		}
		existing.Placements = append(existing.Placements, p)
	}

	return results, rows.Err()
}

// GetByRaceID retrieves the archived result for a single race
func (r *PostgresRaceResultRepository) GetByRaceID(ctx context.Context, raceID uuid.UUID) (*models.RaceResult, error) {
	query := `
		SELECT race_id, race_name, turn, horse_id, horse_name, rank, performance,
		       finish_time, prize, resolved_at
		FROM race_results
		WHERE race_id = $1
		ORDER BY rank ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query race result: %w", err)
	}
	defer rows.Close()

	var result *models.RaceResult
	for rows.Next() {
		var p models.Placement
		row := &models.RaceResult{}
		err := rows.Scan(
			&row.RaceID, &row.RaceName, &row.Turn,
			&p.HorseID, &p.HorseName, &p.Rank, &p.Performance, &p.Time, &p.Prize,
			&row.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanPlacement, err)
		}
		if result == nil {
			result = row
		}
		result.Placements = append(result.Placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		return nil, models.ErrNotFound
	}

	return result, nil
}
