package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/homestretch/internal/models"
)

// CareerRepository defines the interface for career archive data access
type CareerRepository interface {
	Create(ctx context.Context, record *models.CareerRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CareerRecord, error)
	GetRecent(ctx context.Context, limit int) ([]*models.CareerRecord, error)
	GetTopByWins(ctx context.Context, limit int) ([]*models.CareerRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RaceResultRepository defines the interface for archived race result data access
type RaceResultRepository interface {
	InsertBatch(ctx context.Context, careerID uuid.UUID, results []*models.RaceResult) error
	GetByCareerID(ctx context.Context, careerID uuid.UUID) ([]*models.RaceResult, error)
	GetByRaceID(ctx context.Context, raceID uuid.UUID) (*models.RaceResult, error)
}
