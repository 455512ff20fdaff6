package repository

import (
	"fmt"

	"github.com/yourusername/homestretch/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Career     CareerRepository
	RaceResult RaceResultRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Career:     NewPostgresCareerRepository(db),
		RaceResult: NewPostgresRaceResultRepository(db),
	}, nil
}
