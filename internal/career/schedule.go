package career

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yourusername/homestretch/internal/models"
)

// DefaultMaxTurns is the standard career length.
const DefaultMaxTurns = 24

// DefaultSchedule returns the fixed four-race career schedule. Exactly
// one race may occupy a given turn.
func DefaultSchedule() []models.RaceConfig {
	return []models.RaceConfig{
		{
			ID:        uuid.New(),
			Name:      "Debut Sprint",
			Type:      models.RaceSprint,
			Surface:   models.SurfaceDirt,
			Weather:   models.WeatherClear,
			Turn:      4,
			PrizePool: decimal.NewFromInt(2000),
		},
		{
			ID:        uuid.New(),
			Name:      "Mile Open",
			Type:      models.RaceMile,
			Surface:   models.SurfaceTurf,
			Weather:   models.WeatherClear,
			Turn:      9,
			PrizePool: decimal.NewFromInt(5000),
		},
		{
			ID:        uuid.New(),
			Name:      "Autumn Stakes",
			Type:      models.RaceMedium,
			Surface:   models.SurfaceTurf,
			Weather:   models.WeatherRain,
			Turn:      15,
			PrizePool: decimal.NewFromInt(8000),
		},
		{
			ID:        uuid.New(),
			Name:      "Grand Final",
			Type:      models.RaceLong,
			Surface:   models.SurfaceTurf,
			Weather:   models.WeatherClear,
			Turn:      24,
			PrizePool: decimal.NewFromInt(15000),
		},
	}
}

// validateSchedule rejects schedules with duplicate turns or invalid
// race configurations.
func validateSchedule(schedule []models.RaceConfig) error {
	seen := make(map[int]bool, len(schedule))
	for i := range schedule {
		if err := schedule[i].Validate(); err != nil {
			return err
		}
		if seen[schedule[i].Turn] {
			return models.NewValidationError("duplicate_race_turn", "two races scheduled on the same turn")
		}
		seen[schedule[i].Turn] = true
	}
	return nil
}
