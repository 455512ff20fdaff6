// Package race implements the race-outcome calculator: per-horse
// performance scoring and full-field resolution into ranked results.
package race

import (
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

// statModifiers scales the three stats in canonical order
// (speed, stamina, power).
type statModifiers [3]float64

var surfaceModifiers = map[models.Surface]statModifiers{
	models.SurfaceDirt: {0.95, 1.00, 1.15},
	models.SurfaceTurf: {1.10, 1.05, 0.90},
}

var weatherModifiers = map[models.Weather]statModifiers{
	models.WeatherClear: {1.00, 1.00, 1.00},
	models.WeatherRain:  {0.92, 1.05, 1.08},
	models.WeatherFast:  {1.08, 0.98, 1.00},
}

// raceTypeWeights are the per-distance stat weights; each row sums to 1.
var raceTypeWeights = map[models.RaceType]statModifiers{
	models.RaceSprint: {0.50, 0.15, 0.35},
	models.RaceMile:   {0.35, 0.35, 0.30},
	models.RaceMedium: {0.25, 0.45, 0.30},
	models.RaceLong:   {0.15, 0.60, 0.25},
}

var raceTypeStrategyFactors = map[models.RaceType]map[models.Strategy]float64{
	models.RaceSprint: {models.StrategyFront: 1.15, models.StrategyMid: 1.00, models.StrategyLate: 0.90},
	models.RaceMile:   {models.StrategyFront: 1.05, models.StrategyMid: 1.05, models.StrategyLate: 1.00},
	models.RaceMedium: {models.StrategyFront: 0.95, models.StrategyMid: 1.05, models.StrategyLate: 1.05},
	models.RaceLong:   {models.StrategyFront: 0.85, models.StrategyMid: 1.00, models.StrategyLate: 1.15},
}

var surfaceStrategyFactors = map[models.Surface]map[models.Strategy]float64{
	models.SurfaceDirt: {models.StrategyFront: 1.05, models.StrategyMid: 1.00, models.StrategyLate: 0.97},
	models.SurfaceTurf: {models.StrategyFront: 0.97, models.StrategyMid: 1.00, models.StrategyLate: 1.05},
}

// minEnergyFactor floors how much low energy can drag performance.
const minEnergyFactor = 0.3

// CalculatePerformance scores one horse for the given race conditions.
// Configuration keys are validated before any computation; an
// unrecognized race type, surface, weather or strategy fails fast with
// a validation error and no partial side effects.
func CalculatePerformance(h *models.Horse, raceType models.RaceType, surface models.Surface, strategy models.Strategy, weather models.Weather, src rng.Source) (float64, error) {
	if !raceType.Valid() {
		return 0, models.NewValidationError("invalid_race_type", "unrecognized race type: "+string(raceType))
	}
	if !surface.Valid() {
		return 0, models.NewValidationError("invalid_surface", "unrecognized surface: "+string(surface))
	}
	if !weather.Valid() {
		return 0, models.NewValidationError("invalid_weather", "unrecognized weather: "+string(weather))
	}
	if !strategy.Valid() {
		return 0, models.NewValidationError("invalid_strategy", "unrecognized strategy: "+string(strategy))
	}

	surfaceMods := surfaceModifiers[surface]
	weatherMods := weatherModifiers[weather]
	weights := raceTypeWeights[raceType]

	score := 0.0
	for i, stat := range models.AllStats() {
		modified := float64(h.Stats.Get(stat)) * surfaceMods[i] * weatherMods[i]
		score += modified * weights[i]
	}

	score *= raceTypeStrategyFactors[raceType][strategy]
	score *= surfaceStrategyFactors[surface][strategy]

	energyFactor := float64(h.Condition.Energy) / 100.0
	if energyFactor < minEnergyFactor {
		energyFactor = minEnergyFactor
	}
	score *= energyFactor
	score *= h.Condition.Form.Multiplier()

	score *= rng.Between(src, 0.88, 1.12)
	return score, nil
}
