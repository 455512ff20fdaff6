package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RaceType classifies a race by distance.
type RaceType string

// Distance classes.
const (
	RaceSprint RaceType = "SPRINT"
	RaceMile   RaceType = "MILE"
	RaceMedium RaceType = "MEDIUM"
	RaceLong   RaceType = "LONG"
)

// Valid reports whether the race type is recognized.
func (t RaceType) Valid() bool {
	switch t {
	case RaceSprint, RaceMile, RaceMedium, RaceLong:
		return true
	}
	return false
}

// Surface is the track surface.
type Surface string

// Surfaces.
const (
	SurfaceDirt Surface = "DIRT"
	SurfaceTurf Surface = "TURF"
)

// Valid reports whether the surface is recognized.
func (s Surface) Valid() bool {
	return s == SurfaceDirt || s == SurfaceTurf
}

// Weather is the track condition on race day.
type Weather string

// Weather conditions.
const (
	WeatherClear Weather = "CLEAR"
	WeatherRain  Weather = "RAIN"
	WeatherFast  Weather = "FAST"
)

// Valid reports whether the weather is recognized.
func (w Weather) Valid() bool {
	switch w {
	case WeatherClear, WeatherRain, WeatherFast:
		return true
	}
	return false
}

// RaceConfig describes one scheduled race. Immutable once scheduled
// except for the completion markers set when the race resolves.
type RaceConfig struct {
	ID          uuid.UUID       `db:"id" json:"id" validate:"required"`
	Name        string          `db:"name" json:"name" validate:"required"`
	Type        RaceType        `db:"race_type" json:"type" validate:"oneof=SPRINT MILE MEDIUM LONG"`
	Surface     Surface         `db:"surface" json:"surface" validate:"oneof=DIRT TURF"`
	Weather     Weather         `db:"weather" json:"weather" validate:"oneof=CLEAR RAIN FAST"`
	Turn        int             `db:"turn" json:"turn" validate:"min=1"`
	PrizePool   decimal.Decimal `db:"prize_pool" json:"prizePool"`
	Completed   bool            `db:"completed" json:"completed,omitempty"`
	CompletedAt *time.Time      `db:"completed_at" json:"completedAt,omitempty"`
}

// MarkCompleted stamps the race as resolved so it can never trigger a
// second time, even if turn state is replayed.
func (rc *RaceConfig) MarkCompleted(at time.Time) {
	rc.Completed = true
	at = at.UTC()
	rc.CompletedAt = &at
}

// Validate checks the race configuration keys before any computation.
func (rc *RaceConfig) Validate() error {
	if !rc.Type.Valid() {
		return NewValidationError("invalid_race_type", "unrecognized race type: "+string(rc.Type))
	}
	if !rc.Surface.Valid() {
		return NewValidationError("invalid_surface", "unrecognized surface: "+string(rc.Surface))
	}
	if !rc.Weather.Valid() {
		return NewValidationError("invalid_weather", "unrecognized weather: "+string(rc.Weather))
	}
	return nil
}
