// Package models defines the shared data model for the career
// simulator: horses, race configurations and race results.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Stat identifies one of the three trainable attributes.
type Stat string

// Recognized stats.
const (
	StatSpeed   Stat = "speed"
	StatStamina Stat = "stamina"
	StatPower   Stat = "power"
)

// AllStats returns the three stats in canonical order.
func AllStats() []Stat {
	return []Stat{StatSpeed, StatStamina, StatPower}
}

// Valid reports whether s is one of the recognized stats.
func (s Stat) Valid() bool {
	switch s {
	case StatSpeed, StatStamina, StatPower:
		return true
	}
	return false
}

// GrowthGrade is a qualitative growth-rate tier for one stat.
type GrowthGrade string

// Growth grades, best to worst.
const (
	GrowthS GrowthGrade = "S"
	GrowthA GrowthGrade = "A"
	GrowthB GrowthGrade = "B"
	GrowthC GrowthGrade = "C"
	GrowthD GrowthGrade = "D"
)

var growthMultipliers = map[GrowthGrade]float64{
	GrowthS: 1.5,
	GrowthA: 1.2,
	GrowthB: 1.0,
	GrowthC: 0.8,
	GrowthD: 0.6,
}

// Multiplier returns the training gain multiplier for the grade.
// Unknown grades fall back to 1.0.
func (g GrowthGrade) Multiplier() float64 {
	if m, ok := growthMultipliers[g]; ok {
		return m
	}
	return 1.0
}

// Strategy is a race running style.
type Strategy string

// Running styles.
const (
	StrategyFront Strategy = "FRONT"
	StrategyMid   Strategy = "MID"
	StrategyLate  Strategy = "LATE"
)

// Valid reports whether the strategy is recognized.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyFront, StrategyMid, StrategyLate:
		return true
	}
	return false
}

// Stats holds the three trainable attribute values, each in [1,100].
type Stats struct {
	Speed   int `db:"speed" json:"speed" validate:"min=1,max=100"`
	Stamina int `db:"stamina" json:"stamina" validate:"min=1,max=100"`
	Power   int `db:"power" json:"power" validate:"min=1,max=100"`
}

// Get returns the value of the named stat, or 0 for an unknown name.
func (s Stats) Get(name Stat) int {
	switch name {
	case StatSpeed:
		return s.Speed
	case StatStamina:
		return s.Stamina
	case StatPower:
		return s.Power
	}
	return 0
}

// Set assigns the named stat, clamping into [1,100]. Unknown names are
// ignored.
func (s *Stats) Set(name Stat, value int) {
	value = ClampStat(value)
	switch name {
	case StatSpeed:
		s.Speed = value
	case StatStamina:
		s.Stamina = value
	case StatPower:
		s.Power = value
	}
}

// Total returns the summed power level across the three stats.
func (s Stats) Total() int {
	return s.Speed + s.Stamina + s.Power
}

// Dominant returns the stat with the highest value. Ties resolve in
// canonical order (speed, stamina, power).
func (s Stats) Dominant() Stat {
	best := StatSpeed
	for _, name := range AllStats() {
		if s.Get(name) > s.Get(best) {
			best = name
		}
	}
	return best
}

// GrowthRates holds the per-stat growth grades.
type GrowthRates struct {
	Speed   GrowthGrade `db:"growth_speed" json:"speed" validate:"oneof=S A B C D"`
	Stamina GrowthGrade `db:"growth_stamina" json:"stamina" validate:"oneof=S A B C D"`
	Power   GrowthGrade `db:"growth_power" json:"power" validate:"oneof=S A B C D"`
}

// Grade returns the grade for the named stat, GrowthB for unknown names.
func (g GrowthRates) Grade(name Stat) GrowthGrade {
	switch name {
	case StatSpeed:
		return g.Speed
	case StatStamina:
		return g.Stamina
	case StatPower:
		return g.Power
	}
	return GrowthB
}

// Preferred returns the stat with the strongest growth grade. Ties
// resolve in canonical order.
func (g GrowthRates) Preferred() Stat {
	best := StatSpeed
	for _, name := range AllStats() {
		if g.Grade(name).Multiplier() > g.Grade(best).Multiplier() {
			best = name
		}
	}
	return best
}

// Condition tracks a horse's day-to-day state.
type Condition struct {
	Energy int  `db:"energy" json:"energy" validate:"min=0,max=100"`
	Form   Form `db:"form" json:"form"`
	Health int  `db:"health" json:"health" validate:"min=0,max=100"`
}

// Horse is the shared record for both the player's horse and AI rivals.
// Behavior that mutates a Horse lives in the horse package; the two
// variants (PlayerHorse, RivalHorse) embed this record and carry only
// the fields unique to each.
type Horse struct {
	ID          uuid.UUID   `db:"id" json:"id" validate:"required"`
	Name        string      `db:"name" json:"name" validate:"required"`
	Stats       Stats       `db:"-" json:"stats"`
	GrowthRates GrowthRates `db:"-" json:"growthRates"`
	Condition   Condition   `db:"-" json:"condition"`
	Strategy    Strategy    `db:"strategy" json:"strategy" validate:"oneof=FRONT MID LATE"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

// NewHorse creates a horse with fresh condition and a random id.
func NewHorse(name string, stats Stats, growth GrowthRates, strategy Strategy) Horse {
	return Horse{
		ID:          uuid.New(),
		Name:        name,
		Stats:       stats,
		GrowthRates: growth,
		Condition:   Condition{Energy: 100, Form: FormNormal, Health: 100},
		Strategy:    strategy,
		CreatedAt:   time.Now().UTC(),
	}
}

// PowerLevel returns the summed stat total used for roster balancing.
func (h *Horse) PowerLevel() int {
	return h.Stats.Total()
}

// ClampStat saturates a stat value into [1,100].
func ClampStat(v int) int {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampPercent saturates an energy, health or bond value into [0,100].
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
