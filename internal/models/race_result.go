package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Placement is one horse's final position in a resolved race.
type Placement struct {
	HorseID     uuid.UUID       `db:"horse_id" json:"horseId"`
	HorseName   string          `db:"horse_name" json:"horseName"`
	Rank        int             `db:"rank" json:"rank" validate:"min=1"`
	Performance float64         `db:"performance" json:"performance"`
	Time        float64         `db:"finish_time" json:"time"`
	Prize       decimal.Decimal `db:"prize" json:"prize"`
}

// RaceResult is the immutable outcome of one resolved race: placements
// ordered by rank 1..N with no gaps or duplicates.
type RaceResult struct {
	RaceID     uuid.UUID   `db:"race_id" json:"raceId" validate:"required"`
	RaceName   string      `db:"race_name" json:"raceName"`
	Turn       int         `db:"turn" json:"turn"`
	Placements []Placement `db:"-" json:"placements"`
	ResolvedAt time.Time   `db:"resolved_at" json:"resolvedAt"`
}

// Winner returns the rank-1 placement, or nil for an empty result.
func (r *RaceResult) Winner() *Placement {
	if len(r.Placements) == 0 {
		return nil
	}
	return &r.Placements[0]
}

// PlacementFor returns the placement for the given horse, or nil if the
// horse did not run.
func (r *RaceResult) PlacementFor(horseID uuid.UUID) *Placement {
	for i := range r.Placements {
		if r.Placements[i].HorseID == horseID {
			return &r.Placements[i]
		}
	}
	return nil
}

// FieldSize returns the number of horses that ran.
func (r *RaceResult) FieldSize() int {
	return len(r.Placements)
}
