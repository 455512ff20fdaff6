package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CareerRecord is an archived completed career. One row per finished
// player career, written by the daemon after each sweep or on demand.
type CareerRecord struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	HorseName     string          `json:"horse_name" db:"horse_name"`
	FinalStats    Stats           `json:"final_stats"`
	RacesWon      int             `json:"races_won" db:"races_won"`
	RacesRun      int             `json:"races_run" db:"races_run"`
	TotalTraining int             `json:"total_training" db:"total_training"`
	Earnings      decimal.Decimal `json:"earnings" db:"earnings"`
	CompletedAt   time.Time       `json:"completed_at" db:"completed_at"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// NewCareerRecord builds an archive row from a finished career.
func NewCareerRecord(horse *PlayerHorse, earnings decimal.Decimal, completedAt time.Time) *CareerRecord {
	return &CareerRecord{
		ID:            uuid.New(),
		HorseName:     horse.Horse.Name,
		FinalStats:    horse.Horse.Stats,
		RacesWon:      horse.Career.RacesWon,
		RacesRun:      horse.Career.RacesRun,
		TotalTraining: horse.Career.TotalTraining,
		Earnings:      earnings,
		CompletedAt:   completedAt,
	}
}

// WinRate returns the fraction of archived races won, zero when no races ran.
func (c *CareerRecord) WinRate() float64 {
	if c.RacesRun == 0 {
		return 0
	}
	return float64(c.RacesWon) / float64(c.RacesRun)
}
