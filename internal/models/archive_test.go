package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCareerRecord(t *testing.T) {
	p := NewPlayerHorse("Archive Test", Stats{Speed: 70, Stamina: 60, Power: 50}, GrowthRates{Speed: GrowthB, Stamina: GrowthB, Power: GrowthB}, 24, LegacyBonuses{})
	p.Career.RacesWon = 3
	p.Career.RacesRun = 4
	p.Career.TotalTraining = 20

	completed := time.Now().UTC()
	rec := NewCareerRecord(p, decimal.NewFromInt(12500), completed)

	assert.NotEqual(t, [16]byte{}, [16]byte(rec.ID))
	assert.Equal(t, "Archive Test", rec.HorseName)
	assert.Equal(t, p.Stats, rec.FinalStats)
	assert.Equal(t, 3, rec.RacesWon)
	assert.Equal(t, 4, rec.RacesRun)
	assert.Equal(t, 20, rec.TotalTraining)
	assert.True(t, rec.Earnings.Equal(decimal.NewFromInt(12500)))
	assert.Equal(t, completed, rec.CompletedAt)
}

func TestCareerRecordWinRate(t *testing.T) {
	rec := &CareerRecord{RacesWon: 3, RacesRun: 4}
	assert.Equal(t, 0.75, rec.WinRate())

	empty := &CareerRecord{}
	assert.Zero(t, empty.WinRate())
}
