package horse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

func testHorse(stats models.Stats) models.Horse {
	growth := models.GrowthRates{Speed: models.GrowthB, Stamina: models.GrowthB, Power: models.GrowthB}
	return models.NewHorse("Test Horse", stats, growth, models.StrategyMid)
}

func TestIncreaseStatAppliesGain(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})
	// Fixed 0.5 pins variance at exactly 1.0
	m := NewMutator(rng.NewFixed(0.5), nil)

	gain := m.IncreaseStat(&h, models.StatSpeed, 6.0, 1.0)
	assert.Equal(t, 6, gain)
	assert.Equal(t, 56, h.Stats.Speed)
	assert.Equal(t, 50, h.Stats.Stamina)
}

func TestIncreaseStatScalesWithMultipliers(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})
	h.GrowthRates.Speed = models.GrowthS
	h.Condition.Form = models.FormPeak
	m := NewMutator(rng.NewFixed(0.5), nil)

	// round(6 * 1.5 * 1.15 * 1.5) = round(15.525) = 16
	gain := m.IncreaseStat(&h, models.StatSpeed, 6.0, 1.5)
	assert.Equal(t, 16, gain)
}

func TestIncreaseStatUnknownStatIsIgnored(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})
	m := NewMutator(rng.NewFixed(0.5), nil)

	gain := m.IncreaseStat(&h, models.Stat("agility"), 6.0, 1.0)
	assert.Equal(t, 0, gain)
	assert.Equal(t, models.Stats{Speed: 50, Stamina: 50, Power: 50}, h.Stats)
}

func TestIncreaseStatNeverBelowOne(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})
	h.GrowthRates.Speed = models.GrowthD
	h.Condition.Form = models.FormPoor
	// Variance at the bottom of the range
	m := NewMutator(rng.NewFixed(0.0), nil)

	gain := m.IncreaseStat(&h, models.StatSpeed, 0.5, 1.0)
	assert.Equal(t, 1, gain)
}

func TestIncreaseStatSaturatesAtCap(t *testing.T) {
	h := testHorse(models.Stats{Speed: 98, Stamina: 50, Power: 50})
	m := NewMutator(rng.NewFixed(0.9), nil)

	for i := 0; i < 10; i++ {
		m.IncreaseStat(&h, models.StatSpeed, 6.0, 1.5)
	}
	assert.Equal(t, 100, h.Stats.Speed)
}

func TestChangeEnergyClamps(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})

	ChangeEnergy(&h, -150)
	assert.Equal(t, 0, h.Condition.Energy)

	ChangeEnergy(&h, 250)
	assert.Equal(t, 100, h.Condition.Energy)
}

func TestChangeEnergyDoesNotTouchForm(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})
	h.Condition.Form = models.FormPeak

	ChangeEnergy(&h, -90)
	assert.Equal(t, models.FormPeak, h.Condition.Form)

	RefreshForm(&h)
	assert.Equal(t, models.FormPoor, h.Condition.Form)
}

func TestChangeHealthClamps(t *testing.T) {
	h := testHorse(models.Stats{Speed: 50, Stamina: 50, Power: 50})
	ChangeHealth(&h, -40)
	assert.Equal(t, 60, h.Condition.Health)
	ChangeHealth(&h, -100)
	assert.Equal(t, 0, h.Condition.Health)
}
