// Package horse implements the shared mutation rules for horse state:
// training gains, energy and health changes, and form refresh. The same
// rules apply to the player's horse and to AI rivals.
package horse

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

// Mutator applies stat and condition changes to horses. All randomness
// flows through the injected source.
type Mutator struct {
	rng    rng.Source
	logger *logrus.Logger
}

// NewMutator creates a mutator. A nil logger falls back to a default
// logrus instance.
func NewMutator(src rng.Source, logger *logrus.Logger) *Mutator {
	if src == nil {
		src = rng.NewDefault()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Mutator{rng: src, logger: logger}
}

// IncreaseStat applies a training gain to the named stat and returns
// the actual gain. An unrecognized stat name logs a warning and returns
// 0 rather than erroring, so a training session never aborts on bad
// input. The gain is baseGain scaled by growth grade, form and bond,
// with uniform variance in [0.8,1.2]; an attempted gain is never less
// than 1, and the stat saturates at 100.
func (m *Mutator) IncreaseStat(h *models.Horse, name models.Stat, baseGain float64, bondMultiplier float64) int {
	if !name.Valid() {
		m.logger.WithFields(logrus.Fields{
			"horse": h.Name,
			"stat":  string(name),
		}).Warn("Ignoring training gain for unrecognized stat")
		return 0
	}
	if bondMultiplier <= 0 {
		bondMultiplier = 1.0
	}

	growth := h.GrowthRates.Grade(name).Multiplier()
	form := h.Condition.Form.Multiplier()
	base := math.Round(baseGain * growth * form * bondMultiplier)

	variance := rng.Between(m.rng, 0.8, 1.2)
	gain := int(math.Round(base * variance))
	if gain < 1 {
		gain = 1
	}

	h.Stats.Set(name, h.Stats.Get(name)+gain)
	return gain
}

// ChangeEnergy adjusts energy, saturating at [0,100]. Form is not
// touched here; training effects call RefreshForm explicitly.
func ChangeEnergy(h *models.Horse, delta int) {
	h.Condition.Energy = models.ClampPercent(h.Condition.Energy + delta)
}

// ChangeHealth adjusts health, saturating at [0,100].
func ChangeHealth(h *models.Horse, delta int) {
	h.Condition.Health = models.ClampPercent(h.Condition.Health + delta)
}

// RefreshForm re-derives the six-tier form from current energy.
func RefreshForm(h *models.Horse) {
	h.Condition.Form = models.FormFromEnergy(h.Condition.Energy)
}
