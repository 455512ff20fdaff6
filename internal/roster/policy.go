package roster

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/horse"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

// TrainingChoice is what a rival does with its turn.
type TrainingChoice string

// Training choices.
const (
	TrainSpeed   TrainingChoice = "speed"
	TrainStamina TrainingChoice = "stamina"
	TrainPower   TrainingChoice = "power"
	TrainRest    TrainingChoice = "rest"
)

// Stat returns the stat a choice trains, or false for rest.
func (c TrainingChoice) Stat() (models.Stat, bool) {
	switch c {
	case TrainSpeed:
		return models.StatSpeed, true
	case TrainStamina:
		return models.StatStamina, true
	case TrainPower:
		return models.StatPower, true
	}
	return "", false
}

// UpcomingRace tells the policy how close and what kind the next
// scheduled race is.
type UpcomingRace struct {
	TurnsAway int
	Type      models.RaceType
}

// Policy drives rival training decisions. Rivals never read each
// other's state, so per-turn progression is order-independent.
type Policy struct {
	rng     rng.Source
	logger  *logrus.Logger
	verbose bool
}

// NewPolicy creates the AI training policy.
func NewPolicy(src rng.Source, logger *logrus.Logger, verbose bool) *Policy {
	if src == nil {
		src = rng.NewDefault()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Policy{rng: src, logger: logger, verbose: verbose}
}

// SelectTraining picks the rival's action for a turn. Race proximity
// overrides the pattern: the turn before a race the rival rests unless
// fresh, two turns out it trains for the race distance, otherwise the
// training pattern decides.
func (p *Policy) SelectTraining(r *models.RivalHorse, turn int, upcoming *UpcomingRace) TrainingChoice {
	if upcoming != nil && upcoming.TurnsAway <= 1 {
		if r.Condition.Energy < 70 {
			return TrainRest
		}
		return choiceForStat(r.PreferredStat())
	}

	if upcoming != nil && upcoming.TurnsAway <= 2 {
		switch upcoming.Type {
		case models.RaceSprint:
			if r.Strategy == models.StrategyFront {
				return TrainPower
			}
			return TrainSpeed
		case models.RaceLong:
			return TrainStamina
		default:
			return choiceForStat(r.PreferredStat())
		}
	}

	return p.patternChoice(r, turn)
}

func (p *Policy) patternChoice(r *models.RivalHorse, turn int) TrainingChoice {
	switch r.Pattern {
	case models.PatternSpeedFocus:
		if p.rng.Float64() < 0.7 {
			return TrainSpeed
		}
		return TrainPower
	case models.PatternStaminaFocus:
		if p.rng.Float64() < 0.7 {
			return TrainStamina
		}
		return TrainSpeed
	case models.PatternPowerFocus:
		if p.rng.Float64() < 0.7 {
			return TrainPower
		}
		return TrainSpeed
	case models.PatternBalanced:
		return []TrainingChoice{TrainSpeed, TrainStamina, TrainPower}[p.rng.Intn(3)]
	case models.PatternLateSurge:
		if turn < 8 {
			return TrainStamina
		}
		if p.rng.Float64() < 0.5 {
			return TrainSpeed
		}
		return TrainStamina
	}

	// Unknown pattern: fall back to the strategy-derived priorities as
	// a cumulative-probability selector.
	roll := p.rng.Float64()
	if roll < r.Priorities.Speed {
		return TrainSpeed
	}
	if roll < r.Priorities.Speed+r.Priorities.Stamina {
		return TrainStamina
	}
	return TrainPower
}

// ApplyTraining executes the chosen action: the trained stat gains the
// base 3 plus a -1..+2 variation, the other two stats gain 1 each, and
// energy is spent (or restored for rest). Form re-derives from the new
// energy level.
func (p *Policy) ApplyTraining(r *models.RivalHorse, turn int, choice TrainingChoice) int {
	gain := 0

	if stat, ok := choice.Stat(); ok {
		gain = 3 + rng.IntBetween(p.rng, -1, 2)
		if gain < 1 {
			gain = 1
		}
		r.Stats.Set(stat, r.Stats.Get(stat)+gain)
		for _, other := range models.AllStats() {
			if other != stat {
				r.Stats.Set(other, r.Stats.Get(other)+1)
			}
		}
		horse.ChangeEnergy(&r.Horse, -energyCost(choice))
	} else {
		r.Stats.Set(models.StatStamina, r.Stats.Get(models.StatStamina)+1)
		horse.ChangeEnergy(&r.Horse, 30)
	}

	horse.RefreshForm(&r.Horse)
	r.RecordTraining(turn, string(choice), gain)

	if p.verbose {
		p.logger.WithFields(logrus.Fields{
			"rival":    r.Name,
			"turn":     turn,
			"training": string(choice),
			"gain":     gain,
			"energy":   r.Condition.Energy,
		}).Debug("Rival trained")
	}
	return gain
}

// AdvanceTurn runs every rival's select-and-apply cycle for one turn.
func (p *Policy) AdvanceTurn(roster *Roster, turn int, upcoming *UpcomingRace) {
	for _, rival := range roster.Rivals {
		choice := p.SelectTraining(rival, turn, upcoming)
		p.ApplyTraining(rival, turn, choice)
	}
}

func choiceForStat(stat models.Stat) TrainingChoice {
	switch stat {
	case models.StatStamina:
		return TrainStamina
	case models.StatPower:
		return TrainPower
	default:
		return TrainSpeed
	}
}

func energyCost(choice TrainingChoice) int {
	switch choice {
	case TrainSpeed, TrainPower:
		return 15
	case TrainStamina:
		return 10
	}
	return 0
}
