// Package roster generates the field of AI rival horses and advances
// their stats every turn through a per-rival training policy.
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/names"
	"github.com/yourusername/homestretch/internal/rng"
)

// DefaultSize is the standard rival count for one career.
const DefaultSize = 24

// minTargetPower floors how weak a generated rival can be.
const minTargetPower = 50

// powerOffsets cycle across the roster so the field tracks the player's
// strength while guaranteeing spread. Symmetric over [-20,+20].
var powerOffsets = []int{-20, -15, -10, -5, -2, 2, 5, 10, 15, 20}

// Roster is the set of AI rivals for one career.
type Roster struct {
	ID         uuid.UUID            `json:"id"`
	PlayerName string               `json:"playerHorseName"`
	Rivals     []*models.RivalHorse `json:"rivals"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// PowerSpread returns the difference between the strongest and weakest
// rival's total power.
func (r *Roster) PowerSpread() int {
	if len(r.Rivals) == 0 {
		return 0
	}
	min, max := r.Rivals[0].PowerLevel(), r.Rivals[0].PowerLevel()
	for _, rival := range r.Rivals[1:] {
		p := rival.PowerLevel()
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return max - min
}

// MeanPower returns the average total power across the roster.
func (r *Roster) MeanPower() float64 {
	if len(r.Rivals) == 0 {
		return 0
	}
	sum := 0
	for _, rival := range r.Rivals {
		sum += rival.PowerLevel()
	}
	return float64(sum) / float64(len(r.Rivals))
}

// FindRival returns the rival with the given id, or nil.
func (r *Roster) FindRival(id uuid.UUID) *models.RivalHorse {
	for _, rival := range r.Rivals {
		if rival.ID == id {
			return rival
		}
	}
	return nil
}

// Generator builds rosters balanced around the player's power level.
type Generator struct {
	rng     rng.Source
	names   names.Supplier
	logger  *logrus.Logger
	verbose bool
}

// NewGenerator creates a roster generator. The verbose flag gates
// per-rival debug logging.
func NewGenerator(src rng.Source, supplier names.Supplier, logger *logrus.Logger, verbose bool) *Generator {
	if src == nil {
		src = rng.NewDefault()
	}
	if supplier == nil {
		supplier = names.NewWordListSupplier(src)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{rng: src, names: supplier, logger: logger, verbose: verbose}
}

// Generate creates size rivals whose target power cycles offsets around
// the player's baseline, assigns each a strategy from its stat shape, a
// strategy-conditioned training pattern, and a personality.
func (g *Generator) Generate(ctx context.Context, player *models.PlayerHorse, size int) (*Roster, error) {
	if player == nil {
		return nil, fmt.Errorf("player horse is required")
	}
	if size <= 0 {
		size = DefaultSize
	}

	baseline := player.PowerLevel()
	roster := &Roster{
		ID:         uuid.New(),
		PlayerName: player.Name,
		Rivals:     make([]*models.RivalHorse, 0, size),
		CreatedAt:  time.Now().UTC(),
	}

	for i := 0; i < size; i++ {
		target := baseline + powerOffsets[i%len(powerOffsets)]
		if target < minTargetPower {
			target = minTargetPower
		}

		rival, err := g.buildRival(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("failed to build rival %d: %w", i+1, err)
		}
		roster.Rivals = append(roster.Rivals, rival)

		if g.verbose {
			g.logger.WithFields(logrus.Fields{
				"rival":    rival.Name,
				"power":    rival.PowerLevel(),
				"strategy": string(rival.Strategy),
				"pattern":  string(rival.Pattern),
			}).Debug("Generated rival")
		}
	}

	g.logger.WithFields(logrus.Fields{
		"roster_id": roster.ID,
		"size":      len(roster.Rivals),
		"baseline":  baseline,
		"mean":      roster.MeanPower(),
		"spread":    roster.PowerSpread(),
	}).Info("Generated rival roster")

	return roster, nil
}

func (g *Generator) buildRival(ctx context.Context, targetPower int) (*models.RivalHorse, error) {
	name, err := g.names.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("name supplier failed: %w", err)
	}

	stats := g.distributeStats(targetPower)
	strategy := strategyFor(stats)

	rival := &models.RivalHorse{
		Horse:       models.NewHorse(name, stats, g.rollGrowth(stats), strategy),
		Pattern:     g.patternFor(strategy),
		Personality: g.rollPersonality(),
		Priorities:  prioritiesFor(strategy),
		History:     make(map[int]models.TrainingRecord),
	}
	return rival, nil
}

// distributeStats spreads the target power near target/3 per stat with
// a small random skew.
func (g *Generator) distributeStats(target int) models.Stats {
	base := target / 3
	var stats models.Stats
	for _, stat := range models.AllStats() {
		stats.Set(stat, base+rng.IntBetween(g.rng, -4, 4))
	}
	return stats
}

// strategyFor derives a fixed running style from stat shape: a stat
// carrying more than 40% of total power pushes toward the style that
// suits it, otherwise MID.
func strategyFor(stats models.Stats) models.Strategy {
	total := stats.Total()
	if total <= 0 {
		return models.StrategyMid
	}
	dominant := stats.Dominant()
	ratio := float64(stats.Get(dominant)) / float64(total)
	if ratio <= 0.4 {
		return models.StrategyMid
	}
	switch dominant {
	case models.StatSpeed, models.StatPower:
		return models.StrategyFront
	case models.StatStamina:
		return models.StrategyLate
	}
	return models.StrategyMid
}

// patternCandidates maps a strategy to the training patterns it can
// plausibly run.
var patternCandidates = map[models.Strategy][]models.TrainingPattern{
	models.StrategyFront: {models.PatternSpeedFocus, models.PatternPowerFocus, models.PatternBalanced},
	models.StrategyMid:   {models.PatternBalanced, models.PatternSpeedFocus, models.PatternStaminaFocus},
	models.StrategyLate:  {models.PatternStaminaFocus, models.PatternLateSurge, models.PatternBalanced},
}

func (g *Generator) patternFor(strategy models.Strategy) models.TrainingPattern {
	candidates := patternCandidates[strategy]
	if len(candidates) == 0 {
		return models.PatternBalanced
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// prioritiesFor returns the fixed fallback training distribution for a
// strategy.
func prioritiesFor(strategy models.Strategy) models.TrainingPriorities {
	switch strategy {
	case models.StrategyFront:
		return models.TrainingPriorities{Speed: 0.40, Stamina: 0.20, Power: 0.40}
	case models.StrategyLate:
		return models.TrainingPriorities{Speed: 0.25, Stamina: 0.50, Power: 0.25}
	default:
		return models.TrainingPriorities{Speed: 1.0 / 3, Stamina: 1.0 / 3, Power: 1.0 / 3}
	}
}

var personalityTraits = []string{
	"aggressive", "steady", "temperamental", "fearless", "cautious", "showy",
}

func (g *Generator) rollPersonality() models.Personality {
	return models.Personality{
		Trait:     personalityTraits[g.rng.Intn(len(personalityTraits))],
		Intensity: rng.IntBetween(g.rng, 1, 10),
	}
}

// rollGrowth assigns growth grades, favoring the rival's dominant stat.
func (g *Generator) rollGrowth(stats models.Stats) models.GrowthRates {
	grades := []models.GrowthGrade{models.GrowthS, models.GrowthA, models.GrowthB, models.GrowthC, models.GrowthD}
	dominant := stats.Dominant()

	pick := func(stat models.Stat) models.GrowthGrade {
		idx := rng.IntBetween(g.rng, 1, 3) // A..C
		if stat == dominant && idx > 0 {
			idx--
		}
		return grades[idx]
	}

	return models.GrowthRates{
		Speed:   pick(models.StatSpeed),
		Stamina: pick(models.StatStamina),
		Power:   pick(models.StatPower),
	}
}
