// Package sweep runs batches of fully automated careers and aggregates
// outcome distributions, for balance checking and the daemon's
// scheduled simulation runs.
package sweep

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/career"
	"github.com/yourusername/homestretch/internal/genetics"
	"github.com/yourusername/homestretch/internal/metrics"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
	"github.com/yourusername/homestretch/internal/roster"
)

// Config configures a sweep.
type Config struct {
	Careers  int
	MaxTurns int
	Seed     int64
	Verbose  bool
}

// Outcome is one completed career's summary. Results carries the full
// race placements so callers can archive them; it is omitted from the
// JSON summary.
type Outcome struct {
	HorseName  string          `json:"horseName"`
	FinalStats models.Stats    `json:"finalStats"`
	FinalPower int             `json:"finalPower"`
	RacesWon   int             `json:"racesWon"`
	RacesRun   int             `json:"racesRun"`
	Training   int             `json:"training"`
	Earnings   decimal.Decimal `json:"earnings"`

	Results []*models.RaceResult `json:"-"`
}

// Result aggregates a sweep's outcome distribution.
type Result struct {
	Careers          int                `json:"careers"`
	MeanFinalPower   float64            `json:"meanFinalPower"`
	StdFinalPower    float64            `json:"stdFinalPower"`
	MeanWins         float64            `json:"meanWins"`
	WinDistribution  map[int]int        `json:"winDistribution"`
	PowerPercentiles map[string]float64 `json:"powerPercentiles"`
	TotalEarnings    decimal.Decimal    `json:"totalEarnings"`
	Duration         time.Duration      `json:"duration"`
	Outcomes         []Outcome          `json:"outcomes"`
}

// Run executes cfg.Careers automated careers. Each career gets its own
// derived seed so runs are reproducible from the sweep seed.
func Run(ctx context.Context, cfg Config, logger *logrus.Logger) (*Result, error) {
	if cfg.Careers <= 0 {
		cfg.Careers = 100
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = career.DefaultMaxTurns
	}
	if cfg.Seed == 0 {
		seed, err := rng.NewSeed()
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
	}
	if logger == nil {
		logger = logrus.New()
	}

	start := time.Now()
	result := &Result{
		Careers:         cfg.Careers,
		WinDistribution: make(map[int]int),
		TotalEarnings:   decimal.Zero,
	}

	powers := make([]float64, 0, cfg.Careers)
	wins := 0

	for i := 0; i < cfg.Careers; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome, err := runOne(ctx, rng.New(cfg.Seed+int64(i)), cfg.MaxTurns, logger)
		if err != nil {
			return nil, fmt.Errorf("career %d failed: %w", i+1, err)
		}

		result.Outcomes = append(result.Outcomes, outcome)
		result.WinDistribution[outcome.RacesWon]++
		result.TotalEarnings = result.TotalEarnings.Add(outcome.Earnings)
		powers = append(powers, float64(outcome.FinalPower))
		wins += outcome.RacesWon
	}

	result.MeanFinalPower, result.StdFinalPower = meanStd(powers)
	result.MeanWins = float64(wins) / float64(cfg.Careers)
	result.PowerPercentiles = map[string]float64{
		"p10": percentile(powers, 0.10),
		"p50": percentile(powers, 0.50),
		"p90": percentile(powers, 0.90),
	}
	result.Duration = time.Since(start)

	metrics.SweepsTotal.Inc()
	metrics.SweepDuration.Observe(result.Duration.Seconds())

	logger.WithFields(logrus.Fields{
		"careers":    result.Careers,
		"mean_power": result.MeanFinalPower,
		"mean_wins":  result.MeanWins,
		"duration":   result.Duration,
	}).Info("Sweep complete")

	return result, nil
}

// runOne plays a single career with a simple heuristic player policy:
// rest when drained, otherwise train the best-growth stat, and race
// with the strategy that suits the dominant stat.
func runOne(ctx context.Context, src rng.Source, maxTurns int, logger *logrus.Logger) (Outcome, error) {
	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)

	gen := genetics.NewGenerator(src, quiet)
	breeds := []genetics.Breed{genetics.BreedThoroughbred, genetics.BreedArabian, genetics.BreedQuarterHorse, genetics.BreedMustang}
	rolled, err := gen.Generate(genetics.Options{Breed: breeds[src.Intn(len(breeds))]})
	if err != nil {
		return Outcome{}, err
	}

	player := models.NewPlayerHorse("Sweep Runner", rolled.Stats, rolled.Growth, maxTurns, models.LegacyBonuses{})
	engine, err := career.NewEngine(ctx, career.Config{Player: player, RNG: src, Logger: quiet})
	if err != nil {
		return Outcome{}, err
	}

	for engine.State() != career.StateComplete {
		switch engine.State() {
		case career.StateTraining:
			choice := autoTraining(player)
			if _, err := engine.Train(choice); err != nil {
				return Outcome{}, err
			}
		case career.StatePreRace:
			next := engine.NextRace()
			if next == nil {
				return Outcome{}, fmt.Errorf("pre_race state with no scheduled race")
			}
			if _, err := engine.RunRace(next, autoStrategy(player)); err != nil {
				return Outcome{}, err
			}
		case career.StateRaceResults:
			if err := engine.Continue(); err != nil {
				return Outcome{}, err
			}
		}
	}

	history := engine.History()
	return Outcome{
		HorseName:  player.Name,
		FinalStats: player.Stats,
		FinalPower: player.PowerLevel(),
		RacesWon:   player.Career.RacesWon,
		RacesRun:   player.Career.RacesRun,
		Training:   player.Career.TotalTraining,
		Earnings:   history.TotalEarnings,
		Results:    engine.Results(),
	}, nil
}

func autoTraining(player *models.PlayerHorse) roster.TrainingChoice {
	if player.Condition.Energy < 40 {
		return roster.TrainRest
	}
	switch player.GrowthRates.Preferred() {
	case models.StatStamina:
		return roster.TrainStamina
	case models.StatPower:
		return roster.TrainPower
	default:
		return roster.TrainSpeed
	}
}

func autoStrategy(player *models.PlayerHorse) models.Strategy {
	switch player.Stats.Dominant() {
	case models.StatStamina:
		return models.StrategyLate
	case models.StatSpeed:
		return models.StrategyFront
	default:
		return models.StrategyMid
	}
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	idx := int(math.Floor(p * float64(len(sorted)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
