// Package career drives a single play-through: the turn scheduler state
// machine, player training, race triggering and career completion.
package career

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/horse"
	"github.com/yourusername/homestretch/internal/metrics"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/race"
	"github.com/yourusername/homestretch/internal/rng"
	"github.com/yourusername/homestretch/internal/roster"
)

// State is the scheduler's position in the turn cycle.
type State string

// Scheduler states.
const (
	StateTraining    State = "training"
	StatePreRace     State = "pre_race"
	StateRaceResults State = "race_results"
	StateComplete    State = "career_complete"
)

// FieldSize is how many horses run in each race: the player plus the
// rivals closest in power.
const FieldSize = 8

// playerTrainingBase is the base gain fed through the growth, form and
// bond multipliers for a player training session.
const playerTrainingBase = 6.0

// GameHistory holds aggregate session counters persisted across saves.
type GameHistory struct {
	CareersCompleted      int             `json:"careersCompleted"`
	TotalRacesRun         int             `json:"totalRacesRun"`
	TotalRacesWon         int             `json:"totalRacesWon"`
	TotalTrainingSessions int             `json:"totalTrainingSessions"`
	TotalEarnings         decimal.Decimal `json:"totalEarnings"`
}

// Config wires an engine together. Player is required; everything else
// falls back to defaults.
type Config struct {
	Player   *models.PlayerHorse
	Roster   *roster.Roster
	Schedule []models.RaceConfig
	RNG      rng.Source
	Logger   *logrus.Logger
	Verbose  bool

	// History seeds the aggregate counters when restoring a saved game.
	History GameHistory
	// Results seeds previously resolved races when restoring.
	Results []*models.RaceResult
}

// Engine is the single-career simulation engine. It is not safe for
// concurrent use; the simulation is synchronous by design.
type Engine struct {
	player   *models.PlayerHorse
	roster   *roster.Roster
	schedule []models.RaceConfig
	policy   *roster.Policy
	mutator  *horse.Mutator
	rng      rng.Source
	logger   *logrus.Logger
	state    State
	history  GameHistory
	results  []*models.RaceResult
}

// NewEngine creates a career engine. A missing roster is generated from
// the player baseline; a missing schedule uses the default four races.
func NewEngine(ctx context.Context, cfg Config) (*Engine, error) {
	if cfg.Player == nil {
		return nil, fmt.Errorf("player horse is required")
	}
	if cfg.RNG == nil {
		cfg.RNG = rng.NewDefault()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Schedule == nil {
		cfg.Schedule = DefaultSchedule()
	}
	if err := validateSchedule(cfg.Schedule); err != nil {
		return nil, err
	}
	if cfg.Roster == nil {
		gen := roster.NewGenerator(cfg.RNG, nil, cfg.Logger, cfg.Verbose)
		generated, err := gen.Generate(ctx, cfg.Player, roster.DefaultSize)
		if err != nil {
			return nil, fmt.Errorf("failed to generate roster: %w", err)
		}
		cfg.Roster = generated
	}

	e := &Engine{
		player:   cfg.Player,
		roster:   cfg.Roster,
		schedule: cfg.Schedule,
		policy:   roster.NewPolicy(cfg.RNG, cfg.Logger, cfg.Verbose),
		mutator:  horse.NewMutator(cfg.RNG, cfg.Logger),
		rng:      cfg.RNG,
		logger:   cfg.Logger,
		state:    StateTraining,
		history:  cfg.History,
		results:  cfg.Results,
	}
	if e.history.TotalEarnings.IsZero() {
		e.history.TotalEarnings = decimal.Zero
	}

	if cfg.Player.Career.Complete() {
		e.state = StateComplete
	} else if e.raceAtTurn(cfg.Player.Career.Turn) != nil {
		e.state = StatePreRace
	}
	return e, nil
}

// State returns the scheduler state.
func (e *Engine) State() State { return e.state }

// Player returns the player horse.
func (e *Engine) Player() *models.PlayerHorse { return e.player }

// Roster returns the rival roster.
func (e *Engine) Roster() *roster.Roster { return e.roster }

// Schedule returns the career race schedule.
func (e *Engine) Schedule() []models.RaceConfig { return e.schedule }

// History returns the aggregate session counters.
func (e *Engine) History() GameHistory { return e.history }

// Results returns the races resolved so far this career, in order.
func (e *Engine) Results() []*models.RaceResult { return e.results }

// NextRace returns the earliest not-yet-completed race at or after the
// current turn, or nil when none remain.
func (e *Engine) NextRace() *models.RaceConfig {
	var next *models.RaceConfig
	for i := range e.schedule {
		rc := &e.schedule[i]
		if rc.Completed || rc.Turn < e.player.Career.Turn {
			continue
		}
		if next == nil || rc.Turn < next.Turn {
			next = rc
		}
	}
	return next
}

// raceAtTurn returns the uncompleted race scheduled exactly on turn.
func (e *Engine) raceAtTurn(turn int) *models.RaceConfig {
	for i := range e.schedule {
		if e.schedule[i].Turn == turn && !e.schedule[i].Completed {
			return &e.schedule[i]
		}
	}
	return nil
}

// scheduledRace returns the engine's own schedule entry for the given
// race ID. Completion is checked and stamped on this entry, never on a
// caller-held copy.
func (e *Engine) scheduledRace(id uuid.UUID) *models.RaceConfig {
	for i := range e.schedule {
		if e.schedule[i].ID == id {
			return &e.schedule[i]
		}
	}
	return nil
}

// Train applies one player training action and advances the turn. Only
// accepted in the training state; a pending race must resolve first.
func (e *Engine) Train(choice roster.TrainingChoice) (int, error) {
	if e.state == StateComplete {
		return 0, models.ErrCareerComplete
	}
	if e.state != StateTraining {
		return 0, fmt.Errorf("cannot train in state %q: a race is pending", e.state)
	}

	gain := 0
	if stat, ok := choice.Stat(); ok {
		gain = e.mutator.IncreaseStat(&e.player.Horse, stat, playerTrainingBase, e.player.BondMultiplier())
		horse.ChangeEnergy(&e.player.Horse, -trainingEnergyCost(choice))
		e.player.ChangeBond(2)
	} else {
		horse.ChangeEnergy(&e.player.Horse, 30)
		e.player.ChangeBond(1)
	}
	horse.RefreshForm(&e.player.Horse)

	e.player.Career.TotalTraining++
	e.history.TotalTrainingSessions++
	metrics.TrainingSessionsTotal.Inc()
	metrics.PlayerPowerLevel.Set(float64(e.player.PowerLevel()))

	e.advanceTurn()
	return gain, nil
}

// advanceTurn moves the career forward one turn, trains every rival,
// and transitions state when a race or career completion is reached.
func (e *Engine) advanceTurn() {
	newTurn := e.player.Career.Turn + 1
	e.policy.AdvanceTurn(e.roster, e.player.Career.Turn, e.upcomingFor(e.player.Career.Turn))
	metrics.RivalTrainingTotal.Add(float64(len(e.roster.Rivals)))

	e.player.Career.Turn = newTurn
	metrics.TurnsAdvancedTotal.Inc()
	metrics.CurrentTurn.Set(float64(newTurn))
	metrics.RosterMeanPower.Set(e.roster.MeanPower())
	metrics.RosterPowerSpread.Set(float64(e.roster.PowerSpread()))

	if e.player.Career.Complete() {
		e.completeCareer()
		return
	}
	if e.raceAtTurn(newTurn) != nil {
		e.state = StatePreRace
		return
	}
	e.state = StateTraining
}

// upcomingFor describes the next race relative to a turn, for the rival
// policy.
func (e *Engine) upcomingFor(turn int) *roster.UpcomingRace {
	var next *models.RaceConfig
	for i := range e.schedule {
		rc := &e.schedule[i]
		if rc.Completed || rc.Turn < turn {
			continue
		}
		if next == nil || rc.Turn < next.Turn {
			next = rc
		}
	}
	if next == nil {
		return nil
	}
	return &roster.UpcomingRace{TurnsAway: next.Turn - turn, Type: next.Type}
}

// RunRace resolves the given scheduled race with the player running the
// chosen strategy. The race must be the one due on the current turn, in
// the pre_race state; a race that already completed is rejected and
// never resolves twice, even from a stale copy of its config. Results
// mutate win/run counters, bond, energy and earnings, and the schedule
// entry is stamped completed.
func (e *Engine) RunRace(cfg *models.RaceConfig, strategy models.Strategy) (*models.RaceResult, error) {
	if e.state == StateComplete {
		return nil, models.ErrCareerComplete
	}
	if cfg == nil {
		return nil, fmt.Errorf("race config is required")
	}
	scheduled := e.scheduledRace(cfg.ID)
	if scheduled == nil {
		return nil, fmt.Errorf("race %q is not on the schedule", cfg.Name)
	}
	if scheduled.Completed {
		return nil, models.ErrRaceCompleted
	}
	if e.state != StatePreRace || scheduled.Turn != e.player.Career.Turn {
		return nil, fmt.Errorf("race %q runs on turn %d, not turn %d", scheduled.Name, scheduled.Turn, e.player.Career.Turn)
	}
	if err := scheduled.Validate(); err != nil {
		return nil, err
	}
	if !strategy.Valid() {
		return nil, models.NewValidationError("invalid_strategy", "unrecognized strategy: "+string(strategy))
	}

	field := e.buildField(strategy)
	result, err := race.Resolve(scheduled, field, e.rng, e.logger)
	if err != nil {
		return nil, err
	}

	e.applyRaceResult(scheduled, result)
	scheduled.MarkCompleted(result.ResolvedAt)
	e.results = append(e.results, result)
	metrics.RacesResolvedTotal.Inc()

	if e.player.Career.Complete() {
		e.completeCareer()
	} else {
		e.state = StateRaceResults
	}
	return result, nil
}

// Continue acknowledges race results and returns to training.
func (e *Engine) Continue() error {
	switch e.state {
	case StateRaceResults:
		e.state = StateTraining
		return nil
	case StateComplete:
		return models.ErrCareerComplete
	default:
		return fmt.Errorf("nothing to acknowledge in state %q", e.state)
	}
}

// buildField enters the player plus the rivals closest in power, up to
// the fixed field size.
func (e *Engine) buildField(playerStrategy models.Strategy) []race.Entrant {
	rivals := make([]*models.RivalHorse, len(e.roster.Rivals))
	copy(rivals, e.roster.Rivals)

	playerPower := e.player.PowerLevel()
	sort.SliceStable(rivals, func(i, j int) bool {
		di := abs(rivals[i].PowerLevel() - playerPower)
		dj := abs(rivals[j].PowerLevel() - playerPower)
		if di != dj {
			return di < dj
		}
		return rivals[i].ID.String() < rivals[j].ID.String()
	})

	field := []race.Entrant{{Horse: &e.player.Horse, Strategy: playerStrategy}}
	for _, rival := range rivals {
		if len(field) >= FieldSize {
			break
		}
		field = append(field, race.Entrant{Horse: &rival.Horse, Strategy: rival.Strategy})
	}
	return field
}

func (e *Engine) applyRaceResult(cfg *models.RaceConfig, result *models.RaceResult) {
	for i := range result.Placements {
		placement := &result.Placements[i]
		metrics.RacePerformanceScore.Observe(placement.Performance)

		if placement.HorseID == e.player.ID {
			e.player.Career.RacesRun++
			e.history.TotalRacesRun++
			if placement.Rank == 1 {
				e.player.Career.RacesWon++
				e.history.TotalRacesWon++
				e.player.ChangeBond(5)
			} else {
				e.player.ChangeBond(1)
			}
			e.history.TotalEarnings = e.history.TotalEarnings.Add(placement.Prize)
			horse.ChangeEnergy(&e.player.Horse, -20)
			horse.RefreshForm(&e.player.Horse)
			continue
		}

		if rival := e.roster.FindRival(placement.HorseID); rival != nil {
			rival.RecordRace(models.RivalRaceResult{
				Turn:        cfg.Turn,
				Position:    placement.Rank,
				Time:        placement.Time,
				Performance: placement.Performance,
			})
			horse.ChangeEnergy(&rival.Horse, -20)
			horse.RefreshForm(&rival.Horse)
		}
	}
}

func (e *Engine) completeCareer() {
	if e.state == StateComplete {
		return
	}
	e.state = StateComplete
	e.history.CareersCompleted++
	metrics.CareersCompletedTotal.Inc()
	e.logger.WithFields(logrus.Fields{
		"horse":     e.player.Name,
		"races_won": e.player.Career.RacesWon,
		"races_run": e.player.Career.RacesRun,
		"power":     e.player.PowerLevel(),
	}).Info("Career complete")
}

// FinishCareer extracts legacy bonuses from a completed career. The
// player horse is immutable once the career completes; this is the only
// remaining operation on it.
func (e *Engine) FinishCareer() (models.LegacyBonuses, error) {
	if e.state != StateComplete {
		return models.LegacyBonuses{}, fmt.Errorf("career is not complete")
	}
	return e.player.ExtractLegacy(), nil
}

func trainingEnergyCost(choice roster.TrainingChoice) int {
	switch choice {
	case roster.TrainSpeed, roster.TrainPower:
		return 15
	case roster.TrainStamina:
		return 10
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
