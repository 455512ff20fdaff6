// Package main provides the interactive career CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/homestretch/internal/career"
	"github.com/yourusername/homestretch/internal/config"
	"github.com/yourusername/homestretch/internal/genetics"
	"github.com/yourusername/homestretch/internal/logger"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/names"
	"github.com/yourusername/homestretch/internal/rng"
	"github.com/yourusername/homestretch/internal/roster"
	"github.com/yourusername/homestretch/internal/savegame"
	"github.com/yourusername/homestretch/internal/standings"
)

type app struct {
	cfg    *config.Config
	logger *logrus.Logger
	events *logger.CareerLogger
	store  *savegame.FileStore
	rng    rng.Source
}

var (
	configPath string
	savePath   string
)

func main() {
	root := &cobra.Command{
		Use:           "career",
		Short:         "Turn-based horse racing career simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "Path to config file")
	root.PersistentFlags().StringVar(&savePath, "save", "", "Override save file path")

	root.AddCommand(
		newCommand(),
		statusCommand(),
		trainCommand(),
		raceCommand(),
		continueCommand(),
		standingsCommand(),
		autoCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, secrets and logging shared by every subcommand.
func setup() (*app, error) {
	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return nil, fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	path := savePath
	if path == "" {
		path = cfg.Simulation.SavePath
	}

	src := rng.NewDefault()
	if cfg.Simulation.Seed != 0 {
		src = rng.New(cfg.Simulation.Seed)
	}

	log := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	return &app{
		cfg:    cfg,
		logger: log,
		events: logger.NewCareerLogger(log),
		store:  savegame.NewFileStore(path),
		rng:    src,
	}, nil
}

// load restores the engine from the save file.
func (a *app) load(ctx context.Context) (*career.Engine, error) {
	doc, err := a.store.Load()
	if err != nil {
		return nil, err
	}

	fromVersion := doc.Version
	engine, err := savegame.Restore(ctx, doc, a.rng, a.logger)
	if err != nil {
		return nil, err
	}
	if fromVersion < savegame.CurrentVersion {
		a.events.LogSaveUpgraded(fromVersion, doc.Version, engine.Player().Career.Turn)
	}
	return engine, nil
}

// persist writes the engine state back to the save file.
func (a *app) persist(engine *career.Engine) error {
	return a.store.Save(savegame.Snapshot(engine))
}

// supplier builds the rival name supplier: the external name service
// when configured, the built-in word list otherwise.
func (a *app) supplier() names.Supplier {
	if a.cfg.Names.ServiceURL == "" {
		return names.NewWordListSupplier(a.rng)
	}
	httpCfg := names.DefaultHTTPSupplierConfig(a.cfg.Names.ServiceURL)
	httpCfg.APIKey = a.cfg.Names.APIKey
	if a.cfg.Names.RateLimit > 0 {
		httpCfg.RateLimit = a.cfg.Names.RateLimit
	}
	return names.NewHTTPSupplier(httpCfg, a.logger)
}

func newCommand() *cobra.Command {
	var (
		name       string
		breed      string
		preference string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new career",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			if a.store.Exists() {
				return fmt.Errorf("a save already exists; delete it before starting a new career")
			}
			ctx := cmd.Context()

			gen := genetics.NewGenerator(a.rng, a.logger)
			rolled, err := gen.Generate(genetics.Options{
				Breed:      genetics.Breed(breed),
				Preference: genetics.Preference(preference),
			})
			if err != nil {
				return err
			}

			player := models.NewPlayerHorse(name, rolled.Stats, rolled.Growth, a.cfg.Simulation.MaxTurns, models.LegacyBonuses{})

			rosterGen := roster.NewGenerator(a.rng, a.supplier(), a.logger, a.cfg.Simulation.Verbose)
			rivals, err := rosterGen.Generate(ctx, player, a.cfg.Roster.Size)
			if err != nil {
				return err
			}

			engine, err := career.NewEngine(ctx, career.Config{
				Player:  player,
				Roster:  rivals,
				RNG:     a.rng,
				Logger:  a.logger,
				Verbose: a.cfg.Simulation.Verbose,
			})
			if err != nil {
				return err
			}
			if err := a.persist(engine); err != nil {
				return err
			}

			fmt.Printf("%s is ready to race.\n", player.Name)
			fmt.Printf("  Speed %d  Stamina %d  Power %d\n", player.Stats.Speed, player.Stats.Stamina, player.Stats.Power)
			for _, line := range rolled.Report {
				fmt.Printf("  - %s\n", line)
			}
			fmt.Printf("  Rivals: %d\n", len(rivals.Rivals))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Homestretch", "Horse name")
	cmd.Flags().StringVar(&breed, "breed", string(genetics.BreedThoroughbred), "Breed: thoroughbred, arabian, quarter_horse, mustang")
	cmd.Flags().StringVar(&preference, "preference", "", "Customization bias: sprint, stayer, front_runner")
	return cmd
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current career state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			engine, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(engine.GameStatus())
			return nil
		},
	}
}

func trainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "train <speed|stamina|power|rest>",
		Short: "Train for one turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			engine, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			choice := roster.TrainingChoice(strings.ToLower(args[0]))
			gain, err := engine.Train(choice)
			if err != nil {
				return err
			}
			if err := a.persist(engine); err != nil {
				return err
			}

			player := engine.Player()
			a.events.LogTrainingSession(player.Name, string(choice), player.Career.Turn-1, gain, player.Condition.Energy, player.Bond)

			if choice == roster.TrainRest {
				fmt.Printf("Rested. Energy is now %d.\n", engine.Player().Condition.Energy)
			} else {
				fmt.Printf("Trained %s: +%d.\n", choice, gain)
			}
			fmt.Printf("Turn %d/%d, state %s.\n", engine.Player().Career.Turn, engine.Player().Career.MaxTurns, engine.State())
			return nil
		},
	}
}

func raceCommand() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "race",
		Short: "Run the scheduled race for this turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			engine, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			next := engine.NextRace()
			if next == nil {
				return fmt.Errorf("no race remains on the schedule")
			}
			result, err := engine.RunRace(next, models.Strategy(strings.ToUpper(strategy)))
			if err != nil {
				return err
			}
			if err := a.persist(engine); err != nil {
				return err
			}

			a.logRace(engine, next, result)
			printResult(result, engine.Player().ID.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(models.StrategyMid), "Running style: FRONT, MID, LATE")
	return cmd
}

func continueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Acknowledge race results and return to training",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			engine, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			if err := engine.Continue(); err != nil {
				return err
			}
			if err := a.persist(engine); err != nil {
				return err
			}
			fmt.Printf("Back to training. Turn %d/%d.\n", engine.Player().Career.Turn, engine.Player().Career.MaxTurns)
			return nil
		},
	}
}

func standingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the career leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			engine, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			board := standings.NewService(time.Minute).Board(engine)
			fmt.Printf("Standings, turn %d:\n", board.Turn)
			for _, entry := range board.Entries {
				marker := " "
				if entry.Player {
					marker = "*"
				}
				fmt.Printf("%s %3d. %-28s wins %d/%d, power %d\n", marker, entry.Rank, entry.Name, entry.Wins, entry.Races, entry.Power)
			}
			return nil
		},
	}
}

func autoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Play the rest of the career automatically",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			engine, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			for engine.State() != career.StateComplete {
				switch engine.State() {
				case career.StateTraining:
					if _, err := engine.Train(autoChoice(engine.Player())); err != nil {
						return err
					}
				case career.StatePreRace:
					next := engine.NextRace()
					if next == nil {
						return fmt.Errorf("pre_race state with no scheduled race")
					}
					result, err := engine.RunRace(next, engine.Player().Strategy)
					if err != nil {
						return err
					}
					a.logRace(engine, next, result)
					printResult(result, engine.Player().ID.String())
				case career.StateRaceResults:
					if err := engine.Continue(); err != nil {
						return err
					}
				}
			}

			if err := a.persist(engine); err != nil {
				return err
			}

			legacy, err := engine.FinishCareer()
			if err != nil {
				return err
			}
			player := engine.Player()
			a.events.LogCareerComplete(player.Name, player.Career.RacesWon, player.Career.RacesRun, player.Career.TotalTraining, player.PowerLevel())
			fmt.Printf("Career complete: %s won %d of %d races, final power %d.\n",
				player.Name, player.Career.RacesWon, player.Career.RacesRun, player.PowerLevel())
			if !legacy.Empty() {
				fmt.Printf("Legacy bonuses for the next career: speed +%d, stamina +%d, power +%d.\n",
					legacy.Speed, legacy.Stamina, legacy.Power)
			}
			return nil
		},
	}
}

// logRace emits the structured race-resolved event with the player's placement.
func (a *app) logRace(engine *career.Engine, cfg *models.RaceConfig, result *models.RaceResult) {
	playerRank := 0
	if p := result.PlacementFor(engine.Player().ID); p != nil {
		playerRank = p.Rank
	}
	winner := ""
	if w := result.Winner(); w != nil {
		winner = w.HorseName
	}
	a.events.LogRaceResolved(result.RaceName, string(cfg.Type), result.Turn, result.FieldSize(), playerRank, winner)
}

func autoChoice(player *models.PlayerHorse) roster.TrainingChoice {
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

func printStatus(status career.GameStatus) {
	c := status.Character
	fmt.Printf("Turn %d/%d (%s)\n", status.Turn, status.MaxTurns, status.State)
	fmt.Printf("%s: speed %d, stamina %d, power %d (total %d)\n", c.Name, c.Stats.Speed, c.Stats.Stamina, c.Stats.Power, c.Power)
	fmt.Printf("Energy %d, form %s, bond %d. Record %d/%d.\n", c.Energy, c.Form, c.Bond, c.Wins, c.Runs)

	if status.NextRace != nil {
		fmt.Printf("Next race: %s (%s, %s) on turn %d, %d turn(s) away.\n",
			status.NextRace.Name, status.NextRace.Type, status.NextRace.Surface, status.NextRace.Turn, status.NextRace.TurnsAway)
	}

	fmt.Println("Training options:")
	for _, opt := range status.TrainingOptions {
		fmt.Printf("  %-8s energy -%d, effectiveness %d%%\n", opt.Choice, opt.EnergyCost, opt.Effectiveness)
	}
	for _, rec := range status.Recommendations {
		fmt.Printf("Hint: %s\n", rec)
	}
}

func printResult(result *models.RaceResult, playerID string) {
	fmt.Printf("%s (turn %d):\n", result.RaceName, result.Turn)
	for _, p := range result.Placements {
		marker := " "
		if p.HorseID.String() == playerID {
			marker = "*"
		}
		fmt.Printf("%s %2d. %-28s %.2fs  prize %s\n", marker, p.Rank, p.HorseName, p.Time, p.Prize.StringFixed(2))
	}
}
