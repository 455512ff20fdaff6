// Package main provides the entry point for the sweep CLI tool.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/config"
	"github.com/yourusername/homestretch/internal/logger"
	"github.com/yourusername/homestretch/internal/sweep"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		careers    = flag.Int("careers", 0, "Number of careers to simulate (overrides config)")
		maxTurns   = flag.Int("max-turns", 0, "Career length in turns (overrides config)")
		seed       = flag.Int64("seed", 0, "Sweep seed for reproducible runs")
		output     = flag.String("output", "", "Write the full JSON result to this path")
	)
	flag.Parse()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	sweepCfg := sweep.Config{
		Careers:  cfg.Daemon.SweepCareers,
		MaxTurns: cfg.Simulation.MaxTurns,
		Seed:     cfg.Simulation.Seed,
		Verbose:  cfg.Simulation.Verbose,
	}
	if *careers > 0 {
		sweepCfg.Careers = *careers
	}
	if *maxTurns > 0 {
		sweepCfg.MaxTurns = *maxTurns
	}
	if *seed != 0 {
		sweepCfg.Seed = *seed
	}

	appLog.WithFields(logrus.Fields{
		"careers":   sweepCfg.Careers,
		"max_turns": sweepCfg.MaxTurns,
	}).Info("Starting sweep")

	result, err := sweep.Run(context.Background(), sweepCfg, appLog)
	if err != nil {
		appLog.Fatalf("Sweep failed: %v", err)
	}

	printReport(result)

	if *output != "" {
		if err := exportJSON(result, *output); err != nil {
			appLog.Fatalf("Failed to write result: %v", err)
		}
		appLog.WithField("path", *output).Info("Result written")
	}
}

func printReport(result *sweep.Result) {
	fmt.Printf("Careers simulated: %d in %v\n", result.Careers, result.Duration)
	fmt.Printf("Final power: mean %.1f, std %.1f (p10 %.0f, p50 %.0f, p90 %.0f)\n",
		result.MeanFinalPower, result.StdFinalPower,
		result.PowerPercentiles["p10"], result.PowerPercentiles["p50"], result.PowerPercentiles["p90"])
	fmt.Printf("Mean wins per career: %.2f of 4 races\n", result.MeanWins)
	fmt.Printf("Total prize money: %s\n", result.TotalEarnings.StringFixed(2))

	wins := make([]int, 0, len(result.WinDistribution))
	for w := range result.WinDistribution {
		wins = append(wins, w)
	}
	sort.Ints(wins)
	fmt.Println("Win distribution:")
	for _, w := range wins {
		fmt.Printf("  %d wins: %d careers\n", w, result.WinDistribution[w])
	}
}

func exportJSON(result *sweep.Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
