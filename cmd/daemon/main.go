// Package main provides the entry point for the simulation daemon.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/broadcast"
	"github.com/yourusername/homestretch/internal/config"
	"github.com/yourusername/homestretch/internal/database"
	"github.com/yourusername/homestretch/internal/health"
	"github.com/yourusername/homestretch/internal/logger"
	"github.com/yourusername/homestretch/internal/metrics"
	"github.com/yourusername/homestretch/internal/repository"
	"github.com/yourusername/homestretch/internal/scheduler"
	"github.com/yourusername/homestretch/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Homestretch daemon starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the career archive when enabled
	var (
		db    *database.DB
		repos *repository.Repositories
	)
	if cfg.Database.Enabled {
		db, err = database.Initialize(ctx, cfg)
		if err != nil {
			appLog.WithError(err).Fatal("Failed to initialize archive database")
		}
		defer db.Close()

		repos, err = repository.NewRepositories(db)
		if err != nil {
			appLog.WithError(err).Fatal("Failed to create repositories")
		}
		appLog.Info("Career archive connected")
	} else {
		appLog.Info("Career archive disabled; sweeps will not be persisted")
	}

	// Serve Prometheus metrics
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsServer := &http.Server{
			Addr:        fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler:     mux,
			ReadTimeout: 5 * time.Second,
		}
		go func() {
			appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server error")
			}
		}()
		defer metricsServer.Shutdown(context.Background())
	}

	// Start the spectator broadcast hub
	hub := broadcast.NewHub(appLog)
	defer hub.Close()
	if cfg.Daemon.BroadcastAddress != "" {
		wsMux := http.NewServeMux()
		wsMux.Handle("/ws", hub.Handler())
		wsServer := &http.Server{
			Addr:    cfg.Daemon.BroadcastAddress,
			Handler: wsMux,
		}
		go func() {
			appLog.WithField("address", cfg.Daemon.BroadcastAddress).Info("Broadcast server starting")
			if err := wsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Broadcast server error")
			}
		}()
		defer wsServer.Shutdown(context.Background())
	}

	// Wire the sweep service and its schedule
	var (
		careerRepo repository.CareerRepository
		resultRepo repository.RaceResultRepository
	)
	if repos != nil {
		careerRepo = repos.Career
		resultRepo = repos.RaceResult
	}
	sweepSvc := service.NewSweepService(careerRepo, resultRepo, appLog, cfg.Daemon.SweepCareers, cfg.Simulation.MaxTurns)
	sweepSvc.SetPublisher(hub)

	sched := scheduler.NewScheduler(sweepSvc, appLog)
	if cfg.Daemon.SweepCron != "" {
		if err := sched.ScheduleSweep(cfg.Daemon.SweepCron); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule sweep")
		}
		if err := sched.Start(); err != nil {
			appLog.WithError(err).Fatal("Failed to start scheduler")
		}
		defer sched.Stop()
		appLog.WithField("next_run", sched.GetNextRun()).Info("Sweep scheduler running")
	} else {
		// No cron configured: run one sweep immediately, then idle
		go func() {
			if _, err := sweepSvc.RunSweep(ctx); err != nil {
				appLog.WithError(err).Error("Initial sweep failed")
			}
		}()
	}

	// Health server
	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Port:        cfg.Daemon.HealthPort,
		Logger:      appLog,
		DB:          dbPinger(db),
	})
	healthServer.RegisterCheck("scheduler", func(ctx context.Context) error {
		if cfg.Daemon.SweepCron != "" && !sched.IsRunning() {
			return fmt.Errorf("sweep scheduler is not running")
		}
		return nil
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthServer.SetReady(true)

	appLog.WithFields(logrus.Fields{
		"archive":    cfg.Database.Enabled,
		"sweep_cron": cfg.Daemon.SweepCron,
		"broadcast":  cfg.Daemon.BroadcastAddress,
	}).Info("Daemon is running")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)
	cancel()

	// Give components time to cleanup
	time.Sleep(2 * time.Second)

	appLog.Info("Homestretch daemon shut down successfully")
}

// dbPinger adapts a possibly-nil DB to the health server interface
// without handing it a typed nil.
func dbPinger(db *database.DB) health.DatabasePinger {
	if db == nil {
		return nil
	}
	return db
}
