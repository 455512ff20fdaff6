// Package metrics provides the centralized Prometheus registry for the
// career simulator.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	TrainingSessionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "homestretch",
		Name:      "training_sessions_total",
		Help:      "Total number of player training sessions",
	})
	RivalTrainingTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "homestretch",
		Name:      "rival_training_total",
		Help:      "Total number of rival training actions applied",
	})
	TurnsAdvancedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "homestretch",
		Name:      "turns_advanced_total",
		Help:      "Total number of career turns advanced",
	})
	RacesResolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "homestretch",
		Name:      "races_resolved_total",
		Help:      "Total number of races resolved",
	})
	CareersCompletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "homestretch",
		Name:      "careers_completed_total",
		Help:      "Total number of careers run to completion",
	})
	SweepsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "homestretch",
		Name:      "sweeps_total",
		Help:      "Total number of batch simulation sweeps executed",
	})
)

// Gauge metrics
var (
	CurrentTurn = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "homestretch",
		Name:      "current_turn",
		Help:      "Current turn of the active career",
	})
	PlayerPowerLevel = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "homestretch",
		Name:      "player_power_level",
		Help:      "Summed stat total of the player horse",
	})
	RosterMeanPower = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "homestretch",
		Name:      "roster_mean_power",
		Help:      "Mean total power across the rival roster",
	})
	RosterPowerSpread = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "homestretch",
		Name:      "roster_power_spread",
		Help:      "Difference between strongest and weakest rival power",
	})
)

// Histogram metrics
var (
	RacePerformanceScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "homestretch",
		Name:      "race_performance_score",
		Help:      "Distribution of computed race performance scores",
		Buckets:   []float64{20, 40, 60, 80, 100, 120, 140},
	})
	SweepDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "homestretch",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of batch simulation sweeps in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(TrainingSessionsTotal)
		registry.MustRegister(RivalTrainingTotal)
		registry.MustRegister(TurnsAdvancedTotal)
		registry.MustRegister(RacesResolvedTotal)
		registry.MustRegister(CareersCompletedTotal)
		registry.MustRegister(SweepsTotal)

		registry.MustRegister(CurrentTurn)
		registry.MustRegister(PlayerPowerLevel)
		registry.MustRegister(RosterMeanPower)
		registry.MustRegister(RosterPowerSpread)

		registry.MustRegister(RacePerformanceScore)
		registry.MustRegister(SweepDuration)
	})
	return registry
}

// Handler returns an HTTP handler serving the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(InitRegistry(), promhttp.HandlerOpts{})
}
