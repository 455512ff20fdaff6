// Package service orchestrates sweeps and career archiving for the
// daemon and CLI tools.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/repository"
	"github.com/yourusername/homestretch/internal/sweep"
)

// Publisher receives each completed sweep result, such as the
// spectator broadcast hub.
type Publisher interface {
	PublishSweep(summary interface{})
}

// SweepService runs automated career sweeps and archives completed
// careers when a repository is configured.
type SweepService struct {
	careerRepo repository.CareerRepository
	resultRepo repository.RaceResultRepository
	publisher  Publisher
	metrics    *SweepMetrics
	logger     *logrus.Logger
	careers    int
	maxTurns   int
}

// NewSweepService creates a new sweep service. Repositories may be nil,
// in which case outcomes are aggregated but not archived.
func NewSweepService(
	careerRepo repository.CareerRepository,
	resultRepo repository.RaceResultRepository,
	logger *logrus.Logger,
	careers int,
	maxTurns int,
) *SweepService {
	if careers <= 0 {
		careers = 100
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &SweepService{
		careerRepo: careerRepo,
		resultRepo: resultRepo,
		metrics:    NewSweepMetrics(),
		logger:     logger,
		careers:    careers,
		maxTurns:   maxTurns,
	}
}

// SetPublisher attaches a sweep result publisher. Must be set before
// the first RunSweep call.
func (s *SweepService) SetPublisher(p Publisher) {
	s.publisher = p
}

// Metrics returns the service's cumulative metrics tracker.
func (s *SweepService) Metrics() *SweepMetrics {
	return s.metrics
}

// RunSweep executes one sweep and archives its outcomes.
func (s *SweepService) RunSweep(ctx context.Context) (*sweep.Result, error) {
	startTime := time.Now()

	result, err := sweep.Run(ctx, sweep.Config{
		Careers:  s.careers,
		MaxTurns: s.maxTurns,
	}, s.logger)
	if err != nil {
		s.metrics.RecordError()
		return nil, fmt.Errorf("sweep failed: %w", err)
	}

	s.metrics.RecordSweep(result.Careers)

	if s.careerRepo != nil && s.resultRepo != nil {
		if err := s.archiveOutcomes(ctx, result); err != nil {
			// Archiving failure does not invalidate the sweep itself
			s.metrics.RecordError()
			s.logger.WithError(err).Error("Failed to archive sweep outcomes")
		}
	}

	if s.publisher != nil {
		s.publisher.PublishSweep(result)
	}

	s.metrics.mu.Lock()
	s.metrics.Duration += time.Since(startTime)
	s.metrics.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"careers":  result.Careers,
		"duration": result.Duration,
		"metrics":  s.metrics.String(),
	}).Info("Sweep service run complete")

	return result, nil
}

// archiveOutcomes writes each completed career and its race placements
// to the archive database.
func (s *SweepService) archiveOutcomes(ctx context.Context, result *sweep.Result) error {
	completedAt := time.Now()

	for i := range result.Outcomes {
		outcome := &result.Outcomes[i]

		record := &models.CareerRecord{
			ID:            uuid.New(),
			HorseName:     outcome.HorseName,
			FinalStats:    outcome.FinalStats,
			RacesWon:      outcome.RacesWon,
			RacesRun:      outcome.RacesRun,
			TotalTraining: outcome.Training,
			Earnings:      outcome.Earnings,
			CompletedAt:   completedAt,
		}

		if err := s.careerRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to archive career %q: %w", outcome.HorseName, err)
		}

		if err := s.resultRepo.InsertBatch(ctx, record.ID, outcome.Results); err != nil {
			return fmt.Errorf("failed to archive results for career %q: %w", outcome.HorseName, err)
		}

		s.metrics.RecordArchive(len(outcome.Results))
	}

	return nil
}
