// Package logger provides career-event logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// CareerLogger provides dedicated logging for career progression events.
type CareerLogger struct {
	*logrus.Entry
}

// NewCareerLogger creates a new career logger.
func NewCareerLogger(baseLogger *logrus.Logger) *CareerLogger {
	return &CareerLogger{
		Entry: baseLogger.WithField("component", "career"),
	}
}

// LogTrainingSession logs one player training action.
func (cl *CareerLogger) LogTrainingSession(horseName, training string, turn, gain, energy, bond int) {
	cl.WithFields(logrus.Fields{
		"horse":    horseName,
		"training": training,
		"turn":     turn,
		"gain":     gain,
		"energy":   energy,
		"bond":     bond,
	}).Info("Training session completed")
}

// LogRaceResolved logs a resolved race with the player's placement.
func (cl *CareerLogger) LogRaceResolved(raceName, raceType string, turn, fieldSize, playerRank int, winner string) {
	cl.WithFields(logrus.Fields{
		"race":        raceName,
		"race_type":   raceType,
		"turn":        turn,
		"field_size":  fieldSize,
		"player_rank": playerRank,
		"winner":      winner,
		"event_type":  "race_resolved",
	}).Info("Race resolved")
}

// LogCareerComplete logs career completion with final counters.
func (cl *CareerLogger) LogCareerComplete(horseName string, racesWon, racesRun, totalTraining, finalPower int) {
	cl.WithFields(logrus.Fields{
		"horse":          horseName,
		"races_won":      racesWon,
		"races_run":      racesRun,
		"total_training": totalTraining,
		"final_power":    finalPower,
		"event_type":     "career_complete",
	}).Info("Career complete")
}

// LogSaveUpgraded logs a legacy save upgrade.
func (cl *CareerLogger) LogSaveUpgraded(fromVersion, toVersion, turn int) {
	cl.WithFields(logrus.Fields{
		"from_version": fromVersion,
		"to_version":   toVersion,
		"turn":         turn,
		"event_type":   "save_upgraded",
	}).Info("Legacy save upgraded")
}
