// Package savegame defines the persisted career document and its
// codec, including detection and upgrade of legacy-shaped saves. Where
// the bytes live (file, database, elsewhere) is the caller's concern;
// this package owns only the schema.
package savegame

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/homestretch/internal/career"
	"github.com/yourusername/homestretch/internal/models"
)

// CurrentVersion is the save schema version this build writes.
// Version 1 saves predate the rival roster and are upgraded on load.
const CurrentVersion = 2

// RosterDocument is the persisted rival roster.
type RosterDocument struct {
	ID              uuid.UUID            `json:"id" validate:"required"`
	PlayerHorseName string               `json:"playerHorseName"`
	CurrentTurn     int                  `json:"currentTurn" validate:"min=1"`
	Rivals          []*models.RivalHorse `json:"rivals" validate:"dive,required"`
}

// ScheduledRace is one schedule entry, annotated with its result once
// resolved.
type ScheduledRace struct {
	models.RaceConfig
	Results *models.RaceResult `json:"results,omitempty"`
}

// Document is the full persisted career state.
type Document struct {
	Character    *models.PlayerHorse `json:"character" validate:"required"`
	Roster       *RosterDocument     `json:"nphRoster,omitempty"`
	RaceSchedule []ScheduledRace     `json:"raceSchedule" validate:"required,min=1"`
	GameHistory  career.GameHistory  `json:"gameHistory"`
	Version      int                 `json:"version" validate:"min=1"`
	Timestamp    time.Time           `json:"timestamp"`
}

// Snapshot captures a running engine into a persistable document.
func Snapshot(e *career.Engine) *Document {
	rosterState := e.Roster()
	doc := &Document{
		Character: e.Player(),
		Roster: &RosterDocument{
			ID:              rosterState.ID,
			PlayerHorseName: rosterState.PlayerName,
			CurrentTurn:     e.Player().Career.Turn,
			Rivals:          rosterState.Rivals,
		},
		GameHistory: e.History(),
		Version:     CurrentVersion,
		Timestamp:   time.Now().UTC(),
	}

	resultsByRace := make(map[uuid.UUID]*models.RaceResult)
	for _, result := range e.Results() {
		resultsByRace[result.RaceID] = result
	}
	for _, rc := range e.Schedule() {
		doc.RaceSchedule = append(doc.RaceSchedule, ScheduledRace{
			RaceConfig: rc,
			Results:    resultsByRace[rc.ID],
		})
	}
	return doc
}
