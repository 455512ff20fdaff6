package savegame

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/career"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
	"github.com/yourusername/homestretch/internal/roster"
)

// Encode serializes a document to indented JSON.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode save document: %w", err)
	}
	return data, nil
}

// Decode parses and validates a save document. Corrupted data is
// rejected with a descriptive error; legacy shapes pass decoding and
// are handled by Upgrade.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("corrupted save data: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document's structural invariants.
func Validate(doc *Document) error {
	v := validator.New()
	if err := v.Struct(doc); err != nil {
		return fmt.Errorf("invalid save document: %w", err)
	}
	if doc.Version > CurrentVersion {
		return models.NewValidationError("unsupported_version", fmt.Sprintf("save version %d is newer than supported version %d", doc.Version, CurrentVersion))
	}
	for _, stat := range models.AllStats() {
		v := doc.Character.Stats.Get(stat)
		if v < 1 || v > 100 {
			return models.NewValidationError("stat_out_of_range", fmt.Sprintf("character %s=%d outside [1,100]", stat, v))
		}
	}
	return nil
}

// Upgrade brings a legacy document up to the current schema. A save
// written before the roster existed gets a fresh roster generated from
// the character's power level and fast-forwarded to the current turn so
// rival strength is plausible for mid-career loads.
func Upgrade(ctx context.Context, doc *Document, src rng.Source, logger *logrus.Logger) error {
	if logger == nil {
		logger = logrus.New()
	}
	if doc.Version == CurrentVersion && doc.Roster != nil {
		return nil
	}

	if doc.Roster == nil {
		gen := roster.NewGenerator(src, nil, logger, false)
		generated, err := gen.Generate(ctx, doc.Character, roster.DefaultSize)
		if err != nil {
			return fmt.Errorf("failed to regenerate legacy roster: %w", err)
		}

		// Fast-forward rivals so they are not stuck at turn-1 strength.
		policy := roster.NewPolicy(src, logger, false)
		for turn := 1; turn < doc.Character.Career.Turn; turn++ {
			policy.AdvanceTurn(generated, turn, nil)
		}

		doc.Roster = &RosterDocument{
			ID:              generated.ID,
			PlayerHorseName: doc.Character.Name,
			CurrentTurn:     doc.Character.Career.Turn,
			Rivals:          generated.Rivals,
		}
		logger.WithFields(logrus.Fields{
			"turn":   doc.Character.Career.Turn,
			"rivals": len(generated.Rivals),
		}).Info("Upgraded legacy save: regenerated and fast-forwarded roster")
	}

	doc.Version = CurrentVersion
	return nil
}

// Restore rebuilds a running career engine from a document. Legacy
// documents are upgraded first.
func Restore(ctx context.Context, doc *Document, src rng.Source, logger *logrus.Logger) (*career.Engine, error) {
	if err := Upgrade(ctx, doc, src, logger); err != nil {
		return nil, err
	}

	schedule := make([]models.RaceConfig, 0, len(doc.RaceSchedule))
	var results []*models.RaceResult
	for _, entry := range doc.RaceSchedule {
		schedule = append(schedule, entry.RaceConfig)
		if entry.Results != nil {
			results = append(results, entry.Results)
		}
	}

	return career.NewEngine(ctx, career.Config{
		Player: doc.Character,
		Roster: &roster.Roster{
			ID:         doc.Roster.ID,
			PlayerName: doc.Roster.PlayerHorseName,
			Rivals:     doc.Roster.Rivals,
		},
		Schedule: schedule,
		RNG:      src,
		Logger:   logger,
		History:  doc.GameHistory,
		Results:  results,
	})
}
