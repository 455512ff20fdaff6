package standings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/homestretch/internal/career"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
	"github.com/yourusername/homestretch/internal/roster"
)

func testEngine(t *testing.T) *career.Engine {
	t.Helper()
	stats := models.Stats{Speed: 50, Stamina: 50, Power: 50}
	growth := models.GrowthRates{Speed: models.GrowthB, Stamina: models.GrowthB, Power: models.GrowthB}
	player := models.NewPlayerHorse("Board Test", stats, growth, career.DefaultMaxTurns, models.LegacyBonuses{})

	e, err := career.NewEngine(context.Background(), career.Config{
		Player: player,
		RNG:    rng.New(21),
	})
	require.NoError(t, err)
	return e
}

func TestBoardCoversWholeField(t *testing.T) {
	e := testEngine(t)
	board := NewService(time.Minute).Board(e)

	assert.Equal(t, e.Roster().ID, board.RosterID)
	assert.Equal(t, 1, board.Turn)
	require.Len(t, board.Entries, roster.DefaultSize+1)

	playerRows := 0
	for i, entry := range board.Entries {
		assert.Equal(t, i+1, entry.Rank)
		if entry.Player {
			playerRows++
			assert.Equal(t, "Board Test", entry.Name)
		}
	}
	assert.Equal(t, 1, playerRows)
}

func TestBoardOrdersByWinsThenPower(t *testing.T) {
	e := testEngine(t)
	// Hand one rival a win so ordering is not power-only
	winner := e.Roster().Rivals[0]
	winner.RecordRace(models.RivalRaceResult{Turn: 4, Position: 1})

	board := NewService(time.Minute).Board(e)
	assert.Equal(t, winner.ID, board.Entries[0].HorseID)

	for i := 1; i < len(board.Entries); i++ {
		prev, cur := board.Entries[i-1], board.Entries[i]
		if prev.Wins == cur.Wins {
			if prev.Power == cur.Power {
				assert.Less(t, prev.Name, cur.Name)
				continue
			}
			assert.Greater(t, prev.Power, cur.Power)
		} else {
			assert.Greater(t, prev.Wins, cur.Wins)
		}
	}
}

func TestBoardCachesPerTurn(t *testing.T) {
	e := testEngine(t)
	svc := NewService(time.Minute)

	before := svc.Board(e)

	// Mutating the roster without advancing the turn serves the stale board
	e.Roster().Rivals[0].RecordRace(models.RivalRaceResult{Turn: 4, Position: 1})
	cached := svc.Board(e)
	assert.Equal(t, before.Entries[0].HorseID, cached.Entries[0].HorseID)

	// A new turn recomputes
	_, err := e.Train(roster.TrainRest)
	require.NoError(t, err)
	fresh := svc.Board(e)
	assert.Equal(t, 2, fresh.Turn)
	assert.Equal(t, e.Roster().Rivals[0].ID, fresh.Entries[0].HorseID)
}

func playerEntry(t *testing.T, board Board) Entry {
	t.Helper()
	for _, entry := range board.Entries {
		if entry.Player {
			return entry
		}
	}
	t.Fatal("no player entry on board")
	return Entry{}
}

func TestBoardRecomputesAfterRaceResolves(t *testing.T) {
	e := testEngine(t)
	svc := NewService(time.Minute)

	for e.State() == career.StateTraining {
		_, err := e.Train(roster.TrainRest)
		require.NoError(t, err)
	}
	require.Equal(t, career.StatePreRace, e.State())

	before := svc.Board(e)
	assert.Zero(t, playerEntry(t, before).Races)

	// Resolving a race changes wins and race counts without advancing
	// the turn; the board must not serve the pre-race snapshot
	_, err := e.RunRace(e.NextRace(), models.StrategyMid)
	require.NoError(t, err)

	after := svc.Board(e)
	assert.Equal(t, before.Turn, after.Turn)
	assert.Equal(t, 1, playerEntry(t, after).Races)
}
