package savegame

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/homestretch/internal/career"
	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
	"github.com/yourusername/homestretch/internal/roster"
)

func newEngine(t *testing.T) *career.Engine {
	t.Helper()
	stats := models.Stats{Speed: 50, Stamina: 50, Power: 50}
	growth := models.GrowthRates{Speed: models.GrowthB, Stamina: models.GrowthA, Power: models.GrowthB}
	player := models.NewPlayerHorse("Save Test", stats, growth, career.DefaultMaxTurns, models.LegacyBonuses{})

	e, err := career.NewEngine(context.Background(), career.Config{
		Player: player,
		RNG:    rng.New(42),
	})
	require.NoError(t, err)
	return e
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newEngine(t)
	for i := 0; i < 3; i++ {
		_, err := e.Train(roster.TrainSpeed)
		require.NoError(t, err)
	}

	doc := Snapshot(e)
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Len(t, doc.RaceSchedule, 4)

	data, err := Encode(doc)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	restored, err := Restore(context.Background(), decoded, rng.New(42), nil)
	require.NoError(t, err)
	assert.Equal(t, e.Player().Career.Turn, restored.Player().Career.Turn)
	assert.Equal(t, e.Player().Stats, restored.Player().Stats)
	assert.Equal(t, e.Player().Condition, restored.Player().Condition)
	assert.Equal(t, e.Player().Bond, restored.Player().Bond)
	assert.Equal(t, e.Player().GrowthRates, restored.Player().GrowthRates)
	assert.Len(t, restored.Roster().Rivals, len(e.Roster().Rivals))
	assert.Equal(t, e.State(), restored.State())
}

func TestSnapshotCarriesResolvedRaces(t *testing.T) {
	e := newEngine(t)
	for i := 0; i < 3; i++ {
		_, err := e.Train(roster.TrainRest)
		require.NoError(t, err)
	}
	require.Equal(t, career.StatePreRace, e.State())
	_, err := e.RunRace(e.NextRace(), models.StrategyMid)
	require.NoError(t, err)

	doc := Snapshot(e)
	resolved := 0
	for _, entry := range doc.RaceSchedule {
		if entry.Results != nil {
			resolved++
			assert.True(t, entry.Completed)
		}
	}
	assert.Equal(t, 1, resolved)

	restored, err := Restore(context.Background(), doc, rng.New(1), nil)
	require.NoError(t, err)
	assert.Len(t, restored.Results(), 1)
	assert.Equal(t, 1, restored.Player().Career.RacesRun)
}

func TestDecodeRejectsCorruptedData(t *testing.T) {
	_, err := Decode([]byte(`{"character": [not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupted save data")
}

func TestDecodeRejectsMissingCharacter(t *testing.T) {
	_, err := Decode([]byte(`{"version": 2, "raceSchedule": []}`))
	require.Error(t, err)
}

func TestValidateRejectsNewerVersion(t *testing.T) {
	doc := Snapshot(newEngine(t))
	doc.Version = CurrentVersion + 1

	err := Validate(doc)
	require.Error(t, err)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "unsupported_version", verr.Code)
}

func TestValidateRejectsOutOfRangeStats(t *testing.T) {
	doc := Snapshot(newEngine(t))
	doc.Character.Stats.Speed = 300

	err := Validate(doc)
	require.Error(t, err)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "stat_out_of_range", verr.Code)
}

func TestUpgradeRegeneratesLegacyRoster(t *testing.T) {
	doc := Snapshot(newEngine(t))
	doc.Version = 1
	doc.Roster = nil
	doc.Character.Career.Turn = 10

	require.NoError(t, Upgrade(context.Background(), doc, rng.New(5), nil))
	assert.Equal(t, CurrentVersion, doc.Version)
	require.NotNil(t, doc.Roster)
	assert.Len(t, doc.Roster.Rivals, roster.DefaultSize)

	// Fast-forwarded rivals carry nine turns of training history
	for _, rival := range doc.Roster.Rivals {
		assert.NotEmpty(t, rival.History, "rival %s", rival.Name)
		assert.Greater(t, rival.PowerLevel(), 50, "rival %s", rival.Name)
	}
}

func TestUpgradeCurrentVersionIsNoop(t *testing.T) {
	doc := Snapshot(newEngine(t))
	before := doc.Roster.Rivals

	require.NoError(t, Upgrade(context.Background(), doc, rng.New(5), nil))
	assert.Equal(t, before, doc.Roster.Rivals)
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "career.json")
	store := NewFileStore(path)
	assert.False(t, store.Exists())

	doc := Snapshot(newEngine(t))
	require.NoError(t, store.Save(doc))
	assert.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, doc.Character.Name, loaded.Character.Name)
	assert.Equal(t, doc.Version, loaded.Version)
}

func TestFileStoreSaveReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "career.json")
	store := NewFileStore(path)

	e := newEngine(t)
	require.NoError(t, store.Save(Snapshot(e)))

	_, err := e.Train(roster.TrainSpeed)
	require.NoError(t, err)
	require.NoError(t, store.Save(Snapshot(e)))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Character.Career.Turn)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no save file")
}
