package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

func TestGenerateStatsWithinBreedLimits(t *testing.T) {
	src := rng.New(42)
	g := NewGenerator(src, nil)

	breeds := []Breed{BreedThoroughbred, BreedArabian, BreedQuarterHorse, BreedMustang}
	for _, breed := range breeds {
		profile := profileFor(breed)
		for i := 0; i < 50; i++ {
			result, err := g.Generate(Options{Breed: breed})
			require.NoError(t, err)
			for _, stat := range models.AllStats() {
				v := result.Stats.Get(stat)
				assert.GreaterOrEqual(t, v, 1, "%s %s", breed, stat)
				assert.LessOrEqual(t, v, profile.caps.Get(stat), "%s %s", breed, stat)
			}
		}
	}
}

func TestGenerateDeterministicPipeline(t *testing.T) {
	// Fixed 0.5 pins the base roll at the window midpoint, 40 per stat
	g := NewGenerator(rng.NewFixed(0.5), nil)

	result, err := g.Generate(Options{Breed: BreedThoroughbred})
	require.NoError(t, err)

	// Breed tilt: speed 40*1.05=42, power 40*0.95=38
	assert.Equal(t, models.Stats{Speed: 42, Stamina: 40, Power: 38}, result.Stats)

	// Mid roll lands on B; the breed shifts speed up and power down
	assert.Equal(t, models.GrowthA, result.Growth.Speed)
	assert.Equal(t, models.GrowthB, result.Growth.Stamina)
	assert.Equal(t, models.GrowthC, result.Growth.Power)

	assert.Len(t, result.Report, 2)
}

func TestHeritagePullsTowardParents(t *testing.T) {
	parent := Parent{
		Name:      "Champion Sire",
		Stats:     models.Stats{Speed: 80, Stamina: 80, Power: 80},
		Lineage:   "northern",
		Influence: InfluenceStrong,
	}

	plain, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{Breed: BreedThoroughbred})
	require.NoError(t, err)
	bred, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:   BreedThoroughbred,
		Parents: []Parent{parent},
	})
	require.NoError(t, err)

	// Strong influence on a +40 delta pulls each stat up by 3
	for _, stat := range models.AllStats() {
		assert.Equal(t, plain.Stats.Get(stat)+3, bred.Stats.Get(stat), "stat %s", stat)
	}
}

func TestWeakInfluencePullsLess(t *testing.T) {
	stats := models.Stats{Speed: 80, Stamina: 80, Power: 80}
	strong, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:   BreedThoroughbred,
		Parents: []Parent{{Name: "A", Stats: stats, Influence: InfluenceStrong}},
	})
	require.NoError(t, err)
	weak, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:   BreedThoroughbred,
		Parents: []Parent{{Name: "A", Stats: stats, Influence: InfluenceWeak}},
	})
	require.NoError(t, err)

	assert.Greater(t, strong.Stats.Total(), weak.Stats.Total())
}

func TestHybridVigorRequiresDistinctLineages(t *testing.T) {
	parentA := Parent{Name: "A", Stats: models.Stats{Speed: 50, Stamina: 50, Power: 50}, Lineage: "northern", Influence: InfluenceModerate}
	parentB := parentA
	parentB.Name = "B"

	same, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:   BreedThoroughbred,
		Parents: []Parent{parentA, parentB},
	})
	require.NoError(t, err)
	assert.NotContains(t, same.Report, "hybrid vigor bonus +1")

	parentB.Lineage = "desert"
	crossed, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:   BreedThoroughbred,
		Parents: []Parent{parentA, parentB},
	})
	require.NoError(t, err)
	assert.Greater(t, crossed.Stats.Total(), same.Stats.Total())
}

func TestInbreedingDepression(t *testing.T) {
	clean, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{Breed: BreedThoroughbred})
	require.NoError(t, err)
	inbred, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:                 BreedThoroughbred,
		InbreedingCoefficient: 0.5,
	})
	require.NoError(t, err)

	// Coefficient 0.5 scales every stat by 0.75
	for _, stat := range models.AllStats() {
		expected := int(float64(clean.Stats.Get(stat))*0.75 + 0.5)
		assert.Equal(t, expected, inbred.Stats.Get(stat), "stat %s", stat)
	}
}

func TestGenerateRejectsInvalidInbreeding(t *testing.T) {
	g := NewGenerator(rng.New(1), nil)
	for _, coeff := range []float64{-0.1, 1.5} {
		_, err := g.Generate(Options{InbreedingCoefficient: coeff})
		require.Error(t, err)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "invalid_inbreeding", verr.Code)
	}
}

func TestGenerateRejectsTooManyParents(t *testing.T) {
	g := NewGenerator(rng.New(1), nil)
	_, err := g.Generate(Options{Parents: make([]Parent, 3)})
	require.Error(t, err)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "too_many_parents", verr.Code)
}

func TestPreferenceShapesStats(t *testing.T) {
	result, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{
		Breed:      BreedThoroughbred,
		Preference: PreferenceSprint,
	})
	require.NoError(t, err)

	// Tilted base {42,40,38} plus the sprint deltas {+12,-6,+8.4}
	assert.Equal(t, models.Stats{Speed: 54, Stamina: 34, Power: 46}, result.Stats)
}

func TestUnknownBreedUsesDefaultProfile(t *testing.T) {
	result, err := NewGenerator(rng.NewFixed(0.5), nil).Generate(Options{Breed: Breed("unicorn")})
	require.NoError(t, err)

	// No tilt: every stat stays on the window midpoint
	assert.Equal(t, models.Stats{Speed: 40, Stamina: 40, Power: 40}, result.Stats)
}

func TestGrowthGradesAlwaysValid(t *testing.T) {
	valid := map[models.GrowthGrade]bool{
		models.GrowthS: true, models.GrowthA: true, models.GrowthB: true,
		models.GrowthC: true, models.GrowthD: true,
	}
	g := NewGenerator(rng.New(9), nil)
	for i := 0; i < 100; i++ {
		result, err := g.Generate(Options{Breed: BreedArabian})
		require.NoError(t, err)
		assert.True(t, valid[result.Growth.Speed])
		assert.True(t, valid[result.Growth.Stamina])
		assert.True(t, valid[result.Growth.Power])
	}
}
