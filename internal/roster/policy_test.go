package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

func testRival(pattern models.TrainingPattern, strategy models.Strategy) *models.RivalHorse {
	growth := models.GrowthRates{Speed: models.GrowthB, Stamina: models.GrowthB, Power: models.GrowthB}
	return &models.RivalHorse{
		Horse:      models.NewHorse("Rival", models.Stats{Speed: 50, Stamina: 50, Power: 50}, growth, strategy),
		Pattern:    pattern,
		Priorities: prioritiesFor(strategy),
		History:    make(map[int]models.TrainingRecord),
	}
}

func TestSelectTrainingFollowsPattern(t *testing.T) {
	p := NewPolicy(rng.New(1), nil, false)
	r := testRival(models.PatternStaminaFocus, models.StrategyLate)

	counts := make(map[TrainingChoice]int)
	for i := 0; i < 1000; i++ {
		counts[p.SelectTraining(r, 3, nil)]++
	}

	// Stamina focus trains stamina 70% of the time
	assert.Greater(t, counts[TrainStamina], 600)
	assert.Zero(t, counts[TrainPower])
	assert.Zero(t, counts[TrainRest])
}

func TestSelectTrainingRestsBeforeRaceWhenDrained(t *testing.T) {
	p := NewPolicy(rng.New(1), nil, false)
	r := testRival(models.PatternSpeedFocus, models.StrategyFront)
	r.Condition.Energy = 50

	choice := p.SelectTraining(r, 3, &UpcomingRace{TurnsAway: 1, Type: models.RaceSprint})
	assert.Equal(t, TrainRest, choice)
}

func TestSelectTrainingSharpensBeforeRaceWhenFresh(t *testing.T) {
	p := NewPolicy(rng.New(1), nil, false)
	r := testRival(models.PatternSpeedFocus, models.StrategyFront)
	r.Condition.Energy = 90
	r.GrowthRates.Stamina = models.GrowthS

	choice := p.SelectTraining(r, 3, &UpcomingRace{TurnsAway: 1, Type: models.RaceSprint})
	assert.Equal(t, TrainStamina, choice)
}

func TestSelectTrainingTargetsRaceDistance(t *testing.T) {
	p := NewPolicy(rng.New(1), nil, false)

	front := testRival(models.PatternBalanced, models.StrategyFront)
	assert.Equal(t, TrainPower, p.SelectTraining(front, 3, &UpcomingRace{TurnsAway: 2, Type: models.RaceSprint}))

	mid := testRival(models.PatternBalanced, models.StrategyMid)
	assert.Equal(t, TrainSpeed, p.SelectTraining(mid, 3, &UpcomingRace{TurnsAway: 2, Type: models.RaceSprint}))

	late := testRival(models.PatternBalanced, models.StrategyLate)
	assert.Equal(t, TrainStamina, p.SelectTraining(late, 3, &UpcomingRace{TurnsAway: 2, Type: models.RaceLong}))
}

func TestLateSurgeBuildsStaminaEarly(t *testing.T) {
	p := NewPolicy(rng.New(1), nil, false)
	r := testRival(models.PatternLateSurge, models.StrategyLate)

	for turn := 1; turn < 8; turn++ {
		assert.Equal(t, TrainStamina, p.SelectTraining(r, turn, nil), "turn %d", turn)
	}
}

func TestApplyTrainingGainsAndCosts(t *testing.T) {
	// Fixed 0.5 pins the -1..+2 variation at +1
	p := NewPolicy(rng.NewFixed(0.5), nil, false)
	r := testRival(models.PatternSpeedFocus, models.StrategyFront)

	gain := p.ApplyTraining(r, 3, TrainSpeed)
	assert.Equal(t, 4, gain)
	assert.Equal(t, 54, r.Stats.Speed)
	assert.Equal(t, 51, r.Stats.Stamina)
	assert.Equal(t, 51, r.Stats.Power)
	assert.Equal(t, 85, r.Condition.Energy)
	assert.Equal(t, models.FormExcellent, r.Condition.Form)

	rec, ok := r.History[3]
	assert.True(t, ok)
	assert.Equal(t, "speed", rec.Training)
	assert.Equal(t, 4, rec.Gain)
}

func TestApplyTrainingRestRecovers(t *testing.T) {
	p := NewPolicy(rng.NewFixed(0.5), nil, false)
	r := testRival(models.PatternBalanced, models.StrategyMid)
	r.Condition.Energy = 40

	gain := p.ApplyTraining(r, 5, TrainRest)
	assert.Equal(t, 0, gain)
	assert.Equal(t, 51, r.Stats.Stamina)
	assert.Equal(t, 70, r.Condition.Energy)
	assert.Equal(t, models.FormGood, r.Condition.Form)
}

func TestStaminaTrainingCostsLess(t *testing.T) {
	p := NewPolicy(rng.NewFixed(0.5), nil, false)
	r := testRival(models.PatternStaminaFocus, models.StrategyLate)

	p.ApplyTraining(r, 3, TrainStamina)
	assert.Equal(t, 90, r.Condition.Energy)
}

func TestAdvanceTurnTrainsEveryRival(t *testing.T) {
	gen := NewGenerator(rng.New(7), nil, nil, false)
	roster, err := gen.Generate(context.Background(), playerWithPower(150), 6)
	assert.NoError(t, err)

	p := NewPolicy(rng.New(8), nil, false)
	before := make([]int, len(roster.Rivals))
	for i, r := range roster.Rivals {
		before[i] = r.PowerLevel()
	}

	p.AdvanceTurn(roster, 3, nil)

	for i, r := range roster.Rivals {
		assert.Greater(t, r.PowerLevel(), before[i], "rival %s", r.Name)
		_, trained := r.History[3]
		assert.True(t, trained)
	}
}
