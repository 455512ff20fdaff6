package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampStat(t *testing.T) {
	if got := ClampStat(0); got != 1 {
		t.Fatalf("expected floor 1, got %d", got)
	}
	if got := ClampStat(150); got != 100 {
		t.Fatalf("expected cap 100, got %d", got)
	}
	if got := ClampStat(55); got != 55 {
		t.Fatalf("expected passthrough 55, got %d", got)
	}
}

func TestStatsSetClamps(t *testing.T) {
	s := Stats{Speed: 50, Stamina: 50, Power: 50}

	s.Set(StatSpeed, 500)
	assert.Equal(t, 100, s.Speed)

	s.Set(StatStamina, -10)
	assert.Equal(t, 1, s.Stamina)

	// Unknown names are ignored
	s.Set(Stat("agility"), 80)
	assert.Equal(t, Stats{Speed: 100, Stamina: 1, Power: 50}, s)
}

func TestStatsDominant(t *testing.T) {
	s := Stats{Speed: 40, Stamina: 70, Power: 55}
	assert.Equal(t, StatStamina, s.Dominant())

	// Ties resolve in canonical order
	tied := Stats{Speed: 60, Stamina: 60, Power: 60}
	assert.Equal(t, StatSpeed, tied.Dominant())
}

func TestGrowthGradeMultiplier(t *testing.T) {
	cases := map[GrowthGrade]float64{
		GrowthS: 1.5,
		GrowthA: 1.2,
		GrowthB: 1.0,
		GrowthC: 0.8,
		GrowthD: 0.6,
	}
	for grade, want := range cases {
		assert.Equal(t, want, grade.Multiplier(), "grade %s", grade)
	}
	assert.Equal(t, 1.0, GrowthGrade("X").Multiplier())
}

func TestGrowthRatesPreferred(t *testing.T) {
	g := GrowthRates{Speed: GrowthC, Stamina: GrowthS, Power: GrowthA}
	assert.Equal(t, StatStamina, g.Preferred())
}

func TestFormFromEnergy(t *testing.T) {
	cases := []struct {
		energy int
		want   Form
	}{
		{100, FormPeak},
		{90, FormPeak},
		{75, FormExcellent},
		{60, FormGood},
		{40, FormNormal},
		{20, FormTired},
		{0, FormPoor},
	}
	for _, tc := range cases {
		if got := FormFromEnergy(tc.energy); got != tc.want {
			t.Fatalf("energy %d: expected %s, got %s", tc.energy, tc.want, got)
		}
	}
}

func TestFormMultiplierLegacyTiers(t *testing.T) {
	// Legacy four-tier mood names still resolve
	assert.Equal(t, 1.10, Form("Great").Multiplier())
	assert.Equal(t, 0.85, Form("Bad").Multiplier())
	// Unknown falls back to neutral
	assert.Equal(t, 1.0, Form("Ecstatic").Multiplier())
}

func TestBondMultiplierTiers(t *testing.T) {
	p := &PlayerHorse{}
	cases := []struct {
		bond int
		want float64
	}{
		{0, 1.0},
		{39, 1.0},
		{40, 1.1},
		{60, 1.2},
		{80, 1.5},
		{100, 1.5},
	}
	for _, tc := range cases {
		p.Bond = tc.bond
		assert.Equal(t, tc.want, p.BondMultiplier(), "bond %d", tc.bond)
	}
}

func TestChangeBondSaturates(t *testing.T) {
	p := &PlayerHorse{Bond: 95}
	p.ChangeBond(20)
	assert.Equal(t, 100, p.Bond)
	p.ChangeBond(-200)
	assert.Equal(t, 0, p.Bond)
}

func TestNewPlayerHorseAppliesLegacy(t *testing.T) {
	stats := Stats{Speed: 30, Stamina: 30, Power: 30}
	growth := GrowthRates{Speed: GrowthB, Stamina: GrowthB, Power: GrowthB}
	legacy := LegacyBonuses{Speed: 5, Stamina: 3, Power: 1}

	p := NewPlayerHorse("Test", stats, growth, 24, legacy)
	assert.Equal(t, Stats{Speed: 35, Stamina: 33, Power: 31}, p.Stats)
	assert.Equal(t, 1, p.Career.Turn)
	assert.Equal(t, 24, p.Career.MaxTurns)
	assert.False(t, p.Career.Complete())
}

func TestExtractLegacy(t *testing.T) {
	p := NewPlayerHorse("Test", Stats{Speed: 80, Stamina: 60, Power: 40}, GrowthRates{Speed: GrowthB, Stamina: GrowthB, Power: GrowthB}, 24, LegacyBonuses{})
	p.Career.RacesWon = 4

	legacy := p.ExtractLegacy()
	assert.Equal(t, LegacyBonuses{Speed: 6, Stamina: 5, Power: 4}, legacy)
}

func TestCareerStateComplete(t *testing.T) {
	c := CareerState{Turn: 24, MaxTurns: 24}
	assert.False(t, c.Complete())
	c.Turn = 25
	assert.True(t, c.Complete())
}

func TestRaceConfigValidate(t *testing.T) {
	rc := RaceConfig{Type: RaceSprint, Surface: SurfaceDirt, Weather: WeatherClear}
	assert.NoError(t, rc.Validate())

	rc.Type = RaceType("MARATHON")
	err := rc.Validate()
	assert.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid_race_type", verr.Code)
}

func TestRivalWins(t *testing.T) {
	r := &RivalHorse{}
	r.RecordRace(RivalRaceResult{Turn: 4, Position: 1})
	r.RecordRace(RivalRaceResult{Turn: 9, Position: 3})
	r.RecordRace(RivalRaceResult{Turn: 15, Position: 1})
	assert.Equal(t, 2, r.Wins())
}
