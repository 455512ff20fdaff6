// Package genetics implements procedural initial-stat generation with
// breed, heritage and customization influence.
package genetics

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

// populationAverage is the assumed average stat value heritage pulls
// are measured against.
const populationAverage = 40

// InfluenceTier is the coarse strength of a parent's heritage pull.
type InfluenceTier string

// Influence tiers.
const (
	InfluenceStrong   InfluenceTier = "strong"
	InfluenceModerate InfluenceTier = "moderate"
	InfluenceWeak     InfluenceTier = "weak"
)

func (t InfluenceTier) factor() float64 {
	switch t {
	case InfluenceStrong:
		return 0.15
	case InfluenceModerate:
		return 0.10
	case InfluenceWeak:
		return 0.05
	}
	return 0.05
}

// Parent is a heritage record feeding the generator.
type Parent struct {
	Name      string
	Stats     models.Stats
	Lineage   string
	Influence InfluenceTier
}

// Preference is the player's customization bias toward a race profile.
type Preference string

// Customization preferences and their fixed stat deltas.
const (
	PreferenceNone   Preference = ""
	PreferenceSprint Preference = "sprint"
	PreferenceStayer Preference = "stayer"
	PreferenceFront  Preference = "front_runner"
)

var preferenceDeltas = map[Preference][3]float64{
	// deltas in canonical stat order: speed, stamina, power
	PreferenceSprint: {12, -6, 8.4},
	PreferenceStayer: {-6, 12, 4.2},
	PreferenceFront:  {5, -4, 10},
}

// Options configures a generation run. At most two parents are used.
type Options struct {
	Breed                 Breed
	Parents               []Parent
	InbreedingCoefficient float64
	Preference            Preference
}

// Result is the generator output: final stats, rolled growth grades,
// and a human-readable report of each applied step.
type Result struct {
	Stats  models.Stats
	Growth models.GrowthRates
	Report []string
}

// Generator produces initial horse stats. Pure given its options except
// for draws from the injected random source.
type Generator struct {
	rng    rng.Source
	logger *logrus.Logger
}

// NewGenerator creates a stat generator.
func NewGenerator(src rng.Source, logger *logrus.Logger) *Generator {
	if src == nil {
		src = rng.NewDefault()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{rng: src, logger: logger}
}

// Generate rolls base stats within the breed window and applies, in
// order: breed tilt, heritage pulls, hybrid vigor, inbreeding
// depression, customization deltas, and breed caps. Intermediate values
// round to integers at every step.
func (g *Generator) Generate(opts Options) (*Result, error) {
	if len(opts.Parents) > 2 {
		return nil, models.NewValidationError("too_many_parents", fmt.Sprintf("at most 2 parents supported, got %d", len(opts.Parents)))
	}
	if opts.InbreedingCoefficient < 0 || opts.InbreedingCoefficient > 1 {
		return nil, models.NewValidationError("invalid_inbreeding", "inbreeding coefficient must be in [0,1]")
	}

	profile := profileFor(opts.Breed)
	result := &Result{}

	values := make(map[models.Stat]float64, 3)
	for _, stat := range models.AllStats() {
		values[stat] = float64(rng.IntBetween(g.rng, profile.windowMin, profile.windowMax))
	}
	result.Report = append(result.Report, fmt.Sprintf("base roll within [%d,%d]", profile.windowMin, profile.windowMax))

	g.applyBreedTilt(values, profile, result)
	g.applyHeritage(values, opts.Parents, result)
	g.applyHybridVigor(values, opts.Parents, result)
	g.applyInbreeding(values, opts.InbreedingCoefficient, result)
	g.applyPreference(values, opts.Preference, result)
	g.applyCaps(values, profile, result)

	for _, stat := range models.AllStats() {
		result.Stats.Set(stat, int(math.Round(values[stat])))
	}
	result.Growth = g.rollGrowthRates(profile)

	g.logger.WithFields(logrus.Fields{
		"breed":   string(opts.Breed),
		"parents": len(opts.Parents),
		"total":   result.Stats.Total(),
	}).Debug("Generated initial stats")

	return result, nil
}

func (g *Generator) applyBreedTilt(values map[models.Stat]float64, profile breedProfile, result *Result) {
	if profile.strong == "" && profile.weak == "" {
		return
	}
	if profile.strong != "" {
		values[profile.strong] = math.Round(values[profile.strong] * 1.05)
	}
	if profile.weak != "" {
		values[profile.weak] = math.Round(values[profile.weak] * 0.95)
	}
	result.Report = append(result.Report, fmt.Sprintf("breed tilt: +5%% %s, -5%% %s", profile.strong, profile.weak))
}

func (g *Generator) applyHeritage(values map[models.Stat]float64, parents []Parent, result *Result) {
	if len(parents) == 0 {
		return
	}
	// Parents split the pull 50/50 regardless of count.
	for _, parent := range parents {
		factor := parent.Influence.factor()
		for _, stat := range models.AllStats() {
			delta := float64(parent.Stats.Get(stat) - populationAverage)
			values[stat] = math.Round(values[stat] + 0.5*factor*delta)
		}
		result.Report = append(result.Report, fmt.Sprintf("heritage pull from %s (%s)", parent.Name, parent.Influence))
	}
}

func (g *Generator) applyHybridVigor(values map[models.Stat]float64, parents []Parent, result *Result) {
	if len(parents) != 2 || parents[0].Lineage == parents[1].Lineage {
		return
	}
	avg := (values[models.StatSpeed] + values[models.StatStamina] + values[models.StatPower]) / 3
	bonus := math.Round(avg * rng.Between(g.rng, 0.02, 0.05))
	for _, stat := range models.AllStats() {
		values[stat] += bonus
	}
	result.Report = append(result.Report, fmt.Sprintf("hybrid vigor bonus +%d", int(bonus)))
}

func (g *Generator) applyInbreeding(values map[models.Stat]float64, coefficient float64, result *Result) {
	if coefficient <= 0 {
		return
	}
	depression := 1.0 - 0.5*coefficient
	for _, stat := range models.AllStats() {
		values[stat] = math.Round(values[stat] * depression)
	}
	result.Report = append(result.Report, fmt.Sprintf("inbreeding depression x%.3f", depression))
}

func (g *Generator) applyPreference(values map[models.Stat]float64, pref Preference, result *Result) {
	deltas, ok := preferenceDeltas[pref]
	if !ok {
		return
	}
	for i, stat := range models.AllStats() {
		values[stat] = math.Round(values[stat] + deltas[i])
	}
	result.Report = append(result.Report, fmt.Sprintf("customization bias: %s", pref))
}

func (g *Generator) applyCaps(values map[models.Stat]float64, profile breedProfile, result *Result) {
	capped := false
	for _, stat := range models.AllStats() {
		limit := float64(profile.caps.Get(stat))
		if values[stat] > limit {
			values[stat] = limit
			capped = true
		}
		if values[stat] < 1 {
			values[stat] = 1
		}
	}
	if capped {
		result.Report = append(result.Report, "breed cap applied")
	}
}

// rollGrowthRates draws a grade per stat from a bell-shaped weighting,
// then shifts the breed's strong stat up one grade and its weak stat
// down one.
func (g *Generator) rollGrowthRates(profile breedProfile) models.GrowthRates {
	grades := []models.GrowthGrade{models.GrowthS, models.GrowthA, models.GrowthB, models.GrowthC, models.GrowthD}
	weights := []float64{0.10, 0.25, 0.35, 0.20, 0.10}

	roll := func() int {
		r := g.rng.Float64()
		cumulative := 0.0
		for i, w := range weights {
			cumulative += w
			if r < cumulative {
				return i
			}
		}
		return len(grades) - 1
	}

	shift := func(idx int, stat models.Stat) int {
		if stat == profile.strong && idx > 0 {
			return idx - 1
		}
		if stat == profile.weak && idx < len(grades)-1 {
			return idx + 1
		}
		return idx
	}

	var rates models.GrowthRates
	rates.Speed = grades[shift(roll(), models.StatSpeed)]
	rates.Stamina = grades[shift(roll(), models.StatStamina)]
	rates.Power = grades[shift(roll(), models.StatPower)]
	return rates
}
