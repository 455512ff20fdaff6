package models

// Form is the qualitative condition tier affecting training and race
// multipliers.
type Form string

// Six-tier form scale, best to worst.
const (
	FormPeak      Form = "Peak"
	FormExcellent Form = "Excellent"
	FormGood      Form = "Good"
	FormNormal    Form = "Normal"
	FormTired     Form = "Tired"
	FormPoor      Form = "Poor"
)

var formMultipliers = map[Form]float64{
	FormPeak:      1.15,
	FormExcellent: 1.10,
	FormGood:      1.05,
	FormNormal:    1.00,
	FormTired:     0.90,
	FormPoor:      0.80,
}

// Legacy four-tier mood scale kept so saves written before the form
// rework still deserialize to a sensible multiplier.
var legacyMoodMultipliers = map[Form]float64{
	"Great":  1.10,
	"Good":   1.05,
	"Normal": 1.00,
	"Bad":    0.85,
}

// Multiplier returns the training/race multiplier for the form tier.
// Legacy mood values resolve through the old four-tier table; anything
// unrecognized defaults to 1.0.
func (f Form) Multiplier() float64 {
	if m, ok := formMultipliers[f]; ok {
		return m
	}
	if m, ok := legacyMoodMultipliers[f]; ok {
		return m
	}
	return 1.0
}

// Valid reports whether f is a current six-tier form value.
func (f Form) Valid() bool {
	_, ok := formMultipliers[f]
	return ok
}

// FormFromEnergy derives the six-tier form from current energy. This is
// the single rule tying form to energy; energy mutations never adjust
// form as a side effect, callers apply this explicitly after training.
func FormFromEnergy(energy int) Form {
	switch {
	case energy >= 90:
		return FormPeak
	case energy >= 75:
		return FormExcellent
	case energy >= 60:
		return FormGood
	case energy >= 40:
		return FormNormal
	case energy >= 20:
		return FormTired
	default:
		return FormPoor
	}
}
