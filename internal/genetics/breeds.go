package genetics

import "github.com/yourusername/homestretch/internal/models"

// Breed identifies a horse breed with its own aptitudes and caps.
type Breed string

// Supported breeds.
const (
	BreedThoroughbred Breed = "thoroughbred"
	BreedArabian      Breed = "arabian"
	BreedQuarterHorse Breed = "quarter_horse"
	BreedMustang      Breed = "mustang"
)

// breedProfile defines how a breed shapes initial stats: the window the
// base roll is drawn from, the stats tilted up or down 5%, and the hard
// per-stat ceilings.
type breedProfile struct {
	windowMin int
	windowMax int
	strong    models.Stat
	weak      models.Stat
	caps      models.Stats
}

var breedProfiles = map[Breed]breedProfile{
	BreedThoroughbred: {
		windowMin: 25, windowMax: 55,
		strong: models.StatSpeed, weak: models.StatPower,
		caps: models.Stats{Speed: 100, Stamina: 95, Power: 90},
	},
	BreedArabian: {
		windowMin: 25, windowMax: 55,
		strong: models.StatStamina, weak: models.StatSpeed,
		caps: models.Stats{Speed: 90, Stamina: 100, Power: 95},
	},
	BreedQuarterHorse: {
		windowMin: 28, windowMax: 58,
		strong: models.StatPower, weak: models.StatStamina,
		caps: models.Stats{Speed: 95, Stamina: 88, Power: 100},
	},
	BreedMustang: {
		windowMin: 22, windowMax: 52,
		strong: models.StatStamina, weak: models.StatPower,
		caps: models.Stats{Speed: 92, Stamina: 98, Power: 92},
	},
}

// defaultProfile covers unknown breeds: the default [25,55] window, no
// tilt, full caps.
var defaultProfile = breedProfile{
	windowMin: 25, windowMax: 55,
	caps: models.Stats{Speed: 100, Stamina: 100, Power: 100},
}

func profileFor(b Breed) breedProfile {
	if p, ok := breedProfiles[b]; ok {
		return p
	}
	return defaultProfile
}
