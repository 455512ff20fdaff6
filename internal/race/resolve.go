package race

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/rng"
)

// Entrant pairs a horse with the strategy it runs under for one race.
// Rivals always run their fixed strategy; the player picks per race.
type Entrant struct {
	Horse    *models.Horse
	Strategy models.Strategy
}

// durationBand is the [min,max] second range a race type resolves into.
type durationBand struct {
	min float64
	max float64
}

var durationBands = map[models.RaceType]durationBand{
	models.RaceSprint: {68, 76},
	models.RaceMile:   {92, 103},
	models.RaceMedium: {118, 131},
	models.RaceLong:   {148, 166},
}

// prizeFractions is the share of the pool paid per finishing rank.
var prizeFractions = []float64{1.00, 0.60, 0.30, 0.15, 0.10, 0.05, 0.02, 0.01}

// Resolve runs the full field through the performance calculator and
// produces ranked placements 1..N, derived finish times and prize
// payouts. The configuration is validated before any horse is scored.
// Ties on performance break by horse id for determinism.
func Resolve(cfg *models.RaceConfig, field []Entrant, src rng.Source, logger *logrus.Logger) (*models.RaceResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(field) == 0 {
		return nil, models.NewValidationError("empty_field", "race field has no entrants")
	}
	if logger == nil {
		logger = logrus.New()
	}

	type scored struct {
		entrant     Entrant
		performance float64
	}
	scores := make([]scored, 0, len(field))
	for _, entrant := range field {
		perf, err := CalculatePerformance(entrant.Horse, cfg.Type, cfg.Surface, entrant.Strategy, cfg.Weather, src)
		if err != nil {
			return nil, err
		}
		scores = append(scores, scored{entrant: entrant, performance: perf})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].performance != scores[j].performance {
			return scores[i].performance > scores[j].performance
		}
		return scores[i].entrant.Horse.ID.String() < scores[j].entrant.Horse.ID.String()
	})

	band := durationBands[cfg.Type]
	winnerPerf := scores[0].performance

	result := &models.RaceResult{
		RaceID:     cfg.ID,
		RaceName:   cfg.Name,
		Turn:       cfg.Turn,
		Placements: make([]models.Placement, 0, len(scores)),
		ResolvedAt: time.Now().UTC(),
	}

	for i, s := range scores {
		rank := i + 1
		result.Placements = append(result.Placements, models.Placement{
			HorseID:     s.entrant.Horse.ID,
			HorseName:   s.entrant.Horse.Name,
			Rank:        rank,
			Performance: s.performance,
			Time:        finishTime(band, s.performance, winnerPerf, src),
			Prize:       prizeFor(rank, cfg.PrizePool),
		})
	}

	logger.WithFields(logrus.Fields{
		"race":   cfg.Name,
		"type":   string(cfg.Type),
		"field":  len(field),
		"winner": result.Placements[0].HorseName,
	}).Info("Race resolved")

	return result, nil
}

// finishTime maps winner-relative performance inversely into the race
// type's duration band with small jitter. Never faster than 90% of the
// band minimum.
func finishTime(band durationBand, performance, winnerPerf float64, src rng.Source) float64 {
	ratio := 1.0
	if winnerPerf > 0 {
		ratio = performance / winnerPerf
	}
	t := band.min + (band.max-band.min)*(1.0-ratio)
	t += rng.Between(src, -0.3, 0.5)

	floor := band.min * 0.9
	if t < floor {
		t = floor
	}
	return t
}

// prizeFor returns the payout for a finishing rank out of the pool.
func prizeFor(rank int, pool decimal.Decimal) decimal.Decimal {
	if rank < 1 || rank > len(prizeFractions) {
		return decimal.Zero
	}
	return pool.Mul(decimal.NewFromFloat(prizeFractions[rank-1])).Round(2)
}
