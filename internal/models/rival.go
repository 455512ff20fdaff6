package models

// TrainingPattern is the discrete behavior tag driving a rival's
// week-to-week training decisions.
type TrainingPattern string

// Training patterns.
const (
	PatternSpeedFocus   TrainingPattern = "speed_focus"
	PatternStaminaFocus TrainingPattern = "stamina_focus"
	PatternPowerFocus   TrainingPattern = "power_focus"
	PatternBalanced     TrainingPattern = "balanced"
	PatternLateSurge    TrainingPattern = "late_surge"
)

// Personality gives a rival a fixed trait and how strongly it shows.
type Personality struct {
	Trait     string `db:"trait" json:"trait"`
	Intensity int    `db:"intensity" json:"intensity" validate:"min=1,max=10"`
}

// TrainingRecord is one turn's snapshot in a rival's history.
type TrainingRecord struct {
	Stats    Stats  `json:"stats"`
	Training string `json:"training"`
	Gain     int    `json:"gain"`
}

// RivalRaceResult is one race outcome in a rival's record.
type RivalRaceResult struct {
	Turn        int     `json:"turn"`
	Position    int     `json:"position"`
	Time        float64 `json:"time"`
	Performance float64 `json:"performance"`
}

// TrainingPriorities is a fixed probability distribution over stats,
// derived from a rival's strategy at creation. Used as the fallback
// cumulative-probability selector when no pattern rule applies.
type TrainingPriorities struct {
	Speed   float64 `json:"speed"`
	Stamina float64 `json:"stamina"`
	Power   float64 `json:"power"`
}

// RivalHorse is an AI-controlled horse. Strategy, pattern, personality
// and priorities are fixed at creation; stats evolve every turn.
type RivalHorse struct {
	Horse
	Pattern     TrainingPattern        `db:"pattern" json:"trainingPattern"`
	Personality Personality            `db:"-" json:"personality"`
	Priorities  TrainingPriorities     `db:"-" json:"trainingPriorities"`
	History     map[int]TrainingRecord `db:"-" json:"history"`
	RaceResults []RivalRaceResult      `db:"-" json:"raceResults"`
}

// PreferredStat returns the stat the rival grows fastest.
func (r *RivalHorse) PreferredStat() Stat {
	return r.GrowthRates.Preferred()
}

// RecordTraining appends a turn snapshot to the rival's history.
func (r *RivalHorse) RecordTraining(turn int, training string, gain int) {
	if r.History == nil {
		r.History = make(map[int]TrainingRecord)
	}
	r.History[turn] = TrainingRecord{Stats: r.Stats, Training: training, Gain: gain}
}

// RecordRace appends a race outcome to the rival's record.
func (r *RivalHorse) RecordRace(result RivalRaceResult) {
	r.RaceResults = append(r.RaceResults, result)
}

// Wins counts first-place finishes in the rival's record.
func (r *RivalHorse) Wins() int {
	wins := 0
	for _, res := range r.RaceResults {
		if res.Position == 1 {
			wins++
		}
	}
	return wins
}
