package career

import (
	"fmt"
	"math"

	"github.com/yourusername/homestretch/internal/models"
	"github.com/yourusername/homestretch/internal/roster"
)

// CharacterSummary is the player snapshot exposed to the UI boundary.
type CharacterSummary struct {
	Name   string       `json:"name"`
	Stats  models.Stats `json:"stats"`
	Energy int          `json:"energy"`
	Form   models.Form  `json:"form"`
	Bond   int          `json:"bond"`
	Power  int          `json:"power"`
	Wins   int          `json:"wins"`
	Runs   int          `json:"runs"`
}

// NextRaceInfo describes the next scheduled race for the UI.
type NextRaceInfo struct {
	Name      string          `json:"name"`
	Type      models.RaceType `json:"type"`
	Surface   models.Surface  `json:"surface"`
	Turn      int             `json:"turn"`
	TurnsAway int             `json:"turnsAway"`
}

// TrainingOption is one selectable action with its projected
// effectiveness for the current horse state.
type TrainingOption struct {
	Choice        roster.TrainingChoice `json:"choice"`
	EnergyCost    int                   `json:"energyCost"`
	Effectiveness int                   `json:"effectivenessPercent"`
}

// GameStatus is the full engine snapshot the UI/CLI collaborator
// renders from.
type GameStatus struct {
	Turn            int              `json:"turn"`
	MaxTurns        int              `json:"maxTurns"`
	State           State            `json:"state"`
	Character       CharacterSummary `json:"character"`
	NextRace        *NextRaceInfo    `json:"nextRace,omitempty"`
	TrainingOptions []TrainingOption `json:"trainingOptions"`
	Recommendations []string         `json:"recommendations"`
}

// GameStatus assembles the current engine snapshot.
func (e *Engine) GameStatus() GameStatus {
	status := GameStatus{
		Turn:     e.player.Career.Turn,
		MaxTurns: e.player.Career.MaxTurns,
		State:    e.state,
		Character: CharacterSummary{
			Name:   e.player.Name,
			Stats:  e.player.Stats,
			Energy: e.player.Condition.Energy,
			Form:   e.player.Condition.Form,
			Bond:   e.player.Bond,
			Power:  e.player.PowerLevel(),
			Wins:   e.player.Career.RacesWon,
			Runs:   e.player.Career.RacesRun,
		},
		TrainingOptions: e.trainingOptions(),
		Recommendations: e.recommendations(),
	}

	if next := e.NextRace(); next != nil {
		status.NextRace = &NextRaceInfo{
			Name:      next.Name,
			Type:      next.Type,
			Surface:   next.Surface,
			Turn:      next.Turn,
			TurnsAway: next.Turn - e.player.Career.Turn,
		}
	}
	return status
}

// trainingOptions lists each action with its effectiveness: the
// combined growth, form and bond multiplier for the targeted stat,
// expressed as a percentage of the base gain.
func (e *Engine) trainingOptions() []TrainingOption {
	options := make([]TrainingOption, 0, 4)
	for _, choice := range []roster.TrainingChoice{roster.TrainSpeed, roster.TrainStamina, roster.TrainPower} {
		stat, _ := choice.Stat()
		multiplier := e.player.GrowthRates.Grade(stat).Multiplier() *
			e.player.Condition.Form.Multiplier() *
			e.player.BondMultiplier()
		options = append(options, TrainingOption{
			Choice:        choice,
			EnergyCost:    trainingEnergyCost(choice),
			Effectiveness: int(math.Round(multiplier * 100)),
		})
	}
	options = append(options, TrainingOption{Choice: roster.TrainRest, EnergyCost: 0, Effectiveness: 100})
	return options
}

// recommendations produces short guidance strings for the UI: rest when
// drained, train toward the next race's profile, otherwise lean on the
// strongest growth rate.
func (e *Engine) recommendations() []string {
	var recs []string

	if e.player.Condition.Energy < 40 {
		recs = append(recs, "Energy is low: rest before the next hard session")
	}

	if next := e.NextRace(); next != nil {
		turnsAway := next.Turn - e.player.Career.Turn
		if turnsAway <= 2 {
			recs = append(recs, fmt.Sprintf("%s is %d turn(s) away: favor %s work", next.Name, turnsAway, raceFocus(next.Type)))
		}
	}

	preferred := e.player.GrowthRates.Preferred()
	recs = append(recs, fmt.Sprintf("Best growth rate: %s (%s)", preferred, e.player.GrowthRates.Grade(preferred)))
	return recs
}

func raceFocus(t models.RaceType) string {
	switch t {
	case models.RaceSprint:
		return "speed"
	case models.RaceLong:
		return "stamina"
	default:
		return "balanced"
	}
}
