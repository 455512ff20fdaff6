package models

// CareerState tracks progress through a single play-through.
type CareerState struct {
	Turn          int `db:"turn" json:"turn" validate:"min=1"`
	MaxTurns      int `db:"max_turns" json:"maxTurns" validate:"min=1"`
	RacesWon      int `db:"races_won" json:"racesWon" validate:"min=0"`
	RacesRun      int `db:"races_run" json:"racesRun" validate:"min=0,gtefield=RacesWon"`
	TotalTraining int `db:"total_training" json:"totalTraining" validate:"min=0"`
}

// Complete reports whether the career has run past its final turn.
func (c CareerState) Complete() bool {
	return c.Turn > c.MaxTurns
}

// LegacyBonuses are permanent stat carryovers applied to the next
// career after one completes.
type LegacyBonuses struct {
	Speed   int `db:"legacy_speed" json:"speed"`
	Stamina int `db:"legacy_stamina" json:"stamina"`
	Power   int `db:"legacy_power" json:"power"`
}

// Empty reports whether no bonus is carried.
func (l LegacyBonuses) Empty() bool {
	return l.Speed == 0 && l.Stamina == 0 && l.Power == 0
}

// PlayerHorse is the player-controlled variant of Horse.
type PlayerHorse struct {
	Horse
	Bond   int           `db:"bond" json:"bond" validate:"min=0,max=100"`
	Career CareerState   `db:"-" json:"career"`
	Legacy LegacyBonuses `db:"-" json:"legacyBonuses"`
}

// NewPlayerHorse creates a player horse at the start of a career,
// applying any legacy bonuses from a prior completed career.
func NewPlayerHorse(name string, stats Stats, growth GrowthRates, maxTurns int, legacy LegacyBonuses) *PlayerHorse {
	stats.Set(StatSpeed, stats.Speed+legacy.Speed)
	stats.Set(StatStamina, stats.Stamina+legacy.Stamina)
	stats.Set(StatPower, stats.Power+legacy.Power)

	return &PlayerHorse{
		Horse:  NewHorse(name, stats, growth, StrategyMid),
		Bond:   0,
		Career: CareerState{Turn: 1, MaxTurns: maxTurns},
		Legacy: legacy,
	}
}

// BondMultiplier returns the training multiplier earned through bond.
func (p *PlayerHorse) BondMultiplier() float64 {
	switch {
	case p.Bond >= 80:
		return 1.5
	case p.Bond >= 60:
		return 1.2
	case p.Bond >= 40:
		return 1.1
	default:
		return 1.0
	}
}

// ChangeBond adjusts bond, saturating at [0,100].
func (p *PlayerHorse) ChangeBond(delta int) {
	p.Bond = ClampPercent(p.Bond + delta)
}

// ExtractLegacy computes the bonuses a completed career passes forward:
// 5% of each final stat plus one point per two race wins, spread evenly.
func (p *PlayerHorse) ExtractLegacy() LegacyBonuses {
	winShare := p.Career.RacesWon / 2
	return LegacyBonuses{
		Speed:   p.Stats.Speed/20 + winShare,
		Stamina: p.Stats.Stamina/20 + winShare,
		Power:   p.Stats.Power/20 + winShare,
	}
}
