// Package standings computes the career leaderboard across the player
// and the rival roster, cached per turn and resolved-race count since
// the board only changes when the turn advances or a race resolves.
package standings

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/homestretch/internal/career"
)

// Entry is one horse's row on the leaderboard.
type Entry struct {
	HorseID uuid.UUID `json:"horseId"`
	Name    string    `json:"name"`
	Wins    int       `json:"wins"`
	Races   int       `json:"races"`
	Power   int       `json:"power"`
	Rank    int       `json:"rank"`
	Player  bool      `json:"player"`
}

// Board is the leaderboard at a given turn, ordered by rank.
type Board struct {
	RosterID uuid.UUID `json:"rosterId"`
	Turn     int       `json:"turn"`
	Entries  []Entry   `json:"entries"`
}

// Service computes and caches leaderboards.
type Service struct {
	cache *cache.Cache
}

// NewService creates a standings service with the given cache TTL.
func NewService(ttl time.Duration) *Service {
	return &Service{cache: cache.New(ttl, ttl*2)}
}

// Board returns the leaderboard for the engine's current turn, served
// from cache until the turn advances or another race resolves. Races
// change wins and earnings mid-turn, so the key carries both.
func (s *Service) Board(e *career.Engine) Board {
	key := fmt.Sprintf("%s:%d:%d", e.Roster().ID, e.Player().Career.Turn, len(e.Results()))
	if cached, found := s.cache.Get(key); found {
		if board, ok := cached.(Board); ok {
			return board
		}
	}

	board := compute(e)
	s.cache.Set(key, board, cache.DefaultExpiration)
	return board
}

// compute ranks by wins, then total power, then name for stability.
func compute(e *career.Engine) Board {
	player := e.Player()
	rosterState := e.Roster()

	entries := make([]Entry, 0, len(rosterState.Rivals)+1)
	entries = append(entries, Entry{
		HorseID: player.ID,
		Name:    player.Name,
		Wins:    player.Career.RacesWon,
		Races:   player.Career.RacesRun,
		Power:   player.PowerLevel(),
		Player:  true,
	})
	for _, rival := range rosterState.Rivals {
		entries = append(entries, Entry{
			HorseID: rival.ID,
			Name:    rival.Name,
			Wins:    rival.Wins(),
			Races:   len(rival.RaceResults),
			Power:   rival.PowerLevel(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].Power != entries[j].Power {
			return entries[i].Power > entries[j].Power
		}
		return entries[i].Name < entries[j].Name
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return Board{RosterID: rosterState.ID, Turn: player.Career.Turn, Entries: entries}
}
