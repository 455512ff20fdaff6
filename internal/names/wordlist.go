package names

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/homestretch/internal/rng"
)

var adjectives = []string{
	"Midnight", "Golden", "Silver", "Crimson", "Thunder", "Velvet",
	"Northern", "Southern", "Wild", "Silent", "Iron", "Lucky",
	"Royal", "Shadow", "Blazing", "Frost", "Amber", "Storm",
	"Copper", "Emerald", "Dusty", "Swift", "Gallant", "Noble",
}

var nouns = []string{
	"Arrow", "Dancer", "Runner", "Spirit", "Comet", "Whisper",
	"Baron", "Duchess", "Flame", "Tempest", "Glory", "Drifter",
	"Monarch", "Breeze", "Charger", "Legend", "Falcon", "Mirage",
	"Sovereign", "Echo", "Phantom", "Stride", "Bandit", "Aurora",
}

// WordListSupplier combines adjective and noun word lists into unique
// names, appending a numeral once plain combinations are exhausted.
type WordListSupplier struct {
	rng  rng.Source
	mu   sync.Mutex
	used map[string]bool
}

// NewWordListSupplier creates the default local name supplier.
func NewWordListSupplier(src rng.Source) *WordListSupplier {
	if src == nil {
		src = rng.NewDefault()
	}
	return &WordListSupplier{rng: src, used: make(map[string]bool)}
}

// Next returns a name unique within this supplier instance.
func (s *WordListSupplier) Next(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 50; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := adjectives[s.rng.Intn(len(adjectives))] + " " + nouns[s.rng.Intn(len(nouns))]
		if !s.used[name] {
			s.used[name] = true
			return name, nil
		}
	}

	// Combinations are getting dense; disambiguate with a counter.
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s %s %d", adjectives[s.rng.Intn(len(adjectives))], nouns[s.rng.Intn(len(nouns))], i)
		if !s.used[name] {
			s.used[name] = true
			return name, nil
		}
	}
}
