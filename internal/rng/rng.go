package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source provides the randomness for secrets, bank selection, and word
// scrambling. Guarded by a mutex because every running game shares it.
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the randomness source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new randomness source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n). n < 1 is treated as 1.
func (s *Source) Intn(n int) int {
	if n < 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}

// Between returns a random int in [lo, hi] inclusive
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// ShuffleString returns the input with its runes in random order. A string
// with at least two distinct runes never comes back unchanged.
func (s *Source) ShuffleString(in string) string {
	runes := []rune(in)
	if len(runes) < 2 {
		return in
	}

	shuffled := make([]rune, len(runes))
	for {
		copy(shuffled, runes)
		s.mu.Lock()
		s.random.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		s.mu.Unlock()

		if string(shuffled) != in || !hasDistinctRunes(runes) {
			return string(shuffled)
		}
	}
}

func hasDistinctRunes(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
