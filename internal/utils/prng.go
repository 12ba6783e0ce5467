// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so that a whole game can be replayed
// from one seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted picks an index with a probability proportional to its weight.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	return ChooseWeighted(s, weights)
}

// Float64Source is the part of a generator ChooseWeighted needs.
type Float64Source interface {
	Float64() float64
}

// ChooseWeighted sums the weights, draws a number in that range and returns
// the index of the entry the number falls into. It returns -1 when weights
// is empty; non positive totals fall back to the first entry.
func ChooseWeighted(r Float64Source, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	x := r.Float64() * total
	upto := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > x {
			return i
		}
		upto += w
	}

	// Float rounding can leave x at the very end of the range.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
