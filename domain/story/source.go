package story

import "math/rand/v2"

// Source supplies the randomness used by questioning and title selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func sourceOrDefault(src Source) Source {
	if src == nil {
		return globalSource{}
	}
	return src
}
