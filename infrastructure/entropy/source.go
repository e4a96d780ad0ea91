// Package entropy provides the random sources that drive story questioning.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/felixgeelhaar/story-go/domain/story"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seeded returns a deterministic PCG source. The same seed always yields
// the same story.
func Seeded(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// FromSeed returns a seeded source, drawing a fresh seed when seed is zero.
// The seed actually used is returned so a run can be replayed.
func FromSeed(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		fresh, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = fresh
	}
	return Seeded(seed), seed, nil
}

// Scripted replays a fixed list of draws, cycling when exhausted.
// Each draw is reduced modulo n.
type Scripted struct {
	draws []int
	pos   int
}

// NewScripted creates a scripted source. With no draws it always returns 0.
func NewScripted(draws ...int) *Scripted {
	return &Scripted{draws: draws}
}

// IntN returns the next scripted draw in [0, n).
func (s *Scripted) IntN(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Drawn reports how many values have been consumed.
func (s *Scripted) Drawn() int {
	return s.pos
}

// Questioning outcomes for Scripted: Double doubles certainty, Subtract
// takes 25 away.
const (
	Double   = 0
	Subtract = 1
)

var (
	_ story.Source = (*rand.Rand)(nil)
	_ story.Source = (*Scripted)(nil)
)
