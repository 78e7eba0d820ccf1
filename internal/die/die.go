// Package die implements a single n-sided die backed by a seeded PRNG.
//
// The randomness is math/rand: fine for a casual game, not for real-money play.
package die

import (
	"math/rand"
	"time"
)

// DefaultFaces обычный шестигранный кубик
const DefaultFaces = 6

type Die struct {
	rng   *rand.Rand
	faces int
	value int
}

// NewRand returns a PRNG seeded with seed, or with the current time when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// New creates a die. faces < 1 falls back to DefaultFaces.
func New(rng *rand.Rand, faces int) *Die {
	if faces < 1 {
		faces = DefaultFaces
	}
	return &Die{
		rng:   rng,
		faces: faces,
	}
}

// Roll бросает кубик: значение в [1, faces]
func (d *Die) Roll() int {
	d.value = d.rng.Intn(d.faces) + 1
	return d.value
}

// Value last rolled face, 0 before the first roll
func (d *Die) Value() int {
	return d.value
}

func (d *Die) Faces() int {
	return d.faces
}
