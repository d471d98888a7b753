// Package randsrc supplies uniform samples over half-open intervals.
//
// A [Source] is an explicit capability: it is constructed once, seeded by the
// caller and handed to exactly one consumer. Nothing in this package keeps
// process-wide generator state.
package randsrc

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidRange indicates a sample was requested over an empty interval.
var ErrInvalidRange = errors.New("randsrc: invalid range (low must be less than high)")

// Source draws uniformly distributed values from [low, high).
type Source interface {
	Sample(low, high float64) (float64, error)
}

// pcgStream is the fixed second word of the PCG state; only the seed varies.
const pcgStream = 0x9e3779b97f4a7c15

// Uniform is a seeded pseudo-random Source. It is not safe for concurrent use.
type Uniform struct {
	seed uint64
	src  *rand.PCG
}

func NewUniform(seed uint64) *Uniform {
	return &Uniform{
		seed: seed,
		src:  rand.NewPCG(seed, pcgStream),
	}
}

func (u *Uniform) Seed() uint64 { return u.seed }

func (u *Uniform) Sample(low, high float64) (float64, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}

	dist := distuv.Uniform{Min: low, Max: high, Src: u.src}
	v := dist.Rand()
	if v >= high {
		// rnd*(high-low)+low can round up onto the open bound.
		v = math.Nextafter(high, low)
	}
	return v, nil
}

// Midpoint always returns the centre of the requested interval.
type Midpoint struct{}

func (Midpoint) Sample(low, high float64) (float64, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}
	return low + (high-low)/2, nil
}

func checkRange(low, high float64) error {
	if !(low < high) {
		return fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, low, high)
	}
	return nil
}
