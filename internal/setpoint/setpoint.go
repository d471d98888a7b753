// Package setpoint provides reference signals for the control loop.
//
// Every type here satisfies sim.SetPoint and is pure: At depends only on t.
package setpoint

import (
	"errors"
	"fmt"
	"slices"
)

// Func adapts an ordinary function to the sim.SetPoint interface.
type Func func(t int) int

func (f Func) At(t int) int { return f(t) }

// Canonical is the reference profile of the study scenario: idle for the
// first 100 steps, a step to 50 until t=300, then a hold at 10.
var Canonical = Func(func(t int) int {
	switch {
	case t >= 0 && t <= 99:
		return 0
	case t >= 100 && t <= 300:
		return 50
	default:
		return 10
	}
})

// Constant is a reference that never changes.
type Constant int

func (c Constant) At(int) int { return int(c) }

// Segment holds Value from time index From until the next segment starts.
type Segment struct {
	From  int
	Value int
}

// Schedule is a piecewise-constant reference. Times before the first segment
// map to Before.
type Schedule struct {
	segments []Segment
	before   int
}

var errDuplicateSegment = errors.New("setpoint: duplicate segment start")

// NewSchedule copies and orders segs. Two segments may not start at the same
// time index.
func NewSchedule(before int, segs ...Segment) (*Schedule, error) {
	sorted := slices.Clone(segs)
	slices.SortFunc(sorted, func(a, b Segment) int { return a.From - b.From })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].From == sorted[i-1].From {
			return nil, fmt.Errorf("%w at t=%d", errDuplicateSegment, sorted[i].From)
		}
	}

	return &Schedule{segments: sorted, before: before}, nil
}

func (s *Schedule) At(t int) int {
	i, found := slices.BinarySearchFunc(s.segments, t, func(seg Segment, t int) int {
		return seg.From - t
	})
	if found {
		return s.segments[i].Value
	}
	if i == 0 {
		return s.before
	}
	return s.segments[i-1].Value
}

// Segments returns a copy of the ordered segments.
func (s *Schedule) Segments() []Segment {
	return slices.Clone(s.segments)
}
