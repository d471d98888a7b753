// Package plant models the controlled process: a two-stage work buffer.
//
// Work is first admitted into a capacity-limited work-in-progress stage
// (WIP). A random share of WIP completes each step and moves into the queue,
// which then drains at a random rate bounded by the outlet capacity. The
// queue length is the loop output.
package plant

import (
	"errors"
	"fmt"

	"github.com/san-kum/queueloop/internal/quant"
	"github.com/san-kum/queueloop/internal/randsrc"
)

// ErrConfiguration indicates buffer limits that cannot describe a valid
// process.
var ErrConfiguration = errors.New("plant: invalid buffer configuration")

type Buffer struct {
	queued  int
	wip     int
	maxWIP  int
	maxFlow int
	src     randsrc.Source
}

// New returns an empty buffer that owns src. maxWIP must be positive.
// maxFlow must not be negative; zero seals the outlet so the queue never
// drains.
func New(maxWIP, maxFlow int, src randsrc.Source) (*Buffer, error) {
	if maxWIP <= 0 {
		return nil, fmt.Errorf("%w: max wip must be positive, got %d", ErrConfiguration, maxWIP)
	}
	if maxFlow < 0 {
		return nil, fmt.Errorf("%w: max flow must not be negative, got %d", ErrConfiguration, maxFlow)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrConfiguration)
	}
	return &Buffer{
		maxWIP:  maxWIP,
		maxFlow: maxFlow,
		src:     src,
	}, nil
}

// Work admits the command u, moves completed work into the queue, drains the
// queue and returns the new queue length.
func (b *Buffer) Work(u float64) int {
	b.wip += b.admit(u)

	completed := 0
	if u > 0 && b.wip > 0 {
		completed = b.draw(float64(b.wip))
	}
	b.wip -= completed
	b.queued += completed

	drained := 0
	if b.maxFlow > 0 {
		drained = min(b.draw(float64(b.maxFlow)), b.queued)
	}
	b.queued -= drained

	return b.queued
}

// admit quantises u to whole items, clamps it to [0, maxWIP] and then to the
// headroom left in WIP.
func (b *Buffer) admit(u float64) int {
	u2 := max(0, quant.RoundHalfUp(u, 1))
	u2 = min(u2, float64(b.maxWIP))
	return min(quant.Truncate(u2), b.maxWIP-b.wip)
}

// draw samples [0, n) and quantises the result. Callers guarantee n > 0, so
// a sampling failure is a broken invariant.
func (b *Buffer) draw(n float64) int {
	v, err := b.src.Sample(0, n)
	if err != nil {
		panic(fmt.Errorf("plant: sampling [0, %g): %w", n, err))
	}
	return quant.Quantize(v)
}

func (b *Buffer) Queued() int  { return b.queued }
func (b *Buffer) WIP() int     { return b.wip }
func (b *Buffer) MaxWIP() int  { return b.maxWIP }
func (b *Buffer) MaxFlow() int { return b.maxFlow }
