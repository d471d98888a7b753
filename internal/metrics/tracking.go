package metrics

import "github.com/san-kum/queueloop/internal/sim"

// IAE is the mean absolute tracking error over the run.
type IAE struct {
	name    string
	sum     int
	samples int
}

func NewIAE() *IAE {
	return &IAE{name: "iae"}
}

func (m *IAE) Name() string { return m.name }

func (m *IAE) Observe(s sim.Sample) {
	m.sum += abs(s.E)
	m.samples++
}

func (m *IAE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *IAE) Reset() {
	m.sum = 0
	m.samples = 0
}

// FinalError is the absolute error between reference and output after the
// last observed step.
type FinalError struct {
	name string
	last int
}

func NewFinalError() *FinalError {
	return &FinalError{name: "final_error"}
}

func (m *FinalError) Name() string { return m.name }

func (m *FinalError) Observe(s sim.Sample) {
	m.last = abs(s.R - s.Y)
}

func (m *FinalError) Value() float64 { return float64(m.last) }

func (m *FinalError) Reset() { m.last = 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
