package metrics

import "github.com/san-kum/queueloop/internal/sim"

// PeakQueue is the largest output observed.
type PeakQueue struct {
	name string
	peak int
}

func NewPeakQueue() *PeakQueue {
	return &PeakQueue{name: "peak_queue"}
}

func (m *PeakQueue) Name() string { return m.name }

func (m *PeakQueue) Observe(s sim.Sample) {
	m.peak = max(m.peak, s.Y)
}

func (m *PeakQueue) Value() float64 { return float64(m.peak) }

func (m *PeakQueue) Reset() { m.peak = 0 }

// Default returns a fresh instance of every loop metric.
func Default() []sim.Metric {
	return []sim.Metric{
		NewIAE(),
		NewControlEffort(),
		NewPeakQueue(),
		NewFinalError(),
	}
}
