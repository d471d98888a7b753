package sim

import "fmt"

type Simulator struct {
	controller Controller
	plant      Plant
	setPoint   SetPoint
	metrics    []Metric
	observers  []Observer
}

func New(controller Controller, plant Plant, setPoint SetPoint) *Simulator {
	return &Simulator{
		controller: controller,
		plant:      plant,
		setPoint:   setPoint,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances the loop cfg.Steps times starting from y = 0 and returns every
// recorded sample in step order.
func (s *Simulator) Run(cfg Config) (*Result, error) {
	steps, err := s.validateConfig(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Samples: make([]Sample, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	y := 0
	for t := 0; t < steps; t++ {
		sample := Step(s.controller, s.plant, s.setPoint, t, y)
		y = sample.Y
		result.Samples = append(result.Samples, sample)

		for _, m := range s.metrics {
			m.Observe(sample)
		}
		for _, obs := range s.observers {
			obs.OnStep(sample)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) (int, error) {
	if cfg.Steps < 0 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidSteps, cfg.Steps)
	}
	if cfg.Steps == 0 {
		return DefaultSteps, nil
	}
	return cfg.Steps, nil
}

// Step runs a single iteration against the previous output y and returns the
// recorded sample. It is used by interactive front-ends that advance the loop
// one tick at a time; metrics and observers are not notified.
func Step(ctrl Controller, plant Plant, sp SetPoint, t, y int) Sample {
	r := sp.At(t)
	e := r - y
	u := ctrl.Work(e)
	return Sample{T: t, R: r, E: e, U: u, Y: plant.Work(u)}
}
