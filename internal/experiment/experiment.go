package experiment

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/san-kum/queueloop/internal/config"
	"github.com/san-kum/queueloop/internal/control"
	"github.com/san-kum/queueloop/internal/metrics"
	"github.com/san-kum/queueloop/internal/plant"
	"github.com/san-kum/queueloop/internal/randsrc"
	"github.com/san-kum/queueloop/internal/sim"
)

// Experiment is one configured loop: a fresh controller, buffer and random
// source wired to a set-point profile. An Experiment runs once.
type Experiment struct {
	id         string
	cfg        config.Config
	logger     *slog.Logger
	registry   *Registry
	source     randsrc.Source
	controller *control.PI
	buffer     *plant.Buffer
	setPoint   sim.SetPoint
	simulator  *sim.Simulator
	observers  []sim.Observer
}

type Option func(*Experiment)

// WithSource replaces the seeded uniform source, e.g. with randsrc.Midpoint.
func WithSource(src randsrc.Source) Option {
	return func(e *Experiment) { e.source = src }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Experiment) { e.logger = l }
}

func WithRegistry(r *Registry) Option {
	return func(e *Experiment) { e.registry = r }
}

func WithObserver(o sim.Observer) Option {
	return func(e *Experiment) { e.observers = append(e.observers, o) }
}

type Result struct {
	ID      string
	Seed    uint64
	Elapsed time.Duration
	*sim.Result
}

func New(cfg config.Config, opts ...Option) *Experiment {
	e := &Experiment{
		id:  xid.New().String(),
		cfg: cfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	if e.source == nil {
		e.source = randsrc.NewUniform(cfg.Seed)
	}
	return e
}

// Setup validates the configuration and builds the loop components.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	sp, err := e.registry.GetSetPoint(e.cfg.SetPoint)
	if err != nil {
		return err
	}

	buffer, err := plant.New(e.cfg.Buffer.MaxWIP, e.cfg.Buffer.MaxFlow, e.source)
	if err != nil {
		return err
	}

	e.controller = control.NewPI(e.cfg.Controller.Kp, e.cfg.Controller.Ki)
	e.buffer = buffer
	e.setPoint = sp
	e.simulator = sim.New(e.controller, buffer, sp)
	for _, m := range metrics.Default() {
		e.simulator.AddMetric(m)
	}
	for _, o := range e.observers {
		e.simulator.AddObserver(o)
	}
	return nil
}

func (e *Experiment) Run() (*Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	e.logger.Debug("starting run",
		"id", e.id,
		"seed", e.cfg.Seed,
		"steps", e.cfg.Steps,
		"kp", e.cfg.Controller.Kp,
		"ki", e.cfg.Controller.Ki,
		"profile", e.cfg.SetPoint.Profile,
	)

	start := time.Now()
	res, err := e.simulator.Run(sim.Config{Steps: e.cfg.Steps})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	e.logger.Debug("run complete",
		"id", e.id,
		"samples", len(res.Samples),
		"elapsed", elapsed,
		"iae", res.Metrics["iae"],
	)

	return &Result{
		ID:      e.id,
		Seed:    e.cfg.Seed,
		Elapsed: elapsed,
		Result:  res,
	}, nil
}

func (e *Experiment) ID() string { return e.id }

func (e *Experiment) Config() config.Config { return e.cfg }

// Controller, Buffer and SetPoint are nil until Setup succeeds.
func (e *Experiment) Controller() *control.PI { return e.controller }

func (e *Experiment) Buffer() *plant.Buffer { return e.buffer }

func (e *Experiment) SetPoint() sim.SetPoint { return e.setPoint }
