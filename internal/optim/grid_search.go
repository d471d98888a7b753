package optim

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/queueloop/internal/config"
	"github.com/san-kum/queueloop/internal/experiment"
)

var (
	ErrEmptyGrid     = errors.New("optim: grid has no candidates")
	ErrUnknownMetric = errors.New("optim: metric not reported by experiment")
)

// Builder turns one grid point into a ready-to-run experiment.
type Builder func(params map[string]float64) (*experiment.Experiment, error)

type Candidate struct {
	Params map[string]float64
	Score  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	parallel   int
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, parallel: runtime.GOMAXPROCS(0)}
}

// SetParallel bounds the number of experiments in flight. n < 1 means one.
func (g *GridSearch) SetParallel(n int) {
	g.parallel = max(n, 1)
}

// Combinations enumerates the grid with the last parameter varying fastest.
func (g *GridSearch) Combinations() []map[string]float64 {
	var out []map[string]float64
	g.combine(0, make(map[string]float64), &out)
	return out
}

func (g *GridSearch) combine(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.paramNames) {
		*out = append(*out, maps.Clone(current))
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		current[paramName] = val
		g.combine(depth+1, current, out)
	}
	delete(current, paramName)
}

// Search runs every grid point and returns the one minimising metricName,
// along with every candidate's score in grid order. Ties keep the earlier
// candidate. The first failing experiment cancels the rest.
func (g *GridSearch) Search(ctx context.Context, build Builder, metricName string) (Candidate, []Candidate, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Candidate{}, nil, fmt.Errorf("optim: %d parameter names for %d ranges", len(g.paramNames), len(g.ranges))
	}

	combos := g.Combinations()
	if len(combos) == 0 {
		return Candidate{}, nil, ErrEmptyGrid
	}

	scores := make([]Candidate, len(combos))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallel)

	for i, params := range combos {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			exp, err := build(params)
			if err != nil {
				return fmt.Errorf("optim: build %v: %w", params, err)
			}
			if err := exp.Setup(); err != nil {
				return fmt.Errorf("optim: setup %v: %w", params, err)
			}
			res, err := exp.Run()
			if err != nil {
				return fmt.Errorf("optim: run %v: %w", params, err)
			}
			val, ok := res.Metrics[metricName]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownMetric, metricName)
			}
			scores[i] = Candidate{Params: params, Score: val}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Candidate{}, nil, err
	}

	best := Candidate{Score: math.Inf(1)}
	for _, c := range scores {
		if best.Params == nil || c.Score < best.Score {
			best = c
		}
	}
	return best, scores, nil
}

// PIBuilder sweeps "kp" and "ki" over a base configuration. Every candidate
// keeps the base seed so they all see the same random stream.
func PIBuilder(base config.Config, opts ...experiment.Option) Builder {
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := *base.Clone()
		if kp, ok := params["kp"]; ok {
			cfg.Controller.Kp = kp
		}
		if ki, ok := params["ki"]; ok {
			cfg.Controller.Ki = ki
		}
		return experiment.New(cfg, opts...), nil
	}
}
