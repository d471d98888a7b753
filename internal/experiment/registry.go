package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/queueloop/internal/config"
	"github.com/san-kum/queueloop/internal/setpoint"
	"github.com/san-kum/queueloop/internal/sim"
)

// Registry maps set-point profile names to constructors.
type Registry struct {
	profiles map[string]func(config.SetPointConfig) (sim.SetPoint, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		profiles: make(map[string]func(config.SetPointConfig) (sim.SetPoint, error)),
	}

	r.profiles["canonical"] = func(config.SetPointConfig) (sim.SetPoint, error) {
		return setpoint.Canonical, nil
	}
	r.profiles["constant"] = func(c config.SetPointConfig) (sim.SetPoint, error) {
		return setpoint.Constant(c.Value), nil
	}
	r.profiles["schedule"] = func(c config.SetPointConfig) (sim.SetPoint, error) {
		segs := make([]setpoint.Segment, len(c.Segments))
		for i, s := range c.Segments {
			segs[i] = setpoint.Segment{From: s.From, Value: s.Value}
		}
		sched, err := setpoint.NewSchedule(c.Before, segs...)
		if err != nil {
			return nil, err
		}
		return sched, nil
	}

	return r
}

// Register adds or replaces a profile.
func (r *Registry) Register(name string, fn func(config.SetPointConfig) (sim.SetPoint, error)) {
	r.profiles[name] = fn
}

func (r *Registry) GetSetPoint(c config.SetPointConfig) (sim.SetPoint, error) {
	fn, ok := r.profiles[c.Profile]
	if !ok {
		return nil, fmt.Errorf("unknown setpoint profile: %s", c.Profile)
	}
	return fn(c)
}

func (r *Registry) ListProfiles() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
