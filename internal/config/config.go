package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultKp      = 1.25
	DefaultKi      = 0.01
	DefaultMaxWIP  = 50
	DefaultMaxFlow = 10
	DefaultSteps   = 5000
	DefaultProfile = "canonical"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	Buffer     BufferConfig     `yaml:"buffer"`
	SetPoint   SetPointConfig   `yaml:"setpoint"`
	Steps      int              `yaml:"steps"`
	Seed       uint64           `yaml:"seed"`
}

type ControllerConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
}

type BufferConfig struct {
	MaxWIP  int `yaml:"max_wip"`
	MaxFlow int `yaml:"max_flow"`
}

// SetPointConfig selects a reference profile. Value is used by "constant";
// Before and Segments by "schedule".
type SetPointConfig struct {
	Profile  string          `yaml:"profile"`
	Value    int             `yaml:"value,omitempty"`
	Before   int             `yaml:"before,omitempty"`
	Segments []SegmentConfig `yaml:"segments,omitempty"`
}

type SegmentConfig struct {
	From  int `yaml:"from"`
	Value int `yaml:"value"`
}

func DefaultConfig() *Config {
	return &Config{
		Controller: ControllerConfig{
			Kp: DefaultKp,
			Ki: DefaultKi,
		},
		Buffer: BufferConfig{
			MaxWIP:  DefaultMaxWIP,
			MaxFlow: DefaultMaxFlow,
		},
		SetPoint: SetPointConfig{
			Profile: DefaultProfile,
		},
		Steps: DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot build a loop.
func (c *Config) Validate() error {
	if c.Buffer.MaxWIP <= 0 {
		return fmt.Errorf("%w: buffer.max_wip must be positive, got %d", ErrInvalid, c.Buffer.MaxWIP)
	}
	if c.Buffer.MaxFlow < 0 {
		return fmt.Errorf("%w: buffer.max_flow must not be negative, got %d", ErrInvalid, c.Buffer.MaxFlow)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalid, c.Steps)
	}
	if c.SetPoint.Profile == "" {
		return fmt.Errorf("%w: setpoint.profile is required", ErrInvalid)
	}
	return nil
}

// Clone returns a deep copy so presets are never mutated through a caller.
func (c *Config) Clone() *Config {
	out := *c
	out.SetPoint.Segments = append([]SegmentConfig(nil), c.SetPoint.Segments...)
	return &out
}
