package config

import "sort"

var Presets = map[string]*Config{
	"canonical": {
		Controller: ControllerConfig{Kp: 1.25, Ki: 0.01},
		Buffer:     BufferConfig{MaxWIP: 50, MaxFlow: 10},
		SetPoint:   SetPointConfig{Profile: "canonical"},
		Steps:      310,
	},
	"default": {
		Controller: ControllerConfig{Kp: DefaultKp, Ki: DefaultKi},
		Buffer:     BufferConfig{MaxWIP: DefaultMaxWIP, MaxFlow: DefaultMaxFlow},
		SetPoint:   SetPointConfig{Profile: "canonical"},
		Steps:      DefaultSteps,
	},
	"sluggish": {
		Controller: ControllerConfig{Kp: 0.4, Ki: 0.002},
		Buffer:     BufferConfig{MaxWIP: 50, MaxFlow: 10},
		SetPoint:   SetPointConfig{Profile: "canonical"},
		Steps:      600,
	},
	"aggressive": {
		Controller: ControllerConfig{Kp: 3.0, Ki: 0.08},
		Buffer:     BufferConfig{MaxWIP: 50, MaxFlow: 10},
		SetPoint:   SetPointConfig{Profile: "canonical"},
		Steps:      600,
	},
	"narrow-outlet": {
		Controller: ControllerConfig{Kp: 1.25, Ki: 0.01},
		Buffer:     BufferConfig{MaxWIP: 50, MaxFlow: 3},
		SetPoint: SetPointConfig{
			Profile: "schedule",
			Before:  0,
			Segments: []SegmentConfig{
				{From: 0, Value: 0},
				{From: 50, Value: 30},
				{From: 400, Value: 5},
			},
		},
		Steps: 800,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
