package config

import "sort"

// Presets are the built-in curves. Symbols outside the recognized command
// set (X, A, B) are structural only: they rewrite but draw nothing.
var Presets = map[string]*Config{
	"koch": {
		Name: "koch", Axiom: "F", Angle: 90, Step: 4, Iterations: 3, SpeedMs: 10,
		Rules: map[string]string{"F": "F+F-F-F+F"},
	},
	"koch-snowflake": {
		Name: "koch-snowflake", Axiom: "F--F--F", Angle: 60, Step: 4, Iterations: 3, SpeedMs: 10,
		Rules: map[string]string{"F": "F+F--F+F"},
	},
	"sierpinski": {
		Name: "sierpinski", Axiom: "F-G-G", Angle: 120, Step: 5, Iterations: 4, SpeedMs: 5,
		Rules: map[string]string{"F": "F-G+F+G-F", "G": "GG"},
	},
	"sierpinski-arrow": {
		Name: "sierpinski-arrow", Axiom: "F", Angle: 60, Step: 3, Iterations: 5, SpeedMs: 5,
		Rules: map[string]string{"F": "G-F-G", "G": "F+G+F"},
	},
	"dragon": {
		Name: "dragon", Axiom: "F", Angle: 90, Step: 3, Iterations: 9, SpeedMs: 3,
		Rules: map[string]string{"F": "F+G", "G": "F-G"},
	},
	"plant": {
		Name: "plant", Axiom: "X", Angle: 25, Step: 3, Iterations: 4, SpeedMs: 5,
		Rules: map[string]string{"X": "F+[[X]-X]-F[-FX]+X", "F": "FF"},
	},
	"hilbert": {
		Name: "hilbert", Axiom: "A", Angle: 90, Step: 4, Iterations: 4, SpeedMs: 5,
		Rules: map[string]string{"A": "+BF-AFA-FB+", "B": "-AF+BFB+FA-"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	clone.Rules = make(map[string]string, len(cfg.Rules))
	for k, v := range cfg.Rules {
		clone.Rules[k] = v
	}
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
