package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAngle      = 90.0
	DefaultStep       = 4.0
	DefaultIterations = 3
	DefaultSpeedMs    = 10
	DefaultStroke     = 1
)

// ErrBadRuleKey indicates a rule whose left-hand side is not a single symbol.
var ErrBadRuleKey = errors.New("config: rule key must be a single symbol")

// Config describes one L-system drawing: the grammar plus the turtle and
// playback parameters supplied by the UI layer.
type Config struct {
	Name        string            `yaml:"name,omitempty"`
	Axiom       string            `yaml:"axiom"`
	Rules       map[string]string `yaml:"rules"`
	Angle       float64           `yaml:"angle"`      // degrees per +/- turn
	Step        float64           `yaml:"step"`       // line length per F/G/f
	Iterations  int               `yaml:"iterations"` // rewrite generations
	SpeedMs     int               `yaml:"speed_ms"`   // animation delay per command
	StrokeWidth int               `yaml:"stroke_width,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:        "koch",
		Axiom:       "F",
		Rules:       map[string]string{"F": "F+F-F-F+F"},
		Angle:       DefaultAngle,
		Step:        DefaultStep,
		Iterations:  DefaultIterations,
		SpeedMs:     DefaultSpeedMs,
		StrokeWidth: DefaultStroke,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// CompileRules converts the YAML string-keyed rule map to the rune-keyed
// form the rewriting engine wants. Multi-symbol keys are rejected.
func (c *Config) CompileRules() (map[rune]string, error) {
	rules := make(map[rune]string, len(c.Rules))
	for from, to := range c.Rules {
		runes := []rune(from)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadRuleKey, from)
		}
		rules[runes[0]] = to
	}
	return rules, nil
}

// Validate checks the fields the engine cannot degrade gracefully on.
func (c *Config) Validate() error {
	if c.Axiom == "" {
		return fmt.Errorf("config: axiom is required")
	}
	if c.Iterations < 0 {
		return fmt.Errorf("config: iterations must be >= 0, got %d", c.Iterations)
	}
	if c.Step <= 0 {
		return fmt.Errorf("config: step must be positive, got %f", c.Step)
	}
	if _, err := c.CompileRules(); err != nil {
		return err
	}
	return nil
}
