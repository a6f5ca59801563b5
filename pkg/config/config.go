// Package config loads the experience settings from YAML. Missing keys keep
// their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gethexy/pkg/docking"
	"github.com/philipparndt/gethexy/pkg/flow"
	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML document
type Config struct {
	Hexagon HexagonConfig `yaml:"hexagon"`
	Crown   CrownConfig   `yaml:"crown"`
	Phases  []PhaseConfig `yaml:"phases"`
}

// Point is a vertex in view box coordinates
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ViewBox is the coordinate space the hexagon is drawn in
type ViewBox struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HexagonConfig configures the perimeter drag
type HexagonConfig struct {
	ViewBox      ViewBox `yaml:"viewBox"`
	Points       []Point `yaml:"points"`
	HopBudget    int     `yaml:"hopBudget"`
	EndTolerance float64 `yaml:"endTolerance"`
	DiscRadius   float64 `yaml:"discRadius"`
	StrokeWidth  float64 `yaml:"strokeWidth"`
}

// CrownConfig configures the jewel docking. Ratios are relative to the
// smaller viewport dimension.
type CrownConfig struct {
	NearRatio     float64       `yaml:"nearRatio"`
	DockRatio     float64       `yaml:"dockRatio"`
	SocketOffset  float64       `yaml:"socketOffset"`
	EnlargeFactor float64       `yaml:"enlargeFactor"`
	RevealDelay   time.Duration `yaml:"revealDelay"`
}

// PhaseConfig is one step of the flow. A missing duration means the phase
// waits for its interaction to finish.
type PhaseConfig struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
}

// Default returns the built-in settings
func Default() *Config {
	steps := flow.DefaultSteps()
	phases := make([]PhaseConfig, len(steps))
	for i, step := range steps {
		phases[i] = PhaseConfig{Name: string(step.Phase), Duration: step.Duration}
	}

	return &Config{
		Hexagon: HexagonConfig{
			ViewBox: ViewBox{Width: 300, Height: 260},
			Points: []Point{
				{15, 130}, {75, 15}, {225, 15}, {285, 130},
				{225, 245}, {75, 245}, {15, 130},
			},
			HopBudget:    perimeter.DefaultHopBudget,
			EndTolerance: perimeter.DefaultEndTolerance,
			DiscRadius:   10,
			StrokeWidth:  8,
		},
		Crown: CrownConfig{
			NearRatio:     0.15,
			DockRatio:     0.06,
			SocketOffset:  0.35,
			EnlargeFactor: 1.4,
			RevealDelay:   500 * time.Millisecond,
		},
		Phases: phases,
	}
}

// Load reads path and decodes it over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings can build a tracker, a docker and a flow
func (c *Config) Validate() error {
	if c.Hexagon.ViewBox.Width <= 0 || c.Hexagon.ViewBox.Height <= 0 {
		return fmt.Errorf("hexagon.viewBox must be positive, got %gx%g",
			c.Hexagon.ViewBox.Width, c.Hexagon.ViewBox.Height)
	}
	if _, err := geometry.NewPolygon(c.HexagonPoints()); err != nil {
		return fmt.Errorf("hexagon.points: %w", err)
	}
	if c.Hexagon.HopBudget < 1 {
		return fmt.Errorf("hexagon.hopBudget must be at least 1, got %d", c.Hexagon.HopBudget)
	}
	if c.Hexagon.EndTolerance < 0 || c.Hexagon.EndTolerance > 1 {
		return fmt.Errorf("hexagon.endTolerance must be within [0, 1], got %g", c.Hexagon.EndTolerance)
	}
	if c.Hexagon.DiscRadius <= 0 {
		return fmt.Errorf("hexagon.discRadius must be positive, got %g", c.Hexagon.DiscRadius)
	}

	if err := c.Thresholds(1).Validate(); err != nil {
		return fmt.Errorf("crown: %w", err)
	}
	if c.Crown.SocketOffset < 0 || c.Crown.SocketOffset > 1 {
		return fmt.Errorf("crown.socketOffset must be within [0, 1], got %g", c.Crown.SocketOffset)
	}
	if c.Crown.EnlargeFactor < 1 {
		return fmt.Errorf("crown.enlargeFactor must be at least 1, got %g", c.Crown.EnlargeFactor)
	}
	if c.Crown.RevealDelay < 0 {
		return errors.New("crown.revealDelay must not be negative")
	}

	if _, err := flow.NewSequence(c.Steps()); err != nil {
		return fmt.Errorf("phases: %w", err)
	}
	return nil
}

// HexagonPoints converts the configured vertices
func (c *Config) HexagonPoints() []geometry.Vector2 {
	points := make([]geometry.Vector2, len(c.Hexagon.Points))
	for i, p := range c.Hexagon.Points {
		points[i] = geometry.NewVector2(p.X, p.Y)
	}
	return points
}

// ViewBox returns the hexagon view box
func (c *Config) ViewBox() geometry.ViewBox {
	return geometry.ViewBox{Width: c.Hexagon.ViewBox.Width, Height: c.Hexagon.ViewBox.Height}
}

// TrackerOptions returns the perimeter options for the hexagon
func (c *Config) TrackerOptions() []perimeter.Option {
	return []perimeter.Option{
		perimeter.WithHopBudget(c.Hexagon.HopBudget),
		perimeter.WithEndTolerance(c.Hexagon.EndTolerance),
	}
}

// Thresholds returns the docking thresholds; pass scale 1 for the ratios.
func (c *Config) Thresholds(scale float64) docking.Thresholds {
	return docking.Thresholds{
		Near: c.Crown.NearRatio * scale,
		Dock: c.Crown.DockRatio * scale,
	}
}

// Docking returns the docker configuration with thresholds relative to the
// reference scale.
func (c *Config) Docking() docking.Config {
	return docking.Config{
		Thresholds:   c.Thresholds(1),
		SocketOffset: c.Crown.SocketOffset,
	}
}

// Steps converts the configured phases
func (c *Config) Steps() []flow.Step {
	steps := make([]flow.Step, len(c.Phases))
	for i, p := range c.Phases {
		steps[i] = flow.Step{Phase: flow.Phase(p.Name), Duration: p.Duration}
	}
	return steps
}
