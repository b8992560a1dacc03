package fontfx

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ShadowConfig describes the default shadow given to effect fonts.
type ShadowConfig struct {
	Enabled bool  `yaml:"enabled"`
	Offset  Vec2  `yaml:"offset"` // relative to the text position
	Color   Color `yaml:"color"`
}

// At returns a Shadow for text positioned at pos.
func (c ShadowConfig) At(pos Vec2) Shadow {
	return Shadow{Enabled: c.Enabled, Position: pos.Add(c.Offset), Color: c.Color}
}

// DropConfig tunes the drop-in bounce.
type DropConfig struct {
	// Step is the per-tick vertical scale change while squashing and
	// recovering. The horizontal scale moves by half of it.
	Step    float64 `yaml:"step"`
	Widen   float64 `yaml:"widen"`   // squash target X scale multiplier
	Flatten float64 `yaml:"flatten"` // squash target Y scale multiplier

	// Accel multiplies the drop speed every AccelDelay while dropping.
	// The zero vector disables acceleration.
	Accel      Vec2          `yaml:"accel"`
	AccelDelay time.Duration `yaml:"accelDelay"`
	// MaxSpeed caps the accelerated speed per axis. Zero means no cap.
	MaxSpeed Vec2 `yaml:"maxSpeed"`
}

// FadeConfig tunes a fade.
type FadeConfig struct {
	StartAlpha  float64 `yaml:"startAlpha"`
	TargetAlpha float64 `yaml:"targetAlpha"`
	Step        float64 `yaml:"step"`
	StartFading bool    `yaml:"startFading"`
}

// SlideConfig tunes a distance-proportional slide.
type SlideConfig struct {
	Speed     float64 `yaml:"speed"`
	Tolerance float64 `yaml:"tolerance"`
}

// ArcadeConfig tunes color cycling.
type ArcadeConfig struct {
	CyclesPerSecond float64 `yaml:"cyclesPerSecond"`
}

// TypingConfig tunes the typewriter.
type TypingConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// PanelConfig tunes panel expand and collapse, in scale units per second.
type PanelConfig struct {
	Speed Vec2 `yaml:"speed"`
}

// GlideConfig tunes a sliding sprite.
type GlideConfig struct {
	Steps int `yaml:"steps"`
}

// Config holds the tunable defaults of every effect. It is usually loaded
// once from YAML and its sections handed to the effect constructors.
type Config struct {
	Shadow ShadowConfig `yaml:"shadow"`
	Drop   DropConfig   `yaml:"drop"`
	Fade   FadeConfig   `yaml:"fade"`
	Slide  SlideConfig  `yaml:"slide"`
	Arcade ArcadeConfig `yaml:"arcade"`
	Typing TypingConfig `yaml:"typing"`
	Panel  PanelConfig  `yaml:"panel"`
	Glide  GlideConfig  `yaml:"glide"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Shadow: ShadowConfig{
			Enabled: true,
			Offset:  Vec2{-DefaultShadowOffset, DefaultShadowOffset},
			Color:   ColorBlack,
		},
		Drop: DropConfig{
			Step:       0.05,
			Widen:      1.2,
			Flatten:    0.7,
			AccelDelay: 250 * time.Millisecond,
		},
		Fade: FadeConfig{
			StartAlpha:  0,
			TargetAlpha: 1,
			Step:        0.01,
			StartFading: true,
		},
		Slide: SlideConfig{
			Speed:     5,
			Tolerance: 0.4825,
		},
		Arcade: ArcadeConfig{CyclesPerSecond: 10},
		Typing: TypingConfig{Delay: 100 * time.Millisecond},
		Panel:  PanelConfig{Speed: Vec2{2, 2}},
		Glide:  GlideConfig{Steps: 100},
	}
}

// LoadConfig parses a YAML document over DefaultConfig, so a document only
// needs the keys it changes, and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("fontfx: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fontfx: read config %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first out-of-range value. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Drop.Step <= 0:
		return invalidConfig("drop.step must be positive, got %v", c.Drop.Step)
	case c.Drop.Widen <= 0 || c.Drop.Flatten <= 0:
		return invalidConfig("drop.widen and drop.flatten must be positive")
	case c.Drop.Accel.X < 0 || c.Drop.Accel.Y < 0:
		return invalidConfig("drop.accel cannot be negative")
	case !c.Drop.Accel.IsZero() && c.Drop.AccelDelay <= 0:
		return invalidConfig("drop.accelDelay must be positive when drop.accel is set")
	case c.Drop.MaxSpeed.X < 0 || c.Drop.MaxSpeed.Y < 0:
		return invalidConfig("drop.maxSpeed cannot be negative")
	case c.Fade.Step <= 0:
		return invalidConfig("fade.step must be positive, got %v", c.Fade.Step)
	case c.Fade.StartAlpha < 0 || c.Fade.StartAlpha > 1:
		return invalidConfig("fade.startAlpha must be in [0, 1], got %v", c.Fade.StartAlpha)
	case c.Fade.TargetAlpha < 0 || c.Fade.TargetAlpha > 1:
		return invalidConfig("fade.targetAlpha must be in [0, 1], got %v", c.Fade.TargetAlpha)
	case c.Slide.Speed <= 0:
		return invalidConfig("slide.speed must be positive, got %v", c.Slide.Speed)
	case c.Slide.Tolerance <= 0:
		return invalidConfig("slide.tolerance must be positive, got %v", c.Slide.Tolerance)
	case c.Arcade.CyclesPerSecond <= 0:
		return invalidConfig("arcade.cyclesPerSecond must be positive, got %v", c.Arcade.CyclesPerSecond)
	case c.Typing.Delay < 0:
		return invalidConfig("typing.delay cannot be negative, got %v", c.Typing.Delay)
	case c.Panel.Speed.X <= 0 || c.Panel.Speed.Y <= 0:
		return invalidConfig("panel.speed must be positive on both axes")
	case c.Glide.Steps < 1:
		return invalidConfig("glide.steps must be at least 1, got %d", c.Glide.Steps)
	}
	return nil
}

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
