package pinchzoom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default zoom limits and animation constants.
const (
	defaultMinScale        = 1.0
	defaultMaxScale        = 3.0 // used until an image has loaded
	defaultMinScaleBounce  = 0.2
	defaultMaxScaleBounce  = 0.35
	defaultMaxScaleFloor   = 1.5
	defaultDoubleTapScale  = 2.5
	defaultApproachDivisor = 5.0
	defaultSnapThreshold   = 0.1
)

// Default gesture recognition thresholds, in frames (ticks) and pixels.
const (
	defaultDragDeadZone    = 4.0
	defaultTapMaxFrames    = 15
	defaultDoubleTapFrames = 18
	defaultDoubleTapSlop   = 24.0
)

// Config holds zoom limits, animation tuning, input thresholds, and window
// settings. Start from DefaultConfig; fields missing from a YAML file keep
// their defaults.
type Config struct {
	// MinScale is the hard lower zoom bound.
	MinScale float64 `yaml:"minScale"`
	// MinScaleBounce is how far below MinScale a live pinch may stretch.
	MinScaleBounce float64 `yaml:"minScaleBounce"`
	// MaxScaleBounce is how far above the max scale a live pinch may stretch.
	// It is also subtracted from the native-resolution scale when computing
	// the max scale.
	MaxScaleBounce float64 `yaml:"maxScaleBounce"`
	// MaxScaleFloor is the smallest max scale any image gets.
	MaxScaleFloor float64 `yaml:"maxScaleFloor"`
	// DoubleTapScale is the zoom a double tap targets from the unzoomed state.
	DoubleTapScale float64 `yaml:"doubleTapScale"`
	// ApproachDivisor controls the step animation: each frame closes
	// 1/ApproachDivisor of the remaining distance.
	ApproachDivisor float64 `yaml:"approachDivisor"`
	// SnapThreshold ends the step animation once the scale is this close.
	SnapThreshold float64 `yaml:"snapThreshold"`

	Input  InputConfig  `yaml:"input"`
	Window WindowConfig `yaml:"window"`

	// Debug enables diagnostic output on stderr.
	Debug bool `yaml:"debug"`
}

// InputConfig tunes the gesture Recognizer.
type InputConfig struct {
	// DragDeadZone is the movement in pixels before a single pointer scrolls.
	DragDeadZone float64 `yaml:"dragDeadZone"`
	// TapMaxFrames is the longest press, in frames, that still counts as a tap.
	TapMaxFrames int `yaml:"tapMaxFrames"`
	// DoubleTapFrames is the longest gap, in frames, between two taps.
	DoubleTapFrames int `yaml:"doubleTapFrames"`
	// DoubleTapSlop is the farthest apart, in pixels, two taps may land.
	DoubleTapSlop float64 `yaml:"doubleTapSlop"`
}

// WindowConfig configures the window opened by Run.
type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	ShowFPS       bool   `yaml:"showFPS"`
	ScreenshotDir string `yaml:"screenshotDir"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MinScale:        defaultMinScale,
		MinScaleBounce:  defaultMinScaleBounce,
		MaxScaleBounce:  defaultMaxScaleBounce,
		MaxScaleFloor:   defaultMaxScaleFloor,
		DoubleTapScale:  defaultDoubleTapScale,
		ApproachDivisor: defaultApproachDivisor,
		SnapThreshold:   defaultSnapThreshold,
		Input: InputConfig{
			DragDeadZone:    defaultDragDeadZone,
			TapMaxFrames:    defaultTapMaxFrames,
			DoubleTapFrames: defaultDoubleTapFrames,
			DoubleTapSlop:   defaultDoubleTapSlop,
		},
		Window: WindowConfig{
			Title:         "pinchzoom",
			Width:         800,
			Height:        600,
			ScreenshotDir: "screenshots",
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML configuration data over DefaultConfig and
// validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that would break the zoom math.
func (c *Config) Validate() error {
	switch {
	case c.MinScale <= 0:
		return fmt.Errorf("config: minScale must be positive, got %v", c.MinScale)
	case c.MinScaleBounce < 0 || c.MinScaleBounce >= c.MinScale:
		return fmt.Errorf("config: minScaleBounce must be in [0, minScale), got %v", c.MinScaleBounce)
	case c.MaxScaleBounce < 0:
		return fmt.Errorf("config: maxScaleBounce must not be negative, got %v", c.MaxScaleBounce)
	case c.MaxScaleFloor < c.MinScale:
		return fmt.Errorf("config: maxScaleFloor %v is below minScale %v", c.MaxScaleFloor, c.MinScale)
	case c.DoubleTapScale <= c.MinScale:
		return fmt.Errorf("config: doubleTapScale %v must exceed minScale %v", c.DoubleTapScale, c.MinScale)
	case c.ApproachDivisor < 1:
		return fmt.Errorf("config: approachDivisor must be at least 1, got %v", c.ApproachDivisor)
	case c.SnapThreshold <= 0:
		return fmt.Errorf("config: snapThreshold must be positive, got %v", c.SnapThreshold)
	case c.Input.DragDeadZone < 0:
		return fmt.Errorf("config: input.dragDeadZone must not be negative, got %v", c.Input.DragDeadZone)
	case c.Input.TapMaxFrames <= 0 || c.Input.DoubleTapFrames <= 0:
		return fmt.Errorf("config: input tap windows must be positive, got %d and %d",
			c.Input.TapMaxFrames, c.Input.DoubleTapFrames)
	case c.Input.DoubleTapSlop < 0:
		return fmt.Errorf("config: input.doubleTapSlop must not be negative, got %v", c.Input.DoubleTapSlop)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
