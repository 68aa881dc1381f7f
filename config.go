package main

import (
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRadius           = 48.0
	defaultWidgetSize       = 112.0
	defaultRotateScale      = 0.02
	defaultDragSensitivity  = 0.01
	defaultDragThreshold    = 4.0
	defaultDoubleClickDelay = 300
	defaultMotionRateHz     = 60
	defaultRepeatRateHz     = 10
	defaultStorageKey       = "viewcube.position"
)

// PanConfig parameterizes the distance-dependent pan speed
// clamp(Base + distance*DistanceFactor, SpeedMin, SpeedMax).
type PanConfig struct {
	Base           float64 `yaml:"base"`
	DistanceFactor float64 `yaml:"distance_factor"`
	SpeedMin       float64 `yaml:"speed_min"`
	SpeedMax       float64 `yaml:"speed_max"`
}

// Config is the widget configuration. Every field is optional; zero
// values are replaced by defaults so a partial YAML file is valid.
type Config struct {
	// Radius is the ring radius in CSS pixels.
	Radius float64 `yaml:"radius"`
	// WidgetSize is the square footprint used for viewport clamping
	// and the gizmo canvas.
	WidgetSize float64 `yaml:"widget_size"`
	// RotateScale scales normalized ring intents into rotation deltas.
	RotateScale float64 `yaml:"rotate_scale"`
	// DragSensitivity scales per-frame gizmo drag deltas.
	DragSensitivity float64 `yaml:"drag_sensitivity"`
	// DragThreshold is the cumulative displacement in pixels below
	// which a gizmo gesture still counts as a click.
	DragThreshold float64 `yaml:"drag_threshold"`
	// DoubleClickDelayMs is the face double-click window.
	DoubleClickDelayMs int `yaml:"double_click_delay_ms"`

	MotionRateHz int `yaml:"motion_rate_hz"`
	RepeatRateHz int `yaml:"repeat_rate_hz"`

	Pan PanConfig `yaml:"pan"`

	StorageKey string `yaml:"storage_key"`
}

func defaultConfig() Config {
	return Config{
		Radius:             defaultRadius,
		WidgetSize:         defaultWidgetSize,
		RotateScale:        defaultRotateScale,
		DragSensitivity:    defaultDragSensitivity,
		DragThreshold:      defaultDragThreshold,
		DoubleClickDelayMs: defaultDoubleClickDelay,
		MotionRateHz:       defaultMotionRateHz,
		RepeatRateHz:       defaultRepeatRateHz,
		Pan: PanConfig{
			Base:           0.002,
			DistanceFactor: 0.0002,
			SpeedMin:       0.002,
			SpeedMax:       0.05,
		},
		StorageKey: defaultStorageKey,
	}
}

// loadConfig parses a YAML config, falling back to defaults for missing
// fields. A nil, empty or corrupt input yields the full defaults; a
// config error never fails widget construction.
func loadConfig(b []byte) Config {
	cfg := defaultConfig()
	if len(b) == 0 {
		return cfg
	}
	var in Config
	if err := yaml.Unmarshal(b, &in); err != nil {
		return cfg
	}
	if in.Radius > 0 {
		cfg.Radius = in.Radius
	}
	if in.WidgetSize > 0 {
		cfg.WidgetSize = in.WidgetSize
	}
	if in.RotateScale > 0 {
		cfg.RotateScale = in.RotateScale
	}
	if in.DragSensitivity > 0 {
		cfg.DragSensitivity = in.DragSensitivity
	}
	if in.DragThreshold > 0 {
		cfg.DragThreshold = in.DragThreshold
	}
	if in.DoubleClickDelayMs > 0 {
		cfg.DoubleClickDelayMs = in.DoubleClickDelayMs
	}
	if in.MotionRateHz > 0 {
		cfg.MotionRateHz = in.MotionRateHz
	}
	if in.RepeatRateHz > 0 {
		cfg.RepeatRateHz = in.RepeatRateHz
	}
	if in.Pan.Base > 0 {
		cfg.Pan.Base = in.Pan.Base
	}
	if in.Pan.DistanceFactor > 0 {
		cfg.Pan.DistanceFactor = in.Pan.DistanceFactor
	}
	if in.Pan.SpeedMin > 0 {
		cfg.Pan.SpeedMin = in.Pan.SpeedMin
	}
	if in.Pan.SpeedMax > 0 {
		cfg.Pan.SpeedMax = in.Pan.SpeedMax
	}
	if in.StorageKey != "" {
		cfg.StorageKey = in.StorageKey
	}
	return cfg
}

func (c Config) motionInterval() time.Duration {
	return time.Second / time.Duration(c.MotionRateHz)
}

func (c Config) repeatInterval() time.Duration {
	return time.Second / time.Duration(c.RepeatRateHz)
}

func (c Config) doubleClickDelay() time.Duration {
	return time.Duration(c.DoubleClickDelayMs) * time.Millisecond
}
