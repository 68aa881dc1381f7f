package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	testCases := map[string][]byte{
		"Nil":     nil,
		"Empty":   []byte(""),
		"Corrupt": []byte("radius: [not a number"),
	}
	for name, in := range testCases {
		in := in
		t.Run(name, func(t *testing.T) {
			cfg := loadConfig(in)
			assert.Equal(t, defaultConfig(), cfg)
		})
	}
}

func TestLoadConfigPartial(t *testing.T) {
	cfg := loadConfig([]byte(`
radius: 64
drag_threshold: 6
pan:
  speed_max: 0.1
storage_key: custom.key
`))

	assert.Equal(t, 64.0, cfg.Radius)
	assert.Equal(t, 6.0, cfg.DragThreshold)
	assert.Equal(t, 0.1, cfg.Pan.SpeedMax)
	assert.Equal(t, "custom.key", cfg.StorageKey)

	// Unspecified fields keep their defaults.
	assert.Equal(t, defaultWidgetSize, cfg.WidgetSize)
	assert.Equal(t, defaultRotateScale, cfg.RotateScale)
	assert.Equal(t, 0.002, cfg.Pan.Base)
	assert.Equal(t, defaultMotionRateHz, cfg.MotionRateHz)
}

func TestLoadConfigRejectsNonPositive(t *testing.T) {
	cfg := loadConfig([]byte(`
radius: -1
widget_size: 0
motion_rate_hz: -60
`))
	assert.Equal(t, defaultRadius, cfg.Radius)
	assert.Equal(t, defaultWidgetSize, cfg.WidgetSize)
	assert.Equal(t, defaultMotionRateHz, cfg.MotionRateHz)
}

func TestConfigIntervals(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, time.Second/60, cfg.motionInterval())
	assert.Equal(t, time.Second/10, cfg.repeatInterval())
	assert.Equal(t, 300*time.Millisecond, cfg.doubleClickDelay())
}
