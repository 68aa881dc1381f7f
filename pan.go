package main

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// panAdapter translates drag intents into camera-relative pan offsets
// applied to both the camera position and the controls target, keeping
// the look direction unchanged.
type panAdapter struct {
	camera   Camera
	controls Controls
	cfg      PanConfig
	logger   *slog.Logger
	warned   bool
}

func newPanAdapter(camera Camera, controls Controls, cfg PanConfig, logger *slog.Logger) *panAdapter {
	return &panAdapter{camera: camera, controls: controls, cfg: cfg, logger: logger}
}

// panSpeed grows with the camera-to-target distance and is clamped to
// [SpeedMin, SpeedMax].
func (a *panAdapter) panSpeed(distance float32) float32 {
	s := float32(a.cfg.Base) + distance*float32(a.cfg.DistanceFactor)
	if s < float32(a.cfg.SpeedMin) {
		return float32(a.cfg.SpeedMin)
	}
	if s > float32(a.cfg.SpeedMax) {
		return float32(a.cfg.SpeedMax)
	}
	return s
}

// Pan applies one pan step. The right/up basis is recomputed from the
// live camera orientation on every call; it must not be cached across
// ticks.
func (a *panAdapter) Pan(dx, dy float64) {
	if a.camera == nil || a.controls == nil {
		if !a.warned {
			a.logger.Warn("camera or controls not available; pan dropped")
			a.warned = true
		}
		return
	}
	right := a.camera.Up().Cross(a.camera.ViewDir())
	if right.Len() == 0 {
		return
	}
	right = right.Normalize()
	up := a.camera.Up().Normalize()

	distance := a.camera.Position().Sub(a.controls.Target()).Len()
	speed := a.panSpeed(distance)

	// Inverted sign for natural drag feel.
	offset := right.Mul(float32(-dx) * speed).Add(up.Mul(float32(-dy) * speed))

	a.camera.SetPosition(a.camera.Position().Add(offset))
	a.controls.SetTarget(a.controls.Target().Add(offset))
	a.controls.Update()
}

// Reset restores the controls target to the origin. The camera position
// is left untouched so distance and viewing angle are preserved.
func (a *panAdapter) Reset() {
	if a.controls == nil {
		if !a.warned {
			a.logger.Warn("controls not available; pan reset dropped")
			a.warned = true
		}
		return
	}
	a.controls.SetTarget(mgl32.Vec3{})
	a.controls.Update()
}
