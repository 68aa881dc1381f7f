package main

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the externally owned main camera. The controller reads its
// orientation every gizmo frame and mutates only its position (panning
// and snap transitions).
type Camera interface {
	Position() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	Up() mgl32.Vec3
	Orientation() mgl32.Quat
	ViewDir() mgl32.Vec3
	FOV() float32
}

// Controls is the externally owned orbit-controls object holding the
// look-at target. Update must be called after any camera/target mutation.
type Controls interface {
	Target() mgl32.Vec3
	SetTarget(t mgl32.Vec3)
	Update()
}

// orbitAdapter forwards rotation deltas unchanged to the host.
// The coordinate transform belongs to the host's own camera code.
type orbitAdapter struct {
	emit   func(RotateDelta)
	logger *slog.Logger
	warned bool
}

func (a *orbitAdapter) Rotate(dx, dy float64) {
	if a.emit == nil {
		if !a.warned {
			a.logger.Warn("camera-rotate emitter is not set; rotation dropped")
			a.warned = true
		}
		return
	}
	a.emit(RotateDelta{DeltaX: dx, DeltaY: dy})
}
