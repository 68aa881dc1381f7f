package main

import (
	"log/slog"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testPanConfig() PanConfig {
	return PanConfig{
		Base:           0.002,
		DistanceFactor: 0.0002,
		SpeedMin:       0.002,
		SpeedMax:       0.05,
	}
}

func TestPanSpeed(t *testing.T) {
	a := newPanAdapter(nil, nil, testPanConfig(), slog.Default())

	testCases := map[string]struct {
		distance float32
		expected float32
	}{
		"Near":    {distance: 0, expected: 0.002},
		"Mid":     {distance: 50, expected: 0.012},
		"Clamped": {distance: 1e6, expected: 0.05},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			got := a.panSpeed(tt.distance)
			if math.Abs(float64(got-tt.expected)) > 1e-6 {
				t.Errorf("Expected %f, got: %f", tt.expected, got)
			}
		})
	}
}

func TestPanMovesCameraAndTarget(t *testing.T) {
	cam := newFakeCamera(mgl32.Vec3{0, 0, 50})
	ctr := &fakeControls{}
	a := newPanAdapter(cam, ctr, testPanConfig(), slog.Default())

	a.Pan(5, 0)

	// distance 50 -> speed 0.012; camera looks down -Z with +Y up, so
	// right = up x viewDir = -X and the offset is right * (-5 * speed).
	wantOffset := mgl32.Vec3{5 * 0.012, 0, 0}
	pos := cam.Position()
	tgt := ctr.Target()
	if !pos.ApproxEqualThreshold(wantOffset.Add(mgl32.Vec3{0, 0, 50}), 1e-5) {
		t.Errorf("Expected camera at %v, got: %v", wantOffset.Add(mgl32.Vec3{0, 0, 50}), pos)
	}
	if !tgt.ApproxEqualThreshold(wantOffset, 1e-5) {
		t.Errorf("Expected target at %v, got: %v", wantOffset, tgt)
	}

	// The view direction must be unchanged.
	rel := pos.Sub(tgt)
	if !rel.ApproxEqualThreshold(mgl32.Vec3{0, 0, 50}, 1e-5) {
		t.Errorf("Pan must preserve the camera-target offset, got: %v", rel)
	}
	if ctr.updates() != 1 {
		t.Errorf("Expected 1 controls update, got: %d", ctr.updates())
	}
}

func TestPanVertical(t *testing.T) {
	cam := newFakeCamera(mgl32.Vec3{0, 0, 50})
	ctr := &fakeControls{}
	a := newPanAdapter(cam, ctr, testPanConfig(), slog.Default())

	a.Pan(0, 3)

	tgt := ctr.Target()
	if tgt.X() != 0 || tgt.Z() != 0 {
		t.Errorf("Vertical pan must move along the up axis only, got: %v", tgt)
	}
	if tgt.Y() >= 0 {
		t.Errorf("Dragging down must move the view up, got: %v", tgt)
	}
}

func TestPanWithoutCamera(t *testing.T) {
	a := newPanAdapter(nil, nil, testPanConfig(), slog.Default())
	// Must not panic.
	a.Pan(1, 1)
	a.Reset()
	if !a.warned {
		t.Error("Missing camera must be reported")
	}
}

func TestPanReset(t *testing.T) {
	cam := newFakeCamera(mgl32.Vec3{3, 4, 50})
	ctr := &fakeControls{}
	ctr.SetTarget(mgl32.Vec3{3, 4, 0})
	a := newPanAdapter(cam, ctr, testPanConfig(), slog.Default())

	a.Reset()

	if ctr.Target() != (mgl32.Vec3{}) {
		t.Errorf("Reset must restore the origin target, got: %v", ctr.Target())
	}
	if cam.Position() != (mgl32.Vec3{3, 4, 50}) {
		t.Errorf("Reset must leave the camera position untouched, got: %v", cam.Position())
	}
}
