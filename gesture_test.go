package main

import (
	"math"
	"testing"
	"time"
)

func TestRingClassifierDown(t *testing.T) {
	const radius = 48.0
	const scale = 0.02

	testCases := map[string]struct {
		x, y       float64
		ok         bool
		dx, dy     float64
		strengthOK bool
	}{
		"Center": {
			x: 0, y: 0,
			ok: false,
		},
		"InsideDeadZone": {
			x: 0.1 * radius, y: 0,
			ok: false,
		},
		"OutsideRing": {
			x: 1.2 * radius, y: 0,
			ok: false,
		},
		"HalfStrength": {
			// 0.3R right of center: strength 0.3/0.5 = 0.6.
			x: 0.3 * radius, y: 0,
			ok: true,
			dx: 0.6 * scale, dy: 0,
		},
		"Saturated": {
			// At and beyond 0.5R the strength clamps to 1.
			x: 0, y: 0.8 * radius,
			ok: true,
			dx: 0, dy: 1.0 * scale,
		},
		"Diagonal": {
			x: 0.6 * radius, y: 0.6 * radius,
			ok: true,
			dx: scale / math.Sqrt2, dy: scale / math.Sqrt2,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			rc := newRingClassifier(radius, scale)
			intent, ok := rc.Down(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got: %v", tt.ok, ok)
			}
			if !ok {
				if rc.Active() {
					t.Error("Rejected down must not start a session")
				}
				return
			}
			const eps = 1e-9
			if math.Abs(intent.dx-tt.dx) > eps || math.Abs(intent.dy-tt.dy) > eps {
				t.Errorf("Expected intent (%f, %f), got: (%f, %f)", tt.dx, tt.dy, intent.dx, intent.dy)
			}
		})
	}
}

func TestRingClassifierSession(t *testing.T) {
	rc := newRingClassifier(48, 0.02)

	if _, ok := rc.Move(30, 0); ok {
		t.Error("Move without a session must report ok=false")
	}

	if _, ok := rc.Down(30, 0); !ok {
		t.Fatal("Down inside the annulus must start a session")
	}

	// Moving outside the annulus pauses motion but keeps the session.
	intent, ok := rc.Move(100, 0)
	if !ok {
		t.Error("Move outside the annulus must keep the session")
	}
	if intent.dx != 0 || intent.dy != 0 {
		t.Errorf("Intent outside the annulus must be zero, got: (%f, %f)", intent.dx, intent.dy)
	}

	// Re-entering resumes motion.
	intent, ok = rc.Move(0, -30)
	if !ok || intent.dy >= 0 {
		t.Errorf("Re-entering the annulus must resume motion, got: (%f, %f), %v", intent.dx, intent.dy, ok)
	}

	rc.Up()
	if rc.Active() {
		t.Error("Up must end the session")
	}
}

func TestCubeClassifierClickAndDoubleClick(t *testing.T) {
	now := time.Unix(0, 0)
	cc := newCubeClassifier(4, 0.01, 300*time.Millisecond)
	cc.now = func() time.Time { return now }

	face := FaceTop

	if snap := cc.Down(10, 10, &face); snap != nil {
		t.Fatal("First down must not snap")
	}
	cc.Up()

	// Second down on the same face within the window snaps.
	now = now.Add(200 * time.Millisecond)
	snap := cc.Down(10, 10, &face)
	if snap == nil || *snap != FaceTop {
		t.Fatalf("Expected snap to TOP, got: %v", snap)
	}
	if cc.memory.face != nil {
		t.Error("Double-click must clear the click memory")
	}

	// A third down must not snap again; the memory was consumed.
	now = now.Add(100 * time.Millisecond)
	if snap := cc.Down(10, 10, &face); snap != nil {
		t.Error("Consumed double-click must not snap again")
	}
}

func TestCubeClassifierDoubleClickExpiry(t *testing.T) {
	now := time.Unix(0, 0)
	cc := newCubeClassifier(4, 0.01, 300*time.Millisecond)
	cc.now = func() time.Time { return now }

	face := FaceLeft
	cc.Down(0, 0, &face)
	cc.Up()

	now = now.Add(301 * time.Millisecond)
	if snap := cc.Down(0, 0, &face); snap != nil {
		t.Error("Down after the double-click window must not snap")
	}
}

func TestCubeClassifierDoubleClickWindowFromPress(t *testing.T) {
	now := time.Unix(0, 0)
	cc := newCubeClassifier(4, 0.01, 300*time.Millisecond)
	cc.now = func() time.Time { return now }

	face := FaceRight

	// The button is held for 200ms before release. The window still runs
	// from the press, so a second down 301ms after the first press is too
	// late even though only 101ms passed since the release.
	cc.Down(0, 0, &face)
	now = now.Add(200 * time.Millisecond)
	cc.Up()

	now = now.Add(101 * time.Millisecond)
	if snap := cc.Down(0, 0, &face); snap != nil {
		t.Error("The double-click window must be measured from the press, not the release")
	}
	cc.Up()

	// Press to press within the window still snaps after a held click.
	now = now.Add(250 * time.Millisecond)
	if snap := cc.Down(0, 0, &face); snap == nil || *snap != FaceRight {
		t.Errorf("Expected snap to RIGHT, got: %v", snap)
	}
}

func TestCubeClassifierDoubleClickDifferentFace(t *testing.T) {
	now := time.Unix(0, 0)
	cc := newCubeClassifier(4, 0.01, 300*time.Millisecond)
	cc.now = func() time.Time { return now }

	top, left := FaceTop, FaceLeft
	cc.Down(0, 0, &top)
	cc.Up()

	now = now.Add(100 * time.Millisecond)
	if snap := cc.Down(0, 0, &left); snap != nil {
		t.Error("Second click on a different face must not snap")
	}
}

func TestCubeClassifierMicroDrag(t *testing.T) {
	cc := newCubeClassifier(4, 0.01, 300*time.Millisecond)
	face := FaceFront
	cc.Down(10, 10, &face)

	// 2px of total displacement stays below the 4px threshold.
	for _, p := range [][2]float64{{11, 10}, {12, 10}} {
		if dx, dy, emit := cc.Move(p[0], p[1]); emit || dx != 0 || dy != 0 {
			t.Errorf("Sub-threshold move must emit nothing, got: (%f, %f, %v)", dx, dy, emit)
		}
	}

	cc.Up()
	if cc.memory.face == nil || *cc.memory.face != FaceFront {
		t.Error("Sub-threshold gesture must be remembered as a click")
	}
}

func TestCubeClassifierDrag(t *testing.T) {
	const sensitivity = 0.01
	cc := newCubeClassifier(4, sensitivity, 300*time.Millisecond)
	face := FaceFront
	cc.Down(0, 0, &face)

	// Threshold-crossing frame re-baselines without emitting.
	if _, _, emit := cc.Move(5, 0); emit {
		t.Error("Threshold-crossing frame must not emit")
	}
	if cc.State() != gestureDragging {
		t.Fatal("Threshold crossing must enter the dragging state")
	}

	dx, dy, emit := cc.Move(8, 2)
	if !emit {
		t.Fatal("Dragging move must emit")
	}
	if dx != 3*sensitivity || dy != 2*sensitivity {
		t.Errorf("Expected delta (%f, %f), got: (%f, %f)", 3*sensitivity, 2*sensitivity, dx, dy)
	}

	cc.Up()
	if cc.memory.face != nil {
		t.Error("A drag must not be remembered as a click")
	}
}
