package main

import (
	"math"
	"time"
)

const (
	minRadiusRatio      = 0.15
	maxRadiusRatio      = 1.1
	strengthRadiusRatio = 0.5
)

// ringIntent is the current normalized direction+strength of a ring drag.
// Strength is in [0, 1]; dx/dy carry the configured scale factor.
type ringIntent struct {
	dx, dy float64
}

// ringClassifier converts pointer positions relative to the controller
// center into motion intents. A session spans one pointer-down..up pair;
// positions outside the valid annulus during a session zero the intent
// without ending the session.
type ringClassifier struct {
	radius float64
	scale  float64

	active bool
}

func newRingClassifier(radius, scale float64) *ringClassifier {
	return &ringClassifier{radius: radius, scale: scale}
}

// Down starts a ring session if (x, y) lies inside the annulus.
// Coordinates are relative to the controller center, in pixels.
func (rc *ringClassifier) Down(x, y float64) (ringIntent, bool) {
	r := math.Hypot(x, y)
	if r <= minRadiusRatio*rc.radius || r > maxRadiusRatio*rc.radius {
		return ringIntent{}, false
	}
	rc.active = true
	return rc.intentAt(x, y, r), true
}

// Move recomputes the intent for an active session.
func (rc *ringClassifier) Move(x, y float64) (ringIntent, bool) {
	if !rc.active {
		return ringIntent{}, false
	}
	r := math.Hypot(x, y)
	if r <= minRadiusRatio*rc.radius || r > maxRadiusRatio*rc.radius {
		// Outside the annulus: stop motion, keep the session.
		return ringIntent{}, true
	}
	return rc.intentAt(x, y, r), true
}

// Up ends the session.
func (rc *ringClassifier) Up() {
	rc.active = false
}

func (rc *ringClassifier) Active() bool {
	return rc.active
}

func (rc *ringClassifier) intentAt(x, y, r float64) ringIntent {
	strength := r / (strengthRadiusRatio * rc.radius)
	if strength > 1 {
		strength = 1
	}
	k := strength * rc.scale / r
	return ringIntent{dx: x * k, dy: y * k}
}

// gestureState is the explicit per-gesture state of the gizmo classifier.
type gestureState int

const (
	gestureIdle gestureState = iota
	gesturePendingClick
	gestureDragging
)

// clickMemory remembers the last resolved face click for double-click
// detection. It lives for the lifetime of the controller.
type clickMemory struct {
	face *Face
	at   time.Time
}

// cubeClassifier disambiguates clicks, double-clicks and drags on the
// gizmo. A down on a raycast-hit face becomes a pending click; a second
// down on the same face within the double-click delay snaps immediately.
// Any other down is a potential drag that emits nothing until the
// cumulative displacement exceeds the drag threshold.
type cubeClassifier struct {
	dragThreshold    float64
	sensitivity      float64
	doubleClickDelay time.Duration
	now              func() time.Time

	state        gestureState
	downX, downY float64
	lastX, lastY float64
	downAt       time.Time
	pendingFace  *Face
	memory       clickMemory
}

func newCubeClassifier(dragThreshold, sensitivity float64, doubleClickDelay time.Duration) *cubeClassifier {
	return &cubeClassifier{
		dragThreshold:    dragThreshold,
		sensitivity:      sensitivity,
		doubleClickDelay: doubleClickDelay,
		now:              time.Now,
	}
}

// Down starts a gesture. face is the raycast hit under the pointer, or
// nil on a miss. The returned face is non-nil iff this down completes a
// double-click; in that case no drag is started and the memory is
// cleared.
func (cc *cubeClassifier) Down(x, y float64, face *Face) *Face {
	if face != nil && cc.memory.face != nil && *cc.memory.face == *face &&
		cc.now().Sub(cc.memory.at) <= cc.doubleClickDelay {
		cc.memory = clickMemory{}
		cc.state = gestureIdle
		return face
	}
	cc.state = gesturePendingClick
	cc.downX, cc.downY = x, y
	cc.lastX, cc.lastY = x, y
	cc.downAt = cc.now()
	cc.pendingFace = face
	return nil
}

// Move advances the gesture. It returns a rotation delta and whether the
// delta should be emitted. While the cumulative displacement from the
// down point is below the threshold nothing is emitted; the frame that
// first crosses the threshold only re-baselines the last position so the
// next frame does not jump.
func (cc *cubeClassifier) Move(x, y float64) (dx, dy float64, emit bool) {
	switch cc.state {
	case gesturePendingClick:
		if math.Hypot(x-cc.downX, y-cc.downY) < cc.dragThreshold {
			return 0, 0, false
		}
		cc.state = gestureDragging
		cc.lastX, cc.lastY = x, y
		return 0, 0, false
	case gestureDragging:
		dx = (x - cc.lastX) * cc.sensitivity
		dy = (y - cc.lastY) * cc.sensitivity
		cc.lastX, cc.lastY = x, y
		return dx, dy, true
	}
	return 0, 0, false
}

// Up ends the gesture. A pending click that never crossed the drag
// threshold is remembered for a potential double-click. The memory is
// stamped with the down time, so the double-click window runs from
// press to press regardless of how long the button was held.
func (cc *cubeClassifier) Up() {
	if cc.state == gesturePendingClick && cc.pendingFace != nil {
		cc.memory = clickMemory{face: cc.pendingFace, at: cc.downAt}
	}
	cc.state = gestureIdle
	cc.pendingFace = nil
}

func (cc *cubeClassifier) State() gestureState {
	return cc.state
}
