package main

import (
	"log/slog"
	"sync"
)

// controller coordinates the gesture classifiers, the continuous motion
// driver and the camera adapters. All pointer entry points take
// coordinates in CSS pixels; ring coordinates are relative to the ring
// center, gizmo coordinates relative to the gizmo canvas origin.
//
// At most one of ring motion, gizmo drag, zoom/nudge repeat, snap
// transition and widget drag is active at a time; starting any gesture
// cancels the previous one.
type controller struct {
	mu sync.Mutex

	cfg    Config
	events Events
	logger *slog.Logger

	camera   Camera
	controls Controls

	panMode bool

	ring   *ringClassifier
	cube   *cubeClassifier
	motion *motionDriver
	repeat *motionDriver
	orbit  *orbitAdapter
	pan    *panAdapter
	snap   *snapper
	zoom   *zoomNormalizer

	store positionStore
	pos   Position
	drag  widgetDrag

	disposables []func()
	disposed    bool
}

// widgetDrag tracks an in-flight widget reposition gesture.
type widgetDrag struct {
	active               bool
	startX, startY       float64
	startPos             Position
	viewportW, viewportH float64
}

func newController(cfg Config, camera Camera, controls Controls, events Events, store positionStore) *controller {
	logger := slog.Default().With("component", "viewcube")
	if store == nil {
		store = &memoryPositionStore{}
	}
	c := &controller{
		cfg:      cfg,
		events:   events,
		logger:   logger,
		camera:   camera,
		controls: controls,
		ring:     newRingClassifier(cfg.Radius, cfg.RotateScale),
		cube:     newCubeClassifier(cfg.DragThreshold, cfg.DragSensitivity, cfg.doubleClickDelay()),
		orbit:    &orbitAdapter{emit: events.CameraRotate, logger: logger},
		pan:      newPanAdapter(camera, controls, cfg.Pan, logger),
		snap:     newSnapper(camera, controls, logger),
		zoom:     &zoomNormalizer{},
		store:    store,
		pos:      defaultPosition,
	}
	c.motion = newMotionDriver(cfg.motionInterval(), c.applyMotion)
	c.repeat = newMotionDriver(cfg.repeatInterval(), c.applyRepeat)
	if pos, ok := store.Load(); ok {
		c.pos = pos
	}
	return c
}

// applyMotion routes a ring intent to the active mode's adapter.
// Called by the motion driver under its own lock.
func (c *controller) applyMotion(dx, dy float64) {
	if c.panModeActive() {
		if c.events.CameraPan != nil {
			c.events.CameraPan(PanDelta{X: dx, Y: dy})
			return
		}
		c.pan.Pan(dx, dy)
		return
	}
	c.orbit.Rotate(dx, dy)
}

// applyRepeat re-emits the held discrete action: dx carries the zoom
// direction, dy a nudge direction offset by one (0 means no nudge).
func (c *controller) applyRepeat(dx, dy float64) {
	if dy != 0 {
		c.emitNudge(NudgeDirection(int(dy) - 1))
		return
	}
	c.emitZoom(int(dx))
}

func (c *controller) panModeActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panMode
}

func (c *controller) isDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// SetMode switches between rotate and pan mode. The modes are mutually
// exclusive; switching cancels any active gesture.
func (c *controller) SetMode(pan bool) {
	c.mu.Lock()
	if c.panMode == pan {
		c.mu.Unlock()
		return
	}
	c.panMode = pan
	c.mu.Unlock()
	c.cancelGestures()
}

// PanMode reports whether pan mode is active.
func (c *controller) PanMode() bool {
	return c.panModeActive()
}

// cancelGestures upholds the single-active-gesture invariant.
func (c *controller) cancelGestures() {
	c.motion.Stop()
	c.repeat.Stop()
	c.snap.Stop()
	c.mu.Lock()
	c.ring.Up()
	c.drag.active = false
	c.mu.Unlock()
}

// RingDown starts a ring gesture. (x, y) is relative to the ring
// center. It reports whether the point was inside the active annulus;
// downs outside it are reserved for the central gizmo.
func (c *controller) RingDown(x, y float64) bool {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return false
	}
	intent, ok := c.ring.Down(x, y)
	c.mu.Unlock()
	if !ok {
		return false
	}
	c.repeat.Stop()
	c.snap.Stop()
	c.motion.Start(intent.dx, intent.dy)
	return true
}

// RingMove updates the intent of an active ring gesture.
func (c *controller) RingMove(x, y float64) {
	c.mu.Lock()
	intent, ok := c.ring.Move(x, y)
	c.mu.Unlock()
	if !ok {
		return
	}
	c.motion.Update(intent.dx, intent.dy)
}

// RingUp ends a ring gesture. The motion tick is canceled before this
// returns; no camera event follows.
func (c *controller) RingUp() {
	c.mu.Lock()
	active := c.ring.Active()
	c.ring.Up()
	c.mu.Unlock()
	if active {
		c.motion.Stop()
	}
}

// GizmoDown starts a gizmo gesture at canvas offset (x, y). The face
// under the pointer is resolved by raycasting; a double-click on the
// same face emits exactly one snap-to-view and starts no drag.
func (c *controller) GizmoDown(x, y float64) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	face := c.faceAt(x, y)
	snapFace := c.cube.Down(x, y, face)
	c.mu.Unlock()
	if snapFace != nil {
		c.SnapTo(*snapFace)
	}
}

// GizmoMove advances a gizmo drag. Rotation deltas are emitted directly
// per move frame; displacement below the drag threshold emits nothing.
func (c *controller) GizmoMove(x, y float64) {
	c.mu.Lock()
	dx, dy, emit := c.cube.Move(x, y)
	c.mu.Unlock()
	if emit {
		c.orbit.Rotate(dx, dy)
	}
}

// GizmoUp ends a gizmo gesture, remembering an unexpanded click for
// double-click detection.
func (c *controller) GizmoUp() {
	c.mu.Lock()
	c.cube.Up()
	c.mu.Unlock()
}

// faceAt raycasts the gizmo cube under canvas offset (x, y).
// Requires c.mu held.
func (c *controller) faceAt(x, y float64) *Face {
	if c.camera == nil {
		return nil
	}
	size := c.cfg.WidgetSize
	ndcX := float32(2*x/size - 1)
	ndcY := float32(1 - 2*y/size)
	face, ok := pickFace(ndcX, ndcY, gizmoOrientation(c.camera.Orientation()))
	if !ok {
		return nil
	}
	return &face
}

// SnapTo emits a single snap-to-view notification and starts the
// animated transition when a camera/controls pair is attached.
func (c *controller) SnapTo(face Face) {
	if c.isDisposed() {
		return
	}
	c.cancelGestures()
	if c.events.SnapToView != nil {
		c.events.SnapToView(face)
	}
	c.snap.Start(face)
}

// Wheel consumes a wheel delta and emits the resulting discrete zoom
// steps, one camera-zoom per step.
func (c *controller) Wheel(deltaY float64) {
	if c.isDisposed() {
		return
	}
	steps, ok := c.zoom.Steps(deltaY)
	if !ok || steps == 0 {
		return
	}
	dir := 1
	if steps < 0 {
		dir = -1
		steps = -steps
	}
	for i := 0; i < steps; i++ {
		c.emitZoom(dir)
	}
}

// ZoomStep emits one discrete zoom step, direction +1 or -1.
func (c *controller) ZoomStep(dir int) {
	if c.isDisposed() {
		return
	}
	c.emitZoom(dir)
}

// ZoomHoldStart emits one step immediately and repeats it at the hold
// rate until ZoomHoldStop.
func (c *controller) ZoomHoldStart(dir int) {
	if c.isDisposed() {
		return
	}
	c.motion.Stop()
	c.snap.Stop()
	c.repeat.Start(float64(dir), 0)
}

// ZoomHoldStop cancels the zoom repeat synchronously.
func (c *controller) ZoomHoldStop() {
	c.repeat.Stop()
}

// Nudge emits a single discrete camera nudge.
func (c *controller) Nudge(dir NudgeDirection) {
	if c.isDisposed() {
		return
	}
	c.emitNudge(dir)
}

// NudgeHoldStart repeats a nudge at the hold rate until NudgeHoldStop.
func (c *controller) NudgeHoldStart(dir NudgeDirection) {
	if c.isDisposed() {
		return
	}
	c.motion.Stop()
	c.snap.Stop()
	c.repeat.Start(0, float64(int(dir)+1))
}

func (c *controller) NudgeHoldStop() {
	c.repeat.Stop()
}

func (c *controller) emitZoom(dir int) {
	if c.events.CameraZoom == nil {
		return
	}
	if dir > 0 {
		c.events.CameraZoom(1)
	} else if dir < 0 {
		c.events.CameraZoom(-1)
	}
}

func (c *controller) emitNudge(dir NudgeDirection) {
	if c.events.NudgeCamera != nil {
		c.events.NudgeCamera(dir)
	}
}

// ResetPan restores the orbit target to the origin, preserving camera
// distance and viewing angle.
func (c *controller) ResetPan() {
	c.pan.Reset()
}

// Position returns the current widget offset.
func (c *controller) Position() Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// HandleDown starts a widget reposition drag from the widget's drag
// handle. (x, y) is in viewport coordinates.
func (c *controller) HandleDown(x, y, viewportW, viewportH float64) {
	c.cancelGestures()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.drag = widgetDrag{
		active:    true,
		startX:    x,
		startY:    y,
		startPos:  c.pos,
		viewportW: viewportW,
		viewportH: viewportH,
	}
}

// HandleMove updates the widget position, clamped to the viewport.
func (c *controller) HandleMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.drag.active {
		return
	}
	// X is measured from the right edge, so pointer movement to the
	// right shrinks it.
	pos := Position{
		X: c.drag.startPos.X - (x - c.drag.startX),
		Y: c.drag.startPos.Y + (y - c.drag.startY),
	}
	c.pos = clampPosition(pos, c.drag.viewportW, c.drag.viewportH, c.cfg.WidgetSize)
}

// HandleUp ends the widget drag, persists the position and notifies the
// host. Persistence failures are swallowed by the store.
func (c *controller) HandleUp() {
	c.mu.Lock()
	if !c.drag.active {
		c.mu.Unlock()
		return
	}
	c.drag.active = false
	pos := c.pos
	c.mu.Unlock()

	c.store.Save(pos)
	if c.events.PositionChanged != nil {
		c.events.PositionChanged(pos)
	}
}

// onDispose registers a cleanup hook (listener release, renderer
// teardown) run exactly once by Dispose.
func (c *controller) onDispose(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		fn()
		return
	}
	c.disposables = append(c.disposables, fn)
}

// Dispose cancels all timers and gestures and runs the registered
// cleanup hooks. It is idempotent.
func (c *controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	hooks := c.disposables
	c.disposables = nil
	c.mu.Unlock()

	c.cancelGestures()
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}
