//go:build js

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/seqsense/viewcube/dom"
)

func main() {
	js.Global().Set("newViewCube",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) < 1 || args[0].Type() != js.TypeObject {
				return errorToJS(errors.New("newViewCube: options object required"))
			}
			opts := args[0]
			promise := js.Global().Get("Promise")
			return promise.New(js.FuncOf(func(this js.Value, pArgs []js.Value) interface{} {
				resolve, reject := pArgs[0], pArgs[1]
				go func() {
					w, err := newWidget(opts)
					if err != nil {
						reject.Invoke(errorToJS(err))
						return
					}
					resolve.Invoke(w.jsHandle())
				}()
				return nil
			}))
		}),
	)
	select {}
}

// widget ties the controller to its DOM footprint: the gizmo canvas, the
// drag handle strip and the zoom buttons.
type widget struct {
	ctrl   *controller
	cfg    Config
	logger *slog.Logger

	root   js.Value
	canvas js.Value

	renderer *gizmoRenderer
	touch    *touchGesture

	docMove *dom.Handle
	docUp   *dom.Handle

	jsFuncs []js.Func
}

func newWidget(opts js.Value) (*widget, error) {
	logger := slog.Default().With("component", "viewcube")

	var raw []byte
	if u := opts.Get("configURL"); u.Type() == js.TypeString {
		b, err := fetchGet(u.String())
		if err != nil {
			return nil, err
		}
		raw = b
	} else if c := opts.Get("config"); c.Type() == js.TypeString {
		raw = []byte(c.String())
	}
	cfg := loadConfig(raw)

	var camera Camera
	if v := opts.Get("camera"); v.Truthy() {
		camera = jsCamera{v}
	}
	var controls Controls
	if v := opts.Get("controls"); v.Truthy() {
		controls = jsControls{v}
	}

	w := &widget{
		cfg:    cfg,
		logger: logger,
	}
	w.ctrl = newController(cfg, camera, controls, w.hostEvents(opts),
		newLocalPositionStore(cfg.StorageKey, logger))

	doc := js.Global().Get("document")
	container := opts.Get("container")
	if !container.Truthy() {
		container = doc.Get("body")
	}

	size := int(cfg.WidgetSize)
	w.root = doc.Call("createElement", "div")
	style := w.root.Get("style")
	style.Set("position", "absolute")
	style.Set("width", strconv.Itoa(size)+"px")
	style.Set("height", strconv.Itoa(size)+"px")
	style.Set("touchAction", "none")
	style.Set("userSelect", "none")
	style.Set("zIndex", "10")

	w.canvas = doc.Call("createElement", "canvas")
	cs := w.canvas.Get("style")
	cs.Set("width", "100%")
	cs.Set("height", "100%")
	w.root.Call("appendChild", w.canvas)
	setCursor(w.canvas, cursorGrab)

	handle := doc.Call("createElement", "div")
	hs := handle.Get("style")
	hs.Set("position", "absolute")
	hs.Set("top", "0")
	hs.Set("left", "0")
	hs.Set("right", "0")
	hs.Set("height", "10px")
	w.root.Call("appendChild", handle)
	setCursor(handle, cursorMove)

	btnIn := w.zoomButton(doc, "+", 1)
	btnOut := w.zoomButton(doc, "−", -1)
	w.root.Call("appendChild", btnIn)
	w.root.Call("appendChild", btnOut)

	container.Call("appendChild", w.root)
	w.applyPosition()
	w.ctrl.onDispose(func() {
		w.releaseDocListeners()
		if parent := w.root.Get("parentNode"); parent.Truthy() {
			parent.Call("removeChild", w.root)
		}
		for _, fn := range w.jsFuncs {
			fn.Release()
		}
		w.jsFuncs = nil
	})

	w.touch = newTouchGesture(
		func(e dom.PointerEvent) { w.gestureDown(e.OffsetX, e.OffsetY) },
		func(e dom.PointerEvent) { w.gestureMove(e.OffsetX, e.OffsetY) },
		func(e dom.PointerEvent) { w.gestureUp() },
		func(e dom.WheelEvent) { w.ctrl.Wheel(e.DeltaY) },
	)

	hDown := dom.Listen(w.canvas, "pointerdown", w.pointerDown)
	hWheel := dom.ListenWheel(w.canvas, func(e dom.WheelEvent) {
		w.ctrl.Wheel(e.DeltaY)
	})
	hHandle := dom.Listen(handle, "pointerdown", w.handleDown)
	w.ctrl.onDispose(func() {
		hDown.Release()
		hWheel.Release()
		hHandle.Release()
	})

	renderer, err := newGizmoRenderer(w.canvas, size, w.orientation, logger)
	if err != nil {
		// The gestures keep working on a blank canvas.
		logger.Warn("gizmo renderer unavailable", "err", err)
	} else {
		w.renderer = renderer
		renderer.Start()
		w.ctrl.onDispose(renderer.Dispose)
	}

	return w, nil
}

// hostEvents adapts the host's JS callbacks to the controller's event
// surface. Missing callbacks stay nil and are dropped by the controller.
func (w *widget) hostEvents(opts js.Value) Events {
	var ev Events
	if cb := opts.Get("onRotate"); cb.Type() == js.TypeFunction {
		ev.CameraRotate = func(d RotateDelta) { cb.Invoke(d.DeltaX, d.DeltaY) }
	}
	if cb := opts.Get("onZoom"); cb.Type() == js.TypeFunction {
		ev.CameraZoom = func(delta int) { cb.Invoke(delta) }
	}
	if cb := opts.Get("onPan"); cb.Type() == js.TypeFunction {
		ev.CameraPan = func(d PanDelta) { cb.Invoke(d.X, d.Y) }
	}
	if cb := opts.Get("onSnap"); cb.Type() == js.TypeFunction {
		ev.SnapToView = func(f Face) { cb.Invoke(f.String()) }
	}
	if cb := opts.Get("onNudge"); cb.Type() == js.TypeFunction {
		ev.NudgeCamera = func(d NudgeDirection) { cb.Invoke(d.String()) }
	}
	if cb := opts.Get("onPositionChanged"); cb.Type() == js.TypeFunction {
		ev.PositionChanged = func(p Position) {
			cb.Invoke(map[string]interface{}{"x": p.X, "y": p.Y})
		}
	}
	return ev
}

func (w *widget) orientation() mgl32.Quat {
	if w.ctrl.camera == nil {
		return mgl32.QuatIdent()
	}
	return w.ctrl.camera.Orientation()
}

// canvasLocal converts viewport client coordinates to canvas offsets.
// Document-level listeners during a gesture only carry client positions.
func (w *widget) canvasLocal(e dom.PointerEvent) (float64, float64) {
	rect := w.canvas.Call("getBoundingClientRect")
	return e.ClientX - rect.Get("left").Float(), e.ClientY - rect.Get("top").Float()
}

// pointerDown is the single entry point for canvas gestures. Touch
// pointers go through the pinch aggregator; mouse pointers start a
// gesture directly.
func (w *widget) pointerDown(e dom.PointerEvent) {
	if e.PointerType == "touch" {
		w.touch.pointerDown(e)
		w.attachDocListeners(
			func(me dom.PointerEvent) {
				me.OffsetX, me.OffsetY = w.canvasLocal(me)
				w.touch.pointerMove(me)
			},
			func(ue dom.PointerEvent) {
				ue.OffsetX, ue.OffsetY = w.canvasLocal(ue)
				w.touch.pointerUp(ue)
				if !w.touch.active() {
					w.releaseDocListeners()
				}
			},
		)
		return
	}
	if e.Button != dom.ButtonLeft {
		return
	}
	w.gestureDown(e.OffsetX, e.OffsetY)
	w.attachDocListeners(
		func(me dom.PointerEvent) {
			x, y := w.canvasLocal(me)
			w.gestureMove(x, y)
		},
		func(dom.PointerEvent) {
			w.gestureUp()
			w.releaseDocListeners()
		},
	)
}

// gestureDown dispatches a press at canvas offset (x, y) to the ring or
// the gizmo cube.
func (w *widget) gestureDown(x, y float64) {
	half := w.cfg.WidgetSize / 2
	if w.ctrl.RingDown(x-half, y-half) {
		setCursor(w.canvas, cursorGrabbing)
		return
	}
	w.ctrl.GizmoDown(x, y)
	setCursor(w.canvas, cursorGrabbing)
}

func (w *widget) gestureMove(x, y float64) {
	half := w.cfg.WidgetSize / 2
	w.ctrl.RingMove(x-half, y-half)
	w.ctrl.GizmoMove(x, y)
}

func (w *widget) gestureUp() {
	w.ctrl.RingUp()
	w.ctrl.GizmoUp()
	setCursor(w.canvas, cursorGrab)
}

// handleDown starts a widget reposition drag from the handle strip.
func (w *widget) handleDown(e dom.PointerEvent) {
	vw := js.Global().Get("innerWidth").Float()
	vh := js.Global().Get("innerHeight").Float()
	w.ctrl.HandleDown(e.ClientX, e.ClientY, vw, vh)
	w.attachDocListeners(
		func(me dom.PointerEvent) {
			w.ctrl.HandleMove(me.ClientX, me.ClientY)
			w.applyPosition()
		},
		func(dom.PointerEvent) {
			w.ctrl.HandleUp()
			w.releaseDocListeners()
		},
	)
}

// attachDocListeners installs gesture-scoped move/up listeners on
// document so a drag keeps tracking outside the widget bounds.
func (w *widget) attachDocListeners(onMove, onUp func(dom.PointerEvent)) {
	w.releaseDocListeners()
	doc := js.Global().Get("document")
	w.docMove = dom.Listen(doc, "pointermove", onMove)
	w.docUp = dom.Listen(doc, "pointerup", onUp)
}

func (w *widget) releaseDocListeners() {
	w.docMove.Release()
	w.docUp.Release()
	w.docMove, w.docUp = nil, nil
}

func (w *widget) applyPosition() {
	pos := w.ctrl.Position()
	style := w.root.Get("style")
	style.Set("right", fmt.Sprintf("%.0fpx", pos.X))
	style.Set("top", fmt.Sprintf("%.0fpx", pos.Y))
}

// zoomButton builds a hold-to-repeat zoom button.
func (w *widget) zoomButton(doc js.Value, label string, dir int) js.Value {
	btn := doc.Call("createElement", "div")
	btn.Set("textContent", label)
	style := btn.Get("style")
	style.Set("position", "absolute")
	style.Set("bottom", "0")
	if dir > 0 {
		style.Set("right", "0")
	} else {
		style.Set("left", "0")
	}
	style.Set("width", "16px")
	style.Set("height", "16px")
	style.Set("lineHeight", "16px")
	style.Set("textAlign", "center")
	setCursor(btn, cursorPointer)

	hDown := dom.Listen(btn, "pointerdown", func(dom.PointerEvent) {
		// ZoomHoldStart applies the first step itself.
		w.ctrl.ZoomHoldStart(dir)
	})
	hUp := dom.Listen(btn, "pointerup", func(dom.PointerEvent) {
		w.ctrl.ZoomHoldStop()
	})
	hLeave := dom.Listen(btn, "pointerleave", func(dom.PointerEvent) {
		w.ctrl.ZoomHoldStop()
	})
	w.ctrl.onDispose(func() {
		hDown.Release()
		hUp.Release()
		hLeave.Release()
	})
	return btn
}

// jsHandle builds the object handed back to the host.
func (w *widget) jsHandle() js.Value {
	obj := js.Global().Get("Object").New()
	set := func(name string, fn func(args []js.Value) interface{}) {
		f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			return fn(args)
		})
		w.jsFuncs = append(w.jsFuncs, f)
		obj.Set(name, f)
	}

	set("dispose", func([]js.Value) interface{} {
		w.ctrl.Dispose()
		return nil
	})
	set("setPanMode", func(args []js.Value) interface{} {
		if len(args) > 0 {
			w.ctrl.SetMode(args[0].Truthy())
		}
		return nil
	})
	set("panMode", func([]js.Value) interface{} {
		return w.ctrl.PanMode()
	})
	set("snapTo", func(args []js.Value) interface{} {
		if len(args) == 0 {
			return errorToJS(errors.New("snapTo: face name required"))
		}
		face, ok := parseFace(args[0].String())
		if !ok {
			return errorToJS(fmt.Errorf("snapTo: unknown face %q", args[0].String()))
		}
		w.ctrl.SnapTo(face)
		return nil
	})
	set("resetPan", func([]js.Value) interface{} {
		w.ctrl.ResetPan()
		return nil
	})
	set("zoom", func(args []js.Value) interface{} {
		if len(args) > 0 {
			w.ctrl.ZoomStep(args[0].Int())
		}
		return nil
	})
	set("nudge", func(args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		if dir, ok := parseNudge(args[0].String()); ok {
			w.ctrl.Nudge(dir)
		}
		return nil
	})
	set("nudgeHoldStart", func(args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		if dir, ok := parseNudge(args[0].String()); ok {
			w.ctrl.NudgeHoldStart(dir)
		}
		return nil
	})
	set("nudgeHoldStop", func([]js.Value) interface{} {
		w.ctrl.NudgeHoldStop()
		return nil
	})
	set("position", func([]js.Value) interface{} {
		pos := w.ctrl.Position()
		return map[string]interface{}{"x": pos.X, "y": pos.Y}
	})
	obj.Set("element", w.root)
	return obj
}
