//go:build js

package dom

import (
	"syscall/js"
)

// Handle is the release token of a registered listener. Release removes
// the listener and frees the callback; it is idempotent.
type Handle struct {
	target js.Value
	event  string
	fn     js.Func
	closed bool
}

// Release detaches the listener. Safe to call more than once.
func (h *Handle) Release() {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	h.target.Call("removeEventListener", h.event, h.fn)
	h.fn.Release()
}

// Listen registers cb for the named pointer/mouse event on target and
// returns the release handle. The default action and propagation of
// every delivered event are suppressed before cb runs.
//
// Attaching move/up listeners to document during an active gesture (and
// releasing them on gesture end) gives drag-outside-bounds tracking
// without leaving permanent global listeners behind.
func Listen(target js.Value, event string, cb func(PointerEvent)) *Handle {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		e := args[0]
		e.Call("preventDefault")
		e.Call("stopPropagation")
		cb(parsePointerEvent(e))
		return nil
	})
	target.Call("addEventListener", event, fn)
	return &Handle{target: target, event: event, fn: fn}
}

// ListenWheel registers cb for wheel events on target.
func ListenWheel(target js.Value, cb func(WheelEvent)) *Handle {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		e := args[0]
		e.Call("preventDefault")
		e.Call("stopPropagation")
		cb(WheelEvent{
			DeltaX:    e.Get("deltaX").Float(),
			DeltaY:    e.Get("deltaY").Float(),
			DeltaZ:    e.Get("deltaZ").Float(),
			DeltaMode: e.Get("deltaMode").Int(),
			AltKey:    e.Get("altKey").Bool(),
			CtrlKey:   e.Get("ctrlKey").Bool(),
			ShiftKey:  e.Get("shiftKey").Bool(),
		})
		return nil
	})
	target.Call("addEventListener", "wheel", fn)
	return &Handle{target: target, event: "wheel", fn: fn}
}

func parsePointerEvent(e js.Value) PointerEvent {
	b := ButtonNull
	if button := e.Get("button"); !button.IsNull() && !button.IsUndefined() {
		b = MouseButton(button.Int())
	}
	ev := PointerEvent{
		OffsetX:  e.Get("offsetX").Float(),
		OffsetY:  e.Get("offsetY").Float(),
		ClientX:  e.Get("clientX").Float(),
		ClientY:  e.Get("clientY").Float(),
		Button:   b,
		AltKey:   e.Get("altKey").Bool(),
		CtrlKey:  e.Get("ctrlKey").Bool(),
		ShiftKey: e.Get("shiftKey").Bool(),
	}
	if id := e.Get("pointerId"); !id.IsUndefined() {
		ev.PointerID = id.Int()
	}
	if t := e.Get("pointerType"); !t.IsUndefined() {
		ev.PointerType = t.String()
	}
	if p := e.Get("isPrimary"); !p.IsUndefined() {
		ev.IsPrimary = p.Bool()
	}
	return ev
}
