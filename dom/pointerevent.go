// Package dom wraps the browser event plumbing used by the widget:
// parsed pointer/wheel events and listener registration with explicit
// release handles. Only the *_js.go files touch syscall/js; the event
// types themselves are plain structs.
package dom

// MouseButton follows the DOM button numbering; ButtonNull marks events
// without button information.
type MouseButton int

const (
	ButtonNull   MouseButton = -1
	ButtonLeft   MouseButton = 0
	ButtonMiddle MouseButton = 1
	ButtonRight  MouseButton = 2
)

// PointerEvent is a parsed DOM pointer event. Offsets are relative to
// the event target, client coordinates to the viewport.
type PointerEvent struct {
	OffsetX, OffsetY float64
	ClientX, ClientY float64
	Button           MouseButton
	PointerID        int
	PointerType      string
	IsPrimary        bool

	AltKey, CtrlKey, ShiftKey bool
}

// WheelEvent is a parsed DOM wheel event.
type WheelEvent struct {
	DeltaX, DeltaY, DeltaZ float64
	DeltaMode              int

	AltKey, CtrlKey, ShiftKey bool
}
