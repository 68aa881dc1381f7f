package main

import (
	"math"

	"github.com/seqsense/viewcube/dom"
)

type touchMode int

const (
	touchNone touchMode = iota
	touchDrag
	touchPinch
)

// touchGesture folds multi-pointer touch input into the single-pointer
// and wheel callbacks of the controller. One finger behaves like the
// primary mouse button; two fingers pinch to zoom.
type touchGesture struct {
	pointers map[int]dom.PointerEvent
	pointer0 dom.PointerEvent

	onDown  func(dom.PointerEvent)
	onMove  func(dom.PointerEvent)
	onUp    func(dom.PointerEvent)
	onWheel func(dom.WheelEvent)

	mode      touchMode
	distance0 float64
}

func newTouchGesture(onDown, onMove, onUp func(dom.PointerEvent), onWheel func(dom.WheelEvent)) *touchGesture {
	return &touchGesture{
		pointers: make(map[int]dom.PointerEvent),
		onDown:   onDown,
		onMove:   onMove,
		onUp:     onUp,
		onWheel:  onWheel,
	}
}

func (g *touchGesture) pointerDown(e dom.PointerEvent) {
	g.pointers[e.PointerID] = e

	switch len(g.pointers) {
	case 1:
		g.pointer0 = e
	case 2:
		g.distance0 = g.pinchDistance()
	}
}

func (g *touchGesture) pointerMove(e dom.PointerEvent) {
	if _, ok := g.pointers[e.PointerID]; !ok {
		return
	}
	g.pointers[e.PointerID] = e

	if g.mode == touchNone {
		switch len(g.pointers) {
		case 1:
			g.onDown(g.pointer0)
			g.mode = touchDrag
		case 2:
			g.mode = touchPinch
		}
	}
	switch g.mode {
	case touchDrag:
		if e.IsPrimary {
			g.onMove(e)
		}
	case touchPinch:
		if len(g.pointers) != 2 {
			break
		}
		d := g.pinchDistance()
		g.onWheel(dom.WheelEvent{
			DeltaY:  (g.distance0 - d) / 10,
			AltKey:  e.AltKey,
			CtrlKey: e.CtrlKey,
		})
		g.distance0 = d
	}
	if e.IsPrimary {
		g.pointer0 = e
	}
}

func (g *touchGesture) pointerUp(e dom.PointerEvent) {
	if _, ok := g.pointers[e.PointerID]; !ok {
		return
	}
	delete(g.pointers, e.PointerID)
	if len(g.pointers) != 0 {
		return
	}
	switch g.mode {
	case touchNone:
		// A tap without movement still needs the full click sequence
		// so face double-taps are detected.
		g.onDown(g.pointer0)
		g.onUp(e)
	case touchDrag:
		g.onUp(e)
	}
	g.mode = touchNone
}

func (g *touchGesture) active() bool {
	return len(g.pointers) > 0
}

func (g *touchGesture) pinchDistance() float64 {
	pp := make([]dom.PointerEvent, 0, 2)
	for id := range g.pointers {
		pp = append(pp, g.pointers[id])
	}
	return math.Hypot(pp[0].OffsetX-pp[1].OffsetX, pp[0].OffsetY-pp[1].OffsetY)
}
