package main

// Position is the widget's on-screen offset: X from the right edge of
// the viewport, Y from the top.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var defaultPosition = Position{X: 16, Y: 16}

// positionStore persists the widget position. Load reports ok == false
// when nothing valid is stored; Save is fire-and-forget and must swallow
// write failures.
type positionStore interface {
	Load() (Position, bool)
	Save(pos Position)
}

// memoryPositionStore keeps the position in process memory. It is the
// fallback when persistent storage is unavailable, and the store used by
// native tests.
type memoryPositionStore struct {
	pos   Position
	valid bool
}

func (s *memoryPositionStore) Load() (Position, bool) {
	return s.pos, s.valid
}

func (s *memoryPositionStore) Save(pos Position) {
	s.pos = pos
	s.valid = true
}

// clampPosition keeps the widget fully inside the viewport.
func clampPosition(pos Position, viewportW, viewportH, widgetSize float64) Position {
	maxX := viewportW - widgetSize
	maxY := viewportH - widgetSize
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if pos.X < 0 {
		pos.X = 0
	} else if pos.X > maxX {
		pos.X = maxX
	}
	if pos.Y < 0 {
		pos.Y = 0
	} else if pos.Y > maxY {
		pos.Y = maxY
	}
	return pos
}
