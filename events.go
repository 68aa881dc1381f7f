package main

// RotateDelta is a camera rotation command in the controller's abstract
// units. The host owns the actual rotation math; the controller only
// guarantees the sign convention (dragging toward lower-right gives
// positive deltas on both axes).
type RotateDelta struct {
	DeltaX, DeltaY float64
}

// PanDelta is a pan command, used only when panning is delegated to the
// host instead of applied to the camera/controls pair directly.
type PanDelta struct {
	X, Y float64
}

// NudgeDirection is one of the 8 compass directions for discrete
// keyboard-style camera nudges.
type NudgeDirection int

const (
	NudgeNorth NudgeDirection = iota
	NudgeNorthEast
	NudgeEast
	NudgeSouthEast
	NudgeSouth
	NudgeSouthWest
	NudgeWest
	NudgeNorthWest
)

var nudgeNames = map[NudgeDirection]string{
	NudgeNorth:     "N",
	NudgeNorthEast: "NE",
	NudgeEast:      "E",
	NudgeSouthEast: "SE",
	NudgeSouth:     "S",
	NudgeSouthWest: "SW",
	NudgeWest:      "W",
	NudgeNorthWest: "NW",
}

func (d NudgeDirection) String() string {
	if s, ok := nudgeNames[d]; ok {
		return s
	}
	return "N"
}

// parseNudge resolves a compass label to its direction.
func parseNudge(name string) (NudgeDirection, bool) {
	for d, n := range nudgeNames {
		if n == name {
			return d, true
		}
	}
	return NudgeNorth, false
}

// Events holds the one-way notification callbacks to the host.
// Nil callbacks are allowed; the corresponding notifications are dropped.
type Events struct {
	CameraRotate    func(RotateDelta)
	CameraZoom      func(delta int)
	CameraPan       func(PanDelta)
	SnapToView      func(view Face)
	NudgeCamera     func(dir NudgeDirection)
	PositionChanged func(pos Position)
}
