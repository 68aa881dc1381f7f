package main

import (
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six canonical axis-aligned viewpoints.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

var faceNames = [...]string{
	FaceFront:  "FRONT",
	FaceBack:   "BACK",
	FaceLeft:   "LEFT",
	FaceRight:  "RIGHT",
	FaceTop:    "TOP",
	FaceBottom: "BOTTOM",
}

func (f Face) String() string {
	if int(f) < 0 || int(f) >= len(faceNames) {
		return "FRONT"
	}
	return faceNames[f]
}

// parseFace resolves a face by its label, case sensitive.
func parseFace(name string) (Face, bool) {
	for f, n := range faceNames {
		if n == name {
			return Face(f), true
		}
	}
	return FaceFront, false
}

// Direction is the unit vector from the orbit target toward the camera
// position of the canonical view.
func (f Face) Direction() mgl32.Vec3 {
	switch f {
	case FaceBack:
		return mgl32.Vec3{0, 0, -1}
	case FaceLeft:
		return mgl32.Vec3{-1, 0, 0}
	case FaceRight:
		return mgl32.Vec3{1, 0, 0}
	case FaceTop:
		return mgl32.Vec3{0, 1, 0}
	case FaceBottom:
		return mgl32.Vec3{0, -1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

const (
	snapRateHz        = 60
	snapSpringFreq    = 6.0
	snapSpringDamping = 1.0
	snapDoneEps       = 1e-3
)

// snapper animates the camera position from its current offset direction
// to a face's canonical direction at constant orbit distance. Progress is
// driven by a critically damped spring, so the motion eases out without
// overshoot.
type snapper struct {
	mu       sync.Mutex
	camera   Camera
	controls Controls
	logger   *slog.Logger

	active bool
	done   chan struct{}
	ticker *time.Ticker
}

func newSnapper(camera Camera, controls Controls, logger *slog.Logger) *snapper {
	return &snapper{camera: camera, controls: controls, logger: logger}
}

// Start begins the transition to face. A running transition is canceled
// first. Without a camera/controls pair this is a no-op; the snap event
// has already been emitted by the controller.
func (s *snapper) Start(face Face) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	if s.camera == nil || s.controls == nil {
		s.logger.Warn("camera or controls not available; snap transition skipped")
		return
	}

	target := s.controls.Target()
	offset := s.camera.Position().Sub(target)
	distance := offset.Len()
	if distance == 0 {
		distance = 1
	}

	from := offset.Mul(1 / distance)
	to := face.Direction()

	rot := mgl32.QuatBetweenVectors(from, to)
	if from.Dot(to) < -0.9999 {
		// Antiparallel directions have no unique rotation arc; pivot
		// around the camera up axis instead.
		rot = mgl32.QuatRotate(mgl32.DegToRad(180), s.camera.Up().Normalize())
	}

	spring := harmonica.NewSpring(harmonica.FPS(snapRateHz), snapSpringFreq, snapSpringDamping)
	var pos, vel float64

	s.active = true
	done := make(chan struct{})
	ticker := time.NewTicker(time.Second / snapRateHz)
	s.done = done
	s.ticker = ticker

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				if !s.active {
					s.mu.Unlock()
					return
				}
				pos, vel = spring.Update(pos, vel, 1)
				t := float32(pos)
				finished := pos > 1-snapDoneEps
				if finished || t > 1 {
					t = 1
				}
				q := mgl32.QuatSlerp(mgl32.QuatIdent(), rot, t)
				dir := q.Rotate(from)
				tgt := s.controls.Target()
				s.camera.SetPosition(tgt.Add(dir.Mul(distance)))
				s.controls.Update()
				if finished {
					s.stopLocked()
					s.mu.Unlock()
					return
				}
				s.mu.Unlock()
			}
		}
	}()
}

// Stop cancels a running transition, leaving the camera wherever the
// animation last put it.
func (s *snapper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *snapper) stopLocked() {
	if !s.active {
		return
	}
	s.active = false
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

func (s *snapper) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
