//go:build js

package main

import (
	"syscall/js"

	"github.com/go-gl/mathgl/mgl32"
)

// jsCamera adapts a host camera object with three.js-style fields
// (position, quaternion, up, fov) to the Camera interface. Values are
// read live on every call; the host owns the object.
type jsCamera struct {
	v js.Value
}

func (c jsCamera) Position() mgl32.Vec3 {
	return vec3FromJS(c.v.Get("position"))
}

func (c jsCamera) SetPosition(p mgl32.Vec3) {
	pos := c.v.Get("position")
	pos.Set("x", p.X())
	pos.Set("y", p.Y())
	pos.Set("z", p.Z())
}

func (c jsCamera) Up() mgl32.Vec3 {
	return vec3FromJS(c.v.Get("up"))
}

func (c jsCamera) Orientation() mgl32.Quat {
	q := c.v.Get("quaternion")
	return mgl32.Quat{
		W: float32(q.Get("w").Float()),
		V: mgl32.Vec3{
			float32(q.Get("x").Float()),
			float32(q.Get("y").Float()),
			float32(q.Get("z").Float()),
		},
	}
}

func (c jsCamera) ViewDir() mgl32.Vec3 {
	// Host cameras look down their local -Z axis.
	return c.Orientation().Rotate(mgl32.Vec3{0, 0, -1})
}

func (c jsCamera) FOV() float32 {
	fov := c.v.Get("fov")
	if fov.IsUndefined() {
		return 60
	}
	return float32(fov.Float())
}

// jsControls adapts a host orbit-controls object with a target field
// and an update() method.
type jsControls struct {
	v js.Value
}

func (c jsControls) Target() mgl32.Vec3 {
	return vec3FromJS(c.v.Get("target"))
}

func (c jsControls) SetTarget(t mgl32.Vec3) {
	target := c.v.Get("target")
	target.Set("x", t.X())
	target.Set("y", t.Y())
	target.Set("z", t.Z())
}

func (c jsControls) Update() {
	if update := c.v.Get("update"); !update.IsUndefined() {
		c.v.Call("update")
	}
}

func vec3FromJS(v js.Value) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(v.Get("x").Float()),
		float32(v.Get("y").Float()),
		float32(v.Get("z").Float()),
	}
}
