// Package view is the first-person camera: a head mounted on a body that
// pitches independently, plus the projection used to draw the arena.
package view

import (
	"github.com/automoto/kidclunk/shared/character"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is mounted on a body at a local offset. It implements
// character.Camera.
type Camera struct {
	local mgl64.Vec3
	pitch float64

	FOV  float64 // vertical, degrees
	Near float64
	Far  float64
}

var _ character.Camera = (*Camera)(nil)

func NewCamera(local mgl64.Vec3, fov, near, far float64) *Camera {
	return &Camera{local: local, FOV: fov, Near: near, Far: far}
}

func (c *Camera) LocalPosition() mgl64.Vec3     { return c.local }
func (c *Camera) SetLocalPosition(p mgl64.Vec3) { c.local = p }
func (c *Camera) SetLocalPitch(degrees float64) { c.pitch = degrees }
func (c *Camera) Pitch() float64                { return c.pitch }

// Orientation combines the body heading with the camera pitch. Positive
// pitch tilts the view down.
func (c *Camera) Orientation(body mgl64.Quat) mgl64.Quat {
	tilt := mgl64.QuatRotate(-mgl64.DegToRad(c.pitch), mgl64.Vec3{1, 0, 0})
	return body.Mul(tilt)
}

// Eye is the world position of the camera for a body at position with
// rotation body.
func (c *Camera) Eye(position mgl64.Vec3, body mgl64.Quat) mgl64.Vec3 {
	return position.Add(body.Rotate(c.local))
}

// View is the world to camera transform.
func (c *Camera) View(position mgl64.Vec3, body mgl64.Quat) mgl64.Mat4 {
	eye := c.Eye(position, body)
	o := c.Orientation(body)
	forward := o.Rotate(mgl64.Vec3{0, 0, -1})
	up := o.Rotate(mgl64.Vec3{0, 1, 0})
	return mgl64.LookAtV(eye, eye.Add(forward), up)
}

func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
