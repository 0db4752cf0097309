package view

import "github.com/go-gl/mathgl/mgl64"

// Segment is a line on screen, in pixels.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Projector maps world space onto a screen of a given size.
type Projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	near   float64
	width  float64
	height float64
}

func NewProjector(cam *Camera, position mgl64.Vec3, body mgl64.Quat, width, height float64) Projector {
	return Projector{
		view:   cam.View(position, body),
		proj:   cam.Projection(width / height),
		near:   cam.Near,
		width:  width,
		height: height,
	}
}

// Point projects p to pixels. ok is false when p is behind the near plane.
func (p Projector) Point(world mgl64.Vec3) (x, y float64, ok bool) {
	v := p.view.Mul4x1(world.Vec4(1)).Vec3()
	if v.Z() > -p.near {
		return 0, 0, false
	}
	x, y = p.toScreen(v)
	return x, y, true
}

// Segment projects the world line a-b, clipping it at the near plane. ok is
// false when the whole line is behind the camera.
func (p Projector) Segment(a, b mgl64.Vec3) (Segment, bool) {
	va := p.view.Mul4x1(a.Vec4(1)).Vec3()
	vb := p.view.Mul4x1(b.Vec4(1)).Vec3()

	limit := -p.near
	switch {
	case va.Z() > limit && vb.Z() > limit:
		return Segment{}, false
	case va.Z() > limit:
		va = clipZ(va, vb, limit)
	case vb.Z() > limit:
		vb = clipZ(vb, va, limit)
	}

	x0, y0 := p.toScreen(va)
	x1, y1 := p.toScreen(vb)
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}, true
}

func (p Projector) toScreen(v mgl64.Vec3) (x, y float64) {
	clip := p.proj.Mul4x1(v.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) / 2 * p.width, (1 - ndc.Y()) / 2 * p.height
}

// clipZ moves out along the line towards in until it reaches depth z.
func clipZ(out, in mgl64.Vec3, z float64) mgl64.Vec3 {
	t := (z - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

// BoxEdges returns the twelve edges of the box spanning lo to hi.
func BoxEdges(lo, hi mgl64.Vec3) [12][2]mgl64.Vec3 {
	c := [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
	}
	return [12][2]mgl64.Vec3{
		{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
		{c[4], c[5]}, {c[5], c[6]}, {c[6], c[7]}, {c[7], c[4]},
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}
