package character

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// fakeBody is a free-flying body: every move is applied in full unless a
// floor height is set, in which case downward moves stop on it.
type fakeBody struct {
	pos    mgl64.Vec3
	yaw    float64
	height float64
	skin   float64
	floor  *float64
	moves  []mgl64.Vec3
}

func newFakeBody() *fakeBody {
	return &fakeBody{height: 2, skin: 0.08, pos: mgl64.Vec3{0, 1, 0}}
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }

func (b *fakeBody) Forward() mgl64.Vec3 {
	r := mgl64.DegToRad(b.yaw)
	return mgl64.Vec3{math.Sin(r), 0, -math.Cos(r)}
}

func (b *fakeBody) Right() mgl64.Vec3 {
	r := mgl64.DegToRad(b.yaw)
	return mgl64.Vec3{math.Cos(r), 0, math.Sin(r)}
}

func (b *fakeBody) Rotate(yaw float64) { b.yaw += yaw }
func (b *fakeBody) Height() float64    { return b.height }
func (b *fakeBody) SkinWidth() float64 { return b.skin }

func (b *fakeBody) Move(d mgl64.Vec3) mgl64.Vec3 {
	b.moves = append(b.moves, d)
	if b.floor != nil {
		feet := b.pos.Y() - b.height/2
		if feet+d.Y() < *b.floor {
			d[1] = *b.floor - feet
		}
	}
	b.pos = b.pos.Add(d)
	return d
}

// fakeGround answers from a script; past the end it repeats the last value.
type fakeGround struct {
	answers []bool
	calls   int
	last    struct {
		center mgl64.Vec3
		radius float64
		mask   LayerMask
		trig   TriggerInteraction
	}
}

func (g *fakeGround) OverlapSphere(center mgl64.Vec3, radius float64, mask LayerMask, trig TriggerInteraction) bool {
	g.last.center, g.last.radius, g.last.mask, g.last.trig = center, radius, mask, trig
	i := g.calls
	g.calls++
	if len(g.answers) == 0 {
		return false
	}
	if i >= len(g.answers) {
		i = len(g.answers) - 1
	}
	return g.answers[i]
}

func always(v bool) *fakeGround { return &fakeGround{answers: []bool{v}} }

type fakeCamera struct {
	local mgl64.Vec3
	pitch float64
	sets  int
}

func (c *fakeCamera) LocalPosition() mgl64.Vec3     { return c.local }
func (c *fakeCamera) SetLocalPosition(p mgl64.Vec3) { c.local = p; c.sets++ }
func (c *fakeCamera) SetLocalPitch(deg float64)     { c.pitch = deg }

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// approxVec3 compares each component against an absolute tolerance.
func approxVec3(t *testing.T, got, want mgl64.Vec3, tol float64, field string) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s = %v, want %v (tol=%g)", field, got, want, tol)
		}
	}
}
