package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name     string
		current  mgl64.Vec2
		target   mgl64.Vec2
		maxDelta float64
		want     mgl64.Vec2
	}{
		{"partial step", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, 2, mgl64.Vec2{2, 0}},
		{"reaches target", mgl64.Vec2{9, 0}, mgl64.Vec2{10, 0}, 2, mgl64.Vec2{10, 0}},
		{"already there", mgl64.Vec2{3, 4}, mgl64.Vec2{3, 4}, 1, mgl64.Vec2{3, 4}},
		{"diagonal", mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}, 1, mgl64.Vec2{0.6, 0.8}},
		{"toward zero", mgl64.Vec2{0, 5}, mgl64.Vec2{0, 0}, 0.5, mgl64.Vec2{0, 4.5}},
		{"zero delta", mgl64.Vec2{1, 1}, mgl64.Vec2{5, 5}, 0, mgl64.Vec2{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveTowards(tt.current, tt.target, tt.maxDelta)
			approxVec2(t, got, tt.want, 1e-9, "MoveTowards")
		})
	}
}

func TestMoveTowardsNeverOvershoots(t *testing.T) {
	current := mgl64.Vec2{0, 0}
	target := mgl64.Vec2{-1.3, 2.2}
	for i := 0; i < 100; i++ {
		prev := target.Sub(current).Len()
		current = MoveTowards(current, target, 0.07)
		next := target.Sub(current).Len()
		if next > prev {
			t.Fatalf("step %d moved away from target: %.6f -> %.6f", i, prev, next)
		}
	}
	if current != target {
		t.Fatalf("current = %v, want exactly %v", current, target)
	}
}

func TestLerpClampsT(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{2, 4, 6}

	approxVec3(t, Lerp(a, b, 0.5), mgl64.Vec3{1, 2, 3}, 1e-12, "Lerp(0.5)")
	if got := Lerp(a, b, 3); got != b {
		t.Fatalf("Lerp(3) = %v, want %v", got, b)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Fatalf("Lerp(-1) = %v, want %v", got, a)
	}
}

func TestJumpLaunchSpeed(t *testing.T) {
	got := JumpLaunchSpeed(1.6, -13)
	want := math.Sqrt(1.6 * 26)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("JumpLaunchSpeed = %.6f, want %.6f", got, want)
	}
	if math.Abs(got-6.45) > 0.01 {
		t.Fatalf("JumpLaunchSpeed = %.4f, want about 6.45", got)
	}
	if JumpLaunchSpeed(1.6, 13) != got {
		t.Fatalf("gravity sign should not matter")
	}
}

func TestApproachSpeed(t *testing.T) {
	if got := ApproachSpeed(0, 1, 0.25); got != 0.25 {
		t.Fatalf("ApproachSpeed up = %v", got)
	}
	if got := ApproachSpeed(0.9, 1, 0.25); got != 1 {
		t.Fatalf("ApproachSpeed clamp = %v", got)
	}
	if got := ApproachSpeed(0.1, 0, 0.25); got != 0 {
		t.Fatalf("ApproachSpeed down = %v", got)
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(mgl64.Vec2{}); got != (mgl64.Vec2{}) {
		t.Fatalf("NormalizeOrZero(0) = %v", got)
	}
	approxVec2(t, NormalizeOrZero(mgl64.Vec2{0, 5}), mgl64.Vec2{0, 1}, 1e-12, "NormalizeOrZero")
}

func TestFlattenLift(t *testing.T) {
	v := mgl64.Vec3{1, 2, 3}
	flat := Flatten(v)
	if flat != (mgl64.Vec2{1, 3}) {
		t.Fatalf("Flatten = %v", flat)
	}
	if got := Lift(flat, 7); got != (mgl64.Vec3{1, 7, 3}) {
		t.Fatalf("Lift = %v", got)
	}
}

func approxVec2(t *testing.T, got, want mgl64.Vec2, tol float64, field string) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s = %v, want %v (tol=%g)", field, got, want, tol)
		}
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
