package character

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRig_CapturesRestFromCamera(t *testing.T) {
	cam := &fakeCamera{local: mgl64.Vec3{0, 0.7, 0}}
	rig := NewRig(DefaultConfig(), newFakeBody(), always(true), cam)

	if rig.HeadBob.Rest() != cam.local {
		t.Fatalf("rest = %v, want %v", rig.HeadBob.Rest(), cam.local)
	}
}

func TestRig_TickRunsAllControllers(t *testing.T) {
	cam := &fakeCamera{local: mgl64.Vec3{0, 0.7, 0}}
	body := newFakeBody()
	rig := NewRig(DefaultConfig(), body, always(true), cam)
	dt := 1.0 / 60

	// Forward with no turning: the heading stays put so the velocity can
	// settle on moveSpeed.
	var out Output
	for i := 1; i <= 60; i++ {
		out = rig.Tick(Frame{Delta: dt, Elapsed: float64(i) * dt}, Input{
			Vertical:  1,
			PointerDY: 0.1,
		})
	}

	approxEqual(t, body.yaw, 0, 0, "body yaw")
	approxEqual(t, out.Pitch, -60*0.1*600*dt, 1e-9, "pitch")
	approxEqual(t, cam.pitch, out.Pitch, 0, "camera pitch")
	if !out.Grounded {
		t.Fatalf("grounded = false, want true")
	}
	approxEqual(t, out.HorizontalVelocity.Len(), 7.5, 1e-9, "speed")
	if cam.sets != 60 {
		t.Fatalf("camera position set %d times, want 60", cam.sets)
	}
	if cam.local != out.CameraOffset {
		t.Fatalf("camera local = %v, want %v", cam.local, out.CameraOffset)
	}
}

func TestRig_TurningWhileWalking(t *testing.T) {
	body := newFakeBody()
	rig := NewRig(DefaultConfig(), body, always(true), &fakeCamera{})
	dt := 1.0 / 60

	var out Output
	for i := 1; i <= 60; i++ {
		out = rig.Tick(Frame{Delta: dt, Elapsed: float64(i) * dt}, Input{
			Vertical:  1,
			PointerDX: 0.5,
		})
		approxEqual(t, out.YawDelta, 0.5*600*dt, 1e-9, "yaw delta")
	}
	approxEqual(t, body.yaw, 60*0.5*600*dt, 1e-9, "body yaw")

	// A heading that turns 5 degrees a frame keeps the desired velocity moving
	// faster than accel can follow, so the body never reaches full speed.
	if speed := out.HorizontalVelocity.Len(); speed <= 0 || speed >= 7.5 {
		t.Fatalf("speed = %.3f, want between 0 and moveSpeed", speed)
	}
}

func TestRig_JumpAndLand(t *testing.T) {
	floor := 0.0
	body := newFakeBody()
	body.floor = &floor
	ground := &landingGround{body: body}
	rig := NewRig(DefaultConfig(), body, ground, nil)
	dt := 1.0 / 60

	rig.Tick(Frame{Delta: dt, Elapsed: dt}, Input{})
	out := rig.Tick(Frame{Delta: dt, Elapsed: 2 * dt}, Input{Jump: true})
	if !out.Jumped {
		t.Fatalf("jumped = false, want true")
	}

	apex := body.pos.Y()
	landed := false
	for i := 3; i < 200; i++ {
		out = rig.Tick(Frame{Delta: dt, Elapsed: float64(i) * dt}, Input{})
		if body.pos.Y() > apex {
			apex = body.pos.Y()
		}
		if out.Grounded && out.VerticalVelocity == StickToGroundVelocity {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("body never landed")
	}
	// Explicit Euler loses a little height against the closed form.
	if apex-1 < 1.4 || apex-1 > 1.7 {
		t.Fatalf("jump apex = %.3f above start, want about 1.6", apex-1)
	}
}

func TestRig_NilCollaborators(t *testing.T) {
	rig := NewRig(DefaultConfig(), nil, nil, nil)
	out := rig.Tick(Frame{Delta: 0.016, Elapsed: 0.016}, Input{Vertical: 1, PointerDY: 1, Jump: true})
	if out.Jumped {
		t.Fatalf("jumped without a body")
	}
	center, radius := rig.GroundCheckSphere()
	if center != (mgl64.Vec3{}) || radius != 0 {
		t.Fatalf("ground check = %v/%v, want zero without a body", center, radius)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"equal pitch bounds", func(c *Config) { c.Look.MinPitch, c.Look.MaxPitch = 10, 10 }, nil},
		{"inverted pitch", func(c *Config) { c.Look.MinPitch, c.Look.MaxPitch = 20, -20 }, ErrPitchRange},
		{"negative grace", func(c *Config) { c.Grounding.GroundedRememberTime = -0.1 }, ErrNegativeGrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayerMask(t *testing.T) {
	m := LayerMask(1<<0 | 1<<3)
	if !m.Has(0) || !m.Has(3) || m.Has(1) || m.Has(40) || m.Has(-1) {
		t.Fatalf("LayerMask.Has gave wrong answers for %b", m)
	}
	if !AllLayers.Has(31) {
		t.Fatalf("AllLayers missing layer 31")
	}
}

// landingGround reports grounded when the fake body's feet are on its floor.
type landingGround struct {
	body *fakeBody
}

func (g *landingGround) OverlapSphere(center mgl64.Vec3, radius float64, _ LayerMask, _ TriggerInteraction) bool {
	return center.Y()-radius <= *g.body.floor
}
