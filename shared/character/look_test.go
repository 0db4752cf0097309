package character

import (
	"testing"
)

func TestLook_YawAppliedToBody(t *testing.T) {
	look := NewLook(DefaultConfig().Look)
	body := newFakeBody()
	cam := &fakeCamera{}

	yaw, _ := look.Update(body, cam, 2, 0, 0.01)

	approxEqual(t, yaw, 2*600*0.01, 1e-12, "yawDelta")
	approxEqual(t, body.yaw, 12, 1e-12, "body yaw")
	approxEqual(t, cam.pitch, 0, 1e-12, "camera pitch")
}

func TestLook_PitchFollowsNegativeY(t *testing.T) {
	look := NewLook(DefaultConfig().Look)
	cam := &fakeCamera{}

	_, pitch := look.Update(nil, cam, 0, 1, 0.01)

	approxEqual(t, pitch, -6, 1e-12, "pitch")
	approxEqual(t, cam.pitch, -6, 1e-12, "camera pitch")
}

func TestLook_PitchAlwaysClamped(t *testing.T) {
	cfg := DefaultConfig().Look
	tests := []struct {
		name string
		dy   float64
	}{
		{"huge up", 1e6},
		{"huge down", -1e6},
		{"small up", 0.3},
		{"small down", -0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			look := NewLook(cfg)
			for i := 0; i < 200; i++ {
				_, pitch := look.Update(nil, nil, 0, tt.dy, 1.0/60)
				if pitch < cfg.MinPitch || pitch > cfg.MaxPitch {
					t.Fatalf("frame %d: pitch %.3f outside [%.1f, %.1f]", i, pitch, cfg.MinPitch, cfg.MaxPitch)
				}
			}
		})
	}
}

func TestLook_ClampHitsExactBounds(t *testing.T) {
	cfg := DefaultConfig().Look
	look := NewLook(cfg)

	_, pitch := look.Update(nil, nil, 0, 1000, 1)
	approxEqual(t, pitch, cfg.MinPitch, 0, "pitch after looking up")

	_, pitch = look.Update(nil, nil, 0, -1000, 1)
	approxEqual(t, pitch, cfg.MaxPitch, 0, "pitch after looking down")
}

func TestLook_NoCameraStillTracksPitch(t *testing.T) {
	look := NewLook(DefaultConfig().Look)
	look.Update(nil, nil, 0, -1, 0.05)
	approxEqual(t, look.Pitch(), 30, 1e-12, "pitch")
}

func TestLook_SetSensitivity(t *testing.T) {
	look := NewLook(DefaultConfig().Look)
	look.SetSensitivity(300)

	yaw, _ := look.Update(nil, nil, 1, 0, 0.1)

	approxEqual(t, look.Sensitivity(), 300, 0, "sensitivity")
	approxEqual(t, yaw, 30, 1e-12, "yawDelta")
}
