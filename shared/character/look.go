package character

import "github.com/go-gl/mathgl/mgl64"

// Look turns pointer deltas into body yaw and camera pitch. Deltas are used
// raw, so there is no look inertia.
type Look struct {
	cfg   LookConfig
	pitch float64
}

// NewLook starts with the camera level.
func NewLook(cfg LookConfig) *Look {
	return &Look{cfg: cfg}
}

// Pitch returns the current camera pitch in degrees. Positive looks down.
func (l *Look) Pitch() float64 {
	return l.pitch
}

// Update applies one frame of pointer movement. A nil body or camera skips
// applying that channel; the pitch is tracked either way.
func (l *Look) Update(body Transform, cam Camera, pointerDX, pointerDY, dt float64) (yawDelta, pitch float64) {
	yawDelta = pointerDX * l.cfg.MouseSensitivity * dt
	if body != nil {
		body.Rotate(yawDelta)
	}

	l.pitch = mgl64.Clamp(l.pitch-pointerDY*l.cfg.MouseSensitivity*dt, l.cfg.MinPitch, l.cfg.MaxPitch)
	if cam != nil {
		cam.SetLocalPitch(l.pitch)
	}
	return yawDelta, l.pitch
}

// Sensitivity is the look speed in degrees/sec per axis unit.
func (l *Look) Sensitivity() float64 { return l.cfg.MouseSensitivity }

// SetSensitivity changes the look speed in degrees/sec per axis unit.
func (l *Look) SetSensitivity(degreesPerSecond float64) {
	l.cfg.MouseSensitivity = degreesPerSecond
}
