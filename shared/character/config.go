package character

import (
	"errors"
	"fmt"
)

// LayerMask selects collision layers by bit, layer n being bit 1<<n.
type LayerMask uint32

// AllLayers matches every collision layer.
const AllLayers LayerMask = ^LayerMask(0)

// Has reports whether layer is selected by the mask.
func (m LayerMask) Has(layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// StickToGroundVelocity is the downward speed kept while grounded so the
// ground check keeps touching the floor on the next frame.
const StickToGroundVelocity = -2.0

// MovementConfig contains locomotion tuning.
type MovementConfig struct {
	MoveSpeed  float64 `yaml:"moveSpeed"`  // m/s at full input
	Accel      float64 `yaml:"accel"`      // m/s² toward a non-zero target
	Decel      float64 `yaml:"decel"`      // m/s² toward rest
	JumpHeight float64 `yaml:"jumpHeight"` // apex height in meters
	Gravity    float64 `yaml:"gravity"`    // negative, m/s²
}

// LookConfig contains mouse look tuning.
type LookConfig struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // degrees/sec per axis unit
	MinPitch         float64 `yaml:"minPitch"`
	MaxPitch         float64 `yaml:"maxPitch"`
}

// GroundingConfig contains the ground check and coyote time tuning.
type GroundingConfig struct {
	GroundedRememberTime float64   `yaml:"groundedRememberTime"`
	GroundMask           LayerMask `yaml:"groundMask"`
	GroundCheckRadius    float64   `yaml:"groundCheckRadius"`
	GroundCheckOffset    float64   `yaml:"groundCheckOffset"`
}

// HeadBobConfig contains the camera bob tuning.
type HeadBobConfig struct {
	BobFrequency      float64 `yaml:"bobFrequency"`
	BobAmplitude      float64 `yaml:"bobAmplitude"`
	BobSway           float64 `yaml:"bobSway"`
	BobSpeedThreshold float64 `yaml:"bobSpeedThreshold"`
}

// Config groups every controller tunable.
type Config struct {
	Movement  MovementConfig  `yaml:"movement"`
	Look      LookConfig      `yaml:"look"`
	Grounding GroundingConfig `yaml:"grounding"`
	HeadBob   HeadBobConfig   `yaml:"headBob"`
}

// DefaultConfig returns the stock "kid clunk" tuning: slow to start, slow to
// stop, a short coyote window and a small head wobble.
func DefaultConfig() Config {
	return Config{
		Movement: MovementConfig{
			MoveSpeed:  7.5,
			Accel:      10,
			Decel:      12,
			JumpHeight: 1.6,
			Gravity:    -13,
		},
		Look: LookConfig{
			MouseSensitivity: 600,
			MinPitch:         -75,
			MaxPitch:         75,
		},
		Grounding: GroundingConfig{
			GroundedRememberTime: 0.08,
			GroundMask:           AllLayers,
			GroundCheckRadius:    0.25,
			GroundCheckOffset:    0.1,
		},
		HeadBob: HeadBobConfig{
			BobFrequency:      6.5,
			BobAmplitude:      0.035,
			BobSway:           0.02,
			BobSpeedThreshold: 0.1,
		},
	}
}

var (
	ErrPitchRange    = errors.New("minPitch must not exceed maxPitch")
	ErrNegativeGrace = errors.New("groundedRememberTime must not be negative")
)

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.Look.MinPitch > c.Look.MaxPitch {
		return fmt.Errorf("look: %w (min %.2f, max %.2f)", ErrPitchRange, c.Look.MinPitch, c.Look.MaxPitch)
	}
	if c.Grounding.GroundedRememberTime < 0 {
		return fmt.Errorf("grounding: %w (%.3f)", ErrNegativeGrace, c.Grounding.GroundedRememberTime)
	}
	return nil
}
