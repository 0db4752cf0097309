package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const defaultDelta = 1.0 / 60

var (
	ErrNoSteps   = errors.New("script has no steps")
	ErrBadFrames = errors.New("step needs at least one frame")
	ErrBadDelta  = errors.New("dt must be positive")
)

// Script is a fixed sequence of held inputs to replay against an arena.
type Script struct {
	Delta float64 `yaml:"dt"`
	Spawn int     `yaml:"spawn"`
	Steps []Step  `yaml:"steps"`
}

// Step holds one input for Frames ticks. Jump is pressed on the first frame
// of the step only. MouseX and MouseY are look axis units per frame.
type Step struct {
	Frames     int     `yaml:"frames"`
	Horizontal float64 `yaml:"horizontal"`
	Vertical   float64 `yaml:"vertical"`
	MouseX     float64 `yaml:"mouseX"`
	MouseY     float64 `yaml:"mouseY"`
	Jump       bool    `yaml:"jump"`
}

// Frames is the total number of ticks the script runs.
func (s Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

// ParseScript decodes and checks a YAML script. A missing dt means 60 ticks a
// second.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, ErrNoSteps
		}
		return Script{}, fmt.Errorf("decode script: %w", err)
	}

	if s.Delta == 0 {
		s.Delta = defaultDelta
	}
	if s.Delta < 0 {
		return Script{}, fmt.Errorf("dt %v: %w", s.Delta, ErrBadDelta)
	}
	if len(s.Steps) == 0 {
		return Script{}, ErrNoSteps
	}
	for i, st := range s.Steps {
		if st.Frames <= 0 {
			return Script{}, fmt.Errorf("step %d: %w", i, ErrBadFrames)
		}
	}
	return s, nil
}
