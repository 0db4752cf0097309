package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/automoto/kidclunk/shared/character"
	"github.com/automoto/kidclunk/shared/leveldata"
	"github.com/automoto/kidclunk/shared/tuning"
	"github.com/automoto/kidclunk/shared/view"
	"github.com/automoto/kidclunk/shared/world"
	"github.com/go-gl/mathgl/mgl64"
)

var csvHeader = []string{
	"frame", "time", "x", "feet", "z", "yaw", "pitch",
	"speed", "vy", "grounded", "remember", "jumped", "bobX", "bobY",
}

// Sim is one body driven by a rig inside an arena, stepped at a fixed delta.
type Sim struct {
	arena   *world.Arena
	body    *world.Body
	rig     *character.Rig
	elapsed float64
	frame   int
}

// NewSim builds the arena and places a body at the given spawn.
func NewSim(level *leveldata.Arena, t tuning.Tuning, cellSize int, eye mgl64.Vec3, spawn int) *Sim {
	arena := world.BuildArena(level, cellSize)
	position, yaw := arena.SpawnPosition(spawn, t.Body)
	body := arena.NewBody(t.Body, position, yaw)
	cam := view.NewCamera(eye, 70, 0.05, 100)
	return &Sim{
		arena: arena,
		body:  body,
		rig:   character.NewRig(t.Character, body, arena, cam),
	}
}

// Tick advances platforms and then the rig by dt.
func (s *Sim) Tick(dt float64, in character.Input) character.Output {
	s.arena.Update(dt)
	out := s.rig.Tick(character.Frame{Delta: dt, Elapsed: s.elapsed}, in)
	s.elapsed += dt
	s.frame++
	return out
}

// Run replays the script and writes one CSV row per frame to w.
func (s *Sim) Run(script Script, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, st := range script.Steps {
		for i := 0; i < st.Frames; i++ {
			out := s.Tick(script.Delta, character.Input{
				Horizontal: st.Horizontal,
				Vertical:   st.Vertical,
				PointerDX:  st.MouseX,
				PointerDY:  st.MouseY,
				Jump:       st.Jump && i == 0,
			})
			if err := cw.Write(s.row(out)); err != nil {
				return fmt.Errorf("write frame %d: %w", s.frame, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *Sim) row(out character.Output) []string {
	pos := s.body.Position()
	return []string{
		strconv.Itoa(s.frame),
		ff(s.elapsed),
		ff(pos.X()),
		ff(s.body.Feet()),
		ff(pos.Z()),
		ff(s.body.Yaw()),
		ff(out.Pitch),
		ff(s.rig.Locomotion.Speed()),
		ff(out.VerticalVelocity),
		strconv.FormatBool(out.Grounded),
		ff(out.GroundedRemember),
		strconv.FormatBool(out.Jumped),
		ff(out.CameraOffset.X()),
		ff(out.CameraOffset.Y()),
	}
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
