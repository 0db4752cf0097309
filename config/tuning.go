package config

import "github.com/automoto/kidclunk/shared/tuning"

// CurrentTuning returns the tunable values in effect.
func CurrentTuning() tuning.Tuning {
	return tuning.Tuning{Character: Character, Body: Body}
}

// ApplyTuning replaces the tunable values. Call it before a scene is built.
func ApplyTuning(t tuning.Tuning) {
	Character = t.Character
	Body = t.Body
}
