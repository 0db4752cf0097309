// Package tuning loads gameplay overrides from a YAML file on top of the
// built-in defaults.
package tuning

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/automoto/kidclunk/shared/character"
	"github.com/automoto/kidclunk/shared/world"
	"gopkg.in/yaml.v3"
)

var ErrBodyShape = errors.New("body needs a positive height and radius")

// Tuning is everything a tuning file may override. Fields left out of the
// file keep the values passed to Load.
type Tuning struct {
	Character character.Config   `yaml:"character"`
	Body      world.BodyGeometry `yaml:"body"`
}

// Default is the stock tuning: the kid clunk controller on a 2m tall body
// with a 0.5m radius.
func Default() Tuning {
	return Tuning{
		Character: character.DefaultConfig(),
		Body: world.BodyGeometry{
			Height:     2.0,
			Radius:     0.5,
			SkinWidth:  0.08,
			StepOffset: 0.3,
			Mask:       character.AllLayers,
		},
	}
}

// Validate checks the values the controllers rely on.
func (t Tuning) Validate() error {
	if err := t.Character.Validate(); err != nil {
		return err
	}
	if t.Body.Height <= 0 || t.Body.Radius <= 0 {
		return fmt.Errorf("height %.2f radius %.2f: %w", t.Body.Height, t.Body.Radius, ErrBodyShape)
	}
	return nil
}

// Load reads path from fsys and overlays it onto base. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Load(fsys fs.FS, path string, base Tuning) (Tuning, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return base, fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	out, err := Decode(f, base)
	if err != nil {
		return base, fmt.Errorf("tuning %s: %w", path, err)
	}
	return out, nil
}

// Decode overlays a YAML document from r onto base.
func Decode(r io.Reader, base Tuning) (Tuning, error) {
	out := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode: %w", err)
	}
	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}
