// Package script replays recorded canvas sessions from YAML.
//
// A script is a list of steps, each doing exactly one thing: change the
// tool, press, move or release the pointer, rotate, clear, undo, redo or
// load a piece of art. Pointer steps are delivered through the
// gpucontext.PointerEventSource interface, so a canvas consumes them the
// same way it consumes live input.
//
//	canvas: {width: 400, height: 400, background: [0, 0, 0, 1]}
//	steps:
//	  - tool: {kind: circle, color: [1, 0, 0], size: 20, segments: 12}
//	  - down: [200, 200]
//	  - drag: {to: [300, 200], steps: 10}
//	  - up: [300, 200]
//	  - rotate: 30
//	  - undo: 2
//	  - art: snakes
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/fixture"
)

// Default canvas dimensions when a script does not set them.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// ErrEmptyStep is returned for a step that sets no action.
var ErrEmptyStep = errors.New("script: step has no action")

// Script is a decoded replay file.
type Script struct {
	Canvas Canvas `yaml:"canvas"`
	Steps  []Step `yaml:"steps"`
}

// Canvas sets up the drawing buffer.
type Canvas struct {
	Width      int       `yaml:"width,omitempty"`
	Height     int       `yaml:"height,omitempty"`
	Background []float64 `yaml:"background,flow,omitempty"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	Tool    *Tool     `yaml:"tool,omitempty"`
	Channel *Channel  `yaml:"channel,omitempty"`
	Down    []float64 `yaml:"down,flow,omitempty"`
	Move    []float64 `yaml:"move,flow,omitempty"`
	Up      []float64 `yaml:"up,flow,omitempty"`
	Drag    *Drag     `yaml:"drag,omitempty"`
	Rotate  *float64  `yaml:"rotate,omitempty"`
	Clear   bool      `yaml:"clear,omitempty"`
	Undo    int       `yaml:"undo,omitempty"`
	Redo    int       `yaml:"redo,omitempty"`
	Art     string    `yaml:"art,omitempty"`
}

// Tool replaces fields of the current tool; unset fields are kept.
type Tool struct {
	Kind     *sketch.Kind `yaml:"kind,omitempty"`
	Color    []float64    `yaml:"color,flow,omitempty"`
	Size     float64      `yaml:"size,omitempty"`
	Segments int          `yaml:"segments,omitempty"`
}

// Channel sets one color channel from a 0..100 slider value.
type Channel struct {
	Index int     `yaml:"index"`
	Value float64 `yaml:"value"`
}

// Drag moves the held pointer from its last position to To in Steps
// evenly spaced move events.
type Drag struct {
	To    []float64 `yaml:"to,flow"`
	Steps int       `yaml:"steps,omitempty"`
}

func (s *Script) normalize() {
	if s.Canvas.Width == 0 {
		s.Canvas.Width = DefaultWidth
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = DefaultHeight
	}
	for i := range s.Steps {
		if d := s.Steps[i].Drag; d != nil && d.Steps == 0 {
			d.Steps = 1
		}
	}
}

// actions returns how many action fields are set.
func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Tool != nil, s.Channel != nil, s.Down != nil, s.Move != nil,
		s.Up != nil, s.Drag != nil, s.Rotate != nil, s.Clear,
		s.Undo != 0, s.Redo != 0, s.Art != "",
	} {
		if set {
			n++
		}
	}
	return n
}

// Validate checks every step.
func (s Script) Validate() error {
	if s.Canvas.Width < 0 || s.Canvas.Height < 0 {
		return fmt.Errorf("script: invalid canvas size %dx%d", s.Canvas.Width, s.Canvas.Height)
	}
	if err := checkColor(s.Canvas.Background); err != nil {
		return fmt.Errorf("script: background: %w", err)
	}
	for i, st := range s.Steps {
		switch n := st.actions(); {
		case n == 0:
			return fmt.Errorf("script: step %d: %w", i, ErrEmptyStep)
		case n > 1:
			return fmt.Errorf("script: step %d: %d actions, want 1", i, n)
		}
		for _, pt := range [][]float64{st.Down, st.Move, st.Up} {
			if pt != nil && len(pt) != 2 {
				return fmt.Errorf("script: step %d: point needs [x, y]", i)
			}
		}
		if st.Drag != nil && len(st.Drag.To) != 2 {
			return fmt.Errorf("script: step %d: drag needs to: [x, y]", i)
		}
		if st.Undo < 0 || st.Redo < 0 {
			return fmt.Errorf("script: step %d: negative undo/redo count", i)
		}
		if st.Tool != nil {
			if err := checkColor(st.Tool.Color); err != nil {
				return fmt.Errorf("script: step %d: tool: %w", i, err)
			}
		}
	}
	return nil
}

// checkColor accepts an unset color or 3 or 4 channels.
func checkColor(c []float64) error {
	switch len(c) {
	case 0, 3, 4:
		return nil
	default:
		return fmt.Errorf("color has %d channels, want 3 or 4", len(c))
	}
}

// Background returns the canvas clear color, if set.
func (s Script) Background() (sketch.RGBA, bool, error) {
	switch len(s.Canvas.Background) {
	case 0:
		return sketch.RGBA{}, false, nil
	case 3:
		b := s.Canvas.Background
		return sketch.RGB(b[0], b[1], b[2]), true, nil
	case 4:
		b := s.Canvas.Background
		return sketch.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, true, nil
	default:
		return sketch.RGBA{}, false, fmt.Errorf("script: background has %d channels", len(s.Canvas.Background))
	}
}

// Parse decodes and validates a script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("script: parse: %w", err)
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return Script{}, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadArt resolves an art step: "snakes" is built in, anything else is
// read as a fixture file.
func LoadArt(name string) (fixture.Art, error) {
	if name == "snakes" {
		return fixture.Snakes(), nil
	}
	return fixture.Load(name)
}
