// Package fixture loads and saves canvas art as YAML.
//
// An art file lists shapes in draw order:
//
//	name: demo
//	background: [0, 0, 0, 1]
//	shapes:
//	  - {kind: point, at: [0, 0], color: [1, 1, 1], size: 10}
//	  - {kind: circle, at: [0.5, 0.5], color: [1, 0, 0, 1], size: 20, segments: 12}
//	  - {kind: triangle, color: [0, 1, 0, 1], vertices: [-0.5, 0.6, -0.5, 0.3, -0.4, 0.6]}
//
// A triangle with vertices is a custom triangle; without them it is
// placed at "at" like the other kinds.
package fixture

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Art is a named, ordered list of shapes.
type Art struct {
	Name       string    `yaml:"name"`
	Background []float64 `yaml:"background,flow,omitempty"`
	Shapes     []Entry   `yaml:"shapes"`
}

// Entry describes one shape.
type Entry struct {
	Kind     sketch.Kind `yaml:"kind"`
	Color    []float64   `yaml:"color,flow,omitempty"`
	At       []float64   `yaml:"at,flow,omitempty"`
	Size     float64     `yaml:"size,omitempty"`
	Segments int         `yaml:"segments,omitempty"`
	Vertices []float32   `yaml:"vertices,flow,omitempty"`
}

func (e *Entry) normalize() {
	def := sketch.DefaultTool()
	if e.Size == 0 && len(e.Vertices) == 0 {
		e.Size = def.Size
	}
	if e.Kind == sketch.KindCircle && e.Segments == 0 {
		e.Segments = def.Segments
	}
}

// decodeColor decodes a 3- or 4-element channel list; a missing alpha is 1 and
// a missing color is white.
func decodeColor(c []float64) (sketch.RGBA, error) {
	switch len(c) {
	case 0:
		return sketch.White, nil
	case 3:
		return sketch.RGB(c[0], c[1], c[2]), nil
	case 4:
		return sketch.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
	default:
		return sketch.RGBA{}, fmt.Errorf("color has %d channels, want 3 or 4", len(c))
	}
}

func encodeColor(c sketch.RGBA) []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// Shape builds the sketch shape described by e.
func (e Entry) Shape() (sketch.Shape, error) {
	e.normalize()
	c, err := decodeColor(e.Color)
	if err != nil {
		return nil, err
	}
	if !c.Valid() {
		return nil, fmt.Errorf("color %v out of range", c)
	}

	if len(e.Vertices) > 0 {
		if e.Kind != sketch.KindTriangle {
			return nil, fmt.Errorf("%v cannot have vertices", e.Kind)
		}
		if len(e.Vertices) != 6 {
			return nil, fmt.Errorf("triangle has %d vertex coordinates, want 6", len(e.Vertices))
		}
		return sketch.NewCustomTriangle(c, [6]float32(e.Vertices)), nil
	}

	if len(e.At) != 2 {
		return nil, fmt.Errorf("%v needs at: [x, y]", e.Kind)
	}
	tool := sketch.Tool{Kind: e.Kind, Color: c, Size: e.Size, Segments: e.Segments}
	return tool.Shape(sketch.V2(e.At[0], e.At[1]))
}

// FromShape describes s as an entry.
func FromShape(s sketch.Shape) Entry {
	e := Entry{Kind: s.Kind(), Color: encodeColor(s.Paint())}
	switch v := s.(type) {
	case sketch.Point:
		e.At, e.Size = []float64{v.Position.X, v.Position.Y}, v.Size
	case sketch.Triangle:
		if v.Custom {
			e.Vertices = append([]float32(nil), v.Vertices[:]...)
		} else {
			e.At, e.Size = []float64{v.Position.X, v.Position.Y}, v.Size
		}
	case sketch.Circle:
		e.At, e.Size, e.Segments = []float64{v.Position.X, v.Position.Y}, v.Size, v.Segments
	}
	return e
}

// FromShapes describes shapes, in order, as a named Art.
func FromShapes(name string, shapes []sketch.Shape) Art {
	a := Art{Name: name, Shapes: make([]Entry, len(shapes))}
	for i, s := range shapes {
		a.Shapes[i] = FromShape(s)
	}
	return a
}

// Build converts every entry into a shape, in order.
func (a Art) Build() ([]sketch.Shape, error) {
	out := make([]sketch.Shape, len(a.Shapes))
	for i, e := range a.Shapes {
		s, err := e.Shape()
		if err != nil {
			return nil, fmt.Errorf("fixture: %s: shape %d: %w", a.Name, i, err)
		}
		out[i] = s
	}
	return out, nil
}

// BackgroundColor returns the art's background, if one is set.
func (a Art) BackgroundColor() (sketch.RGBA, bool, error) {
	if len(a.Background) == 0 {
		return sketch.RGBA{}, false, nil
	}
	c, err := decodeColor(a.Background)
	if err != nil {
		return sketch.RGBA{}, false, fmt.Errorf("fixture: %s: background: %w", a.Name, err)
	}
	return c, true, nil
}

// Parse decodes an art document.
func Parse(data []byte) (Art, error) {
	var a Art
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Art{}, fmt.Errorf("fixture: parse: %w", err)
	}
	return a, nil
}

// Load reads an art file.
func Load(path string) (Art, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return Art{}, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Parse(data)
}

// Write encodes a as YAML.
func Write(w io.Writer, a Art) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&a); err != nil {
		return fmt.Errorf("fixture: encode %s: %w", a.Name, err)
	}
	return enc.Close()
}

//go:embed snakes.yaml
var snakesYAML []byte

// Snakes returns the built-in snake drawing.
func Snakes() Art {
	a, err := Parse(snakesYAML)
	if err != nil {
		panic(err)
	}
	return a
}
