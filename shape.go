package sketch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned by shape constructors for a non-positive size.
var ErrInvalidSize = errors.New("sketch: shape size must be positive")

// Kind identifies a shape variant.
type Kind uint8

const (
	KindPoint Kind = iota
	KindTriangle
	KindCircle
)

var kindNames = [...]string{
	KindPoint:    "point",
	KindTriangle: "triangle",
	KindCircle:   "circle",
}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses a variant name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("sketch: unknown shape kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Shape is a placed drawable: one of Point, Triangle or Circle.
//
// The set of variants is closed; RenderPass.Render switches over it
// exhaustively. Shapes are values and are never mutated after creation.
type Shape interface {
	// Kind reports the variant.
	Kind() Kind

	// Paint returns the color snapshotted at creation time.
	Paint() RGBA

	isShape()
}

// Point is a single GPU point sprite of Size pixels.
type Point struct {
	Position Vec2
	Color    RGBA
	Size     float64
}

// NewPoint creates a Point. Size must be positive.
func NewPoint(pos Vec2, c RGBA, size float64) (Point, error) {
	if !(size > 0) {
		return Point{}, ErrInvalidSize
	}
	return Point{Position: pos, Color: c, Size: size}, nil
}

func (Point) Kind() Kind    { return KindPoint }
func (p Point) Paint() RGBA { return p.Color }
func (Point) isShape()      {}
func (p Point) String() string {
	return fmt.Sprintf("point(%.3f, %.3f) size=%g %v", p.Position.X, p.Position.Y, p.Size, p.Color)
}

// Triangle is a filled triangle. When Custom is set, Vertices holds the
// three vertex positions (x1, y1, x2, y2, x3, y3) and Position/Size do not
// affect geometry.
type Triangle struct {
	Position Vec2
	Color    RGBA
	Size     float64

	Custom   bool
	Vertices [6]float32
}

// NewTriangle creates a Triangle centered on pos. Size must be positive.
func NewTriangle(pos Vec2, c RGBA, size float64) (Triangle, error) {
	if !(size > 0) {
		return Triangle{}, ErrInvalidSize
	}
	return Triangle{Position: pos, Color: c, Size: size}, nil
}

// NewCustomTriangle creates a Triangle with explicit vertices.
func NewCustomTriangle(c RGBA, vertices [6]float32) Triangle {
	return Triangle{Color: c, Size: 1, Custom: true, Vertices: vertices}
}

func (Triangle) Kind() Kind    { return KindTriangle }
func (t Triangle) Paint() RGBA { return t.Color }
func (Triangle) isShape()      {}
func (t Triangle) String() string {
	if t.Custom {
		return fmt.Sprintf("triangle%v %v", t.Vertices, t.Color)
	}
	return fmt.Sprintf("triangle(%.3f, %.3f) size=%g %v", t.Position.X, t.Position.Y, t.Size, t.Color)
}

// Circle is a disc approximated by Segments triangle wedges.
// Segments below 3 are accepted and degenerate silently.
type Circle struct {
	Position Vec2
	Color    RGBA
	Size     float64
	Segments int
}

// NewCircle creates a Circle. Size must be positive; segments is not checked.
func NewCircle(pos Vec2, c RGBA, size float64, segments int) (Circle, error) {
	if !(size > 0) {
		return Circle{}, ErrInvalidSize
	}
	return Circle{Position: pos, Color: c, Size: size, Segments: segments}, nil
}

func (Circle) Kind() Kind    { return KindCircle }
func (c Circle) Paint() RGBA { return c.Color }
func (Circle) isShape()      {}
func (c Circle) String() string {
	return fmt.Sprintf("circle(%.3f, %.3f) size=%g segments=%d %v",
		c.Position.X, c.Position.Y, c.Size, c.Segments, c.Color)
}

// Radius returns the disc radius in NDC units.
func (c Circle) Radius() float64 {
	return c.Size / RadiusDivisor
}

// RadiusDivisor converts a shape size to NDC extent so that circles and
// triangles match the visual scale of points of the same size.
const RadiusDivisor = 200.0
