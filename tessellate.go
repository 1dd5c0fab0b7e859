package sketch

import (
	"math"

	"github.com/chewxy/math32"
)

// Wedge is one triangular slice of a tessellated circle, spanning the
// half-open angle range [Start, End) in degrees.
type Wedge struct {
	Start, End float64
}

// Span returns the angular width of the wedge in degrees.
func (w Wedge) Span() float64 {
	return w.End - w.Start
}

// Wedges splits the full circle into segments wedges of 360/segments
// degrees each, in increasing angle order. Bounds are computed from the
// wedge index, so the last wedge always ends at exactly 360.
// A non-positive count yields no wedges.
func Wedges(segments int) []Wedge {
	if segments <= 0 {
		return nil
	}
	out := make([]Wedge, segments)
	n := float64(segments)
	for i := range out {
		out[i] = Wedge{
			Start: float64(i) * 360 / n,
			End:   float64(i+1) * 360 / n,
		}
	}
	return out
}

// PointVertices returns the single a_Position pair of p.
func PointVertices(p Point) []float32 {
	v := p.Position.Float32s()
	return v[:]
}

// TriangleVertices returns the three vertices of t as six floats.
//
// Custom vertices are returned verbatim. Otherwise the triangle is the
// right isosceles triangle with legs of size/200 along +X and +Y, shifted
// so that its centroid sits on Position.
func TriangleVertices(t Triangle) []float32 {
	if t.Custom {
		v := t.Vertices
		return v[:]
	}
	d := float32(t.Size / RadiusDivisor)
	x := float32(t.Position.X) - d/3
	y := float32(t.Position.Y) - d/3
	return []float32{
		x, y,
		x + d, y,
		x, y + d,
	}
}

// CircleTriangles tessellates c into one fan triangle per wedge, each
// (center, edge at Start, edge at End), in increasing angle order.
func CircleTriangles(c Circle) [][6]float32 {
	wedges := Wedges(c.Segments)
	if len(wedges) == 0 {
		return nil
	}
	cx := float32(c.Position.X)
	cy := float32(c.Position.Y)
	d := float32(c.Radius())

	out := make([][6]float32, len(wedges))
	for i, w := range wedges {
		s1, c1 := math32.Sincos(float32(w.Start * math.Pi / 180))
		s2, c2 := math32.Sincos(float32(w.End * math.Pi / 180))
		out[i] = [6]float32{
			cx, cy,
			cx + c1*d, cy + s1*d,
			cx + c2*d, cy + s2*d,
		}
	}
	return out
}
