package sketch

import "math"

// Mat4 is a 4x4 transformation matrix stored in column-major order,
// the layout uniformMatrix4fv expects:
//
//	| E[0]  E[4]  E[8]   E[12] |
//	| E[1]  E[5]  E[9]   E[13] |
//	| E[2]  E[6]  E[10]  E[14] |
//	| E[3]  E[7]  E[11]  E[15] |
//
// Method chains post-multiply, so m.Translate(...).Scale(...) scales first
// and translates second when applied to a point.
type Mat4 struct {
	E [16]float64
}

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{E: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Translation creates a translation matrix.
func Translation(x, y, z float64) Mat4 {
	m := Identity4()
	m.E[12], m.E[13], m.E[14] = x, y, z
	return m
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float64) Mat4 {
	m := Identity4()
	m.E[0], m.E[5], m.E[10] = x, y, z
	return m
}

// Rotation creates a rotation of angle degrees about the axis (x, y, z).
// The axis need not be normalized. A zero axis yields the identity.
func Rotation(angle, x, y, z float64) Mat4 {
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return Identity4()
	}
	x, y, z = x/l, y/l, z/l

	rad := angle * math.Pi / 180
	s, c := math.Sincos(rad)
	nc := 1 - c

	var m Mat4
	m.E[0] = x*x*nc + c
	m.E[1] = x*y*nc + z*s
	m.E[2] = z*x*nc - y*s

	m.E[4] = x*y*nc - z*s
	m.E[5] = y*y*nc + c
	m.E[6] = y*z*nc + x*s

	m.E[8] = z*x*nc + y*s
	m.E[9] = y*z*nc - x*s
	m.E[10] = z*z*nc + c

	m.E[15] = 1
	return m
}

// Multiply returns m * other.
func (m Mat4) Multiply(other Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.E[k*4+row] * other.E[col*4+k]
			}
			r.E[col*4+row] = sum
		}
	}
	return r
}

// Translate returns m * Translation(x, y, z).
func (m Mat4) Translate(x, y, z float64) Mat4 {
	return m.Multiply(Translation(x, y, z))
}

// Scale returns m * Scaling(x, y, z).
func (m Mat4) Scale(x, y, z float64) Mat4 {
	return m.Multiply(Scaling(x, y, z))
}

// Rotate returns m * Rotation(angle, x, y, z).
func (m Mat4) Rotate(angle, x, y, z float64) Mat4 {
	return m.Multiply(Rotation(angle, x, y, z))
}

// TransformPoint applies the matrix to p with w = 1 and performs the
// perspective divide when the resulting w is not 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	e := &m.E
	x := e[0]*p.X + e[4]*p.Y + e[8]*p.Z + e[12]
	y := e[1]*p.X + e[5]*p.Y + e[9]*p.Z + e[13]
	z := e[2]*p.X + e[6]*p.Y + e[10]*p.Z + e[14]
	w := e[3]*p.X + e[7]*p.Y + e[11]*p.Z + e[15]
	if w != 1 && w != 0 {
		x, y, z = x/w, y/w, z/w
	}
	return Vec3{X: x, Y: y, Z: z}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}

// orIdentity maps the zero matrix to the identity.
func (m Mat4) orIdentity() Mat4 {
	if m == (Mat4{}) {
		return Identity4()
	}
	return m
}

// Float32s returns the elements in upload order.
func (m Mat4) Float32s() [16]float32 {
	var out [16]float32
	for i, v := range m.E {
		out[i] = float32(v)
	}
	return out
}
