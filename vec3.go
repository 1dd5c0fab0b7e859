package sketch

import "math"

// Vec3 is a 3-component vector used by the vector helper functions.
//
// None of the operations guard against degenerate input: normalizing a
// zero vector or measuring the angle to one yields non-finite components.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the elementwise sum.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the elementwise difference.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by s.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Magnitude returns the Euclidean norm.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize divides v by its magnitude. The caller must ensure the
// magnitude is non-zero.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Magnitude())
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon
}

// AngleBetween returns the angle between v1 and v2 in degrees.
func AngleBetween(v1, v2 Vec3) float64 {
	cos := v1.Dot(v2) / (v1.Magnitude() * v2.Magnitude())
	return math.Acos(cos) * 180 / math.Pi
}

// AreaTriangle returns the area of the triangle spanned by edge vectors
// v1 and v2: half the magnitude of their cross product.
func AreaTriangle(v1, v2 Vec3) float64 {
	return 0.5 * v1.Cross(v2).Magnitude()
}
