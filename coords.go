package sketch

// Rect is the bounding rectangle of the canvas element in client space
// (origin top-left, Y down), as reported by getBoundingClientRect.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Center returns the client-space center of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Contains reports whether the client-space point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width && y >= r.Top && y <= r.Top+r.Height
}

// EventToNDC converts pointer client coordinates to normalized device
// coordinates:
//
//	x = ((clientX - rect.Left) - w/2) / (w/2)
//	y = (h/2 - (clientY - rect.Top)) / (h/2)
//
// where w and h are the canvas drawing-buffer dimensions. Results are not
// clamped: pointers outside the canvas map outside [-1, 1].
func EventToNDC(clientX, clientY float64, rect Rect, canvasWidth, canvasHeight float64) Vec2 {
	hw := canvasWidth / 2
	hh := canvasHeight / 2
	return Vec2{
		X: ((clientX - rect.Left) - hw) / hw,
		Y: (hh - (clientY - rect.Top)) / hh,
	}
}

// NDCToPixel maps a normalized device coordinate to pixel space of a
// width x height target (origin top-left, Y down). It is the inverse of
// EventToNDC for a rectangle at the origin.
func NDCToPixel(v Vec2, width, height float64) (x, y float64) {
	return (v.X + 1) * width / 2, (1 - v.Y) * height / 2
}
