package sketch

import "fmt"

// Tool is the current tool configuration: which variant the next pointer
// press places, and with which color, size and segment count.
//
// Tool is an immutable value. UI handlers derive a new Tool with the With*
// methods and hand it to Canvas.SetTool; shapes snapshot the Tool at
// creation time, so later changes never reach already placed shapes.
type Tool struct {
	Kind     Kind
	Color    RGBA
	Size     float64
	Segments int
}

// DefaultTool returns the initial tool: white 5px points, 8 circle segments.
func DefaultTool() Tool {
	return Tool{
		Kind:     KindPoint,
		Color:    White,
		Size:     5,
		Segments: 8,
	}
}

// WithKind returns a copy of t placing shapes of kind k.
func (t Tool) WithKind(k Kind) Tool {
	t.Kind = k
	return t
}

// WithColor returns a copy of t with color c.
func (t Tool) WithColor(c RGBA) Tool {
	t.Color = c
	return t
}

// WithChannel returns a copy of t with color channel i set to v.
// Sliders report 0..100; callers divide by 100 before calling.
func (t Tool) WithChannel(i int, v float64) Tool {
	t.Color = t.Color.WithChannel(i, v)
	return t
}

// WithSize returns a copy of t with the given size.
func (t Tool) WithSize(size float64) Tool {
	t.Size = size
	return t
}

// WithSegments returns a copy of t with the given circle segment count.
func (t Tool) WithSegments(n int) Tool {
	t.Segments = n
	return t
}

// Validate reports whether shapes can be created from t.
// Segment counts below 3 are allowed.
func (t Tool) Validate() error {
	if int(t.Kind) >= len(kindNames) {
		return fmt.Errorf("sketch: invalid tool: %v", t.Kind)
	}
	if !(t.Size > 0) {
		return fmt.Errorf("sketch: invalid tool: %w", ErrInvalidSize)
	}
	if !t.Color.Valid() {
		return fmt.Errorf("sketch: invalid tool: color %v out of range", t.Color)
	}
	return nil
}

// Shape creates a new shape at pos from the tool settings.
func (t Tool) Shape(pos Vec2) (Shape, error) {
	var (
		s   Shape
		err error
	)
	switch t.Kind {
	case KindPoint:
		s, err = NewPoint(pos, t.Color, t.Size)
	case KindTriangle:
		s, err = NewTriangle(pos, t.Color, t.Size)
	case KindCircle:
		s, err = NewCircle(pos, t.Color, t.Size, t.Segments)
	default:
		return nil, fmt.Errorf("sketch: invalid tool: %v", t.Kind)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
