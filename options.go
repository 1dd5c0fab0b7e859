package sketch

import "time"

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default: white points on black, no status output
//	c, err := sketch.NewCanvas(surf)
//
//	// Circles on sky blue, status printed to stdout
//	c, err := sketch.NewCanvas(surf,
//		sketch.WithTool(sketch.DefaultTool().WithKind(sketch.KindCircle)),
//		sketch.WithBackground(sketch.SkyBlue),
//		sketch.WithStatus(status.NewWriter(os.Stdout)))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	tool       Tool
	background RGBA
	status     StatusSink
	now        func() time.Time
	bounds     *Rect
	pass       []PassOption
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		tool:       DefaultTool(),
		background: Black,
		status:     discardStatus{},
		now:        time.Now,
	}
}

// WithTool sets the initial tool configuration.
func WithTool(t Tool) CanvasOption {
	return func(o *canvasOptions) {
		o.tool = t
	}
}

// WithBackground sets the clear color used by every redraw.
func WithBackground(c RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithStatus sets the sink that receives a Status after every redraw.
// A nil sink discards reports.
func WithStatus(s StatusSink) CanvasOption {
	return func(o *canvasOptions) {
		if s == nil {
			s = discardStatus{}
		}
		o.status = s
	}
}

// WithClock replaces time.Now for frame timing. Tests use it to get
// deterministic Status values.
func WithClock(now func() time.Time) CanvasOption {
	return func(o *canvasOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithBounds sets the client-space bounding rectangle of the canvas
// element. By default the canvas occupies (0, 0) to the surface size.
func WithBounds(r Rect) CanvasOption {
	return func(o *canvasOptions) {
		o.bounds = &r
	}
}

// WithPassOptions forwards options to the underlying RenderPass.
func WithPassOptions(opts ...PassOption) CanvasOption {
	return func(o *canvasOptions) {
		o.pass = append(o.pass, opts...)
	}
}
