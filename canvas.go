package sketch

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// Canvas is the shape canvas model: it turns pointer input into shapes,
// keeps them in a Registry and redraws the whole list through a
// RenderPass on every change.
//
// Every mutation (Place, Clear, Undo, Redo, Load, SetRotation) ends with a
// full RenderAll. There is no incremental redraw.
//
// A Canvas is not safe for concurrent use. Deliver events from a single
// goroutine, typically the platform's UI thread.
type Canvas struct {
	registry *Registry
	pass     *RenderPass

	tool       Tool
	background RGBA
	status     StatusSink
	now        func() time.Time

	bounds        Rect
	width, height float64

	last Status
}

// NewCanvas creates a canvas drawing into s. It fails when the render pass
// cannot be set up or the initial tool is invalid.
func NewCanvas(s Surface, opts ...CanvasOption) (*Canvas, error) {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.tool.Validate(); err != nil {
		return nil, err
	}

	pass, err := NewRenderPass(s, o.pass...)
	if err != nil {
		return nil, err
	}

	w, h := s.Size()
	bounds := Rect{Width: float64(w), Height: float64(h)}
	if o.bounds != nil {
		bounds = *o.bounds
	}

	return &Canvas{
		registry:   NewRegistry(),
		pass:       pass,
		tool:       o.tool,
		background: o.background,
		status:     o.status,
		now:        o.now,
		bounds:     bounds,
		width:      float64(w),
		height:     float64(h),
	}, nil
}

// Registry returns the shape registry. Mutating it directly skips the
// automatic redraw; call RenderAll afterwards.
func (c *Canvas) Registry() *Registry {
	return c.registry
}

// Pass returns the render pass.
func (c *Canvas) Pass() *RenderPass {
	return c.pass
}

// Shapes returns a copy of the placed shapes in draw order.
func (c *Canvas) Shapes() []Shape {
	return c.registry.Shapes()
}

// Tool returns the current tool configuration.
func (c *Canvas) Tool() Tool {
	return c.tool
}

// SetTool replaces the tool configuration. Existing shapes are unaffected.
func (c *Canvas) SetTool(t Tool) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tool = t
	return nil
}

// Background returns the clear color.
func (c *Canvas) Background() RGBA {
	return c.background
}

// SetBackground changes the clear color and redraws.
func (c *Canvas) SetBackground(bg RGBA) {
	c.background = bg
	c.RenderAll()
}

// Bounds returns the client-space rectangle used for pointer mapping.
func (c *Canvas) Bounds() Rect {
	return c.bounds
}

// SetBounds updates the client-space rectangle, e.g. after a layout change.
func (c *Canvas) SetBounds(r Rect) {
	c.bounds = r
}

// ToNDC maps client coordinates to normalized device coordinates using the
// canvas bounds and drawing-buffer size.
func (c *Canvas) ToNDC(clientX, clientY float64) Vec2 {
	return EventToNDC(clientX, clientY, c.bounds, c.width, c.height)
}

// HandlePointer processes one pointer event. A press places a shape at the
// pointer; a move places one only while exactly the primary button is
// held, so dragging paints a stroke. Other events are ignored. It reports
// whether a shape was placed.
func (c *Canvas) HandlePointer(ev gpucontext.PointerEvent) bool {
	switch ev.Type {
	case gpucontext.PointerDown:
	case gpucontext.PointerMove:
		if ev.Buttons != gpucontext.ButtonsLeft {
			return false
		}
	default:
		return false
	}
	if _, err := c.Place(c.ToNDC(ev.X, ev.Y)); err != nil {
		Logger().Warn("sketch: pointer event dropped", "err", err)
		return false
	}
	return true
}

// Attach subscribes the canvas to pointer events from src.
func (c *Canvas) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		c.HandlePointer(ev)
	})
}

// Place creates a shape at pos from the current tool, appends it and
// redraws.
func (c *Canvas) Place(pos Vec2) (Shape, error) {
	s, err := c.tool.Shape(pos)
	if err != nil {
		return nil, err
	}
	c.registry.Append(s)
	c.RenderAll()
	return s, nil
}

// Append adds an already built shape and redraws.
func (c *Canvas) Append(s Shape) {
	c.registry.Append(s)
	c.RenderAll()
}

// Clear removes every shape, drops the undo history and redraws.
func (c *Canvas) Clear() {
	c.registry.Clear()
	c.RenderAll()
}

// Undo takes back the newest shape. It reports false if there is none.
func (c *Canvas) Undo() bool {
	_, ok := c.registry.Undo()
	if ok {
		c.RenderAll()
	}
	return ok
}

// Redo restores the most recently undone shape.
func (c *Canvas) Redo() bool {
	_, ok := c.registry.Redo()
	if ok {
		c.RenderAll()
	}
	return ok
}

// Load replaces the canvas content with shapes, as a single wholesale
// reset followed by appends, and redraws once.
func (c *Canvas) Load(shapes []Shape) {
	c.registry.Clear()
	for _, s := range shapes {
		c.registry.Append(s)
	}
	c.RenderAll()
}

// Rotation returns the global rotation angle in degrees.
func (c *Canvas) Rotation() float64 {
	return c.pass.GlobalRotation()
}

// SetRotation sets the global rotation about the Y axis and redraws.
func (c *Canvas) SetRotation(deg float64) {
	c.pass.SetGlobalRotation(deg)
	c.RenderAll()
}

// RenderAll clears the surface, renders every shape in order and reports
// the shape count and elapsed time to the status sink.
func (c *Canvas) RenderAll() Status {
	start := c.now()

	c.pass.Clear(c.background)
	c.registry.Render(c.pass)

	st := Status{
		Shapes:    c.registry.Len(),
		DrawCalls: c.pass.DrawCalls(),
		Elapsed:   c.now().Sub(start),
	}
	c.last = st
	c.status.Report(st)
	return st
}

// LastStatus returns the Status of the most recent redraw.
func (c *Canvas) LastStatus() Status {
	return c.last
}
