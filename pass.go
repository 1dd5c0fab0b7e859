package sketch

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gogpu/gputypes"
)

// ErrNoSurface is returned when a RenderPass is created without a surface.
var ErrNoSurface = errors.New("sketch: failed to get the rendering context")

// PassOption configures a RenderPass during creation.
type PassOption func(*passOptions)

type passOptions struct {
	shader    string
	cullMode  gputypes.CullMode
	frontFace gputypes.FrontFace
}

func defaultPassOptions() passOptions {
	return passOptions{
		shader:    ShapeShader,
		cullMode:  gputypes.CullModeNone,
		frontFace: gputypes.FrontFaceCCW,
	}
}

// WithShader replaces the WGSL program. It must still declare every
// variable listed in Bindings.
func WithShader(source string) PassOption {
	return func(o *passOptions) {
		o.shader = source
	}
}

// WithCullMode enables face culling for triangles. The default,
// gputypes.CullModeNone, draws triangles of either winding.
func WithCullMode(m gputypes.CullMode) PassOption {
	return func(o *passOptions) {
		o.cullMode = m
	}
}

// WithFrontFace selects which winding counts as front-facing.
func WithFrontFace(f gputypes.FrontFace) PassOption {
	return func(o *passOptions) {
		o.frontFace = f
	}
}

// RenderPass owns the surface and the resolved shader bindings for the
// lifetime of a canvas. Every shape render goes through it, and it holds
// the uniform state shared by all draws: global rotation and primitive state.
//
// A RenderPass is not safe for concurrent use.
type RenderPass struct {
	surface  Surface
	program  *Program
	bindings Bindings

	rotationAngle float64
	rotation      Mat4
	model         Mat4
	cullMode      gputypes.CullMode
	frontFace     gputypes.FrontFace

	calls int
}

// NewRenderPass compiles the shape shader and resolves its variable
// locations. Any failure is logged and returned; the pass is unusable and
// there is no fallback.
func NewRenderPass(s Surface, opts ...PassOption) (*RenderPass, error) {
	o := defaultPassOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	if isNilSurface(s) {
		log.Error(ErrNoSurface.Error())
		return nil, ErrNoSurface
	}

	prog, err := CompileProgram(o.shader)
	if err != nil {
		log.Error("sketch: failed to initialize shaders", "err", err)
		return nil, err
	}
	b, err := prog.Bind()
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	w, h := s.Size()
	log.Info("sketch: render pass ready",
		"width", w, "height", h, "spirv_bytes", len(prog.SPIRV()))

	return &RenderPass{
		surface:   s,
		program:   prog,
		bindings:  b,
		rotation:  Identity4(),
		model:     Identity4(),
		cullMode:  o.cullMode,
		frontFace: o.frontFace,
	}, nil
}

// isNilSurface catches both a nil interface and a typed nil pointer.
func isNilSurface(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Surface returns the surface the pass draws into.
func (p *RenderPass) Surface() Surface {
	return p.surface
}

// Program returns the compiled shape shader.
func (p *RenderPass) Program() *Program {
	return p.program
}

// Bindings returns the resolved shader variable locations.
func (p *RenderPass) Bindings() Bindings {
	return p.bindings
}

// SetGlobalRotation sets u_GlobalRotateMatrix to a rotation of angle
// degrees about the Y axis.
func (p *RenderPass) SetGlobalRotation(angle float64) {
	p.rotationAngle = angle
	p.rotation = Rotation(angle, 0, 1, 0)
}

// GlobalRotation returns the current rotation angle in degrees.
func (p *RenderPass) GlobalRotation() float64 {
	return p.rotationAngle
}

// Clear clears the surface and resets the per-frame draw-call counter.
func (p *RenderPass) Clear(bg RGBA) {
	p.calls = 0
	p.surface.Clear(bg.GPU())
}

// DrawCalls returns the number of primitives submitted since the last Clear.
func (p *RenderPass) DrawCalls() int {
	return p.calls
}

// Render emits the geometry of s.
func (p *RenderPass) Render(s Shape) {
	switch v := s.(type) {
	case Point:
		p.submit(gputypes.PrimitiveTopologyPointList, PointVertices(v), v.Color, v.Size)
	case Triangle:
		p.submit(gputypes.PrimitiveTopologyTriangleList, TriangleVertices(v), v.Color, v.Size)
	case Circle:
		for _, tri := range CircleTriangles(v) {
			p.submit(gputypes.PrimitiveTopologyTriangleList, tri[:], v.Color, v.Size)
		}
	default:
		panic(fmt.Sprintf("sketch: unknown shape type %T", s))
	}
}

func (p *RenderPass) submit(topology gputypes.PrimitiveTopology, vertices []float32, c RGBA, size float64) {
	p.calls++
	p.surface.Draw(DrawCall{
		Primitive: gputypes.PrimitiveState{
			Topology:  topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Vertices:       vertices,
		Color:          c,
		PointSize:      float32(size),
		Model:          p.model,
		GlobalRotation: p.rotation,
	})
}
