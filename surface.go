package sketch

import "github.com/gogpu/gputypes"

// Surface is the rendering context shapes are drawn into.
//
// It exposes the two operations a fixed-function pipeline needs: clear
// and submit one primitive. Implementations live in the surface and
// recording packages; the RenderPass never reads pixels back.
//
// Surfaces are NOT thread-safe.
type Surface interface {
	// Size returns the drawing-buffer dimensions in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with c.
	Clear(c gputypes.Color)

	// Draw submits one primitive.
	Draw(call DrawCall)
}

// DrawCall is a single primitive submission: the vertex buffer for
// a_Position plus the uniform values bound at draw time.
type DrawCall struct {
	// Primitive selects the topology and face culling.
	Primitive gputypes.PrimitiveState

	// Vertices holds x, y pairs in normalized device coordinates.
	Vertices []float32

	// Color is the u_FragColor value.
	Color RGBA

	// PointSize is the u_Size value, in pixels. Only meaningful for point lists.
	PointSize float32

	// Model is the u_ModelMatrix value. The zero Mat4 is treated as identity.
	Model Mat4

	// GlobalRotation is the u_GlobalRotateMatrix value. The zero Mat4 is
	// treated as identity.
	GlobalRotation Mat4
}

// VertexCount returns the number of vertices in the call.
func (d DrawCall) VertexCount() int {
	return len(d.Vertices) / 2
}

// Positions returns the clip-space positions of the vertices after the
// model and global rotation transforms, with z dropped (orthographic).
func (d DrawCall) Positions() []Vec2 {
	n := d.VertexCount()
	out := make([]Vec2, n)
	m := d.GlobalRotation.orIdentity().Multiply(d.Model.orIdentity())
	identity := m.IsIdentity()
	for i := 0; i < n; i++ {
		p := Vec3{X: float64(d.Vertices[2*i]), Y: float64(d.Vertices[2*i+1])}
		if !identity {
			p = m.TransformPoint(p)
		}
		out[i] = Vec2{X: p.X, Y: p.Y}
	}
	return out
}

// Culled reports whether a triangle-list call is discarded by the face
// culling configured in Primitive. Winding is measured on the transformed
// positions of the first triangle in NDC (Y up). Other topologies are
// never culled.
func (d DrawCall) Culled() bool {
	if d.Primitive.Topology != gputypes.PrimitiveTopologyTriangleList ||
		d.Primitive.CullMode == gputypes.CullModeNone {
		return false
	}
	pos := d.Positions()
	if len(pos) < 3 {
		return false
	}
	area := pos[1].Sub(pos[0]).Cross(pos[2].Sub(pos[0]))
	ccw := area > 0
	front := ccw == (d.Primitive.FrontFace == gputypes.FrontFaceCCW)
	switch d.Primitive.CullMode {
	case gputypes.CullModeFront:
		return front
	case gputypes.CullModeBack:
		return !front
	}
	return false
}
