package sketch

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

// fakeSurface records every clear and draw.
type fakeSurface struct {
	w, h   int
	clears []gputypes.Color
	calls  []DrawCall
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

func (f *fakeSurface) Clear(c gputypes.Color) {
	f.clears = append(f.clears, c)
	f.calls = f.calls[:0]
}

func (f *fakeSurface) Draw(call DrawCall) {
	f.calls = append(f.calls, call)
}

func TestNewRenderPassNoSurface(t *testing.T) {
	if _, err := NewRenderPass(nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("NewRenderPass(nil) = %v, want ErrNoSurface", err)
	}
	var typed *fakeSurface
	if _, err := NewRenderPass(typed); !errors.Is(err, ErrNoSurface) {
		t.Errorf("NewRenderPass(typed nil) = %v, want ErrNoSurface", err)
	}
}

func TestNewRenderPassBindingFailure(t *testing.T) {
	_, err := NewRenderPass(newFakeSurface(10, 10), WithShader(shaderWithoutSize))
	var be *BindingError
	if !errors.As(err, &be) {
		t.Fatalf("NewRenderPass = %v, want *BindingError", err)
	}
}

func TestRenderPassRender(t *testing.T) {
	s := newFakeSurface(100, 100)
	pass, err := NewRenderPass(s)
	if err != nil {
		t.Fatal(err)
	}

	p, _ := NewPoint(V2(0.5, 0.5), Red, 10)
	tri, _ := NewTriangle(V2(0, 0), Green, 20)
	c, _ := NewCircle(V2(-0.5, 0), Blue, 30, 6)

	pass.Clear(Black)
	for _, shape := range []Shape{tri, p, c} {
		pass.Render(shape)
	}

	if pass.DrawCalls() != 1+1+6 || len(s.calls) != 8 {
		t.Fatalf("DrawCalls() = %d, calls = %d, want 8", pass.DrawCalls(), len(s.calls))
	}
	want := []struct {
		topology gputypes.PrimitiveTopology
		color    RGBA
	}{
		{gputypes.PrimitiveTopologyTriangleList, Green},
		{gputypes.PrimitiveTopologyPointList, Red},
	}
	for i, w := range want {
		if s.calls[i].Primitive.Topology != w.topology || s.calls[i].Color != w.color {
			t.Errorf("call %d = %v %v", i, s.calls[i].Primitive.Topology, s.calls[i].Color)
		}
	}
	for i, call := range s.calls[2:] {
		if call.Color != Blue || call.VertexCount() != 3 {
			t.Errorf("wedge %d = %+v", i, call)
		}
	}
	if s.calls[1].PointSize != 10 {
		t.Errorf("PointSize = %v, want 10", s.calls[1].PointSize)
	}
	if s.calls[0].Primitive.CullMode != gputypes.CullModeNone {
		t.Errorf("default CullMode = %v, want none", s.calls[0].Primitive.CullMode)
	}

	pass.Clear(White)
	if pass.DrawCalls() != 0 {
		t.Errorf("DrawCalls() after Clear = %d, want 0", pass.DrawCalls())
	}
	if FromGPU(s.clears[1]) != White {
		t.Errorf("clear color = %v, want white", s.clears[1])
	}
}

func TestRenderPassOptions(t *testing.T) {
	s := newFakeSurface(10, 10)
	pass, err := NewRenderPass(s,
		WithCullMode(gputypes.CullModeBack),
		WithFrontFace(gputypes.FrontFaceCW))
	if err != nil {
		t.Fatal(err)
	}
	tri, _ := NewTriangle(V2(0, 0), White, 10)
	pass.Render(tri)

	prim := s.calls[0].Primitive
	if prim.CullMode != gputypes.CullModeBack || prim.FrontFace != gputypes.FrontFaceCW {
		t.Errorf("Primitive = %+v", prim)
	}
	// counter-clockwise in NDC is the back face when CW is front
	if !s.calls[0].Culled() {
		t.Error("CCW triangle should be culled with CullModeBack and FrontFaceCW")
	}
}

func TestRenderPassGlobalRotation(t *testing.T) {
	s := newFakeSurface(10, 10)
	pass, err := NewRenderPass(s)
	if err != nil {
		t.Fatal(err)
	}
	pass.SetGlobalRotation(180)
	if pass.GlobalRotation() != 180 {
		t.Errorf("GlobalRotation() = %v", pass.GlobalRotation())
	}

	p, _ := NewPoint(V2(0.5, 0.25), White, 5)
	pass.Render(p)
	pos := s.calls[0].Positions()
	if len(pos) != 1 || !pos[0].Approx(V2(-0.5, 0.25), 1e-6) {
		t.Errorf("Positions() = %v, want [(-0.5, 0.25)]", pos)
	}
}
