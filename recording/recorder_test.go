package recording

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)

	w, h := rec.Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() = %d, %d, want 800, 600", w, h)
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.vertices == nil {
		t.Error("vertices should not be nil")
	}
}

func TestRecorderCapturesCalls(t *testing.T) {
	rec := NewRecorder(100, 100)
	rec.Clear(gputypes.Color{A: 1})
	rec.Draw(sketch.DrawCall{
		Primitive: gputypes.PrimitiveState{Topology: gputypes.PrimitiveTopologyPointList},
		Vertices:  []float32{0.5, -0.5},
		Color:     sketch.Red,
		PointSize: 10,
	})

	r := rec.FinishRecording()
	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("len(Commands) = %d, want 2", len(cmds))
	}
	if cmds[0].Type() != CmdClear || cmds[1].Type() != CmdDraw {
		t.Errorf("command types = %v, %v", cmds[0].Type(), cmds[1].Type())
	}

	calls := r.Calls()
	if len(calls) != 1 {
		t.Fatalf("len(Calls) = %d, want 1", len(calls))
	}
	c := calls[0]
	if c.PointSize != 10 || c.Color != sketch.Red {
		t.Errorf("call = %+v", c)
	}
	if len(c.Vertices) != 2 || c.Vertices[0] != 0.5 || c.Vertices[1] != -0.5 {
		t.Errorf("Vertices = %v, want [0.5 -0.5]", c.Vertices)
	}
}

func TestRecorderLastFrame(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Draw(sketch.DrawCall{Vertices: []float32{0, 0}})
	rec.Clear(gputypes.Color{})
	rec.Draw(sketch.DrawCall{Vertices: []float32{1, 1}})
	rec.Clear(gputypes.Color{})
	rec.Draw(sketch.DrawCall{Vertices: []float32{2, 2}})
	rec.Draw(sketch.DrawCall{Vertices: []float32{3, 3}})

	if rec.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", rec.Frames())
	}

	frame := rec.LastFrame()
	calls := frame.Calls()
	if len(frame.Commands()) != 3 || len(calls) != 2 {
		t.Fatalf("LastFrame: %d commands, %d calls, want 3, 2", len(frame.Commands()), len(calls))
	}
	if calls[0].Vertices[0] != 2 || calls[1].Vertices[0] != 3 {
		t.Errorf("LastFrame calls out of order: %v, %v", calls[0].Vertices, calls[1].Vertices)
	}

	// Later commands do not leak into an already taken frame.
	rec.Draw(sketch.DrawCall{Vertices: []float32{4, 4}})
	if len(frame.Calls()) != 2 {
		t.Errorf("frame grew to %d calls after further recording", len(frame.Calls()))
	}
}

func TestRecorderLastFrameBeforeClear(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Draw(sketch.DrawCall{Vertices: []float32{0, 0}})

	if n := len(rec.LastFrame().Commands()); n != 1 {
		t.Errorf("LastFrame before any clear: %d commands, want 1", n)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Clear(gputypes.Color{})
	rec.Draw(sketch.DrawCall{Vertices: []float32{7, 7}})
	old := rec.FinishRecording()

	rec.Reset()
	rec.Draw(sketch.DrawCall{Vertices: []float32{8, 8}})

	if rec.Frames() != 0 || rec.Len() != 1 {
		t.Errorf("after Reset: Frames() = %d, Len() = %d", rec.Frames(), rec.Len())
	}
	calls := old.Calls()
	if len(calls) != 1 || calls[0].Vertices[0] != 7 {
		t.Errorf("earlier recording changed after Reset: %v", calls)
	}
}

func TestPlayback(t *testing.T) {
	src := NewRecorder(50, 50)
	src.Clear(sketch.SkyBlue.GPU())
	src.Draw(sketch.DrawCall{Vertices: []float32{0, 0}, Color: sketch.Green})
	src.Draw(sketch.DrawCall{Vertices: []float32{0.1, 0.1, 0.2, 0.2, 0.3, 0.1}, Color: sketch.Blue})

	dst := NewRecorder(50, 50)
	if err := src.FinishRecording().Playback(dst); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	got := dst.FinishRecording()
	if len(got.Commands()) != 3 {
		t.Fatalf("replayed %d commands, want 3", len(got.Commands()))
	}
	cc, ok := got.Commands()[0].(ClearCommand)
	if !ok || cc.Color != sketch.SkyBlue.GPU() {
		t.Errorf("first command = %#v, want sky blue clear", got.Commands()[0])
	}
	calls := got.Calls()
	if calls[0].Color != sketch.Green || calls[1].Color != sketch.Blue {
		t.Errorf("replayed colors = %v, %v", calls[0].Color, calls[1].Color)
	}
}

func TestPlaybackNilSurface(t *testing.T) {
	r := NewRecorder(1, 1).FinishRecording()
	if err := r.Playback(nil); err != ErrNilSurface {
		t.Errorf("Playback(nil) = %v, want ErrNilSurface", err)
	}
}

func TestRecorderWithCanvas(t *testing.T) {
	rec := NewRecorder(200, 200)
	c, err := sketch.NewCanvas(rec)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}

	if _, err := c.Place(sketch.V2(0, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := c.SetTool(c.Tool().WithKind(sketch.KindCircle).WithSegments(6)); err != nil {
		t.Fatalf("SetTool: %v", err)
	}
	if _, err := c.Place(sketch.V2(0.5, 0.5)); err != nil {
		t.Fatalf("Place: %v", err)
	}

	frame := rec.LastFrame()
	calls := frame.Calls()
	if len(calls) != 1+6 {
		t.Fatalf("last frame has %d draw calls, want 7", len(calls))
	}
	if calls[0].Primitive.Topology != gputypes.PrimitiveTopologyPointList {
		t.Errorf("first call topology = %v, want point list", calls[0].Primitive.Topology)
	}
	for i, call := range calls[1:] {
		if call.Primitive.Topology != gputypes.PrimitiveTopologyTriangleList {
			t.Errorf("wedge %d topology = %v, want triangle list", i, call.Primitive.Topology)
		}
	}
	if rec.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2 (one per redraw)", rec.Frames())
	}
}

func TestRecorderKeepLastFrame(t *testing.T) {
	rec := NewRecorder(100, 100, KeepLastFrame())
	c, err := sketch.NewCanvas(rec, sketch.WithTool(sketch.DefaultTool().WithKind(sketch.KindCircle).WithSegments(4)))
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}

	const shapes = 200
	var early *Recording
	for i := range shapes {
		if _, err := c.Place(sketch.V2(float64(i%20)/20, 0)); err != nil {
			t.Fatalf("Place: %v", err)
		}
		if i == 0 {
			early = rec.LastFrame()
		}
		// one clear plus the wedges of every shape so far
		if want := 1 + (i+1)*4; rec.Len() != want {
			t.Fatalf("after %d shapes Len() = %d, want %d", i+1, rec.Len(), want)
		}
	}

	if rec.Frames() != shapes {
		t.Errorf("Frames() = %d, want %d", rec.Frames(), shapes)
	}
	if n := rec.FinishRecording().Vertices().Len(); n != shapes*4 {
		t.Errorf("vertex pool holds %d buffers, want %d", n, shapes*4)
	}
	if n := len(rec.LastFrame().Calls()); n != shapes*4 {
		t.Errorf("LastFrame has %d calls, want %d", n, shapes*4)
	}

	// a frame taken earlier survives the storage being dropped
	calls := early.Calls()
	if len(calls) != 4 || calls[0].Vertices == nil {
		t.Errorf("first frame = %d calls, want 4 with vertices", len(calls))
	}
}

func TestRecorderKeepsAllFramesByDefault(t *testing.T) {
	rec := NewRecorder(10, 10)
	for range 3 {
		rec.Clear(gputypes.Color{})
		rec.Draw(sketch.DrawCall{Vertices: []float32{0, 0}})
	}
	if rec.Len() != 6 || rec.FinishRecording().Vertices().Len() != 3 {
		t.Errorf("Len() = %d, want every frame kept", rec.Len())
	}
}
