package recording

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch"
)

// ErrNilSurface is returned by Playback when the target surface is nil.
var ErrNilSurface = errors.New("recording: playback target is nil")

// Recorder is a sketch.Surface that captures every clear and draw call as
// a command instead of rasterizing. Use FinishRecording to obtain an
// immutable Recording that can be replayed to other surfaces, or
// LastFrame to inspect only what the most recent redraw submitted.
//
// Example:
//
//	rec := recording.NewRecorder(400, 400)
//	c, _ := sketch.NewCanvas(rec)
//	c.Place(sketch.V2(0, 0))
//	frame := rec.LastFrame()
//	frame.Playback(surface.NewImageSurface(400, 400))
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	vertices      *VertexPool
	keepLast      bool

	// index of the most recent ClearCommand, -1 before the first
	frameStart int
	frames     int
}

// RecorderOption configures a Recorder during creation.
type RecorderOption func(*Recorder)

// KeepLastFrame makes every Clear discard the commands and vertices of
// earlier frames, so memory stays proportional to a single frame.
// FinishRecording then returns only the most recent frame. Recordings
// obtained before a Clear are unaffected.
func KeepLastFrame() RecorderOption {
	return func(r *Recorder) {
		r.keepLast = true
	}
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 256),
		vertices:   NewVertexPool(),
		frameStart: -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size implements sketch.Surface.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Clear implements sketch.Surface. Each clear starts a new frame.
func (r *Recorder) Clear(c gputypes.Color) {
	if r.keepLast && len(r.commands) > 0 {
		// fresh storage: earlier LastFrame results still reference the old
		r.commands = make([]Command, 0, len(r.commands))
		r.vertices = NewVertexPool()
	}
	r.frameStart = len(r.commands)
	r.frames++
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// Draw implements sketch.Surface. The vertex data is copied.
func (r *Recorder) Draw(call sketch.DrawCall) {
	r.commands = append(r.commands, DrawCommand{
		Primitive:      call.Primitive,
		Vertices:       r.vertices.Add(call.Vertices),
		Color:          call.Color,
		PointSize:      call.PointSize,
		Model:          call.Model,
		GlobalRotation: call.GlobalRotation,
	})
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Frames returns the number of clears recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
		vertices: r.vertices,
	}
}

// LastFrame returns the commands from the most recent clear onwards.
// Before any clear it returns everything recorded. The Recorder stays
// usable; later commands do not appear in the returned Recording.
func (r *Recorder) LastFrame() *Recording {
	start := max(r.frameStart, 0)
	cmds := r.commands[start:len(r.commands):len(r.commands)]
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: cmds,
		vertices: r.vertices,
	}
}

// Reset discards all commands. Recordings obtained earlier stay valid.
func (r *Recorder) Reset() {
	r.commands = make([]Command, 0, cap(r.commands))
	r.vertices = NewVertexPool()
	r.frameStart = -1
	r.frames = 0
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any sketch.Surface.
type Recording struct {
	width, height int
	commands      []Command
	vertices      *VertexPool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Vertices returns the vertex pool.
func (r *Recording) Vertices() *VertexPool {
	return r.vertices
}

// Call resolves a DrawCommand into the DrawCall it was recorded from.
func (r *Recording) Call(c DrawCommand) sketch.DrawCall {
	return sketch.DrawCall{
		Primitive:      c.Primitive,
		Vertices:       r.vertices.Get(c.Vertices),
		Color:          c.Color,
		PointSize:      c.PointSize,
		Model:          c.Model,
		GlobalRotation: c.GlobalRotation,
	}
}

// Calls returns every recorded draw call in submission order.
func (r *Recording) Calls() []sketch.DrawCall {
	out := make([]sketch.DrawCall, 0, len(r.commands))
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawCommand); ok {
			out = append(out, r.Call(c))
		}
	}
	return out
}

// Playback replays the recording to the given surface.
func (r *Recording) Playback(dst sketch.Surface) error {
	if dst == nil {
		return ErrNilSurface
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			dst.Clear(c.Color)
		case DrawCommand:
			dst.Draw(r.Call(c))
		}
	}
	return nil
}
