package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear CommandType = iota // Clear the surface
	CmdDraw                     // Submit one primitive
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear: "Clear",
	CmdDraw:  "Draw",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// VertexRef is a reference to a vertex buffer in the pool.
// The zero value is a valid reference to the first buffer (if any).
type VertexRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid buffer.
func (r VertexRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// ClearCommand fills the whole surface with a color.
type ClearCommand struct {
	Color gputypes.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// DrawCommand submits one primitive. The vertex data lives in the pool;
// every other DrawCall field is stored inline.
type DrawCommand struct {
	Primitive      gputypes.PrimitiveState
	Vertices       VertexRef
	Color          sketch.RGBA
	PointSize      float32
	Model          sketch.Mat4
	GlobalRotation sketch.Mat4
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }
