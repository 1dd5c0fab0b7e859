package recording

import (
	"testing"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdClear, "Clear"},
		{CmdDraw, "Draw"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommand_Type(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want CommandType
	}{
		{"clear", ClearCommand{}, CmdClear},
		{"draw", DrawCommand{}, CmdDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVertexRef_IsValid(t *testing.T) {
	if !VertexRef(0).IsValid() {
		t.Error("VertexRef(0) should be valid")
	}
	if VertexRef(InvalidRef).IsValid() {
		t.Error("VertexRef(InvalidRef) should be invalid")
	}
}
