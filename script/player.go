package script

import (
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/sketch"
)

// Player replays a Script against a canvas. It is the pointer event
// source for every canvas it plays into.
type Player struct {
	script   Script
	handlers []func(gpucontext.PointerEvent)
	attached map[*sketch.Canvas]bool

	x, y    float64
	buttons gpucontext.Buttons
	clock   time.Duration
}

var _ gpucontext.PointerEventSource = (*Player)(nil)

// NewPlayer creates a player for s.
func NewPlayer(s Script) *Player {
	return &Player{script: s}
}

// OnPointer implements gpucontext.PointerEventSource.
func (p *Player) OnPointer(fn func(gpucontext.PointerEvent)) {
	p.handlers = append(p.handlers, fn)
}

// Play runs every step in order against c. The first Play into a canvas
// attaches it to the player; later calls reuse that subscription. It
// stops at the first step that fails.
func (p *Player) Play(c *sketch.Canvas) error {
	if !p.attached[c] {
		if p.attached == nil {
			p.attached = make(map[*sketch.Canvas]bool)
		}
		c.Attach(p)
		p.attached[c] = true
	}
	for i, st := range p.script.Steps {
		if err := p.step(c, st); err != nil {
			return fmt.Errorf("script: step %d: %w", i, err)
		}
	}
	return nil
}

func (p *Player) step(c *sketch.Canvas, st Step) error {
	switch {
	case st.Tool != nil:
		return c.SetTool(st.Tool.apply(c.Tool()))
	case st.Channel != nil:
		return c.SetTool(c.Tool().WithChannel(st.Channel.Index, st.Channel.Value/100))
	case st.Down != nil:
		p.buttons |= gpucontext.ButtonsLeft
		p.emit(gpucontext.PointerDown, st.Down[0], st.Down[1], gpucontext.ButtonLeft)
	case st.Move != nil:
		p.emit(gpucontext.PointerMove, st.Move[0], st.Move[1], gpucontext.ButtonNone)
	case st.Up != nil:
		p.buttons &^= gpucontext.ButtonsLeft
		p.emit(gpucontext.PointerUp, st.Up[0], st.Up[1], gpucontext.ButtonLeft)
	case st.Drag != nil:
		x0, y0 := p.x, p.y
		n := st.Drag.Steps
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			p.emit(gpucontext.PointerMove,
				x0+(st.Drag.To[0]-x0)*t, y0+(st.Drag.To[1]-y0)*t, gpucontext.ButtonNone)
		}
	case st.Rotate != nil:
		c.SetRotation(*st.Rotate)
	case st.Clear:
		c.Clear()
	case st.Undo > 0:
		for range st.Undo {
			if !c.Undo() {
				break
			}
		}
	case st.Redo > 0:
		for range st.Redo {
			if !c.Redo() {
				break
			}
		}
	case st.Art != "":
		art, err := LoadArt(st.Art)
		if err != nil {
			return err
		}
		shapes, err := art.Build()
		if err != nil {
			return err
		}
		c.Load(shapes)
	default:
		return ErrEmptyStep
	}
	return nil
}

// emit delivers one pointer event to every handler.
func (p *Player) emit(typ gpucontext.PointerEventType, x, y float64, button gpucontext.Button) {
	p.x, p.y = x, y
	p.clock += time.Millisecond
	ev := gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   1,
		X:           x,
		Y:           y,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Button:      button,
		Buttons:     p.buttons,
		Timestamp:   p.clock,
	}
	if p.buttons != 0 {
		ev.Pressure = 0.5
	}
	for _, h := range p.handlers {
		h(ev)
	}
}

// apply returns base with the fields set in t replaced.
func (t Tool) apply(base sketch.Tool) sketch.Tool {
	if t.Kind != nil {
		base = base.WithKind(*t.Kind)
	}
	switch len(t.Color) {
	case 3:
		base = base.WithColor(sketch.RGB(t.Color[0], t.Color[1], t.Color[2]))
	case 4:
		base = base.WithColor(sketch.RGBA{R: t.Color[0], G: t.Color[1], B: t.Color[2], A: t.Color[3]})
	}
	if t.Size != 0 {
		base = base.WithSize(t.Size)
	}
	if t.Segments != 0 {
		base = base.WithSegments(t.Segments)
	}
	return base
}
