package sketch

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Status is the per-frame report pushed after every full redraw.
type Status struct {
	// Shapes is the number of shapes in the registry.
	Shapes int

	// DrawCalls is the number of primitives submitted.
	DrawCalls int

	// Elapsed is the wall-clock time the redraw took.
	Elapsed time.Duration
}

// Millis returns the elapsed time in milliseconds, truncated.
func (s Status) Millis() int64 {
	return s.Elapsed.Milliseconds()
}

// FPS returns the frame rate implied by Elapsed, truncated to one decimal.
// A zero frame time reports +Inf.
func (s Status) FPS() float64 {
	ms := float64(s.Elapsed) / float64(time.Millisecond)
	if ms <= 0 {
		return math.Inf(1)
	}
	return math.Floor(10000/ms) / 10
}

var statusPrinter = message.NewPrinter(language.English)

// String formats the status line, e.g. "numdot: 1,204 ms: 3 fps: 312.5".
func (s Status) String() string {
	fps := s.FPS()
	if math.IsInf(fps, 1) {
		return statusPrinter.Sprintf("numdot: %d ms: %d fps: inf", s.Shapes, s.Millis())
	}
	return statusPrinter.Sprintf("numdot: %d ms: %d fps: %.1f", s.Shapes, s.Millis(), fps)
}

// StatusSink receives a Status after every redraw.
type StatusSink interface {
	Report(s Status)
}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(Status)

// Report calls f(s).
func (f StatusFunc) Report(s Status) { f(s) }

// discardStatus drops every report.
type discardStatus struct{}

func (discardStatus) Report(Status) {}
