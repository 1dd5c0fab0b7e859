package status

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/gogpu/sketch"
)

// Writer prints one status line per frame.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewWriter returns a sink that writes Status.String() lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Report implements sketch.StatusSink. The first write error is kept and
// later reports are dropped.
func (w *Writer) Report(s sketch.Status) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.w, s.String())
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Log emits a structured record per frame.
type Log struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLog returns a sink logging at level through l. A nil logger uses
// the package logger of sketch.
func NewLog(l *slog.Logger, level slog.Level) *Log {
	return &Log{logger: l, level: level}
}

// Report implements sketch.StatusSink.
func (l *Log) Report(s sketch.Status) {
	logger := l.logger
	if logger == nil {
		logger = sketch.Logger()
	}
	logger.Log(context.Background(), l.level, "sketch: frame",
		"shapes", s.Shapes,
		"draw_calls", s.DrawCalls,
		"elapsed", s.Elapsed,
	)
}

// Multi returns a sink that forwards every report to each of sinks, in
// order. Nil entries are skipped.
func Multi(sinks ...sketch.StatusSink) sketch.StatusSink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multi []sketch.StatusSink

func (m multi) Report(s sketch.Status) {
	for _, sink := range m {
		sink.Report(s)
	}
}

// Last remembers the most recent report.
type Last struct {
	mu sync.Mutex
	s  sketch.Status
	n  int
}

// Report implements sketch.StatusSink.
func (l *Last) Report(s sketch.Status) {
	l.mu.Lock()
	l.s = s
	l.n++
	l.mu.Unlock()
}

// Status returns the last report and how many were received.
func (l *Last) Status() (sketch.Status, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s, l.n
}
