// Package status provides sinks for the per-frame report a sketch.Canvas
// pushes after every redraw.
//
// A sink receives a sketch.Status and turns it into something visible:
//
//   - Writer: one status line per frame on an io.Writer
//   - Log: a structured slog record per frame
//   - Board: named text slots, the stand-in for page elements
//   - Metrics: Prometheus frame counters and timings
//   - Overlay: the status line rendered onto an image
//
// Multi fans a report out to several sinks.
package status
