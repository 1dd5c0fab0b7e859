// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// PointStyle selects how point-list vertices are rasterized.
type PointStyle uint8

const (
	// PointSquare draws an axis-aligned square of PointSize pixels,
	// like gl_PointSize sprites.
	PointSquare PointStyle = iota

	// PointRound draws a disc of diameter PointSize.
	PointRound
)

// String returns the style name.
func (p PointStyle) String() string {
	switch p {
	case PointSquare:
		return "square"
	case PointRound:
		return "round"
	default:
		return "unknown"
	}
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// PointStyle selects the point sprite shape.
	PointStyle PointStyle

	// Title is embedded in document formats that support it (SVG).
	Title string
}

// DefaultOptions returns options with the given dimensions and defaults.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		PointStyle: PointSquare,
	}
}

// roundPointSegments is the polygon resolution of PointRound sprites.
const roundPointSegments = 16
