// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch"
)

// SVGSurface renders draw calls as SVG elements: a full-size rect per
// clear, a polygon per triangle and a rect or polygon per point sprite.
//
// Only the most recent frame is kept; Clear starts a new document.
// Encode closes the document on the way out, so it may be called more
// than once.
type SVGSurface struct {
	width, height int
	title         string
	pointStyle    PointStyle

	buf    bytes.Buffer
	canvas *svg.SVG
	stats  Stats
	closed bool
}

// NewSVGSurface creates an SVG surface with the given dimensions.
func NewSVGSurface(width, height int) *SVGSurface {
	return NewSVGSurfaceWithOptions(DefaultOptions(width, height))
}

// NewSVGSurfaceWithOptions creates an SVG surface from opts.
// Non-positive dimensions are raised to 1.
func NewSVGSurfaceWithOptions(opts Options) *SVGSurface {
	s := &SVGSurface{
		width:      max(opts.Width, 1),
		height:     max(opts.Height, 1),
		title:      opts.Title,
		pointStyle: opts.PointStyle,
	}
	s.begin()
	return s
}

func (s *SVGSurface) begin() {
	s.buf.Reset()
	s.canvas = svg.New(&s.buf)
	s.canvas.Decimals = 3
	s.canvas.Start(float64(s.width), float64(s.height))
	if s.title != "" {
		s.canvas.Title(s.title)
	}
}

// Size implements sketch.Surface.
func (s *SVGSurface) Size() (width, height int) {
	return s.width, s.height
}

// Format implements Surface.
func (s *SVGSurface) Format() string {
	return "svg"
}

// Stats implements StatsSurface.
func (s *SVGSurface) Stats() Stats {
	return s.stats
}

// Clear discards the current document and starts a new one filled with c.
func (s *SVGSurface) Clear(c gputypes.Color) {
	if s.closed {
		return
	}
	s.stats = Stats{}
	s.begin()
	s.canvas.Rect(0, 0, float64(s.width), float64(s.height), fillStyle(sketch.FromGPU(c)))
}

// Draw appends the elements for one primitive.
func (s *SVGSurface) Draw(call sketch.DrawCall) {
	if s.closed {
		return
	}
	s.stats.Draws++

	w, h := float64(s.width), float64(s.height)
	style := fillStyle(call.Color)

	switch call.Primitive.Topology {
	case gputypes.PrimitiveTopologyPointList:
		size := float64(call.PointSize)
		for _, p := range call.Positions() {
			x, y := sketch.NDCToPixel(p, w, h)
			if s.pointStyle == PointRound {
				s.canvas.Circle(x, y, size/2, style)
				continue
			}
			s.canvas.CenterRect(x, y, size, size, style)
		}
	case gputypes.PrimitiveTopologyTriangleList:
		if call.Culled() {
			s.stats.Culled++
			return
		}
		pos := call.Positions()
		for i := 0; i+2 < len(pos); i += 3 {
			xs := make([]float64, 3)
			ys := make([]float64, 3)
			for j := range 3 {
				xs[j], ys[j] = sketch.NDCToPixel(pos[i+j], w, h)
			}
			s.canvas.Polygon(xs, ys, style)
		}
	default:
		s.stats.Skipped++
		sketch.Logger().Debug("surface: unsupported topology",
			"topology", call.Primitive.Topology)
	}
}

// Encode writes the current document, closed with </svg>.
func (s *SVGSurface) Encode(w io.Writer) error {
	if _, err := w.Write(s.buf.Bytes()); err != nil {
		return err
	}
	end := svg.New(w)
	end.End()
	return nil
}

// Bytes returns the encoded document.
func (s *SVGSurface) Bytes() []byte {
	var out bytes.Buffer
	_ = s.Encode(&out)
	return out.Bytes()
}

// Close releases resources. Subsequent drawing calls are ignored.
func (s *SVGSurface) Close() error {
	s.closed = true
	return nil
}

// fillStyle returns the SVG style attribute for a solid fill.
func fillStyle(c sketch.RGBA) string {
	n := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	style := fmt.Sprintf("fill:#%02x%02x%02x", n.R, n.G, n.B)
	if c.A < 1 {
		style += fmt.Sprintf(";fill-opacity:%.3g", c.A)
	}
	return style
}

var _ StatsSurface = (*SVGSurface)(nil)
