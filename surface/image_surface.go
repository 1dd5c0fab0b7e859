// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"

	"github.com/gogpu/sketch"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Triangles are filled with golang.org/x/image/vector, which gives
// coverage-based anti-aliasing. Points are drawn as squares (or discs, see
// PointStyle) centered on the vertex.
//
// Example:
//
//	s := surface.NewImageSurface(400, 400)
//	defer s.Close()
//
//	c, _ := sketch.NewCanvas(s, sketch.WithBackground(sketch.SkyBlue))
//	c.Place(sketch.V2(0, 0))
//	s.SavePNG("out.png")
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	ras        *vector.Rasterizer
	pointStyle PointStyle
	stats      Stats

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceWithOptions(DefaultOptions(width, height))
}

// NewImageSurfaceWithOptions creates a CPU-based surface from opts.
// Non-positive dimensions are raised to 1.
func NewImageSurfaceWithOptions(opts Options) *ImageSurface {
	width, height := max(opts.Width, 1), max(opts.Height, 1)
	return &ImageSurface{
		width:      width,
		height:     height,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:        vector.NewRasterizer(width, height),
		pointStyle: opts.PointStyle,
	}
}

// Size implements sketch.Surface.
func (s *ImageSurface) Size() (width, height int) {
	return s.width, s.height
}

// Format implements Surface.
func (s *ImageSurface) Format() string {
	return "png"
}

// Stats implements StatsSurface.
func (s *ImageSurface) Stats() Stats {
	return s.stats
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c gputypes.Color) {
	if s.closed {
		return
	}
	s.stats = Stats{}
	fill := image.NewUniform(sketch.FromGPU(c).Color())
	draw.Draw(s.img, s.img.Bounds(), fill, image.Point{}, draw.Src)
}

// Draw rasterizes one primitive. Point and triangle lists are supported;
// other topologies are counted in Stats.Skipped and ignored.
func (s *ImageSurface) Draw(call sketch.DrawCall) {
	if s.closed {
		return
	}
	s.stats.Draws++

	switch call.Primitive.Topology {
	case gputypes.PrimitiveTopologyPointList:
		src := image.NewUniform(call.Color.Color())
		for _, p := range call.Positions() {
			x, y := sketch.NDCToPixel(p, float64(s.width), float64(s.height))
			xs, ys := pointPolygon(x, y, float64(call.PointSize), s.pointStyle)
			s.fillPolygon(xs, ys, src)
		}
	case gputypes.PrimitiveTopologyTriangleList:
		if call.Culled() {
			s.stats.Culled++
			return
		}
		src := image.NewUniform(call.Color.Color())
		pos := call.Positions()
		for i := 0; i+2 < len(pos); i += 3 {
			var xs, ys [3]float64
			for j := range 3 {
				xs[j], ys[j] = sketch.NDCToPixel(pos[i+j], float64(s.width), float64(s.height))
			}
			s.fillPolygon(xs[:], ys[:], src)
		}
	default:
		s.stats.Skipped++
		sketch.Logger().Debug("surface: unsupported topology",
			"topology", call.Primitive.Topology)
	}
}

func (s *ImageSurface) fillPolygon(xs, ys []float64, src image.Image) {
	if len(xs) < 3 {
		return
	}
	s.ras.Reset(s.width, s.height)
	s.ras.DrawOp = draw.Over
	s.ras.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		s.ras.LineTo(float32(xs[i]), float32(ys[i]))
	}
	s.ras.ClosePath()
	s.ras.Draw(s.img, s.img.Bounds(), src, image.Point{})
}

// Image returns the backing image. Drawing continues to modify it.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Encode writes the contents as PNG.
func (s *ImageSurface) Encode(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases resources. Subsequent drawing calls are ignored.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// pointPolygon returns the outline of a point sprite of the given pixel
// size centered on (x, y).
func pointPolygon(x, y, size float64, style PointStyle) (xs, ys []float64) {
	h := size / 2
	if style == PointRound {
		xs = make([]float64, roundPointSegments)
		ys = make([]float64, roundPointSegments)
		for i := range roundPointSegments {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / roundPointSegments)
			xs[i], ys[i] = x+h*cos, y+h*sin
		}
		return xs, ys
	}
	return []float64{x - h, x + h, x + h, x - h},
		[]float64{y - h, y - h, y + h, y + h}
}

var _ StatsSurface = (*ImageSurface)(nil)
