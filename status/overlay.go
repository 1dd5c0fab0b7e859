package status

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sketch"
)

// Overlay renders the latest status line onto an image, in the top-left
// corner over a translucent backing box.
type Overlay struct {
	size  float64
	color color.Color
	last  sketch.Status
	seen  bool
}

// NewOverlay returns an overlay drawing text of the given point size.
func NewOverlay(size float64) *Overlay {
	return &Overlay{size: size, color: color.White}
}

// Report implements sketch.StatusSink.
func (o *Overlay) Report(s sketch.Status) {
	o.last = s
	o.seen = true
}

// Draw paints the last status onto dst. It does nothing before the first
// report.
func (o *Overlay) Draw(dst draw.Image) error {
	if !o.seen {
		return nil
	}
	face, err := overlayFace(o.size)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	text := o.last.String()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(o.color),
		Face: face,
	}

	m := face.Metrics()
	pad := m.Height.Ceil() / 4
	width := d.MeasureString(text).Ceil()
	box := image.Rect(0, 0, width+2*pad, m.Height.Ceil()+2*pad).Add(dst.Bounds().Min)
	draw.Draw(dst, box, image.NewUniform(color.NRGBA{A: 0x99}), image.Point{}, draw.Over)

	d.Dot = fixed.Point26_6{
		X: fixed.I(box.Min.X + pad),
		Y: fixed.I(box.Min.Y+pad) + m.Ascent,
	}
	d.DrawString(text)
	return nil
}

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

// overlayFace returns a Go Regular face at size points and 72 DPI.
func overlayFace(size float64) (font.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, goRegularErr
	}
	return opentype.NewFace(goRegular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
