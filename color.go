package sketch

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1], matching the u_FragColor uniform.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// GPU returns the color as a gputypes.Color, the clear-color form surfaces consume.
func (c RGBA) GPU() gputypes.Color {
	return gputypes.NewColor(c.R, c.G, c.B, c.A)
}

// FromGPU converts a gputypes.Color back to RGBA.
func FromGPU(c gputypes.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{R: r, G: g, B: b, A: a}
}

// Float32s returns the components in uniform upload order.
func (c RGBA) Float32s() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Valid reports whether every channel lies in [0, 1].
func (c RGBA) Valid() bool {
	for _, v := range [...]float64{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// WithChannel returns a copy of c with channel i (0=R, 1=G, 2=B, 3=A) set to v.
// Out-of-range indices return c unchanged.
func (c RGBA) WithChannel(i int, v float64) RGBA {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	}
	return c
}

// String formats the color as rgba(r, g, b, a) with 0-255 channels.
func (c RGBA) String() string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", n.R, n.G, n.B, c.A)
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (leading # optional).
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return RGBA{}, fmt.Errorf("sketch: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("sketch: invalid hex color %q: %w", s, err)
	}
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)

	// SkyBlue is the clear color of the rotating scene.
	SkyBlue = RGB(0.271, 0.694, 1.0)
)
