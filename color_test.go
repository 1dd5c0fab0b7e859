package sketch

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#f00", Red, false},
		{"00ff00", Green, false},
		{"#0000ffff", Blue, false},
		{"#00000000", RGBA{}, false},
		{"#12345", RGBA{}, true},
		{"zzzzzz", RGBA{}, true},
		{"", RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA_Color(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.Color().(color.NRGBA)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}

	// out-of-range channels clamp
	got = RGBA{R: 2, G: -1, B: 0, A: 1}.Color().(color.NRGBA)
	if got.R != 255 || got.G != 0 {
		t.Errorf("Color() = %v, want clamped", got)
	}
}

func TestRGBA_Valid(t *testing.T) {
	tests := []struct {
		c    RGBA
		want bool
	}{
		{White, true},
		{RGBA{}, true},
		{RGBA{R: 1.01, A: 1}, false},
		{RGBA{G: -0.1, A: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestRGBA_WithChannel(t *testing.T) {
	c := White.WithChannel(1, 0).WithChannel(2, 0)
	if c != Red {
		t.Errorf("WithChannel = %v, want red", c)
	}
	if got := Red.WithChannel(7, 0.5); got != Red {
		t.Errorf("WithChannel(7) = %v, want unchanged", got)
	}
}

func TestRGBA_GPU(t *testing.T) {
	c := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	if got := FromGPU(c.GPU()); got != c {
		t.Errorf("FromGPU(GPU()) = %v, want %v", got, c)
	}
	if got := c.Float32s(); got != [4]float32{0.25, 0.5, 0.75, 1} {
		t.Errorf("Float32s() = %v", got)
	}
}

func TestRGBA_String(t *testing.T) {
	if got := Red.String(); got != "rgba(255, 0, 0, 1)" {
		t.Errorf("String() = %q", got)
	}
}
