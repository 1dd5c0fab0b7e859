// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch"
)

func TestSVGSurfaceDocument(t *testing.T) {
	opts := DefaultOptions(200, 100)
	opts.Title = "sketch"
	s := NewSVGSurfaceWithOptions(opts)
	defer s.Close()

	s.Clear(sketch.SkyBlue.GPU())
	s.Draw(triangleCall(sketch.Red, -0.5, -0.5, 0.5, -0.5, 0, 0.5))
	s.Draw(sketch.DrawCall{
		Primitive: gputypes.PrimitiveState{Topology: gputypes.PrimitiveTopologyPointList},
		Vertices:  []float32{0, 0},
		Color:     sketch.RGBA{R: 1, G: 1, B: 1, A: 0.5},
		PointSize: 10,
	})

	out := string(s.Bytes())
	for _, want := range []string{
		`width="200.000"`,
		`<title>sketch</title>`,
		`fill:#45b1ff`,
		`<polygon`,
		`fill:#ff0000`,
		`fill-opacity:0.5`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("document not closed:\n%s", out)
	}

	// The document must be well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("invalid XML: %v", err)
			}
			break
		}
	}
}

func TestSVGSurfaceClearStartsNewDocument(t *testing.T) {
	s := NewSVGSurface(50, 50)
	s.Clear(sketch.Black.GPU())
	s.Draw(triangleCall(sketch.Red, -0.5, -0.5, 0.5, -0.5, 0, 0.5))
	s.Clear(sketch.Black.GPU())

	out := string(s.Bytes())
	if strings.Contains(out, "<polygon") {
		t.Errorf("previous frame leaked into new document:\n%s", out)
	}
	if n := strings.Count(out, "<svg"); n != 1 {
		t.Errorf("found %d <svg> elements, want 1", n)
	}
	if s.Stats().Draws != 0 {
		t.Errorf("Stats().Draws = %d after clear, want 0", s.Stats().Draws)
	}
}

func TestSVGSurfaceEncodeIdempotent(t *testing.T) {
	s := NewSVGSurface(10, 10)
	s.Clear(sketch.White.GPU())

	var a, b bytes.Buffer
	if err := s.Encode(&a); err != nil {
		t.Fatal(err)
	}
	if err := s.Encode(&b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("repeated Encode produced different output")
	}
}

func TestSVGSurfaceCulling(t *testing.T) {
	s := NewSVGSurface(10, 10)
	s.Clear(sketch.White.GPU())

	call := triangleCall(sketch.Red, -0.5, -0.5, 0, 0.5, 0.5, -0.5)
	call.Primitive.CullMode = gputypes.CullModeBack
	s.Draw(call)

	if strings.Contains(string(s.Bytes()), "<polygon") {
		t.Error("back-facing triangle was emitted")
	}
	if s.Stats().Culled != 1 {
		t.Errorf("Stats().Culled = %d, want 1", s.Stats().Culled)
	}
}

func TestPointPolygon(t *testing.T) {
	xs, ys := pointPolygon(10, 20, 4, PointSquare)
	if len(xs) != 4 || xs[0] != 8 || xs[1] != 12 || ys[0] != 18 || ys[2] != 22 {
		t.Errorf("square = %v %v", xs, ys)
	}

	xs, ys = pointPolygon(0, 0, 2, PointRound)
	if len(xs) != roundPointSegments {
		t.Fatalf("round sprite has %d vertices, want %d", len(xs), roundPointSegments)
	}
	for i := range xs {
		r := xs[i]*xs[i] + ys[i]*ys[i]
		if r < 0.999 || r > 1.001 {
			t.Errorf("vertex %d at radius^2 %v, want 1", i, r)
		}
	}
}

func TestPointStyleString(t *testing.T) {
	if PointSquare.String() != "square" || PointRound.String() != "round" || PointStyle(9).String() != "unknown" {
		t.Error("unexpected PointStyle names")
	}
}
