// Command sketchpad replays a drawing script onto the shape canvas and
// saves the final frame.
//
// Usage:
//
//	sketchpad [-script session.yaml] [-output out.png] [-format png] [-svg out.svg]
//	sketchpad vec -op angle -v1 1,0,0 -v2 0,1,0
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/recording"
	"github.com/gogpu/sketch/script"
	"github.com/gogpu/sketch/status"
	"github.com/gogpu/sketch/surface"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "vec" {
		if err := runVec(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	var (
		scriptPath = flag.String("script", "", "replay script (default: draw the snakes art)")
		width      = flag.Int("width", 0, "canvas width, overrides the script")
		height     = flag.Int("height", 0, "canvas height, overrides the script")
		output     = flag.String("output", "sketch.png", "PNG output file, empty to skip")
		format     = flag.String("format", "", "format of -output: "+strings.Join(surface.Formats(), ", ")+" (default: from its extension)")
		svgOut     = flag.String("svg", "", "SVG output file")
		round      = flag.Bool("round", false, "draw round point sprites")
		overlay    = flag.Bool("overlay", false, "draw the status line onto the PNG")
		metrics    = flag.String("metrics", "", "write frame metrics in text format to this file")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	if *width > 0 {
		s.Canvas.Width = *width
	}
	if *height > 0 {
		s.Canvas.Height = *height
	}
	bg, ok, err := s.Background()
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		bg = sketch.Black
	}

	reg := prometheus.NewRegistry()
	ov := status.NewOverlay(14)
	last := &status.Last{}
	sinks := []sketch.StatusSink{
		last,
		status.NewLog(nil, slog.LevelDebug),
		status.NewMetrics(reg),
	}
	if *overlay {
		sinks = append(sinks, ov)
	}

	rec := recording.NewRecorder(s.Canvas.Width, s.Canvas.Height, recording.KeepLastFrame())
	c, err := sketch.NewCanvas(rec,
		sketch.WithBackground(bg),
		sketch.WithStatus(status.Multi(sinks...)))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	if err := script.NewPlayer(s).Play(c); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
	c.RenderAll()
	frame := rec.LastFrame()

	opts := surface.DefaultOptions(s.Canvas.Width, s.Canvas.Height)
	if *round {
		opts.PointStyle = surface.PointRound
	}
	opts.Title = "sketch"
	if *scriptPath != "" {
		opts.Title = *scriptPath
	}

	for _, out := range []struct{ path, format string }{
		{*output, *format},
		{*svgOut, "svg"},
	} {
		if out.path == "" {
			continue
		}
		if err := save(out.path, out.format, frame, opts, ov, *overlay); err != nil {
			log.Fatalf("Failed to save %s: %v", out.path, err)
		}
		log.Printf("Saved %s (%dx%d)\n", out.path, s.Canvas.Width, s.Canvas.Height)
	}

	if *metrics != "" {
		if err := writeMetrics(*metrics, reg); err != nil {
			log.Fatalf("Failed to write metrics: %v", err)
		}
	}

	st, frames := last.Status()
	fmt.Printf("%s frames: %d\n", st, frames)
}

func loadScript(path string) (script.Script, error) {
	if path == "" {
		return script.Parse([]byte("steps:\n  - art: snakes\n"))
	}
	return script.Load(path)
}

// save plays the frame back onto a surface of the given format, or the
// one picked by the file extension when format is empty.
func save(path, format string, frame *recording.Recording, opts surface.Options, ov *status.Overlay, withOverlay bool) error {
	var (
		surf surface.Surface
		err  error
	)
	if format != "" {
		surf, err = surface.NewSurfaceByName(format, opts)
	} else {
		surf, err = surface.NewSurfaceForFile(path, opts)
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = surf.Close()
	}()

	if err := frame.Playback(surf); err != nil {
		return err
	}
	if img, ok := surf.(*surface.ImageSurface); ok && withOverlay {
		if err := ov.Draw(img.Image()); err != nil {
			return err
		}
	}

	f, err := os.Create(path) //nolint:gosec // path comes from flags
	if err != nil {
		return err
	}
	if err := surf.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeMetrics(path string, g prometheus.Gatherer) error {
	f, err := os.Create(path) //nolint:gosec // path comes from flags
	if err != nil {
		return err
	}
	if err := status.WriteText(f, g); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// runVec prints one of the vector operations for two 3-vectors.
func runVec(args []string) error {
	fs := flag.NewFlagSet("vec", flag.ExitOnError)
	var (
		op     = fs.String("op", "add", "add, sub, mul, div, magnitude, normalize, angle, area")
		v1s    = fs.String("v1", "1,0,0", "first vector x,y,z")
		v2s    = fs.String("v2", "0,1,0", "second vector x,y,z")
		scalar = fs.Float64("scalar", 1, "scalar for mul and div")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	v1, err := parseVec3(*v1s)
	if err != nil {
		return err
	}
	v2, err := parseVec3(*v2s)
	if err != nil {
		return err
	}

	switch *op {
	case "add":
		fmt.Println(v1.Add(v2))
	case "sub":
		fmt.Println(v1.Sub(v2))
	case "mul":
		fmt.Println(v1.Mul(*scalar), v2.Mul(*scalar))
	case "div":
		fmt.Println(v1.Div(*scalar), v2.Div(*scalar))
	case "magnitude":
		fmt.Printf("Magnitude v1: %g\nMagnitude v2: %g\n", v1.Magnitude(), v2.Magnitude())
	case "normalize":
		fmt.Println(v1.Normalize(), v2.Normalize())
	case "angle":
		fmt.Printf("Angle: %g\n", sketch.AngleBetween(v1, v2))
	case "area":
		fmt.Printf("Area of the triangle: %g\n", sketch.AreaTriangle(v1, v2))
	default:
		return fmt.Errorf("unknown op %q", *op)
	}
	return nil
}

func parseVec3(s string) (sketch.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return sketch.Vec3{}, fmt.Errorf("vector %q: want x,y,z", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return sketch.Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		xyz[i] = f
	}
	return sketch.V3(xyz[0], xyz[1], xyz[2]), nil
}
