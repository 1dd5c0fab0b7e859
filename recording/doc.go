// Package recording provides a command-capturing sketch.Surface.
//
// A Recorder stands in for a real rendering context: every Clear and Draw
// is stored as a typed command instead of being rasterized. The captured
// Recording can be inspected (which primitives, in which order, with which
// uniforms) and replayed to any other surface, such as the image and SVG
// surfaces in package surface.
//
// # Architecture
//
//   - Recorder: implements sketch.Surface and captures commands
//   - Recording: immutable command list plus its vertex pool
//   - VertexPool: owns copies of the submitted vertex buffers
//
// Commands are typed structs (ClearCommand, DrawCommand) rather than an
// opaque byte stream so that tests can assert on them directly.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(400, 400)
//	c, err := sketch.NewCanvas(rec)
//	if err != nil {
//	    return err
//	}
//	c.Place(sketch.V2(0.5, 0.5))
//
//	for _, call := range rec.LastFrame().Calls() {
//	    fmt.Println(call.Primitive.Topology, call.Vertices)
//	}
//
// # Playback
//
//	img := surface.NewImageSurface(400, 400)
//	if err := rec.FinishRecording().Playback(img); err != nil {
//	    return err
//	}
//	img.SavePNG("out.png")
package recording
