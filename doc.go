// Package sketch provides a retained shape-list canvas model.
//
// # Overview
//
// sketch keeps an ordered list of placed shapes (points, triangles and
// circles), maps pointer input from client space into normalized device
// coordinates and re-renders the entire list on every change. Geometry is
// emitted to a fixed-function [Surface] as flat vertex lists, one draw call
// per primitive, the way a minimal WebGL sketchpad submits it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/surface"
//	)
//
//	s := surface.NewImageSurface(400, 400)
//	c, err := sketch.NewCanvas(s,
//	    sketch.WithBounds(sketch.Rect{Width: 400, Height: 400}),
//	    sketch.WithTool(sketch.DefaultTool().WithKind(sketch.KindCircle)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Place(sketch.V2(0, 0))
//	_ = s.SavePNG("out.png")
//
// # Coordinate System
//
// Shapes live in normalized device coordinates:
//   - Origin (0,0) at the canvas center
//   - X increases right, Y increases up
//   - The visible canvas spans [-1, 1] on both axes
//
// Pointer events arrive in client space (origin top-left, Y down) and are
// converted with [EventToNDC].
//
// # Rendering Model
//
// Every mutation (placing a shape, clearing, undo/redo, rotating) triggers
// a full redraw: the surface is cleared, each shape is rendered in append
// order and a [Status] with the shape count and frame time is pushed to the
// configured [StatusSink]. There is no dirty-region tracking.
//
// A Canvas, its Registry and its RenderPass are meant to be driven from a
// single goroutine and carry no locks.
package sketch
