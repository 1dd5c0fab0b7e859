// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides output surfaces for sketch canvases.
//
// Every type here implements sketch.Surface, the two-call rendering
// context a RenderPass draws through (Clear, Draw), and adds an encoder
// for a concrete file format:
//
//   - ImageSurface: CPU rasterization to *image.RGBA, encoded as PNG
//   - SVGSurface: one SVG element per primitive
//
// Point-list vertices become sprites of DrawCall.PointSize pixels.
// Triangle lists honor the face culling configured on the RenderPass.
// Vertices arrive in normalized device coordinates and are mapped to
// pixels with sketch.NDCToPixel.
//
// # Registry
//
// Formats are registered by name and by the file extensions that select
// them:
//
//	s, err := surface.NewSurfaceForFile("out.svg", surface.DefaultOptions(400, 400))
//	if err != nil {
//	    return err
//	}
//	c, err := sketch.NewCanvas(s)
//
// Other formats can be added with Register from an init function:
//
//	func init() {
//	    surface.Register(surface.Format{Name: "pdf", Extensions: []string{"pdf"}, New: newPDF})
//	}
package surface
