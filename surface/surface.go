// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"io"

	"github.com/gogpu/sketch"
)

// Surface is a sketch.Surface that produces an output document.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(400, 400)
//	defer s.Close()
//
//	c, err := sketch.NewCanvas(s)
//	...
//	f, _ := os.Create("out." + s.Format())
//	s.Encode(f)
type Surface interface {
	sketch.Surface

	// Format returns the output format name, which is also the
	// conventional file extension ("png", "svg").
	Format() string

	// Encode writes the current contents in the surface's format.
	Encode(w io.Writer) error

	// Close releases all resources associated with the surface.
	// After Close, drawing calls are ignored.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Stats counts the primitives a surface has processed since the last clear.
type Stats struct {
	// Draws is the number of draw calls received.
	Draws int

	// Culled is the number of triangle calls discarded by face culling.
	Culled int

	// Skipped is the number of calls with an unsupported topology.
	Skipped int
}

// StatsSurface is an optional interface for surfaces that count draws.
type StatsSurface interface {
	Surface

	// Stats returns the counters for the current frame.
	Stats() Stats
}
