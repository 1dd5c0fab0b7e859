// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Format is an output format a surface encodes to.
type Format struct {
	// Name selects the format explicitly, e.g. on the command line.
	Name string

	// Extensions are the file extensions, without the dot, that select
	// the format from an output path. Matching is case-insensitive.
	Extensions []string

	// New creates a surface. Options are validated before it is called.
	New Factory
}

// Errors.
var (
	// ErrUnknownFormat is returned when no format matches a name or path.
	ErrUnknownFormat = errors.New("surface: unknown format")

	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("surface: width and height must be positive")
)

// Registry maps format names and file extensions to surface factories.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
	exts    map[string]string
}

// NewRegistry creates an empty registry. Most code uses the package-level
// functions, which share a registry holding the built-in formats.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
		exts:    make(map[string]string),
	}
}

// Register adds f. Names and extensions must not already be taken.
func (r *Registry) Register(f Format) error {
	if f.Name == "" || f.New == nil {
		return fmt.Errorf("surface: format %q needs a name and a factory", f.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.formats[f.Name]; dup {
		return fmt.Errorf("surface: format %q registered twice", f.Name)
	}
	exts := make([]string, len(f.Extensions))
	for i, ext := range f.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if owner, dup := r.exts[ext]; dup {
			return fmt.Errorf("surface: extension %q already belongs to %q", ext, owner)
		}
		exts[i] = ext
	}

	f.Extensions = exts
	r.formats[f.Name] = f
	for _, ext := range exts {
		r.exts[ext] = f.Name
	}
	return nil
}

// Formats returns the registered format names in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[name]
	return f, ok
}

// ForFile returns the format selected by the extension of path.
func (r *Registry) ForFile(path string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return Format{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.exts[ext]
	if !ok {
		return Format{}, false
	}
	return r.formats[name], true
}

// NewSurfaceByName creates a surface of the named format.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return newSurface(f, opts)
}

// NewSurfaceForFile creates a surface of the format selected by the
// extension of path.
func (r *Registry) NewSurfaceForFile(path string, opts Options) (Surface, error) {
	f, ok := r.ForFile(path)
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrUnknownFormat, path)
	}
	return newSurface(f, opts)
}

func newSurface(f Format, opts Options) (Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return f.New(opts)
}

var defaultRegistry = NewRegistry()

// Register adds f to the default registry. It panics if the name or an
// extension is already taken, so it belongs in an init function.
func Register(f Format) {
	if err := defaultRegistry.Register(f); err != nil {
		panic(err)
	}
}

// Formats returns the names of the formats in the default registry.
func Formats() []string {
	return defaultRegistry.Formats()
}

// NewSurfaceByName creates a surface of the named format.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return defaultRegistry.NewSurfaceByName(name, opts)
}

// NewSurfaceForFile creates a surface whose format matches the extension
// of path, case-insensitively.
func NewSurfaceForFile(path string, opts Options) (Surface, error) {
	return defaultRegistry.NewSurfaceForFile(path, opts)
}

func init() {
	Register(Format{
		Name:       "png",
		Extensions: []string{"png"},
		New: func(opts Options) (Surface, error) {
			return NewImageSurfaceWithOptions(opts), nil
		},
	})
	Register(Format{
		Name:       "svg",
		Extensions: []string{"svg"},
		New: func(opts Options) (Surface, error) {
			return NewSVGSurfaceWithOptions(opts), nil
		},
	})
}
