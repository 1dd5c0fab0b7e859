package sketch

// Registry is the ordered list of placed shapes. Append order is draw
// order: a shape at index i is always rendered before the one at i+1.
//
// Shapes are only ever appended; the list is emptied wholesale by Clear.
// Undo takes back the newest shape onto a redo stack and Redo restores it.
// Any Append or Clear drops the redo stack, since the restored shape would
// no longer follow the canvas it was taken from.
type Registry struct {
	shapes []Shape
	redo   []Shape
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make([]Shape, 0, 64)}
}

// Append adds s at the end of the list and discards the redo history.
func (r *Registry) Append(s Shape) {
	r.shapes = append(r.shapes, s)
	clear(r.redo)
	r.redo = r.redo[:0]
}

// Clear empties the list and the undo/redo history.
func (r *Registry) Clear() {
	clear(r.shapes)
	r.shapes = r.shapes[:0]
	clear(r.redo)
	r.redo = r.redo[:0]
}

// Len returns the number of placed shapes.
func (r *Registry) Len() int {
	return len(r.shapes)
}

// At returns the shape at index i.
func (r *Registry) At(i int) Shape {
	return r.shapes[i]
}

// Shapes returns a copy of the list in draw order.
func (r *Registry) Shapes() []Shape {
	out := make([]Shape, len(r.shapes))
	copy(out, r.shapes)
	return out
}

// Undo removes the newest shape and pushes it onto the redo stack.
// It reports false when the list is empty.
func (r *Registry) Undo() (Shape, bool) {
	n := len(r.shapes)
	if n == 0 {
		return nil, false
	}
	s := r.shapes[n-1]
	r.shapes[n-1] = nil
	r.shapes = r.shapes[:n-1]
	r.redo = append(r.redo, s)
	return s, true
}

// Redo re-appends the most recently undone shape.
// It reports false when there is nothing to redo.
func (r *Registry) Redo() (Shape, bool) {
	n := len(r.redo)
	if n == 0 {
		return nil, false
	}
	s := r.redo[n-1]
	r.redo[n-1] = nil
	r.redo = r.redo[:n-1]
	r.shapes = append(r.shapes, s)
	return s, true
}

// CanRedo reports whether Redo would restore a shape.
func (r *Registry) CanRedo() bool {
	return len(r.redo) > 0
}

// RedoLen returns the depth of the redo history.
func (r *Registry) RedoLen() int {
	return len(r.redo)
}

// Render submits every shape to pass in list order.
func (r *Registry) Render(pass *RenderPass) {
	for _, s := range r.shapes {
		pass.Render(s)
	}
}
