package recording

// VertexPool stores the vertex buffers referenced by draw commands.
// Each Add copies the data, so callers may reuse their slices.
//
// VertexPool is not safe for concurrent use.
type VertexPool struct {
	buffers [][]float32
	floats  int
}

// NewVertexPool creates an empty pool with pre-allocated capacity.
func NewVertexPool() *VertexPool {
	return &VertexPool{buffers: make([][]float32, 0, 256)}
}

// Add copies v into the pool and returns its reference.
func (p *VertexPool) Add(v []float32) VertexRef {
	buf := make([]float32, len(v))
	copy(buf, v)
	p.buffers = append(p.buffers, buf)
	p.floats += len(v)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return VertexRef(uint32(len(p.buffers) - 1))
}

// Get returns the buffer for ref, or nil if the reference is invalid.
// The returned slice must not be modified.
func (p *VertexPool) Get(ref VertexRef) []float32 {
	if int(ref) >= len(p.buffers) {
		return nil
	}
	return p.buffers[ref]
}

// Len returns the number of buffers in the pool.
func (p *VertexPool) Len() int {
	return len(p.buffers)
}

// Floats returns the total number of floats stored.
func (p *VertexPool) Floats() int {
	return p.floats
}

// Clear removes all buffers, keeping allocated capacity.
func (p *VertexPool) Clear() {
	clear(p.buffers)
	p.buffers = p.buffers[:0]
	p.floats = 0
}
