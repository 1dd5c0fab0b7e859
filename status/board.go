package status

import (
	"sync"

	"github.com/gogpu/sketch"
)

// Board holds the text of named display elements, keyed by element id.
// Only ids declared in NewBoard exist.
type Board struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewBoard creates a board with the given element ids, all empty.
func NewBoard(ids ...string) *Board {
	b := &Board{slots: make(map[string]string, len(ids))}
	for _, id := range ids {
		b.slots[id] = ""
	}
	return b
}

// Set replaces the text of element id. A missing element is logged and
// the call does nothing. It reports whether the element exists.
func (b *Board) Set(id, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.slots[id]; !ok {
		sketch.Logger().Warn("status: failed to get element", "id", id)
		return false
	}
	b.slots[id] = text
	return true
}

// Text returns the text of element id.
func (b *Board) Text(id string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.slots[id]
	return t, ok
}

// Sink returns a StatusSink writing the status line into element id.
func (b *Board) Sink(id string) sketch.StatusSink {
	return sketch.StatusFunc(func(s sketch.Status) {
		b.Set(id, s.String())
	})
}
