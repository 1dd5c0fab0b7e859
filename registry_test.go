package sketch

import "testing"

func mustPoint(t *testing.T, x float64) Point {
	t.Helper()
	p, err := NewPoint(V2(x, 0), White, 5)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRegistryAppendOrder(t *testing.T) {
	r := NewRegistry()
	for i := range 5 {
		r.Append(mustPoint(t, float64(i)))
	}
	if r.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", r.Len())
	}
	for i, s := range r.Shapes() {
		if s.(Point).Position.X != float64(i) || r.At(i) != s {
			t.Errorf("shape %d out of order: %v", i, s)
		}
	}

	// Shapes returns a copy
	shapes := r.Shapes()
	shapes[0] = nil
	if r.At(0) == nil {
		t.Error("Shapes() aliases the registry")
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	r.Append(mustPoint(t, 1))
	r.Append(mustPoint(t, 2))
	r.Undo()
	r.Clear()
	if r.Len() != 0 || r.CanRedo() {
		t.Errorf("after Clear: Len=%d CanRedo=%v", r.Len(), r.CanRedo())
	}
	r.Clear()
	if r.Len() != 0 {
		t.Error("Clear on an empty registry should be a no-op")
	}
}

func TestRegistryUndoRedo(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Undo(); ok {
		t.Error("Undo on empty registry should report false")
	}
	if _, ok := r.Redo(); ok {
		t.Error("Redo with no history should report false")
	}

	a, b, c := mustPoint(t, 1), mustPoint(t, 2), mustPoint(t, 3)
	r.Append(a)
	r.Append(b)
	r.Append(c)

	if s, ok := r.Undo(); !ok || s != c {
		t.Fatalf("Undo() = %v, %v, want c", s, ok)
	}
	if s, ok := r.Undo(); !ok || s != b {
		t.Fatalf("Undo() = %v, %v, want b", s, ok)
	}
	if r.Len() != 1 || r.RedoLen() != 2 {
		t.Fatalf("Len=%d RedoLen=%d, want 1, 2", r.Len(), r.RedoLen())
	}
	if s, ok := r.Redo(); !ok || s != b {
		t.Fatalf("Redo() = %v, %v, want b", s, ok)
	}

	// a new shape drops the redo history
	r.Append(mustPoint(t, 4))
	if r.CanRedo() {
		t.Error("Append should discard the redo history")
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistryAppendReleasesRedo(t *testing.T) {
	r := NewRegistry()
	r.Append(mustPoint(t, 1))
	r.Append(mustPoint(t, 2))
	r.Undo()
	r.Undo()
	r.Append(mustPoint(t, 3))

	if _, ok := r.Redo(); ok {
		t.Fatal("Redo() after Append should have nothing to restore")
	}
	for i, s := range r.redo[:cap(r.redo)] {
		if s != nil {
			t.Errorf("redo backing array [%d] still holds %v", i, s)
		}
	}
}
