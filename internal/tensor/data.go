package tensor

import "sync"

// Data is a host-accessible snapshot of a tensor: its shape plus a flat,
// row-major sequence of element values. It is the boundary artifact handed
// to serialization or inspection code, and the input of the from-data
// primitive. Round-tripping a tensor through materialize and load must
// reproduce an observationally identical tensor on every backend.
type Data[E Elem] struct {
	Values []E
	Shape  Shape
}

// NewData creates a snapshot from a flat value sequence and a shape.
// The number of values must match the shape's element count.
func NewData[E Elem](values []E, shape Shape) Data[E] {
	if len(values) != shape.NumElements() {
		Errf("data", ErrShapeMismatch, "%d values for shape %v (%d elements)",
			len(values), shape, shape.NumElements())
	}
	return Data[E]{Values: values, Shape: shape.Clone()}
}

// Equal reports whether two snapshots have the same shape and values.
func (d Data[E]) Equal(other Data[E]) bool {
	if !d.Shape.Equal(other.Shape) {
		return false
	}
	for i := range d.Values {
		if d.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}

// Reader is a lazily-resolved materialization result.
//
// Materialization is the contract's single designated suspension point:
// a backend may batch, pipeline, or transfer data asynchronously, and the
// caller must explicitly Read before using the snapshot. Resolution runs
// at most once; concurrent readers block until the first Read completes.
type Reader[E Elem] struct {
	resolve func() Data[E]
	once    sync.Once
	data    Data[E]
}

// NewReader creates a Reader whose snapshot is produced by resolve on the
// first Read. The resolve function runs at most once.
func NewReader[E Elem](resolve func() Data[E]) *Reader[E] {
	return &Reader[E]{resolve: resolve}
}

// ReaderFromData creates an already-resolved Reader. Backends whose storage
// is immediately host-readable use this to satisfy the asynchronous
// materialization contract without deferring work.
func ReaderFromData[E Elem](data Data[E]) *Reader[E] {
	r := &Reader[E]{}
	r.once.Do(func() { r.data = data })
	return r
}

// Read resolves the materialization if needed and returns the snapshot.
// Safe for concurrent use.
func (r *Reader[E]) Read() Data[E] {
	r.once.Do(func() {
		r.data = r.resolve()
		r.resolve = nil
	})
	return r.data
}
