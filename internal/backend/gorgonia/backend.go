// Package gorgonia implements the integer tensor operation contract on
// the gorgonia.org/tensor dense engine.
//
// Dense arithmetic, comparisons, reductions, concatenation, and the float
// power operations run on the gorgonia engine over zero-copy views of the
// tensor's host storage. Indexing-class primitives (slice, gather,
// scatter, select, masking) execute on the embedded host reference path;
// both paths produce handles bound to the Gorgonia device, and results
// are observationally identical to the CPU reference backend.
//
// Numeric edge cases match the reference backend: overflow wraps, integer
// division by zero panics, float-to-int conversion truncates toward zero.
package gorgonia

import (
	ggtensor "gorgonia.org/tensor"

	"github.com/kiln-ml/kiln/internal/backend/cpu"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// Backend executes the primitive set on the gorgonia dense engine, falling
// back to the host reference implementation for indexing primitives.
type Backend[I tensor.Int] struct {
	*cpu.CPUBackend[I]
}

// New creates a new gorgonia-engine backend.
func New[I tensor.Int]() *Backend[I] {
	return &Backend[I]{CPUBackend: cpu.NewOn[I](tensor.Gorgonia)}
}

// Name returns the backend name.
func (b *Backend[I]) Name() string {
	return "Gorgonia"
}

// IntIntoData materializes through a deferred reader: the reader holds
// its own reference to the tensor and copies the host snapshot when it
// resolves, not when the call is issued.
func (b *Backend[I]) IntIntoData(t *tensor.RawTensor) *tensor.Reader[I] {
	shape := t.Shape().Clone()
	src := t.Clone()
	return tensor.NewReader(func() tensor.Data[I] {
		values := make([]I, src.NumElements())
		copy(values, tensor.ElemsOf[I](src))
		src.Release()
		return tensor.NewData(values, shape)
	})
}

// dense wraps an integer tensor's storage as a gorgonia dense view.
// Zero-copy: the engine reads the same backing slice.
func dense[I tensor.Int](t *tensor.RawTensor) *ggtensor.Dense {
	return ggtensor.New(
		ggtensor.WithShape([]int(t.Shape())...),
		ggtensor.WithBacking(tensor.ElemsOf[I](t)),
	)
}

// denseFloat wraps a float tensor's storage as a gorgonia dense view.
func denseFloat(t *tensor.RawTensor) *ggtensor.Dense {
	return ggtensor.New(
		ggtensor.WithShape([]int(t.Shape())...),
		ggtensor.WithBacking(t.AsFloat32()),
	)
}

// alloc creates a result tensor on the Gorgonia device.
func alloc(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, tensor.Gorgonia)
	if err != nil {
		tensor.Errf(op, tensor.ErrInvalidArgument, "%v", err)
	}
	return raw
}

// engineErr converts an unexpected engine failure into a condition panic.
// Operand preconditions are validated before the engine runs, so any
// error left is an argument the engine rejects.
func engineErr(op string, err error) {
	tensor.Errf(op, tensor.ErrInvalidArgument, "gorgonia engine: %v", err)
}

// intValues extracts the integer result values of an engine op. Scalar
// results (fully reduced tensors) come back unwrapped.
func intValues[I tensor.Int](res ggtensor.Tensor) []I {
	switch v := res.Data().(type) {
	case []I:
		return v
	case I:
		return []I{v}
	default:
		panic("gorgonia: unexpected engine result type")
	}
}

// boolValues extracts the boolean result values of an engine comparison.
func boolValues(res ggtensor.Tensor) []bool {
	switch v := res.Data().(type) {
	case []bool:
		return v
	case bool:
		return []bool{v}
	default:
		panic("gorgonia: unexpected engine result type")
	}
}

// Compile-time check that Backend implements the full contract.
var (
	_ tensor.Backend[int32] = (*Backend[int32])(nil)
	_ tensor.Backend[int64] = (*Backend[int64])(nil)
)
