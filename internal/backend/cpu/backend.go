// Package cpu implements the pure Go reference backend for the integer
// tensor operation contract.
//
// Numeric edge cases follow Go's native semantics for the element type:
// arithmetic overflow wraps around, and integer division by zero is a
// runtime panic. Float-to-int conversion truncates toward zero.
package cpu

import (
	"fmt"

	"github.com/kiln-ml/kiln/internal/parallel"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// CPUBackend is the reference implementation of the primitive operation
// set over row-major strided host storage. I is the backend's integer
// element type; the float capability side uses float32 storage.
type CPUBackend[I tensor.Int] struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New[I tensor.Int]() *CPUBackend[I] {
	return NewOn[I](tensor.CPU)
}

// NewOn creates a CPU backend whose tensors are bound to the given device.
// Backends that execute indexing primitives on the host reference path
// use this to keep result handles on their own device.
func NewOn[I tensor.Int](device tensor.Device) *CPUBackend[I] {
	return &CPUBackend[I]{device: device, par: parallel.DefaultConfig()}
}

// Name returns the backend name.
func (cpu *CPUBackend[I]) Name() string {
	return "CPU"
}

// newRaw allocates a zeroed tensor, panicking on invalid shapes.
func newRaw(op string, shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		tensor.Errf(op, tensor.ErrInvalidArgument, "%v", err)
	}
	return raw
}

// elems returns the typed element view of an integer operand.
func elems[I tensor.Int](t *tensor.RawTensor) []I {
	return tensor.ElemsOf[I](t)
}

// checkSameShape validates that two operands have identical shapes.
func checkSameShape(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		tensor.Errf(op, tensor.ErrShapeMismatch, "operand shapes %v and %v differ", a.Shape(), b.Shape())
	}
}

// IntEmpty creates an uninitialized integer tensor of the given shape.
func (cpu *CPUBackend[I]) IntEmpty(shape tensor.Shape, device tensor.Device) *tensor.RawTensor {
	return newRaw("int_empty", shape, tensor.DataTypeOf[I](), device)
}

// IntZeros creates an integer tensor of zeros.
func (cpu *CPUBackend[I]) IntZeros(shape tensor.Shape, device tensor.Device) *tensor.RawTensor {
	// Allocation is already zero-initialized.
	return newRaw("int_zeros", shape, tensor.DataTypeOf[I](), device)
}

// IntOnes creates an integer tensor of ones.
func (cpu *CPUBackend[I]) IntOnes(shape tensor.Shape, device tensor.Device) *tensor.RawTensor {
	out := newRaw("int_ones", shape, tensor.DataTypeOf[I](), device)
	data := elems[I](out)
	for i := range data {
		data[i] = 1
	}
	return out
}

// IntShape returns the tensor's shape. Non-consuming query.
func (cpu *CPUBackend[I]) IntShape(t *tensor.RawTensor) tensor.Shape {
	return t.Shape()
}

// IntDevice returns the tensor's device. Non-consuming query.
func (cpu *CPUBackend[I]) IntDevice(t *tensor.RawTensor) tensor.Device {
	return t.Device()
}

// IntToDevice relocates the tensor to the given device. Host storage is
// shared; only the binding changes.
func (cpu *CPUBackend[I]) IntToDevice(t *tensor.RawTensor, device tensor.Device) *tensor.RawTensor {
	return t.WithDevice(device)
}

// IntReshape reinterprets the tensor with a new shape of equal element
// count.
func (cpu *CPUBackend[I]) IntReshape(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if shape.NumElements() != t.NumElements() {
		tensor.Errf("int_reshape", tensor.ErrShapeMismatch,
			"cannot reshape %v (%d elements) to %v (%d elements)",
			t.Shape(), t.NumElements(), shape, shape.NumElements())
	}

	out := newRaw("int_reshape", shape, t.DType(), t.Device())
	copy(elems[I](out), elems[I](t))
	return out
}

// IntIntoData materializes the tensor as a host snapshot. Host storage is
// already readable, so the reader is pre-resolved; the copy decouples the
// snapshot from later writes to the tensor's storage.
func (cpu *CPUBackend[I]) IntIntoData(t *tensor.RawTensor) *tensor.Reader[I] {
	values := make([]I, t.NumElements())
	copy(values, elems[I](t))
	return tensor.ReaderFromData(tensor.NewData(values, t.Shape().Clone()))
}

// IntFromData loads a host snapshot onto the given device.
func (cpu *CPUBackend[I]) IntFromData(data tensor.Data[I], device tensor.Device) *tensor.RawTensor {
	out := newRaw("int_from_data", data.Shape, tensor.DataTypeOf[I](), device)
	copy(elems[I](out), data.Values)
	return out
}

// IntIntoFloat converts the integer tensor to a float tensor of the same
// shape.
func (cpu *CPUBackend[I]) IntIntoFloat(t *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw("int_into_float", t.Shape(), tensor.Float32, t.Device())
	src := elems[I](t)
	dst := out.AsFloat32()
	for i, v := range src {
		dst[i] = float32(v)
	}
	return out
}

// Compile-time check that CPUBackend implements the full contract.
var (
	_ tensor.Backend[int32] = (*CPUBackend[int32])(nil)
	_ tensor.Backend[int64] = (*CPUBackend[int64])(nil)
)

// String implements fmt.Stringer for diagnostics.
func (cpu *CPUBackend[I]) String() string {
	return fmt.Sprintf("cpu.Backend[%s]", tensor.DataTypeOf[I]())
}
