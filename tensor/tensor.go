// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/kiln-ml/kiln/internal/tensor"

// Shape describes tensor dimensions in row-major order.
type Shape = tensor.Shape

// Range is a half-open [Start, End) slice bound for one dimension.
type Range = tensor.Range

// Device identifies where a tensor's computation executes.
type Device = tensor.Device

// Supported devices.
const (
	CPU      Device = tensor.CPU
	Gorgonia Device = tensor.Gorgonia
)

// DataType identifies a tensor's element type.
type DataType = tensor.DataType

// Supported element types.
const (
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// Int constrains the integer element types a backend can be instantiated
// with.
type Int = tensor.Int

// Elem constrains every element type a tensor can store.
type Elem = tensor.Elem

// RawTensor is the untyped backend tensor handle.
//
// RawTensor provides:
//   - Shape, dtype, and device metadata
//   - Typed storage access via AsInt32(), AsInt64(), AsBool(), ...
//   - Cheap sharing via reference-counted Clone() / Release()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32, tensor.CPU)
//	data := raw.AsInt32()
//	view := raw.Clone() // shares the buffer
type RawTensor = tensor.RawTensor

// NewRaw allocates a zero-initialized tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Data is a host-side snapshot of a tensor's values and shape.
type Data[E Elem] = tensor.Data[E]

// NewData builds a snapshot, panicking if the value count does not match
// the shape.
func NewData[E Elem](values []E, shape Shape) Data[E] {
	return tensor.NewData(values, shape)
}

// Reader is a single-use future for an asynchronous materialization; see
// Backend.IntIntoData.
type Reader[E Elem] = tensor.Reader[E]

// ToElem converts a float64 scalar to an integer element, truncating
// toward zero.
func ToElem[I Int](v float64) I {
	return tensor.ToElem[I](v)
}

// DataTypeOf reports the DataType of an element type.
func DataTypeOf[E Elem]() DataType {
	return tensor.DataTypeOf[E]()
}

// Sentinel error kinds carried by condition panics. Match with errors.Is.
var (
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrOutOfRange      = tensor.ErrOutOfRange
	ErrInvalidArgument = tensor.ErrInvalidArgument
)

// ConditionError is the panic value raised on precondition violations.
type ConditionError = tensor.ConditionError
