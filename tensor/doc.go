// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the integer tensor operation contract for the
// Kiln ML framework.
//
// # Overview
//
// Integer tensors carry index data: token ids, categorical labels,
// gather/scatter coordinates, boolean masks widened to ints. This package
// defines:
//   - The primitive operation set every backend implements (Backend[I])
//   - Derived operations built once on top of the primitives and shared
//     by all backends (Repeat, Clamp, Arange, ...)
//   - Host-side data exchange (Data[E], Reader[E])
//
// # Basic Usage
//
//	import (
//	    "github.com/kiln-ml/kiln/backend/cpu"
//	    "github.com/kiln-ml/kiln/tensor"
//	)
//
//	func main() {
//	    b := cpu.New[int32]()
//
//	    t := tensor.IntArange[int32](b, 0, 12, tensor.CPU)
//	    t = b.IntReshape(t, tensor.Shape{3, 4})
//
//	    sums := b.IntSumDim(t, 1)           // shape (3, 1)
//	    data := b.IntIntoData(sums).Read()  // host snapshot
//	    _ = data
//	}
//
// # Element Types
//
// Backends are instantiated per integer element type via the Int
// constraint (int32 or int64). Comparison results use Bool tensors;
// conversions to and from floating point use float32 storage.
//
// # Ownership
//
// Operation operands are logically consumed: a caller that needs a
// tensor after passing it to an operation passes t.Clone() instead.
// Clone shares the underlying buffer by reference counting, so this is
// cheap.
//
// # Errors
//
// Precondition violations (shape mismatch, out-of-range index, invalid
// argument) panic with a *ConditionError wrapping one of the sentinel
// errors ErrShapeMismatch, ErrOutOfRange, ErrInvalidArgument. Numeric
// edge cases follow Go's native semantics for the element type: overflow
// wraps and integer division by zero is a runtime panic.
package tensor
