// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/kiln-ml/kiln/internal/tensor"

// IntOps is the primitive integer-tensor operation set every backend
// implements natively. All other integer operations in the framework are
// derived from this set by the free functions in this package, so
// conforming backends cannot diverge in observable behavior.
//
// Operand handles are logically consumed; pass t.Clone() to keep using a
// tensor afterwards. Precondition violations panic with *ConditionError.
type IntOps[I Int] = tensor.IntOps[I]

// FloatOps is the float-tensor capability subset the integer contract
// consumes for the derived power operations.
type FloatOps = tensor.FloatOps

// Backend is the full capability set a numeric backend provides.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//   - backend/gorgonia: gorgonia.org/tensor dense engine
//
// Example:
//
//	import (
//	    "github.com/kiln-ml/kiln/backend/cpu"
//	    "github.com/kiln-ml/kiln/tensor"
//	)
//
//	b := cpu.New[int64]()
//	t := tensor.IntFull[int64](b, tensor.Shape{2, 2}, 7, tensor.CPU)
type Backend[I Int] = tensor.Backend[I]
