// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go reference backend.
package cpu

import (
	internalcpu "github.com/kiln-ml/kiln/internal/backend/cpu"
	"github.com/kiln-ml/kiln/tensor"
)

// Backend is the CPU backend implementation: the reference semantics for
// the integer tensor operation contract, over row-major host storage.
type Backend[I tensor.Int] = internalcpu.CPUBackend[I]

// Compile-time check that Backend implements tensor.Backend.
var (
	_ tensor.Backend[int32] = (*Backend[int32])(nil)
	_ tensor.Backend[int64] = (*Backend[int64])(nil)
)

// New creates a new CPU backend for the given integer element type.
//
// Example:
//
//	import (
//	    "github.com/kiln-ml/kiln/backend/cpu"
//	    "github.com/kiln-ml/kiln/tensor"
//	)
//
//	func main() {
//	    b := cpu.New[int32]()
//	    t := tensor.IntArange[int32](b, 0, 10, tensor.CPU)
//	}
func New[I tensor.Int]() *Backend[I] {
	return internalcpu.New[I]()
}
