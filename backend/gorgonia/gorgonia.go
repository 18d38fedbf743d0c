// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gorgonia provides the gorgonia.org/tensor dense engine backend.
package gorgonia

import (
	internalgg "github.com/kiln-ml/kiln/internal/backend/gorgonia"
	"github.com/kiln-ml/kiln/tensor"
)

// Backend executes dense arithmetic, comparisons, reductions, and the
// float power operations on the gorgonia engine; indexing primitives run
// on the host reference path. Results are observationally identical to
// the CPU backend.
type Backend[I tensor.Int] = internalgg.Backend[I]

// Compile-time check that Backend implements tensor.Backend.
var (
	_ tensor.Backend[int32] = (*Backend[int32])(nil)
	_ tensor.Backend[int64] = (*Backend[int64])(nil)
)

// New creates a new gorgonia-engine backend for the given integer
// element type.
func New[I tensor.Int]() *Backend[I] {
	return internalgg.New[I]()
}
