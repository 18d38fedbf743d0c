// Copyright 2026 Kiln ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/kiln-ml/kiln/internal/tensor"

// Derived integer-tensor operations, defined once over the primitive set
// and shared by every backend.

// IntRepeat repeats a singleton dimension the given number of times.
func IntRepeat[I Int](b Backend[I], t *RawTensor, dim, times int) *RawTensor {
	return tensor.IntRepeat(b, t, dim, times)
}

// IntPow raises lhs to the power of rhs, elementwise. Computed in
// floating point and truncated back; precision can be lost for large
// magnitudes.
func IntPow[I Int](b Backend[I], lhs, rhs *RawTensor) *RawTensor {
	return tensor.IntPow(b, lhs, rhs)
}

// IntPowFloat raises lhs to the power of a float tensor exponent.
func IntPowFloat[I Int](b Backend[I], lhs, rhs *RawTensor) *RawTensor {
	return tensor.IntPowFloat(b, lhs, rhs)
}

// IntPowScalar raises lhs to an integer scalar exponent.
func IntPowScalar[I Int](b Backend[I], lhs *RawTensor, rhs I) *RawTensor {
	return tensor.IntPowScalar(b, lhs, rhs)
}

// IntPowFloatScalar raises lhs to a float scalar exponent.
func IntPowFloatScalar[I Int](b Backend[I], lhs *RawTensor, rhs float32) *RawTensor {
	return tensor.IntPowFloatScalar(b, lhs, rhs)
}

// IntClampMin replaces every element below min with min.
func IntClampMin[I Int](b Backend[I], t *RawTensor, min I) *RawTensor {
	return tensor.IntClampMin(b, t, min)
}

// IntClampMax replaces every element above max with max.
func IntClampMax[I Int](b Backend[I], t *RawTensor, max I) *RawTensor {
	return tensor.IntClampMax(b, t, max)
}

// IntClamp clamps every element into [min, max].
func IntClamp[I Int](b Backend[I], t *RawTensor, min, max I) *RawTensor {
	return tensor.IntClamp(b, t, min, max)
}

// IntNeg negates the tensor elementwise.
func IntNeg[I Int](b Backend[I], t *RawTensor) *RawTensor {
	return tensor.IntNeg(b, t)
}

// IntFull creates a tensor filled with the given value.
func IntFull[I Int](b Backend[I], shape Shape, fill I, device Device) *RawTensor {
	return tensor.IntFull(b, shape, fill, device)
}

// IntMean computes the truncated arithmetic mean over all elements as a
// single-element rank-1 tensor.
func IntMean[I Int](b Backend[I], t *RawTensor) *RawTensor {
	return tensor.IntMean(b, t)
}

// IntMax returns the largest element as a single-element rank-1 tensor.
func IntMax[I Int](b Backend[I], t *RawTensor) *RawTensor {
	return tensor.IntMax(b, t)
}

// IntMaxDim returns the maximum elements along dim; dim collapses to
// extent 1.
func IntMaxDim[I Int](b Backend[I], t *RawTensor, dim int) *RawTensor {
	return tensor.IntMaxDim(b, t, dim)
}

// IntMaxDimWithIndices returns the maximum elements along dim together
// with their index positions.
func IntMaxDimWithIndices[I Int](b Backend[I], t *RawTensor, dim int) (values, indices *RawTensor) {
	return tensor.IntMaxDimWithIndices(b, t, dim)
}

// IntMin returns the smallest element as a single-element rank-1 tensor.
func IntMin[I Int](b Backend[I], t *RawTensor) *RawTensor {
	return tensor.IntMin(b, t)
}

// IntMinDim returns the minimum elements along dim; dim collapses to
// extent 1.
func IntMinDim[I Int](b Backend[I], t *RawTensor, dim int) *RawTensor {
	return tensor.IntMinDim(b, t, dim)
}

// IntMinDimWithIndices returns the minimum elements along dim together
// with their index positions.
func IntMinDimWithIndices[I Int](b Backend[I], t *RawTensor, dim int) (values, indices *RawTensor) {
	return tensor.IntMinDimWithIndices(b, t, dim)
}

// IntTranspose swaps the last two dimensions. Rank must be >= 2.
func IntTranspose[I Int](b Backend[I], t *RawTensor) *RawTensor {
	return tensor.IntTranspose(b, t)
}

// IntNarrow extracts a contiguous sub-range of one dimension.
func IntNarrow[I Int](b Backend[I], t *RawTensor, dim, start, length int) *RawTensor {
	return tensor.IntNarrow(b, t, dim, start, length)
}

// IntChunk splits one dimension into the given number of sub-tensors of
// as-equal-as-possible size, in position order.
func IntChunk[I Int](b Backend[I], t *RawTensor, chunks, dim int) []*RawTensor {
	return tensor.IntChunk(b, t, chunks, dim)
}

// IntArange builds a rank-1 tensor from the half-open range [start, end)
// with a step of 1.
func IntArange[I Int](b Backend[I], start, end int64, device Device) *RawTensor {
	return tensor.IntArange(b, start, end, device)
}

// IntArangeStep builds a rank-1 tensor from the half-open range
// [start, end) with the given step (>= 1).
//
// Example:
//
//	t := tensor.IntArangeStep[int32](b, 0, 10, 3, tensor.CPU) // [0, 3, 6, 9]
func IntArangeStep[I Int](b Backend[I], start, end int64, step int, device Device) *RawTensor {
	return tensor.IntArangeStep(b, start, end, step, device)
}
