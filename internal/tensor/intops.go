package tensor

// Derived integer-tensor operations.
//
// Each function here is implemented once, purely in terms of the IntOps
// primitive set (and FloatOps where integer semantics are awkward), and is
// shared by every backend. A backend may special-case any of these for
// performance but must produce results identical to these definitions.

// checkDim validates a dimension selector against a rank.
func checkDim(op string, dim, rank int) {
	if dim < 0 || dim >= rank {
		Errf(op, ErrOutOfRange, "dimension %d out of range for rank %d", dim, rank)
	}
}

// IntRepeat repeats the tensor along the given dimension.
//
// The source extent on dim must be 1. The result is built by writing the
// source into each of the `times` slices along dim, O(times) primitive
// calls.
func IntRepeat[I Int](b Backend[I], t *RawTensor, dim, times int) *RawTensor {
	shape := b.IntShape(t).Clone()
	checkDim("int_repeat", dim, shape.Rank())
	if shape[dim] != 1 {
		Errf("int_repeat", ErrInvalidArgument,
			"can only repeat a singleton dimension, dim %d has extent %d", dim, shape[dim])
	}
	shape[dim] = times

	out := b.IntEmpty(shape, b.IntDevice(t))
	ranges := shape.FullRanges()
	for i := 0; i < times; i++ {
		ranges[dim] = Range{Start: i, End: i + 1}
		out = b.IntSliceAssign(out, ranges, t.Clone())
	}
	t.Release()
	return out
}

// IntPow raises lhs to the power of rhs, elementwise.
//
// Integer power is not assumed natively supported: both operands convert
// to floating point, the float contract computes the power, and the result
// converts back with truncation toward zero. This path can lose precision
// for large magnitudes.
func IntPow[I Int](b Backend[I], lhs, rhs *RawTensor) *RawTensor {
	return b.FloatIntoInt(b.FloatPow(b.IntIntoFloat(lhs), b.IntIntoFloat(rhs)))
}

// IntPowFloat raises lhs to the power of a float tensor exponent.
func IntPowFloat[I Int](b Backend[I], lhs, rhs *RawTensor) *RawTensor {
	return b.FloatIntoInt(b.FloatPow(b.IntIntoFloat(lhs), rhs))
}

// IntPowScalar raises lhs to an integer scalar exponent.
func IntPowScalar[I Int](b Backend[I], lhs *RawTensor, rhs I) *RawTensor {
	return b.FloatIntoInt(b.FloatPowScalar(b.IntIntoFloat(lhs), float32(rhs)))
}

// IntPowFloatScalar raises lhs to a float scalar exponent.
func IntPowFloatScalar[I Int](b Backend[I], lhs *RawTensor, rhs float32) *RawTensor {
	return b.FloatIntoInt(b.FloatPowScalar(b.IntIntoFloat(lhs), rhs))
}

// IntClampMin replaces every element below min with min.
func IntClampMin[I Int](b Backend[I], t *RawTensor, min I) *RawTensor {
	mask := b.IntLowerScalar(t.Clone(), min)
	return b.IntMaskFill(t, mask, min)
}

// IntClampMax replaces every element above max with max.
func IntClampMax[I Int](b Backend[I], t *RawTensor, max I) *RawTensor {
	mask := b.IntGreaterScalar(t.Clone(), max)
	return b.IntMaskFill(t, mask, max)
}

// IntClamp clamps every element into [min, max]: max-clamp first, then
// min-clamp. min > max is a caller error not defended against.
func IntClamp[I Int](b Backend[I], t *RawTensor, min, max I) *RawTensor {
	return IntClampMin(b, IntClampMax(b, t, max), min)
}

// IntNeg negates the tensor by multiplying with -1.
func IntNeg[I Int](b Backend[I], t *RawTensor) *RawTensor {
	return b.IntMulScalar(t, ToElem[I](-1.0))
}

// IntFull creates a tensor filled with the given value: zeros, then a
// scalar add.
func IntFull[I Int](b Backend[I], shape Shape, fill I, device Device) *RawTensor {
	return b.IntAddScalar(b.IntZeros(shape, device), fill)
}

// IntMean computes the truncated arithmetic mean over all elements as a
// single-element rank-1 tensor.
func IntMean[I Int](b Backend[I], t *RawTensor) *RawTensor {
	n := b.IntShape(t).NumElements()
	return b.IntDivScalar(b.IntSum(t), I(int64(n)))
}

// IntMax returns the largest element as a single-element rank-1 tensor:
// flatten to rank 1, then reduce along dimension 0.
func IntMax[I Int](b Backend[I], t *RawTensor) *RawTensor {
	n := b.IntShape(t).NumElements()
	return IntMaxDim(b, b.IntReshape(t, Shape{n}), 0)
}

// IntMaxDim returns the maximum elements along dim; dim collapses to
// extent 1. Values are gathered at the argmax indices along dim.
func IntMaxDim[I Int](b Backend[I], t *RawTensor, dim int) *RawTensor {
	index := b.IntArgmax(t.Clone(), dim)
	return b.IntGather(dim, t, index)
}

// IntMaxDimWithIndices returns the maximum elements along dim together
// with their index positions.
func IntMaxDimWithIndices[I Int](b Backend[I], t *RawTensor, dim int) (values, indices *RawTensor) {
	indices = b.IntArgmax(t.Clone(), dim)
	values = b.IntGather(dim, t, indices.Clone())
	return values, indices
}

// IntMin returns the smallest element as a single-element rank-1 tensor.
func IntMin[I Int](b Backend[I], t *RawTensor) *RawTensor {
	n := b.IntShape(t).NumElements()
	return IntMinDim(b, b.IntReshape(t, Shape{n}), 0)
}

// IntMinDim returns the minimum elements along dim; dim collapses to
// extent 1.
func IntMinDim[I Int](b Backend[I], t *RawTensor, dim int) *RawTensor {
	index := b.IntArgmin(t.Clone(), dim)
	return b.IntGather(dim, t, index)
}

// IntMinDimWithIndices returns the minimum elements along dim together
// with their index positions.
func IntMinDimWithIndices[I Int](b Backend[I], t *RawTensor, dim int) (values, indices *RawTensor) {
	indices = b.IntArgmin(t.Clone(), dim)
	values = b.IntGather(dim, t, indices.Clone())
	return values, indices
}

// IntTranspose swaps the last two dimensions. Rank must be >= 2.
func IntTranspose[I Int](b Backend[I], t *RawTensor) *RawTensor {
	rank := b.IntShape(t).Rank()
	if rank < 2 {
		Errf("int_transpose", ErrInvalidArgument, "rank %d tensor, need rank >= 2", rank)
	}
	return b.IntSwapDims(t, rank-2, rank-1)
}

// IntNarrow extracts a contiguous sub-range of one dimension.
func IntNarrow[I Int](b Backend[I], t *RawTensor, dim, start, length int) *RawTensor {
	return narrow(b.IntShape(t), dim, start, length, t, b.IntSlice)
}

// IntChunk splits one dimension into the given number of sub-tensors of
// as-equal-as-possible size, in position order.
func IntChunk[I Int](b Backend[I], t *RawTensor, chunks, dim int) []*RawTensor {
	return chunk(b.IntShape(t), chunks, dim, t, b.IntSlice)
}

// IntArangeStep builds a rank-1 tensor from the half-open range
// [start, end) with the given step, materializing the sequence host-side
// and loading it through the from-data primitive. Step must be >= 1; an
// empty range yields a zero-length tensor.
//
// Example:
//
//	t := tensor.IntArangeStep[int32](b, 0, 10, 3, tensor.CPU) // [0, 3, 6, 9]
func IntArangeStep[I Int](b Backend[I], start, end int64, step int, device Device) *RawTensor {
	if step < 1 {
		Errf("int_arange_step", ErrInvalidArgument, "step must be >= 1, got %d", step)
	}

	var values []I
	for v := start; v < end; v += int64(step) {
		values = append(values, I(v))
	}
	return b.IntFromData(NewData(values, Shape{len(values)}), device)
}

// IntArange builds a rank-1 tensor from the half-open range [start, end)
// with a step of 1.
func IntArange[I Int](b Backend[I], start, end int64, device Device) *RawTensor {
	return IntArangeStep(b, start, end, 1, device)
}
