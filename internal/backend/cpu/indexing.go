package cpu

import "github.com/kiln-ml/kiln/internal/tensor"

// checkRanges validates one half-open range per dimension against the
// shape. Fewer ranges than dimensions is allowed; trailing dimensions are
// taken whole. Returns the normalized per-dimension ranges and the shape
// they select.
func checkRanges(op string, shape tensor.Shape, ranges []tensor.Range) ([]tensor.Range, tensor.Shape) {
	if len(ranges) > shape.Rank() {
		tensor.Errf(op, tensor.ErrShapeMismatch,
			"%d ranges for rank %d tensor", len(ranges), shape.Rank())
	}

	full := shape.FullRanges()
	copy(full, ranges)

	outShape := make(tensor.Shape, shape.Rank())
	for d, r := range full {
		if r.Start < 0 || r.End < r.Start || r.End > shape[d] {
			tensor.Errf(op, tensor.ErrOutOfRange,
				"range [%d, %d) exceeds extent %d of dimension %d", r.Start, r.End, shape[d], d)
		}
		outShape[d] = r.Len()
	}
	return full, outShape
}

// unravel decomposes a flat index into a multi-dimensional index.
func unravel(flat int, strides, multiIdx []int) {
	remaining := flat
	for d := range strides {
		multiIdx[d] = remaining / strides[d]
		remaining %= strides[d]
	}
}

// IntSlice extracts a sub-tensor given one half-open index range per
// dimension.
func (cpu *CPUBackend[I]) IntSlice(t *tensor.RawTensor, ranges []tensor.Range) *tensor.RawTensor {
	full, outShape := checkRanges("int_slice", t.Shape(), ranges)

	out := newRaw("int_slice", outShape, t.DType(), t.Device())
	src := elems[I](t)
	dst := elems[I](out)
	srcStrides := t.Strides()
	outStrides := outShape.ComputeStrides()

	multiIdx := make([]int, outShape.Rank())
	for i := range dst {
		unravel(i, outStrides, multiIdx)
		srcIdx := 0
		for d := range multiIdx {
			srcIdx += (full[d].Start + multiIdx[d]) * srcStrides[d]
		}
		dst[i] = src[srcIdx]
	}
	return out
}

// IntSliceAssign writes a value tensor into the sliced region of the
// target, returning a new tensor reflecting the write. The value's extents
// must agree elementwise with the slice ranges.
func (cpu *CPUBackend[I]) IntSliceAssign(t *tensor.RawTensor, ranges []tensor.Range, value *tensor.RawTensor) *tensor.RawTensor {
	full, sliceShape := checkRanges("int_slice_assign", t.Shape(), ranges)
	if !value.Shape().Equal(sliceShape) {
		tensor.Errf("int_slice_assign", tensor.ErrShapeMismatch,
			"value shape %v does not match slice shape %v", value.Shape(), sliceShape)
	}

	out := cpu.copyOf(t)
	dst := elems[I](out)
	src := elems[I](value)
	dstStrides := out.Strides()
	valStrides := sliceShape.ComputeStrides()

	multiIdx := make([]int, sliceShape.Rank())
	for i := range src {
		unravel(i, valStrides, multiIdx)
		dstIdx := 0
		for d := range multiIdx {
			dstIdx += (full[d].Start + multiIdx[d]) * dstStrides[d]
		}
		dst[dstIdx] = src[i]
	}
	return out
}

// IntGather reads, for each position of the index tensor, the value at the
// index given along dim. The index tensor shares the operand's rank and
// matches its shape on every other dimension; the output takes the index
// tensor's shape.
func (cpu *CPUBackend[I]) IntGather(dim int, t, indices *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	idxShape := indices.Shape()
	checkGatherShapes("int_gather", dim, shape, idxShape)

	out := newRaw("int_gather", idxShape, t.DType(), t.Device())
	src := elems[I](t)
	idx := elems[I](indices)
	dst := elems[I](out)
	srcStrides := t.Strides()
	outStrides := idxShape.ComputeStrides()

	multiIdx := make([]int, idxShape.Rank())
	for i := range dst {
		unravel(i, outStrides, multiIdx)
		pos := int(idx[i])
		if pos < 0 || pos >= shape[dim] {
			tensor.Errf("int_gather", tensor.ErrOutOfRange,
				"index %d out of range [0, %d) on dimension %d", pos, shape[dim], dim)
		}
		srcIdx := 0
		for d := range multiIdx {
			if d == dim {
				srcIdx += pos * srcStrides[d]
			} else {
				srcIdx += multiIdx[d] * srcStrides[d]
			}
		}
		dst[i] = src[srcIdx]
	}
	return out
}

// IntScatter accumulates values into the target at indexed positions along
// dim: the inverse of gather. Index collisions accumulate by sum.
func (cpu *CPUBackend[I]) IntScatter(dim int, t, indices, value *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	idxShape := indices.Shape()
	checkGatherShapes("int_scatter", dim, shape, idxShape)
	if !value.Shape().Equal(idxShape) {
		tensor.Errf("int_scatter", tensor.ErrShapeMismatch,
			"value shape %v does not match index shape %v", value.Shape(), idxShape)
	}

	out := cpu.copyOf(t)
	dst := elems[I](out)
	idx := elems[I](indices)
	src := elems[I](value)
	dstStrides := out.Strides()
	valStrides := idxShape.ComputeStrides()

	multiIdx := make([]int, idxShape.Rank())
	for i := range src {
		unravel(i, valStrides, multiIdx)
		pos := int(idx[i])
		if pos < 0 || pos >= shape[dim] {
			tensor.Errf("int_scatter", tensor.ErrOutOfRange,
				"index %d out of range [0, %d) on dimension %d", pos, shape[dim], dim)
		}
		dstIdx := 0
		for d := range multiIdx {
			if d == dim {
				dstIdx += pos * dstStrides[d]
			} else {
				dstIdx += multiIdx[d] * dstStrides[d]
			}
		}
		dst[dstIdx] += src[i]
	}
	return out
}

// IntSelect selects whole sub-slices along dim according to a rank-1 index
// list. The output's extent on dim is the index count.
func (cpu *CPUBackend[I]) IntSelect(t *tensor.RawTensor, dim int, indices *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	checkDimRank("int_select", dim, shape.Rank())
	checkIndexList("int_select", indices)

	idx := elems[I](indices)
	outShape := shape.Clone()
	outShape[dim] = len(idx)

	out := newRaw("int_select", outShape, t.DType(), t.Device())
	src := elems[I](t)
	dst := elems[I](out)
	srcStrides := t.Strides()
	outStrides := outShape.ComputeStrides()

	multiIdx := make([]int, outShape.Rank())
	for i := range dst {
		unravel(i, outStrides, multiIdx)
		pos := int(idx[multiIdx[dim]])
		if pos < 0 || pos >= shape[dim] {
			tensor.Errf("int_select", tensor.ErrOutOfRange,
				"index %d out of range [0, %d) on dimension %d", pos, shape[dim], dim)
		}
		srcIdx := 0
		for d := range multiIdx {
			if d == dim {
				srcIdx += pos * srcStrides[d]
			} else {
				srcIdx += multiIdx[d] * srcStrides[d]
			}
		}
		dst[i] = src[srcIdx]
	}
	return out
}

// IntSelectAssign accumulates whole sub-slices of the value tensor into
// the target along dim according to a rank-1 index list. Collisions
// accumulate by sum.
func (cpu *CPUBackend[I]) IntSelectAssign(t *tensor.RawTensor, dim int, indices, value *tensor.RawTensor) *tensor.RawTensor {
	shape := t.Shape()
	checkDimRank("int_select_assign", dim, shape.Rank())
	checkIndexList("int_select_assign", indices)

	idx := elems[I](indices)
	valShape := value.Shape()
	for d := range shape {
		want := shape[d]
		if d == dim {
			want = len(idx)
		}
		if valShape.Rank() != shape.Rank() || valShape[d] != want {
			tensor.Errf("int_select_assign", tensor.ErrShapeMismatch,
				"value shape %v incompatible with target %v and %d indices on dimension %d",
				valShape, shape, len(idx), dim)
		}
	}

	out := cpu.copyOf(t)
	dst := elems[I](out)
	src := elems[I](value)
	dstStrides := out.Strides()
	valStrides := valShape.ComputeStrides()

	multiIdx := make([]int, valShape.Rank())
	for i := range src {
		unravel(i, valStrides, multiIdx)
		pos := int(idx[multiIdx[dim]])
		if pos < 0 || pos >= shape[dim] {
			tensor.Errf("int_select_assign", tensor.ErrOutOfRange,
				"index %d out of range [0, %d) on dimension %d", pos, shape[dim], dim)
		}
		dstIdx := 0
		for d := range multiIdx {
			if d == dim {
				dstIdx += pos * dstStrides[d]
			} else {
				dstIdx += multiIdx[d] * dstStrides[d]
			}
		}
		dst[dstIdx] += src[i]
	}
	return out
}

// copyOf returns storage the caller may write. A consumed operand whose
// handle is the only live reference is written in place; otherwise the
// storage is duplicated so writes stay invisible to the operand's other
// clones.
func (cpu *CPUBackend[I]) copyOf(t *tensor.RawTensor) *tensor.RawTensor {
	if t.IsUnique() {
		return t
	}
	out := newRaw("copy", t.Shape(), t.DType(), t.Device())
	copy(elems[I](out), elems[I](t))
	return out
}

// checkDimRank validates a dimension selector.
func checkDimRank(op string, dim, rank int) {
	if dim < 0 || dim >= rank {
		tensor.Errf(op, tensor.ErrOutOfRange, "dimension %d out of range for rank %d", dim, rank)
	}
}

// checkGatherShapes validates gather/scatter index tensors: same rank as
// the operand, equal extents on every dimension but dim.
func checkGatherShapes(op string, dim int, shape, idxShape tensor.Shape) {
	checkDimRank(op, dim, shape.Rank())
	if idxShape.Rank() != shape.Rank() {
		tensor.Errf(op, tensor.ErrShapeMismatch,
			"index rank %d does not match operand rank %d", idxShape.Rank(), shape.Rank())
	}
	for d := range shape {
		if d != dim && idxShape[d] != shape[d] {
			tensor.Errf(op, tensor.ErrShapeMismatch,
				"index extent %d does not match operand extent %d on dimension %d",
				idxShape[d], shape[d], d)
		}
	}
}

// checkIndexList validates a select index list: rank 1.
func checkIndexList(op string, indices *tensor.RawTensor) {
	if indices.Shape().Rank() != 1 {
		tensor.Errf(op, tensor.ErrInvalidArgument,
			"index list must be rank 1, got shape %v", indices.Shape())
	}
}
