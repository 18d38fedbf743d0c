package cpu

import "github.com/kiln-ml/kiln/internal/tensor"

// IntCat concatenates tensors along the given dimension. Inputs must be
// non-empty, share rank, and agree on every non-join dimension.
func (cpu *CPUBackend[I]) IntCat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		tensor.Errf("int_cat", tensor.ErrInvalidArgument, "at least one tensor required")
	}

	first := tensors[0].Shape()
	checkDimRank("int_cat", dim, first.Rank())

	joined := 0
	for _, t := range tensors {
		shape := t.Shape()
		if shape.Rank() != first.Rank() {
			tensor.Errf("int_cat", tensor.ErrShapeMismatch,
				"rank %d tensor in rank %d concatenation", shape.Rank(), first.Rank())
		}
		for d := range shape {
			if d != dim && shape[d] != first[d] {
				tensor.Errf("int_cat", tensor.ErrShapeMismatch,
					"extent %d does not match %d on non-join dimension %d", shape[d], first[d], d)
			}
		}
		joined += shape[dim]
	}

	outShape := first.Clone()
	outShape[dim] = joined
	out := newRaw("int_cat", outShape, tensors[0].DType(), tensors[0].Device())
	dst := elems[I](out)

	// Row-major: each input contributes contiguous blocks of
	// extent*inner elements, repeated outer times.
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= first[d]
	}
	inner := 1
	for d := dim + 1; d < first.Rank(); d++ {
		inner *= first[d]
	}

	outBlock := joined * inner
	offset := 0
	for _, t := range tensors {
		src := elems[I](t)
		block := t.Shape()[dim] * inner
		for o := 0; o < outer; o++ {
			copy(dst[o*outBlock+offset:o*outBlock+offset+block], src[o*block:(o+1)*block])
		}
		offset += block
	}
	return out
}

// IntSwapDims swaps two dimensions. The reference backend materializes the
// reordering into fresh row-major storage; strided backends may treat it
// as pure metadata.
func (cpu *CPUBackend[I]) IntSwapDims(t *tensor.RawTensor, dim1, dim2 int) *tensor.RawTensor {
	shape := t.Shape()
	checkDimRank("int_swap_dims", dim1, shape.Rank())
	checkDimRank("int_swap_dims", dim2, shape.Rank())

	outShape := shape.Clone()
	outShape[dim1], outShape[dim2] = outShape[dim2], outShape[dim1]

	out := newRaw("int_swap_dims", outShape, t.DType(), t.Device())
	src := elems[I](t)
	dst := elems[I](out)
	srcStrides := t.Strides()
	outStrides := outShape.ComputeStrides()

	multiIdx := make([]int, outShape.Rank())
	for i := range dst {
		unravel(i, outStrides, multiIdx)
		multiIdx[dim1], multiIdx[dim2] = multiIdx[dim2], multiIdx[dim1]
		srcIdx := 0
		for d := range multiIdx {
			srcIdx += multiIdx[d] * srcStrides[d]
		}
		dst[i] = src[srcIdx]
	}
	return out
}
