package cpu

import "github.com/kiln-ml/kiln/internal/tensor"

// IntSum sums all elements into a single-element rank-1 tensor.
func (cpu *CPUBackend[I]) IntSum(t *tensor.RawTensor) *tensor.RawTensor {
	var total I
	for _, v := range elems[I](t) {
		total += v
	}

	out := newRaw("int_sum", tensor.Shape{1}, t.DType(), t.Device())
	elems[I](out)[0] = total
	return out
}

// reduceDim walks every lane along dim and stores one result per lane.
// The output keeps the operand's rank with dim collapsed to extent 1.
func reduceDim[I tensor.Int](op string, t *tensor.RawTensor, dim int, lane func(src []I, start, stride, n int) I) *tensor.RawTensor {
	shape := t.Shape()
	checkDimRank(op, dim, shape.Rank())

	outShape := shape.Clone()
	outShape[dim] = 1

	out := newRaw(op, outShape, t.DType(), t.Device())
	src := elems[I](t)
	dst := elems[I](out)
	strides := t.Strides()
	outStrides := outShape.ComputeStrides()

	multiIdx := make([]int, outShape.Rank())
	for i := range dst {
		unravel(i, outStrides, multiIdx)
		start := 0
		for d := range multiIdx {
			start += multiIdx[d] * strides[d]
		}
		dst[i] = lane(src, start, strides[dim], shape[dim])
	}
	return out
}

// IntSumDim sums along one dimension; that dimension collapses to extent 1.
func (cpu *CPUBackend[I]) IntSumDim(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return reduceDim("int_sum_dim", t, dim, func(src []I, start, stride, n int) I {
		var total I
		for k := 0; k < n; k++ {
			total += src[start+k*stride]
		}
		return total
	})
}

// IntMeanDim computes the truncated arithmetic mean along one dimension:
// the dim-local sum divided by the pre-reduction extent.
func (cpu *CPUBackend[I]) IntMeanDim(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return reduceDim("int_mean_dim", t, dim, func(src []I, start, stride, n int) I {
		var total I
		for k := 0; k < n; k++ {
			total += src[start+k*stride]
		}
		return total / I(int64(n))
	})
}

// IntArgmax returns the index positions of the maxima along dim. Ties
// resolve to the first occurrence.
func (cpu *CPUBackend[I]) IntArgmax(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return reduceDim("int_argmax", t, dim, func(src []I, start, stride, n int) I {
		best := src[start]
		bestIdx := 0
		for k := 1; k < n; k++ {
			if v := src[start+k*stride]; v > best {
				best = v
				bestIdx = k
			}
		}
		return I(int64(bestIdx))
	})
}

// IntArgmin returns the index positions of the minima along dim. Ties
// resolve to the first occurrence.
func (cpu *CPUBackend[I]) IntArgmin(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return reduceDim("int_argmin", t, dim, func(src []I, start, stride, n int) I {
		best := src[start]
		bestIdx := 0
		for k := 1; k < n; k++ {
			if v := src[start+k*stride]; v < best {
				best = v
				bestIdx = k
			}
		}
		return I(int64(bestIdx))
	})
}
