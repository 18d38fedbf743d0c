package cpu

import "github.com/kiln-ml/kiln/internal/tensor"

// checkMask validates a boolean mask against an operand's shape.
func checkMask(op string, t, mask *tensor.RawTensor) {
	if mask.DType() != tensor.Bool {
		tensor.Errf(op, tensor.ErrInvalidArgument, "mask must be a bool tensor, got %s", mask.DType())
	}
	if !mask.Shape().Equal(t.Shape()) {
		tensor.Errf(op, tensor.ErrShapeMismatch,
			"mask shape %v does not match operand shape %v", mask.Shape(), t.Shape())
	}
}

// IntMaskWhere selects source where the mask is set and keeps t elsewhere.
func (cpu *CPUBackend[I]) IntMaskWhere(t, mask, source *tensor.RawTensor) *tensor.RawTensor {
	checkMask("int_mask_where", t, mask)
	checkSameShape("int_mask_where", t, source)

	out := newRaw("int_mask_where", t.Shape(), t.DType(), t.Device())
	keep := elems[I](t)
	take := elems[I](source)
	m := mask.AsBool()
	dst := elems[I](out)
	for i := range dst {
		if m[i] {
			dst[i] = take[i]
		} else {
			dst[i] = keep[i]
		}
	}
	return out
}

// IntMaskFill fills the scalar value at masked positions.
func (cpu *CPUBackend[I]) IntMaskFill(t, mask *tensor.RawTensor, value I) *tensor.RawTensor {
	checkMask("int_mask_fill", t, mask)

	out := newRaw("int_mask_fill", t.Shape(), t.DType(), t.Device())
	keep := elems[I](t)
	m := mask.AsBool()
	dst := elems[I](out)
	for i := range dst {
		if m[i] {
			dst[i] = value
		} else {
			dst[i] = keep[i]
		}
	}
	return out
}
