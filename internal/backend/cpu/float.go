package cpu

import (
	"math"

	"github.com/kiln-ml/kiln/internal/tensor"
)

// Float capability subset consumed by the derived power operations.
// Float tensors use float32 storage on this backend.

// FloatPow raises lhs to the power of rhs, elementwise, on float tensors.
func (cpu *CPUBackend[I]) FloatPow(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("float_pow", lhs, rhs)

	out := newRaw("float_pow", lhs.Shape(), tensor.Float32, lhs.Device())
	a := lhs.AsFloat32()
	b := rhs.AsFloat32()
	dst := out.AsFloat32()
	for i := range dst {
		dst[i] = float32(math.Pow(float64(a[i]), float64(b[i])))
	}
	return out
}

// FloatPowScalar raises lhs to a scalar exponent, elementwise.
func (cpu *CPUBackend[I]) FloatPowScalar(lhs *tensor.RawTensor, rhs float32) *tensor.RawTensor {
	out := newRaw("float_pow_scalar", lhs.Shape(), tensor.Float32, lhs.Device())
	a := lhs.AsFloat32()
	dst := out.AsFloat32()
	for i := range dst {
		dst[i] = float32(math.Pow(float64(a[i]), float64(rhs)))
	}
	return out
}

// FloatIntoInt converts a float tensor to the backend's integer element
// type, truncating toward zero. Values outside the integer range are
// clamped to the nearest representable value rather than left undefined.
func (cpu *CPUBackend[I]) FloatIntoInt(t *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw("float_into_int", t.Shape(), tensor.DataTypeOf[I](), t.Device())
	src := t.AsFloat32()
	dst := elems[I](out)
	for i, v := range src {
		dst[i] = truncToInt[I](v)
	}
	return out
}

// truncToInt truncates toward zero with saturation at the type bounds.
func truncToInt[I tensor.Int](v float32) I {
	f := math.Trunc(float64(v))
	var zero I
	switch any(zero).(type) {
	case int32:
		switch {
		case f >= math.MaxInt32:
			return I(math.MaxInt32)
		case f <= math.MinInt32:
			return I(math.MinInt32)
		}
	case int64:
		switch {
		case f >= math.MaxInt64:
			return any(int64(math.MaxInt64)).(I)
		case f <= math.MinInt64:
			return any(int64(math.MinInt64)).(I)
		}
	}
	return I(f)
}
