package cpu

import (
	"github.com/kiln-ml/kiln/internal/parallel"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// binary applies f elementwise over two operands of identical shape.
func (cpu *CPUBackend[I]) binary(op string, lhs, rhs *tensor.RawTensor, f func(a, b I) I) *tensor.RawTensor {
	checkSameShape(op, lhs, rhs)

	out := newRaw(op, lhs.Shape(), lhs.DType(), lhs.Device())
	a := elems[I](lhs)
	b := elems[I](rhs)
	dst := elems[I](out)
	parallel.For(len(dst), func(i int) {
		dst[i] = f(a[i], b[i])
	}, cpu.par)
	return out
}

// unary applies f elementwise over one operand.
func (cpu *CPUBackend[I]) unary(op string, t *tensor.RawTensor, f func(v I) I) *tensor.RawTensor {
	out := newRaw(op, t.Shape(), t.DType(), t.Device())
	src := elems[I](t)
	dst := elems[I](out)
	parallel.For(len(dst), func(i int) {
		dst[i] = f(src[i])
	}, cpu.par)
	return out
}

// IntAdd performs elementwise addition.
func (cpu *CPUBackend[I]) IntAdd(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("int_add", lhs, rhs, func(a, b I) I { return a + b })
}

// IntAddScalar performs elementwise addition with a scalar.
func (cpu *CPUBackend[I]) IntAddScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.unary("int_add_scalar", lhs, func(v I) I { return v + rhs })
}

// IntSub performs elementwise subtraction.
func (cpu *CPUBackend[I]) IntSub(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("int_sub", lhs, rhs, func(a, b I) I { return a - b })
}

// IntSubScalar performs elementwise subtraction with a scalar.
func (cpu *CPUBackend[I]) IntSubScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.unary("int_sub_scalar", lhs, func(v I) I { return v - rhs })
}

// IntMul performs elementwise multiplication.
func (cpu *CPUBackend[I]) IntMul(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("int_mul", lhs, rhs, func(a, b I) I { return a * b })
}

// IntMulScalar performs elementwise multiplication with a scalar.
func (cpu *CPUBackend[I]) IntMulScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.unary("int_mul_scalar", lhs, func(v I) I { return v * rhs })
}

// IntDiv performs elementwise division. Division by zero panics with the
// runtime's integer-divide-by-zero error.
func (cpu *CPUBackend[I]) IntDiv(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("int_div", lhs, rhs, func(a, b I) I { return a / b })
}

// IntDivScalar performs elementwise division with a scalar.
func (cpu *CPUBackend[I]) IntDivScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.unary("int_div_scalar", lhs, func(v I) I { return v / rhs })
}

// IntAbs computes the elementwise absolute value.
func (cpu *CPUBackend[I]) IntAbs(t *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("int_abs", t, func(v I) I {
		if v < 0 {
			return -v
		}
		return v
	})
}
