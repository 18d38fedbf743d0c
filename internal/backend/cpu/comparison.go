package cpu

import "github.com/kiln-ml/kiln/internal/tensor"

// compare applies f elementwise over two operands of identical shape and
// produces a Bool tensor.
func (cpu *CPUBackend[I]) compare(op string, lhs, rhs *tensor.RawTensor, f func(a, b I) bool) *tensor.RawTensor {
	checkSameShape(op, lhs, rhs)

	out := newRaw(op, lhs.Shape(), tensor.Bool, lhs.Device())
	a := elems[I](lhs)
	b := elems[I](rhs)
	dst := out.AsBool()
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
	return out
}

// compareScalar applies f elementwise against a scalar operand.
func (cpu *CPUBackend[I]) compareScalar(op string, lhs *tensor.RawTensor, f func(v I) bool) *tensor.RawTensor {
	out := newRaw(op, lhs.Shape(), tensor.Bool, lhs.Device())
	a := elems[I](lhs)
	dst := out.AsBool()
	for i := range dst {
		dst[i] = f(a[i])
	}
	return out
}

// IntEqual performs elementwise equality comparison.
func (cpu *CPUBackend[I]) IntEqual(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("int_equal", lhs, rhs, func(a, b I) bool { return a == b })
}

// IntEqualScalar performs elementwise equality comparison with a scalar.
func (cpu *CPUBackend[I]) IntEqualScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.compareScalar("int_equal_scalar", lhs, func(v I) bool { return v == rhs })
}

// IntGreater performs elementwise greater-than comparison.
func (cpu *CPUBackend[I]) IntGreater(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("int_greater", lhs, rhs, func(a, b I) bool { return a > b })
}

// IntGreaterScalar performs elementwise greater-than comparison with a scalar.
func (cpu *CPUBackend[I]) IntGreaterScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.compareScalar("int_greater_scalar", lhs, func(v I) bool { return v > rhs })
}

// IntGreaterEqual performs elementwise greater-or-equal comparison.
func (cpu *CPUBackend[I]) IntGreaterEqual(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("int_greater_equal", lhs, rhs, func(a, b I) bool { return a >= b })
}

// IntGreaterEqualScalar performs elementwise greater-or-equal comparison with a scalar.
func (cpu *CPUBackend[I]) IntGreaterEqualScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.compareScalar("int_greater_equal_scalar", lhs, func(v I) bool { return v >= rhs })
}

// IntLower performs elementwise less-than comparison.
func (cpu *CPUBackend[I]) IntLower(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("int_lower", lhs, rhs, func(a, b I) bool { return a < b })
}

// IntLowerScalar performs elementwise less-than comparison with a scalar.
func (cpu *CPUBackend[I]) IntLowerScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.compareScalar("int_lower_scalar", lhs, func(v I) bool { return v < rhs })
}

// IntLowerEqual performs elementwise less-or-equal comparison.
func (cpu *CPUBackend[I]) IntLowerEqual(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("int_lower_equal", lhs, rhs, func(a, b I) bool { return a <= b })
}

// IntLowerEqualScalar performs elementwise less-or-equal comparison with a scalar.
func (cpu *CPUBackend[I]) IntLowerEqualScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cpu.compareScalar("int_lower_equal_scalar", lhs, func(v I) bool { return v <= rhs })
}
