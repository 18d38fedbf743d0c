package gorgonia

import (
	ggtensor "gorgonia.org/tensor"

	"github.com/kiln-ml/kiln/internal/tensor"
)

// engineFunc is the shape of gorgonia's package-level arithmetic and
// comparison operations: tensor-tensor or tensor-scalar.
type engineFunc func(a, b interface{}, opts ...ggtensor.FuncOpt) (ggtensor.Tensor, error)

func checkSameShape(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		tensor.Errf(op, tensor.ErrShapeMismatch, "operand shapes %v and %v differ", a.Shape(), b.Shape())
	}
}

// binOp runs a tensor-tensor engine operation with an integer result.
func binOp[I tensor.Int](op string, lhs, rhs *tensor.RawTensor, f engineFunc) *tensor.RawTensor {
	checkSameShape(op, lhs, rhs)
	out := alloc(op, lhs.Shape(), lhs.DType())
	if out.NumElements() == 0 {
		return out
	}

	res, err := f(dense[I](lhs), dense[I](rhs))
	if err != nil {
		engineErr(op, err)
	}
	copy(tensor.ElemsOf[I](out), intValues[I](res))
	return out
}

// scalarOp runs a tensor-scalar engine operation with an integer result.
func scalarOp[I tensor.Int](op string, lhs *tensor.RawTensor, rhs I, f engineFunc) *tensor.RawTensor {
	out := alloc(op, lhs.Shape(), lhs.DType())
	if out.NumElements() == 0 {
		return out
	}

	res, err := f(dense[I](lhs), rhs)
	if err != nil {
		engineErr(op, err)
	}
	copy(tensor.ElemsOf[I](out), intValues[I](res))
	return out
}

// cmpOp runs a tensor-tensor engine comparison with a boolean result.
func cmpOp[I tensor.Int](op string, lhs, rhs *tensor.RawTensor, f engineFunc) *tensor.RawTensor {
	checkSameShape(op, lhs, rhs)
	out := alloc(op, lhs.Shape(), tensor.Bool)
	if out.NumElements() == 0 {
		return out
	}

	res, err := f(dense[I](lhs), dense[I](rhs))
	if err != nil {
		engineErr(op, err)
	}
	copy(out.AsBool(), boolValues(res))
	return out
}

// cmpScalarOp runs a tensor-scalar engine comparison.
func cmpScalarOp[I tensor.Int](op string, lhs *tensor.RawTensor, rhs I, f engineFunc) *tensor.RawTensor {
	out := alloc(op, lhs.Shape(), tensor.Bool)
	if out.NumElements() == 0 {
		return out
	}

	res, err := f(dense[I](lhs), rhs)
	if err != nil {
		engineErr(op, err)
	}
	copy(out.AsBool(), boolValues(res))
	return out
}

// IntAdd performs elementwise addition on the engine.
func (b *Backend[I]) IntAdd(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return binOp[I]("int_add", lhs, rhs, ggtensor.Add)
}

// IntAddScalar performs elementwise addition with a scalar.
func (b *Backend[I]) IntAddScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return scalarOp("int_add_scalar", lhs, rhs, ggtensor.Add)
}

// IntSub performs elementwise subtraction on the engine.
func (b *Backend[I]) IntSub(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return binOp[I]("int_sub", lhs, rhs, ggtensor.Sub)
}

// IntSubScalar performs elementwise subtraction with a scalar.
func (b *Backend[I]) IntSubScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return scalarOp("int_sub_scalar", lhs, rhs, ggtensor.Sub)
}

// IntMul performs elementwise multiplication on the engine.
func (b *Backend[I]) IntMul(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return binOp[I]("int_mul", lhs, rhs, ggtensor.Mul)
}

// IntMulScalar performs elementwise multiplication with a scalar.
func (b *Backend[I]) IntMulScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return scalarOp("int_mul_scalar", lhs, rhs, ggtensor.Mul)
}

// IntDiv performs elementwise division on the engine.
func (b *Backend[I]) IntDiv(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return binOp[I]("int_div", lhs, rhs, ggtensor.Div)
}

// IntDivScalar performs elementwise division with a scalar.
func (b *Backend[I]) IntDivScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return scalarOp("int_div_scalar", lhs, rhs, ggtensor.Div)
}

// IntEqual performs elementwise equality comparison on the engine.
func (b *Backend[I]) IntEqual(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cmpOp[I]("int_equal", lhs, rhs, ggtensor.ElEq)
}

// IntEqualScalar performs elementwise equality comparison with a scalar.
func (b *Backend[I]) IntEqualScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cmpScalarOp("int_equal_scalar", lhs, rhs, ggtensor.ElEq)
}

// IntGreater performs elementwise greater-than comparison on the engine.
func (b *Backend[I]) IntGreater(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cmpOp[I]("int_greater", lhs, rhs, ggtensor.Gt)
}

// IntGreaterScalar performs elementwise greater-than comparison with a scalar.
func (b *Backend[I]) IntGreaterScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cmpScalarOp("int_greater_scalar", lhs, rhs, ggtensor.Gt)
}

// IntGreaterEqual performs elementwise greater-or-equal comparison on the engine.
func (b *Backend[I]) IntGreaterEqual(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cmpOp[I]("int_greater_equal", lhs, rhs, ggtensor.Gte)
}

// IntGreaterEqualScalar performs elementwise greater-or-equal comparison with a scalar.
func (b *Backend[I]) IntGreaterEqualScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cmpScalarOp("int_greater_equal_scalar", lhs, rhs, ggtensor.Gte)
}

// IntLower performs elementwise less-than comparison on the engine.
func (b *Backend[I]) IntLower(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cmpOp[I]("int_lower", lhs, rhs, ggtensor.Lt)
}

// IntLowerScalar performs elementwise less-than comparison with a scalar.
func (b *Backend[I]) IntLowerScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cmpScalarOp("int_lower_scalar", lhs, rhs, ggtensor.Lt)
}

// IntLowerEqual performs elementwise less-or-equal comparison on the engine.
func (b *Backend[I]) IntLowerEqual(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	return cmpOp[I]("int_lower_equal", lhs, rhs, ggtensor.Lte)
}

// IntLowerEqualScalar performs elementwise less-or-equal comparison with a scalar.
func (b *Backend[I]) IntLowerEqualScalar(lhs *tensor.RawTensor, rhs I) *tensor.RawTensor {
	return cmpScalarOp("int_lower_equal_scalar", lhs, rhs, ggtensor.Lte)
}

// IntSum sums all elements on the engine into a single-element rank-1
// tensor.
func (b *Backend[I]) IntSum(t *tensor.RawTensor) *tensor.RawTensor {
	out := alloc("int_sum", tensor.Shape{1}, t.DType())
	if t.NumElements() == 0 {
		return out
	}

	res, err := ggtensor.Sum(dense[I](t))
	if err != nil {
		engineErr("int_sum", err)
	}
	copy(tensor.ElemsOf[I](out), intValues[I](res))
	return out
}

// IntSumDim sums along one dimension on the engine; the dimension
// collapses to extent 1.
func (b *Backend[I]) IntSumDim(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := t.Shape()
	checkDim("int_sum_dim", dim, shape.Rank())

	outShape := shape.Clone()
	outShape[dim] = 1
	out := alloc("int_sum_dim", outShape, t.DType())
	if t.NumElements() == 0 {
		return out
	}

	res, err := ggtensor.Sum(dense[I](t), dim)
	if err != nil {
		engineErr("int_sum_dim", err)
	}
	copy(tensor.ElemsOf[I](out), intValues[I](res))
	return out
}

// IntMeanDim computes the truncated arithmetic mean along one dimension:
// the engine's dim-local sum divided by the pre-reduction extent.
func (b *Backend[I]) IntMeanDim(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := t.Shape()
	checkDim("int_mean_dim", dim, shape.Rank())

	extent := shape[dim]
	out := b.IntSumDim(t, dim)
	dst := tensor.ElemsOf[I](out)
	for i := range dst {
		dst[i] /= I(int64(extent))
	}
	return out
}

// IntArgmax returns the index positions of the maxima along dim.
func (b *Backend[I]) IntArgmax(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return argOp[I]("int_argmax", t, dim, ggtensor.Argmax)
}

// IntArgmin returns the index positions of the minima along dim.
func (b *Backend[I]) IntArgmin(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	return argOp[I]("int_argmin", t, dim, ggtensor.Argmin)
}

// argOp runs an engine arg-reduction; the engine reports positions as Go
// ints, converted here to the element type with the reduced dimension
// kept at extent 1.
func argOp[I tensor.Int](op string, t *tensor.RawTensor, dim int, f func(ggtensor.Tensor, int) (ggtensor.Tensor, error)) *tensor.RawTensor {
	shape := t.Shape()
	checkDim(op, dim, shape.Rank())

	outShape := shape.Clone()
	outShape[dim] = 1
	out := alloc(op, outShape, t.DType())

	res, err := f(dense[I](t), dim)
	if err != nil {
		engineErr(op, err)
	}

	dst := tensor.ElemsOf[I](out)
	switch v := res.Data().(type) {
	case []int:
		for i, pos := range v {
			dst[i] = I(int64(pos))
		}
	case int:
		dst[0] = I(int64(v))
	default:
		panic("gorgonia: unexpected engine result type")
	}
	return out
}

// IntCat concatenates tensors along the given dimension on the engine.
func (b *Backend[I]) IntCat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		tensor.Errf("int_cat", tensor.ErrInvalidArgument, "at least one tensor required")
	}

	first := tensors[0].Shape()
	checkDim("int_cat", dim, first.Rank())
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
	}
	if len(tensors) == 1 {
		return tensors[0].Clone()
	}

	rest := make([]*ggtensor.Dense, len(tensors)-1)
	for i, t := range tensors[1:] {
		rest[i] = dense[I](t)
	}
	res, err := dense[I](tensors[0]).Concat(dim, rest...)
	if err != nil {
		engineErr("int_cat", err)
	}

	out := alloc("int_cat", tensor.Shape(res.Shape()), tensors[0].DType())
	copy(tensor.ElemsOf[I](out), intValues[I](res))
	return out
}

// FloatPow raises lhs to the power of rhs on the engine.
func (b *Backend[I]) FloatPow(lhs, rhs *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("float_pow", lhs, rhs)
	out := alloc("float_pow", lhs.Shape(), tensor.Float32)
	if out.NumElements() == 0 {
		return out
	}

	res, err := ggtensor.Pow(denseFloat(lhs), denseFloat(rhs))
	if err != nil {
		engineErr("float_pow", err)
	}
	copy(out.AsFloat32(), floatValues(res))
	return out
}

// FloatPowScalar raises lhs to a scalar exponent on the engine.
func (b *Backend[I]) FloatPowScalar(lhs *tensor.RawTensor, rhs float32) *tensor.RawTensor {
	out := alloc("float_pow_scalar", lhs.Shape(), tensor.Float32)
	if out.NumElements() == 0 {
		return out
	}

	res, err := ggtensor.Pow(denseFloat(lhs), rhs)
	if err != nil {
		engineErr("float_pow_scalar", err)
	}
	copy(out.AsFloat32(), floatValues(res))
	return out
}

// floatValues extracts the float result values of an engine op.
func floatValues(res ggtensor.Tensor) []float32 {
	switch v := res.Data().(type) {
	case []float32:
		return v
	case float32:
		return []float32{v}
	default:
		panic("gorgonia: unexpected engine result type")
	}
}

// checkDim validates a dimension selector.
func checkDim(op string, dim, rank int) {
	if dim < 0 || dim >= rank {
		tensor.Errf(op, tensor.ErrOutOfRange, "dimension %d out of range for rank %d", dim, rank)
	}
}
