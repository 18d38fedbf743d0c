package tensor

// IntOps is the primitive integer-tensor operation set every backend must
// implement natively. Everything else the framework offers for integer
// tensors is derived from this set (plus FloatOps) by the free functions
// in this package, so conforming backends cannot diverge in observable
// behavior.
//
// The type parameter I is the backend's integer element type. Scalar
// operands cross the contract as I; see ToElem for the conversion rule.
//
// Ownership: operand handles are logically consumed. A caller that needs
// an operand afterwards passes a Clone. No operation mutates a tensor in
// place from the caller's perspective; every operation returns a new
// logical tensor.
//
// Precondition violations (rank or shape mismatch, out-of-range index or
// slice bound) abort the call immediately with a ConditionError panic.
// Numeric edge cases (overflow, division by zero) follow the element
// type's native Go semantics and are documented per backend.
type IntOps[I Int] interface {
	// Lifecycle and metadata.
	IntEmpty(shape Shape, device Device) *RawTensor                // Uninitialized tensor of a shape on a device.
	IntShape(t *RawTensor) Shape                                   // Shape query.
	IntDevice(t *RawTensor) Device                                 // Device query.
	IntToDevice(t *RawTensor, device Device) *RawTensor            // Relocate to a device.
	IntReshape(t *RawTensor, shape Shape) *RawTensor               // Element count must match.
	IntIntoData(t *RawTensor) *Reader[I]                           // Asynchronous materialization.
	IntFromData(data Data[I], device Device) *RawTensor            // Load a host snapshot onto a device.
	IntIntoFloat(t *RawTensor) *RawTensor                          // Lossless-where-possible int -> float conversion.

	// Indexing and slicing. One half-open range per dimension; ranges must
	// not exceed their dimension's extent.
	IntSlice(t *RawTensor, ranges []Range) *RawTensor                         // Extract a sub-tensor.
	IntSliceAssign(t *RawTensor, ranges []Range, value *RawTensor) *RawTensor // Write value into the sliced region.

	// Masking. The mask is a Bool tensor of matching shape.
	IntMaskWhere(t, mask, source *RawTensor) *RawTensor  // Take source where mask, keep t elsewhere.
	IntMaskFill(t, mask *RawTensor, value I) *RawTensor  // Fill value at masked positions.

	// Gather and scatter along one dimension. Index tensors share the
	// operand's rank; indices must be in range for the chosen dimension.
	// Scatter accumulates by sum on index collisions - silent overwrite
	// is a correctness bug.
	IntGather(dim int, t, indices *RawTensor) *RawTensor           // output[..i..] = t[..indices[..i..]..] along dim.
	IntScatter(dim int, t, indices, value *RawTensor) *RawTensor   // Inverse of gather, accumulating.

	// Select and select-assign: gather/scatter specialized to a rank-1
	// index list choosing whole sub-slices along one dimension.
	IntSelect(t *RawTensor, dim int, indices *RawTensor) *RawTensor                // Pick sub-slices by index list.
	IntSelectAssign(t *RawTensor, dim int, indices, value *RawTensor) *RawTensor   // Accumulate value into picked sub-slices.

	// Concatenation. Inputs must be non-empty, same rank, and agree on
	// every non-join dimension.
	IntCat(tensors []*RawTensor, dim int) *RawTensor

	// Comparisons. Each produces a Bool tensor of the operand shape.
	IntEqual(lhs, rhs *RawTensor) *RawTensor          // lhs == rhs.
	IntEqualScalar(lhs *RawTensor, rhs I) *RawTensor  // lhs == scalar.
	IntGreater(lhs, rhs *RawTensor) *RawTensor        // lhs > rhs.
	IntGreaterScalar(lhs *RawTensor, rhs I) *RawTensor
	IntGreaterEqual(lhs, rhs *RawTensor) *RawTensor   // lhs >= rhs.
	IntGreaterEqualScalar(lhs *RawTensor, rhs I) *RawTensor
	IntLower(lhs, rhs *RawTensor) *RawTensor          // lhs < rhs.
	IntLowerScalar(lhs *RawTensor, rhs I) *RawTensor
	IntLowerEqual(lhs, rhs *RawTensor) *RawTensor     // lhs <= rhs.
	IntLowerEqualScalar(lhs *RawTensor, rhs I) *RawTensor

	// Elementwise arithmetic, tensor-tensor and tensor-scalar forms.
	IntAdd(lhs, rhs *RawTensor) *RawTensor
	IntAddScalar(lhs *RawTensor, rhs I) *RawTensor
	IntSub(lhs, rhs *RawTensor) *RawTensor
	IntSubScalar(lhs *RawTensor, rhs I) *RawTensor
	IntMul(lhs, rhs *RawTensor) *RawTensor
	IntMulScalar(lhs *RawTensor, rhs I) *RawTensor
	IntDiv(lhs, rhs *RawTensor) *RawTensor
	IntDivScalar(lhs *RawTensor, rhs I) *RawTensor

	// Reductions.
	IntSum(t *RawTensor) *RawTensor               // Total sum as a single-element rank-1 tensor.
	IntSumDim(t *RawTensor, dim int) *RawTensor   // Sum along dim; dim collapses to extent 1.
	IntMeanDim(t *RawTensor, dim int) *RawTensor  // Truncated arithmetic mean along dim.
	IntArgmax(t *RawTensor, dim int) *RawTensor   // Index positions of maxima; dim collapses to extent 1.
	IntArgmin(t *RawTensor, dim int) *RawTensor   // Index positions of minima; dim collapses to extent 1.

	// Elementwise unary.
	IntAbs(t *RawTensor) *RawTensor

	// Axis manipulation. Pure metadata for strided backends.
	IntSwapDims(t *RawTensor, dim1, dim2 int) *RawTensor

	// Factories.
	IntZeros(shape Shape, device Device) *RawTensor
	IntOnes(shape Shape, device Device) *RawTensor
}

// FloatOps is the float-tensor capability subset the integer contract
// consumes: the derived power operations are cheaper to express in
// floating point, so they round-trip through these.
//
// FloatIntoInt truncates toward zero; this path can lose precision for
// large integer magnitudes and that loss is documented, not hidden.
type FloatOps interface {
	FloatPow(lhs, rhs *RawTensor) *RawTensor               // Elementwise lhs ** rhs on float tensors.
	FloatPowScalar(lhs *RawTensor, rhs float32) *RawTensor // Elementwise lhs ** scalar.
	FloatIntoInt(t *RawTensor) *RawTensor                  // Truncating float -> int conversion.
}

// Backend is the full capability set a numeric backend provides: the
// integer primitive set plus the float operations the derived layer
// delegates to.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//   - backend/gorgonia: gorgonia.org/tensor dense engine
//
// Example:
//
//	b := cpu.New[int32]()
//	t := tensor.IntArange[int32](b, 0, 10, tensor.CPU)
//	sum := b.IntSum(t)
type Backend[I Int] interface {
	IntOps[I]
	FloatOps

	// Name returns the backend name (e.g. "CPU", "Gorgonia").
	Name() string
}
