package cpu

import (
	"testing"

	"github.com/kiln-ml/kiln/internal/tensor"
)

func TestIntCatDim0(t *testing.T) {
	backend := New[int32]()
	a := int32Raw(t, tensor.Shape{2, 2}, []int32{1, 2, 3, 4})
	b := int32Raw(t, tensor.Shape{3, 2}, []int32{5, 6, 7, 8, 9, 10})

	out := backend.IntCat([]*tensor.RawTensor{a, b}, 0)
	expectInt32(t, out, tensor.Shape{5, 2}, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
}

func TestIntCatDim1(t *testing.T) {
	backend := New[int32]()
	// [[1, 2],     [[5],
	//  [3, 4]]  ++  [6]]
	a := int32Raw(t, tensor.Shape{2, 2}, []int32{1, 2, 3, 4})
	b := int32Raw(t, tensor.Shape{2, 1}, []int32{5, 6})

	out := backend.IntCat([]*tensor.RawTensor{a, b}, 1)
	expectInt32(t, out, tensor.Shape{2, 3}, []int32{1, 2, 5, 3, 4, 6})
}

func TestIntCatThreeInputs(t *testing.T) {
	backend := New[int32]()
	a := int32Raw(t, tensor.Shape{1}, []int32{1})
	b := int32Raw(t, tensor.Shape{2}, []int32{2, 3})
	c := int32Raw(t, tensor.Shape{1}, []int32{4})

	out := backend.IntCat([]*tensor.RawTensor{a, b, c}, 0)
	expectInt32(t, out, tensor.Shape{4}, []int32{1, 2, 3, 4})
}

func TestIntCatEmptyInput(t *testing.T) {
	backend := New[int32]()
	expectPanicKind(t, tensor.ErrInvalidArgument, func() {
		backend.IntCat(nil, 0)
	})
}

func TestIntCatNonJoinMismatch(t *testing.T) {
	backend := New[int32]()
	a := int32Raw(t, tensor.Shape{2, 2}, []int32{1, 2, 3, 4})
	b := int32Raw(t, tensor.Shape{2, 3}, []int32{5, 6, 7, 8, 9, 10})

	expectPanicKind(t, tensor.ErrShapeMismatch, func() {
		backend.IntCat([]*tensor.RawTensor{a, b}, 0)
	})
}

func TestIntSwapDims(t *testing.T) {
	backend := New[int32]()
	// [[1, 2, 3],
	//  [4, 5, 6]]
	x := int32Raw(t, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})

	out := backend.IntSwapDims(x, 0, 1)
	expectInt32(t, out, tensor.Shape{3, 2}, []int32{1, 4, 2, 5, 3, 6})
}

func TestIntSwapDims3D(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2, 1, 3}, []int32{0, 1, 2, 3, 4, 5})

	out := backend.IntSwapDims(x, 0, 2)
	if !out.Shape().Equal(tensor.Shape{3, 1, 2}) {
		t.Fatalf("shape = %v, want [3 1 2]", out.Shape())
	}
	// out[i][0][j] = x[j][0][i]
	expectInt32(t, out, tensor.Shape{3, 1, 2}, []int32{0, 3, 1, 4, 2, 5})
}

func TestIntSwapDimsSelfInverse(t *testing.T) {
	backend := New[int32]()
	orig := []int32{1, 2, 3, 4, 5, 6}
	x := int32Raw(t, tensor.Shape{2, 3}, orig)

	out := backend.IntSwapDims(backend.IntSwapDims(x, 0, 1), 0, 1)
	expectInt32(t, out, tensor.Shape{2, 3}, orig)
}

func TestIntSwapDimsOutOfRange(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})

	expectPanicKind(t, tensor.ErrOutOfRange, func() {
		backend.IntSwapDims(x, 0, 2)
	})
}
