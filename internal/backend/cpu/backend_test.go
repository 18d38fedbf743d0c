package cpu

import (
	"errors"
	"testing"

	"github.com/kiln-ml/kiln/internal/tensor"
)

// int32Raw builds an int32 tensor with the given values.
func int32Raw(t *testing.T, shape tensor.Shape, values []int32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Int32, tensor.CPU)
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	copy(raw.AsInt32(), values)
	return raw
}

// boolRaw builds a bool tensor with the given values.
func boolRaw(t *testing.T, shape tensor.Shape, values []bool) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Bool, tensor.CPU)
	if err != nil {
		t.Fatalf("Failed to create mask tensor: %v", err)
	}
	copy(raw.AsBool(), values)
	return raw
}

// expectInt32 checks a result tensor's shape and values.
func expectInt32(t *testing.T, got *tensor.RawTensor, shape tensor.Shape, want []int32) {
	t.Helper()
	if !got.Shape().Equal(shape) {
		t.Fatalf("result shape = %v, want %v", got.Shape(), shape)
	}
	data := got.AsInt32()
	for i, w := range want {
		if data[i] != w {
			t.Errorf("result[%d] = %d, want %d", i, data[i], w)
		}
	}
}

// expectBool checks a comparison result's shape and values.
func expectBool(t *testing.T, got *tensor.RawTensor, shape tensor.Shape, want []bool) {
	t.Helper()
	if got.DType() != tensor.Bool {
		t.Fatalf("result dtype = %v, want Bool", got.DType())
	}
	if !got.Shape().Equal(shape) {
		t.Fatalf("result shape = %v, want %v", got.Shape(), shape)
	}
	data := got.AsBool()
	for i, w := range want {
		if data[i] != w {
			t.Errorf("result[%d] = %v, want %v", i, data[i], w)
		}
	}
}

// expectPanicKind runs fn and checks that it panics with the given
// condition kind.
func expectPanicKind(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a condition panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, kind) {
			t.Fatalf("panic = %v, want kind %v", r, kind)
		}
	}()
	fn()
}

func TestFactories(t *testing.T) {
	backend := New[int32]()

	zeros := backend.IntZeros(tensor.Shape{2, 3}, tensor.CPU)
	expectInt32(t, zeros, tensor.Shape{2, 3}, []int32{0, 0, 0, 0, 0, 0})

	ones := backend.IntOnes(tensor.Shape{2, 2}, tensor.CPU)
	expectInt32(t, ones, tensor.Shape{2, 2}, []int32{1, 1, 1, 1})

	empty := backend.IntEmpty(tensor.Shape{4}, tensor.CPU)
	if !backend.IntShape(empty).Equal(tensor.Shape{4}) {
		t.Errorf("IntEmpty shape = %v, want [4]", backend.IntShape(empty))
	}
	if backend.IntDevice(empty) != tensor.CPU {
		t.Errorf("IntDevice = %v, want CPU", backend.IntDevice(empty))
	}
}

func TestIntReshape(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})

	out := backend.IntReshape(x, tensor.Shape{3, 2})
	expectInt32(t, out, tensor.Shape{3, 2}, []int32{1, 2, 3, 4, 5, 6})
}

func TestIntReshapeCountMismatch(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})

	expectPanicKind(t, tensor.ErrShapeMismatch, func() {
		backend.IntReshape(x, tensor.Shape{4, 2})
	})
}

func TestIntToDevice(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2}, []int32{1, 2})

	moved := backend.IntToDevice(x, tensor.Gorgonia)
	if backend.IntDevice(moved) != tensor.Gorgonia {
		t.Errorf("device = %v, want Gorgonia", backend.IntDevice(moved))
	}
	expectInt32(t, moved, tensor.Shape{2}, []int32{1, 2})
}

// Materialize, load, materialize again: the round trip must reproduce the
// snapshot exactly.
func TestDataRoundTrip(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2, 3}, []int32{1, -2, 3, -4, 5, -6})

	first := backend.IntIntoData(x).Read()
	loaded := backend.IntFromData(first, tensor.CPU)
	second := backend.IntIntoData(loaded).Read()

	if !first.Equal(second) {
		t.Errorf("round trip changed the snapshot: %+v vs %+v", first, second)
	}
}

// The materialized snapshot must be decoupled from later writes to the
// tensor's storage.
func TestIntIntoDataSnapshotIsolation(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{2}, []int32{10, 20})

	reader := backend.IntIntoData(x.Clone())
	x.AsInt32()[0] = 99

	data := reader.Read()
	if data.Values[0] != 10 {
		t.Errorf("snapshot[0] = %d, want 10", data.Values[0])
	}
}

func TestIntIntoFloat(t *testing.T) {
	backend := New[int32]()
	x := int32Raw(t, tensor.Shape{3}, []int32{-1, 0, 5})

	out := backend.IntIntoFloat(x)
	if out.DType() != tensor.Float32 {
		t.Fatalf("dtype = %v, want Float32", out.DType())
	}
	want := []float32{-1, 0, 5}
	data := out.AsFloat32()
	for i, w := range want {
		if data[i] != w {
			t.Errorf("result[%d] = %f, want %f", i, data[i], w)
		}
	}
}

func TestInt64Backend(t *testing.T) {
	backend := New[int64]()

	x := backend.IntFromData(tensor.NewData([]int64{1 << 40, 2 << 40}, tensor.Shape{2}), tensor.CPU)
	sum := backend.IntSum(x)
	if got := sum.AsInt64()[0]; got != 3<<40 {
		t.Errorf("sum = %d, want %d", got, int64(3)<<40)
	}
}
