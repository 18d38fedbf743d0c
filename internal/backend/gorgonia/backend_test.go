package gorgonia

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ml/kiln/internal/backend/cpu"
	"github.com/kiln-ml/kiln/internal/tensor"
)

// The gorgonia backend must be observationally identical to the CPU
// reference backend; these tests run the same inputs through both.

func loadGG(b tensor.Backend[int32], shape tensor.Shape, values []int32) *tensor.RawTensor {
	return b.IntFromData(tensor.NewData(values, shape), tensor.Gorgonia)
}

func loadCPU(b tensor.Backend[int32], shape tensor.Shape, values []int32) *tensor.RawTensor {
	return b.IntFromData(tensor.NewData(values, shape), tensor.CPU)
}

// assertMatches materializes both results and requires equal snapshots.
func assertMatches(t *testing.T, gg, ref tensor.Backend[int32], got, want *tensor.RawTensor) {
	t.Helper()
	g := gg.IntIntoData(got).Read()
	w := ref.IntIntoData(want).Read()
	require.True(t, g.Shape.Equal(w.Shape), "shape %v, want %v", g.Shape, w.Shape)
	assert.Equal(t, w.Values, g.Values)
}

func TestArithmeticParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	shape := tensor.Shape{2, 3}
	lhs := []int32{1, -2, 3, 40, 5, -6}
	rhs := []int32{7, 8, -9, 1, -2, 3}

	tests := []struct {
		name string
		run  func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor
	}{
		{"add", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntAdd(a, c) }},
		{"sub", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntSub(a, c) }},
		{"mul", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntMul(a, c) }},
		{"div", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntDiv(a, c) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run(gg, loadGG(gg, shape, lhs), loadGG(gg, shape, rhs))
			want := tt.run(ref, loadCPU(ref, shape, lhs), loadCPU(ref, shape, rhs))
			assertMatches(t, gg, ref, got, want)
		})
	}
}

func TestScalarArithmeticParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	shape := tensor.Shape{4}
	values := []int32{10, -20, 31, 4}

	tests := []struct {
		name string
		run  func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor
	}{
		{"add_scalar", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntAddScalar(a, 3) }},
		{"sub_scalar", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntSubScalar(a, 3) }},
		{"mul_scalar", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntMulScalar(a, -2) }},
		{"div_scalar", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntDivScalar(a, 3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run(gg, loadGG(gg, shape, values))
			want := tt.run(ref, loadCPU(ref, shape, values))
			assertMatches(t, gg, ref, got, want)
		})
	}
}

func TestComparisonParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	shape := tensor.Shape{5}
	lhs := []int32{1, 5, 3, -2, 0}
	rhs := []int32{3, 5, 1, -2, 7}

	tests := []struct {
		name string
		run  func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor
	}{
		{"equal", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntEqual(a, c) }},
		{"greater", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntGreater(a, c) }},
		{"greater_equal", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntGreaterEqual(a, c) }},
		{"lower", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntLower(a, c) }},
		{"lower_equal", func(b tensor.Backend[int32], a, c *tensor.RawTensor) *tensor.RawTensor { return b.IntLowerEqual(a, c) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run(gg, loadGG(gg, shape, lhs), loadGG(gg, shape, rhs))
			want := tt.run(ref, loadCPU(ref, shape, lhs), loadCPU(ref, shape, rhs))
			require.Equal(t, tensor.Bool, got.DType())
			assert.Equal(t, want.AsBool(), got.AsBool())
		})
	}
}

func TestScalarComparisonParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	shape := tensor.Shape{4}
	values := []int32{1, 2, 3, 2}

	got := gg.IntGreaterEqualScalar(loadGG(gg, shape, values), 2)
	want := ref.IntGreaterEqualScalar(loadCPU(ref, shape, values), 2)
	assert.Equal(t, want.AsBool(), got.AsBool())
}

func TestReductionParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	shape := tensor.Shape{2, 3}
	values := []int32{1, 8, 3, 7, 2, 9}

	tests := []struct {
		name string
		run  func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor
	}{
		{"sum", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntSum(a) }},
		{"sum_dim0", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntSumDim(a, 0) }},
		{"sum_dim1", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntSumDim(a, 1) }},
		{"mean_dim1", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntMeanDim(a, 1) }},
		{"argmax_dim0", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntArgmax(a, 0) }},
		{"argmax_dim1", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntArgmax(a, 1) }},
		{"argmin_dim1", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntArgmin(a, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run(gg, loadGG(gg, shape, values))
			want := tt.run(ref, loadCPU(ref, shape, values))
			assertMatches(t, gg, ref, got, want)
		})
	}
}

func TestCatParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	got := gg.IntCat([]*tensor.RawTensor{
		loadGG(gg, tensor.Shape{2, 2}, []int32{1, 2, 3, 4}),
		loadGG(gg, tensor.Shape{3, 2}, []int32{5, 6, 7, 8, 9, 10}),
	}, 0)
	want := ref.IntCat([]*tensor.RawTensor{
		loadCPU(ref, tensor.Shape{2, 2}, []int32{1, 2, 3, 4}),
		loadCPU(ref, tensor.Shape{3, 2}, []int32{5, 6, 7, 8, 9, 10}),
	}, 0)
	assertMatches(t, gg, ref, got, want)
}

func TestCatShapeMismatch(t *testing.T) {
	gg := New[int32]()
	a := loadGG(gg, tensor.Shape{2, 2}, []int32{1, 2, 3, 4})
	b := loadGG(gg, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})

	assert.Panics(t, func() {
		gg.IntCat([]*tensor.RawTensor{a, b}, 0)
	})
}

// Integer power routes through the engine's float pow; the truncated
// result must match the reference.
func TestPowParity(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	shape := tensor.Shape{4}
	base := []int32{1, 2, 3, 4}
	exp := []int32{3, 2, 2, 1}

	got := tensor.IntPow(gg, loadGG(gg, shape, base), loadGG(gg, shape, exp))
	want := tensor.IntPow(ref, loadCPU(ref, shape, base), loadCPU(ref, shape, exp))
	assertMatches(t, gg, ref, got, want)
}

// Indexing primitives run on the host path but must still bind results to
// the Gorgonia device.
func TestHostPathDeviceBinding(t *testing.T) {
	gg := New[int32]()
	x := loadGG(gg, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})

	sliced := gg.IntSlice(x, []tensor.Range{{Start: 0, End: 1}})
	assert.Equal(t, tensor.Gorgonia, gg.IntDevice(sliced))

	engine := gg.IntAddScalar(sliced, 1)
	assert.Equal(t, tensor.Gorgonia, gg.IntDevice(engine))
}

func TestGatherOnGorgonia(t *testing.T) {
	gg := New[int32]()
	ref := cpu.New[int32]()

	got := gg.IntGather(1,
		loadGG(gg, tensor.Shape{2, 3}, []int32{10, 20, 30, 40, 50, 60}),
		loadGG(gg, tensor.Shape{2, 2}, []int32{2, 0, 1, 2}))
	want := ref.IntGather(1,
		loadCPU(ref, tensor.Shape{2, 3}, []int32{10, 20, 30, 40, 50, 60}),
		loadCPU(ref, tensor.Shape{2, 2}, []int32{2, 0, 1, 2}))
	assertMatches(t, gg, ref, got, want)
}

// Dimension selectors are validated before any storage is touched; the
// panic carries the same condition kind the reference backend raises.
func TestReductionInvalidDimCondition(t *testing.T) {
	gg := New[int32]()

	tests := []struct {
		name string
		run  func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor
	}{
		{"mean_dim", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntMeanDim(a, 5) }},
		{"sum_dim", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntSumDim(a, 5) }},
		{"argmax", func(b tensor.Backend[int32], a *tensor.RawTensor) *tensor.RawTensor { return b.IntArgmax(a, 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := loadGG(gg, tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected a condition panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value should be an error, got %T", r)
				assert.True(t, errors.Is(err, tensor.ErrOutOfRange), "panic = %v, want out of range", err)
			}()
			tt.run(gg, x)
		})
	}
}

// The gorgonia reader defers the snapshot copy to resolution and holds
// its own tensor reference until then.
func TestIntIntoDataDeferred(t *testing.T) {
	gg := New[int32]()
	reader := gg.IntIntoData(loadGG(gg, tensor.Shape{2}, []int32{4, 2}))

	first := reader.Read()
	second := reader.Read()
	require.True(t, first.Shape.Equal(tensor.Shape{2}))
	assert.Equal(t, []int32{4, 2}, first.Values)
	assert.True(t, first.Equal(second))
}

// Materialize, load, materialize again on the gorgonia backend.
func TestDataRoundTrip(t *testing.T) {
	gg := New[int32]()
	x := loadGG(gg, tensor.Shape{2, 3}, []int32{1, -2, 3, -4, 5, -6})

	first := gg.IntIntoData(x).Read()
	second := gg.IntIntoData(gg.IntFromData(first, tensor.Gorgonia)).Read()

	assert.True(t, first.Equal(second))
}

func TestEmptyTensorOps(t *testing.T) {
	gg := New[int32]()

	empty := gg.IntZeros(tensor.Shape{0, 3}, tensor.Gorgonia)
	out := gg.IntAddScalar(empty, 5)
	require.True(t, out.Shape().Equal(tensor.Shape{0, 3}))
	assert.Equal(t, 0, out.NumElements())
}

func TestBackendName(t *testing.T) {
	assert.Equal(t, "Gorgonia", New[int32]().Name())
	assert.Equal(t, "CPU", cpu.New[int32]().Name())
}
