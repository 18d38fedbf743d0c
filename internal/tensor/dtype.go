// Package tensor provides the core types and the backend operation
// contract for integer tensors in the Kiln ML framework.
package tensor

// Int is the constraint for integer element types a backend may use.
type Int interface {
	int32 | int64
}

// Elem is the constraint for element types that can cross the
// materialization boundary as host data.
type Elem interface {
	int32 | int64 | float32 | float64 | bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Int32 DataType = iota
	Int64
	Float32
	Float64
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the DataType for a generic element type E.
func DataTypeOf[E Elem]() DataType {
	var zero E
	switch any(zero).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}

// ToElem converts a generic numeric literal to the integer element type I.
// This is the single documented scalar conversion rule of the contract:
// float sources truncate toward zero, integer sources convert with Go's
// native wraparound on overflow.
func ToElem[I Int](v float64) I {
	var zero I
	switch any(zero).(type) {
	case int32:
		return any(int32(v)).(I)
	case int64:
		return any(int64(v)).(I)
	default:
		panic("unsupported element type")
	}
}
