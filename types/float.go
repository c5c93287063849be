package types

import (
	"math"
	"strconv"
)

// FloatValue represents a 64-bit floating point number
type FloatValue struct {
	val float64
}

// NewFloat creates a new FloatValue
func NewFloat(val float64) FloatValue {
	return FloatValue{val: val}
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the fixed-point representation with six fractional digits.
// Non-finite values print the way C's %f prints them.
func (f FloatValue) String() string {
	switch {
	case math.IsNaN(f.val):
		return "nan"
	case math.IsInf(f.val, 1):
		return "inf"
	case math.IsInf(f.val, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f.val, 'f', 6, 64)
}

// Equal checks deep equality
func (f FloatValue) Equal(other Value) bool {
	o, ok := other.(FloatValue)
	if !ok {
		return false
	}
	// NaN != NaN (IEEE 754 semantics)
	if math.IsNaN(f.val) || math.IsNaN(o.val) {
		return false
	}
	return f.val == o.val
}

// Val returns the float payload
func (f FloatValue) Val() float64 {
	return f.val
}

// IsNaN returns true if the float is NaN
func (f FloatValue) IsNaN() bool {
	return math.IsNaN(f.val)
}

// IsInf returns true if the float is infinite
func (f FloatValue) IsInf() bool {
	return math.IsInf(f.val, 0)
}

func (FloatValue) sealed() {}
