package types

import "strconv"

// IntValue represents a 32-bit signed integer
type IntValue struct {
	val int32
}

// NewInt creates a new IntValue
func NewInt(val int32) IntValue {
	return IntValue{val: val}
}

// Type returns the type code for integers
func (i IntValue) Type() TypeCode {
	return TYPE_INT
}

// String returns the decimal representation
func (i IntValue) String() string {
	return strconv.FormatInt(int64(i.val), 10)
}

// Equal checks deep equality
func (i IntValue) Equal(other Value) bool {
	o, ok := other.(IntValue)
	if !ok {
		return false
	}
	return i.val == o.val
}

// Val returns the integer payload
func (i IntValue) Val() int32 {
	return i.val
}

func (IntValue) sealed() {}
