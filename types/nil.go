package types

// NilValue represents the absence of a value. It has no payload.
type NilValue struct{}

// NewNil returns the nil value
func NewNil() NilValue {
	return NilValue{}
}

// Type returns the type code for nil
func (NilValue) Type() TypeCode {
	return TYPE_NIL
}

// String returns the literal representation
func (NilValue) String() string {
	return "nil"
}

// Equal reports whether other is also nil
func (NilValue) Equal(other Value) bool {
	_, ok := other.(NilValue)
	return ok
}

func (NilValue) sealed() {}
