package types

// BoolValue represents a boolean
type BoolValue struct {
	val bool
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{val: val}
}

// Type returns the type code for booleans
func (b BoolValue) Type() TypeCode {
	return TYPE_BOOL
}

// String returns the literal representation
func (b BoolValue) String() string {
	if b.val {
		return "true"
	}
	return "false"
}

// Equal checks deep equality
func (b BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return b.val == o.val
}

// Val returns the boolean payload
func (b BoolValue) Val() bool {
	return b.val
}

func (BoolValue) sealed() {}
