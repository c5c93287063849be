package types

// StrValue represents an owned string.
// The payload is an immutable Go string, so a StrValue can be copied freely
// without two values ever sharing writable storage.
type StrValue struct {
	val string
}

// NewStr creates a new string value.
// The string is retained as given; Go strings cannot be modified after
// construction, so no copy is made.
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// NewStrBytes creates a new string value from a byte slice.
// The bytes are copied, so the caller may reuse b afterwards.
func NewStrBytes(b []byte) StrValue {
	return StrValue{val: string(b)}
}

// String returns the raw text, unescaped
func (s StrValue) String() string {
	return s.val
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal compares two values for equality (byte-wise, case-sensitive)
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

// Len returns the length of the string in bytes
func (s StrValue) Len() int {
	return len(s.val)
}

func (StrValue) sealed() {}
