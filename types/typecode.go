package types

// TypeCode is the tag identifying which variant a Value holds
type TypeCode int

const (
	TYPE_INT TypeCode = iota
	TYPE_FLOAT
	TYPE_STR
	TYPE_BOOL
	TYPE_NIL
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_INT:
		return "INT"
	case TYPE_FLOAT:
		return "FLOAT"
	case TYPE_STR:
		return "STR"
	case TYPE_BOOL:
		return "BOOL"
	case TYPE_NIL:
		return "NIL"
	default:
		return "UNKNOWN"
	}
}
