package types

// ErrorCode represents a runtime error kind (E_TYPE, E_QUOTA, etc.)
type ErrorCode int

// Error codes. The numeric values are stable.
const (
	E_NONE  ErrorCode = 0
	E_TYPE  ErrorCode = 1
	E_VARNF ErrorCode = 6
	E_QUOTA ErrorCode = 14
)

// String returns the name for an error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_TYPE:
		return "E_TYPE"
	case E_VARNF:
		return "E_VARNF"
	case E_QUOTA:
		return "E_QUOTA"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_TYPE:
		return "Type mismatch"
	case E_VARNF:
		return "Variable not found"
	case E_QUOTA:
		return "Resource limit exceeded"
	default:
		return "Unknown error"
	}
}

// ErrorFromString converts a string like "E_TYPE" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	switch s {
	case "E_NONE":
		return E_NONE, true
	case "E_TYPE":
		return E_TYPE, true
	case "E_VARNF":
		return E_VARNF, true
	case "E_QUOTA":
		return E_QUOTA, true
	default:
		return E_NONE, false
	}
}

// Value is the interface all runtime values implement.
// The set of implementations is closed: only this package can add variants,
// so a payload can only be read through the variant that holds it.
type Value interface {
	Type() TypeCode
	String() string   // display form, without the trailing newline
	Equal(Value) bool // same variant and same payload
	sealed()
}
