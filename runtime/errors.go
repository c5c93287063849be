package runtime

import (
	"fmt"
	"miniscript/types"
)

// Exit statuses used by the runtime
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitFatal = 70
)

// Messages reported for fatal errors
const (
	MsgConcatType  = "concatenation requires string-typed operands"
	MsgAllocFailed = "allocation failure"
)

// RuntimeError is a fatal error raised by a runtime operation
type RuntimeError struct {
	Op      string          // operation that failed ("concat", "let", ...)
	Code    types.ErrorCode // E_TYPE, E_QUOTA, E_VARNF
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Op, e.Message, e.Code)
}

// NewError creates a RuntimeError
func NewError(op string, code types.ErrorCode, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Op: op, Code: code, Message: fmt.Sprintf(format, args...)}
}
