package runtime

import (
	"io"
	"miniscript/trace"
	"miniscript/types"
)

// Display writes the one-line rendering of v to w.
// The only possible error is a write error from w.
func Display(w io.Writer, v types.Value) error {
	buf := make([]byte, 0, displayLen(v)+1)
	buf = append(buf, v.String()...)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

// displayLen estimates the rendered size so strings are written in one call
func displayLen(v types.Value) int {
	if s, ok := v.(types.StrValue); ok {
		return s.Len()
	}
	return 16
}

// Print displays v on the runtime's output stream.
// Write errors belong to the host and are not raised as runtime errors.
func (r *Runtime) Print(v types.Value) {
	if r.tracer != nil {
		r.tracer.Display(v)
	} else {
		trace.Display(v)
	}
	_ = Display(r.out(), v)
}
