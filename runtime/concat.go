package runtime

import (
	"miniscript/trace"
	"miniscript/types"
	"strings"
)

// Concat returns a new string holding a's text followed by b's text.
// Both operands must be strings; no other variant is converted to text.
// The inputs are not modified and the result never shares storage with them.
func (r *Runtime) Concat(a, b types.Value) (types.Value, error) {
	left, okA := a.(types.StrValue)
	right, okB := b.(types.StrValue)
	if !okA || !okB {
		return nil, NewError("concat", types.E_TYPE, MsgConcatType)
	}

	n := left.Len() + right.Len()
	if n < 0 || (r.maxStringConcat > 0 && n > r.maxStringConcat) {
		return nil, NewError("concat", types.E_QUOTA, "%s: %d bytes exceeds limit of %d",
			MsgAllocFailed, n, r.maxStringConcat)
	}

	var out strings.Builder
	out.Grow(n)
	out.WriteString(left.Value())
	out.WriteString(right.Value())
	result := types.NewStr(out.String())

	if r.tracer != nil {
		r.tracer.Concat(a, b, result)
	} else {
		trace.Concat(a, b, result)
	}
	return result, nil
}

// MustConcat is Concat for generated programs: a failure is fatal.
// If the exit function returns (as it does under test), MustConcat returns nil.
func (r *Runtime) MustConcat(a, b types.Value) types.Value {
	v, err := r.Concat(a, b)
	if err != nil {
		r.Fatal(err)
		return nil
	}
	return v
}
