package runtime

import "math"

// Bounds for the max_string_concat setting, in bytes.
// The default of zero means concatenation results are not capped.
const (
	DefaultMaxStringConcat = 0
	MinStringConcatLimit   = 1021
	MaxStringConcatLimit   = math.MaxInt32 - MinStringConcatLimit
)

// ClampStringLimit bounds a configured string limit to the accepted range.
// Zero or negative means no limit.
func ClampStringLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxStringConcat
	case n < MinStringConcatLimit:
		return MinStringConcatLimit
	case n > MaxStringConcatLimit:
		return MaxStringConcatLimit
	}
	return n
}
