package trace

import (
	"fmt"
	"io"
	"miniscript/types"
	"os"
	"path/filepath"
	"sync"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// New creates a tracer writing to writer (stderr if nil)
func New(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	globalTracer = New(enabled, filters, writer)
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if an operation name matches any of the filter patterns
func (t *Tracer) matchesFilter(op string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, op); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) printf(op string, format string, args ...interface{}) {
	if t == nil || !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] "+format+"\n", args...)
}

// Display logs a value being displayed
func (t *Tracer) Display(v types.Value) {
	t.printf("display", "DISPLAY %s %q", v.Type(), v.String())
}

// Concat logs a concatenation and its result
func (t *Tracer) Concat(a, b types.Value, result types.Value) {
	t.printf("concat", "CONCAT %s %s => %s", describe(a), describe(b), describe(result))
}

// Let logs a variable binding
func (t *Tracer) Let(name string, v types.Value) {
	t.printf("let", "LET %s = %s", name, describe(v))
}

// Fatal logs a fatal runtime error
func (t *Tracer) Fatal(op string, code types.ErrorCode, message string) {
	t.printf("fatal", "FATAL %s %s %s", op, code, message)
}

// describe renders a value with its tag, truncating long strings for readability
func describe(v types.Value) string {
	if v == nil {
		return "<none>"
	}
	s := v.String()
	if v.Type() == types.TYPE_STR {
		if len(s) > 60 {
			s = s[:57] + "..."
		}
		s = fmt.Sprintf("%q", s)
	}
	return v.Type().String() + "(" + s + ")"
}

// Global convenience functions

// Display logs a display call using the global tracer
func Display(v types.Value) {
	globalTracer.Display(v)
}

// Concat logs a concatenation using the global tracer
func Concat(a, b types.Value, result types.Value) {
	globalTracer.Concat(a, b, result)
}

// Let logs a variable binding using the global tracer
func Let(name string, v types.Value) {
	globalTracer.Let(name, v)
}

// Fatal logs a fatal error using the global tracer
func Fatal(op string, code types.ErrorCode, message string) {
	globalTracer.Fatal(op, code, message)
}
