// Package runtime implements the operations compiled MiniScript programs
// link against: displaying a value and concatenating two strings.
package runtime

import (
	"errors"
	"fmt"
	"io"
	"miniscript/trace"
	"miniscript/types"
	"os"
)

// Runtime binds the operations to an output stream, an error stream and
// an exit function. A Runtime holds no values between calls.
type Runtime struct {
	stdout          io.Writer
	stderr          io.Writer
	exit            func(int)
	tracer          *trace.Tracer
	maxStringConcat int
}

// New creates a runtime writing to the given streams. A nil stream means
// the process's stdout or stderr, looked up at write time.
// Fatal errors terminate the process with os.Exit until SetExit is called.
func New(stdout, stderr io.Writer) *Runtime {
	return &Runtime{
		stdout:          stdout,
		stderr:          stderr,
		exit:            os.Exit,
		maxStringConcat: DefaultMaxStringConcat,
	}
}

// NewFromConfig creates a runtime on the process streams using cfg's limits.
// Tracing settings are applied by the caller through trace.Init.
func NewFromConfig(cfg *Config) *Runtime {
	r := New(nil, nil)
	r.SetMaxStringConcat(cfg.MaxStringConcat)
	return r
}

// SetExit replaces the function called on a fatal error
func (r *Runtime) SetExit(exit func(int)) {
	r.exit = exit
}

// SetTracer attaches a tracer. A nil tracer falls back to the global one.
func (r *Runtime) SetTracer(t *trace.Tracer) {
	r.tracer = t
}

// SetMaxStringConcat sets the largest string concatenation may produce.
// Zero removes the limit.
func (r *Runtime) SetMaxStringConcat(n int) {
	r.maxStringConcat = ClampStringLimit(n)
}

// MaxStringConcat returns the current string limit
func (r *Runtime) MaxStringConcat() int {
	return r.maxStringConcat
}

// Fatal reports err on the error stream and terminates the program run
// with ExitFatal. Errors that are not RuntimeErrors are reported as-is.
func (r *Runtime) Fatal(err error) {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		r.traceFatal(rerr)
	}
	fmt.Fprintf(r.errOut(), "fatal: %v\n", err)
	r.exit(ExitFatal)
}

func (r *Runtime) out() io.Writer {
	if r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

func (r *Runtime) errOut() io.Writer {
	if r.stderr == nil {
		return os.Stderr
	}
	return r.stderr
}

// TraceLet records a variable binding on the runtime's tracer
func (r *Runtime) TraceLet(name string, v types.Value) {
	if r.tracer != nil {
		r.tracer.Let(name, v)
		return
	}
	trace.Let(name, v)
}

func (r *Runtime) traceFatal(err *RuntimeError) {
	if r.tracer != nil {
		r.tracer.Fatal(err.Op, err.Code, err.Message)
		return
	}
	trace.Fatal(err.Op, err.Code, err.Message)
}

// Default is the runtime used by the package-level functions.
// It writes to the process's stdout and stderr.
var Default = New(nil, nil)

// Print displays v on the default runtime's output stream
func Print(v types.Value) {
	Default.Print(v)
}

// MustConcat concatenates two strings on the default runtime, terminating
// the process if the operands are not strings or the result exceeds the limit.
func MustConcat(a, b types.Value) types.Value {
	return Default.MustConcat(a, b)
}
