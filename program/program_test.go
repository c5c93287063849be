package program

import (
	"bytes"
	"errors"
	"miniscript/runtime"
	"miniscript/trace"
	"miniscript/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRuntime() (*runtime.Runtime, *bytes.Buffer) {
	var out bytes.Buffer
	r := runtime.New(&out, &bytes.Buffer{})
	r.SetExit(func(int) {})
	return r, &out
}

func TestExecStrings(t *testing.T) {
	prog, err := Load("testdata/strings.yaml")
	require.NoError(t, err)

	r, out := testRuntime()
	env, err := Exec(r, prog)
	require.NoError(t, err)

	want := "contenido asignado a las variables es:\n" +
		"valor name:\n" +
		"MiniScript Tester\n" +
		"valor greeting:\n" +
		"Hi, MiniScript Tester\n" +
		"valor quote:\n" +
		"She said: \"Keep coding!\"\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, []string{"greeting", "name", "quote"}, env.Names())
}

func TestExecVariables(t *testing.T) {
	prog, err := Load("testdata/variables.yaml")
	require.NoError(t, err)

	r, out := testRuntime()
	env, err := Exec(r, prog)
	require.NoError(t, err)

	want := "contenido asignado a las variables es:\n" +
		"valor x:\n42\n" +
		"valor y:\n3.140000\n" +
		"valor name:\nMiniScript Tester\n" +
		"valor isValid:\ntrue\n" +
		"valor nothing:\nnil\n" +
		"valor greeting:\nHi, MiniScript Tester\n" +
		"valor quote:\nShe said: \"Keep coding!\"\n"
	assert.Equal(t, want, out.String())

	x, ok := env.Get("x")
	require.True(t, ok)
	assert.True(t, x.Equal(types.NewInt(42)))
	nothing, _ := env.Get("nothing")
	assert.Equal(t, types.TYPE_NIL, nothing.Type())
}

func TestExecStopsOnTypeMismatch(t *testing.T) {
	prog, err := Load("testdata/mismatch.yaml")
	require.NoError(t, err)

	r, out := testRuntime()
	env, err := Exec(r, prog)

	var rerr *runtime.RuntimeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, types.E_TYPE, rerr.Code)
	assert.Equal(t, "before\n", out.String())
	_, bound := env.Get("bad")
	assert.False(t, bound)
}

func TestExecUndefinedVariable(t *testing.T) {
	prog, err := Parse([]byte("name: t\nsteps:\n  - print: {var: missing}\n"))
	require.NoError(t, err)

	r, _ := testRuntime()
	_, err = Exec(r, prog)
	var rerr *runtime.RuntimeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, types.E_VARNF, rerr.Code)
}

func TestParseRejectsMalformedSteps(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty step", "steps:\n  - {}\n"},
		{"let without value", "steps:\n  - let: x\n"},
		{"let and print", "steps:\n  - let: x\n    value: {int: 1}\n    print: {int: 1}\n"},
		{"two forms", "steps:\n  - print: {int: 1, str: a}\n"},
		{"concat arity", "steps:\n  - print: {concat: [{str: a}]}\n"},
		{"int overflow", "steps:\n  - print: {int: 3000000000}\n"},
		{"bad yaml", "steps: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestStepString(t *testing.T) {
	prog, err := Load("testdata/strings.yaml")
	require.NoError(t, err)
	assert.Equal(t, `name = "MiniScript Tester"`, prog.Steps[0].String())
	assert.Equal(t, `greeting = "Hi, " + name`, prog.Steps[1].String())
	assert.Equal(t, `print name`, prog.Steps[5].String())
}

func TestEnvironmentSetReplaces(t *testing.T) {
	env := NewEnvironment()
	env.Set("a", types.NewInt(1))
	env.Set("a", types.NewStr("one"))
	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", v.String())
	_, ok = env.Get("b")
	assert.False(t, ok)
}

func TestExecValidatesProgram(t *testing.T) {
	tests := []struct {
		name string
		prog *Program
	}{
		{"let without value", &Program{Steps: []Step{{Let: "x"}}}},
		{"empty step", &Program{Steps: []Step{{}}}},
		{"short concat", &Program{Steps: []Step{{Print: &Expr{Concat: []Expr{{Nil: true}}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := testRuntime()
			_, err := Exec(r, tt.prog)
			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}

func TestEvalNilExpr(t *testing.T) {
	r, _ := testRuntime()
	v, err := Eval(r, NewEnvironment(), nil)
	assert.Nil(t, v)
	assert.Error(t, err)
}

func TestExecTracesBindingsOnRuntimeTracer(t *testing.T) {
	r, _ := testRuntime()
	var tb bytes.Buffer
	r.SetTracer(trace.New(true, []string{"let"}, &tb))

	prog, err := Parse([]byte("steps:\n  - let: x\n    value: {int: 42}\n"))
	require.NoError(t, err)
	_, err = Exec(r, prog)
	require.NoError(t, err)
	assert.Equal(t, "[TRACE] LET x = INT(42)\n", tb.String())
}
