package program

import (
	"fmt"
	"miniscript/runtime"
	"miniscript/types"
)

// Exec validates the program, then runs its steps in order on r and returns
// the final bindings. The first runtime error stops the run; the caller
// decides whether it is fatal.
func Exec(r *runtime.Runtime, prog *Program) (*Environment, error) {
	env := NewEnvironment()
	if err := prog.Validate(); err != nil {
		return env, err
	}
	for i := range prog.Steps {
		step := &prog.Steps[i]
		if step.Print != nil {
			v, err := Eval(r, env, step.Print)
			if err != nil {
				return env, err
			}
			r.Print(v)
			continue
		}

		v, err := Eval(r, env, step.Value)
		if err != nil {
			return env, err
		}
		env.Set(step.Let, v)
		r.TraceLet(step.Let, v)
	}
	return env, nil
}

// Eval builds the value described by e
func Eval(r *runtime.Runtime, env *Environment, e *Expr) (types.Value, error) {
	if e == nil {
		return nil, fmt.Errorf("missing expression")
	}
	switch {
	case e.Int != nil:
		return types.NewInt(*e.Int), nil
	case e.Float != nil:
		return types.NewFloat(*e.Float), nil
	case e.Str != nil:
		return types.NewStr(*e.Str), nil
	case e.Bool != nil:
		return types.NewBool(*e.Bool), nil
	case e.Var != "":
		v, ok := env.Get(e.Var)
		if !ok {
			return nil, runtime.NewError("eval", types.E_VARNF, "undefined variable %s", e.Var)
		}
		return v, nil
	case e.Concat != nil:
		if len(e.Concat) != 2 {
			return nil, fmt.Errorf("concat takes 2 operands, got %d", len(e.Concat))
		}
		a, err := Eval(r, env, &e.Concat[0])
		if err != nil {
			return nil, err
		}
		b, err := Eval(r, env, &e.Concat[1])
		if err != nil {
			return nil, err
		}
		return r.Concat(a, b)
	default:
		return types.NewNil(), nil
	}
}
