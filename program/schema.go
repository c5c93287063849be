package program

import (
	"fmt"
	"strconv"
	"strings"
)

// Program is a sequence of generated runtime calls
type Program struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one statement: either a binding or a print.
type Step struct {
	Let   string `yaml:"let,omitempty"`   // variable to bind
	Value *Expr  `yaml:"value,omitempty"` // expression bound by let
	Print *Expr  `yaml:"print,omitempty"` // expression to display
}

// Expr builds a value. Exactly one field is set.
type Expr struct {
	Int    *int32   `yaml:"int,omitempty"`
	Float  *float64 `yaml:"float,omitempty"`
	Str    *string  `yaml:"str,omitempty"`
	Bool   *bool    `yaml:"bool,omitempty"`
	Nil    bool     `yaml:"nil,omitempty"`
	Var    string   `yaml:"var,omitempty"`
	Concat []Expr   `yaml:"concat,omitempty"`
}

// Validate checks that every step and expression is well-formed
func (p *Program) Validate() error {
	for i, step := range p.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	switch {
	case s.Let != "" && s.Print != nil:
		return fmt.Errorf("step has both let and print")
	case s.Let != "":
		if s.Value == nil {
			return fmt.Errorf("let %s has no value", s.Let)
		}
		return s.Value.validate()
	case s.Print != nil:
		if s.Value != nil {
			return fmt.Errorf("print step has a value")
		}
		return s.Print.validate()
	default:
		return fmt.Errorf("step has neither let nor print")
	}
}

func (e *Expr) validate() error {
	set := 0
	if e.Int != nil {
		set++
	}
	if e.Float != nil {
		set++
	}
	if e.Str != nil {
		set++
	}
	if e.Bool != nil {
		set++
	}
	if e.Nil {
		set++
	}
	if e.Var != "" {
		set++
	}
	if e.Concat != nil {
		set++
		if len(e.Concat) != 2 {
			return fmt.Errorf("concat takes 2 operands, got %d", len(e.Concat))
		}
		for i := range e.Concat {
			if err := e.Concat[i].validate(); err != nil {
				return err
			}
		}
	}
	if set != 1 {
		return fmt.Errorf("expression must have exactly one form, got %d", set)
	}
	return nil
}

// String renders the expression in MiniScript-like notation
func (e *Expr) String() string {
	switch {
	case e.Int != nil:
		return strconv.FormatInt(int64(*e.Int), 10)
	case e.Float != nil:
		return strconv.FormatFloat(*e.Float, 'f', 6, 64)
	case e.Str != nil:
		return `"` + *e.Str + `"`
	case e.Bool != nil:
		return strconv.FormatBool(*e.Bool)
	case e.Nil:
		return "nil"
	case e.Var != "":
		return e.Var
	case e.Concat != nil:
		parts := make([]string, len(e.Concat))
		for i := range e.Concat {
			parts[i] = e.Concat[i].String()
		}
		return strings.Join(parts, " + ")
	default:
		return "?"
	}
}

// String renders the step as a source line
func (s *Step) String() string {
	if s.Print != nil {
		return "print " + s.Print.String()
	}
	if s.Value == nil {
		return s.Let + " = ?"
	}
	return s.Let + " = " + s.Value.String()
}
