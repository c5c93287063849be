package conformance

import "miniscript/program"

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name            string         `yaml:"name"`
	Description     string         `yaml:"description,omitempty"`
	Skip            interface{}    `yaml:"skip,omitempty"`              // bool or string
	MaxStringConcat int            `yaml:"max_string_concat,omitempty"` // runtime limit override
	Steps           []program.Step `yaml:"steps"`
	Expect          Expectation    `yaml:"expect"`
}

// Expectation defines what result is expected from a test
type Expectation struct {
	Output *string `yaml:"output,omitempty"` // exact stdout
	Error  string  `yaml:"error,omitempty"`  // E_TYPE, E_QUOTA, E_VARNF
	Type   string  `yaml:"type,omitempty"`   // type of the last bound variable
	Exit   *int    `yaml:"exit,omitempty"`   // exit status (0 unless an error is expected)
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}

// lastBinding returns the name of the variable bound by the last let step
func (tc *TestCase) lastBinding() string {
	for i := len(tc.Steps) - 1; i >= 0; i-- {
		if tc.Steps[i].Let != "" {
			return tc.Steps[i].Let
		}
	}
	return ""
}
