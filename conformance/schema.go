package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single program within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`   // bool or string
	Program     string      `yaml:"program"`          // Sprout source
	Input       []string    `yaml:"input,omitempty"`  // replies for input statements
	Policy      string      `yaml:"policy,omitempty"` // abort|skip
	Seed        int64       `yaml:"seed,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what a program run must produce
type Expectation struct {
	Output    *string                `yaml:"output,omitempty"`    // exact output
	Contains  []string               `yaml:"contains,omitempty"`  // output substrings
	Error     string                 `yaml:"error,omitempty"`     // E_DIV, E_VARNF, etc.
	Line      int                    `yaml:"line,omitempty"`      // line of the expected error
	Variables map[string]interface{} `yaml:"variables,omitempty"` // final variable values
}

// IsEmpty reports whether no expectation is set
func (e Expectation) IsEmpty() bool {
	return e.Output == nil && len(e.Contains) == 0 && e.Error == "" && len(e.Variables) == 0
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
