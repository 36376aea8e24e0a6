package interp

import (
	"bytes"
	"errors"
	"io"
	"sprout/types"
	"strings"
	"testing"

	"github.com/oarkflow/log"
)

// runProgram runs src with scripted input and returns the output and error
func runProgram(t *testing.T, policy ErrorPolicy, src string, input ...string) (*Interpreter, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	ip := New(Options{
		Out:    out,
		In:     NewReaderPrompter(strings.NewReader(strings.Join(input, "\n")), out),
		Policy: policy,
		Seed:   1,
		Logger: &log.Logger{Writer: &log.IOWriter{Writer: io.Discard}},
	})
	err := ip.Run(strings.NewReader(src))
	return ip, out.String(), err
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestProgramOutput(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		input    []string
		expected string
	}{
		{
			name: "declarations",
			src: lines(
				"int i = 4",
				"str t = John",
				"print: i",
				"print: t",
				"print: Hello World",
			),
			expected: "4\nJohn\nHello World\n",
		},
		{
			name: "large whole floats",
			src: lines(
				"int x = 1000",
				"x = x*1000",
				"print: x",
			),
			expected: "1000000.0\n",
		},
		{
			name: "assignment routing",
			src: lines(
				"int i = 4",
				"str t = John",
				"i = i+1",
				`t = t+"!"`,
				"print: i",
				"print: t",
			),
			expected: "5.0\nJohn!\n",
		},
		{
			name: "blank and comment lines",
			src: lines(
				"// a comment",
				"",
				"   ",
				"  // indented comment",
				"int x = 1",
				"    print: x",
			),
			expected: "1\n",
		},
		{
			name: "if elif else",
			src: lines(
				"if (1 == 2)",
				"print: A",
				"elif (1 == 1)",
				"print: B",
				"else",
				"print: C",
				";",
				"print: after",
			),
			expected: "B\nafter\n",
		},
		{
			name: "if true skips later branches",
			src: lines(
				"if (2 > 1)",
				"print: A",
				"elif (1 == 1)",
				"print: B",
				"else",
				"print: C",
				";",
			),
			expected: "A\n",
		},
		{
			name: "else after failed branches",
			src: lines(
				"int n = 3",
				"if (n < 1)",
				"print: A",
				"elif (n < 2)",
				"print: B",
				"else",
				"print: C",
				";",
			),
			expected: "C\n",
		},
		{
			name: "no branch matches",
			src: lines(
				"if (1 == 2)",
				"print: A",
				"elif (hello)",
				"print: B",
				";",
				"print: D",
			),
			expected: "D\n",
		},
		{
			name: "text comparison",
			src: lines(
				"str name = Bob",
				"if (name == Bob)",
				"print: hi Bob",
				";",
			),
			expected: "hi Bob\n",
		},
		{
			name: "condition with trailing colon",
			src: lines(
				"if (1 <= 1):",
				"print: yes",
				"else:",
				"print: no",
				";",
			),
			expected: "yes\n",
		},
		{
			name: "stray elif else and terminator are ignored",
			src: lines(
				"elif (1 == 1)",
				"print: A",
				"else",
				"print: B",
				";",
				"print: C",
			),
			expected: "A\nB\nC\n",
		},
		{
			name: "second if overwrites open construct",
			src: lines(
				"if (1 == 2)",
				"print: A",
				"if (1 == 1)",
				"print: B",
				"else",
				"print: C",
				";",
			),
			expected: "B\n",
		},
		{
			name: "input prompts on output",
			src: lines(
				"str name = nobody",
				"input: name, Name?",
				`print: name`,
			),
			input:    []string{"Ada"},
			expected: "Name? Ada\n",
		},
		{
			name: "numeric input",
			src: lines(
				"int age = 0",
				"input: age, Age?",
				"age = age+1",
				"print: age",
			),
			input:    []string{"41"},
			expected: "Age? 42.0\n",
		},
		{
			name: "break stops the program",
			src: lines(
				"print: one",
				"break",
				"print: two",
			),
			expected: "one\n",
		},
		{
			name: "break in skipped branch does nothing",
			src: lines(
				"if (1 == 2)",
				"break",
				";",
				"print: still running",
			),
			expected: "still running\n",
		},
		{
			name: "pi",
			src: lines(
				"int p = 0",
				"pi: p",
				"print: p",
			),
			expected: "3.141592653589793\n",
		},
		{
			name: "meth fixed range",
			src: lines(
				"int d = 0",
				"meth: d, 5, 5",
				"print: d",
			),
			expected: "5.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := runProgram(t, AbortOnError, tt.src, tt.input...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if out != tt.expected {
				t.Errorf("Expected output %q, got %q", tt.expected, out)
			}
		})
	}
}

func TestAbortOnError(t *testing.T) {
	src := lines(
		"int x = 1",
		"print: before",
		"x = x/0",
		"print: after",
	)
	ip, out, err := runProgram(t, AbortOnError, src)

	var lerr *LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("Expected *LineError, got %v", err)
	}
	if lerr.Line != 3 || lerr.Text != "x = x/0" {
		t.Errorf("Unexpected line error %+v", lerr)
	}
	if !errors.Is(err, types.ErrDivisionByZero) {
		t.Errorf("Expected E_DIV, got %v", err)
	}
	if out != "before\n" {
		t.Errorf("Expected only output before the failure, got %q", out)
	}
	if val, _ := ip.Env().Get("x"); !val.Equal(types.NewInt(1)) {
		t.Errorf("Expected x unchanged, got %v", val)
	}
}

func TestSkipOnError(t *testing.T) {
	src := lines(
		"print: before",
		"y = 1",
		"this line means nothing",
		"print: after",
	)
	_, out, err := runProgram(t, SkipOnError, src)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "before\nafter\n" {
		t.Errorf("Expected both prints, got %q", out)
	}
}

func TestLongLines(t *testing.T) {
	long := strings.Repeat("a", 70000)
	src := "str s = " + long + "\nprint: after\nprint: s"

	for _, policy := range []ErrorPolicy{AbortOnError, SkipOnError} {
		ip, out, err := runProgram(t, policy, src)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if out != "after\n"+long+"\n" {
			t.Errorf("Expected both prints, got %d bytes", len(out))
		}
		if ip.Line() != 3 {
			t.Errorf("Expected 3 lines, got %d", ip.Line())
		}
	}
}

func TestCRLFLines(t *testing.T) {
	_, out, err := runProgram(t, AbortOnError, "int i = 2\r\nprint: i\r\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "2\n" {
		t.Errorf("Expected %q, got %q", "2\n", out)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		src     string
		wantErr error
	}{
		{"y = 1", types.ErrUndefinedVariable},
		{"gibberish", types.ErrParse},
		{"int x = 0\nx = 2*3+1", types.ErrParse},
		{"int x = 0\nstr s = abc\nx = s+1", types.ErrType},
		{"pi: nothing", types.ErrUndefinedVariable},
		{"int d = 0\nmeth: d, 9, 1", types.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, _, err := runProgram(t, AbortOnError, tt.src)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestInputEOF(t *testing.T) {
	_, _, err := runProgram(t, AbortOnError, "str s = x\ninput: s, Say something")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected EOF, got %v", err)
	}
}

func TestExecStateMachine(t *testing.T) {
	ip := New(Options{Out: io.Discard, Seed: 1})

	steps := []struct {
		line  string
		state BlockState
	}{
		{"int n = 5", Outside},
		{"if (n > 10)", AwaitingBranch},
		{"print: big", AwaitingBranch},
		{"elif (n > 1)", Running},
		{"print: medium", Running},
		{"elif (n > 0)", Skipping},
		{"else", Skipping},
		{"print: small", Skipping},
		{";", Outside},
		{"if (n == 5)", Running},
		{"else", Skipping},
		{";", Outside},
		{"if (n == 0)", AwaitingBranch},
		{"elif (n == 1)", AwaitingBranch},
		{"else", Running},
		{";", Outside},
	}

	for _, step := range steps {
		if err := ip.Exec(step.line); err != nil {
			t.Fatalf("Exec(%q) failed: %v", step.line, err)
		}
		if got := ip.State(); got != step.state {
			t.Fatalf("After %q: expected state %s, got %s", step.line, step.state, got)
		}
	}
	if ip.Line() != len(steps) {
		t.Errorf("Expected line %d, got %d", len(steps), ip.Line())
	}
}

func TestElifNotEvaluatedAfterTakenBranch(t *testing.T) {
	ip := New(Options{Out: io.Discard, Seed: 1})
	for _, line := range []string{"if (1 == 1)", "elif (undefined_name == 3)", ";"} {
		if err := ip.Exec(line); err != nil {
			t.Fatalf("Exec(%q) failed: %v", line, err)
		}
	}
}

func TestReset(t *testing.T) {
	ip := New(Options{Out: io.Discard, Seed: 1})
	for _, line := range []string{"int x = 1", "if (1 == 2)", "break"} {
		if err := ip.Exec(line); err != nil {
			t.Fatalf("Exec(%q) failed: %v", line, err)
		}
	}
	if ip.State() != AwaitingBranch || ip.Halted() {
		t.Fatalf("Unexpected state %s halted=%v", ip.State(), ip.Halted())
	}

	ip.Reset()
	if ip.Env().Len() != 0 || ip.State() != Outside || ip.Line() != 0 {
		t.Errorf("Reset left state behind")
	}
}

func TestReaderPrompter(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewReaderPrompter(strings.NewReader("first\r\nsecond"), out)

	reply, err := p.Prompt("A?")
	if err != nil || reply != "first" {
		t.Fatalf("Expected first, got %q (%v)", reply, err)
	}
	reply, err = p.Prompt("B?")
	if err != nil || reply != "second" {
		t.Fatalf("Expected second, got %q (%v)", reply, err)
	}
	if _, err := p.Prompt("C?"); !errors.Is(err, io.EOF) {
		t.Errorf("Expected EOF, got %v", err)
	}
	if out.String() != "A? B? C? " {
		t.Errorf("Unexpected prompts %q", out.String())
	}
}

func TestConditionText(t *testing.T) {
	tests := map[string]string{
		" (a < b)":   "a < b",
		"(a < b):":   "a < b",
		" a == b ":   "a == b",
		"( x != y )": "x != y",
		"":           "",
	}
	for in, want := range tests {
		if got := conditionText(in); got != want {
			t.Errorf("conditionText(%q) = %q, want %q", in, got, want)
		}
	}
}
