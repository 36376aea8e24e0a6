package eval

import (
	"sprout/types"
	"strings"
)

// Combine evaluates a string concatenation expression.
// Each '+'-separated part is a variable's text if the name exists,
// otherwise the literal with one layer of matching quotes removed.
// Combine never fails.
func (e *Evaluator) Combine(expr string) types.StrValue {
	if !strings.Contains(expr, "+") {
		return types.NewStr(e.textPart(expr))
	}

	var sb strings.Builder
	for _, part := range strings.Split(expr, "+") {
		sb.WriteString(e.textPart(part))
	}
	return types.NewStr(sb.String())
}

func (e *Evaluator) textPart(part string) string {
	part = strings.TrimSpace(part)
	if text, ok := e.resolveText(part); ok {
		return text
	}
	return Unquote(part)
}

// Unquote strips one layer of matching single or double quotes
func Unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}
