package eval

import (
	"strconv"
	"strings"
)

// comparisonOperators is the scan order. Two-character operators come
// first so "<=" is never split as "<".
var comparisonOperators = []string{"<=", ">=", "==", "!=", "<", ">"}

// Condition evaluates a comparison. Both sides are resolved through the
// environment, compared as numbers when both parse as floats and as text
// otherwise. A condition with no comparison operator is false.
func (e *Evaluator) Condition(cond string) bool {
	op, left, right, ok := SplitCondition(cond)
	if !ok {
		return false
	}

	left, _ = e.resolveText(left)
	right, _ = e.resolveText(right)

	lf, lerr := strconv.ParseFloat(strings.TrimSpace(left), 64)
	rf, rerr := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if lerr == nil && rerr == nil {
		return compareFloat(op, lf, rf)
	}
	return compareText(op, left, right)
}

// SplitCondition finds the first operator of the scan order present in cond
// and splits cond at its first occurrence. Sides are trimmed.
func SplitCondition(cond string) (op, left, right string, ok bool) {
	for _, candidate := range comparisonOperators {
		if idx := strings.Index(cond, candidate); idx >= 0 {
			left = strings.TrimSpace(cond[:idx])
			right = strings.TrimSpace(cond[idx+len(candidate):])
			return candidate, left, right, true
		}
	}
	return "", "", "", false
}

func compareFloat(op string, l, r float64) bool {
	switch op {
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case ">":
		return l > r
	}
	return false
}

func compareText(op string, l, r string) bool {
	switch op {
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case ">":
		return l > r
	}
	return false
}
