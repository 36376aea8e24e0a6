package eval

import (
	"math"
	"sprout/types"
	"strings"
	"unicode"
)

// arithOperators is the order operators are looked for. The first one
// present anywhere in the expression splits the whole expression; there
// is no precedence. "2*3+1" splits on "+" and "2*3" then fails to parse.
var arithOperators = []byte{'+', '-', '*', '/', '^'}

// Arith evaluates an arithmetic expression. The result is always a Float.
func (e *Evaluator) Arith(expr string) (types.FloatValue, error) {
	expr = stripSpace(expr)

	op, found := arithOperator(expr)
	if !found {
		// Single operand
		f, err := e.Operand(expr)
		if err != nil {
			return types.FloatValue{}, err
		}
		return types.NewFloat(f), nil
	}

	tokens := strings.Split(expr, string(op))
	operands := make([]float64, len(tokens))
	for i, tok := range tokens {
		f, err := e.Operand(tok)
		if err != nil {
			return types.FloatValue{}, err
		}
		operands[i] = f
	}

	res, err := reduce(op, operands, expr)
	if err != nil {
		return types.FloatValue{}, err
	}
	return types.NewFloat(res), nil
}

// Operand resolves a single token: a variable's numeric value if the name
// exists, otherwise a numeric literal
func (e *Evaluator) Operand(tok string) (float64, error) {
	if val, ok := e.env.Get(tok); ok {
		return types.ToFloat(val)
	}
	return types.ParseNumber(tok)
}

// arithOperator returns the first operator of arithOperators present in expr
func arithOperator(expr string) (byte, bool) {
	for _, op := range arithOperators {
		if strings.IndexByte(expr, op) >= 0 {
			return op, true
		}
	}
	return 0, false
}

// reduce folds operands left to right with a single operator
func reduce(op byte, operands []float64, expr string) (float64, error) {
	switch op {
	case '+':
		res := 0.0
		for _, v := range operands {
			res += v
		}
		return res, nil

	case '*':
		res := 1.0
		for _, v := range operands {
			res *= v
		}
		return res, nil

	case '-':
		res := operands[0]
		for _, v := range operands[1:] {
			res -= v
		}
		return res, nil

	case '/':
		res := operands[0]
		for _, v := range operands[1:] {
			if v == 0 {
				return 0, types.NewError(types.E_DIV, "%s", expr)
			}
			res /= v
		}
		return res, nil

	case '^':
		res := operands[0]
		for _, v := range operands[1:] {
			res = math.Pow(res, v)
		}
		return res, nil
	}

	return 0, types.NewError(types.E_PARSE, "unknown operator %q", op)
}

// stripSpace removes every whitespace character
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
