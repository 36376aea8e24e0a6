package types

import (
	"strconv"
	"strings"
)

// IsNumeric reports whether v is an Integer or Float
func IsNumeric(v Value) bool {
	return v != nil && v.Type().IsNumeric()
}

// ToFloat converts a stored value to float64.
// Text is accepted when it parses as a decimal number; otherwise E_TYPE.
func ToFloat(v Value) (float64, error) {
	switch val := v.(type) {
	case IntValue:
		return float64(val.Val), nil
	case FloatValue:
		return val.Val, nil
	case StrValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(val.val), 64)
		if err != nil {
			return 0, NewError(E_TYPE, "%q is not a number", val.val)
		}
		return f, nil
	default:
		return 0, NewError(E_TYPE, "unsupported value %v", v)
	}
}

// ParseNumber parses a numeric literal token. Malformed input is E_PARSE.
func ParseNumber(tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, NewError(E_PARSE, "%q is not a number", tok)
	}
	return f, nil
}
