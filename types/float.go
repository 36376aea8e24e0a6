package types

import (
	"math"
	"strconv"
	"strings"
)

// FloatValue represents a Sprout floating point number
type FloatValue struct {
	Val float64
}

// NewFloat creates a new FloatValue
func NewFloat(val float64) FloatValue {
	return FloatValue{Val: val}
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the printed form of the float.
// Whole numbers keep a fractional part (5.0, not 5).
func (f FloatValue) String() string {
	// Handle special cases
	if math.IsNaN(f.Val) {
		return "nan"
	}
	if math.IsInf(f.Val, 1) {
		return "inf"
	}
	if math.IsInf(f.Val, -1) {
		return "-inf"
	}
	// Positional notation for exponents in [-4, 16), as 1000000.0
	format := byte('f')
	if abs := math.Abs(f.Val); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f.Val, format, -1, 64)
	// Add .0 if no decimal point and not in scientific notation
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Equal checks deep equality
func (f FloatValue) Equal(other Value) bool {
	otherFloat, ok := other.(FloatValue)
	if !ok {
		return false
	}
	// NaN != NaN (IEEE 754 semantics)
	if math.IsNaN(f.Val) || math.IsNaN(otherFloat.Val) {
		return false
	}
	return f.Val == otherFloat.Val
}
