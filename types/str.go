package types

// StrValue represents a Sprout text value
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the raw text; Sprout prints text without quoting
func (s StrValue) String() string {
	return s.val
}

// Type returns the type code for text
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal compares two values for equality.
// Unlike condition evaluation, this is an exact, case-sensitive comparison.
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
