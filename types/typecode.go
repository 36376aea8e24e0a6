package types

// TypeCode tags the variant of a Value
type TypeCode int

const (
	TYPE_INT   TypeCode = 0
	TYPE_FLOAT TypeCode = 1
	TYPE_STR   TypeCode = 2
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_INT:
		return "INT"
	case TYPE_FLOAT:
		return "FLOAT"
	case TYPE_STR:
		return "STR"
	default:
		return "UNKNOWN"
	}
}

// IsNumeric reports whether values of this type take part in arithmetic
// without conversion
func (t TypeCode) IsNumeric() bool {
	return t == TYPE_INT || t == TYPE_FLOAT
}
