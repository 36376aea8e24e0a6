package types

// ErrorCode identifies the kind of a Sprout runtime failure
type ErrorCode int

// Error codes
const (
	E_NONE  ErrorCode = 0
	E_TYPE  ErrorCode = 1 // numeric operation on non-numeric text
	E_DIV   ErrorCode = 2 // division by zero
	E_VARNF ErrorCode = 3 // undefined variable
	E_PARSE ErrorCode = 4 // malformed literal or statement
	E_RANGE ErrorCode = 5
	E_FILE  ErrorCode = 6 // program source not found
)

// String returns the string name for an error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_TYPE:
		return "E_TYPE"
	case E_DIV:
		return "E_DIV"
	case E_VARNF:
		return "E_VARNF"
	case E_PARSE:
		return "E_PARSE"
	case E_RANGE:
		return "E_RANGE"
	case E_FILE:
		return "E_FILE"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_TYPE:
		return "Type mismatch"
	case E_DIV:
		return "Division by zero"
	case E_VARNF:
		return "Undefined variable"
	case E_PARSE:
		return "Parse error"
	case E_RANGE:
		return "Range error"
	case E_FILE:
		return "Source not found"
	default:
		return "Unknown error"
	}
}

// ErrorFromString converts a string like "E_DIV" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	switch s {
	case "E_NONE":
		return E_NONE, true
	case "E_TYPE":
		return E_TYPE, true
	case "E_DIV":
		return E_DIV, true
	case "E_VARNF":
		return E_VARNF, true
	case "E_PARSE":
		return E_PARSE, true
	case "E_RANGE":
		return E_RANGE, true
	case "E_FILE":
		return E_FILE, true
	default:
		return E_NONE, false
	}
}

// Value is the interface all Sprout values implement.
// The set is closed: IntValue, FloatValue and StrValue.
type Value interface {
	Type() TypeCode
	String() string   // text shown by print and used by string concatenation
	Equal(Value) bool // same variant and same payload
}
