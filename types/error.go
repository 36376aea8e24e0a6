package types

import "fmt"

// Error is a Sprout runtime failure. Two Errors match under errors.Is when
// their codes are equal, so the sentinels below can be used as targets.
type Error struct {
	Code ErrorCode
	Msg  string
}

// Sentinels for errors.Is
var (
	ErrUndefinedVariable = &Error{Code: E_VARNF}
	ErrParse             = &Error{Code: E_PARSE}
	ErrType              = &Error{Code: E_TYPE}
	ErrDivisionByZero    = &Error{Code: E_DIV}
	ErrRange             = &Error{Code: E_RANGE}
	ErrSourceNotFound    = &Error{Code: E_FILE}
)

// NewError creates an Error with a formatted detail message
func NewError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.Message()
	}
	return e.Code.Message() + ": " + e.Msg
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Undefined returns the error for a lookup of an absent variable
func Undefined(name string) *Error {
	return NewError(E_VARNF, "%s", name)
}
