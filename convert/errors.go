package convert

import (
	"errors"
	"fmt"
)

// ErrorKind separates the two failure classes every conversion can hit:
// a value of the wrong kind versus a well-formed value outside its domain.
type ErrorKind int

const (
	// KindRange marks a well-formed value outside its valid domain,
	// such as an RGB channel of 300 or a malformed hex string.
	KindRange ErrorKind = iota
	// KindType marks a value of the wrong kind entirely, such as an
	// escape code passed where a color code was expected.
	KindType
)

// String makes ErrorKind satisfy the fmt.Stringer interface.
func (k ErrorKind) String() string {
	switch k {
	case KindRange:
		return "RANGE"
	case KindType:
		return "TYPE"
	default:
		return "UNKNOWN"
	}
}

// Error contains details about a conversion failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// RangeErrorf builds a KindRange error.
func RangeErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindRange, Message: fmt.Sprintf(format, args...)}
}

// TypeErrorf builds a KindType error.
func TypeErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindType, Message: fmt.Sprintf(format, args...)}
}

// IsRangeError reports whether err is (or wraps) a KindRange Error.
func IsRangeError(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindRange
}

// IsTypeError reports whether err is (or wraps) a KindType Error.
func IsTypeError(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindType
}
