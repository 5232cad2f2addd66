package sqlfault

import (
	"errors"
	"fmt"
)

// Error is the concrete type for taxonomy errors that carry no extra fields
// beyond a message, a class, and an optional cause. The attribute-bearing
// classes (statement errors, dependency cycles, reference errors, ...) have
// their own types in this package; everything ends up matchable the same way
// through errors.Is against the Class sentinels.
type Error struct {
	class *Class
	code  Code
	msg   string
	cause error
}

// New returns an error of the given class. A nil class is treated as Base.
func New(class *Class, msg string) *Error {
	if class == nil {
		class = Base
	}
	return &Error{class: class, code: class.code, msg: msg}
}

func Newf(class *Class, format string, args ...interface{}) *Error {
	return New(class, fmt.Sprintf(format, args...))
}

// WithCode overrides the documentation code inherited from the class.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithCause attaches an underlying error, reachable through errors.Unwrap.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) Class() *Class { return e.class }
func (e *Error) Code() Code    { return e.code }

func (e *Error) Error() string {
	if note := backgroundNote(e.code); note != "" {
		return e.msg + " " + note
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool { return classIs(e.class, target) }

// ClassOf returns the taxonomy class of err, unwrapping as needed, or nil
// when err is not part of the taxonomy.
func ClassOf(err error) *Class {
	for err != nil {
		if c, ok := err.(interface{ Class() *Class }); ok {
			return c.Class()
		}
		if c, ok := err.(*Class); ok {
			return c
		}
		err = errors.Unwrap(err)
	}
	return nil
}
