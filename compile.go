package sqlfault

import "fmt"

// UnsupportedCompilationError reports that a compiler has no rendering for a
// given element type, e.g. a dialect-specific construct compiled against a
// different dialect.
type UnsupportedCompilationError struct {
	Compiler string
	Element  string
	msg      string
}

// NewUnsupportedCompilation builds the error from the compiler and element
// names; msg optionally adds dialect-specific advice.
func NewUnsupportedCompilation(compiler, element, msg string) *UnsupportedCompilationError {
	return &UnsupportedCompilationError{Compiler: compiler, Element: element, msg: msg}
}

func (e *UnsupportedCompilationError) Error() string {
	s := fmt.Sprintf("compiler %s can't render element of type %s", e.Compiler, e.Element)
	if e.msg != "" {
		s += ": " + e.msg
	}
	if note := backgroundNote(UnsupportedCompilation.code); note != "" {
		s += " " + note
	}
	return s
}

func (e *UnsupportedCompilationError) Class() *Class { return UnsupportedCompilation }

func (e *UnsupportedCompilationError) Code() Code { return UnsupportedCompilation.code }

func (e *UnsupportedCompilationError) Is(target error) bool {
	return classIs(UnsupportedCompilation, target)
}
