package sqlfault

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// hiddenParamsNote replaces the parameter block when a statement error is
// built with parameter hiding, so credentials and payloads never reach logs.
const hiddenParamsNote = "[SQL parameters hidden]"

// StatementError wraps an error raised during execution of a specific
// statement, attaching the statement text and its parameters. Detail lines
// can be prepended by outer layers that recognize the failure and have
// something to add (e.g. which ORM flush step was running).
type StatementError struct {
	Message        string
	Statement      string
	Params         interface{}
	Orig           error
	HideParameters bool
	Detail         []string

	class *Class
	code  Code
}

// NewStatement wraps orig (may be nil) in a statement error of the Statement
// class. Driver-raised errors should go through WrapDriver instead, which
// picks the precise DBAPI subclass.
func NewStatement(msg, statement string, params interface{}, orig error) *StatementError {
	return &StatementError{
		Message:   msg,
		Statement: statement,
		Params:    params,
		Orig:      orig,
		class:     Statement,
	}
}

// AddDetail prepends a contextual detail line to the rendered message.
func (e *StatementError) AddDetail(detail string) {
	e.Detail = append(e.Detail, detail)
}

func (e *StatementError) Class() *Class { return e.class }
func (e *StatementError) Code() Code    { return e.code }

// WithCode overrides the documentation code inherited from the class.
func (e *StatementError) WithCode(code Code) *StatementError {
	e.code = code
	return e
}

func (e *StatementError) Error() string {
	var b strings.Builder
	for _, d := range e.Detail {
		b.WriteString("(")
		b.WriteString(d)
		b.WriteString(") ")
	}
	b.WriteString(e.Message)
	if e.Statement != "" {
		b.WriteString("\n[SQL: ")
		b.WriteString(e.Statement)
		b.WriteString("]")
		if e.Params != nil {
			if e.HideParameters {
				b.WriteString("\n" + hiddenParamsNote)
			} else {
				fmt.Fprintf(&b, "\n[parameters: %v]", e.Params)
			}
		}
	}
	if note := backgroundNote(e.code); note != "" {
		b.WriteString("\n")
		b.WriteString(note)
	}
	return b.String()
}

func (e *StatementError) Unwrap() error { return e.Orig }

func (e *StatementError) Is(target error) bool { return classIs(e.class, target) }

// MarshalZerologObject renders the error's salient fields as structured log
// data instead of the multi-line string form.
func (e *StatementError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("class", e.class.name).Str("message", e.Message)
	if e.code != "" {
		ev.Str("code", string(e.code))
	}
	if e.Statement != "" {
		ev.Str("sql", e.Statement)
	}
	if e.Params != nil && !e.HideParameters {
		ev.Interface("parameters", e.Params)
	}
	if len(e.Detail) > 0 {
		ev.Strs("detail", e.Detail)
	}
	if e.Orig != nil {
		ev.AnErr("orig", e.Orig)
	}
}
