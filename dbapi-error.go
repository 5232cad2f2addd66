package sqlfault

import (
	"context"
	"errors"
)

// DBAPIError is a StatementError whose cause was raised by the database
// driver itself. Its class is one of the DBAPI subtree leaves, selected by
// the dialect when the error is wrapped. ConnectionInvalidated records that
// the dialect judged the underlying connection dead; such errors also match
// the Disconnection class so pool handling can key off a single check.
type DBAPIError struct {
	StatementError
	ConnectionInvalidated bool
}

// As lets callers extract the embedded StatementError directly.
func (e *DBAPIError) As(target interface{}) bool {
	if t, ok := target.(**StatementError); ok {
		*t = &e.StatementError
		return true
	}
	return false
}

func (e *DBAPIError) Is(target error) bool {
	if t, ok := target.(*Class); ok && t == Disconnection && e.ConnectionInvalidated {
		return true
	}
	return e.StatementError.Is(target)
}

// WrapOption adjusts how WrapDriver builds the wrapped error.
type WrapOption func(*DBAPIError)

// HideParameters suppresses statement parameters in rendered and marshaled
// output.
func HideParameters() WrapOption {
	return func(e *DBAPIError) { e.HideParameters = true }
}

// WrapDriver wraps an error raised by the database driver while executing
// statement, classifying it into the DBAPI subtree via the dialect.
//
// Passed through unwrapped: nil, context cancellation, anything already in
// the taxonomy, and errors implementing DontWrapper.
func WrapDriver(d Dialect, orig error, statement string, params interface{}, opts ...WrapOption) error {
	if orig == nil {
		return nil
	}
	if errors.Is(orig, context.Canceled) || errors.Is(orig, context.DeadlineExceeded) {
		return orig
	}
	var dw DontWrapper
	if errors.As(orig, &dw) && dw.DontWrap() {
		return orig
	}
	if errors.Is(orig, Base) {
		return orig
	}

	class := DBAPI
	invalidated := false
	if d != nil {
		if c := d.Classify(orig); c != nil {
			class = c
		}
		invalidated = d.IsDisconnect(orig)
	}

	e := &DBAPIError{
		StatementError: StatementError{
			Message:   orig.Error(),
			Statement: statement,
			Params:    params,
			Orig:      orig,
			class:     class,
			code:      class.code,
		},
		ConnectionInvalidated: invalidated,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
