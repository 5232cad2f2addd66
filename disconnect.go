package sqlfault

// DisconnectionError reports a connection found dead outside of statement
// execution, typically by a pool pre-ping or liveness handler. The
// InvalidatePool flag distinguishes "this connection is dead" from "assume
// the whole pool is dead", e.g. after a server restart notification.
type DisconnectionError struct {
	class          *Class
	msg            string
	cause          error
	invalidatePool bool
}

// NewDisconnection marks a single connection as dead.
func NewDisconnection(msg string) *DisconnectionError {
	return &DisconnectionError{class: Disconnection, msg: msg}
}

// NewInvalidatePool marks the entire connection pool as suspect.
func NewInvalidatePool(msg string) *DisconnectionError {
	return &DisconnectionError{class: InvalidatePool, msg: msg, invalidatePool: true}
}

// WithCause attaches the driver error that revealed the dead connection.
func (e *DisconnectionError) WithCause(cause error) *DisconnectionError {
	e.cause = cause
	return e
}

func (e *DisconnectionError) Error() string        { return e.msg }
func (e *DisconnectionError) Class() *Class        { return e.class }
func (e *DisconnectionError) Unwrap() error        { return e.cause }
func (e *DisconnectionError) InvalidatePool() bool { return e.invalidatePool }

func (e *DisconnectionError) Is(target error) bool { return classIs(e.class, target) }
