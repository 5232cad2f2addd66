package sqlfault

// SQLError exposes the five-character SQLSTATE of a driver error.
// commonly implemented pattern among Go database drivers
type SQLError interface {
	error
	SQLState() string
}

// Dialect classifies raw driver errors into the DBAPI subtree. Each
// supported database backend provides one (see the postgres and sqlite
// packages).
type Dialect interface {
	Name() string
	// Classify maps a driver error onto a class in the DBAPI subtree, or
	// nil when the dialect cannot tell; WrapDriver falls back to DBAPI.
	Classify(err error) *Class
	// IsDisconnect reports whether err indicates the connection it was
	// raised on is no longer usable.
	IsDisconnect(err error) bool
}

// DontWrapper marks errors that WrapDriver must pass through untouched even
// though they surfaced during statement execution.
type DontWrapper interface {
	error
	DontWrap() bool
}
