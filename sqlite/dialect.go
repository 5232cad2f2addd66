//go:build cgo
// +build cgo

package sqlite

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/relkit/sqlfault"
)

// Dialect classifies go-sqlite3 errors into the sqlfault DBAPI subtree by
// primary result code.
type Dialect struct{}

var _ sqlfault.Dialect = Dialect{}

func (Dialect) Name() string { return "sqlite" }

func (Dialect) Classify(err error) *sqlfault.Class {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return nil
	}
	switch serr.Code {
	case sqlite3.ErrConstraint:
		return sqlfault.Integrity
	case sqlite3.ErrMismatch, sqlite3.ErrRange, sqlite3.ErrTooBig:
		return sqlfault.Data
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr,
		sqlite3.ErrCantOpen, sqlite3.ErrReadonly, sqlite3.ErrFull:
		return sqlfault.Operational
	case sqlite3.ErrInternal, sqlite3.ErrNomem, sqlite3.ErrCorrupt:
		return sqlfault.Internal
	case sqlite3.ErrError, sqlite3.ErrSchema, sqlite3.ErrMisuse:
		// sqlite reports syntax errors and stale schema under the generic
		// result code
		return sqlfault.Programming
	case sqlite3.ErrAuth, sqlite3.ErrPerm:
		return sqlfault.Operational
	case sqlite3.ErrNotADB, sqlite3.ErrFormat:
		return sqlfault.NotSupported
	default:
		return sqlfault.Database
	}
}

func (Dialect) IsDisconnect(err error) bool {
	// sqlite has no wire connection to lose; a file that stops being a
	// database out from under us is the nearest equivalent
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code == sqlite3.ErrNotADB || serr.Code == sqlite3.ErrCantOpen
}
