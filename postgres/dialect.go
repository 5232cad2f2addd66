package postgres

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/relkit/sqlfault"
)

// reference: https://www.postgresql.org/docs/current/errcodes-appendix.html

type ErrorCode string

var (
	SerializationFailure ErrorCode = "40001"
	DeadlockDetected     ErrorCode = "40P01"
	// InvalidCatalogName often indicates attempting to connect to a database
	// that does not exist
	InvalidCatalogName ErrorCode = "3D000"
	// CannotConnectNow often indicates the server is still starting up
	CannotConnectNow ErrorCode = "57P03"
	AdminShutdown    ErrorCode = "57P01"
	CrashShutdown    ErrorCode = "57P02"
	UniqueViolation  ErrorCode = "23505"
)

func IsErrorCode(err error, code ErrorCode) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	match := errors.As(err, &pgErr) && pgErr.Code == string(code)
	return pgErr, match
}

// RetryOnErrorCode builds a retry predicate matching any of the given
// SQLSTATEs, e.g. for serialization failure loops.
func RetryOnErrorCode(code ErrorCode, codes ...ErrorCode) func(context.Context, error) bool {
	allCodes := append([]ErrorCode{code}, codes...)
	return func(ctx context.Context, err error) bool {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			for _, c := range allCodes {
				if pgErr.Code == string(c) {
					return true
				}
			}
		}
		return false
	}
}

// Dialect classifies pgconn errors into the sqlfault DBAPI subtree by
// SQLSTATE class.
type Dialect struct{}

var _ sqlfault.Dialect = Dialect{}

func (Dialect) Name() string { return "postgres" }

func (Dialect) Classify(err error) *sqlfault.Class {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		if isNetworkError(err) {
			return sqlfault.Operational
		}
		return nil
	}
	if len(pgErr.Code) < 2 {
		return sqlfault.Database
	}
	switch pgErr.Code[:2] {
	case "23":
		return sqlfault.Integrity
	case "22":
		return sqlfault.Data
	case "42", "26", "2F", "38", "39":
		return sqlfault.Programming
	case "0A":
		return sqlfault.NotSupported
	case "08", "28", "3D", "40", "53", "54", "55", "57", "58":
		return sqlfault.Operational
	case "XX":
		return sqlfault.Internal
	default:
		return sqlfault.Database
	}
}

func (Dialect) IsDisconnect(err error) bool {
	if isNetworkError(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch ErrorCode(pgErr.Code) {
	case AdminShutdown, CrashShutdown, CannotConnectNow:
		return true
	}
	// connection exceptions, class 08
	return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
}

func isNetworkError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
