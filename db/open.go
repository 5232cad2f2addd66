// Copyright (c) 2021 6 River Systems
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package db

import (
	"net/url"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/relkit/sqlfault"
	"github.com/relkit/sqlfault/logging"
	"github.com/relkit/sqlfault/postgres"
	"github.com/relkit/sqlfault/sqlite"
)

const (
	PostgresDialect = "postgres"
	SqliteDialect   = "sqlite"

	postgresDriver = "pgx"
)

// DB bundles a sqlx handle with the dialect that classifies its driver
// errors. Every execution helper on DB routes failures through the sqlfault
// taxonomy, so callers match on classes instead of driver-specific types.
type DB struct {
	*sqlx.DB
	dialect sqlfault.Dialect
	logger  *logging.Logger
}

// Dialect returns the error-classification dialect bound at Open.
func (d *DB) Dialect() sqlfault.Dialect { return d.dialect }

// Open creates a DB for the given URL, selecting driver and dialect from the
// scheme. postgres:// and postgresql:// use the pgx stdlib driver;
// sqlite:name and file:name use the sqlite driver with the toolkit's pragma
// defaults. No connection is established until first use.
func Open(dbURL string) (*DB, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return nil, sqlfault.Newf(sqlfault.Argument, "invalid database url %q", dbURL).WithCause(err)
	}

	var driverName, dsn, dialectName string
	var dialect sqlfault.Dialect
	switch u.Scheme {
	case "postgres", "postgresql":
		driverName, dsn = postgresDriver, dbURL
		dialect, dialectName = postgres.Dialect{}, PostgresDialect
	case "sqlite", "file":
		if sqliteDriver == "" {
			return nil, sqlfault.New(sqlfault.NotSupported, "sqlite driver requires cgo")
		}
		filename := u.Opaque
		if filename == "" {
			filename = u.Path
		}
		memory := u.Query().Get("mode") == "memory"
		// the driver wants file: URIs regardless of the user-facing scheme
		driverName, dsn = sqliteDriver, SQLiteDSN(filename, true, memory)
		dialect, dialectName = sqlite.Dialect{}, SqliteDialect
	default:
		return nil, sqlfault.Newf(sqlfault.NoSuchModule, "no dialect registered for scheme %q", u.Scheme)
	}

	sdb, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", dialectName)
	}
	if dialectName == SqliteDialect && u.Query().Get("mode") == "memory" {
		sdb.SetMaxOpenConns(1)
	}

	return &DB{
		DB:      sdb,
		dialect: dialect,
		logger:  logging.GetLogger("db/" + dialectName),
	}, nil
}

// OpenDefault opens the database named by the DATABASE_URL environment
// variable.
func OpenDefault() (*DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, sqlfault.New(sqlfault.UnboundExecution, "DATABASE_URL is not set")
	}
	return Open(dbURL)
}
