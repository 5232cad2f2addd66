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
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/relkit/sqlfault"
	"github.com/relkit/sqlfault/db/metrics"
)

// wrapErr routes a driver error through the taxonomy, counts it, and logs
// connection invalidation. args are attached as statement parameters only
// when present.
func (d *DB) wrapErr(err error, query string, args []interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return sqlfault.New(sqlfault.NoResultFound, "no rows in result set").WithCause(err)
	}
	var params interface{}
	if len(args) > 0 {
		params = args
	}
	wrapped := sqlfault.WrapDriver(d.dialect, err, query, params)
	metrics.ObserveError(d.dialect.Name(), wrapped)
	if errors.Is(wrapped, sqlfault.Disconnection) {
		d.logger.Err(wrapped).Msg("connection invalidated by driver error")
	}
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	res, err := d.DB.ExecContext(ctx, query, args...)
	return res, d.wrapErr(err, query, args)
}

func (d *DB) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	rows, err := d.DB.QueryxContext(ctx, query, args...)
	return rows, d.wrapErr(err, query, args)
}

func (d *DB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.wrapErr(d.DB.GetContext(ctx, dest, query, args...), query, args)
}

func (d *DB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.wrapErr(d.DB.SelectContext(ctx, dest, query, args...), query, args)
}

// GetOne scans a single-row result into the struct at dest, insisting on
// exactly one row: zero rows yield a NoResultFound error, two or more a
// MultipleResultsFound error.
func (d *DB) GetOne(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	rows, err := d.QueryxContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return d.wrapErr(err, query, args)
		}
		return sqlfault.New(sqlfault.NoResultFound, "no rows in result set")
	}
	if err := rows.StructScan(dest); err != nil {
		return d.wrapErr(err, query, args)
	}
	if rows.Next() {
		return sqlfault.New(sqlfault.MultipleResultsFound, "multiple rows in result set where exactly one was required")
	}
	return rows.Err()
}

// Ping verifies connectivity, translating failure into a Disconnection
// error so pool-level handling can match on the class.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.DB.PingContext(ctx); err != nil {
		return sqlfault.NewDisconnection("connection liveness check failed").WithCause(err)
	}
	return nil
}

// Tx wraps a sqlx transaction with the same error classification as DB. A
// transaction that has seen a statement failure refuses to commit until
// rolled back, surfacing the pending-rollback state as an error class
// instead of silently committing partial work.
type Tx struct {
	*sqlx.Tx
	db     *DB
	failed bool
}

func (d *DB) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.DB.BeginTxx(ctx, opts)
	if err != nil {
		return nil, d.wrapErr(err, "BEGIN", nil)
	}
	return &Tx{Tx: tx, db: d}, nil
}

func (t *Tx) wrapErr(err error, query string, args []interface{}) error {
	wrapped := t.db.wrapErr(err, query, args)
	// a no-rows result does not poison the transaction, driver errors do
	if errors.Is(wrapped, sqlfault.DBAPI) {
		t.failed = true
	}
	return wrapped
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	res, err := t.Tx.ExecContext(ctx, query, args...)
	return res, t.wrapErr(err, query, args)
}

func (t *Tx) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.wrapErr(t.Tx.GetContext(ctx, dest, query, args...), query, args)
}

func (t *Tx) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.wrapErr(t.Tx.SelectContext(ctx, dest, query, args...), query, args)
}

func (t *Tx) Commit() error {
	if t.failed {
		return sqlfault.New(sqlfault.PendingRollback,
			"this transaction is in a failed state; roll back before continuing")
	}
	if err := t.Tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return sqlfault.New(sqlfault.ResourceClosed, "this transaction is closed").WithCause(err)
		}
		return t.db.wrapErr(err, "COMMIT", nil)
	}
	return nil
}

func (t *Tx) Rollback() error {
	t.failed = false
	if err := t.Tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return sqlfault.New(sqlfault.ResourceClosed, "this transaction is closed").WithCause(err)
		}
		return t.db.wrapErr(err, "ROLLBACK", nil)
	}
	return nil
}
