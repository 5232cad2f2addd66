package postgres

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/relkit/sqlfault"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg error " + code}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *sqlfault.Class
	}{
		{"unique violation", pgErr("23505"), sqlfault.Integrity},
		{"foreign key violation", pgErr("23503"), sqlfault.Integrity},
		{"not null violation", pgErr("23502"), sqlfault.Integrity},
		{"invalid text representation", pgErr("22P02"), sqlfault.Data},
		{"numeric out of range", pgErr("22003"), sqlfault.Data},
		{"undefined table", pgErr("42P01"), sqlfault.Programming},
		{"syntax error", pgErr("42601"), sqlfault.Programming},
		{"feature not supported", pgErr("0A000"), sqlfault.NotSupported},
		{"serialization failure", pgErr("40001"), sqlfault.Operational},
		{"deadlock detected", pgErr("40P01"), sqlfault.Operational},
		{"connection failure", pgErr("08006"), sqlfault.Operational},
		{"too many connections", pgErr("53300"), sqlfault.Operational},
		{"admin shutdown", pgErr("57P01"), sqlfault.Operational},
		{"internal error", pgErr("XX000"), sqlfault.Internal},
		{"unknown sqlstate", pgErr("P0001"), sqlfault.Database},
		{"wrapped pg error", errors.Join(errors.New("exec"), pgErr("23505")), sqlfault.Integrity},
		{"eof", io.EOF, sqlfault.Operational},
		{"not a pg error", errors.New("something else"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dialect{}.Classify(tt.err))
		})
	}
}

func TestIsDisconnect(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"admin shutdown", pgErr("57P01"), true},
		{"crash shutdown", pgErr("57P02"), true},
		{"cannot connect now", pgErr("57P03"), true},
		{"connection failure class", pgErr("08006"), true},
		{"eof", io.EOF, true},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"unique violation", pgErr("23505"), false},
		{"plain error", errors.New("nope"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dialect{}.IsDisconnect(tt.err))
		})
	}
}

func TestIsErrorCode(t *testing.T) {
	err := pgErr("40001")
	if pg, ok := IsErrorCode(err, SerializationFailure); assert.True(t, ok) {
		assert.Equal(t, "40001", pg.Code)
	}
	_, ok := IsErrorCode(err, DeadlockDetected)
	assert.False(t, ok)
	_, ok = IsErrorCode(errors.New("not pg"), SerializationFailure)
	assert.False(t, ok)
}

func TestRetryOnErrorCode(t *testing.T) {
	retry := RetryOnErrorCode(SerializationFailure, DeadlockDetected)
	ctx := context.Background()
	assert.True(t, retry(ctx, pgErr("40001")))
	assert.True(t, retry(ctx, pgErr("40P01")))
	assert.False(t, retry(ctx, pgErr("23505")))
	assert.False(t, retry(ctx, errors.New("not pg")))
}

func TestWrapDriverWithDialect(t *testing.T) {
	err := sqlfault.WrapDriver(Dialect{}, pgErr("23505"), "INSERT INTO t VALUES ($1)", []interface{}{1})
	assert.ErrorIs(t, err, sqlfault.Integrity)
	assert.ErrorIs(t, err, sqlfault.Database)

	err = sqlfault.WrapDriver(Dialect{}, pgErr("57P01"), "SELECT 1", nil)
	assert.ErrorIs(t, err, sqlfault.Disconnection)
}
