package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/relkit/sqlfault"
)

func TestCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"canceled", context.Canceled, codes.Canceled},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"timeout", sqlfault.New(sqlfault.Timeout, "pool timeout"), codes.DeadlineExceeded},
		{"no result", sqlfault.New(sqlfault.NoResultFound, "no rows"), codes.NotFound},
		{"integrity", sqlfault.New(sqlfault.Integrity, "duplicate"), codes.AlreadyExists},
		{"argument", sqlfault.New(sqlfault.Argument, "bad"), codes.InvalidArgument},
		{"data", sqlfault.New(sqlfault.Data, "bad value"), codes.InvalidArgument},
		{"not supported", sqlfault.New(sqlfault.NotSupported, "nope"), codes.Unimplemented},
		{"unsupported compilation", sqlfault.NewUnsupportedCompilation("c", "e", ""), codes.Unimplemented},
		{"disconnection", sqlfault.NewInvalidatePool("restart"), codes.Unavailable},
		{"operational", sqlfault.New(sqlfault.Operational, "down"), codes.Unavailable},
		{"pending rollback", sqlfault.New(sqlfault.PendingRollback, "roll back"), codes.FailedPrecondition},
		{"other taxonomy", sqlfault.New(sqlfault.Compile, "cannot render"), codes.Internal},
		{"plain", errors.New("plain"), codes.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeForError(tt.err))
		})
	}
}

func TestAsStatusError(t *testing.T) {
	assert.NoError(t, AsStatusError(nil))

	already := status.Error(codes.NotFound, "gone")
	assert.Equal(t, already, AsStatusError(already))

	st, ok := status.FromError(AsStatusError(sqlfault.New(sqlfault.Integrity, "duplicate")))
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())
	assert.Contains(t, st.Message(), "duplicate")
}
