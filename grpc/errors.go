package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/relkit/sqlfault"
)

// AsStatusError translates an error into a grpc status error, mapping
// taxonomy classes onto the closest grpc code.
func AsStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(interface {
		GRPCStatus() *status.Status
	}); ok {
		// already a status error
		return err
	}
	return status.Error(CodeForError(err), err.Error())
}

// CodeForError picks the grpc code for an error. Classification is ordered
// most-specific first; anything outside the taxonomy is Unknown.
func CodeForError(err error) codes.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, sqlfault.Timeout):
		return codes.DeadlineExceeded
	case errors.Is(err, sqlfault.NoResultFound):
		return codes.NotFound
	case errors.Is(err, sqlfault.Integrity):
		return codes.AlreadyExists
	case errors.Is(err, sqlfault.Argument), errors.Is(err, sqlfault.Data):
		return codes.InvalidArgument
	case errors.Is(err, sqlfault.NotSupported), errors.Is(err, sqlfault.UnsupportedCompilation):
		return codes.Unimplemented
	case errors.Is(err, sqlfault.Disconnection), errors.Is(err, sqlfault.Operational):
		return codes.Unavailable
	case errors.Is(err, sqlfault.PendingRollback), errors.Is(err, sqlfault.ResourceClosed):
		return codes.FailedPrecondition
	case errors.Is(err, sqlfault.Base):
		return codes.Internal
	default:
		return codes.Unknown
	}
}
