package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type testContextKey string

var testFromContextKey = testContextKey(uuid.NewString())

// ContextForTest returns a context bounded by the test's deadline, so
// database calls in tests fail by cancellation instead of hanging the run.
func ContextForTest(t testing.TB) context.Context {
	ctx := context.Background()
	if tt, ok := t.(*testing.T); ok {
		if d, ok := tt.Deadline(); ok {
			var cancel func()
			ctx, cancel = context.WithDeadline(ctx, d)
			ctx = context.WithValue(ctx, testFromContextKey, t)
			t.Cleanup(cancel)
		}
	}
	return ctx
}

func DeadlineForTest(t testing.TB) time.Time {
	if tt, ok := t.(*testing.T); ok {
		if deadline, ok := tt.Deadline(); ok {
			return deadline
		}
	}
	return time.Now().Add(time.Minute)
}
