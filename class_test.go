package sqlfault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassAncestry(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		ancestors []*Class
		not       []*Class
	}{
		{
			"argument",
			New(Argument, "bad argument"),
			[]*Class{Argument, Base},
			[]*Class{InvalidRequest, Statement},
		},
		{
			"object not executable",
			NewObjectNotExecutable("SELECT"),
			[]*Class{ObjectNotExecutable, Argument, Base},
			[]*Class{InvalidRequest},
		},
		{
			"no such module",
			New(NoSuchModule, "no dialect"),
			[]*Class{NoSuchModule, Argument, Base},
			nil,
		},
		{
			"circular dependency",
			NewCircularDependency("cycle detected", []string{"a", "b"}, []Edge{{"a", "b"}, {"b", "a"}}),
			[]*Class{CircularDependency, Base},
			[]*Class{Argument},
		},
		{
			"unsupported compilation",
			NewUnsupportedCompilation("pgcompiler", "TSQLHint", ""),
			[]*Class{UnsupportedCompilation, Compile, Base},
			[]*Class{Statement},
		},
		{
			"disconnection",
			NewDisconnection("gone"),
			[]*Class{Disconnection, Base},
			[]*Class{InvalidatePool, DBAPI},
		},
		{
			"invalidate pool",
			NewInvalidatePool("server restarted"),
			[]*Class{InvalidatePool, Disconnection, Base},
			[]*Class{DBAPI},
		},
		{
			"pending rollback",
			New(PendingRollback, "rollback first"),
			[]*Class{PendingRollback, InvalidRequest, Base},
			nil,
		},
		{
			"no result found",
			New(NoResultFound, "no rows"),
			[]*Class{NoResultFound, InvalidRequest, Base},
			[]*Class{MultipleResultsFound},
		},
		{
			"no referenced table",
			NewNoReferencedTable("fk target missing", "users"),
			[]*Class{NoReferencedTable, NoReference, InvalidRequest, Base},
			[]*Class{NoReferencedColumn},
		},
		{
			"no referenced column",
			NewNoReferencedColumn("fk column missing", "users", "id"),
			[]*Class{NoReferencedColumn, NoReference, InvalidRequest, Base},
			[]*Class{NoReferencedTable},
		},
		{
			"statement",
			NewStatement("boom", "SELECT 1", nil, nil),
			[]*Class{Statement, Base},
			[]*Class{DBAPI},
		},
		{
			"resource closed",
			New(ResourceClosed, "closed"),
			[]*Class{ResourceClosed, InvalidRequest, Base},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range tt.ancestors {
				assert.ErrorIs(t, tt.err, a, "should match ancestor %s", a.Name())
			}
			for _, n := range tt.not {
				assert.NotErrorIs(t, tt.err, n, "should not match %s", n.Name())
			}
		})
	}
}

func TestNoSuchColumnDualAncestry(t *testing.T) {
	err := New(NoSuchColumn, "could not locate column 'nope' in row")
	assert.ErrorIs(t, err, NoSuchColumn)
	assert.ErrorIs(t, err, InvalidRequest)
	assert.ErrorIs(t, err, NoSuchKey)
	assert.ErrorIs(t, err, Base)
	assert.NotErrorIs(t, New(NoSuchKey, "missing"), InvalidRequest)
}

func TestDBAPISubtreeAncestry(t *testing.T) {
	for _, class := range []*Class{Data, Operational, Integrity, Internal, Programming, NotSupported} {
		t.Run(class.Name(), func(t *testing.T) {
			err := New(class, "driver said no")
			assert.ErrorIs(t, err, Database)
			assert.ErrorIs(t, err, DBAPI)
			assert.ErrorIs(t, err, Statement)
			assert.ErrorIs(t, err, Base)
		})
	}
	assert.NotErrorIs(t, New(Interface, "driver broke"), Database)
	assert.ErrorIs(t, New(Interface, "driver broke"), DBAPI)
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, Integrity, ClassOf(New(Integrity, "dup")))
	assert.Equal(t, NoReferencedTable, ClassOf(NewNoReferencedTable("m", "t")))
	assert.Nil(t, ClassOf(errors.New("plain")))
	assert.Nil(t, ClassOf(nil))
}

func TestErrorRendering(t *testing.T) {
	plain := New(NoSuchTable, "table 'missing' does not exist")
	assert.Equal(t, "table 'missing' does not exist", plain.Error())

	coded := New(Operational, "server closed the connection")
	assert.Contains(t, coded.Error(), "server closed the connection")
	assert.Contains(t, coded.Error(), ErrorHelpURL+"/operational")

	cause := errors.New("root cause")
	assert.ErrorIs(t, New(Compile, "cannot render").WithCause(cause), cause)
}

func TestDeprecatedSince(t *testing.T) {
	tests := []struct {
		class *Class
		since string
	}{
		{Deprecation, ""},
		{PendingDeprecation, ""},
		{V2Deprecation, "1.4"},
		{LegacyAPI, "1.4"},
		{MovedInV2, "1.4"},
		{RuntimeWarn, ""},
	}
	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			assert.Equal(t, tt.since, tt.class.DeprecatedSince())
		})
	}
}
