package sqlfault

// Class is a node in the error taxonomy. Classes are compared by identity,
// and every error produced by this module remembers the Class it was raised
// under. Matching is done through errors.Is with a Class sentinel as the
// target: an error matches its own Class and every declared ancestor, so
// catching Base catches everything, catching Database catches all the
// driver-level subtypes, and so on.
type Class struct {
	name            string
	code            Code
	parents         []*Class
	deprecatedSince string
}

func newClass(name string, parents ...*Class) *Class {
	return &Class{name: name, parents: parents}
}

func (c *Class) withCode(code Code) *Class {
	c.code = code
	return c
}

func (c *Class) since(version string) *Class {
	c.deprecatedSince = version
	return c
}

// Name returns the short name of the class, suitable for log fields and
// metric labels.
func (c *Class) Name() string { return c.name }

// DefaultCode returns the documentation code errors of this class carry
// unless overridden, or "" when the class has none.
func (c *Class) DefaultCode() Code { return c.code }

// DeprecatedSince returns the release in which the deprecation a warning
// class describes took effect. Inherited from the nearest ancestor that sets
// it; "" when the class carries no such marker.
func (c *Class) DeprecatedSince() string {
	if c.deprecatedSince != "" {
		return c.deprecatedSince
	}
	for _, p := range c.parents {
		if s := p.DeprecatedSince(); s != "" {
			return s
		}
	}
	return ""
}

func (c *Class) isa(t *Class) bool {
	if c == t {
		return true
	}
	for _, p := range c.parents {
		if p.isa(t) {
			return true
		}
	}
	return false
}

func (c *Class) Error() string { return c.name }

// Is makes a bare Class usable on the left side of errors.Is as well, so a
// Class returned directly as an error still matches its ancestors.
func (c *Class) Is(target error) bool {
	t, ok := target.(*Class)
	return ok && c.isa(t)
}

// classIs is the shared errors.Is hook for the concrete error types below.
func classIs(c *Class, target error) bool {
	t, ok := target.(*Class)
	return ok && c.isa(t)
}

// The error taxonomy. Single inheritance throughout except NoSuchColumn,
// which is both an invalid-request error and a key-lookup error.
var (
	// Base is the root: every error raised by the toolkit matches it.
	Base = newClass("sqlfault")

	// Argument and friends cover misuse detected while constructing
	// statements or configuring the toolkit.
	Argument                 = newClass("argument", Base)
	ObjectNotExecutable      = newClass("object_not_executable", Argument)
	NoSuchModule             = newClass("no_such_module", Argument)
	NoForeignKeys            = newClass("no_foreign_keys", Argument)
	AmbiguousForeignKeys     = newClass("ambiguous_foreign_keys", Argument)
	ConstraintColumnNotFound = newClass("constraint_column_not_found", Argument)

	// CircularDependency is raised when topological ordering of schema
	// objects or flush operations finds a cycle.
	CircularDependency = newClass("circular_dependency", Base)

	Compile                = newClass("compile", Base)
	UnsupportedCompilation = newClass("unsupported_compilation", Compile).withCode("unsupported-compilation")

	Identifier = newClass("identifier", Base)

	// Disconnection signals a dead connection detected outside a statement
	// execution, e.g. by a pool pre-ping. InvalidatePool escalates it to
	// "assume every pooled connection is dead".
	Disconnection  = newClass("disconnection", Base)
	InvalidatePool = newClass("invalidate_pool", Disconnection)

	Timeout = newClass("timeout", Base).withCode("timeout")

	// InvalidRequest covers operations that are invalid in the current
	// state of the toolkit, before the database is ever involved.
	InvalidRequest        = newClass("invalid_request", Base)
	IllegalStateChange    = newClass("illegal_state_change", InvalidRequest)
	NoInspectionAvailable = newClass("no_inspection_available", InvalidRequest)
	PendingRollback       = newClass("pending_rollback", InvalidRequest).withCode("pending-rollback")
	NoResultFound         = newClass("no_result_found", InvalidRequest)
	MultipleResultsFound  = newClass("multiple_results_found", InvalidRequest)
	NoSuchTable           = newClass("no_such_table", InvalidRequest)
	UnreflectableTable    = newClass("unreflectable_table", InvalidRequest)
	UnboundExecution      = newClass("unbound_execution", InvalidRequest)
	ResourceClosed        = newClass("resource_closed", InvalidRequest)

	// AwaitRequired and BlockingNotAllowed mark crossings between the
	// blocking and non-blocking halves of the API surface.
	AwaitRequired      = newClass("await_required", InvalidRequest).withCode("await-required")
	BlockingNotAllowed = newClass("blocking_not_allowed", InvalidRequest).withCode("blocking-not-allowed")

	// NoSuchKey is the key-lookup failure category; NoSuchColumn inherits
	// from it alongside InvalidRequest.
	NoSuchKey    = newClass("no_such_key")
	NoSuchColumn = newClass("no_such_column", InvalidRequest, NoSuchKey)

	NoReference        = newClass("no_reference", InvalidRequest)
	NoReferencedTable  = newClass("no_referenced_table", NoReference)
	NoReferencedColumn = newClass("no_referenced_column", NoReference)

	// Statement and the DBAPI subtree wrap errors raised by the database
	// driver while executing a statement. The leaf classes mirror the
	// standard driver error categories.
	Statement = newClass("statement", Base)
	DBAPI     = newClass("dbapi", Statement).withCode("dbapi")
	Interface = newClass("interface", DBAPI).withCode("interface")
	Database  = newClass("database", DBAPI).withCode("database")

	Data         = newClass("data", Database).withCode("data")
	Operational  = newClass("operational", Database).withCode("operational")
	Integrity    = newClass("integrity", Database).withCode("integrity")
	Internal     = newClass("internal", Database).withCode("internal")
	Programming  = newClass("programming", Database).withCode("programming")
	NotSupported = newClass("not_supported", Database).withCode("not-supported")
)

// The warning taxonomy. Two parallel hierarchies: runtime warnings about
// dubious usage, and deprecation warnings about APIs scheduled for removal.
var (
	RuntimeWarn = newClass("warning")

	Deprecation        = newClass("deprecation")
	PendingDeprecation = newClass("pending_deprecation")

	// V2Deprecation and its children mark legacy API usage that the v2
	// surface removes; the deprecations took effect in the 1.4 line.
	V2Deprecation = newClass("v2_deprecation", Deprecation).since("1.4")
	LegacyAPI     = newClass("legacy_api", V2Deprecation)
	MovedInV2     = newClass("moved_in_v2", V2Deprecation)
)
