package sqlfault

import (
	"sync"

	"github.com/relkit/sqlfault/logging"
)

// Warning is a non-fatal advisory from the toolkit: dubious usage (the
// RuntimeWarn hierarchy) or use of an API scheduled for removal (the
// Deprecation hierarchies). Warnings implement error so they participate in
// errors.Is matching against their classes, but the usual path is Emit,
// which logs each distinct warning once per process.
type Warning struct {
	class *Class
	msg   string
	code  Code
}

// NewWarning returns a runtime warning about dubious but functional usage.
func NewWarning(msg string) *Warning {
	return &Warning{class: RuntimeWarn, msg: msg}
}

// NewDeprecation returns a warning that the invoked API is deprecated.
func NewDeprecation(msg string) *Warning {
	return &Warning{class: Deprecation, msg: msg}
}

// NewPendingDeprecation returns a warning about an API that will be
// deprecated in an upcoming release.
func NewPendingDeprecation(msg string) *Warning {
	return &Warning{class: PendingDeprecation, msg: msg}
}

// NewWarningIn returns a warning of an explicit class, for the narrower
// deprecation categories (LegacyAPI, MovedInV2, ...).
func NewWarningIn(class *Class, msg string) *Warning {
	return &Warning{class: class, msg: msg}
}

// WithCode attaches a documentation code to the warning.
func (w *Warning) WithCode(code Code) *Warning {
	w.code = code
	return w
}

func (w *Warning) Class() *Class { return w.class }

// DeprecatedSince reports the release the deprecation took effect in, from
// the warning's class; "" for classes without the marker.
func (w *Warning) DeprecatedSince() string { return w.class.DeprecatedSince() }

func (w *Warning) Error() string {
	s := w.msg
	if since := w.DeprecatedSince(); since != "" {
		s += " (deprecated since " + since + ")"
	}
	if note := backgroundNote(w.code); note != "" {
		s += " " + note
	}
	return s
}

func (w *Warning) Is(target error) bool { return classIs(w.class, target) }

var (
	warnLog     = logging.GetLogger("sqlfault/warnings")
	warnEmitted sync.Map
)

// Emit logs the warning through the component logger. Each distinct
// class+message pair is logged at most once per process; repeats are
// dropped silently.
func (w *Warning) Emit() {
	if _, seen := warnEmitted.LoadOrStore(w.class.name+"\x00"+w.msg, struct{}{}); seen {
		return
	}
	ev := warnLog.Warn().Str("class", w.class.name)
	if since := w.DeprecatedSince(); since != "" {
		ev = ev.Str("deprecated_since", since)
	}
	if w.code != "" {
		ev = ev.Str("code", string(w.code))
	}
	ev.Msg(w.msg)
}
