package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

type builder = func() (generation int32, logger zerolog.Logger)

// Logger wraps a zerolog.Logger that is rebuilt whenever the component level
// configuration changes, so level changes apply to already-created loggers.
type Logger struct {
	gen   int32
	inner zerolog.Logger
	build builder
}

func newFrom(b builder) *Logger {
	gen, inner := b()
	return &Logger{gen, inner, b}
}

func (l *Logger) refresh() *zerolog.Logger {
	if g := atomic.LoadInt32(&configGeneration); g != l.gen {
		l.gen, l.inner = l.build()
	}
	return &l.inner
}

func (l *Logger) Current() zerolog.Logger { return *l.refresh() }

func (l *Logger) Trace() *zerolog.Event { return l.refresh().Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.refresh().Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.refresh().Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.refresh().Warn() }
func (l *Logger) Error() *zerolog.Event { return l.refresh().Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.refresh().Fatal() }

func (l *Logger) Err(err error) *zerolog.Event { return l.refresh().Err(err) }

func (l *Logger) WithLevel(level zerolog.Level) *zerolog.Event {
	return l.refresh().WithLevel(level)
}

func (l *Logger) Write(p []byte) (int, error) { return l.refresh().Write(p) }

// With derives a logger with extra context fields, keeping the dynamic level
// behavior.
func (l *Logger) With(with func(zerolog.Context) zerolog.Context) *Logger {
	if with == nil {
		return l
	}
	return newFrom(func() (int32, zerolog.Logger) {
		gen, inner := l.build()
		return gen, with(inner.With()).Logger()
	})
}
