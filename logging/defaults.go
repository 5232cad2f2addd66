package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

var defaultLoggingOnce sync.Once

// ConfigureDefaultLogging sets up the process-wide zerolog defaults: UTC
// RFC3339Nano timestamps, stack marshaling for wrapped errors, and a global
// level taken from LOG_LEVEL (default info).
func ConfigureDefaultLogging() {
	defaultLoggingOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimestampFunc = func() time.Time {
			return time.Now().UTC()
		}
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.ErrorFieldName = "err"

		if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
			level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
			if err != nil {
				panic(err)
			}
			zerolog.SetGlobalLevel(level)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}

		log.Logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	})
}
