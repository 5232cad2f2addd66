package sqlfault

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/relkit/sqlfault/logging"
)

func TestWarningClasses(t *testing.T) {
	tests := []struct {
		name      string
		warning   *Warning
		ancestors []*Class
		since     string
	}{
		{
			"runtime",
			NewWarning("implicit coercion of SELECT object"),
			[]*Class{RuntimeWarn},
			"",
		},
		{
			"deprecation",
			NewDeprecation("the autoload flag is deprecated"),
			[]*Class{Deprecation},
			"",
		},
		{
			"pending deprecation",
			NewPendingDeprecation("this will be deprecated next release"),
			[]*Class{PendingDeprecation},
			"",
		},
		{
			"legacy api",
			NewWarningIn(LegacyAPI, "bound metadata is a legacy pattern"),
			[]*Class{LegacyAPI, V2Deprecation, Deprecation},
			"1.4",
		},
		{
			"moved in v2",
			NewWarningIn(MovedInV2, "this import moved in v2"),
			[]*Class{MovedInV2, V2Deprecation, Deprecation},
			"1.4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range tt.ancestors {
				assert.ErrorIs(t, tt.warning, a)
			}
			assert.Equal(t, tt.since, tt.warning.DeprecatedSince())
			if tt.since != "" {
				assert.Contains(t, tt.warning.Error(), "deprecated since "+tt.since)
			}
		})
	}
}

func TestWarningEmitOnce(t *testing.T) {
	var buf strings.Builder
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	// bump the config generation so the component logger rebuilds from the
	// swapped-in root logger
	logging.SetComponentLevel("sqlfault/warnings", false, zerolog.WarnLevel)

	w := NewDeprecation("emit once test warning")
	w.Emit()
	w.Emit()
	NewDeprecation("emit once test warning").Emit()

	assert.Equal(t, 1, strings.Count(buf.String(), "emit once test warning"))
	assert.Contains(t, buf.String(), `"class":"deprecation"`)
}

func TestWarningCode(t *testing.T) {
	w := NewWarningIn(MovedInV2, "select() moved").WithCode("v2-migration")
	assert.Contains(t, w.Error(), ErrorHelpURL+"/v2-migration")
}
