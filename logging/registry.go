package logging

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configGeneration int32
	configMutex      sync.Mutex
	componentLevel   = map[string]zerolog.Level{}
)

// levelFor resolves the effective level for a component, walking up the
// `/`-separated hierarchy until a configured ancestor or the global level is
// found.
func levelFor(component string) (generation int32, level zerolog.Level) {
	configMutex.Lock()
	defer configMutex.Unlock()
	gen := atomic.LoadInt32(&configGeneration)
	l, ok := componentLevel[component]
	for !ok {
		lastSlash := strings.LastIndexByte(component, '/')
		if lastSlash < 1 {
			l = zerolog.GlobalLevel()
			break
		}
		component = component[:lastSlash]
		l, ok = componentLevel[component]
	}
	return gen, l
}

// GetLogger creates a logger for the given component name. Hierarchies in
// components should be represented with `/` characters in their name.
func GetLogger(component string) *Logger {
	return newFrom(func() (int32, zerolog.Logger) {
		gen, level := levelFor(component)
		ctx := log.Logger.With()
		if component != "" {
			ctx = ctx.Str("component", component)
		}
		return gen, ctx.Logger().Level(level)
	})
}

// SetComponentLevel changes the log level for a component. When children is
// true, customizations on child components are dropped so they inherit the
// new level.
func SetComponentLevel(component string, children bool, level zerolog.Level) {
	configMutex.Lock()
	defer configMutex.Unlock()
	if component == "" {
		zerolog.SetGlobalLevel(level)
		if children {
			componentLevel = map[string]zerolog.Level{}
		}
	} else {
		componentLevel[component] = level
		if children {
			prefix := component + "/"
			for c := range componentLevel {
				if strings.HasPrefix(c, prefix) {
					delete(componentLevel, c)
				}
			}
		}
	}
	atomic.AddInt32(&configGeneration, 1)
}

// ComponentLevels returns a copy of the configured component level map; the
// empty key carries the global level.
func ComponentLevels() map[string]zerolog.Level {
	configMutex.Lock()
	defer configMutex.Unlock()
	ret := make(map[string]zerolog.Level, len(componentLevel)+1)
	ret[""] = zerolog.GlobalLevel()
	for k, v := range componentLevel {
		ret[k] = v
	}
	return ret
}
