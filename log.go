// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package mjcf

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const modulePath = "github.com/gviegas/mjcf"

var rootLog atomic.Pointer[slog.Logger]

func init() { rootLog.Store(newRootLogger(nil)) }

// buildAttrs returns the attributes that every root logger
// carries.
var buildAttrs = sync.OnceValue(func() []any {
	version, commit, goversion := "unknown", "unknown", "unknown"
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return []any{"mjcf/version", version, "mjcf/commit", commit, "mjcf/goversion", goversion}
	}
	goversion = bi.GoVersion
	if bi.Main.Path == modulePath {
		version = bi.Main.Version
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
			}
		}
	} else {
		for _, m := range bi.Deps {
			if m.Path == modulePath {
				version = m.Version
				if m.Replace != nil {
					version = m.Replace.Version
				}
				break
			}
		}
	}
	return []any{"mjcf/version", version, "mjcf/commit", commit, "mjcf/goversion", goversion}
})

func newRootLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return l.With(buildAttrs()...)
}

// SetRootLogger sets the logger used for diagnostics.
// It is meant to be called once at startup.
func SetRootLogger(l *slog.Logger) { rootLog.Store(newRootLogger(l)) }

// DropRootLogger restores the default logger, which
// discards everything.
func DropRootLogger() { rootLog.Store(newRootLogger(nil)) }

// RootLogger returns the logger used for diagnostics.
func RootLogger() *slog.Logger { return rootLog.Load() }
