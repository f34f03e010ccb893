package placement

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Its handler reports every level as disabled,
// so log calls cost no formatting.
var silent = slog.New(slog.DiscardHandler)

var runLogger atomic.Pointer[slog.Logger]

func init() { runLogger.Store(silent) }

// SetLogger routes placement logging to l.
//
// What:
//
//   - Debug: every accepted or discarded curve and every cursor move.
//   - Info: one summary line when a run finishes.
//   - Error: a run stopped early because a density cell overflowed.
//
// Why:
//
//   - A library run stays quiet by default; the CLI opts in from its run command.
//   - The logger is swapped atomically, so concurrent runs may call it freely.
//
// A nil l restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	runLogger.Store(l)
}

// Logger returns the logger placement runs write to.
func Logger() *slog.Logger { return runLogger.Load() }
