// Package obslog sets up the engine's diagnostic logger (§6: "Logger:
// external; engine writes human-readable lines at levels info/warn/error
// for dependency-violation diagnostics"). The level argument and its
// info-level fallback mirror the teacher's internal/infrastructure/logger.Setup;
// the logger itself is zerolog, mirroring factory.go's and
// node_executors.go's direct zerolog/log use instead of the teacher's
// log/slog-based Setup.
package obslog

import (
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Setup builds a zerolog.Logger at the given level: any level string
// zerolog.ParseLevel accepts ("debug", "info", "warn", "error", "trace",
// ...); a string ParseLevel rejects falls back to "info", same fallback
// as the teacher's logger.Setup. When stdout is a terminal it wraps
// zerolog's ConsoleWriter with isatty detection and a colorable writer
// for ANSI-unsafe terminals — the teacher never does this itself (its
// go.mod carries go-isatty/go-colorable only as unused transitive
// requirements), so this is where this module puts them to real use;
// otherwise it writes plain JSON lines suited to log aggregation.
func Setup(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var out zerolog.Logger
	if isatty.IsTerminal(os.Stdout.Fd()) {
		writer := zerolog.ConsoleWriter{Out: colorable.NewColorableStdout(), TimeFormat: "15:04:05"}
		out = zerolog.New(writer).With().Timestamp().Logger()
	} else {
		out = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return out.Level(lvl)
}

// Default is the package-level logger used when an embedder does not
// call Setup explicitly. It writes info-and-above to stdout.
var Default = Setup("info")
