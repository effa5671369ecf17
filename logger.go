package reactive

import (
	"github.com/rs/zerolog"

	"github.com/smilemakc/reactive/internal/obslog"
)

// Logger is the zerolog logger type the engine writes its
// dependency-violation diagnostics to (§6: "Logger: external; engine
// writes human-readable lines at levels info/warn/error").
type Logger = zerolog.Logger

// Setup builds a Logger at the given level ("debug", "info", "warn",
// "error"), console-formatted when stdout is a terminal.
func Setup(level string) Logger {
	return obslog.Setup(level)
}
