package domain

// EngineConfig carries the engine-wide knobs that are genuinely
// configurable without changing propagation semantics, grounded on the
// teacher's EngineConfig/DefaultEngineConfig pair
// (internal/application/executor/engine.go).
type EngineConfig struct {
	// LogLevel is passed to internal/obslog.Setup ("debug", "info",
	// "warn", "error").
	LogLevel string
	// AllowCapture records whether capture-style binding (§4.4) is
	// permitted. NewEngine does not read it: Calc, Action, Rebind and
	// SetThreshold install a capture sink whatever its value, so setting
	// it false does not disable capture-style binding.
	AllowCapture bool
}

// DefaultEngineConfig returns the configuration the package-level default
// engine (reactive.Default) is built with: info-level logging,
// AllowCapture true.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LogLevel:     "info",
		AllowCapture: true,
	}
}
