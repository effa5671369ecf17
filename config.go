package reactive

import "github.com/smilemakc/reactive/internal/domain"

// Config carries the engine-wide knobs NewEngine accepts (§9 ambient
// stack).
type Config = domain.EngineConfig

// DefaultConfig returns info-level logging with capture-style binding
// permitted.
func DefaultConfig() Config {
	return domain.DefaultEngineConfig()
}
