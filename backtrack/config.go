package backtrack

import "fmt"

// Config controls compile-time knobs of the engine. The zero value is not
// valid; start from DefaultConfig and override fields as needed. The
// configuration is baked into the Prog at compile time, so two programs
// compiled from the same pattern under different configs are distinct
// values.
type Config struct {
	// DotMatchesNewline makes `.` match every byte. When false, the
	// default, `.` rejects '\n' and '\r' so a dot cannot silently cross a
	// line boundary.
	DotMatchesNewline bool

	// MaxRepeat caps the repetition count explored for `*` and `+`, and
	// clips explicit `{m,n}` bounds from above. A quantifier whose
	// minimum exceeds the ceiling can never match. The cap exists to
	// bound backtracking work; DefaultMaxRepeat is far beyond any sane
	// pattern's needs.
	MaxRepeat int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		DotMatchesNewline: false,
		MaxRepeat:         DefaultMaxRepeat,
	}
}

// Validate checks the configuration, returning a *ConfigError describing
// the first offending field.
func (c Config) Validate() error {
	if c.MaxRepeat < 1 {
		return &ConfigError{
			Field:   "MaxRepeat",
			Message: fmt.Sprintf("must be at least 1, got %d", c.MaxRepeat),
		}
	}
	if c.MaxRepeat > maxRepeatCeiling {
		return &ConfigError{
			Field:   "MaxRepeat",
			Message: fmt.Sprintf("must be at most %d, got %d", maxRepeatCeiling, c.MaxRepeat),
		}
	}
	return nil
}

// maxRepeatCeiling bounds Config.MaxRepeat. Beyond this the backtracking
// cost ceases to be a cap in any practical sense.
const maxRepeatCeiling = 1 << 20

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("regexp: invalid config: %s: %s", e.Field, e.Message)
}
