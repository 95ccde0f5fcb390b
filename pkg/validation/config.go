package validation

import "sync/atomic"

// DefaultMaxStringLength is the default limit for string and markdown values.
const DefaultMaxStringLength = 1024 * 1024

// Config controls the optional construction checks.
type Config struct {
	// CheckReferenceTypes enables reference target type checks.
	CheckReferenceTypes bool
	// CheckControlCharacters rejects string values containing control
	// characters other than TAB, CR and LF.
	CheckControlCharacters bool
	// MaxStringLength limits the length in characters of string-like values.
	// Zero disables the limit.
	MaxStringLength int
}

// DefaultConfig returns the configuration used when none has been set.
func DefaultConfig() Config {
	return Config{
		CheckReferenceTypes:    true,
		CheckControlCharacters: true,
		MaxStringLength:        DefaultMaxStringLength,
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return *current.Load()
}

// SetConfig replaces the active configuration and returns the previous one.
func SetConfig(cfg Config) Config {
	prev := current.Swap(&cfg)
	return *prev
}
