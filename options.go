package fhirmodel

import (
	"github.com/gofhir/model/pkg/cache"
	"github.com/gofhir/model/pkg/constraint"
	"github.com/gofhir/model/pkg/validation"
)

// Option configures the model.
type Option func(*Options)

// Options holds the process wide settings of the model.
type Options struct {
	// Construction checks
	ReferenceTypeChecks    bool
	ControlCharacterChecks bool
	MaxStringLength        int

	// Cache sizes
	ExpressionCacheSize int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	cfg := validation.DefaultConfig()
	return &Options{
		ReferenceTypeChecks:    cfg.CheckReferenceTypes,
		ControlCharacterChecks: cfg.CheckControlCharacters,
		MaxStringLength:        cfg.MaxStringLength,
		ExpressionCacheSize:    cache.DefaultCapacity,
	}
}

// CurrentOptions returns the active configuration.
func CurrentOptions() *Options {
	cfg := validation.CurrentConfig()
	return &Options{
		ReferenceTypeChecks:    cfg.CheckReferenceTypes,
		ControlCharacterChecks: cfg.CheckControlCharacters,
		MaxStringLength:        cfg.MaxStringLength,
		ExpressionCacheSize:    constraint.Default().Stats().Capacity,
	}
}

// --- Construction Options ---

// WithReferenceTypeChecks enables checking that references point to one of
// the resource types an element allows.
func WithReferenceTypeChecks(enable bool) Option {
	return func(o *Options) {
		o.ReferenceTypeChecks = enable
	}
}

// WithControlCharacterChecks enables rejecting string values that contain
// control characters other than TAB, CR and LF.
func WithControlCharacterChecks(enable bool) Option {
	return func(o *Options) {
		o.ControlCharacterChecks = enable
	}
}

// WithMaxStringLength limits the length of string values.
// Use 0 for no limit.
func WithMaxStringLength(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxStringLength = n
		}
	}
}

// --- Cache Options ---

// WithExpressionCache sets the FHIRPath expression cache size.
func WithExpressionCache(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.ExpressionCacheSize = size
		}
	}
}

// Configure applies opts on top of the active configuration and returns a
// function restoring the previous one.
func Configure(opts ...Option) (restore func()) {
	o := CurrentOptions()
	for _, opt := range opts {
		opt(o)
	}

	prev := validation.SetConfig(validation.Config{
		CheckReferenceTypes:    o.ReferenceTypeChecks,
		CheckControlCharacters: o.ControlCharacterChecks,
		MaxStringLength:        o.MaxStringLength,
	})
	prevCompiler := constraint.Default()
	if o.ExpressionCacheSize != prevCompiler.Stats().Capacity {
		constraint.SetDefault(constraint.NewCompiler(o.ExpressionCacheSize))
	}

	return func() {
		validation.SetConfig(prev)
		constraint.SetDefault(prevCompiler)
	}
}

// Reset restores the default configuration.
func Reset() {
	Configure(func(o *Options) { *o = *DefaultOptions() })
}

// --- Presets ---

// LenientOptions returns options for reading data of unknown quality.
// Only the structural checks remain.
func LenientOptions() []Option {
	return []Option{
		WithReferenceTypeChecks(false),
		WithControlCharacterChecks(false),
		WithMaxStringLength(0),
	}
}

// StrictOptions returns the default checks with a 64 KiB string limit.
func StrictOptions() []Option {
	return []Option{
		WithReferenceTypeChecks(true),
		WithControlCharacterChecks(true),
		WithMaxStringLength(64 * 1024),
	}
}
