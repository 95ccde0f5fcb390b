package fhirmodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/cache"
	"github.com/gofhir/model/pkg/constraint"
	"github.com/gofhir/model/pkg/model"
	"github.com/gofhir/model/pkg/validation"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.ReferenceTypeChecks)
	assert.True(t, opts.ControlCharacterChecks)
	assert.Equal(t, validation.DefaultMaxStringLength, opts.MaxStringLength)
	assert.Equal(t, cache.DefaultCapacity, opts.ExpressionCacheSize)
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(*testing.T, *Options)
	}{
		{"reference checks off", WithReferenceTypeChecks(false), func(t *testing.T, o *Options) {
			assert.False(t, o.ReferenceTypeChecks)
		}},
		{"control characters off", WithControlCharacterChecks(false), func(t *testing.T, o *Options) {
			assert.False(t, o.ControlCharacterChecks)
		}},
		{"max string length", WithMaxStringLength(10), func(t *testing.T, o *Options) {
			assert.Equal(t, 10, o.MaxStringLength)
		}},
		{"negative max string length ignored", WithMaxStringLength(-1), func(t *testing.T, o *Options) {
			assert.Equal(t, validation.DefaultMaxStringLength, o.MaxStringLength)
		}},
		{"expression cache", WithExpressionCache(16), func(t *testing.T, o *Options) {
			assert.Equal(t, 16, o.ExpressionCacheSize)
		}},
		{"zero expression cache ignored", WithExpressionCache(0), func(t *testing.T, o *Options) {
			assert.Equal(t, cache.DefaultCapacity, o.ExpressionCacheSize)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.opt(o)
			tt.check(t, o)
		})
	}
}

func TestConfigure(t *testing.T) {
	compiler := constraint.Default()

	ref, err := model.NewReference("Practitioner/1")
	require.NoError(t, err)
	code, err := model.NewCodeableConcept("consult")
	require.NoError(t, err)
	build := func() error {
		_, err := model.NewChargeItemBuilder().
			Status(model.ChargeItemStatusBillable.Code()).
			Code(code).
			Subject(ref).
			Build()
		return err
	}

	restore := Configure(WithReferenceTypeChecks(false), WithMaxStringLength(8), WithExpressionCache(16))
	defer restore()

	cfg := validation.CurrentConfig()
	assert.False(t, cfg.CheckReferenceTypes)
	assert.True(t, cfg.CheckControlCharacters)
	assert.Equal(t, 8, cfg.MaxStringLength)
	assert.Equal(t, 16, constraint.Default().Stats().Capacity)
	assert.Equal(t, 16, CurrentOptions().ExpressionCacheSize)

	_, err = model.NewString(strings.Repeat("x", 9))
	assert.Error(t, err)
	_, err = model.NewReference("Practitioner/1")
	assert.Error(t, err, "reference longer than the configured limit")

	assert.NoError(t, build())

	restore()
	assert.Equal(t, validation.DefaultConfig(), validation.CurrentConfig())
	assert.Same(t, compiler, constraint.Default())
	assert.ErrorIs(t, build(), validation.ErrReferenceType)
}

func TestReset(t *testing.T) {
	Configure(LenientOptions()...)
	assert.False(t, validation.CurrentConfig().CheckControlCharacters)
	assert.Zero(t, validation.CurrentConfig().MaxStringLength)

	Reset()
	assert.Equal(t, validation.DefaultConfig(), validation.CurrentConfig())
}

func TestStrictOptions(t *testing.T) {
	restore := Configure(StrictOptions()...)
	defer restore()

	assert.Equal(t, 64*1024, validation.CurrentConfig().MaxStringLength)
	assert.True(t, validation.CurrentConfig().CheckReferenceTypes)
}
