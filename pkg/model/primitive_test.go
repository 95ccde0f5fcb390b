package model

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/validation"
)

func TestPrimitiveConstructors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr bool
	}{
		{"code", func() error { _, err := NewCode("active"); return err }, false},
		{"code with double space", func() error { _, err := NewCode("a  b"); return err }, true},
		{"id", func() error { _, err := NewId("ci-1"); return err }, false},
		{"id too long", func() error { _, err := NewId(strings.Repeat("a", 65)); return err }, true},
		{"string with control character", func() error { _, err := NewString("a\x00b"); return err }, true},
		{"positiveInt", func() error { _, err := NewPositiveInt(1); return err }, false},
		{"positiveInt zero", func() error { _, err := NewPositiveInt(0); return err }, true},
		{"unsignedInt negative", func() error { _, err := NewUnsignedInt(-1); return err }, true},
		{"date", func() error { _, err := NewDate("2020-02-29"); return err }, false},
		{"date out of calendar", func() error { _, err := NewDate("2021-02-29"); return err }, true},
		{"dateTime partial", func() error { _, err := NewDateTime("2020-01"); return err }, false},
		{"instant without zone", func() error { _, err := NewInstant("2020-01-01T10:00:00"); return err }, true},
		{"xhtml", func() error { _, err := NewXhtml(`<div xmlns="http://www.w3.org/1999/xhtml">ok</div>`); return err }, false},
		{"xhtml without div", func() error { _, err := NewXhtml("plain text"); return err }, true},
		{"uuid", func() error { _, err := NewUuid("urn:uuid:c757873d-ec9a-4326-a141-556f43239520"); return err }, false},
		{"uuid without prefix", func() error { _, err := NewUuid("c757873d-ec9a-4326-a141-556f43239520"); return err }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if tt.wantErr {
				assert.True(t, errors.Is(err, validation.ErrInvalidValue), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { MustCode("a  b") })
	assert.NotPanics(t, func() { MustCode("a b") })
}

func TestPrimitiveValues(t *testing.T) {
	var s *String
	assert.Equal(t, "", s.Value())
	assert.False(t, s.HasValue())

	assert.Equal(t, "hello", MustString("hello").Value())
	assert.Equal(t, int32(-3), NewInteger(-3).Value())
	assert.True(t, NewBoolean(true).Value())
	assert.Equal(t, "boolean", NewBoolean(true).FHIRType())
	assert.Equal(t, "dateTime", MustDateTime("2020").FHIRType())
}

func TestDecimal(t *testing.T) {
	d, err := NewDecimalFromString("1.50")
	require.NoError(t, err)
	assert.True(t, d.Value().Equal(decimal.NewFromFloat(1.5)))

	_, err = NewDecimalFromString("1.5e3x")
	assert.Error(t, err)
}

func TestBase64Binary(t *testing.T) {
	b, err := NewBase64BinaryFromString("aGVs\nbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b.Value())
	assert.Equal(t, "aGVsbG8=", b.Encoded())

	_, err = NewBase64BinaryFromString("***")
	assert.Error(t, err)

	data := []byte("abc")
	copied := NewBase64Binary(data)
	data[0] = 'x'
	assert.Equal(t, []byte("abc"), copied.Value())
}

func TestUUID(t *testing.T) {
	u := NewRandomUUID()
	assert.True(t, strings.HasPrefix(u.Value(), "urn:uuid:"))
	_, err := u.UUID()
	assert.NoError(t, err)
}

func TestTimes(t *testing.T) {
	d, err := MustDate("2020-02").Time()
	require.NoError(t, err)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.February, d.Month())

	at := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2021-01-02T03:04:05Z", NewInstantFromTime(at).Value())
	assert.Equal(t, "2021-01-02", NewDateFromTime(at).Value())
	parsed, err := NewInstantFromTime(at).Time()
	require.NoError(t, err)
	assert.True(t, parsed.Equal(at))

	dur, err := MustTime("10:30:00").Duration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Hour+30*time.Minute, dur)
}

func TestPrimitiveNeedsValueOrExtension(t *testing.T) {
	_, err := NewStringBuilder().ID("s1").Build()
	assert.True(t, errors.Is(err, validation.ErrNoValueOrChildren))

	ext, err := NewExtension("http://example.org/data-absent", MustCode("unknown"))
	require.NoError(t, err)
	s, err := NewStringBuilder().Extension(ext).Build()
	require.NoError(t, err)
	assert.False(t, s.HasValue())
	assert.Len(t, s.Extension(), 1)
}

func TestCodeOf(t *testing.T) {
	c, err := NewCodeOf(BundleTypeBatch)
	require.NoError(t, err)
	assert.Equal(t, BundleTypeBatch, c.Value())
	assert.Equal(t, "code", c.FHIRType())
	assert.Equal(t, "batch", c.Code().Value())
	assert.Equal(t, "http://hl7.org/fhir/ValueSet/bundle-type|4.0.1", c.ValueSetURL())
	assert.True(t, c.Equal(BundleTypeBatch.Code()))
	assert.False(t, c.Equal(BundleTypeHistory.Code()))

	_, err = NewCodeOf(BundleType("nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrBinding))
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "code.value", verr.Path)
}

func TestValueSets(t *testing.T) {
	assert.True(t, HTTPVerbPATCH.IsValid())
	assert.False(t, HTTPVerb("get").IsValid())
	assert.True(t, EventTimingMORNEarly.IsValid())
	assert.Equal(t, "MORN.early", string(EventTimingMORNEarly))
	assert.True(t, QuantityComparatorLessThan.IsValid())
}
