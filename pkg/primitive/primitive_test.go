package primitive

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		typeName string
		value    string
		valid    bool
	}{
		{"boolean", "true", true},
		{"boolean", "TRUE", false},
		{"code", "entered-in-error", true},
		{"code", "two  spaces", false},
		{"code", " leading", false},
		{"id", "abc-123.x", true},
		{"id", "has_underscore", false},
		{"date", "2020", true},
		{"date", "2020-02", true},
		{"date", "2020-02-29", true},
		{"date", "2021-02-29", false},
		{"date", "2020-13-01", false},
		{"dateTime", "2020-01-01T10:00:00Z", true},
		{"dateTime", "2020-01-01T10:00:00.123+02:00", true},
		{"dateTime", "2020-01-01T10:00", false},
		{"instant", "2020-01-01T10:00:00Z", true},
		{"instant", "2020-01-01", false},
		{"time", "23:59:59", true},
		{"time", "24:00:00", false},
		{"decimal", "-1.50", true},
		{"decimal", "1e10", true},
		{"decimal", "01", false},
		{"integer", "-42", true},
		{"integer", "2147483648", false},
		{"unsignedInt", "0", true},
		{"unsignedInt", "-1", false},
		{"positiveInt", "+5", true},
		{"positiveInt", "0", false},
		{"oid", "urn:oid:1.2.3", true},
		{"oid", "1.2.3", false},
		{"uuid", "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", true},
		{"uuid", "urn:uuid:C757873D-EC9A-4326-A141-556F43239520", false},
		{"uuid", "c757873d-ec9a-4326-a141-556f43239520", false},
		{"uri", "http://example.org/fhir", true},
		{"uri", "has space", false},
		{"string", "hello\nworld", true},
		{"markdown", "# title", true},
		{"base64Binary", "aGVsbG8=", true},
		{"base64Binary", "aGVs bG8=", true},
		{"base64Binary", "not base64!", false},
		{"xhtml", `<div xmlns="http://www.w3.org/1999/xhtml">x</div>`, true},
		{"xhtml", "<p>x</p>", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"/"+tt.value, func(t *testing.T) {
			err := Check(tt.typeName, tt.value)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFormat))
		})
	}
}

func TestCheckUnknownType(t *testing.T) {
	err := Check("Coding", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestIsPrimitive(t *testing.T) {
	assert.True(t, IsPrimitive("dateTime"))
	assert.True(t, IsPrimitive("uuid"))
	assert.False(t, IsPrimitive("Quantity"))
	assert.Len(t, Types(), 20)
}

func TestValidatorTags(t *testing.T) {
	assert.Equal(t, "fhir_date", Tag("date"))
	assert.Equal(t, "base64", Tag("base64Binary"))
	assert.NoError(t, Validator().Var("1.2", Tag("decimal")))
	assert.Error(t, Validator().Var("abc", Tag("decimal")))
}

func TestTruncate(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, truncate(string(long)), 53)
	assert.Equal(t, "short", truncate("short"))
}
