package fhirmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/schema"
)

func TestFHIRVersion_IsValid(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    bool
	}{
		{R4, true},
		{"R4B", false},
		{"R5", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.version.IsValid(), "%q", tt.version)
	}
}

func TestGetVersionConfig_R4(t *testing.T) {
	cfg, ok := getVersionConfig(R4)
	require.True(t, ok)
	assert.Equal(t, "hl7.fhir.r4.core", cfg.CorePackageName)
	assert.Equal(t, "4.0.1", cfg.CorePackageVersion)
	assert.Equal(t, "4.0.1", cfg.FHIRVersionString)
}

func TestCorePackage(t *testing.T) {
	assert.Equal(t, schema.CorePackage, CorePackage(R4))
	assert.Equal(t, "4.0.1", FHIRRelease(R4))
	assert.Empty(t, CorePackage("R5"))
	assert.Empty(t, FHIRRelease("R5"))
	assert.Equal(t, "R4", R4.String())
}
