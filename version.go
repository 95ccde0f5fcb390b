package fhirmodel

// Version is the version of this module.
const Version = "0.3.0"

// FHIRVersion represents a FHIR specification version.
type FHIRVersion string

// Supported FHIR versions.
const (
	// R4 is FHIR Release 4 (4.0.1)
	R4 FHIRVersion = "R4"
)

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if the model is generated for this version.
func (v FHIRVersion) IsValid() bool {
	_, ok := versionConfigs[v]
	return ok
}

// versionConfig holds version-specific configuration.
type versionConfig struct {
	// CorePackage is the FHIR core package the model is generated from
	CorePackageName    string
	CorePackageVersion string

	// FHIRVersionString is the version string used in StructureDefinitions
	FHIRVersionString string
}

var versionConfigs = map[FHIRVersion]versionConfig{
	R4: {
		CorePackageName:    "hl7.fhir.r4.core",
		CorePackageVersion: "4.0.1",
		FHIRVersionString:  "4.0.1",
	},
}

// getVersionConfig returns the configuration for a FHIR version.
func getVersionConfig(v FHIRVersion) (versionConfig, bool) {
	cfg, ok := versionConfigs[v]
	return cfg, ok
}

// FHIRRelease returns the release number of v, e.g. "4.0.1", or "" for an
// unsupported version.
func FHIRRelease(v FHIRVersion) string {
	cfg, _ := getVersionConfig(v)
	return cfg.FHIRVersionString
}

// CorePackage returns the "name#version" of the core package of v, or "" for
// an unsupported version.
func CorePackage(v FHIRVersion) string {
	cfg, ok := getVersionConfig(v)
	if !ok {
		return ""
	}
	return cfg.CorePackageName + "#" + cfg.CorePackageVersion
}
