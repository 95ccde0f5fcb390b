// Package schema reads FHIR R4 StructureDefinitions and compares them with
// the element metadata the model registers.
package schema

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofhir/fhir/r4"
	"github.com/pkg/errors"

	"github.com/gofhir/model/pkg/logger"
)

// CorePackage is the package the model is generated from.
const CorePackage = "hl7.fhir.r4.core#4.0.1"

const (
	sdBase       = "http://hl7.org/fhir/StructureDefinition/"
	fhirpathBase = "http://hl7.org/fhirpath/"
)

// DefaultPackageDir returns the location of the core package in the local
// FHIR package cache, or "" if the home directory is unknown.
func DefaultPackageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fhir", "packages", CorePackage, "package")
}

// Binding is the terminology binding of an element.
type Binding struct {
	Strength string
	ValueSet string
}

// ElementSpec is one element as a StructureDefinition defines it.
type ElementSpec struct {
	Name    string
	Path    string
	Min     int
	Max     string
	Types   []string
	Targets []string
	Binding *Binding
}

// Definition lists the direct child elements of a type or backbone element.
type Definition struct {
	// Path is the type name or the path of the backbone element.
	Path     string
	Kind     string
	Elements []ElementSpec
}

// Element returns the named element.
func (d *Definition) Element(name string) (ElementSpec, bool) {
	for _, e := range d.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return ElementSpec{}, false
}

// Decode parses a StructureDefinition.
func Decode(data []byte) (*r4.StructureDefinition, error) {
	var probe struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "decode resource type")
	}
	if probe.ResourceType != "StructureDefinition" {
		return nil, errors.Errorf("expected StructureDefinition, got %q", probe.ResourceType)
	}

	var sd r4.StructureDefinition
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, errors.Wrap(err, "decode StructureDefinition")
	}
	if sd.Type == nil || *sd.Type == "" {
		return nil, errors.New("StructureDefinition has no type")
	}
	return &sd, nil
}

// Convert splits the snapshot of sd into one Definition per type or
// backbone element, keyed by path.
func Convert(sd *r4.StructureDefinition) (map[string]*Definition, error) {
	if sd == nil || sd.Type == nil {
		return nil, errors.New("convert: StructureDefinition has no type")
	}
	if sd.Snapshot == nil || len(sd.Snapshot.Element) == 0 {
		return nil, errors.Errorf("convert %s: no snapshot", *sd.Type)
	}

	kind := ""
	if sd.Kind != nil {
		kind = string(*sd.Kind)
	}
	defs := map[string]*Definition{
		*sd.Type: {Path: *sd.Type, Kind: kind},
	}

	for i := range sd.Snapshot.Element {
		ed := &sd.Snapshot.Element[i]
		if ed.Path == nil || ed.SliceName != nil {
			continue
		}
		parent, name, ok := cutLast(*ed.Path)
		if !ok {
			continue
		}
		spec := convertElement(name, ed)
		if spec.Max == "0" {
			continue
		}
		def, ok := defs[parent]
		if !ok {
			def = &Definition{Path: parent, Kind: "backbone"}
			defs[parent] = def
		}
		def.Elements = append(def.Elements, spec)
	}
	return defs, nil
}

func cutLast(path string) (parent, name string, ok bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", "", false
	}
	return path[:i], path[i+1:], true
}

func convertElement(name string, ed *r4.ElementDefinition) ElementSpec {
	spec := ElementSpec{
		Name: name,
		Path: *ed.Path,
		Max:  derefString(ed.Max),
	}
	if ed.Min != nil {
		spec.Min = int(*ed.Min)
	}
	for i := range ed.Type {
		t := &ed.Type[i]
		code := derefString(t.Code)
		if code == "" {
			continue
		}
		spec.Types = append(spec.Types, strings.TrimPrefix(code, fhirpathBase))
		for _, target := range t.TargetProfile {
			spec.Targets = append(spec.Targets, strings.TrimPrefix(target, sdBase))
		}
	}
	if ed.Binding != nil && ed.Binding.Strength != nil {
		spec.Binding = &Binding{
			Strength: string(*ed.Binding.Strength),
			ValueSet: derefString(ed.Binding.ValueSet),
		}
	}
	return spec
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LoadStats counts the files seen by LoadPackage.
type LoadStats struct {
	Files   int
	Loaded  int
	Skipped int
	Errors  int
}

// Package holds the core StructureDefinitions of a FHIR package by type.
type Package struct {
	Dir   string
	Stats LoadStats
	types map[string]*r4.StructureDefinition
}

// LoadPackage reads the StructureDefinitions of an unpacked FHIR package.
// Profiles are skipped; only the definitions of base types are kept.
func LoadPackage(dir string) (*Package, error) {
	contentDir := dir
	if _, err := os.Stat(filepath.Join(dir, "package")); err == nil {
		contentDir = filepath.Join(dir, "package")
	}

	entries, err := os.ReadDir(contentDir)
	if err != nil {
		return nil, errors.Wrap(err, "read package directory")
	}

	pkg := &Package{Dir: contentDir, types: make(map[string]*r4.StructureDefinition)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		if name == "package.json" || name == ".index.json" || !strings.HasPrefix(name, "StructureDefinition-") {
			continue
		}
		pkg.Stats.Files++

		data, err := os.ReadFile(filepath.Join(contentDir, name))
		if err != nil {
			pkg.Stats.Errors++
			logger.Warn().Err(err).Str("file", name).Msg("could not read StructureDefinition")
			continue
		}
		sd, err := Decode(data)
		if err != nil {
			pkg.Stats.Errors++
			logger.Warn().Err(err).Str("file", name).Msg("could not decode StructureDefinition")
			continue
		}
		if derefString(sd.Url) != sdBase+*sd.Type {
			pkg.Stats.Skipped++
			continue
		}
		pkg.types[*sd.Type] = sd
		pkg.Stats.Loaded++
	}

	logger.Debug().
		Str("dir", contentDir).
		Int("loaded", pkg.Stats.Loaded).
		Int("skipped", pkg.Stats.Skipped).
		Int("errors", pkg.Stats.Errors).
		Msg("loaded package")
	return pkg, nil
}

// NewPackage builds a Package from already decoded StructureDefinitions.
func NewPackage(sds ...*r4.StructureDefinition) *Package {
	pkg := &Package{types: make(map[string]*r4.StructureDefinition, len(sds))}
	for _, sd := range sds {
		if sd != nil && sd.Type != nil {
			pkg.types[*sd.Type] = sd
			pkg.Stats.Loaded++
		}
	}
	return pkg
}

// StructureDefinition returns the definition of a base type.
func (p *Package) StructureDefinition(typeName string) (*r4.StructureDefinition, bool) {
	sd, ok := p.types[typeName]
	return sd, ok
}

// TypeNames returns the loaded type names, sorted.
func (p *Package) TypeNames() []string {
	names := make([]string, 0, len(p.types))
	for name := range p.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the Definition of a type or backbone path such as
// "Bundle.entry.request".
func (p *Package) Definition(path string) (*Definition, error) {
	root, _, _ := strings.Cut(path, ".")
	sd, ok := p.types[root]
	if !ok {
		return nil, errors.Errorf("no StructureDefinition for %s", root)
	}
	defs, err := Convert(sd)
	if err != nil {
		return nil, err
	}
	def, ok := defs[path]
	if !ok {
		return nil, errors.Errorf("%s defines no element %s", root, path)
	}
	return def, nil
}

func sortedCopy(values []string) []string {
	out := slices.Clone(values)
	sort.Strings(out)
	return out
}
