package schema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gofhir/model/pkg/issue"
	"github.com/gofhir/model/pkg/registry"
)

// modelTypeAliases maps model type names to the type code used by
// StructureDefinitions. Profiled data types appear as their base type.
var modelTypeAliases = map[string]string{
	"SimpleQuantity": "Quantity",
}

// Compare reports every difference between the elements registered for a
// model type and the elements def declares.
//
// Types given as FHIRPath system types are not compared, and reference
// targets and bindings only produce warnings.
func Compare(info *registry.TypeInfo, def *Definition) *issue.Result {
	result := issue.NewResult()

	for _, spec := range def.Elements {
		if info.Kind == registry.KindPrimitive && spec.Name == "value" {
			continue
		}
		el, ok := info.Element(spec.Name)
		if !ok {
			result.AddErrorWithID(issue.DiagSchemaMissingElement, map[string]any{"path": spec.Path}, spec.Path)
			continue
		}
		compareElement(result, el, spec)
	}

	for _, el := range info.Elements {
		if info.Kind == registry.KindPrimitive && el.Name == "value" {
			continue
		}
		if _, ok := def.Element(el.Name); !ok {
			path := def.Path + "." + el.Name
			result.AddErrorWithID(issue.DiagSchemaUnknownElement, map[string]any{"path": path}, path)
		}
	}
	return result
}

func compareElement(result *issue.Result, el registry.ElementInfo, spec ElementSpec) {
	if el.Min != spec.Min {
		result.AddErrorWithID(issue.DiagSchemaMinMismatch, map[string]any{
			"path":     spec.Path,
			"expected": strconv.Itoa(spec.Min),
			"actual":   strconv.Itoa(el.Min),
		}, spec.Path)
	}
	if spec.Max != "" && el.Max != spec.Max {
		result.AddErrorWithID(issue.DiagSchemaMaxMismatch, map[string]any{
			"path":     spec.Path,
			"expected": spec.Max,
			"actual":   el.Max,
		}, spec.Path)
	}

	if comparableTypes(spec.Types) {
		actual := normalizeTypes(el.Types)
		if !sameSet(actual, spec.Types) {
			result.AddErrorWithID(issue.DiagSchemaTypeMismatch, map[string]any{
				"path":     spec.Path,
				"expected": spec.Types,
				"actual":   actual,
			}, spec.Path)
		}
	}

	if len(spec.Targets) > 0 && !sameSet(el.Targets, spec.Targets) {
		result.AddWarningWithID(issue.DiagSchemaTargetMismatch, map[string]any{
			"path":     spec.Path,
			"expected": spec.Targets,
			"actual":   el.Targets,
		}, spec.Path)
	}

	if spec.Binding != nil && spec.Binding.Strength == "required" {
		actual := ""
		if el.Binding != nil {
			actual = el.Binding.ValueSet
		}
		if actual != spec.Binding.ValueSet {
			result.AddWarningWithID(issue.DiagSchemaBindingMismatch, map[string]any{
				"path":     spec.Path,
				"expected": spec.Binding.ValueSet,
				"actual":   actual,
			}, spec.Path)
		}
	}
}

// comparableTypes is false for content references and system types.
func comparableTypes(types []string) bool {
	if len(types) == 0 {
		return false
	}
	for _, t := range types {
		if strings.HasPrefix(t, "System.") {
			return false
		}
	}
	return true
}

func normalizeTypes(types []string) []string {
	out := make([]string, len(types))
	for i, t := range types {
		if alias, ok := modelTypeAliases[t]; ok {
			t = alias
		}
		out[i] = t
	}
	return out
}

func sameSet(a, b []string) bool {
	return slices.Equal(sortedCopy(a), sortedCopy(b))
}

// CompareAll compares every type registered in reg with its
// StructureDefinition in pkg. Types without a StructureDefinition in pkg
// produce a warning.
func CompareAll(reg *registry.Registry, pkg *Package) *issue.Result {
	result := issue.NewResult()
	for _, info := range reg.Types() {
		root, _, _ := strings.Cut(info.Name, ".")
		if _, ok := pkg.StructureDefinition(root); !ok {
			result.AddWarningWithID(issue.DiagSchemaNotFound, map[string]any{"type": root}, info.Name)
			continue
		}
		def, err := pkg.Definition(info.Name)
		if err != nil {
			result.AddError(issue.CodeProcessing, err.Error(), info.Name)
			continue
		}
		result.Merge(Compare(info, def))
	}
	return result
}
