package issue

import (
	"fmt"
	"sort"
	"strings"
)

// DiagnosticID identifies a specific diagnostic message.
type DiagnosticID string

// Diagnostic IDs raised while building model values.
const (
	DiagElementRequired        DiagnosticID = "ELEMENT_REQUIRED"
	DiagElementEmptyList       DiagnosticID = "ELEMENT_EMPTY_LIST"
	DiagElementNilListItem     DiagnosticID = "ELEMENT_NIL_LIST_ITEM"
	DiagElementNoValue         DiagnosticID = "ELEMENT_NO_VALUE_OR_CHILDREN"
	DiagInvalidChoiceType      DiagnosticID = "STRUCTURE_INVALID_CHOICE_TYPE"
	DiagReferenceInvalidTarget DiagnosticID = "REFERENCE_INVALID_TARGET"
	DiagReferenceTypeMismatch  DiagnosticID = "REFERENCE_TYPE_MISMATCH"
	DiagBindingRequired        DiagnosticID = "BINDING_REQUIRED"
	DiagTypeInvalidFormat      DiagnosticID = "TYPE_INVALID_FORMAT"
	DiagTypeTooLong            DiagnosticID = "TYPE_TOO_LONG"
)

// Diagnostic IDs for comparing the model against StructureDefinitions.
const (
	DiagSchemaMissingElement  DiagnosticID = "SCHEMA_MISSING_ELEMENT"
	DiagSchemaUnknownElement  DiagnosticID = "SCHEMA_UNKNOWN_ELEMENT"
	DiagSchemaMinMismatch     DiagnosticID = "SCHEMA_MIN_MISMATCH"
	DiagSchemaMaxMismatch     DiagnosticID = "SCHEMA_MAX_MISMATCH"
	DiagSchemaTypeMismatch    DiagnosticID = "SCHEMA_TYPE_MISMATCH"
	DiagSchemaTargetMismatch  DiagnosticID = "SCHEMA_TARGET_MISMATCH"
	DiagSchemaBindingMismatch DiagnosticID = "SCHEMA_BINDING_MISMATCH"
	DiagSchemaNotFound        DiagnosticID = "SCHEMA_NOT_FOUND"
)

// Diagnostic IDs for declared invariants.
const (
	DiagConstraintCompileError DiagnosticID = "CONSTRAINT_COMPILE_ERROR"
	DiagConstraintEvalError    DiagnosticID = "CONSTRAINT_EVAL_ERROR"
	DiagConstraintFailed       DiagnosticID = "CONSTRAINT_FAILED"
)

// DiagnosticTemplate defines the structure for a diagnostic message.
type DiagnosticTemplate struct {
	ID       DiagnosticID
	Severity Severity
	Code     Code
	Template string
}

// diagnosticTemplates maps diagnostic IDs to their templates.
// Templates use {placeholder} syntax for variable substitution.
var diagnosticTemplates = map[DiagnosticID]DiagnosticTemplate{
	DiagElementRequired: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Missing required element '{path}'",
	},
	DiagElementEmptyList: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Element '{path}' requires at least one item",
	},
	DiagElementNilListItem: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Element '{path}' contains a nil item at index {index}",
	},
	DiagElementNoValue: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Element '{path}' must have a value or children (ele-1)",
	},
	DiagInvalidChoiceType: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Invalid choice type '{type}' for {path}. Allowed: {allowed}",
	},
	DiagReferenceInvalidTarget: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Invalid reference target type '{type}' for {path}. Allowed: {allowed}",
	},
	DiagReferenceTypeMismatch: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Reference type element '{type}' does not match reference target '{reference}' for {path}",
	},
	DiagBindingRequired: {
		Severity: SeverityError,
		Code:     CodeCodeInvalid,
		Template: "The value provided ('{code}') for {path} is not in the value set '{valueSet}' (required)",
	},
	DiagTypeInvalidFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value '{value}' for {path} does not match expected format for type {type}",
	},
	DiagTypeTooLong: {
		Severity: SeverityError,
		Code:     CodeTooLong,
		Template: "Value for {path} exceeds the maximum length of {max}",
	},

	DiagSchemaMissingElement: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Element '{path}' is defined by the StructureDefinition but not declared by the model",
	},
	DiagSchemaUnknownElement: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Element '{path}' is declared by the model but not defined by the StructureDefinition",
	},
	DiagSchemaMinMismatch: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Minimum cardinality of '{path}' is {expected}, but the model declares {actual}",
	},
	DiagSchemaMaxMismatch: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Maximum cardinality of '{path}' is {expected}, but the model declares {actual}",
	},
	DiagSchemaTypeMismatch: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Types of '{path}' are {expected}, but the model declares {actual}",
	},
	DiagSchemaTargetMismatch: {
		Severity: SeverityWarning,
		Code:     CodeStructure,
		Template: "Reference targets of '{path}' are {expected}, but the model declares {actual}",
	},
	DiagSchemaBindingMismatch: {
		Severity: SeverityWarning,
		Code:     CodeCodeInvalid,
		Template: "Required binding of '{path}' is '{expected}', but the model declares '{actual}'",
	},
	DiagSchemaNotFound: {
		Severity: SeverityWarning,
		Code:     CodeNotFound,
		Template: "No StructureDefinition found for type '{type}'",
	},

	DiagConstraintCompileError: {
		Severity: SeverityError,
		Code:     CodeProcessing,
		Template: "Could not compile constraint '{key}': {error}",
	},
	DiagConstraintEvalError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not evaluate constraint '{key}': {error}",
	},
	DiagConstraintFailed: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Constraint failed: {key}: '{human}'",
	},
}

// FormatDiagnostic formats a diagnostic message with the given parameters.
func FormatDiagnostic(id DiagnosticID, params map[string]any) string {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return string(id)
	}
	return formatTemplate(tmpl.Template, params)
}

// GetDiagnosticTemplate returns the template for a diagnostic ID.
func GetDiagnosticTemplate(id DiagnosticID) (DiagnosticTemplate, bool) {
	tmpl, ok := diagnosticTemplates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

// NewIssue builds an Issue from a diagnostic template.
func NewIssue(id DiagnosticID, params map[string]any, expression ...string) Issue {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return Issue{
			Severity:    SeverityError,
			Code:        CodeProcessing,
			Diagnostics: string(id),
			Expression:  expression,
			MessageID:   string(id),
		}
	}
	return Issue{
		Severity:    tmpl.Severity,
		Code:        tmpl.Code,
		Diagnostics: formatTemplate(tmpl.Template, params),
		Expression:  expression,
		MessageID:   string(id),
	}
}

// formatTemplate replaces {placeholder} with values from params.
// Slices of strings are rendered as a sorted, comma separated list.
func formatTemplate(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		placeholder := "{" + key + "}"
		result = strings.ReplaceAll(result, placeholder, formatValue(value))
	}
	return result
}

func formatValue(value any) string {
	if list, ok := value.([]string); ok {
		sorted := append([]string(nil), list...)
		sort.Strings(sorted)
		return strings.Join(sorted, ", ")
	}
	return fmt.Sprint(value)
}

// AddErrorWithID adds an issue using a diagnostic template.
// The template decides the severity.
func (r *Result) AddErrorWithID(id DiagnosticID, params map[string]any, expression ...string) {
	r.Issues = append(r.Issues, NewIssue(id, params, expression...))
}

// AddWarningWithID adds a warning using a diagnostic template.
func (r *Result) AddWarningWithID(id DiagnosticID, params map[string]any, expression ...string) {
	iss := NewIssue(id, params, expression...)
	iss.Severity = SeverityWarning
	r.Issues = append(r.Issues, iss)
}
