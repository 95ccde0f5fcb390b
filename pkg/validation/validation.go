// Package validation holds the checks shared by every model builder.
//
// Each check returns nil or an error wrapping *Error whose Kind is one of the
// Err* sentinels. Builders run their checks in element declaration order and
// stop at the first failure.
package validation

import (
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofhir/model/pkg/issue"
	"github.com/gofhir/model/pkg/primitive"
)

// Typed is implemented by every model value.
type Typed interface {
	FHIRType() string
}

// specialization is implemented by profiled types such as SimpleQuantity that
// may stand in for their base type.
type specialization interface {
	Specializes() string
}

// Coded is a code element bound to a required value set.
type Coded interface {
	// CodeValue returns the code and whether one is present.
	CodeValue() (string, bool)
	InValueSet() bool
	ValueSetURL() string
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Require fails when value is nil, including typed nil pointers.
func Require(typ, element string, value any) error {
	if isNil(value) {
		return newError(typ, element, ErrRequired, "", issue.DiagElementRequired, nil)
	}
	return nil
}

// RequireNonEmpty fails when list is empty or contains a nil item.
func RequireNonEmpty[T any](typ, element string, list []T) error {
	if len(list) == 0 {
		return newError(typ, element, ErrEmptyList, "", issue.DiagElementEmptyList, nil)
	}
	return CheckList(typ, element, list)
}

// CheckList fails when list contains a nil item.
func CheckList[T any](typ, element string, list []T) error {
	for i, item := range list {
		if isNil(item) {
			return newError(typ, element, ErrNilListItem, strconv.Itoa(i),
				issue.DiagElementNilListItem, map[string]any{"index": i})
		}
	}
	return nil
}

// Choice fails when value is present and its type is not one of allowed.
func Choice(typ, element string, value Typed, allowed ...string) error {
	if isNil(value) {
		return nil
	}
	name := value.FHIRType()
	if slices.Contains(allowed, name) {
		return nil
	}
	if s, ok := value.(specialization); ok && slices.Contains(allowed, s.Specializes()) {
		return nil
	}
	return newError(typ, element, ErrInvalidChoice, name, issue.DiagInvalidChoiceType, map[string]any{
		"type":    name,
		"allowed": allowed,
	})
}

// RequireChoice is Require followed by Choice.
func RequireChoice(typ, element string, value Typed, allowed ...string) error {
	if isNil(value) {
		return newError(typ, element, ErrRequired, "", issue.DiagElementRequired, nil)
	}
	return Choice(typ, element, value, allowed...)
}

// CheckCode fails when code carries a value outside its required value set.
func CheckCode(typ, element string, code Coded) error {
	if isNil(code) {
		return nil
	}
	value, ok := code.CodeValue()
	if !ok || code.InValueSet() {
		return nil
	}
	return newError(typ, element, ErrBinding, value, issue.DiagBindingRequired, map[string]any{
		"code":     value,
		"valueSet": code.ValueSetURL(),
	})
}

// CheckCodes applies CheckCode to every item of codes.
func CheckCodes[T Coded](typ, element string, codes []T) error {
	for _, c := range codes {
		if err := CheckCode(typ, element, c); err != nil {
			return err
		}
	}
	return nil
}

// RequireValueOrChildren fails when an element has neither a value nor any
// child element (ele-1).
func RequireValueOrChildren(typ string, ok bool) error {
	if ok {
		return nil
	}
	return newError(typ, "", ErrNoValueOrChildren, "", issue.DiagElementNoValue, nil)
}

// stringTypes are the primitives subject to the string content rules.
var stringTypes = map[string]bool{
	"string":   true,
	"markdown": true,
	"code":     true,
	"id":       true,
}

// CheckPrimitive verifies the lexical form of a primitive value.
func CheckPrimitive(typ, element, fhirType, value string) error {
	cfg := CurrentConfig()
	if stringTypes[fhirType] {
		if cfg.MaxStringLength > 0 && utf8.RuneCountInString(value) > cfg.MaxStringLength {
			return newError(typ, element, ErrInvalidValue, "", issue.DiagTypeTooLong,
				map[string]any{"max": cfg.MaxStringLength})
		}
		if cfg.CheckControlCharacters && hasControlCharacter(value) {
			return invalidValue(typ, element, fhirType, value)
		}
	}
	if err := primitive.Check(fhirType, value); err != nil {
		return invalidValue(typ, element, fhirType, value)
	}
	return nil
}

func invalidValue(typ, element, fhirType, value string) error {
	return newError(typ, element, ErrInvalidValue, value, issue.DiagTypeInvalidFormat, map[string]any{
		"value": value,
		"type":  fhirType,
	})
}

// hasControlCharacter reports control characters other than TAB, CR and LF.
func hasControlCharacter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r < 0x20 && r != '\t' && r != '\r' && r != '\n'
	}) >= 0
}

// literalPattern matches relative and absolute literal references and
// captures the resource type.
var literalPattern = regexp.MustCompile(
	`^(?:https?://(?:[A-Za-z0-9\-\\.:%$]*/)+)?([A-Z][A-Za-z]+)/[A-Za-z0-9\-.]{1,64}(?:/_history/[A-Za-z0-9\-.]{1,64})?$`)

// ReferenceTargetType extracts the resource type named by a literal
// reference. Fragments, URNs and references that do not parse yield "".
func ReferenceTargetType(reference string) string {
	if reference == "" || strings.HasPrefix(reference, "#") || strings.HasPrefix(reference, "urn:") {
		return ""
	}
	m := literalPattern.FindStringSubmatch(reference)
	if m == nil || !IsResourceType(m[1]) {
		return ""
	}
	return m[1]
}

// CheckReferenceType verifies that a reference points at one of targets.
// reference is the literal Reference.reference and referenceType the
// Reference.type; either may be empty.
func CheckReferenceType(typ, element, reference, referenceType string, targets ...string) error {
	if !CurrentConfig().CheckReferenceTypes || slices.Contains(targets, "Resource") {
		return nil
	}
	if referenceType != "" && !slices.Contains(targets, referenceType) {
		return invalidTarget(typ, element, referenceType, targets)
	}
	resourceType := ReferenceTargetType(reference)
	if resourceType == "" {
		return nil
	}
	if referenceType != "" && referenceType != resourceType {
		return newError(typ, element, ErrReferenceType, resourceType, issue.DiagReferenceTypeMismatch, map[string]any{
			"type":      referenceType,
			"reference": reference,
		})
	}
	if !slices.Contains(targets, resourceType) {
		return invalidTarget(typ, element, resourceType, targets)
	}
	return nil
}

func invalidTarget(typ, element, resourceType string, targets []string) error {
	return newError(typ, element, ErrReferenceType, resourceType, issue.DiagReferenceInvalidTarget, map[string]any{
		"type":    resourceType,
		"allowed": targets,
	})
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
