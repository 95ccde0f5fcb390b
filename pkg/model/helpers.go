package model

import (
	"github.com/gofhir/model/pkg/primitive"
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

func accept(v visitor.Visitor, name string, value visitor.Visitable) {
	if value != nil {
		value.Accept(name, -1, v)
	}
}

func acceptList[T visitor.Visitable](v visitor.Visitor, name string, list []T) {
	for i, value := range list {
		value.Accept(name, i, v)
	}
}

type equaler[T any] interface {
	Equal(other T) bool
}

func equalList[T equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalBase(a, b Base) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equalBase(b)
}

func equalBaseList[T Base](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalBase(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// checkReference verifies the target type of a Reference element.
func checkReference(typ, element string, r *Reference, targets ...string) error {
	if r == nil {
		return nil
	}
	return validation.CheckReferenceType(typ, element, r.reference.Value(), r.typ.Value(), targets...)
}

func checkReferences(typ, element string, rs []*Reference, targets ...string) error {
	for _, r := range rs {
		if err := checkReference(typ, element, r, targets...); err != nil {
			return err
		}
	}
	return nil
}

// checkChoiceReference applies checkReference when a choice element holds a
// Reference.
func checkChoiceReference(typ, element string, value Element, targets ...string) error {
	if r, ok := value.(*Reference); ok {
		return checkReference(typ, element, r, targets...)
	}
	return nil
}

// openTypes are the types allowed for Extension.value[x].
var openTypes = []string{
	"base64Binary", "boolean", "canonical", "code", "date", "dateTime", "decimal", "id",
	"instant", "integer", "markdown", "oid", "positiveInt", "string", "time", "unsignedInt",
	"uri", "url", "uuid", "Address", "Age", "Annotation", "Attachment", "CodeableConcept",
	"Coding", "ContactPoint", "Count", "Distance", "Duration", "HumanName", "Identifier",
	"Money", "Period", "Quantity", "Range", "Ratio", "Reference", "SampledData", "Signature",
	"Timing", "ContactDetail", "Contributor", "DataRequirement", "Expression",
	"ParameterDefinition", "RelatedArtifact", "TriggerDefinition", "UsageContext", "Dosage",
	"Meta",
}

// requireString checks a required element held as a Go string.
func requireString(typ, element, fhirType, value string) error {
	if value == "" {
		return validation.Require(typ, element, nil)
	}
	return validation.CheckPrimitive(typ, element, fhirType, value)
}

// currencyCode adapts Money.currency to validation.Coded over the ISO 4217
// code list.
type currencyCode string

func (c currencyCode) CodeValue() (string, bool) { return string(c), true }

func (c currencyCode) InValueSet() bool {
	return primitive.Validator().Var(string(c), "iso4217") == nil
}

func (currencyCode) ValueSetURL() string { return "http://hl7.org/fhir/ValueSet/currencies|4.0.1" }

func checkCurrency(typ, element string, code *Code) error {
	if !code.HasValue() {
		return nil
	}
	return validation.CheckCode(typ, element, currencyCode(code.Value()))
}
