package model

import (
	"github.com/gofhir/model/pkg/issue"
	"github.com/gofhir/model/pkg/visitor"
)

// Visit walks b with v, using the FHIR type name as the root element name.
func Visit(b Base, v visitor.Visitor) {
	if b == nil {
		return
	}
	b.Accept(b.FHIRType(), -1, v)
}

// NewCoding creates a Coding from its system, code and display. Empty
// arguments are left out.
func NewCoding(system, code, display string) (*Coding, error) {
	b := NewCodingBuilder()
	if system != "" {
		s, err := NewUri(system)
		if err != nil {
			return nil, err
		}
		b.System(s)
	}
	if code != "" {
		c, err := NewCode(code)
		if err != nil {
			return nil, err
		}
		b.Code(c)
	}
	if display != "" {
		d, err := NewString(display)
		if err != nil {
			return nil, err
		}
		b.Display(d)
	}
	return b.Build()
}

// NewCodeableConcept creates a CodeableConcept from codings and an optional
// text.
func NewCodeableConcept(text string, coding ...*Coding) (*CodeableConcept, error) {
	b := NewCodeableConceptBuilder().Coding(coding...)
	if text != "" {
		t, err := NewString(text)
		if err != nil {
			return nil, err
		}
		b.Text(t)
	}
	return b.Build()
}

// NewReference creates a literal Reference such as "Patient/123".
func NewReference(reference string) (*Reference, error) {
	r, err := NewString(reference)
	if err != nil {
		return nil, err
	}
	return NewReferenceBuilder().Reference(r).Build()
}

// NewExtension creates an Extension with a value.
func NewExtension(url string, value Element) (*Extension, error) {
	return NewExtensionBuilder().URL(url).Value(value).Build()
}

// NewNarrative creates a Narrative from its status and XHTML div.
func NewNarrative(status NarrativeStatus, div string) (*Narrative, error) {
	x, err := NewXhtml(div)
	if err != nil {
		return nil, err
	}
	return NewNarrativeBuilder().Status(status.Code()).Div(x).Build()
}

// NewOperationOutcome converts collected issues into an OperationOutcome. An
// empty result yields a single informational issue, since an
// OperationOutcome needs at least one.
func NewOperationOutcome(result *issue.Result) (*OperationOutcome, error) {
	var issues []issue.Issue
	if result != nil {
		issues = result.Issues
	}
	if len(issues) == 0 {
		issues = []issue.Issue{{
			Severity:    issue.SeverityInformation,
			Code:        issue.CodeInformational,
			Diagnostics: "No issues detected",
		}}
	}

	b := NewOperationOutcomeBuilder()
	for _, is := range issues {
		ib := NewOperationOutcomeIssueBuilder().
			Severity(IssueSeverity(is.Severity).Code()).
			Code(IssueType(is.Code).Code())
		if is.Diagnostics != "" {
			d, err := NewString(is.Diagnostics)
			if err != nil {
				return nil, err
			}
			ib.Diagnostics(d)
		}
		for _, expr := range is.Expression {
			e, err := NewString(expr)
			if err != nil {
				return nil, err
			}
			ib.Expression(e)
		}
		ooi, err := ib.Build()
		if err != nil {
			return nil, err
		}
		b.Issue(ooi)
	}
	return b.Build()
}
