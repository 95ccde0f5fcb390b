package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// OperationOutcome is a collection of error, warning or information messages.
type OperationOutcome struct {
	domainResource
	issue []*OperationOutcomeIssue `fhir:"issue,min=1,summary"`
}

// Issue returns OperationOutcome.issue.
func (o *OperationOutcome) Issue() []*OperationOutcomeIssue { return o.issue }

// FHIRType returns "OperationOutcome".
func (*OperationOutcome) FHIRType() string { return "OperationOutcome" }

// Accept implements visitor.Visitable.
func (o *OperationOutcome) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if o == nil || !v.PreVisit(o) {
		return
	}
	v.VisitStart(elementName, elementIndex, o)
	if v.Visit(elementName, elementIndex, o) {
		o.acceptDomainResource(v)
		acceptList(v, "issue", o.issue)
	}
	v.VisitEnd(elementName, elementIndex, o)
	v.PostVisit(o)
}

// Equal reports whether o and other are structurally equal.
func (o *OperationOutcome) Equal(other *OperationOutcome) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.equalDomainResource(&other.domainResource) &&
		equalList(o.issue, other.issue)
}

func (o *OperationOutcome) equalBase(other Base) bool {
	x, ok := other.(*OperationOutcome)
	return ok && o.Equal(x)
}

// ToBuilder returns a builder initialized with the contents of o.
func (o *OperationOutcome) ToBuilder() *OperationOutcomeBuilder {
	return NewOperationOutcomeBuilder().From(o)
}

// OperationOutcomeBuilder builds OperationOutcome values.
type OperationOutcomeBuilder struct {
	domainResourceBuilder[*OperationOutcomeBuilder]
	issue []*OperationOutcomeIssue
}

// NewOperationOutcomeBuilder creates an empty OperationOutcomeBuilder.
func NewOperationOutcomeBuilder() *OperationOutcomeBuilder {
	b := &OperationOutcomeBuilder{}
	b.self = b
	return b
}

// Issue appends to OperationOutcome.issue.
func (b *OperationOutcomeBuilder) Issue(issue ...*OperationOutcomeIssue) *OperationOutcomeBuilder {
	b.issue = append(b.issue, issue...)
	return b
}

// SetIssue replaces OperationOutcome.issue.
func (b *OperationOutcomeBuilder) SetIssue(issue []*OperationOutcomeIssue) *OperationOutcomeBuilder {
	b.issue = slices.Clone(issue)
	return b
}

// From copies every element of src into the builder.
func (b *OperationOutcomeBuilder) From(src *OperationOutcome) *OperationOutcomeBuilder {
	b.fromDomainResource(&src.domainResource)
	b.issue = slices.Clone(src.issue)
	return b
}

// Build validates the builder state and returns a new OperationOutcome.
func (b *OperationOutcomeBuilder) Build() (*OperationOutcome, error) {
	const typ = "OperationOutcome"
	if err := validation.First(
		b.checkDomainResource(typ),
		validation.RequireNonEmpty(typ, "issue", b.issue),
	); err != nil {
		return nil, err
	}
	return &OperationOutcome{
		domainResource: b.domainResource(),
		issue:          slices.Clone(b.issue),
	}, nil
}

// OperationOutcomeIssue is a single issue associated with the action.
// It is the OperationOutcome.issue element.
type OperationOutcomeIssue struct {
	backboneElement
	severity    *CodeOf[IssueSeverity] `fhir:"severity,required,summary,modifier,binding=IssueSeverity,strength=required,valueSet=http://hl7.org/fhir/ValueSet/issue-severity|4.0.1"`
	code        *CodeOf[IssueType]     `fhir:"code,required,summary,binding=IssueType,strength=required,valueSet=http://hl7.org/fhir/ValueSet/issue-type|4.0.1"`
	details     *CodeableConcept       `fhir:"details,summary,binding=IssueDetails,strength=example,valueSet=http://hl7.org/fhir/ValueSet/operation-outcome"`
	diagnostics *String                `fhir:"diagnostics,summary"`
	location    []*String              `fhir:"location,summary"`
	expression  []*String              `fhir:"expression,summary"`
}

// Severity returns OperationOutcome.issue.severity.
func (o *OperationOutcomeIssue) Severity() *CodeOf[IssueSeverity] { return o.severity }

// Code returns OperationOutcome.issue.code.
func (o *OperationOutcomeIssue) Code() *CodeOf[IssueType] { return o.code }

// Details returns OperationOutcome.issue.details.
func (o *OperationOutcomeIssue) Details() *CodeableConcept { return o.details }

// Diagnostics returns OperationOutcome.issue.diagnostics.
func (o *OperationOutcomeIssue) Diagnostics() *String { return o.diagnostics }

// Location returns OperationOutcome.issue.location.
func (o *OperationOutcomeIssue) Location() []*String { return o.location }

// Expression returns OperationOutcome.issue.expression.
func (o *OperationOutcomeIssue) Expression() []*String { return o.expression }

// FHIRType returns "BackboneElement".
func (*OperationOutcomeIssue) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (o *OperationOutcomeIssue) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if o == nil || !v.PreVisit(o) {
		return
	}
	v.VisitStart(elementName, elementIndex, o)
	if v.Visit(elementName, elementIndex, o) {
		o.acceptBackbone(v)
		accept(v, "severity", o.severity)
		accept(v, "code", o.code)
		accept(v, "details", o.details)
		accept(v, "diagnostics", o.diagnostics)
		acceptList(v, "location", o.location)
		acceptList(v, "expression", o.expression)
	}
	v.VisitEnd(elementName, elementIndex, o)
	v.PostVisit(o)
}

// Equal reports whether o and other are structurally equal.
func (o *OperationOutcomeIssue) Equal(other *OperationOutcomeIssue) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.equalBackbone(&other.backboneElement) &&
		o.severity.Equal(other.severity) &&
		o.code.Equal(other.code) &&
		o.details.Equal(other.details) &&
		o.diagnostics.Equal(other.diagnostics) &&
		equalList(o.location, other.location) &&
		equalList(o.expression, other.expression)
}

func (o *OperationOutcomeIssue) equalBase(other Base) bool {
	x, ok := other.(*OperationOutcomeIssue)
	return ok && o.Equal(x)
}

// ToBuilder returns a builder initialized with the contents of o.
func (o *OperationOutcomeIssue) ToBuilder() *OperationOutcomeIssueBuilder {
	return NewOperationOutcomeIssueBuilder().From(o)
}

// OperationOutcomeIssueBuilder builds OperationOutcomeIssue values.
type OperationOutcomeIssueBuilder struct {
	backboneElementBuilder[*OperationOutcomeIssueBuilder]
	severity    *CodeOf[IssueSeverity]
	code        *CodeOf[IssueType]
	details     *CodeableConcept
	diagnostics *String
	location    []*String
	expression  []*String
}

// NewOperationOutcomeIssueBuilder creates an empty OperationOutcomeIssueBuilder.
func NewOperationOutcomeIssueBuilder() *OperationOutcomeIssueBuilder {
	b := &OperationOutcomeIssueBuilder{}
	b.self = b
	return b
}

// Severity sets OperationOutcome.issue.severity.
func (b *OperationOutcomeIssueBuilder) Severity(severity *CodeOf[IssueSeverity]) *OperationOutcomeIssueBuilder {
	b.severity = severity
	return b
}

// Code sets OperationOutcome.issue.code.
func (b *OperationOutcomeIssueBuilder) Code(code *CodeOf[IssueType]) *OperationOutcomeIssueBuilder {
	b.code = code
	return b
}

// Details sets OperationOutcome.issue.details.
func (b *OperationOutcomeIssueBuilder) Details(details *CodeableConcept) *OperationOutcomeIssueBuilder {
	b.details = details
	return b
}

// Diagnostics sets OperationOutcome.issue.diagnostics.
func (b *OperationOutcomeIssueBuilder) Diagnostics(diagnostics *String) *OperationOutcomeIssueBuilder {
	b.diagnostics = diagnostics
	return b
}

// Location appends to OperationOutcome.issue.location.
func (b *OperationOutcomeIssueBuilder) Location(location ...*String) *OperationOutcomeIssueBuilder {
	b.location = append(b.location, location...)
	return b
}

// SetLocation replaces OperationOutcome.issue.location.
func (b *OperationOutcomeIssueBuilder) SetLocation(location []*String) *OperationOutcomeIssueBuilder {
	b.location = slices.Clone(location)
	return b
}

// Expression appends to OperationOutcome.issue.expression.
func (b *OperationOutcomeIssueBuilder) Expression(expression ...*String) *OperationOutcomeIssueBuilder {
	b.expression = append(b.expression, expression...)
	return b
}

// SetExpression replaces OperationOutcome.issue.expression.
func (b *OperationOutcomeIssueBuilder) SetExpression(expression []*String) *OperationOutcomeIssueBuilder {
	b.expression = slices.Clone(expression)
	return b
}

// From copies every element of src into the builder.
func (b *OperationOutcomeIssueBuilder) From(src *OperationOutcomeIssue) *OperationOutcomeIssueBuilder {
	b.fromBackbone(&src.backboneElement)
	b.severity = src.severity
	b.code = src.code
	b.details = src.details
	b.diagnostics = src.diagnostics
	b.location = slices.Clone(src.location)
	b.expression = slices.Clone(src.expression)
	return b
}

// Build validates the builder state and returns a new OperationOutcomeIssue.
func (b *OperationOutcomeIssueBuilder) Build() (*OperationOutcomeIssue, error) {
	const typ = "OperationOutcome.issue"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "severity", b.severity),
		validation.CheckCode(typ, "severity", b.severity),
		validation.Require(typ, "code", b.code),
		validation.CheckCode(typ, "code", b.code),
		validation.CheckList(typ, "location", b.location),
		validation.CheckList(typ, "expression", b.expression),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &OperationOutcomeIssue{
		backboneElement: b.backbone(),
		severity:        b.severity,
		code:            b.code,
		details:         b.details,
		diagnostics:     b.diagnostics,
		location:        slices.Clone(b.location),
		expression:      slices.Clone(b.expression),
	}, nil
}

func (b *OperationOutcomeIssueBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.severity != nil ||
		b.code != nil ||
		b.details != nil ||
		b.diagnostics != nil ||
		len(b.location) > 0 ||
		len(b.expression) > 0
}
