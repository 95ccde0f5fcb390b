package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// CoverageEligibilityRequest asks an insurer about coverage and benefits for a patient.
type CoverageEligibilityRequest struct {
	domainResource
	identifier     []*Identifier                               `fhir:"identifier"`
	status         *CodeOf[FinancialResourceStatusCodes]       `fhir:"status,required,summary,modifier,binding=EligibilityRequestStatus,strength=required,valueSet=http://hl7.org/fhir/ValueSet/fm-status|4.0.1"`
	priority       *CodeableConcept                            `fhir:"priority,binding=ProcessPriority,strength=example,valueSet=http://hl7.org/fhir/ValueSet/process-priority"`
	purpose        []*CodeOf[EligibilityRequestPurpose]        `fhir:"purpose,min=1,summary,binding=EligibilityRequestPurpose,strength=required,valueSet=http://hl7.org/fhir/ValueSet/eligibilityrequest-purpose|4.0.1"`
	patient        *Reference                                  `fhir:"patient,required,summary,targets=Patient"`
	serviced       Element                                     `fhir:"serviced[x],choice=date|Period"`
	created        *DateTime                                   `fhir:"created,required,summary"`
	enterer        *Reference                                  `fhir:"enterer,targets=Practitioner|PractitionerRole"`
	provider       *Reference                                  `fhir:"provider,targets=Practitioner|PractitionerRole|Organization"`
	insurer        *Reference                                  `fhir:"insurer,required,summary,targets=Organization"`
	facility       *Reference                                  `fhir:"facility,targets=Location"`
	supportingInfo []*CoverageEligibilityRequestSupportingInfo `fhir:"supportingInfo"`
	insurance      []*CoverageEligibilityRequestInsurance      `fhir:"insurance"`
	item           []*CoverageEligibilityRequestItem           `fhir:"item"`
}

// Identifier returns CoverageEligibilityRequest.identifier.
func (c *CoverageEligibilityRequest) Identifier() []*Identifier { return c.identifier }

// Status returns CoverageEligibilityRequest.status.
func (c *CoverageEligibilityRequest) Status() *CodeOf[FinancialResourceStatusCodes] {
	return c.status
}

// Priority returns CoverageEligibilityRequest.priority.
func (c *CoverageEligibilityRequest) Priority() *CodeableConcept { return c.priority }

// Purpose returns CoverageEligibilityRequest.purpose.
func (c *CoverageEligibilityRequest) Purpose() []*CodeOf[EligibilityRequestPurpose] {
	return c.purpose
}

// Patient returns CoverageEligibilityRequest.patient.
func (c *CoverageEligibilityRequest) Patient() *Reference { return c.patient }

// Serviced returns CoverageEligibilityRequest.serviced[x]: *Date or *Period.
func (c *CoverageEligibilityRequest) Serviced() Element { return c.serviced }

// Created returns CoverageEligibilityRequest.created.
func (c *CoverageEligibilityRequest) Created() *DateTime { return c.created }

// Enterer returns CoverageEligibilityRequest.enterer.
func (c *CoverageEligibilityRequest) Enterer() *Reference { return c.enterer }

// Provider returns CoverageEligibilityRequest.provider.
func (c *CoverageEligibilityRequest) Provider() *Reference { return c.provider }

// Insurer returns CoverageEligibilityRequest.insurer.
func (c *CoverageEligibilityRequest) Insurer() *Reference { return c.insurer }

// Facility returns CoverageEligibilityRequest.facility.
func (c *CoverageEligibilityRequest) Facility() *Reference { return c.facility }

// SupportingInfo returns CoverageEligibilityRequest.supportingInfo.
func (c *CoverageEligibilityRequest) SupportingInfo() []*CoverageEligibilityRequestSupportingInfo {
	return c.supportingInfo
}

// Insurance returns CoverageEligibilityRequest.insurance.
func (c *CoverageEligibilityRequest) Insurance() []*CoverageEligibilityRequestInsurance {
	return c.insurance
}

// Item returns CoverageEligibilityRequest.item.
func (c *CoverageEligibilityRequest) Item() []*CoverageEligibilityRequestItem { return c.item }

// FHIRType returns "CoverageEligibilityRequest".
func (*CoverageEligibilityRequest) FHIRType() string { return "CoverageEligibilityRequest" }

// Accept implements visitor.Visitable.
func (c *CoverageEligibilityRequest) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptDomainResource(v)
		acceptList(v, "identifier", c.identifier)
		accept(v, "status", c.status)
		accept(v, "priority", c.priority)
		acceptList(v, "purpose", c.purpose)
		accept(v, "patient", c.patient)
		accept(v, "serviced", c.serviced)
		accept(v, "created", c.created)
		accept(v, "enterer", c.enterer)
		accept(v, "provider", c.provider)
		accept(v, "insurer", c.insurer)
		accept(v, "facility", c.facility)
		acceptList(v, "supportingInfo", c.supportingInfo)
		acceptList(v, "insurance", c.insurance)
		acceptList(v, "item", c.item)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CoverageEligibilityRequest) Equal(other *CoverageEligibilityRequest) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalDomainResource(&other.domainResource) &&
		equalList(c.identifier, other.identifier) &&
		c.status.Equal(other.status) &&
		c.priority.Equal(other.priority) &&
		equalList(c.purpose, other.purpose) &&
		c.patient.Equal(other.patient) &&
		equalBase(c.serviced, other.serviced) &&
		c.created.Equal(other.created) &&
		c.enterer.Equal(other.enterer) &&
		c.provider.Equal(other.provider) &&
		c.insurer.Equal(other.insurer) &&
		c.facility.Equal(other.facility) &&
		equalList(c.supportingInfo, other.supportingInfo) &&
		equalList(c.insurance, other.insurance) &&
		equalList(c.item, other.item)
}

func (c *CoverageEligibilityRequest) equalBase(other Base) bool {
	o, ok := other.(*CoverageEligibilityRequest)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CoverageEligibilityRequest) ToBuilder() *CoverageEligibilityRequestBuilder {
	return NewCoverageEligibilityRequestBuilder().From(c)
}

// CoverageEligibilityRequestBuilder builds CoverageEligibilityRequest values.
type CoverageEligibilityRequestBuilder struct {
	domainResourceBuilder[*CoverageEligibilityRequestBuilder]
	identifier     []*Identifier
	status         *CodeOf[FinancialResourceStatusCodes]
	priority       *CodeableConcept
	purpose        []*CodeOf[EligibilityRequestPurpose]
	patient        *Reference
	serviced       Element
	created        *DateTime
	enterer        *Reference
	provider       *Reference
	insurer        *Reference
	facility       *Reference
	supportingInfo []*CoverageEligibilityRequestSupportingInfo
	insurance      []*CoverageEligibilityRequestInsurance
	item           []*CoverageEligibilityRequestItem
}

// NewCoverageEligibilityRequestBuilder creates an empty CoverageEligibilityRequestBuilder.
func NewCoverageEligibilityRequestBuilder() *CoverageEligibilityRequestBuilder {
	b := &CoverageEligibilityRequestBuilder{}
	b.self = b
	return b
}

// Identifier appends to CoverageEligibilityRequest.identifier.
func (b *CoverageEligibilityRequestBuilder) Identifier(identifier ...*Identifier) *CoverageEligibilityRequestBuilder {
	b.identifier = append(b.identifier, identifier...)
	return b
}

// SetIdentifier replaces CoverageEligibilityRequest.identifier.
func (b *CoverageEligibilityRequestBuilder) SetIdentifier(identifier []*Identifier) *CoverageEligibilityRequestBuilder {
	b.identifier = slices.Clone(identifier)
	return b
}

// Status sets CoverageEligibilityRequest.status.
func (b *CoverageEligibilityRequestBuilder) Status(status *CodeOf[FinancialResourceStatusCodes]) *CoverageEligibilityRequestBuilder {
	b.status = status
	return b
}

// Priority sets CoverageEligibilityRequest.priority.
func (b *CoverageEligibilityRequestBuilder) Priority(priority *CodeableConcept) *CoverageEligibilityRequestBuilder {
	b.priority = priority
	return b
}

// Purpose appends to CoverageEligibilityRequest.purpose.
func (b *CoverageEligibilityRequestBuilder) Purpose(purpose ...*CodeOf[EligibilityRequestPurpose]) *CoverageEligibilityRequestBuilder {
	b.purpose = append(b.purpose, purpose...)
	return b
}

// SetPurpose replaces CoverageEligibilityRequest.purpose.
func (b *CoverageEligibilityRequestBuilder) SetPurpose(purpose []*CodeOf[EligibilityRequestPurpose]) *CoverageEligibilityRequestBuilder {
	b.purpose = slices.Clone(purpose)
	return b
}

// Patient sets CoverageEligibilityRequest.patient.
func (b *CoverageEligibilityRequestBuilder) Patient(patient *Reference) *CoverageEligibilityRequestBuilder {
	b.patient = patient
	return b
}

// Serviced sets CoverageEligibilityRequest.serviced[x].
func (b *CoverageEligibilityRequestBuilder) Serviced(serviced Element) *CoverageEligibilityRequestBuilder {
	b.serviced = serviced
	return b
}

// Created sets CoverageEligibilityRequest.created.
func (b *CoverageEligibilityRequestBuilder) Created(created *DateTime) *CoverageEligibilityRequestBuilder {
	b.created = created
	return b
}

// Enterer sets CoverageEligibilityRequest.enterer.
func (b *CoverageEligibilityRequestBuilder) Enterer(enterer *Reference) *CoverageEligibilityRequestBuilder {
	b.enterer = enterer
	return b
}

// Provider sets CoverageEligibilityRequest.provider.
func (b *CoverageEligibilityRequestBuilder) Provider(provider *Reference) *CoverageEligibilityRequestBuilder {
	b.provider = provider
	return b
}

// Insurer sets CoverageEligibilityRequest.insurer.
func (b *CoverageEligibilityRequestBuilder) Insurer(insurer *Reference) *CoverageEligibilityRequestBuilder {
	b.insurer = insurer
	return b
}

// Facility sets CoverageEligibilityRequest.facility.
func (b *CoverageEligibilityRequestBuilder) Facility(facility *Reference) *CoverageEligibilityRequestBuilder {
	b.facility = facility
	return b
}

// SupportingInfo appends to CoverageEligibilityRequest.supportingInfo.
func (b *CoverageEligibilityRequestBuilder) SupportingInfo(supportingInfo ...*CoverageEligibilityRequestSupportingInfo) *CoverageEligibilityRequestBuilder {
	b.supportingInfo = append(b.supportingInfo, supportingInfo...)
	return b
}

// SetSupportingInfo replaces CoverageEligibilityRequest.supportingInfo.
func (b *CoverageEligibilityRequestBuilder) SetSupportingInfo(supportingInfo []*CoverageEligibilityRequestSupportingInfo) *CoverageEligibilityRequestBuilder {
	b.supportingInfo = slices.Clone(supportingInfo)
	return b
}

// Insurance appends to CoverageEligibilityRequest.insurance.
func (b *CoverageEligibilityRequestBuilder) Insurance(insurance ...*CoverageEligibilityRequestInsurance) *CoverageEligibilityRequestBuilder {
	b.insurance = append(b.insurance, insurance...)
	return b
}

// SetInsurance replaces CoverageEligibilityRequest.insurance.
func (b *CoverageEligibilityRequestBuilder) SetInsurance(insurance []*CoverageEligibilityRequestInsurance) *CoverageEligibilityRequestBuilder {
	b.insurance = slices.Clone(insurance)
	return b
}

// Item appends to CoverageEligibilityRequest.item.
func (b *CoverageEligibilityRequestBuilder) Item(item ...*CoverageEligibilityRequestItem) *CoverageEligibilityRequestBuilder {
	b.item = append(b.item, item...)
	return b
}

// SetItem replaces CoverageEligibilityRequest.item.
func (b *CoverageEligibilityRequestBuilder) SetItem(item []*CoverageEligibilityRequestItem) *CoverageEligibilityRequestBuilder {
	b.item = slices.Clone(item)
	return b
}

// From copies every element of src into the builder.
func (b *CoverageEligibilityRequestBuilder) From(src *CoverageEligibilityRequest) *CoverageEligibilityRequestBuilder {
	b.fromDomainResource(&src.domainResource)
	b.identifier = slices.Clone(src.identifier)
	b.status = src.status
	b.priority = src.priority
	b.purpose = slices.Clone(src.purpose)
	b.patient = src.patient
	b.serviced = src.serviced
	b.created = src.created
	b.enterer = src.enterer
	b.provider = src.provider
	b.insurer = src.insurer
	b.facility = src.facility
	b.supportingInfo = slices.Clone(src.supportingInfo)
	b.insurance = slices.Clone(src.insurance)
	b.item = slices.Clone(src.item)
	return b
}

// Build validates the builder state and returns a new CoverageEligibilityRequest.
func (b *CoverageEligibilityRequestBuilder) Build() (*CoverageEligibilityRequest, error) {
	const typ = "CoverageEligibilityRequest"
	if err := validation.First(
		b.checkDomainResource(typ),
		validation.CheckList(typ, "identifier", b.identifier),
		validation.Require(typ, "status", b.status),
		validation.CheckCode(typ, "status", b.status),
		validation.RequireNonEmpty(typ, "purpose", b.purpose),
		validation.CheckCodes(typ, "purpose", b.purpose),
		validation.Require(typ, "patient", b.patient),
		checkReference(typ, "patient", b.patient, "Patient"),
		validation.Choice(typ, "serviced", b.serviced, "date", "Period"),
		validation.Require(typ, "created", b.created),
		checkReference(typ, "enterer", b.enterer, "Practitioner", "PractitionerRole"),
		checkReference(typ, "provider", b.provider, "Practitioner", "PractitionerRole", "Organization"),
		validation.Require(typ, "insurer", b.insurer),
		checkReference(typ, "insurer", b.insurer, "Organization"),
		checkReference(typ, "facility", b.facility, "Location"),
		validation.CheckList(typ, "supportingInfo", b.supportingInfo),
		validation.CheckList(typ, "insurance", b.insurance),
		validation.CheckList(typ, "item", b.item),
	); err != nil {
		return nil, err
	}
	return &CoverageEligibilityRequest{
		domainResource: b.domainResource(),
		identifier:     slices.Clone(b.identifier),
		status:         b.status,
		priority:       b.priority,
		purpose:        slices.Clone(b.purpose),
		patient:        b.patient,
		serviced:       b.serviced,
		created:        b.created,
		enterer:        b.enterer,
		provider:       b.provider,
		insurer:        b.insurer,
		facility:       b.facility,
		supportingInfo: slices.Clone(b.supportingInfo),
		insurance:      slices.Clone(b.insurance),
		item:           slices.Clone(b.item),
	}, nil
}

// CoverageEligibilityRequestSupportingInfo is additional information codes regarding exceptions, special considerations, the condition, situation, prior or concurrent issues.
// It is the CoverageEligibilityRequest.supportingInfo element.
type CoverageEligibilityRequestSupportingInfo struct {
	backboneElement
	sequence     *PositiveInt `fhir:"sequence,required"`
	information  *Reference   `fhir:"information,required,targets=Resource"`
	appliesToAll *Boolean     `fhir:"appliesToAll"`
}

// Sequence returns CoverageEligibilityRequest.supportingInfo.sequence.
func (c *CoverageEligibilityRequestSupportingInfo) Sequence() *PositiveInt { return c.sequence }

// Information returns CoverageEligibilityRequest.supportingInfo.information.
func (c *CoverageEligibilityRequestSupportingInfo) Information() *Reference {
	return c.information
}

// AppliesToAll returns CoverageEligibilityRequest.supportingInfo.appliesToAll.
func (c *CoverageEligibilityRequestSupportingInfo) AppliesToAll() *Boolean {
	return c.appliesToAll
}

// FHIRType returns "BackboneElement".
func (*CoverageEligibilityRequestSupportingInfo) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (c *CoverageEligibilityRequestSupportingInfo) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptBackbone(v)
		accept(v, "sequence", c.sequence)
		accept(v, "information", c.information)
		accept(v, "appliesToAll", c.appliesToAll)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CoverageEligibilityRequestSupportingInfo) Equal(other *CoverageEligibilityRequestSupportingInfo) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalBackbone(&other.backboneElement) &&
		c.sequence.Equal(other.sequence) &&
		c.information.Equal(other.information) &&
		c.appliesToAll.Equal(other.appliesToAll)
}

func (c *CoverageEligibilityRequestSupportingInfo) equalBase(other Base) bool {
	o, ok := other.(*CoverageEligibilityRequestSupportingInfo)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CoverageEligibilityRequestSupportingInfo) ToBuilder() *CoverageEligibilityRequestSupportingInfoBuilder {
	return NewCoverageEligibilityRequestSupportingInfoBuilder().From(c)
}

// CoverageEligibilityRequestSupportingInfoBuilder builds CoverageEligibilityRequestSupportingInfo values.
type CoverageEligibilityRequestSupportingInfoBuilder struct {
	backboneElementBuilder[*CoverageEligibilityRequestSupportingInfoBuilder]
	sequence     *PositiveInt
	information  *Reference
	appliesToAll *Boolean
}

// NewCoverageEligibilityRequestSupportingInfoBuilder creates an empty CoverageEligibilityRequestSupportingInfoBuilder.
func NewCoverageEligibilityRequestSupportingInfoBuilder() *CoverageEligibilityRequestSupportingInfoBuilder {
	b := &CoverageEligibilityRequestSupportingInfoBuilder{}
	b.self = b
	return b
}

// Sequence sets CoverageEligibilityRequest.supportingInfo.sequence.
func (b *CoverageEligibilityRequestSupportingInfoBuilder) Sequence(sequence *PositiveInt) *CoverageEligibilityRequestSupportingInfoBuilder {
	b.sequence = sequence
	return b
}

// Information sets CoverageEligibilityRequest.supportingInfo.information.
func (b *CoverageEligibilityRequestSupportingInfoBuilder) Information(information *Reference) *CoverageEligibilityRequestSupportingInfoBuilder {
	b.information = information
	return b
}

// AppliesToAll sets CoverageEligibilityRequest.supportingInfo.appliesToAll.
func (b *CoverageEligibilityRequestSupportingInfoBuilder) AppliesToAll(appliesToAll *Boolean) *CoverageEligibilityRequestSupportingInfoBuilder {
	b.appliesToAll = appliesToAll
	return b
}

// From copies every element of src into the builder.
func (b *CoverageEligibilityRequestSupportingInfoBuilder) From(src *CoverageEligibilityRequestSupportingInfo) *CoverageEligibilityRequestSupportingInfoBuilder {
	b.fromBackbone(&src.backboneElement)
	b.sequence = src.sequence
	b.information = src.information
	b.appliesToAll = src.appliesToAll
	return b
}

// Build validates the builder state and returns a new CoverageEligibilityRequestSupportingInfo.
func (b *CoverageEligibilityRequestSupportingInfoBuilder) Build() (*CoverageEligibilityRequestSupportingInfo, error) {
	const typ = "CoverageEligibilityRequest.supportingInfo"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "sequence", b.sequence),
		validation.Require(typ, "information", b.information),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &CoverageEligibilityRequestSupportingInfo{
		backboneElement: b.backbone(),
		sequence:        b.sequence,
		information:     b.information,
		appliesToAll:    b.appliesToAll,
	}, nil
}

func (b *CoverageEligibilityRequestSupportingInfoBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.sequence != nil ||
		b.information != nil ||
		b.appliesToAll != nil
}

// CoverageEligibilityRequestInsurance is a coverage to be used for the eligibility request.
// It is the CoverageEligibilityRequest.insurance element.
type CoverageEligibilityRequestInsurance struct {
	backboneElement
	focal               *Boolean   `fhir:"focal"`
	coverage            *Reference `fhir:"coverage,required,targets=Coverage"`
	businessArrangement *String    `fhir:"businessArrangement"`
}

// Focal returns CoverageEligibilityRequest.insurance.focal.
func (c *CoverageEligibilityRequestInsurance) Focal() *Boolean { return c.focal }

// Coverage returns CoverageEligibilityRequest.insurance.coverage.
func (c *CoverageEligibilityRequestInsurance) Coverage() *Reference { return c.coverage }

// BusinessArrangement returns CoverageEligibilityRequest.insurance.businessArrangement.
func (c *CoverageEligibilityRequestInsurance) BusinessArrangement() *String {
	return c.businessArrangement
}

// FHIRType returns "BackboneElement".
func (*CoverageEligibilityRequestInsurance) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (c *CoverageEligibilityRequestInsurance) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptBackbone(v)
		accept(v, "focal", c.focal)
		accept(v, "coverage", c.coverage)
		accept(v, "businessArrangement", c.businessArrangement)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CoverageEligibilityRequestInsurance) Equal(other *CoverageEligibilityRequestInsurance) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalBackbone(&other.backboneElement) &&
		c.focal.Equal(other.focal) &&
		c.coverage.Equal(other.coverage) &&
		c.businessArrangement.Equal(other.businessArrangement)
}

func (c *CoverageEligibilityRequestInsurance) equalBase(other Base) bool {
	o, ok := other.(*CoverageEligibilityRequestInsurance)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CoverageEligibilityRequestInsurance) ToBuilder() *CoverageEligibilityRequestInsuranceBuilder {
	return NewCoverageEligibilityRequestInsuranceBuilder().From(c)
}

// CoverageEligibilityRequestInsuranceBuilder builds CoverageEligibilityRequestInsurance values.
type CoverageEligibilityRequestInsuranceBuilder struct {
	backboneElementBuilder[*CoverageEligibilityRequestInsuranceBuilder]
	focal               *Boolean
	coverage            *Reference
	businessArrangement *String
}

// NewCoverageEligibilityRequestInsuranceBuilder creates an empty CoverageEligibilityRequestInsuranceBuilder.
func NewCoverageEligibilityRequestInsuranceBuilder() *CoverageEligibilityRequestInsuranceBuilder {
	b := &CoverageEligibilityRequestInsuranceBuilder{}
	b.self = b
	return b
}

// Focal sets CoverageEligibilityRequest.insurance.focal.
func (b *CoverageEligibilityRequestInsuranceBuilder) Focal(focal *Boolean) *CoverageEligibilityRequestInsuranceBuilder {
	b.focal = focal
	return b
}

// Coverage sets CoverageEligibilityRequest.insurance.coverage.
func (b *CoverageEligibilityRequestInsuranceBuilder) Coverage(coverage *Reference) *CoverageEligibilityRequestInsuranceBuilder {
	b.coverage = coverage
	return b
}

// BusinessArrangement sets CoverageEligibilityRequest.insurance.businessArrangement.
func (b *CoverageEligibilityRequestInsuranceBuilder) BusinessArrangement(businessArrangement *String) *CoverageEligibilityRequestInsuranceBuilder {
	b.businessArrangement = businessArrangement
	return b
}

// From copies every element of src into the builder.
func (b *CoverageEligibilityRequestInsuranceBuilder) From(src *CoverageEligibilityRequestInsurance) *CoverageEligibilityRequestInsuranceBuilder {
	b.fromBackbone(&src.backboneElement)
	b.focal = src.focal
	b.coverage = src.coverage
	b.businessArrangement = src.businessArrangement
	return b
}

// Build validates the builder state and returns a new CoverageEligibilityRequestInsurance.
func (b *CoverageEligibilityRequestInsuranceBuilder) Build() (*CoverageEligibilityRequestInsurance, error) {
	const typ = "CoverageEligibilityRequest.insurance"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "coverage", b.coverage),
		checkReference(typ, "coverage", b.coverage, "Coverage"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &CoverageEligibilityRequestInsurance{
		backboneElement:     b.backbone(),
		focal:               b.focal,
		coverage:            b.coverage,
		businessArrangement: b.businessArrangement,
	}, nil
}

func (b *CoverageEligibilityRequestInsuranceBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.focal != nil ||
		b.coverage != nil ||
		b.businessArrangement != nil
}

// CoverageEligibilityRequestItem is a service or product for which eligibility is sought.
// It is the CoverageEligibilityRequest.item element.
type CoverageEligibilityRequestItem struct {
	backboneElement
	supportingInfoSequence []*PositiveInt                             `fhir:"supportingInfoSequence"`
	category               *CodeableConcept                           `fhir:"category,binding=BenefitCategory,strength=example,valueSet=http://hl7.org/fhir/ValueSet/ex-benefitcategory"`
	productOrService       *CodeableConcept                           `fhir:"productOrService,binding=ServiceProduct,strength=example,valueSet=http://hl7.org/fhir/ValueSet/service-uscls"`
	modifier               []*CodeableConcept                         `fhir:"modifier,binding=ServiceModifiers,strength=example,valueSet=http://hl7.org/fhir/ValueSet/claim-modifiers"`
	provider               *Reference                                 `fhir:"provider,targets=Practitioner|PractitionerRole"`
	quantity               *SimpleQuantity                            `fhir:"quantity"`
	unitPrice              *Money                                     `fhir:"unitPrice"`
	facility               *Reference                                 `fhir:"facility,targets=Location|Organization"`
	diagnosis              []*CoverageEligibilityRequestItemDiagnosis `fhir:"diagnosis"`
	detail                 []*Reference                               `fhir:"detail,targets=Resource"`
}

// SupportingInfoSequence returns CoverageEligibilityRequest.item.supportingInfoSequence.
func (c *CoverageEligibilityRequestItem) SupportingInfoSequence() []*PositiveInt {
	return c.supportingInfoSequence
}

// Category returns CoverageEligibilityRequest.item.category.
func (c *CoverageEligibilityRequestItem) Category() *CodeableConcept { return c.category }

// ProductOrService returns CoverageEligibilityRequest.item.productOrService.
func (c *CoverageEligibilityRequestItem) ProductOrService() *CodeableConcept {
	return c.productOrService
}

// Modifier returns CoverageEligibilityRequest.item.modifier.
func (c *CoverageEligibilityRequestItem) Modifier() []*CodeableConcept { return c.modifier }

// Provider returns CoverageEligibilityRequest.item.provider.
func (c *CoverageEligibilityRequestItem) Provider() *Reference { return c.provider }

// Quantity returns CoverageEligibilityRequest.item.quantity.
func (c *CoverageEligibilityRequestItem) Quantity() *SimpleQuantity { return c.quantity }

// UnitPrice returns CoverageEligibilityRequest.item.unitPrice.
func (c *CoverageEligibilityRequestItem) UnitPrice() *Money { return c.unitPrice }

// Facility returns CoverageEligibilityRequest.item.facility.
func (c *CoverageEligibilityRequestItem) Facility() *Reference { return c.facility }

// Diagnosis returns CoverageEligibilityRequest.item.diagnosis.
func (c *CoverageEligibilityRequestItem) Diagnosis() []*CoverageEligibilityRequestItemDiagnosis {
	return c.diagnosis
}

// Detail returns CoverageEligibilityRequest.item.detail.
func (c *CoverageEligibilityRequestItem) Detail() []*Reference { return c.detail }

// FHIRType returns "BackboneElement".
func (*CoverageEligibilityRequestItem) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (c *CoverageEligibilityRequestItem) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptBackbone(v)
		acceptList(v, "supportingInfoSequence", c.supportingInfoSequence)
		accept(v, "category", c.category)
		accept(v, "productOrService", c.productOrService)
		acceptList(v, "modifier", c.modifier)
		accept(v, "provider", c.provider)
		accept(v, "quantity", c.quantity)
		accept(v, "unitPrice", c.unitPrice)
		accept(v, "facility", c.facility)
		acceptList(v, "diagnosis", c.diagnosis)
		acceptList(v, "detail", c.detail)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CoverageEligibilityRequestItem) Equal(other *CoverageEligibilityRequestItem) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalBackbone(&other.backboneElement) &&
		equalList(c.supportingInfoSequence, other.supportingInfoSequence) &&
		c.category.Equal(other.category) &&
		c.productOrService.Equal(other.productOrService) &&
		equalList(c.modifier, other.modifier) &&
		c.provider.Equal(other.provider) &&
		c.quantity.Equal(other.quantity) &&
		c.unitPrice.Equal(other.unitPrice) &&
		c.facility.Equal(other.facility) &&
		equalList(c.diagnosis, other.diagnosis) &&
		equalList(c.detail, other.detail)
}

func (c *CoverageEligibilityRequestItem) equalBase(other Base) bool {
	o, ok := other.(*CoverageEligibilityRequestItem)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CoverageEligibilityRequestItem) ToBuilder() *CoverageEligibilityRequestItemBuilder {
	return NewCoverageEligibilityRequestItemBuilder().From(c)
}

// CoverageEligibilityRequestItemBuilder builds CoverageEligibilityRequestItem values.
type CoverageEligibilityRequestItemBuilder struct {
	backboneElementBuilder[*CoverageEligibilityRequestItemBuilder]
	supportingInfoSequence []*PositiveInt
	category               *CodeableConcept
	productOrService       *CodeableConcept
	modifier               []*CodeableConcept
	provider               *Reference
	quantity               *SimpleQuantity
	unitPrice              *Money
	facility               *Reference
	diagnosis              []*CoverageEligibilityRequestItemDiagnosis
	detail                 []*Reference
}

// NewCoverageEligibilityRequestItemBuilder creates an empty CoverageEligibilityRequestItemBuilder.
func NewCoverageEligibilityRequestItemBuilder() *CoverageEligibilityRequestItemBuilder {
	b := &CoverageEligibilityRequestItemBuilder{}
	b.self = b
	return b
}

// SupportingInfoSequence appends to CoverageEligibilityRequest.item.supportingInfoSequence.
func (b *CoverageEligibilityRequestItemBuilder) SupportingInfoSequence(supportingInfoSequence ...*PositiveInt) *CoverageEligibilityRequestItemBuilder {
	b.supportingInfoSequence = append(b.supportingInfoSequence, supportingInfoSequence...)
	return b
}

// SetSupportingInfoSequence replaces CoverageEligibilityRequest.item.supportingInfoSequence.
func (b *CoverageEligibilityRequestItemBuilder) SetSupportingInfoSequence(supportingInfoSequence []*PositiveInt) *CoverageEligibilityRequestItemBuilder {
	b.supportingInfoSequence = slices.Clone(supportingInfoSequence)
	return b
}

// Category sets CoverageEligibilityRequest.item.category.
func (b *CoverageEligibilityRequestItemBuilder) Category(category *CodeableConcept) *CoverageEligibilityRequestItemBuilder {
	b.category = category
	return b
}

// ProductOrService sets CoverageEligibilityRequest.item.productOrService.
func (b *CoverageEligibilityRequestItemBuilder) ProductOrService(productOrService *CodeableConcept) *CoverageEligibilityRequestItemBuilder {
	b.productOrService = productOrService
	return b
}

// Modifier appends to CoverageEligibilityRequest.item.modifier.
func (b *CoverageEligibilityRequestItemBuilder) Modifier(modifier ...*CodeableConcept) *CoverageEligibilityRequestItemBuilder {
	b.modifier = append(b.modifier, modifier...)
	return b
}

// SetModifier replaces CoverageEligibilityRequest.item.modifier.
func (b *CoverageEligibilityRequestItemBuilder) SetModifier(modifier []*CodeableConcept) *CoverageEligibilityRequestItemBuilder {
	b.modifier = slices.Clone(modifier)
	return b
}

// Provider sets CoverageEligibilityRequest.item.provider.
func (b *CoverageEligibilityRequestItemBuilder) Provider(provider *Reference) *CoverageEligibilityRequestItemBuilder {
	b.provider = provider
	return b
}

// Quantity sets CoverageEligibilityRequest.item.quantity.
func (b *CoverageEligibilityRequestItemBuilder) Quantity(quantity *SimpleQuantity) *CoverageEligibilityRequestItemBuilder {
	b.quantity = quantity
	return b
}

// UnitPrice sets CoverageEligibilityRequest.item.unitPrice.
func (b *CoverageEligibilityRequestItemBuilder) UnitPrice(unitPrice *Money) *CoverageEligibilityRequestItemBuilder {
	b.unitPrice = unitPrice
	return b
}

// Facility sets CoverageEligibilityRequest.item.facility.
func (b *CoverageEligibilityRequestItemBuilder) Facility(facility *Reference) *CoverageEligibilityRequestItemBuilder {
	b.facility = facility
	return b
}

// Diagnosis appends to CoverageEligibilityRequest.item.diagnosis.
func (b *CoverageEligibilityRequestItemBuilder) Diagnosis(diagnosis ...*CoverageEligibilityRequestItemDiagnosis) *CoverageEligibilityRequestItemBuilder {
	b.diagnosis = append(b.diagnosis, diagnosis...)
	return b
}

// SetDiagnosis replaces CoverageEligibilityRequest.item.diagnosis.
func (b *CoverageEligibilityRequestItemBuilder) SetDiagnosis(diagnosis []*CoverageEligibilityRequestItemDiagnosis) *CoverageEligibilityRequestItemBuilder {
	b.diagnosis = slices.Clone(diagnosis)
	return b
}

// Detail appends to CoverageEligibilityRequest.item.detail.
func (b *CoverageEligibilityRequestItemBuilder) Detail(detail ...*Reference) *CoverageEligibilityRequestItemBuilder {
	b.detail = append(b.detail, detail...)
	return b
}

// SetDetail replaces CoverageEligibilityRequest.item.detail.
func (b *CoverageEligibilityRequestItemBuilder) SetDetail(detail []*Reference) *CoverageEligibilityRequestItemBuilder {
	b.detail = slices.Clone(detail)
	return b
}

// From copies every element of src into the builder.
func (b *CoverageEligibilityRequestItemBuilder) From(src *CoverageEligibilityRequestItem) *CoverageEligibilityRequestItemBuilder {
	b.fromBackbone(&src.backboneElement)
	b.supportingInfoSequence = slices.Clone(src.supportingInfoSequence)
	b.category = src.category
	b.productOrService = src.productOrService
	b.modifier = slices.Clone(src.modifier)
	b.provider = src.provider
	b.quantity = src.quantity
	b.unitPrice = src.unitPrice
	b.facility = src.facility
	b.diagnosis = slices.Clone(src.diagnosis)
	b.detail = slices.Clone(src.detail)
	return b
}

// Build validates the builder state and returns a new CoverageEligibilityRequestItem.
func (b *CoverageEligibilityRequestItemBuilder) Build() (*CoverageEligibilityRequestItem, error) {
	const typ = "CoverageEligibilityRequest.item"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.CheckList(typ, "supportingInfoSequence", b.supportingInfoSequence),
		validation.CheckList(typ, "modifier", b.modifier),
		checkReference(typ, "provider", b.provider, "Practitioner", "PractitionerRole"),
		checkReference(typ, "facility", b.facility, "Location", "Organization"),
		validation.CheckList(typ, "diagnosis", b.diagnosis),
		validation.CheckList(typ, "detail", b.detail),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &CoverageEligibilityRequestItem{
		backboneElement:        b.backbone(),
		supportingInfoSequence: slices.Clone(b.supportingInfoSequence),
		category:               b.category,
		productOrService:       b.productOrService,
		modifier:               slices.Clone(b.modifier),
		provider:               b.provider,
		quantity:               b.quantity,
		unitPrice:              b.unitPrice,
		facility:               b.facility,
		diagnosis:              slices.Clone(b.diagnosis),
		detail:                 slices.Clone(b.detail),
	}, nil
}

func (b *CoverageEligibilityRequestItemBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		len(b.supportingInfoSequence) > 0 ||
		b.category != nil ||
		b.productOrService != nil ||
		len(b.modifier) > 0 ||
		b.provider != nil ||
		b.quantity != nil ||
		b.unitPrice != nil ||
		b.facility != nil ||
		len(b.diagnosis) > 0 ||
		len(b.detail) > 0
}

// CoverageEligibilityRequestItemDiagnosis is a patient diagnosis for which care is sought.
// It is the CoverageEligibilityRequest.item.diagnosis element.
type CoverageEligibilityRequestItemDiagnosis struct {
	backboneElement
	diagnosis Element `fhir:"diagnosis[x],choice=CodeableConcept|Reference,targets=Condition,binding=ICD10,strength=example,valueSet=http://hl7.org/fhir/ValueSet/icd-10"`
}

// Diagnosis returns CoverageEligibilityRequest.item.diagnosis.diagnosis[x]: *CodeableConcept or *Reference.
func (c *CoverageEligibilityRequestItemDiagnosis) Diagnosis() Element { return c.diagnosis }

// FHIRType returns "BackboneElement".
func (*CoverageEligibilityRequestItemDiagnosis) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (c *CoverageEligibilityRequestItemDiagnosis) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptBackbone(v)
		accept(v, "diagnosis", c.diagnosis)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CoverageEligibilityRequestItemDiagnosis) Equal(other *CoverageEligibilityRequestItemDiagnosis) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalBackbone(&other.backboneElement) &&
		equalBase(c.diagnosis, other.diagnosis)
}

func (c *CoverageEligibilityRequestItemDiagnosis) equalBase(other Base) bool {
	o, ok := other.(*CoverageEligibilityRequestItemDiagnosis)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CoverageEligibilityRequestItemDiagnosis) ToBuilder() *CoverageEligibilityRequestItemDiagnosisBuilder {
	return NewCoverageEligibilityRequestItemDiagnosisBuilder().From(c)
}

// CoverageEligibilityRequestItemDiagnosisBuilder builds CoverageEligibilityRequestItemDiagnosis values.
type CoverageEligibilityRequestItemDiagnosisBuilder struct {
	backboneElementBuilder[*CoverageEligibilityRequestItemDiagnosisBuilder]
	diagnosis Element
}

// NewCoverageEligibilityRequestItemDiagnosisBuilder creates an empty CoverageEligibilityRequestItemDiagnosisBuilder.
func NewCoverageEligibilityRequestItemDiagnosisBuilder() *CoverageEligibilityRequestItemDiagnosisBuilder {
	b := &CoverageEligibilityRequestItemDiagnosisBuilder{}
	b.self = b
	return b
}

// Diagnosis sets CoverageEligibilityRequest.item.diagnosis.diagnosis[x].
func (b *CoverageEligibilityRequestItemDiagnosisBuilder) Diagnosis(diagnosis Element) *CoverageEligibilityRequestItemDiagnosisBuilder {
	b.diagnosis = diagnosis
	return b
}

// From copies every element of src into the builder.
func (b *CoverageEligibilityRequestItemDiagnosisBuilder) From(src *CoverageEligibilityRequestItemDiagnosis) *CoverageEligibilityRequestItemDiagnosisBuilder {
	b.fromBackbone(&src.backboneElement)
	b.diagnosis = src.diagnosis
	return b
}

// Build validates the builder state and returns a new CoverageEligibilityRequestItemDiagnosis.
func (b *CoverageEligibilityRequestItemDiagnosisBuilder) Build() (*CoverageEligibilityRequestItemDiagnosis, error) {
	const typ = "CoverageEligibilityRequest.item.diagnosis"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Choice(typ, "diagnosis", b.diagnosis, "CodeableConcept", "Reference"),
		checkChoiceReference(typ, "diagnosis", b.diagnosis, "Condition"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &CoverageEligibilityRequestItemDiagnosis{
		backboneElement: b.backbone(),
		diagnosis:       b.diagnosis,
	}, nil
}

func (b *CoverageEligibilityRequestItemDiagnosisBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.diagnosis != nil
}
