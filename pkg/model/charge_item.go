package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// ChargeItem records the provision of healthcare-related goods and services for billing.
type ChargeItem struct {
	domainResource
	identifier             []*Identifier             `fhir:"identifier,summary"`
	definitionUri          []*Uri                    `fhir:"definitionUri,summary"`
	definitionCanonical    []*Canonical              `fhir:"definitionCanonical,summary"`
	status                 *CodeOf[ChargeItemStatus] `fhir:"status,required,summary,modifier,binding=ChargeItemStatus,strength=required,valueSet=http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.1"`
	partOf                 []*Reference              `fhir:"partOf,targets=ChargeItem"`
	code                   *CodeableConcept          `fhir:"code,required,summary,binding=ChargeItemCode,strength=example,valueSet=http://hl7.org/fhir/ValueSet/chargeitem-billingcodes"`
	subject                *Reference                `fhir:"subject,required,summary,targets=Patient|Group"`
	context                *Reference                `fhir:"context,summary,targets=Encounter|EpisodeOfCare"`
	occurrence             Element                   `fhir:"occurrence[x],summary,choice=dateTime|Period|Timing"`
	performer              []*ChargeItemPerformer    `fhir:"performer"`
	performingOrganization *Reference                `fhir:"performingOrganization,targets=Organization"`
	requestingOrganization *Reference                `fhir:"requestingOrganization,targets=Organization"`
	costCenter             *Reference                `fhir:"costCenter,targets=Organization"`
	quantity               *Quantity                 `fhir:"quantity,summary"`
	bodysite               []*CodeableConcept        `fhir:"bodysite,summary,binding=BodySite,strength=example,valueSet=http://hl7.org/fhir/ValueSet/body-site"`
	factorOverride         *Decimal                  `fhir:"factorOverride"`
	priceOverride          *Money                    `fhir:"priceOverride"`
	overrideReason         *String                   `fhir:"overrideReason"`
	enterer                *Reference                `fhir:"enterer,summary,targets=Practitioner|PractitionerRole|Organization|Patient|Device|RelatedPerson"`
	enteredDate            *DateTime                 `fhir:"enteredDate,summary"`
	reason                 []*CodeableConcept        `fhir:"reason,binding=ChargeItemReason,strength=example,valueSet=http://hl7.org/fhir/ValueSet/icd-10"`
	service                []*Reference              `fhir:"service,targets=DiagnosticReport|ImagingStudy|Immunization|MedicationAdministration|MedicationDispense|Observation|Procedure|SupplyDelivery"`
	product                Element                   `fhir:"product[x],choice=Reference|CodeableConcept,targets=Device|Medication|Substance"`
	account                []*Reference              `fhir:"account,summary,targets=Account"`
	note                   []*Annotation             `fhir:"note"`
	supportingInformation  []*Reference              `fhir:"supportingInformation,targets=Resource"`
}

// Identifier returns ChargeItem.identifier.
func (c *ChargeItem) Identifier() []*Identifier { return c.identifier }

// DefinitionURI returns ChargeItem.definitionUri.
func (c *ChargeItem) DefinitionURI() []*Uri { return c.definitionUri }

// DefinitionCanonical returns ChargeItem.definitionCanonical.
func (c *ChargeItem) DefinitionCanonical() []*Canonical { return c.definitionCanonical }

// Status returns ChargeItem.status.
func (c *ChargeItem) Status() *CodeOf[ChargeItemStatus] { return c.status }

// PartOf returns ChargeItem.partOf.
func (c *ChargeItem) PartOf() []*Reference { return c.partOf }

// Code returns ChargeItem.code.
func (c *ChargeItem) Code() *CodeableConcept { return c.code }

// Subject returns ChargeItem.subject.
func (c *ChargeItem) Subject() *Reference { return c.subject }

// Context returns ChargeItem.context.
func (c *ChargeItem) Context() *Reference { return c.context }

// Occurrence returns ChargeItem.occurrence[x]: *DateTime, *Period or *Timing.
func (c *ChargeItem) Occurrence() Element { return c.occurrence }

// Performer returns ChargeItem.performer.
func (c *ChargeItem) Performer() []*ChargeItemPerformer { return c.performer }

// PerformingOrganization returns ChargeItem.performingOrganization.
func (c *ChargeItem) PerformingOrganization() *Reference { return c.performingOrganization }

// RequestingOrganization returns ChargeItem.requestingOrganization.
func (c *ChargeItem) RequestingOrganization() *Reference { return c.requestingOrganization }

// CostCenter returns ChargeItem.costCenter.
func (c *ChargeItem) CostCenter() *Reference { return c.costCenter }

// Quantity returns ChargeItem.quantity.
func (c *ChargeItem) Quantity() *Quantity { return c.quantity }

// Bodysite returns ChargeItem.bodysite.
func (c *ChargeItem) Bodysite() []*CodeableConcept { return c.bodysite }

// FactorOverride returns ChargeItem.factorOverride.
func (c *ChargeItem) FactorOverride() *Decimal { return c.factorOverride }

// PriceOverride returns ChargeItem.priceOverride.
func (c *ChargeItem) PriceOverride() *Money { return c.priceOverride }

// OverrideReason returns ChargeItem.overrideReason.
func (c *ChargeItem) OverrideReason() *String { return c.overrideReason }

// Enterer returns ChargeItem.enterer.
func (c *ChargeItem) Enterer() *Reference { return c.enterer }

// EnteredDate returns ChargeItem.enteredDate.
func (c *ChargeItem) EnteredDate() *DateTime { return c.enteredDate }

// Reason returns ChargeItem.reason.
func (c *ChargeItem) Reason() []*CodeableConcept { return c.reason }

// Service returns ChargeItem.service.
func (c *ChargeItem) Service() []*Reference { return c.service }

// Product returns ChargeItem.product[x]: *Reference or *CodeableConcept.
func (c *ChargeItem) Product() Element { return c.product }

// Account returns ChargeItem.account.
func (c *ChargeItem) Account() []*Reference { return c.account }

// Note returns ChargeItem.note.
func (c *ChargeItem) Note() []*Annotation { return c.note }

// SupportingInformation returns ChargeItem.supportingInformation.
func (c *ChargeItem) SupportingInformation() []*Reference { return c.supportingInformation }

// FHIRType returns "ChargeItem".
func (*ChargeItem) FHIRType() string { return "ChargeItem" }

// Accept implements visitor.Visitable.
func (c *ChargeItem) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptDomainResource(v)
		acceptList(v, "identifier", c.identifier)
		acceptList(v, "definitionUri", c.definitionUri)
		acceptList(v, "definitionCanonical", c.definitionCanonical)
		accept(v, "status", c.status)
		acceptList(v, "partOf", c.partOf)
		accept(v, "code", c.code)
		accept(v, "subject", c.subject)
		accept(v, "context", c.context)
		accept(v, "occurrence", c.occurrence)
		acceptList(v, "performer", c.performer)
		accept(v, "performingOrganization", c.performingOrganization)
		accept(v, "requestingOrganization", c.requestingOrganization)
		accept(v, "costCenter", c.costCenter)
		accept(v, "quantity", c.quantity)
		acceptList(v, "bodysite", c.bodysite)
		accept(v, "factorOverride", c.factorOverride)
		accept(v, "priceOverride", c.priceOverride)
		accept(v, "overrideReason", c.overrideReason)
		accept(v, "enterer", c.enterer)
		accept(v, "enteredDate", c.enteredDate)
		acceptList(v, "reason", c.reason)
		acceptList(v, "service", c.service)
		accept(v, "product", c.product)
		acceptList(v, "account", c.account)
		acceptList(v, "note", c.note)
		acceptList(v, "supportingInformation", c.supportingInformation)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *ChargeItem) Equal(other *ChargeItem) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalDomainResource(&other.domainResource) &&
		equalList(c.identifier, other.identifier) &&
		equalList(c.definitionUri, other.definitionUri) &&
		equalList(c.definitionCanonical, other.definitionCanonical) &&
		c.status.Equal(other.status) &&
		equalList(c.partOf, other.partOf) &&
		c.code.Equal(other.code) &&
		c.subject.Equal(other.subject) &&
		c.context.Equal(other.context) &&
		equalBase(c.occurrence, other.occurrence) &&
		equalList(c.performer, other.performer) &&
		c.performingOrganization.Equal(other.performingOrganization) &&
		c.requestingOrganization.Equal(other.requestingOrganization) &&
		c.costCenter.Equal(other.costCenter) &&
		c.quantity.Equal(other.quantity) &&
		equalList(c.bodysite, other.bodysite) &&
		c.factorOverride.Equal(other.factorOverride) &&
		c.priceOverride.Equal(other.priceOverride) &&
		c.overrideReason.Equal(other.overrideReason) &&
		c.enterer.Equal(other.enterer) &&
		c.enteredDate.Equal(other.enteredDate) &&
		equalList(c.reason, other.reason) &&
		equalList(c.service, other.service) &&
		equalBase(c.product, other.product) &&
		equalList(c.account, other.account) &&
		equalList(c.note, other.note) &&
		equalList(c.supportingInformation, other.supportingInformation)
}

func (c *ChargeItem) equalBase(other Base) bool {
	o, ok := other.(*ChargeItem)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *ChargeItem) ToBuilder() *ChargeItemBuilder {
	return NewChargeItemBuilder().From(c)
}

// ChargeItemBuilder builds ChargeItem values.
type ChargeItemBuilder struct {
	domainResourceBuilder[*ChargeItemBuilder]
	identifier             []*Identifier
	definitionUri          []*Uri
	definitionCanonical    []*Canonical
	status                 *CodeOf[ChargeItemStatus]
	partOf                 []*Reference
	code                   *CodeableConcept
	subject                *Reference
	context                *Reference
	occurrence             Element
	performer              []*ChargeItemPerformer
	performingOrganization *Reference
	requestingOrganization *Reference
	costCenter             *Reference
	quantity               *Quantity
	bodysite               []*CodeableConcept
	factorOverride         *Decimal
	priceOverride          *Money
	overrideReason         *String
	enterer                *Reference
	enteredDate            *DateTime
	reason                 []*CodeableConcept
	service                []*Reference
	product                Element
	account                []*Reference
	note                   []*Annotation
	supportingInformation  []*Reference
}

// NewChargeItemBuilder creates an empty ChargeItemBuilder.
func NewChargeItemBuilder() *ChargeItemBuilder {
	b := &ChargeItemBuilder{}
	b.self = b
	return b
}

// Identifier appends to ChargeItem.identifier.
func (b *ChargeItemBuilder) Identifier(identifier ...*Identifier) *ChargeItemBuilder {
	b.identifier = append(b.identifier, identifier...)
	return b
}

// SetIdentifier replaces ChargeItem.identifier.
func (b *ChargeItemBuilder) SetIdentifier(identifier []*Identifier) *ChargeItemBuilder {
	b.identifier = slices.Clone(identifier)
	return b
}

// DefinitionURI appends to ChargeItem.definitionUri.
func (b *ChargeItemBuilder) DefinitionURI(definitionUri ...*Uri) *ChargeItemBuilder {
	b.definitionUri = append(b.definitionUri, definitionUri...)
	return b
}

// SetDefinitionURI replaces ChargeItem.definitionUri.
func (b *ChargeItemBuilder) SetDefinitionURI(definitionUri []*Uri) *ChargeItemBuilder {
	b.definitionUri = slices.Clone(definitionUri)
	return b
}

// DefinitionCanonical appends to ChargeItem.definitionCanonical.
func (b *ChargeItemBuilder) DefinitionCanonical(definitionCanonical ...*Canonical) *ChargeItemBuilder {
	b.definitionCanonical = append(b.definitionCanonical, definitionCanonical...)
	return b
}

// SetDefinitionCanonical replaces ChargeItem.definitionCanonical.
func (b *ChargeItemBuilder) SetDefinitionCanonical(definitionCanonical []*Canonical) *ChargeItemBuilder {
	b.definitionCanonical = slices.Clone(definitionCanonical)
	return b
}

// Status sets ChargeItem.status.
func (b *ChargeItemBuilder) Status(status *CodeOf[ChargeItemStatus]) *ChargeItemBuilder {
	b.status = status
	return b
}

// PartOf appends to ChargeItem.partOf.
func (b *ChargeItemBuilder) PartOf(partOf ...*Reference) *ChargeItemBuilder {
	b.partOf = append(b.partOf, partOf...)
	return b
}

// SetPartOf replaces ChargeItem.partOf.
func (b *ChargeItemBuilder) SetPartOf(partOf []*Reference) *ChargeItemBuilder {
	b.partOf = slices.Clone(partOf)
	return b
}

// Code sets ChargeItem.code.
func (b *ChargeItemBuilder) Code(code *CodeableConcept) *ChargeItemBuilder {
	b.code = code
	return b
}

// Subject sets ChargeItem.subject.
func (b *ChargeItemBuilder) Subject(subject *Reference) *ChargeItemBuilder {
	b.subject = subject
	return b
}

// Context sets ChargeItem.context.
func (b *ChargeItemBuilder) Context(context *Reference) *ChargeItemBuilder {
	b.context = context
	return b
}

// Occurrence sets ChargeItem.occurrence[x].
func (b *ChargeItemBuilder) Occurrence(occurrence Element) *ChargeItemBuilder {
	b.occurrence = occurrence
	return b
}

// Performer appends to ChargeItem.performer.
func (b *ChargeItemBuilder) Performer(performer ...*ChargeItemPerformer) *ChargeItemBuilder {
	b.performer = append(b.performer, performer...)
	return b
}

// SetPerformer replaces ChargeItem.performer.
func (b *ChargeItemBuilder) SetPerformer(performer []*ChargeItemPerformer) *ChargeItemBuilder {
	b.performer = slices.Clone(performer)
	return b
}

// PerformingOrganization sets ChargeItem.performingOrganization.
func (b *ChargeItemBuilder) PerformingOrganization(performingOrganization *Reference) *ChargeItemBuilder {
	b.performingOrganization = performingOrganization
	return b
}

// RequestingOrganization sets ChargeItem.requestingOrganization.
func (b *ChargeItemBuilder) RequestingOrganization(requestingOrganization *Reference) *ChargeItemBuilder {
	b.requestingOrganization = requestingOrganization
	return b
}

// CostCenter sets ChargeItem.costCenter.
func (b *ChargeItemBuilder) CostCenter(costCenter *Reference) *ChargeItemBuilder {
	b.costCenter = costCenter
	return b
}

// Quantity sets ChargeItem.quantity.
func (b *ChargeItemBuilder) Quantity(quantity *Quantity) *ChargeItemBuilder {
	b.quantity = quantity
	return b
}

// Bodysite appends to ChargeItem.bodysite.
func (b *ChargeItemBuilder) Bodysite(bodysite ...*CodeableConcept) *ChargeItemBuilder {
	b.bodysite = append(b.bodysite, bodysite...)
	return b
}

// SetBodysite replaces ChargeItem.bodysite.
func (b *ChargeItemBuilder) SetBodysite(bodysite []*CodeableConcept) *ChargeItemBuilder {
	b.bodysite = slices.Clone(bodysite)
	return b
}

// FactorOverride sets ChargeItem.factorOverride.
func (b *ChargeItemBuilder) FactorOverride(factorOverride *Decimal) *ChargeItemBuilder {
	b.factorOverride = factorOverride
	return b
}

// PriceOverride sets ChargeItem.priceOverride.
func (b *ChargeItemBuilder) PriceOverride(priceOverride *Money) *ChargeItemBuilder {
	b.priceOverride = priceOverride
	return b
}

// OverrideReason sets ChargeItem.overrideReason.
func (b *ChargeItemBuilder) OverrideReason(overrideReason *String) *ChargeItemBuilder {
	b.overrideReason = overrideReason
	return b
}

// Enterer sets ChargeItem.enterer.
func (b *ChargeItemBuilder) Enterer(enterer *Reference) *ChargeItemBuilder {
	b.enterer = enterer
	return b
}

// EnteredDate sets ChargeItem.enteredDate.
func (b *ChargeItemBuilder) EnteredDate(enteredDate *DateTime) *ChargeItemBuilder {
	b.enteredDate = enteredDate
	return b
}

// Reason appends to ChargeItem.reason.
func (b *ChargeItemBuilder) Reason(reason ...*CodeableConcept) *ChargeItemBuilder {
	b.reason = append(b.reason, reason...)
	return b
}

// SetReason replaces ChargeItem.reason.
func (b *ChargeItemBuilder) SetReason(reason []*CodeableConcept) *ChargeItemBuilder {
	b.reason = slices.Clone(reason)
	return b
}

// Service appends to ChargeItem.service.
func (b *ChargeItemBuilder) Service(service ...*Reference) *ChargeItemBuilder {
	b.service = append(b.service, service...)
	return b
}

// SetService replaces ChargeItem.service.
func (b *ChargeItemBuilder) SetService(service []*Reference) *ChargeItemBuilder {
	b.service = slices.Clone(service)
	return b
}

// Product sets ChargeItem.product[x].
func (b *ChargeItemBuilder) Product(product Element) *ChargeItemBuilder {
	b.product = product
	return b
}

// Account appends to ChargeItem.account.
func (b *ChargeItemBuilder) Account(account ...*Reference) *ChargeItemBuilder {
	b.account = append(b.account, account...)
	return b
}

// SetAccount replaces ChargeItem.account.
func (b *ChargeItemBuilder) SetAccount(account []*Reference) *ChargeItemBuilder {
	b.account = slices.Clone(account)
	return b
}

// Note appends to ChargeItem.note.
func (b *ChargeItemBuilder) Note(note ...*Annotation) *ChargeItemBuilder {
	b.note = append(b.note, note...)
	return b
}

// SetNote replaces ChargeItem.note.
func (b *ChargeItemBuilder) SetNote(note []*Annotation) *ChargeItemBuilder {
	b.note = slices.Clone(note)
	return b
}

// SupportingInformation appends to ChargeItem.supportingInformation.
func (b *ChargeItemBuilder) SupportingInformation(supportingInformation ...*Reference) *ChargeItemBuilder {
	b.supportingInformation = append(b.supportingInformation, supportingInformation...)
	return b
}

// SetSupportingInformation replaces ChargeItem.supportingInformation.
func (b *ChargeItemBuilder) SetSupportingInformation(supportingInformation []*Reference) *ChargeItemBuilder {
	b.supportingInformation = slices.Clone(supportingInformation)
	return b
}

// From copies every element of src into the builder.
func (b *ChargeItemBuilder) From(src *ChargeItem) *ChargeItemBuilder {
	b.fromDomainResource(&src.domainResource)
	b.identifier = slices.Clone(src.identifier)
	b.definitionUri = slices.Clone(src.definitionUri)
	b.definitionCanonical = slices.Clone(src.definitionCanonical)
	b.status = src.status
	b.partOf = slices.Clone(src.partOf)
	b.code = src.code
	b.subject = src.subject
	b.context = src.context
	b.occurrence = src.occurrence
	b.performer = slices.Clone(src.performer)
	b.performingOrganization = src.performingOrganization
	b.requestingOrganization = src.requestingOrganization
	b.costCenter = src.costCenter
	b.quantity = src.quantity
	b.bodysite = slices.Clone(src.bodysite)
	b.factorOverride = src.factorOverride
	b.priceOverride = src.priceOverride
	b.overrideReason = src.overrideReason
	b.enterer = src.enterer
	b.enteredDate = src.enteredDate
	b.reason = slices.Clone(src.reason)
	b.service = slices.Clone(src.service)
	b.product = src.product
	b.account = slices.Clone(src.account)
	b.note = slices.Clone(src.note)
	b.supportingInformation = slices.Clone(src.supportingInformation)
	return b
}

// Build validates the builder state and returns a new ChargeItem.
func (b *ChargeItemBuilder) Build() (*ChargeItem, error) {
	const typ = "ChargeItem"
	if err := validation.First(
		b.checkDomainResource(typ),
		validation.CheckList(typ, "identifier", b.identifier),
		validation.CheckList(typ, "definitionUri", b.definitionUri),
		validation.CheckList(typ, "definitionCanonical", b.definitionCanonical),
		validation.Require(typ, "status", b.status),
		validation.CheckCode(typ, "status", b.status),
		validation.CheckList(typ, "partOf", b.partOf),
		checkReferences(typ, "partOf", b.partOf, "ChargeItem"),
		validation.Require(typ, "code", b.code),
		validation.Require(typ, "subject", b.subject),
		checkReference(typ, "subject", b.subject, "Patient", "Group"),
		checkReference(typ, "context", b.context, "Encounter", "EpisodeOfCare"),
		validation.Choice(typ, "occurrence", b.occurrence, "dateTime", "Period", "Timing"),
		validation.CheckList(typ, "performer", b.performer),
		checkReference(typ, "performingOrganization", b.performingOrganization, "Organization"),
		checkReference(typ, "requestingOrganization", b.requestingOrganization, "Organization"),
		checkReference(typ, "costCenter", b.costCenter, "Organization"),
		validation.CheckList(typ, "bodysite", b.bodysite),
		checkReference(typ, "enterer", b.enterer, "Practitioner", "PractitionerRole", "Organization", "Patient", "Device", "RelatedPerson"),
		validation.CheckList(typ, "reason", b.reason),
		validation.CheckList(typ, "service", b.service),
		checkReferences(typ, "service", b.service, "DiagnosticReport", "ImagingStudy", "Immunization", "MedicationAdministration", "MedicationDispense", "Observation", "Procedure", "SupplyDelivery"),
		validation.Choice(typ, "product", b.product, "Reference", "CodeableConcept"),
		checkChoiceReference(typ, "product", b.product, "Device", "Medication", "Substance"),
		validation.CheckList(typ, "account", b.account),
		checkReferences(typ, "account", b.account, "Account"),
		validation.CheckList(typ, "note", b.note),
		validation.CheckList(typ, "supportingInformation", b.supportingInformation),
	); err != nil {
		return nil, err
	}
	return &ChargeItem{
		domainResource:         b.domainResource(),
		identifier:             slices.Clone(b.identifier),
		definitionUri:          slices.Clone(b.definitionUri),
		definitionCanonical:    slices.Clone(b.definitionCanonical),
		status:                 b.status,
		partOf:                 slices.Clone(b.partOf),
		code:                   b.code,
		subject:                b.subject,
		context:                b.context,
		occurrence:             b.occurrence,
		performer:              slices.Clone(b.performer),
		performingOrganization: b.performingOrganization,
		requestingOrganization: b.requestingOrganization,
		costCenter:             b.costCenter,
		quantity:               b.quantity,
		bodysite:               slices.Clone(b.bodysite),
		factorOverride:         b.factorOverride,
		priceOverride:          b.priceOverride,
		overrideReason:         b.overrideReason,
		enterer:                b.enterer,
		enteredDate:            b.enteredDate,
		reason:                 slices.Clone(b.reason),
		service:                slices.Clone(b.service),
		product:                b.product,
		account:                slices.Clone(b.account),
		note:                   slices.Clone(b.note),
		supportingInformation:  slices.Clone(b.supportingInformation),
	}, nil
}

// ChargeItemPerformer indicates who or what performed or participated in the charged service.
// It is the ChargeItem.performer element.
type ChargeItemPerformer struct {
	backboneElement
	function *CodeableConcept `fhir:"function,binding=ChargeItemPerformerFunction,strength=example,valueSet=http://hl7.org/fhir/ValueSet/performer-role"`
	actor    *Reference       `fhir:"actor,required,targets=Practitioner|PractitionerRole|Organization|CareTeam|Patient|Device|RelatedPerson"`
}

// Function returns ChargeItem.performer.function.
func (c *ChargeItemPerformer) Function() *CodeableConcept { return c.function }

// Actor returns ChargeItem.performer.actor.
func (c *ChargeItemPerformer) Actor() *Reference { return c.actor }

// FHIRType returns "BackboneElement".
func (*ChargeItemPerformer) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (c *ChargeItemPerformer) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptBackbone(v)
		accept(v, "function", c.function)
		accept(v, "actor", c.actor)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *ChargeItemPerformer) Equal(other *ChargeItemPerformer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalBackbone(&other.backboneElement) &&
		c.function.Equal(other.function) &&
		c.actor.Equal(other.actor)
}

func (c *ChargeItemPerformer) equalBase(other Base) bool {
	o, ok := other.(*ChargeItemPerformer)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *ChargeItemPerformer) ToBuilder() *ChargeItemPerformerBuilder {
	return NewChargeItemPerformerBuilder().From(c)
}

// ChargeItemPerformerBuilder builds ChargeItemPerformer values.
type ChargeItemPerformerBuilder struct {
	backboneElementBuilder[*ChargeItemPerformerBuilder]
	function *CodeableConcept
	actor    *Reference
}

// NewChargeItemPerformerBuilder creates an empty ChargeItemPerformerBuilder.
func NewChargeItemPerformerBuilder() *ChargeItemPerformerBuilder {
	b := &ChargeItemPerformerBuilder{}
	b.self = b
	return b
}

// Function sets ChargeItem.performer.function.
func (b *ChargeItemPerformerBuilder) Function(function *CodeableConcept) *ChargeItemPerformerBuilder {
	b.function = function
	return b
}

// Actor sets ChargeItem.performer.actor.
func (b *ChargeItemPerformerBuilder) Actor(actor *Reference) *ChargeItemPerformerBuilder {
	b.actor = actor
	return b
}

// From copies every element of src into the builder.
func (b *ChargeItemPerformerBuilder) From(src *ChargeItemPerformer) *ChargeItemPerformerBuilder {
	b.fromBackbone(&src.backboneElement)
	b.function = src.function
	b.actor = src.actor
	return b
}

// Build validates the builder state and returns a new ChargeItemPerformer.
func (b *ChargeItemPerformerBuilder) Build() (*ChargeItemPerformer, error) {
	const typ = "ChargeItem.performer"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "actor", b.actor),
		checkReference(typ, "actor", b.actor, "Practitioner", "PractitionerRole", "Organization", "CareTeam", "Patient", "Device", "RelatedPerson"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &ChargeItemPerformer{
		backboneElement: b.backbone(),
		function:        b.function,
		actor:           b.actor,
	}, nil
}

func (b *ChargeItemPerformerBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.function != nil ||
		b.actor != nil
}
