package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// SubstanceSpecification is the detailed description of a substance, typically at a level beyond what is used for prescribing.
type SubstanceSpecification struct {
	domainResource
	identifier           *Identifier                                              `fhir:"identifier,summary"`
	typ                  *CodeableConcept                                         `fhir:"type,summary"`
	status               *CodeableConcept                                         `fhir:"status,summary"`
	domain               *CodeableConcept                                         `fhir:"domain,summary"`
	description          *String                                                  `fhir:"description,summary"`
	source               []*Reference                                             `fhir:"source,summary,targets=DocumentReference"`
	comment              *String                                                  `fhir:"comment,summary"`
	moiety               []*SubstanceSpecificationMoiety                          `fhir:"moiety,summary"`
	property             []*SubstanceSpecificationProperty                        `fhir:"property,summary"`
	referenceInformation *Reference                                               `fhir:"referenceInformation,summary,targets=SubstanceReferenceInformation"`
	structure            *SubstanceSpecificationStructure                         `fhir:"structure,summary"`
	code                 []*SubstanceSpecificationCode                            `fhir:"code,summary"`
	name                 []*SubstanceSpecificationName                            `fhir:"name,summary"`
	molecularWeight      []*SubstanceSpecificationStructureIsotopeMolecularWeight `fhir:"molecularWeight,summary"`
	relationship         []*SubstanceSpecificationRelationship                    `fhir:"relationship,summary"`
	nucleicAcid          *Reference                                               `fhir:"nucleicAcid,summary,targets=SubstanceNucleicAcid"`
	polymer              *Reference                                               `fhir:"polymer,summary,targets=SubstancePolymer"`
	protein              *Reference                                               `fhir:"protein,summary,targets=SubstanceProtein"`
	sourceMaterial       *Reference                                               `fhir:"sourceMaterial,summary,targets=SubstanceSourceMaterial"`
}

// Identifier returns SubstanceSpecification.identifier.
func (s *SubstanceSpecification) Identifier() *Identifier { return s.identifier }

// Type returns SubstanceSpecification.type.
func (s *SubstanceSpecification) Type() *CodeableConcept { return s.typ }

// Status returns SubstanceSpecification.status.
func (s *SubstanceSpecification) Status() *CodeableConcept { return s.status }

// Domain returns SubstanceSpecification.domain.
func (s *SubstanceSpecification) Domain() *CodeableConcept { return s.domain }

// Description returns SubstanceSpecification.description.
func (s *SubstanceSpecification) Description() *String { return s.description }

// Source returns SubstanceSpecification.source.
func (s *SubstanceSpecification) Source() []*Reference { return s.source }

// Comment returns SubstanceSpecification.comment.
func (s *SubstanceSpecification) Comment() *String { return s.comment }

// Moiety returns SubstanceSpecification.moiety.
func (s *SubstanceSpecification) Moiety() []*SubstanceSpecificationMoiety { return s.moiety }

// Property returns SubstanceSpecification.property.
func (s *SubstanceSpecification) Property() []*SubstanceSpecificationProperty { return s.property }

// ReferenceInformation returns SubstanceSpecification.referenceInformation.
func (s *SubstanceSpecification) ReferenceInformation() *Reference {
	return s.referenceInformation
}

// Structure returns SubstanceSpecification.structure.
func (s *SubstanceSpecification) Structure() *SubstanceSpecificationStructure {
	return s.structure
}

// Code returns SubstanceSpecification.code.
func (s *SubstanceSpecification) Code() []*SubstanceSpecificationCode { return s.code }

// Name returns SubstanceSpecification.name.
func (s *SubstanceSpecification) Name() []*SubstanceSpecificationName { return s.name }

// MolecularWeight returns SubstanceSpecification.molecularWeight.
func (s *SubstanceSpecification) MolecularWeight() []*SubstanceSpecificationStructureIsotopeMolecularWeight {
	return s.molecularWeight
}

// Relationship returns SubstanceSpecification.relationship.
func (s *SubstanceSpecification) Relationship() []*SubstanceSpecificationRelationship {
	return s.relationship
}

// NucleicAcid returns SubstanceSpecification.nucleicAcid.
func (s *SubstanceSpecification) NucleicAcid() *Reference { return s.nucleicAcid }

// Polymer returns SubstanceSpecification.polymer.
func (s *SubstanceSpecification) Polymer() *Reference { return s.polymer }

// Protein returns SubstanceSpecification.protein.
func (s *SubstanceSpecification) Protein() *Reference { return s.protein }

// SourceMaterial returns SubstanceSpecification.sourceMaterial.
func (s *SubstanceSpecification) SourceMaterial() *Reference { return s.sourceMaterial }

// FHIRType returns "SubstanceSpecification".
func (*SubstanceSpecification) FHIRType() string { return "SubstanceSpecification" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecification) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptDomainResource(v)
		accept(v, "identifier", s.identifier)
		accept(v, "type", s.typ)
		accept(v, "status", s.status)
		accept(v, "domain", s.domain)
		accept(v, "description", s.description)
		acceptList(v, "source", s.source)
		accept(v, "comment", s.comment)
		acceptList(v, "moiety", s.moiety)
		acceptList(v, "property", s.property)
		accept(v, "referenceInformation", s.referenceInformation)
		accept(v, "structure", s.structure)
		acceptList(v, "code", s.code)
		acceptList(v, "name", s.name)
		acceptList(v, "molecularWeight", s.molecularWeight)
		acceptList(v, "relationship", s.relationship)
		accept(v, "nucleicAcid", s.nucleicAcid)
		accept(v, "polymer", s.polymer)
		accept(v, "protein", s.protein)
		accept(v, "sourceMaterial", s.sourceMaterial)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecification) Equal(other *SubstanceSpecification) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalDomainResource(&other.domainResource) &&
		s.identifier.Equal(other.identifier) &&
		s.typ.Equal(other.typ) &&
		s.status.Equal(other.status) &&
		s.domain.Equal(other.domain) &&
		s.description.Equal(other.description) &&
		equalList(s.source, other.source) &&
		s.comment.Equal(other.comment) &&
		equalList(s.moiety, other.moiety) &&
		equalList(s.property, other.property) &&
		s.referenceInformation.Equal(other.referenceInformation) &&
		s.structure.Equal(other.structure) &&
		equalList(s.code, other.code) &&
		equalList(s.name, other.name) &&
		equalList(s.molecularWeight, other.molecularWeight) &&
		equalList(s.relationship, other.relationship) &&
		s.nucleicAcid.Equal(other.nucleicAcid) &&
		s.polymer.Equal(other.polymer) &&
		s.protein.Equal(other.protein) &&
		s.sourceMaterial.Equal(other.sourceMaterial)
}

func (s *SubstanceSpecification) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecification)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecification) ToBuilder() *SubstanceSpecificationBuilder {
	return NewSubstanceSpecificationBuilder().From(s)
}

// SubstanceSpecificationBuilder builds SubstanceSpecification values.
type SubstanceSpecificationBuilder struct {
	domainResourceBuilder[*SubstanceSpecificationBuilder]
	identifier           *Identifier
	typ                  *CodeableConcept
	status               *CodeableConcept
	domain               *CodeableConcept
	description          *String
	source               []*Reference
	comment              *String
	moiety               []*SubstanceSpecificationMoiety
	property             []*SubstanceSpecificationProperty
	referenceInformation *Reference
	structure            *SubstanceSpecificationStructure
	code                 []*SubstanceSpecificationCode
	name                 []*SubstanceSpecificationName
	molecularWeight      []*SubstanceSpecificationStructureIsotopeMolecularWeight
	relationship         []*SubstanceSpecificationRelationship
	nucleicAcid          *Reference
	polymer              *Reference
	protein              *Reference
	sourceMaterial       *Reference
}

// NewSubstanceSpecificationBuilder creates an empty SubstanceSpecificationBuilder.
func NewSubstanceSpecificationBuilder() *SubstanceSpecificationBuilder {
	b := &SubstanceSpecificationBuilder{}
	b.self = b
	return b
}

// Identifier sets SubstanceSpecification.identifier.
func (b *SubstanceSpecificationBuilder) Identifier(identifier *Identifier) *SubstanceSpecificationBuilder {
	b.identifier = identifier
	return b
}

// Type sets SubstanceSpecification.type.
func (b *SubstanceSpecificationBuilder) Type(typ *CodeableConcept) *SubstanceSpecificationBuilder {
	b.typ = typ
	return b
}

// Status sets SubstanceSpecification.status.
func (b *SubstanceSpecificationBuilder) Status(status *CodeableConcept) *SubstanceSpecificationBuilder {
	b.status = status
	return b
}

// Domain sets SubstanceSpecification.domain.
func (b *SubstanceSpecificationBuilder) Domain(domain *CodeableConcept) *SubstanceSpecificationBuilder {
	b.domain = domain
	return b
}

// Description sets SubstanceSpecification.description.
func (b *SubstanceSpecificationBuilder) Description(description *String) *SubstanceSpecificationBuilder {
	b.description = description
	return b
}

// Source appends to SubstanceSpecification.source.
func (b *SubstanceSpecificationBuilder) Source(source ...*Reference) *SubstanceSpecificationBuilder {
	b.source = append(b.source, source...)
	return b
}

// SetSource replaces SubstanceSpecification.source.
func (b *SubstanceSpecificationBuilder) SetSource(source []*Reference) *SubstanceSpecificationBuilder {
	b.source = slices.Clone(source)
	return b
}

// Comment sets SubstanceSpecification.comment.
func (b *SubstanceSpecificationBuilder) Comment(comment *String) *SubstanceSpecificationBuilder {
	b.comment = comment
	return b
}

// Moiety appends to SubstanceSpecification.moiety.
func (b *SubstanceSpecificationBuilder) Moiety(moiety ...*SubstanceSpecificationMoiety) *SubstanceSpecificationBuilder {
	b.moiety = append(b.moiety, moiety...)
	return b
}

// SetMoiety replaces SubstanceSpecification.moiety.
func (b *SubstanceSpecificationBuilder) SetMoiety(moiety []*SubstanceSpecificationMoiety) *SubstanceSpecificationBuilder {
	b.moiety = slices.Clone(moiety)
	return b
}

// Property appends to SubstanceSpecification.property.
func (b *SubstanceSpecificationBuilder) Property(property ...*SubstanceSpecificationProperty) *SubstanceSpecificationBuilder {
	b.property = append(b.property, property...)
	return b
}

// SetProperty replaces SubstanceSpecification.property.
func (b *SubstanceSpecificationBuilder) SetProperty(property []*SubstanceSpecificationProperty) *SubstanceSpecificationBuilder {
	b.property = slices.Clone(property)
	return b
}

// ReferenceInformation sets SubstanceSpecification.referenceInformation.
func (b *SubstanceSpecificationBuilder) ReferenceInformation(referenceInformation *Reference) *SubstanceSpecificationBuilder {
	b.referenceInformation = referenceInformation
	return b
}

// Structure sets SubstanceSpecification.structure.
func (b *SubstanceSpecificationBuilder) Structure(structure *SubstanceSpecificationStructure) *SubstanceSpecificationBuilder {
	b.structure = structure
	return b
}

// Code appends to SubstanceSpecification.code.
func (b *SubstanceSpecificationBuilder) Code(code ...*SubstanceSpecificationCode) *SubstanceSpecificationBuilder {
	b.code = append(b.code, code...)
	return b
}

// SetCode replaces SubstanceSpecification.code.
func (b *SubstanceSpecificationBuilder) SetCode(code []*SubstanceSpecificationCode) *SubstanceSpecificationBuilder {
	b.code = slices.Clone(code)
	return b
}

// Name appends to SubstanceSpecification.name.
func (b *SubstanceSpecificationBuilder) Name(name ...*SubstanceSpecificationName) *SubstanceSpecificationBuilder {
	b.name = append(b.name, name...)
	return b
}

// SetName replaces SubstanceSpecification.name.
func (b *SubstanceSpecificationBuilder) SetName(name []*SubstanceSpecificationName) *SubstanceSpecificationBuilder {
	b.name = slices.Clone(name)
	return b
}

// MolecularWeight appends to SubstanceSpecification.molecularWeight.
func (b *SubstanceSpecificationBuilder) MolecularWeight(molecularWeight ...*SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationBuilder {
	b.molecularWeight = append(b.molecularWeight, molecularWeight...)
	return b
}

// SetMolecularWeight replaces SubstanceSpecification.molecularWeight.
func (b *SubstanceSpecificationBuilder) SetMolecularWeight(molecularWeight []*SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationBuilder {
	b.molecularWeight = slices.Clone(molecularWeight)
	return b
}

// Relationship appends to SubstanceSpecification.relationship.
func (b *SubstanceSpecificationBuilder) Relationship(relationship ...*SubstanceSpecificationRelationship) *SubstanceSpecificationBuilder {
	b.relationship = append(b.relationship, relationship...)
	return b
}

// SetRelationship replaces SubstanceSpecification.relationship.
func (b *SubstanceSpecificationBuilder) SetRelationship(relationship []*SubstanceSpecificationRelationship) *SubstanceSpecificationBuilder {
	b.relationship = slices.Clone(relationship)
	return b
}

// NucleicAcid sets SubstanceSpecification.nucleicAcid.
func (b *SubstanceSpecificationBuilder) NucleicAcid(nucleicAcid *Reference) *SubstanceSpecificationBuilder {
	b.nucleicAcid = nucleicAcid
	return b
}

// Polymer sets SubstanceSpecification.polymer.
func (b *SubstanceSpecificationBuilder) Polymer(polymer *Reference) *SubstanceSpecificationBuilder {
	b.polymer = polymer
	return b
}

// Protein sets SubstanceSpecification.protein.
func (b *SubstanceSpecificationBuilder) Protein(protein *Reference) *SubstanceSpecificationBuilder {
	b.protein = protein
	return b
}

// SourceMaterial sets SubstanceSpecification.sourceMaterial.
func (b *SubstanceSpecificationBuilder) SourceMaterial(sourceMaterial *Reference) *SubstanceSpecificationBuilder {
	b.sourceMaterial = sourceMaterial
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationBuilder) From(src *SubstanceSpecification) *SubstanceSpecificationBuilder {
	b.fromDomainResource(&src.domainResource)
	b.identifier = src.identifier
	b.typ = src.typ
	b.status = src.status
	b.domain = src.domain
	b.description = src.description
	b.source = slices.Clone(src.source)
	b.comment = src.comment
	b.moiety = slices.Clone(src.moiety)
	b.property = slices.Clone(src.property)
	b.referenceInformation = src.referenceInformation
	b.structure = src.structure
	b.code = slices.Clone(src.code)
	b.name = slices.Clone(src.name)
	b.molecularWeight = slices.Clone(src.molecularWeight)
	b.relationship = slices.Clone(src.relationship)
	b.nucleicAcid = src.nucleicAcid
	b.polymer = src.polymer
	b.protein = src.protein
	b.sourceMaterial = src.sourceMaterial
	return b
}

// Build validates the builder state and returns a new SubstanceSpecification.
func (b *SubstanceSpecificationBuilder) Build() (*SubstanceSpecification, error) {
	const typ = "SubstanceSpecification"
	if err := validation.First(
		b.checkDomainResource(typ),
		validation.CheckList(typ, "source", b.source),
		checkReferences(typ, "source", b.source, "DocumentReference"),
		validation.CheckList(typ, "moiety", b.moiety),
		validation.CheckList(typ, "property", b.property),
		checkReference(typ, "referenceInformation", b.referenceInformation, "SubstanceReferenceInformation"),
		validation.CheckList(typ, "code", b.code),
		validation.CheckList(typ, "name", b.name),
		validation.CheckList(typ, "molecularWeight", b.molecularWeight),
		validation.CheckList(typ, "relationship", b.relationship),
		checkReference(typ, "nucleicAcid", b.nucleicAcid, "SubstanceNucleicAcid"),
		checkReference(typ, "polymer", b.polymer, "SubstancePolymer"),
		checkReference(typ, "protein", b.protein, "SubstanceProtein"),
		checkReference(typ, "sourceMaterial", b.sourceMaterial, "SubstanceSourceMaterial"),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecification{
		domainResource:       b.domainResource(),
		identifier:           b.identifier,
		typ:                  b.typ,
		status:               b.status,
		domain:               b.domain,
		description:          b.description,
		source:               slices.Clone(b.source),
		comment:              b.comment,
		moiety:               slices.Clone(b.moiety),
		property:             slices.Clone(b.property),
		referenceInformation: b.referenceInformation,
		structure:            b.structure,
		code:                 slices.Clone(b.code),
		name:                 slices.Clone(b.name),
		molecularWeight:      slices.Clone(b.molecularWeight),
		relationship:         slices.Clone(b.relationship),
		nucleicAcid:          b.nucleicAcid,
		polymer:              b.polymer,
		protein:              b.protein,
		sourceMaterial:       b.sourceMaterial,
	}, nil
}

// SubstanceSpecificationMoiety is a moiety of the substance.
// It is the SubstanceSpecification.moiety element.
type SubstanceSpecificationMoiety struct {
	backboneElement
	role             *CodeableConcept `fhir:"role,summary"`
	identifier       *Identifier      `fhir:"identifier,summary"`
	name             *String          `fhir:"name,summary"`
	stereochemistry  *CodeableConcept `fhir:"stereochemistry,summary"`
	opticalActivity  *CodeableConcept `fhir:"opticalActivity,summary"`
	molecularFormula *String          `fhir:"molecularFormula,summary"`
	amount           Element          `fhir:"amount[x],summary,choice=Quantity|string"`
}

// Role returns SubstanceSpecification.moiety.role.
func (s *SubstanceSpecificationMoiety) Role() *CodeableConcept { return s.role }

// Identifier returns SubstanceSpecification.moiety.identifier.
func (s *SubstanceSpecificationMoiety) Identifier() *Identifier { return s.identifier }

// Name returns SubstanceSpecification.moiety.name.
func (s *SubstanceSpecificationMoiety) Name() *String { return s.name }

// Stereochemistry returns SubstanceSpecification.moiety.stereochemistry.
func (s *SubstanceSpecificationMoiety) Stereochemistry() *CodeableConcept {
	return s.stereochemistry
}

// OpticalActivity returns SubstanceSpecification.moiety.opticalActivity.
func (s *SubstanceSpecificationMoiety) OpticalActivity() *CodeableConcept {
	return s.opticalActivity
}

// MolecularFormula returns SubstanceSpecification.moiety.molecularFormula.
func (s *SubstanceSpecificationMoiety) MolecularFormula() *String { return s.molecularFormula }

// Amount returns SubstanceSpecification.moiety.amount[x]: *Quantity or *String.
func (s *SubstanceSpecificationMoiety) Amount() Element { return s.amount }

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationMoiety) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationMoiety) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "role", s.role)
		accept(v, "identifier", s.identifier)
		accept(v, "name", s.name)
		accept(v, "stereochemistry", s.stereochemistry)
		accept(v, "opticalActivity", s.opticalActivity)
		accept(v, "molecularFormula", s.molecularFormula)
		accept(v, "amount", s.amount)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationMoiety) Equal(other *SubstanceSpecificationMoiety) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.role.Equal(other.role) &&
		s.identifier.Equal(other.identifier) &&
		s.name.Equal(other.name) &&
		s.stereochemistry.Equal(other.stereochemistry) &&
		s.opticalActivity.Equal(other.opticalActivity) &&
		s.molecularFormula.Equal(other.molecularFormula) &&
		equalBase(s.amount, other.amount)
}

func (s *SubstanceSpecificationMoiety) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationMoiety)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationMoiety) ToBuilder() *SubstanceSpecificationMoietyBuilder {
	return NewSubstanceSpecificationMoietyBuilder().From(s)
}

// SubstanceSpecificationMoietyBuilder builds SubstanceSpecificationMoiety values.
type SubstanceSpecificationMoietyBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationMoietyBuilder]
	role             *CodeableConcept
	identifier       *Identifier
	name             *String
	stereochemistry  *CodeableConcept
	opticalActivity  *CodeableConcept
	molecularFormula *String
	amount           Element
}

// NewSubstanceSpecificationMoietyBuilder creates an empty SubstanceSpecificationMoietyBuilder.
func NewSubstanceSpecificationMoietyBuilder() *SubstanceSpecificationMoietyBuilder {
	b := &SubstanceSpecificationMoietyBuilder{}
	b.self = b
	return b
}

// Role sets SubstanceSpecification.moiety.role.
func (b *SubstanceSpecificationMoietyBuilder) Role(role *CodeableConcept) *SubstanceSpecificationMoietyBuilder {
	b.role = role
	return b
}

// Identifier sets SubstanceSpecification.moiety.identifier.
func (b *SubstanceSpecificationMoietyBuilder) Identifier(identifier *Identifier) *SubstanceSpecificationMoietyBuilder {
	b.identifier = identifier
	return b
}

// Name sets SubstanceSpecification.moiety.name.
func (b *SubstanceSpecificationMoietyBuilder) Name(name *String) *SubstanceSpecificationMoietyBuilder {
	b.name = name
	return b
}

// Stereochemistry sets SubstanceSpecification.moiety.stereochemistry.
func (b *SubstanceSpecificationMoietyBuilder) Stereochemistry(stereochemistry *CodeableConcept) *SubstanceSpecificationMoietyBuilder {
	b.stereochemistry = stereochemistry
	return b
}

// OpticalActivity sets SubstanceSpecification.moiety.opticalActivity.
func (b *SubstanceSpecificationMoietyBuilder) OpticalActivity(opticalActivity *CodeableConcept) *SubstanceSpecificationMoietyBuilder {
	b.opticalActivity = opticalActivity
	return b
}

// MolecularFormula sets SubstanceSpecification.moiety.molecularFormula.
func (b *SubstanceSpecificationMoietyBuilder) MolecularFormula(molecularFormula *String) *SubstanceSpecificationMoietyBuilder {
	b.molecularFormula = molecularFormula
	return b
}

// Amount sets SubstanceSpecification.moiety.amount[x].
func (b *SubstanceSpecificationMoietyBuilder) Amount(amount Element) *SubstanceSpecificationMoietyBuilder {
	b.amount = amount
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationMoietyBuilder) From(src *SubstanceSpecificationMoiety) *SubstanceSpecificationMoietyBuilder {
	b.fromBackbone(&src.backboneElement)
	b.role = src.role
	b.identifier = src.identifier
	b.name = src.name
	b.stereochemistry = src.stereochemistry
	b.opticalActivity = src.opticalActivity
	b.molecularFormula = src.molecularFormula
	b.amount = src.amount
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationMoiety.
func (b *SubstanceSpecificationMoietyBuilder) Build() (*SubstanceSpecificationMoiety, error) {
	const typ = "SubstanceSpecification.moiety"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Choice(typ, "amount", b.amount, "Quantity", "string"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationMoiety{
		backboneElement:  b.backbone(),
		role:             b.role,
		identifier:       b.identifier,
		name:             b.name,
		stereochemistry:  b.stereochemistry,
		opticalActivity:  b.opticalActivity,
		molecularFormula: b.molecularFormula,
		amount:           b.amount,
	}, nil
}

func (b *SubstanceSpecificationMoietyBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.role != nil ||
		b.identifier != nil ||
		b.name != nil ||
		b.stereochemistry != nil ||
		b.opticalActivity != nil ||
		b.molecularFormula != nil ||
		b.amount != nil
}

// SubstanceSpecificationProperty is a general specification of a property of the substance.
// It is the SubstanceSpecification.property element.
type SubstanceSpecificationProperty struct {
	backboneElement
	category          *CodeableConcept `fhir:"category,summary"`
	code              *CodeableConcept `fhir:"code,summary"`
	parameters        *String          `fhir:"parameters,summary"`
	definingSubstance Element          `fhir:"definingSubstance[x],summary,choice=Reference|CodeableConcept,targets=SubstanceSpecification|Substance"`
	amount            Element          `fhir:"amount[x],summary,choice=Quantity|string"`
}

// Category returns SubstanceSpecification.property.category.
func (s *SubstanceSpecificationProperty) Category() *CodeableConcept { return s.category }

// Code returns SubstanceSpecification.property.code.
func (s *SubstanceSpecificationProperty) Code() *CodeableConcept { return s.code }

// Parameters returns SubstanceSpecification.property.parameters.
func (s *SubstanceSpecificationProperty) Parameters() *String { return s.parameters }

// DefiningSubstance returns SubstanceSpecification.property.definingSubstance[x]: *Reference or *CodeableConcept.
func (s *SubstanceSpecificationProperty) DefiningSubstance() Element { return s.definingSubstance }

// Amount returns SubstanceSpecification.property.amount[x]: *Quantity or *String.
func (s *SubstanceSpecificationProperty) Amount() Element { return s.amount }

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationProperty) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationProperty) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "category", s.category)
		accept(v, "code", s.code)
		accept(v, "parameters", s.parameters)
		accept(v, "definingSubstance", s.definingSubstance)
		accept(v, "amount", s.amount)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationProperty) Equal(other *SubstanceSpecificationProperty) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.category.Equal(other.category) &&
		s.code.Equal(other.code) &&
		s.parameters.Equal(other.parameters) &&
		equalBase(s.definingSubstance, other.definingSubstance) &&
		equalBase(s.amount, other.amount)
}

func (s *SubstanceSpecificationProperty) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationProperty)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationProperty) ToBuilder() *SubstanceSpecificationPropertyBuilder {
	return NewSubstanceSpecificationPropertyBuilder().From(s)
}

// SubstanceSpecificationPropertyBuilder builds SubstanceSpecificationProperty values.
type SubstanceSpecificationPropertyBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationPropertyBuilder]
	category          *CodeableConcept
	code              *CodeableConcept
	parameters        *String
	definingSubstance Element
	amount            Element
}

// NewSubstanceSpecificationPropertyBuilder creates an empty SubstanceSpecificationPropertyBuilder.
func NewSubstanceSpecificationPropertyBuilder() *SubstanceSpecificationPropertyBuilder {
	b := &SubstanceSpecificationPropertyBuilder{}
	b.self = b
	return b
}

// Category sets SubstanceSpecification.property.category.
func (b *SubstanceSpecificationPropertyBuilder) Category(category *CodeableConcept) *SubstanceSpecificationPropertyBuilder {
	b.category = category
	return b
}

// Code sets SubstanceSpecification.property.code.
func (b *SubstanceSpecificationPropertyBuilder) Code(code *CodeableConcept) *SubstanceSpecificationPropertyBuilder {
	b.code = code
	return b
}

// Parameters sets SubstanceSpecification.property.parameters.
func (b *SubstanceSpecificationPropertyBuilder) Parameters(parameters *String) *SubstanceSpecificationPropertyBuilder {
	b.parameters = parameters
	return b
}

// DefiningSubstance sets SubstanceSpecification.property.definingSubstance[x].
func (b *SubstanceSpecificationPropertyBuilder) DefiningSubstance(definingSubstance Element) *SubstanceSpecificationPropertyBuilder {
	b.definingSubstance = definingSubstance
	return b
}

// Amount sets SubstanceSpecification.property.amount[x].
func (b *SubstanceSpecificationPropertyBuilder) Amount(amount Element) *SubstanceSpecificationPropertyBuilder {
	b.amount = amount
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationPropertyBuilder) From(src *SubstanceSpecificationProperty) *SubstanceSpecificationPropertyBuilder {
	b.fromBackbone(&src.backboneElement)
	b.category = src.category
	b.code = src.code
	b.parameters = src.parameters
	b.definingSubstance = src.definingSubstance
	b.amount = src.amount
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationProperty.
func (b *SubstanceSpecificationPropertyBuilder) Build() (*SubstanceSpecificationProperty, error) {
	const typ = "SubstanceSpecification.property"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Choice(typ, "definingSubstance", b.definingSubstance, "Reference", "CodeableConcept"),
		checkChoiceReference(typ, "definingSubstance", b.definingSubstance, "SubstanceSpecification", "Substance"),
		validation.Choice(typ, "amount", b.amount, "Quantity", "string"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationProperty{
		backboneElement:   b.backbone(),
		category:          b.category,
		code:              b.code,
		parameters:        b.parameters,
		definingSubstance: b.definingSubstance,
		amount:            b.amount,
	}, nil
}

func (b *SubstanceSpecificationPropertyBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.category != nil ||
		b.code != nil ||
		b.parameters != nil ||
		b.definingSubstance != nil ||
		b.amount != nil
}

// SubstanceSpecificationStructure is the structural information of the substance.
// It is the SubstanceSpecification.structure element.
type SubstanceSpecificationStructure struct {
	backboneElement
	stereochemistry          *CodeableConcept                                       `fhir:"stereochemistry,summary"`
	opticalActivity          *CodeableConcept                                       `fhir:"opticalActivity,summary"`
	molecularFormula         *String                                                `fhir:"molecularFormula,summary"`
	molecularFormulaByMoiety *String                                                `fhir:"molecularFormulaByMoiety,summary"`
	isotope                  []*SubstanceSpecificationStructureIsotope              `fhir:"isotope,summary"`
	molecularWeight          *SubstanceSpecificationStructureIsotopeMolecularWeight `fhir:"molecularWeight,summary"`
	source                   []*Reference                                           `fhir:"source,summary,targets=DocumentReference"`
	representation           []*SubstanceSpecificationStructureRepresentation       `fhir:"representation,summary"`
}

// Stereochemistry returns SubstanceSpecification.structure.stereochemistry.
func (s *SubstanceSpecificationStructure) Stereochemistry() *CodeableConcept {
	return s.stereochemistry
}

// OpticalActivity returns SubstanceSpecification.structure.opticalActivity.
func (s *SubstanceSpecificationStructure) OpticalActivity() *CodeableConcept {
	return s.opticalActivity
}

// MolecularFormula returns SubstanceSpecification.structure.molecularFormula.
func (s *SubstanceSpecificationStructure) MolecularFormula() *String { return s.molecularFormula }

// MolecularFormulaByMoiety returns SubstanceSpecification.structure.molecularFormulaByMoiety.
func (s *SubstanceSpecificationStructure) MolecularFormulaByMoiety() *String {
	return s.molecularFormulaByMoiety
}

// Isotope returns SubstanceSpecification.structure.isotope.
func (s *SubstanceSpecificationStructure) Isotope() []*SubstanceSpecificationStructureIsotope {
	return s.isotope
}

// MolecularWeight returns SubstanceSpecification.structure.molecularWeight.
func (s *SubstanceSpecificationStructure) MolecularWeight() *SubstanceSpecificationStructureIsotopeMolecularWeight {
	return s.molecularWeight
}

// Source returns SubstanceSpecification.structure.source.
func (s *SubstanceSpecificationStructure) Source() []*Reference { return s.source }

// Representation returns SubstanceSpecification.structure.representation.
func (s *SubstanceSpecificationStructure) Representation() []*SubstanceSpecificationStructureRepresentation {
	return s.representation
}

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationStructure) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationStructure) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "stereochemistry", s.stereochemistry)
		accept(v, "opticalActivity", s.opticalActivity)
		accept(v, "molecularFormula", s.molecularFormula)
		accept(v, "molecularFormulaByMoiety", s.molecularFormulaByMoiety)
		acceptList(v, "isotope", s.isotope)
		accept(v, "molecularWeight", s.molecularWeight)
		acceptList(v, "source", s.source)
		acceptList(v, "representation", s.representation)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationStructure) Equal(other *SubstanceSpecificationStructure) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.stereochemistry.Equal(other.stereochemistry) &&
		s.opticalActivity.Equal(other.opticalActivity) &&
		s.molecularFormula.Equal(other.molecularFormula) &&
		s.molecularFormulaByMoiety.Equal(other.molecularFormulaByMoiety) &&
		equalList(s.isotope, other.isotope) &&
		s.molecularWeight.Equal(other.molecularWeight) &&
		equalList(s.source, other.source) &&
		equalList(s.representation, other.representation)
}

func (s *SubstanceSpecificationStructure) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationStructure)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationStructure) ToBuilder() *SubstanceSpecificationStructureBuilder {
	return NewSubstanceSpecificationStructureBuilder().From(s)
}

// SubstanceSpecificationStructureBuilder builds SubstanceSpecificationStructure values.
type SubstanceSpecificationStructureBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationStructureBuilder]
	stereochemistry          *CodeableConcept
	opticalActivity          *CodeableConcept
	molecularFormula         *String
	molecularFormulaByMoiety *String
	isotope                  []*SubstanceSpecificationStructureIsotope
	molecularWeight          *SubstanceSpecificationStructureIsotopeMolecularWeight
	source                   []*Reference
	representation           []*SubstanceSpecificationStructureRepresentation
}

// NewSubstanceSpecificationStructureBuilder creates an empty SubstanceSpecificationStructureBuilder.
func NewSubstanceSpecificationStructureBuilder() *SubstanceSpecificationStructureBuilder {
	b := &SubstanceSpecificationStructureBuilder{}
	b.self = b
	return b
}

// Stereochemistry sets SubstanceSpecification.structure.stereochemistry.
func (b *SubstanceSpecificationStructureBuilder) Stereochemistry(stereochemistry *CodeableConcept) *SubstanceSpecificationStructureBuilder {
	b.stereochemistry = stereochemistry
	return b
}

// OpticalActivity sets SubstanceSpecification.structure.opticalActivity.
func (b *SubstanceSpecificationStructureBuilder) OpticalActivity(opticalActivity *CodeableConcept) *SubstanceSpecificationStructureBuilder {
	b.opticalActivity = opticalActivity
	return b
}

// MolecularFormula sets SubstanceSpecification.structure.molecularFormula.
func (b *SubstanceSpecificationStructureBuilder) MolecularFormula(molecularFormula *String) *SubstanceSpecificationStructureBuilder {
	b.molecularFormula = molecularFormula
	return b
}

// MolecularFormulaByMoiety sets SubstanceSpecification.structure.molecularFormulaByMoiety.
func (b *SubstanceSpecificationStructureBuilder) MolecularFormulaByMoiety(molecularFormulaByMoiety *String) *SubstanceSpecificationStructureBuilder {
	b.molecularFormulaByMoiety = molecularFormulaByMoiety
	return b
}

// Isotope appends to SubstanceSpecification.structure.isotope.
func (b *SubstanceSpecificationStructureBuilder) Isotope(isotope ...*SubstanceSpecificationStructureIsotope) *SubstanceSpecificationStructureBuilder {
	b.isotope = append(b.isotope, isotope...)
	return b
}

// SetIsotope replaces SubstanceSpecification.structure.isotope.
func (b *SubstanceSpecificationStructureBuilder) SetIsotope(isotope []*SubstanceSpecificationStructureIsotope) *SubstanceSpecificationStructureBuilder {
	b.isotope = slices.Clone(isotope)
	return b
}

// MolecularWeight sets SubstanceSpecification.structure.molecularWeight.
func (b *SubstanceSpecificationStructureBuilder) MolecularWeight(molecularWeight *SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationStructureBuilder {
	b.molecularWeight = molecularWeight
	return b
}

// Source appends to SubstanceSpecification.structure.source.
func (b *SubstanceSpecificationStructureBuilder) Source(source ...*Reference) *SubstanceSpecificationStructureBuilder {
	b.source = append(b.source, source...)
	return b
}

// SetSource replaces SubstanceSpecification.structure.source.
func (b *SubstanceSpecificationStructureBuilder) SetSource(source []*Reference) *SubstanceSpecificationStructureBuilder {
	b.source = slices.Clone(source)
	return b
}

// Representation appends to SubstanceSpecification.structure.representation.
func (b *SubstanceSpecificationStructureBuilder) Representation(representation ...*SubstanceSpecificationStructureRepresentation) *SubstanceSpecificationStructureBuilder {
	b.representation = append(b.representation, representation...)
	return b
}

// SetRepresentation replaces SubstanceSpecification.structure.representation.
func (b *SubstanceSpecificationStructureBuilder) SetRepresentation(representation []*SubstanceSpecificationStructureRepresentation) *SubstanceSpecificationStructureBuilder {
	b.representation = slices.Clone(representation)
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationStructureBuilder) From(src *SubstanceSpecificationStructure) *SubstanceSpecificationStructureBuilder {
	b.fromBackbone(&src.backboneElement)
	b.stereochemistry = src.stereochemistry
	b.opticalActivity = src.opticalActivity
	b.molecularFormula = src.molecularFormula
	b.molecularFormulaByMoiety = src.molecularFormulaByMoiety
	b.isotope = slices.Clone(src.isotope)
	b.molecularWeight = src.molecularWeight
	b.source = slices.Clone(src.source)
	b.representation = slices.Clone(src.representation)
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationStructure.
func (b *SubstanceSpecificationStructureBuilder) Build() (*SubstanceSpecificationStructure, error) {
	const typ = "SubstanceSpecification.structure"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.CheckList(typ, "isotope", b.isotope),
		validation.CheckList(typ, "source", b.source),
		checkReferences(typ, "source", b.source, "DocumentReference"),
		validation.CheckList(typ, "representation", b.representation),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationStructure{
		backboneElement:          b.backbone(),
		stereochemistry:          b.stereochemistry,
		opticalActivity:          b.opticalActivity,
		molecularFormula:         b.molecularFormula,
		molecularFormulaByMoiety: b.molecularFormulaByMoiety,
		isotope:                  slices.Clone(b.isotope),
		molecularWeight:          b.molecularWeight,
		source:                   slices.Clone(b.source),
		representation:           slices.Clone(b.representation),
	}, nil
}

func (b *SubstanceSpecificationStructureBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.stereochemistry != nil ||
		b.opticalActivity != nil ||
		b.molecularFormula != nil ||
		b.molecularFormulaByMoiety != nil ||
		len(b.isotope) > 0 ||
		b.molecularWeight != nil ||
		len(b.source) > 0 ||
		len(b.representation) > 0
}

// SubstanceSpecificationStructureIsotope applies to a specific isotope of the substance.
// It is the SubstanceSpecification.structure.isotope element.
type SubstanceSpecificationStructureIsotope struct {
	backboneElement
	identifier      *Identifier                                            `fhir:"identifier,summary"`
	name            *CodeableConcept                                       `fhir:"name,summary"`
	substitution    *CodeableConcept                                       `fhir:"substitution,summary"`
	halfLife        *Quantity                                              `fhir:"halfLife,summary"`
	molecularWeight *SubstanceSpecificationStructureIsotopeMolecularWeight `fhir:"molecularWeight,summary"`
}

// Identifier returns SubstanceSpecification.structure.isotope.identifier.
func (s *SubstanceSpecificationStructureIsotope) Identifier() *Identifier { return s.identifier }

// Name returns SubstanceSpecification.structure.isotope.name.
func (s *SubstanceSpecificationStructureIsotope) Name() *CodeableConcept { return s.name }

// Substitution returns SubstanceSpecification.structure.isotope.substitution.
func (s *SubstanceSpecificationStructureIsotope) Substitution() *CodeableConcept {
	return s.substitution
}

// HalfLife returns SubstanceSpecification.structure.isotope.halfLife.
func (s *SubstanceSpecificationStructureIsotope) HalfLife() *Quantity { return s.halfLife }

// MolecularWeight returns SubstanceSpecification.structure.isotope.molecularWeight.
func (s *SubstanceSpecificationStructureIsotope) MolecularWeight() *SubstanceSpecificationStructureIsotopeMolecularWeight {
	return s.molecularWeight
}

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationStructureIsotope) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationStructureIsotope) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "identifier", s.identifier)
		accept(v, "name", s.name)
		accept(v, "substitution", s.substitution)
		accept(v, "halfLife", s.halfLife)
		accept(v, "molecularWeight", s.molecularWeight)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationStructureIsotope) Equal(other *SubstanceSpecificationStructureIsotope) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.identifier.Equal(other.identifier) &&
		s.name.Equal(other.name) &&
		s.substitution.Equal(other.substitution) &&
		s.halfLife.Equal(other.halfLife) &&
		s.molecularWeight.Equal(other.molecularWeight)
}

func (s *SubstanceSpecificationStructureIsotope) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationStructureIsotope)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationStructureIsotope) ToBuilder() *SubstanceSpecificationStructureIsotopeBuilder {
	return NewSubstanceSpecificationStructureIsotopeBuilder().From(s)
}

// SubstanceSpecificationStructureIsotopeBuilder builds SubstanceSpecificationStructureIsotope values.
type SubstanceSpecificationStructureIsotopeBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationStructureIsotopeBuilder]
	identifier      *Identifier
	name            *CodeableConcept
	substitution    *CodeableConcept
	halfLife        *Quantity
	molecularWeight *SubstanceSpecificationStructureIsotopeMolecularWeight
}

// NewSubstanceSpecificationStructureIsotopeBuilder creates an empty SubstanceSpecificationStructureIsotopeBuilder.
func NewSubstanceSpecificationStructureIsotopeBuilder() *SubstanceSpecificationStructureIsotopeBuilder {
	b := &SubstanceSpecificationStructureIsotopeBuilder{}
	b.self = b
	return b
}

// Identifier sets SubstanceSpecification.structure.isotope.identifier.
func (b *SubstanceSpecificationStructureIsotopeBuilder) Identifier(identifier *Identifier) *SubstanceSpecificationStructureIsotopeBuilder {
	b.identifier = identifier
	return b
}

// Name sets SubstanceSpecification.structure.isotope.name.
func (b *SubstanceSpecificationStructureIsotopeBuilder) Name(name *CodeableConcept) *SubstanceSpecificationStructureIsotopeBuilder {
	b.name = name
	return b
}

// Substitution sets SubstanceSpecification.structure.isotope.substitution.
func (b *SubstanceSpecificationStructureIsotopeBuilder) Substitution(substitution *CodeableConcept) *SubstanceSpecificationStructureIsotopeBuilder {
	b.substitution = substitution
	return b
}

// HalfLife sets SubstanceSpecification.structure.isotope.halfLife.
func (b *SubstanceSpecificationStructureIsotopeBuilder) HalfLife(halfLife *Quantity) *SubstanceSpecificationStructureIsotopeBuilder {
	b.halfLife = halfLife
	return b
}

// MolecularWeight sets SubstanceSpecification.structure.isotope.molecularWeight.
func (b *SubstanceSpecificationStructureIsotopeBuilder) MolecularWeight(molecularWeight *SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationStructureIsotopeBuilder {
	b.molecularWeight = molecularWeight
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationStructureIsotopeBuilder) From(src *SubstanceSpecificationStructureIsotope) *SubstanceSpecificationStructureIsotopeBuilder {
	b.fromBackbone(&src.backboneElement)
	b.identifier = src.identifier
	b.name = src.name
	b.substitution = src.substitution
	b.halfLife = src.halfLife
	b.molecularWeight = src.molecularWeight
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationStructureIsotope.
func (b *SubstanceSpecificationStructureIsotopeBuilder) Build() (*SubstanceSpecificationStructureIsotope, error) {
	const typ = "SubstanceSpecification.structure.isotope"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationStructureIsotope{
		backboneElement: b.backbone(),
		identifier:      b.identifier,
		name:            b.name,
		substitution:    b.substitution,
		halfLife:        b.halfLife,
		molecularWeight: b.molecularWeight,
	}, nil
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.identifier != nil ||
		b.name != nil ||
		b.substitution != nil ||
		b.halfLife != nil ||
		b.molecularWeight != nil
}

// SubstanceSpecificationStructureIsotopeMolecularWeight is the molecular weight or weight range.
// It is the SubstanceSpecification.structure.isotope.molecularWeight element.
type SubstanceSpecificationStructureIsotopeMolecularWeight struct {
	backboneElement
	method *CodeableConcept `fhir:"method,summary"`
	typ    *CodeableConcept `fhir:"type,summary"`
	amount *Quantity        `fhir:"amount,summary"`
}

// Method returns SubstanceSpecification.structure.isotope.molecularWeight.method.
func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) Method() *CodeableConcept {
	return s.method
}

// Type returns SubstanceSpecification.structure.isotope.molecularWeight.type.
func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) Type() *CodeableConcept {
	return s.typ
}

// Amount returns SubstanceSpecification.structure.isotope.molecularWeight.amount.
func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) Amount() *Quantity {
	return s.amount
}

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationStructureIsotopeMolecularWeight) FHIRType() string {
	return "BackboneElement"
}

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "method", s.method)
		accept(v, "type", s.typ)
		accept(v, "amount", s.amount)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) Equal(other *SubstanceSpecificationStructureIsotopeMolecularWeight) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.method.Equal(other.method) &&
		s.typ.Equal(other.typ) &&
		s.amount.Equal(other.amount)
}

func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationStructureIsotopeMolecularWeight)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationStructureIsotopeMolecularWeight) ToBuilder() *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	return NewSubstanceSpecificationStructureIsotopeMolecularWeightBuilder().From(s)
}

// SubstanceSpecificationStructureIsotopeMolecularWeightBuilder builds SubstanceSpecificationStructureIsotopeMolecularWeight values.
type SubstanceSpecificationStructureIsotopeMolecularWeightBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationStructureIsotopeMolecularWeightBuilder]
	method *CodeableConcept
	typ    *CodeableConcept
	amount *Quantity
}

// NewSubstanceSpecificationStructureIsotopeMolecularWeightBuilder creates an empty SubstanceSpecificationStructureIsotopeMolecularWeightBuilder.
func NewSubstanceSpecificationStructureIsotopeMolecularWeightBuilder() *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b := &SubstanceSpecificationStructureIsotopeMolecularWeightBuilder{}
	b.self = b
	return b
}

// Method sets SubstanceSpecification.structure.isotope.molecularWeight.method.
func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Method(method *CodeableConcept) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.method = method
	return b
}

// Type sets SubstanceSpecification.structure.isotope.molecularWeight.type.
func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Type(typ *CodeableConcept) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.typ = typ
	return b
}

// Amount sets SubstanceSpecification.structure.isotope.molecularWeight.amount.
func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Amount(amount *Quantity) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.amount = amount
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) From(src *SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.fromBackbone(&src.backboneElement)
	b.method = src.method
	b.typ = src.typ
	b.amount = src.amount
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationStructureIsotopeMolecularWeight.
func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Build() (*SubstanceSpecificationStructureIsotopeMolecularWeight, error) {
	const typ = "SubstanceSpecification.structure.isotope.molecularWeight"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationStructureIsotopeMolecularWeight{
		backboneElement: b.backbone(),
		method:          b.method,
		typ:             b.typ,
		amount:          b.amount,
	}, nil
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.method != nil ||
		b.typ != nil ||
		b.amount != nil
}

// SubstanceSpecificationStructureRepresentation is a molecular structural representation.
// It is the SubstanceSpecification.structure.representation element.
type SubstanceSpecificationStructureRepresentation struct {
	backboneElement
	typ            *CodeableConcept `fhir:"type,summary"`
	representation *String          `fhir:"representation,summary"`
	attachment     *Attachment      `fhir:"attachment,summary"`
}

// Type returns SubstanceSpecification.structure.representation.type.
func (s *SubstanceSpecificationStructureRepresentation) Type() *CodeableConcept { return s.typ }

// Representation returns SubstanceSpecification.structure.representation.representation.
func (s *SubstanceSpecificationStructureRepresentation) Representation() *String {
	return s.representation
}

// Attachment returns SubstanceSpecification.structure.representation.attachment.
func (s *SubstanceSpecificationStructureRepresentation) Attachment() *Attachment {
	return s.attachment
}

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationStructureRepresentation) FHIRType() string {
	return "BackboneElement"
}

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationStructureRepresentation) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "type", s.typ)
		accept(v, "representation", s.representation)
		accept(v, "attachment", s.attachment)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationStructureRepresentation) Equal(other *SubstanceSpecificationStructureRepresentation) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.typ.Equal(other.typ) &&
		s.representation.Equal(other.representation) &&
		s.attachment.Equal(other.attachment)
}

func (s *SubstanceSpecificationStructureRepresentation) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationStructureRepresentation)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationStructureRepresentation) ToBuilder() *SubstanceSpecificationStructureRepresentationBuilder {
	return NewSubstanceSpecificationStructureRepresentationBuilder().From(s)
}

// SubstanceSpecificationStructureRepresentationBuilder builds SubstanceSpecificationStructureRepresentation values.
type SubstanceSpecificationStructureRepresentationBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationStructureRepresentationBuilder]
	typ            *CodeableConcept
	representation *String
	attachment     *Attachment
}

// NewSubstanceSpecificationStructureRepresentationBuilder creates an empty SubstanceSpecificationStructureRepresentationBuilder.
func NewSubstanceSpecificationStructureRepresentationBuilder() *SubstanceSpecificationStructureRepresentationBuilder {
	b := &SubstanceSpecificationStructureRepresentationBuilder{}
	b.self = b
	return b
}

// Type sets SubstanceSpecification.structure.representation.type.
func (b *SubstanceSpecificationStructureRepresentationBuilder) Type(typ *CodeableConcept) *SubstanceSpecificationStructureRepresentationBuilder {
	b.typ = typ
	return b
}

// Representation sets SubstanceSpecification.structure.representation.representation.
func (b *SubstanceSpecificationStructureRepresentationBuilder) Representation(representation *String) *SubstanceSpecificationStructureRepresentationBuilder {
	b.representation = representation
	return b
}

// Attachment sets SubstanceSpecification.structure.representation.attachment.
func (b *SubstanceSpecificationStructureRepresentationBuilder) Attachment(attachment *Attachment) *SubstanceSpecificationStructureRepresentationBuilder {
	b.attachment = attachment
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationStructureRepresentationBuilder) From(src *SubstanceSpecificationStructureRepresentation) *SubstanceSpecificationStructureRepresentationBuilder {
	b.fromBackbone(&src.backboneElement)
	b.typ = src.typ
	b.representation = src.representation
	b.attachment = src.attachment
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationStructureRepresentation.
func (b *SubstanceSpecificationStructureRepresentationBuilder) Build() (*SubstanceSpecificationStructureRepresentation, error) {
	const typ = "SubstanceSpecification.structure.representation"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationStructureRepresentation{
		backboneElement: b.backbone(),
		typ:             b.typ,
		representation:  b.representation,
		attachment:      b.attachment,
	}, nil
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.typ != nil ||
		b.representation != nil ||
		b.attachment != nil
}

// SubstanceSpecificationCode is a code or identifier of the substance.
// It is the SubstanceSpecification.code element.
type SubstanceSpecificationCode struct {
	backboneElement
	code       *CodeableConcept `fhir:"code,summary"`
	status     *CodeableConcept `fhir:"status,summary"`
	statusDate *DateTime        `fhir:"statusDate,summary"`
	comment    *String          `fhir:"comment,summary"`
	source     []*Reference     `fhir:"source,summary,targets=DocumentReference"`
}

// Code returns SubstanceSpecification.code.code.
func (s *SubstanceSpecificationCode) Code() *CodeableConcept { return s.code }

// Status returns SubstanceSpecification.code.status.
func (s *SubstanceSpecificationCode) Status() *CodeableConcept { return s.status }

// StatusDate returns SubstanceSpecification.code.statusDate.
func (s *SubstanceSpecificationCode) StatusDate() *DateTime { return s.statusDate }

// Comment returns SubstanceSpecification.code.comment.
func (s *SubstanceSpecificationCode) Comment() *String { return s.comment }

// Source returns SubstanceSpecification.code.source.
func (s *SubstanceSpecificationCode) Source() []*Reference { return s.source }

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationCode) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationCode) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "code", s.code)
		accept(v, "status", s.status)
		accept(v, "statusDate", s.statusDate)
		accept(v, "comment", s.comment)
		acceptList(v, "source", s.source)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationCode) Equal(other *SubstanceSpecificationCode) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.code.Equal(other.code) &&
		s.status.Equal(other.status) &&
		s.statusDate.Equal(other.statusDate) &&
		s.comment.Equal(other.comment) &&
		equalList(s.source, other.source)
}

func (s *SubstanceSpecificationCode) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationCode)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationCode) ToBuilder() *SubstanceSpecificationCodeBuilder {
	return NewSubstanceSpecificationCodeBuilder().From(s)
}

// SubstanceSpecificationCodeBuilder builds SubstanceSpecificationCode values.
type SubstanceSpecificationCodeBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationCodeBuilder]
	code       *CodeableConcept
	status     *CodeableConcept
	statusDate *DateTime
	comment    *String
	source     []*Reference
}

// NewSubstanceSpecificationCodeBuilder creates an empty SubstanceSpecificationCodeBuilder.
func NewSubstanceSpecificationCodeBuilder() *SubstanceSpecificationCodeBuilder {
	b := &SubstanceSpecificationCodeBuilder{}
	b.self = b
	return b
}

// Code sets SubstanceSpecification.code.code.
func (b *SubstanceSpecificationCodeBuilder) Code(code *CodeableConcept) *SubstanceSpecificationCodeBuilder {
	b.code = code
	return b
}

// Status sets SubstanceSpecification.code.status.
func (b *SubstanceSpecificationCodeBuilder) Status(status *CodeableConcept) *SubstanceSpecificationCodeBuilder {
	b.status = status
	return b
}

// StatusDate sets SubstanceSpecification.code.statusDate.
func (b *SubstanceSpecificationCodeBuilder) StatusDate(statusDate *DateTime) *SubstanceSpecificationCodeBuilder {
	b.statusDate = statusDate
	return b
}

// Comment sets SubstanceSpecification.code.comment.
func (b *SubstanceSpecificationCodeBuilder) Comment(comment *String) *SubstanceSpecificationCodeBuilder {
	b.comment = comment
	return b
}

// Source appends to SubstanceSpecification.code.source.
func (b *SubstanceSpecificationCodeBuilder) Source(source ...*Reference) *SubstanceSpecificationCodeBuilder {
	b.source = append(b.source, source...)
	return b
}

// SetSource replaces SubstanceSpecification.code.source.
func (b *SubstanceSpecificationCodeBuilder) SetSource(source []*Reference) *SubstanceSpecificationCodeBuilder {
	b.source = slices.Clone(source)
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationCodeBuilder) From(src *SubstanceSpecificationCode) *SubstanceSpecificationCodeBuilder {
	b.fromBackbone(&src.backboneElement)
	b.code = src.code
	b.status = src.status
	b.statusDate = src.statusDate
	b.comment = src.comment
	b.source = slices.Clone(src.source)
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationCode.
func (b *SubstanceSpecificationCodeBuilder) Build() (*SubstanceSpecificationCode, error) {
	const typ = "SubstanceSpecification.code"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.CheckList(typ, "source", b.source),
		checkReferences(typ, "source", b.source, "DocumentReference"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationCode{
		backboneElement: b.backbone(),
		code:            b.code,
		status:          b.status,
		statusDate:      b.statusDate,
		comment:         b.comment,
		source:          slices.Clone(b.source),
	}, nil
}

func (b *SubstanceSpecificationCodeBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.code != nil ||
		b.status != nil ||
		b.statusDate != nil ||
		b.comment != nil ||
		len(b.source) > 0
}

// SubstanceSpecificationName is a name or naming system of the substance.
// It is the SubstanceSpecification.name element.
type SubstanceSpecificationName struct {
	backboneElement
	name         *String                               `fhir:"name,required,summary"`
	typ          *CodeableConcept                      `fhir:"type,summary"`
	status       *CodeableConcept                      `fhir:"status,summary"`
	preferred    *Boolean                              `fhir:"preferred,summary"`
	language     []*CodeableConcept                    `fhir:"language,summary"`
	domain       []*CodeableConcept                    `fhir:"domain,summary"`
	jurisdiction []*CodeableConcept                    `fhir:"jurisdiction,summary"`
	synonym      []*SubstanceSpecificationName         `fhir:"synonym,summary"`
	translation  []*SubstanceSpecificationName         `fhir:"translation,summary"`
	official     []*SubstanceSpecificationNameOfficial `fhir:"official,summary"`
	source       []*Reference                          `fhir:"source,summary,targets=DocumentReference"`
}

// Name returns SubstanceSpecification.name.name.
func (s *SubstanceSpecificationName) Name() *String { return s.name }

// Type returns SubstanceSpecification.name.type.
func (s *SubstanceSpecificationName) Type() *CodeableConcept { return s.typ }

// Status returns SubstanceSpecification.name.status.
func (s *SubstanceSpecificationName) Status() *CodeableConcept { return s.status }

// Preferred returns SubstanceSpecification.name.preferred.
func (s *SubstanceSpecificationName) Preferred() *Boolean { return s.preferred }

// Language returns SubstanceSpecification.name.language.
func (s *SubstanceSpecificationName) Language() []*CodeableConcept { return s.language }

// Domain returns SubstanceSpecification.name.domain.
func (s *SubstanceSpecificationName) Domain() []*CodeableConcept { return s.domain }

// Jurisdiction returns SubstanceSpecification.name.jurisdiction.
func (s *SubstanceSpecificationName) Jurisdiction() []*CodeableConcept { return s.jurisdiction }

// Synonym returns SubstanceSpecification.name.synonym.
func (s *SubstanceSpecificationName) Synonym() []*SubstanceSpecificationName { return s.synonym }

// Translation returns SubstanceSpecification.name.translation.
func (s *SubstanceSpecificationName) Translation() []*SubstanceSpecificationName {
	return s.translation
}

// Official returns SubstanceSpecification.name.official.
func (s *SubstanceSpecificationName) Official() []*SubstanceSpecificationNameOfficial {
	return s.official
}

// Source returns SubstanceSpecification.name.source.
func (s *SubstanceSpecificationName) Source() []*Reference { return s.source }

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationName) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationName) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "name", s.name)
		accept(v, "type", s.typ)
		accept(v, "status", s.status)
		accept(v, "preferred", s.preferred)
		acceptList(v, "language", s.language)
		acceptList(v, "domain", s.domain)
		acceptList(v, "jurisdiction", s.jurisdiction)
		acceptList(v, "synonym", s.synonym)
		acceptList(v, "translation", s.translation)
		acceptList(v, "official", s.official)
		acceptList(v, "source", s.source)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationName) Equal(other *SubstanceSpecificationName) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.name.Equal(other.name) &&
		s.typ.Equal(other.typ) &&
		s.status.Equal(other.status) &&
		s.preferred.Equal(other.preferred) &&
		equalList(s.language, other.language) &&
		equalList(s.domain, other.domain) &&
		equalList(s.jurisdiction, other.jurisdiction) &&
		equalList(s.synonym, other.synonym) &&
		equalList(s.translation, other.translation) &&
		equalList(s.official, other.official) &&
		equalList(s.source, other.source)
}

func (s *SubstanceSpecificationName) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationName)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationName) ToBuilder() *SubstanceSpecificationNameBuilder {
	return NewSubstanceSpecificationNameBuilder().From(s)
}

// SubstanceSpecificationNameBuilder builds SubstanceSpecificationName values.
type SubstanceSpecificationNameBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationNameBuilder]
	name         *String
	typ          *CodeableConcept
	status       *CodeableConcept
	preferred    *Boolean
	language     []*CodeableConcept
	domain       []*CodeableConcept
	jurisdiction []*CodeableConcept
	synonym      []*SubstanceSpecificationName
	translation  []*SubstanceSpecificationName
	official     []*SubstanceSpecificationNameOfficial
	source       []*Reference
}

// NewSubstanceSpecificationNameBuilder creates an empty SubstanceSpecificationNameBuilder.
func NewSubstanceSpecificationNameBuilder() *SubstanceSpecificationNameBuilder {
	b := &SubstanceSpecificationNameBuilder{}
	b.self = b
	return b
}

// Name sets SubstanceSpecification.name.name.
func (b *SubstanceSpecificationNameBuilder) Name(name *String) *SubstanceSpecificationNameBuilder {
	b.name = name
	return b
}

// Type sets SubstanceSpecification.name.type.
func (b *SubstanceSpecificationNameBuilder) Type(typ *CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.typ = typ
	return b
}

// Status sets SubstanceSpecification.name.status.
func (b *SubstanceSpecificationNameBuilder) Status(status *CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.status = status
	return b
}

// Preferred sets SubstanceSpecification.name.preferred.
func (b *SubstanceSpecificationNameBuilder) Preferred(preferred *Boolean) *SubstanceSpecificationNameBuilder {
	b.preferred = preferred
	return b
}

// Language appends to SubstanceSpecification.name.language.
func (b *SubstanceSpecificationNameBuilder) Language(language ...*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.language = append(b.language, language...)
	return b
}

// SetLanguage replaces SubstanceSpecification.name.language.
func (b *SubstanceSpecificationNameBuilder) SetLanguage(language []*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.language = slices.Clone(language)
	return b
}

// Domain appends to SubstanceSpecification.name.domain.
func (b *SubstanceSpecificationNameBuilder) Domain(domain ...*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.domain = append(b.domain, domain...)
	return b
}

// SetDomain replaces SubstanceSpecification.name.domain.
func (b *SubstanceSpecificationNameBuilder) SetDomain(domain []*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.domain = slices.Clone(domain)
	return b
}

// Jurisdiction appends to SubstanceSpecification.name.jurisdiction.
func (b *SubstanceSpecificationNameBuilder) Jurisdiction(jurisdiction ...*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.jurisdiction = append(b.jurisdiction, jurisdiction...)
	return b
}

// SetJurisdiction replaces SubstanceSpecification.name.jurisdiction.
func (b *SubstanceSpecificationNameBuilder) SetJurisdiction(jurisdiction []*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.jurisdiction = slices.Clone(jurisdiction)
	return b
}

// Synonym appends to SubstanceSpecification.name.synonym.
func (b *SubstanceSpecificationNameBuilder) Synonym(synonym ...*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.synonym = append(b.synonym, synonym...)
	return b
}

// SetSynonym replaces SubstanceSpecification.name.synonym.
func (b *SubstanceSpecificationNameBuilder) SetSynonym(synonym []*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.synonym = slices.Clone(synonym)
	return b
}

// Translation appends to SubstanceSpecification.name.translation.
func (b *SubstanceSpecificationNameBuilder) Translation(translation ...*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.translation = append(b.translation, translation...)
	return b
}

// SetTranslation replaces SubstanceSpecification.name.translation.
func (b *SubstanceSpecificationNameBuilder) SetTranslation(translation []*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.translation = slices.Clone(translation)
	return b
}

// Official appends to SubstanceSpecification.name.official.
func (b *SubstanceSpecificationNameBuilder) Official(official ...*SubstanceSpecificationNameOfficial) *SubstanceSpecificationNameBuilder {
	b.official = append(b.official, official...)
	return b
}

// SetOfficial replaces SubstanceSpecification.name.official.
func (b *SubstanceSpecificationNameBuilder) SetOfficial(official []*SubstanceSpecificationNameOfficial) *SubstanceSpecificationNameBuilder {
	b.official = slices.Clone(official)
	return b
}

// Source appends to SubstanceSpecification.name.source.
func (b *SubstanceSpecificationNameBuilder) Source(source ...*Reference) *SubstanceSpecificationNameBuilder {
	b.source = append(b.source, source...)
	return b
}

// SetSource replaces SubstanceSpecification.name.source.
func (b *SubstanceSpecificationNameBuilder) SetSource(source []*Reference) *SubstanceSpecificationNameBuilder {
	b.source = slices.Clone(source)
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationNameBuilder) From(src *SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.fromBackbone(&src.backboneElement)
	b.name = src.name
	b.typ = src.typ
	b.status = src.status
	b.preferred = src.preferred
	b.language = slices.Clone(src.language)
	b.domain = slices.Clone(src.domain)
	b.jurisdiction = slices.Clone(src.jurisdiction)
	b.synonym = slices.Clone(src.synonym)
	b.translation = slices.Clone(src.translation)
	b.official = slices.Clone(src.official)
	b.source = slices.Clone(src.source)
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationName.
func (b *SubstanceSpecificationNameBuilder) Build() (*SubstanceSpecificationName, error) {
	const typ = "SubstanceSpecification.name"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "name", b.name),
		validation.CheckList(typ, "language", b.language),
		validation.CheckList(typ, "domain", b.domain),
		validation.CheckList(typ, "jurisdiction", b.jurisdiction),
		validation.CheckList(typ, "synonym", b.synonym),
		validation.CheckList(typ, "translation", b.translation),
		validation.CheckList(typ, "official", b.official),
		validation.CheckList(typ, "source", b.source),
		checkReferences(typ, "source", b.source, "DocumentReference"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationName{
		backboneElement: b.backbone(),
		name:            b.name,
		typ:             b.typ,
		status:          b.status,
		preferred:       b.preferred,
		language:        slices.Clone(b.language),
		domain:          slices.Clone(b.domain),
		jurisdiction:    slices.Clone(b.jurisdiction),
		synonym:         slices.Clone(b.synonym),
		translation:     slices.Clone(b.translation),
		official:        slices.Clone(b.official),
		source:          slices.Clone(b.source),
	}, nil
}

func (b *SubstanceSpecificationNameBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.name != nil ||
		b.typ != nil ||
		b.status != nil ||
		b.preferred != nil ||
		len(b.language) > 0 ||
		len(b.domain) > 0 ||
		len(b.jurisdiction) > 0 ||
		len(b.synonym) > 0 ||
		len(b.translation) > 0 ||
		len(b.official) > 0 ||
		len(b.source) > 0
}

// SubstanceSpecificationNameOfficial details the official use of a name.
// It is the SubstanceSpecification.name.official element.
type SubstanceSpecificationNameOfficial struct {
	backboneElement
	authority *CodeableConcept `fhir:"authority,summary"`
	status    *CodeableConcept `fhir:"status,summary"`
	date      *DateTime        `fhir:"date,summary"`
}

// Authority returns SubstanceSpecification.name.official.authority.
func (s *SubstanceSpecificationNameOfficial) Authority() *CodeableConcept { return s.authority }

// Status returns SubstanceSpecification.name.official.status.
func (s *SubstanceSpecificationNameOfficial) Status() *CodeableConcept { return s.status }

// Date returns SubstanceSpecification.name.official.date.
func (s *SubstanceSpecificationNameOfficial) Date() *DateTime { return s.date }

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationNameOfficial) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationNameOfficial) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "authority", s.authority)
		accept(v, "status", s.status)
		accept(v, "date", s.date)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationNameOfficial) Equal(other *SubstanceSpecificationNameOfficial) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		s.authority.Equal(other.authority) &&
		s.status.Equal(other.status) &&
		s.date.Equal(other.date)
}

func (s *SubstanceSpecificationNameOfficial) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationNameOfficial)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationNameOfficial) ToBuilder() *SubstanceSpecificationNameOfficialBuilder {
	return NewSubstanceSpecificationNameOfficialBuilder().From(s)
}

// SubstanceSpecificationNameOfficialBuilder builds SubstanceSpecificationNameOfficial values.
type SubstanceSpecificationNameOfficialBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationNameOfficialBuilder]
	authority *CodeableConcept
	status    *CodeableConcept
	date      *DateTime
}

// NewSubstanceSpecificationNameOfficialBuilder creates an empty SubstanceSpecificationNameOfficialBuilder.
func NewSubstanceSpecificationNameOfficialBuilder() *SubstanceSpecificationNameOfficialBuilder {
	b := &SubstanceSpecificationNameOfficialBuilder{}
	b.self = b
	return b
}

// Authority sets SubstanceSpecification.name.official.authority.
func (b *SubstanceSpecificationNameOfficialBuilder) Authority(authority *CodeableConcept) *SubstanceSpecificationNameOfficialBuilder {
	b.authority = authority
	return b
}

// Status sets SubstanceSpecification.name.official.status.
func (b *SubstanceSpecificationNameOfficialBuilder) Status(status *CodeableConcept) *SubstanceSpecificationNameOfficialBuilder {
	b.status = status
	return b
}

// Date sets SubstanceSpecification.name.official.date.
func (b *SubstanceSpecificationNameOfficialBuilder) Date(date *DateTime) *SubstanceSpecificationNameOfficialBuilder {
	b.date = date
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationNameOfficialBuilder) From(src *SubstanceSpecificationNameOfficial) *SubstanceSpecificationNameOfficialBuilder {
	b.fromBackbone(&src.backboneElement)
	b.authority = src.authority
	b.status = src.status
	b.date = src.date
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationNameOfficial.
func (b *SubstanceSpecificationNameOfficialBuilder) Build() (*SubstanceSpecificationNameOfficial, error) {
	const typ = "SubstanceSpecification.name.official"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationNameOfficial{
		backboneElement: b.backbone(),
		authority:       b.authority,
		status:          b.status,
		date:            b.date,
	}, nil
}

func (b *SubstanceSpecificationNameOfficialBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.authority != nil ||
		b.status != nil ||
		b.date != nil
}

// SubstanceSpecificationRelationship links the substance to other substances.
// It is the SubstanceSpecification.relationship element.
type SubstanceSpecificationRelationship struct {
	backboneElement
	substance           Element          `fhir:"substance[x],summary,choice=Reference|CodeableConcept,targets=SubstanceSpecification"`
	relationship        *CodeableConcept `fhir:"relationship,summary"`
	isDefining          *Boolean         `fhir:"isDefining,summary"`
	amount              Element          `fhir:"amount[x],summary,choice=Quantity|Range|Ratio|string"`
	amountRatioLowLimit *Ratio           `fhir:"amountRatioLowLimit,summary"`
	amountType          *CodeableConcept `fhir:"amountType,summary"`
	source              []*Reference     `fhir:"source,summary,targets=DocumentReference"`
}

// Substance returns SubstanceSpecification.relationship.substance[x]: *Reference or *CodeableConcept.
func (s *SubstanceSpecificationRelationship) Substance() Element { return s.substance }

// Relationship returns SubstanceSpecification.relationship.relationship.
func (s *SubstanceSpecificationRelationship) Relationship() *CodeableConcept {
	return s.relationship
}

// IsDefining returns SubstanceSpecification.relationship.isDefining.
func (s *SubstanceSpecificationRelationship) IsDefining() *Boolean { return s.isDefining }

// Amount returns SubstanceSpecification.relationship.amount[x]: *Quantity, *Range, *Ratio or *String.
func (s *SubstanceSpecificationRelationship) Amount() Element { return s.amount }

// AmountRatioLowLimit returns SubstanceSpecification.relationship.amountRatioLowLimit.
func (s *SubstanceSpecificationRelationship) AmountRatioLowLimit() *Ratio {
	return s.amountRatioLowLimit
}

// AmountType returns SubstanceSpecification.relationship.amountType.
func (s *SubstanceSpecificationRelationship) AmountType() *CodeableConcept { return s.amountType }

// Source returns SubstanceSpecification.relationship.source.
func (s *SubstanceSpecificationRelationship) Source() []*Reference { return s.source }

// FHIRType returns "BackboneElement".
func (*SubstanceSpecificationRelationship) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (s *SubstanceSpecificationRelationship) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptBackbone(v)
		accept(v, "substance", s.substance)
		accept(v, "relationship", s.relationship)
		accept(v, "isDefining", s.isDefining)
		accept(v, "amount", s.amount)
		accept(v, "amountRatioLowLimit", s.amountRatioLowLimit)
		accept(v, "amountType", s.amountType)
		acceptList(v, "source", s.source)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SubstanceSpecificationRelationship) Equal(other *SubstanceSpecificationRelationship) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalBackbone(&other.backboneElement) &&
		equalBase(s.substance, other.substance) &&
		s.relationship.Equal(other.relationship) &&
		s.isDefining.Equal(other.isDefining) &&
		equalBase(s.amount, other.amount) &&
		s.amountRatioLowLimit.Equal(other.amountRatioLowLimit) &&
		s.amountType.Equal(other.amountType) &&
		equalList(s.source, other.source)
}

func (s *SubstanceSpecificationRelationship) equalBase(other Base) bool {
	o, ok := other.(*SubstanceSpecificationRelationship)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SubstanceSpecificationRelationship) ToBuilder() *SubstanceSpecificationRelationshipBuilder {
	return NewSubstanceSpecificationRelationshipBuilder().From(s)
}

// SubstanceSpecificationRelationshipBuilder builds SubstanceSpecificationRelationship values.
type SubstanceSpecificationRelationshipBuilder struct {
	backboneElementBuilder[*SubstanceSpecificationRelationshipBuilder]
	substance           Element
	relationship        *CodeableConcept
	isDefining          *Boolean
	amount              Element
	amountRatioLowLimit *Ratio
	amountType          *CodeableConcept
	source              []*Reference
}

// NewSubstanceSpecificationRelationshipBuilder creates an empty SubstanceSpecificationRelationshipBuilder.
func NewSubstanceSpecificationRelationshipBuilder() *SubstanceSpecificationRelationshipBuilder {
	b := &SubstanceSpecificationRelationshipBuilder{}
	b.self = b
	return b
}

// Substance sets SubstanceSpecification.relationship.substance[x].
func (b *SubstanceSpecificationRelationshipBuilder) Substance(substance Element) *SubstanceSpecificationRelationshipBuilder {
	b.substance = substance
	return b
}

// Relationship sets SubstanceSpecification.relationship.relationship.
func (b *SubstanceSpecificationRelationshipBuilder) Relationship(relationship *CodeableConcept) *SubstanceSpecificationRelationshipBuilder {
	b.relationship = relationship
	return b
}

// IsDefining sets SubstanceSpecification.relationship.isDefining.
func (b *SubstanceSpecificationRelationshipBuilder) IsDefining(isDefining *Boolean) *SubstanceSpecificationRelationshipBuilder {
	b.isDefining = isDefining
	return b
}

// Amount sets SubstanceSpecification.relationship.amount[x].
func (b *SubstanceSpecificationRelationshipBuilder) Amount(amount Element) *SubstanceSpecificationRelationshipBuilder {
	b.amount = amount
	return b
}

// AmountRatioLowLimit sets SubstanceSpecification.relationship.amountRatioLowLimit.
func (b *SubstanceSpecificationRelationshipBuilder) AmountRatioLowLimit(amountRatioLowLimit *Ratio) *SubstanceSpecificationRelationshipBuilder {
	b.amountRatioLowLimit = amountRatioLowLimit
	return b
}

// AmountType sets SubstanceSpecification.relationship.amountType.
func (b *SubstanceSpecificationRelationshipBuilder) AmountType(amountType *CodeableConcept) *SubstanceSpecificationRelationshipBuilder {
	b.amountType = amountType
	return b
}

// Source appends to SubstanceSpecification.relationship.source.
func (b *SubstanceSpecificationRelationshipBuilder) Source(source ...*Reference) *SubstanceSpecificationRelationshipBuilder {
	b.source = append(b.source, source...)
	return b
}

// SetSource replaces SubstanceSpecification.relationship.source.
func (b *SubstanceSpecificationRelationshipBuilder) SetSource(source []*Reference) *SubstanceSpecificationRelationshipBuilder {
	b.source = slices.Clone(source)
	return b
}

// From copies every element of src into the builder.
func (b *SubstanceSpecificationRelationshipBuilder) From(src *SubstanceSpecificationRelationship) *SubstanceSpecificationRelationshipBuilder {
	b.fromBackbone(&src.backboneElement)
	b.substance = src.substance
	b.relationship = src.relationship
	b.isDefining = src.isDefining
	b.amount = src.amount
	b.amountRatioLowLimit = src.amountRatioLowLimit
	b.amountType = src.amountType
	b.source = slices.Clone(src.source)
	return b
}

// Build validates the builder state and returns a new SubstanceSpecificationRelationship.
func (b *SubstanceSpecificationRelationshipBuilder) Build() (*SubstanceSpecificationRelationship, error) {
	const typ = "SubstanceSpecification.relationship"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Choice(typ, "substance", b.substance, "Reference", "CodeableConcept"),
		checkChoiceReference(typ, "substance", b.substance, "SubstanceSpecification"),
		validation.Choice(typ, "amount", b.amount, "Quantity", "Range", "Ratio", "string"),
		validation.CheckList(typ, "source", b.source),
		checkReferences(typ, "source", b.source, "DocumentReference"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SubstanceSpecificationRelationship{
		backboneElement:     b.backbone(),
		substance:           b.substance,
		relationship:        b.relationship,
		isDefining:          b.isDefining,
		amount:              b.amount,
		amountRatioLowLimit: b.amountRatioLowLimit,
		amountType:          b.amountType,
		source:              slices.Clone(b.source),
	}, nil
}

func (b *SubstanceSpecificationRelationshipBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.substance != nil ||
		b.relationship != nil ||
		b.isDefining != nil ||
		b.amount != nil ||
		b.amountRatioLowLimit != nil ||
		b.amountType != nil ||
		len(b.source) > 0
}
