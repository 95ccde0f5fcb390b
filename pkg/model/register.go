package model

import "github.com/gofhir/model/pkg/registry"

func init() {
	primitive := func(name string, sample any) { registry.MustRegister(registry.KindPrimitive, name, sample) }
	primitive("base64Binary", (*Base64Binary)(nil))
	primitive("boolean", (*Boolean)(nil))
	primitive("canonical", (*Canonical)(nil))
	primitive("code", (*Code)(nil))
	primitive("date", (*Date)(nil))
	primitive("dateTime", (*DateTime)(nil))
	primitive("decimal", (*Decimal)(nil))
	primitive("id", (*Id)(nil))
	primitive("instant", (*Instant)(nil))
	primitive("integer", (*Integer)(nil))
	primitive("markdown", (*Markdown)(nil))
	primitive("oid", (*Oid)(nil))
	primitive("positiveInt", (*PositiveInt)(nil))
	primitive("string", (*String)(nil))
	primitive("time", (*Time)(nil))
	primitive("unsignedInt", (*UnsignedInt)(nil))
	primitive("uri", (*Uri)(nil))
	primitive("url", (*Url)(nil))
	primitive("uuid", (*Uuid)(nil))
	primitive("xhtml", (*Xhtml)(nil))

	complexType := func(name string, sample any) { registry.MustRegister(registry.KindComplex, name, sample) }
	complexType("Annotation", (*Annotation)(nil))
	complexType("Attachment", (*Attachment)(nil))
	complexType("CodeableConcept", (*CodeableConcept)(nil))
	complexType("Coding", (*Coding)(nil))
	complexType("Duration", (*Duration)(nil))
	complexType("Extension", (*Extension)(nil))
	complexType("Identifier", (*Identifier)(nil))
	complexType("Meta", (*Meta)(nil))
	complexType("Money", (*Money)(nil))
	complexType("Narrative", (*Narrative)(nil))
	complexType("Period", (*Period)(nil))
	complexType("Quantity", (*Quantity)(nil))
	complexType("Range", (*Range)(nil))
	complexType("Ratio", (*Ratio)(nil))
	complexType("Reference", (*Reference)(nil))
	complexType("Signature", (*Signature)(nil))
	complexType("SimpleQuantity", (*SimpleQuantity)(nil))
	complexType("Timing", (*Timing)(nil))

	backbone := func(path string, sample any) { registry.MustRegister(registry.KindBackbone, path, sample) }
	backbone("Timing.repeat", (*TimingRepeat)(nil))
	backbone("Bundle.link", (*BundleLink)(nil))
	backbone("Bundle.entry", (*BundleEntry)(nil))
	backbone("Bundle.entry.search", (*BundleEntrySearch)(nil))
	backbone("Bundle.entry.request", (*BundleEntryRequest)(nil))
	backbone("Bundle.entry.response", (*BundleEntryResponse)(nil))
	backbone("ChargeItem.performer", (*ChargeItemPerformer)(nil))
	backbone("CoverageEligibilityRequest.supportingInfo", (*CoverageEligibilityRequestSupportingInfo)(nil))
	backbone("CoverageEligibilityRequest.insurance", (*CoverageEligibilityRequestInsurance)(nil))
	backbone("CoverageEligibilityRequest.item", (*CoverageEligibilityRequestItem)(nil))
	backbone("CoverageEligibilityRequest.item.diagnosis", (*CoverageEligibilityRequestItemDiagnosis)(nil))
	backbone("OperationOutcome.issue", (*OperationOutcomeIssue)(nil))
	backbone("SubstanceSpecification.moiety", (*SubstanceSpecificationMoiety)(nil))
	backbone("SubstanceSpecification.property", (*SubstanceSpecificationProperty)(nil))
	backbone("SubstanceSpecification.structure", (*SubstanceSpecificationStructure)(nil))
	backbone("SubstanceSpecification.structure.isotope", (*SubstanceSpecificationStructureIsotope)(nil))
	backbone("SubstanceSpecification.structure.isotope.molecularWeight", (*SubstanceSpecificationStructureIsotopeMolecularWeight)(nil))
	backbone("SubstanceSpecification.structure.representation", (*SubstanceSpecificationStructureRepresentation)(nil))
	backbone("SubstanceSpecification.code", (*SubstanceSpecificationCode)(nil))
	backbone("SubstanceSpecification.name", (*SubstanceSpecificationName)(nil))
	backbone("SubstanceSpecification.name.official", (*SubstanceSpecificationNameOfficial)(nil))
	backbone("SubstanceSpecification.relationship", (*SubstanceSpecificationRelationship)(nil))

	resourceType := func(name string, sample any) { registry.MustRegister(registry.KindResource, name, sample) }
	resourceType("Bundle", (*Bundle)(nil))
	resourceType("ChargeItem", (*ChargeItem)(nil))
	resourceType("CoverageEligibilityRequest", (*CoverageEligibilityRequest)(nil))
	resourceType("OperationOutcome", (*OperationOutcome)(nil))
	resourceType("SubstanceSpecification", (*SubstanceSpecification)(nil))
}
