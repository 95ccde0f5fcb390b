package model

import (
	"slices"
	"strings"

	"github.com/gofhir/model/pkg/constraint"
	"github.com/gofhir/model/pkg/registry"
)

const sdBase = "http://hl7.org/fhir/StructureDefinition/"

func rule(id, location, description, expression string) constraint.Constraint {
	return invariant(constraint.LevelRule, id, location, description, expression)
}

func warning(id, location, description, expression string) constraint.Constraint {
	return invariant(constraint.LevelWarning, id, location, description, expression)
}

func invariant(level constraint.Level, id, location, description, expression string) constraint.Constraint {
	typeName, _, _ := strings.Cut(location, ".")
	return constraint.Constraint{
		ID:          id,
		Level:       level,
		Location:    location,
		Description: description,
		Expression:  expression,
		Source:      sdBase + typeName,
	}
}

func domainResourceConstraints(resourceType string) []constraint.Constraint {
	return []constraint.Constraint{
		rule("dom-2", resourceType,
			"If the resource is contained in another resource, it SHALL NOT contain nested Resources",
			"contained.contained.empty()"),
		rule("dom-3", resourceType,
			"If the resource is contained in another resource, it SHALL be referred to from elsewhere in the resource or SHALL refer to the containing resource",
			"contained.where((('#'+id in (%resource.descendants().reference | %resource.descendants().as(canonical) | %resource.descendants().as(uri) | %resource.descendants().as(url))) or descendants().where(reference = '#').exists() or descendants().where(as(canonical) = '#').exists() or descendants().where(as(canonical) = '#').exists()).not()).trace('unmatched', id).empty()"),
		rule("dom-4", resourceType,
			"If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
			"contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()"),
		rule("dom-5", resourceType,
			"If a resource is contained in another resource, it SHALL NOT have a security label",
			"contained.meta.security.empty()"),
		warning("dom-6", resourceType,
			"A resource should have narrative for robust management",
			"text.`div`.exists()"),
	}
}

func quantityCode(location string) constraint.Constraint {
	return rule("qty-3", location,
		"If a code for the unit is present, the system SHALL also be present",
		"code.empty() or system.exists()")
}

var declared = map[string][]constraint.Constraint{
	"Element": {
		rule("ele-1", "Element",
			"All FHIR elements must have a @value or children",
			"hasValue() or (children().count() > id.count())"),
	},
	"Extension": {
		rule("ext-1", "Extension",
			"Must have either extensions or value[x], not both",
			"extension.exists() != value.exists()"),
	},
	"Period": {
		rule("per-1", "Period",
			"If present, start SHALL have a lower value than end",
			"start.hasValue().not() or end.hasValue().not() or (start <= end)"),
	},
	"Quantity": {quantityCode("Quantity")},
	"SimpleQuantity": {
		quantityCode("SimpleQuantity"),
		rule("sqty-1", "SimpleQuantity",
			"The comparator is not used on a SimpleQuantity",
			"comparator.empty()"),
	},
	"Duration": {
		quantityCode("Duration"),
		rule("drt-1", "Duration",
			"There SHALL be a code if there is a value and it SHALL be an expression of time.  If system is present, it SHALL be UCUM.",
			"code.exists() implies ((system = %ucum) and value.exists())"),
	},
	"Range": {
		rule("rng-2", "Range",
			"If present, low SHALL have a lower value than high",
			"low.empty() or high.empty() or (low <= high)"),
	},
	"Ratio": {
		rule("rat-1", "Ratio",
			"Numerator and denominator SHALL both be present, or both are absent. If both are absent, there SHALL be some extension present",
			"(numerator.empty() xor denominator.exists()) and (numerator.exists() or extension.exists())"),
	},
	"Attachment": {
		rule("att-1", "Attachment",
			"If the Attachment has data, it SHALL have a contentType",
			"data.empty() or contentType.exists()"),
	},
	"Reference": {
		rule("ref-1", "Reference",
			"SHALL have a contained resource if a local reference is provided",
			"reference.startsWith('#').not() or (reference.substring(1).trace('url') in %rootResource.contained.id.trace('ids'))"),
	},
	"Narrative": {
		rule("txt-1", "Narrative.div",
			"The narrative SHALL contain only the basic html formatting elements and attributes described in chapters 7-11 (except section 4 of chapter 9) and 12.3 of the HTML 4.0 standard, <a> elements (either name or href), images and internally contained style attributes",
			"htmlChecks()"),
		rule("txt-2", "Narrative.div",
			"The narrative SHALL have some non-whitespace content",
			"htmlChecks()"),
	},
	"Timing.repeat": {
		rule("tim-1", "Timing.repeat",
			"if there's a duration, there needs to be duration units",
			"duration.empty() or durationUnit.exists()"),
		rule("tim-2", "Timing.repeat",
			"if there's a period, there needs to be period units",
			"period.empty() or periodUnit.exists()"),
		rule("tim-4", "Timing.repeat",
			"duration SHALL be a non-negative value",
			"duration.exists() implies duration >= 0"),
		rule("tim-5", "Timing.repeat",
			"period SHALL be a non-negative value",
			"period.exists() implies period >= 0"),
		rule("tim-6", "Timing.repeat",
			"If there's a periodMax, there must be a period",
			"periodMax.empty() or period.exists()"),
		rule("tim-7", "Timing.repeat",
			"If there's a durationMax, there must be a duration",
			"durationMax.empty() or duration.exists()"),
		rule("tim-8", "Timing.repeat",
			"If there's a countMax, there must be a count",
			"countMax.empty() or count.exists()"),
		rule("tim-9", "Timing.repeat",
			"If there's an offset, there must be a when (and not C, CM, CD, CV)",
			"offset.empty() or (when.exists() and ((when in ('C' | 'CM' | 'CD' | 'CV')).not()))"),
		rule("tim-10", "Timing.repeat",
			"If there's a timeOfDay, there cannot be a when, or vice versa",
			"timeOfDay.empty() or when.empty()"),
	},
	"Bundle": {
		rule("bdl-1", "Bundle",
			"total only when a search or history",
			"total.empty() or (type = 'searchset') or (type = 'history')"),
		rule("bdl-2", "Bundle",
			"entry.search only when a search",
			"entry.search.empty() or (type = 'searchset')"),
		rule("bdl-3", "Bundle",
			"entry.request mandatory for batch/transaction/history, otherwise prohibited",
			"entry.all(request.exists() = (%resource.type = 'batch' or %resource.type = 'transaction' or %resource.type = 'history'))"),
		rule("bdl-4", "Bundle",
			"entry.response mandatory for batch-response/transaction-response/history, otherwise prohibited",
			"entry.all(response.exists() = (%resource.type = 'batch-response' or %resource.type = 'transaction-response' or %resource.type = 'history'))"),
		rule("bdl-7", "Bundle",
			"FullUrl must be unique in a bundle, or else entries with the same fullUrl must have different meta.versionId (except in history bundles)",
			"(type = 'history') or entry.where(fullUrl.exists()).select(fullUrl&resource.meta.versionId).isDistinct()"),
		rule("bdl-9", "Bundle",
			"A document must have an identifier with a system and a value",
			"type = 'document' implies (identifier.system.exists() and identifier.value.exists())"),
		rule("bdl-10", "Bundle",
			"A document must have a date",
			"type = 'document' implies (timestamp.hasValue())"),
		rule("bdl-11", "Bundle",
			"A document must have a Composition as the first resource",
			"type = 'document' implies entry.first().resource.is(Composition)"),
		rule("bdl-12", "Bundle",
			"A message must have a MessageHeader as the first resource",
			"type = 'message' implies entry.first().resource.is(MessageHeader)"),
	},
	"Bundle.entry": {
		rule("bdl-5", "Bundle.entry",
			"must be a resource unless there's a request or response",
			"resource.exists() or request.exists() or response.exists()"),
		rule("bdl-8", "Bundle.entry",
			"fullUrl cannot be a version specific reference",
			"fullUrl.contains('/_history/').not()"),
	},
	"ChargeItem":                 domainResourceConstraints("ChargeItem"),
	"CoverageEligibilityRequest": domainResourceConstraints("CoverageEligibilityRequest"),
	"SubstanceSpecification":     domainResourceConstraints("SubstanceSpecification"),
	"OperationOutcome":           domainResourceConstraints("OperationOutcome"),
}

// ConstraintsOf returns the invariants declared on the named type or backbone
// element, e.g. "Bundle" or "Bundle.entry". ele-1 is declared on "Element".
func ConstraintsOf(name string) []constraint.Constraint {
	return slices.Clone(declared[name])
}

// Constraints returns the invariants declared on the type of b.
func Constraints(b Base) []constraint.Constraint {
	info, ok := registry.Default.LookupValue(b)
	if !ok {
		return nil
	}
	return ConstraintsOf(info.Name)
}

// AllConstraints returns every declared invariant ordered by location.
func AllConstraints() []constraint.Constraint {
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	slices.Sort(names)

	var all []constraint.Constraint
	for _, name := range names {
		all = append(all, declared[name]...)
	}
	return all
}
