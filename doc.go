// Package fhirmodel is an immutable FHIR R4 object model for Go.
//
// The types live in package model. Every value is created through a builder
// that checks cardinality, choice types, reference targets and required
// bindings before the value exists:
//
//	import (
//	    fm "github.com/gofhir/model"
//	    "github.com/gofhir/model/pkg/model"
//	)
//
//	subject, err := model.NewReference("Patient/123")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	item, err := model.NewChargeItemBuilder().
//	    Status(model.ChargeItemStatusBillable.Code()).
//	    Code(code).
//	    Subject(subject).
//	    Build()
//	if err != nil {
//	    var verr *validation.Error
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.Path) // e.g. "ChargeItem.subject"
//	    }
//	}
//
// # Functional Options
//
// Optional checks are process wide and set with Configure:
//
//	restore := fm.Configure(
//	    fm.WithReferenceTypeChecks(false),
//	    fm.WithMaxStringLength(64*1024),
//	)
//	defer restore()
//
// # Packages
//
//   - model: the generated types, builders, Accept and Equal
//   - validation: the checks run by Build and the errors they return
//   - visitor: traversal of model values
//   - registry: element metadata read from the model's struct tags
//   - constraint: declared FHIRPath invariants and their evaluation
//   - schema: comparison of the model with StructureDefinitions
//   - issue: OperationOutcome-style diagnostics
package fhirmodel
