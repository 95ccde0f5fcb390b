// Package model is the FHIR R4 (4.0.1) object model.
//
// Every type is an immutable struct created through its builder:
//
//	status := model.ChargeItemStatusBillable.Code()
//	ci, err := model.NewChargeItemBuilder().
//		Status(status).
//		Code(code).
//		Subject(subject).
//		Build()
//
// Build checks required elements, non-empty and nil-free lists, choice
// types, reference targets and required bindings in element order and
// returns the first violation as a *validation.Error. ToBuilder returns a
// builder holding a copy of the value, so modified copies can be derived
// without touching the original.
//
// Values are traversed with Accept (see package visitor) and compared with
// Equal. Choice elements are typed Element and carry one of the types listed
// on their accessor. Each type registers its element metadata in
// registry.Default when the package is loaded.
package model
