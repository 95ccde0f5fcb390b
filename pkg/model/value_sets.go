package model

// BundleType indicates the purpose of a bundle.
type BundleType string

// BundleType codes.
const (
	BundleTypeDocument            BundleType = "document"
	BundleTypeMessage             BundleType = "message"
	BundleTypeTransaction         BundleType = "transaction"
	BundleTypeTransactionResponse BundleType = "transaction-response"
	BundleTypeBatch               BundleType = "batch"
	BundleTypeBatchResponse       BundleType = "batch-response"
	BundleTypeHistory             BundleType = "history"
	BundleTypeSearchset           BundleType = "searchset"
	BundleTypeCollection          BundleType = "collection"
)

// ValueSet returns the canonical URL of the BundleType value set.
func (BundleType) ValueSet() string { return "http://hl7.org/fhir/ValueSet/bundle-type|4.0.1" }

// IsValid reports whether v is a code of the value set.
func (v BundleType) IsValid() bool {
	switch v {
	case BundleTypeDocument, BundleTypeMessage, BundleTypeTransaction, BundleTypeTransactionResponse,
		BundleTypeBatch, BundleTypeBatchResponse, BundleTypeHistory, BundleTypeSearchset,
		BundleTypeCollection:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v BundleType) Code() *CodeOf[BundleType] { return codeOf(v) }

// SearchEntryMode explains why an entry is in a search result set.
type SearchEntryMode string

// SearchEntryMode codes.
const (
	SearchEntryModeMatch   SearchEntryMode = "match"
	SearchEntryModeInclude SearchEntryMode = "include"
	SearchEntryModeOutcome SearchEntryMode = "outcome"
)

// ValueSet returns the canonical URL of the SearchEntryMode value set.
func (SearchEntryMode) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/search-entry-mode|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v SearchEntryMode) IsValid() bool {
	switch v {
	case SearchEntryModeMatch, SearchEntryModeInclude, SearchEntryModeOutcome:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v SearchEntryMode) Code() *CodeOf[SearchEntryMode] { return codeOf(v) }

// HTTPVerb is the HTTP verb of a batch or transaction entry.
type HTTPVerb string

// HTTPVerb codes.
const (
	HTTPVerbGET    HTTPVerb = "GET"
	HTTPVerbHEAD   HTTPVerb = "HEAD"
	HTTPVerbPOST   HTTPVerb = "POST"
	HTTPVerbPUT    HTTPVerb = "PUT"
	HTTPVerbDELETE HTTPVerb = "DELETE"
	HTTPVerbPATCH  HTTPVerb = "PATCH"
)

// ValueSet returns the canonical URL of the HTTPVerb value set.
func (HTTPVerb) ValueSet() string { return "http://hl7.org/fhir/ValueSet/http-verb|4.0.1" }

// IsValid reports whether v is a code of the value set.
func (v HTTPVerb) IsValid() bool {
	switch v {
	case HTTPVerbGET, HTTPVerbHEAD, HTTPVerbPOST, HTTPVerbPUT, HTTPVerbDELETE, HTTPVerbPATCH:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v HTTPVerb) Code() *CodeOf[HTTPVerb] { return codeOf(v) }

// ChargeItemStatus is the lifecycle status of a charge item.
type ChargeItemStatus string

// ChargeItemStatus codes.
const (
	ChargeItemStatusPlanned        ChargeItemStatus = "planned"
	ChargeItemStatusBillable       ChargeItemStatus = "billable"
	ChargeItemStatusNotBillable    ChargeItemStatus = "not-billable"
	ChargeItemStatusAborted        ChargeItemStatus = "aborted"
	ChargeItemStatusBilled         ChargeItemStatus = "billed"
	ChargeItemStatusEnteredInError ChargeItemStatus = "entered-in-error"
	ChargeItemStatusUnknown        ChargeItemStatus = "unknown"
)

// ValueSet returns the canonical URL of the ChargeItemStatus value set.
func (ChargeItemStatus) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v ChargeItemStatus) IsValid() bool {
	switch v {
	case ChargeItemStatusPlanned, ChargeItemStatusBillable, ChargeItemStatusNotBillable,
		ChargeItemStatusAborted, ChargeItemStatusBilled, ChargeItemStatusEnteredInError,
		ChargeItemStatusUnknown:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v ChargeItemStatus) Code() *CodeOf[ChargeItemStatus] { return codeOf(v) }

// FinancialResourceStatusCodes is the status of a financial resource.
type FinancialResourceStatusCodes string

// FinancialResourceStatusCodes codes.
const (
	FinancialResourceStatusCodesActive         FinancialResourceStatusCodes = "active"
	FinancialResourceStatusCodesCancelled      FinancialResourceStatusCodes = "cancelled"
	FinancialResourceStatusCodesDraft          FinancialResourceStatusCodes = "draft"
	FinancialResourceStatusCodesEnteredInError FinancialResourceStatusCodes = "entered-in-error"
)

// ValueSet returns the canonical URL of the FinancialResourceStatusCodes value set.
func (FinancialResourceStatusCodes) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/fm-status|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v FinancialResourceStatusCodes) IsValid() bool {
	switch v {
	case FinancialResourceStatusCodesActive, FinancialResourceStatusCodesCancelled,
		FinancialResourceStatusCodesDraft, FinancialResourceStatusCodesEnteredInError:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v FinancialResourceStatusCodes) Code() *CodeOf[FinancialResourceStatusCodes] {
	return codeOf(v)
}

// EligibilityRequestPurpose is the type of information requested in an eligibility request.
type EligibilityRequestPurpose string

// EligibilityRequestPurpose codes.
const (
	EligibilityRequestPurposeAuthRequirements EligibilityRequestPurpose = "auth-requirements"
	EligibilityRequestPurposeBenefits         EligibilityRequestPurpose = "benefits"
	EligibilityRequestPurposeDiscovery        EligibilityRequestPurpose = "discovery"
	EligibilityRequestPurposeValidation       EligibilityRequestPurpose = "validation"
)

// ValueSet returns the canonical URL of the EligibilityRequestPurpose value set.
func (EligibilityRequestPurpose) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/eligibilityrequest-purpose|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v EligibilityRequestPurpose) IsValid() bool {
	switch v {
	case EligibilityRequestPurposeAuthRequirements, EligibilityRequestPurposeBenefits,
		EligibilityRequestPurposeDiscovery, EligibilityRequestPurposeValidation:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v EligibilityRequestPurpose) Code() *CodeOf[EligibilityRequestPurpose] { return codeOf(v) }

// IdentifierUse identifies the purpose of an identifier.
type IdentifierUse string

// IdentifierUse codes.
const (
	IdentifierUseUsual     IdentifierUse = "usual"
	IdentifierUseOfficial  IdentifierUse = "official"
	IdentifierUseTemp      IdentifierUse = "temp"
	IdentifierUseSecondary IdentifierUse = "secondary"
	IdentifierUseOld       IdentifierUse = "old"
)

// ValueSet returns the canonical URL of the IdentifierUse value set.
func (IdentifierUse) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/identifier-use|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v IdentifierUse) IsValid() bool {
	switch v {
	case IdentifierUseUsual, IdentifierUseOfficial, IdentifierUseTemp, IdentifierUseSecondary,
		IdentifierUseOld:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v IdentifierUse) Code() *CodeOf[IdentifierUse] { return codeOf(v) }

// QuantityComparator tells how to interpret a quantity value.
type QuantityComparator string

// QuantityComparator codes.
const (
	QuantityComparatorLessThan       QuantityComparator = "<"
	QuantityComparatorLessOrEqual    QuantityComparator = "<="
	QuantityComparatorGreaterOrEqual QuantityComparator = ">="
	QuantityComparatorGreaterThan    QuantityComparator = ">"
)

// ValueSet returns the canonical URL of the QuantityComparator value set.
func (QuantityComparator) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/quantity-comparator|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v QuantityComparator) IsValid() bool {
	switch v {
	case QuantityComparatorLessThan, QuantityComparatorLessOrEqual, QuantityComparatorGreaterOrEqual,
		QuantityComparatorGreaterThan:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v QuantityComparator) Code() *CodeOf[QuantityComparator] { return codeOf(v) }

// NarrativeStatus is the status of a narrative.
type NarrativeStatus string

// NarrativeStatus codes.
const (
	NarrativeStatusGenerated  NarrativeStatus = "generated"
	NarrativeStatusExtensions NarrativeStatus = "extensions"
	NarrativeStatusAdditional NarrativeStatus = "additional"
	NarrativeStatusEmpty      NarrativeStatus = "empty"
)

// ValueSet returns the canonical URL of the NarrativeStatus value set.
func (NarrativeStatus) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/narrative-status|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v NarrativeStatus) IsValid() bool {
	switch v {
	case NarrativeStatusGenerated, NarrativeStatusExtensions, NarrativeStatusAdditional,
		NarrativeStatusEmpty:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v NarrativeStatus) Code() *CodeOf[NarrativeStatus] { return codeOf(v) }

// UnitsOfTime is a unit of time (UCUM).
type UnitsOfTime string

// UnitsOfTime codes.
const (
	UnitsOfTimeSecond UnitsOfTime = "s"
	UnitsOfTimeMinute UnitsOfTime = "min"
	UnitsOfTimeHour   UnitsOfTime = "h"
	UnitsOfTimeDay    UnitsOfTime = "d"
	UnitsOfTimeWeek   UnitsOfTime = "wk"
	UnitsOfTimeMonth  UnitsOfTime = "mo"
	UnitsOfTimeYear   UnitsOfTime = "a"
)

// ValueSet returns the canonical URL of the UnitsOfTime value set.
func (UnitsOfTime) ValueSet() string { return "http://hl7.org/fhir/ValueSet/units-of-time|4.0.1" }

// IsValid reports whether v is a code of the value set.
func (v UnitsOfTime) IsValid() bool {
	switch v {
	case UnitsOfTimeSecond, UnitsOfTimeMinute, UnitsOfTimeHour, UnitsOfTimeDay, UnitsOfTimeWeek,
		UnitsOfTimeMonth, UnitsOfTimeYear:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v UnitsOfTime) Code() *CodeOf[UnitsOfTime] { return codeOf(v) }

// DayOfWeek is a day of the week.
type DayOfWeek string

// DayOfWeek codes.
const (
	DayOfWeekMon DayOfWeek = "mon"
	DayOfWeekTue DayOfWeek = "tue"
	DayOfWeekWed DayOfWeek = "wed"
	DayOfWeekThu DayOfWeek = "thu"
	DayOfWeekFri DayOfWeek = "fri"
	DayOfWeekSat DayOfWeek = "sat"
	DayOfWeekSun DayOfWeek = "sun"
)

// ValueSet returns the canonical URL of the DayOfWeek value set.
func (DayOfWeek) ValueSet() string { return "http://hl7.org/fhir/ValueSet/days-of-week|4.0.1" }

// IsValid reports whether v is a code of the value set.
func (v DayOfWeek) IsValid() bool {
	switch v {
	case DayOfWeekMon, DayOfWeekTue, DayOfWeekWed, DayOfWeekThu, DayOfWeekFri, DayOfWeekSat,
		DayOfWeekSun:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v DayOfWeek) Code() *CodeOf[DayOfWeek] { return codeOf(v) }

// EventTiming is a real world event relative to which a schedule is applied.
type EventTiming string

// EventTiming codes.
const (
	EventTimingMORN      EventTiming = "MORN"
	EventTimingMORNEarly EventTiming = "MORN.early"
	EventTimingMORNLate  EventTiming = "MORN.late"
	EventTimingNOON      EventTiming = "NOON"
	EventTimingAFT       EventTiming = "AFT"
	EventTimingAFTEarly  EventTiming = "AFT.early"
	EventTimingAFTLate   EventTiming = "AFT.late"
	EventTimingEVE       EventTiming = "EVE"
	EventTimingEVEEarly  EventTiming = "EVE.early"
	EventTimingEVELate   EventTiming = "EVE.late"
	EventTimingNIGHT     EventTiming = "NIGHT"
	EventTimingPHS       EventTiming = "PHS"
	EventTimingHS        EventTiming = "HS"
	EventTimingWAKE      EventTiming = "WAKE"
	EventTimingC         EventTiming = "C"
	EventTimingCM        EventTiming = "CM"
	EventTimingCD        EventTiming = "CD"
	EventTimingCV        EventTiming = "CV"
	EventTimingAC        EventTiming = "AC"
	EventTimingACM       EventTiming = "ACM"
	EventTimingACD       EventTiming = "ACD"
	EventTimingACV       EventTiming = "ACV"
	EventTimingPC        EventTiming = "PC"
	EventTimingPCM       EventTiming = "PCM"
	EventTimingPCD       EventTiming = "PCD"
	EventTimingPCV       EventTiming = "PCV"
)

// ValueSet returns the canonical URL of the EventTiming value set.
func (EventTiming) ValueSet() string { return "http://hl7.org/fhir/ValueSet/event-timing|4.0.1" }

// IsValid reports whether v is a code of the value set.
func (v EventTiming) IsValid() bool {
	switch v {
	case EventTimingMORN, EventTimingMORNEarly, EventTimingMORNLate, EventTimingNOON, EventTimingAFT,
		EventTimingAFTEarly, EventTimingAFTLate, EventTimingEVE, EventTimingEVEEarly, EventTimingEVELate,
		EventTimingNIGHT, EventTimingPHS, EventTimingHS, EventTimingWAKE, EventTimingC, EventTimingCM,
		EventTimingCD, EventTimingCV, EventTimingAC, EventTimingACM, EventTimingACD, EventTimingACV,
		EventTimingPC, EventTimingPCM, EventTimingPCD, EventTimingPCV:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v EventTiming) Code() *CodeOf[EventTiming] { return codeOf(v) }

// IssueSeverity is the severity of an OperationOutcome issue.
type IssueSeverity string

// IssueSeverity codes.
const (
	IssueSeverityFatal       IssueSeverity = "fatal"
	IssueSeverityError       IssueSeverity = "error"
	IssueSeverityWarning     IssueSeverity = "warning"
	IssueSeverityInformation IssueSeverity = "information"
)

// ValueSet returns the canonical URL of the IssueSeverity value set.
func (IssueSeverity) ValueSet() string {
	return "http://hl7.org/fhir/ValueSet/issue-severity|4.0.1"
}

// IsValid reports whether v is a code of the value set.
func (v IssueSeverity) IsValid() bool {
	switch v {
	case IssueSeverityFatal, IssueSeverityError, IssueSeverityWarning, IssueSeverityInformation:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v IssueSeverity) Code() *CodeOf[IssueSeverity] { return codeOf(v) }

// IssueType is the type of an OperationOutcome issue.
type IssueType string

// IssueType codes.
const (
	IssueTypeInvalid         IssueType = "invalid"
	IssueTypeStructure       IssueType = "structure"
	IssueTypeRequired        IssueType = "required"
	IssueTypeValue           IssueType = "value"
	IssueTypeInvariant       IssueType = "invariant"
	IssueTypeSecurity        IssueType = "security"
	IssueTypeLogin           IssueType = "login"
	IssueTypeUnknown         IssueType = "unknown"
	IssueTypeExpired         IssueType = "expired"
	IssueTypeForbidden       IssueType = "forbidden"
	IssueTypeSuppressed      IssueType = "suppressed"
	IssueTypeProcessing      IssueType = "processing"
	IssueTypeNotSupported    IssueType = "not-supported"
	IssueTypeDuplicate       IssueType = "duplicate"
	IssueTypeMultipleMatches IssueType = "multiple-matches"
	IssueTypeNotFound        IssueType = "not-found"
	IssueTypeDeleted         IssueType = "deleted"
	IssueTypeTooLong         IssueType = "too-long"
	IssueTypeCodeInvalid     IssueType = "code-invalid"
	IssueTypeExtension       IssueType = "extension"
	IssueTypeTooCostly       IssueType = "too-costly"
	IssueTypeBusinessRule    IssueType = "business-rule"
	IssueTypeConflict        IssueType = "conflict"
	IssueTypeTransient       IssueType = "transient"
	IssueTypeLockError       IssueType = "lock-error"
	IssueTypeNoStore         IssueType = "no-store"
	IssueTypeException       IssueType = "exception"
	IssueTypeTimeout         IssueType = "timeout"
	IssueTypeIncomplete      IssueType = "incomplete"
	IssueTypeThrottled       IssueType = "throttled"
	IssueTypeInformational   IssueType = "informational"
)

// ValueSet returns the canonical URL of the IssueType value set.
func (IssueType) ValueSet() string { return "http://hl7.org/fhir/ValueSet/issue-type|4.0.1" }

// IsValid reports whether v is a code of the value set.
func (v IssueType) IsValid() bool {
	switch v {
	case IssueTypeInvalid, IssueTypeStructure, IssueTypeRequired, IssueTypeValue, IssueTypeInvariant,
		IssueTypeSecurity, IssueTypeLogin, IssueTypeUnknown, IssueTypeExpired, IssueTypeForbidden,
		IssueTypeSuppressed, IssueTypeProcessing, IssueTypeNotSupported, IssueTypeDuplicate,
		IssueTypeMultipleMatches, IssueTypeNotFound, IssueTypeDeleted, IssueTypeTooLong,
		IssueTypeCodeInvalid, IssueTypeExtension, IssueTypeTooCostly, IssueTypeBusinessRule,
		IssueTypeConflict, IssueTypeTransient, IssueTypeLockError, IssueTypeNoStore, IssueTypeException,
		IssueTypeTimeout, IssueTypeIncomplete, IssueTypeThrottled, IssueTypeInformational:
		return true
	}
	return false
}

// Code wraps v in a code element.
func (v IssueType) Code() *CodeOf[IssueType] { return codeOf(v) }
