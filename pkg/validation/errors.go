package validation

import (
	"github.com/pkg/errors"

	"github.com/gofhir/model/pkg/issue"
)

// Kinds of construction failures. Match them with errors.Is.
var (
	ErrRequired          = errors.New("required element missing")
	ErrEmptyList         = errors.New("list must not be empty")
	ErrNilListItem       = errors.New("list contains a nil item")
	ErrInvalidChoice     = errors.New("invalid choice type")
	ErrReferenceType     = errors.New("invalid reference target type")
	ErrBinding           = errors.New("code not in required value set")
	ErrInvalidValue      = errors.New("invalid primitive value")
	ErrNoValueOrChildren = errors.New("element has neither value nor children")
)

// Error describes why a model value could not be built.
type Error struct {
	// Path is the FHIRPath of the offending element, e.g. "ChargeItem.status".
	Path string
	// Element is the element name, e.g. "status".
	Element string
	// Kind is one of the Err* sentinels.
	Kind error
	// Detail carries the offending value or type, when there is one.
	Detail string

	id     issue.DiagnosticID
	params map[string]any
}

func newError(typ, element string, kind error, detail string, id issue.DiagnosticID, params map[string]any) error {
	path := typ
	if element != "" {
		path = typ + "." + element
	}
	if params == nil {
		params = map[string]any{}
	}
	params["path"] = path
	return errors.WithStack(&Error{
		Path:    path,
		Element: element,
		Kind:    kind,
		Detail:  detail,
		id:      id,
		params:  params,
	})
}

// Error implements error.
func (e *Error) Error() string {
	return issue.FormatDiagnostic(e.id, e.params)
}

// Unwrap returns the failure kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Issue converts the error into an OperationOutcome issue.
func (e *Error) Issue() issue.Issue {
	iss := issue.NewIssue(e.id, e.params, e.Path)
	iss.Source = "model"
	return iss
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ToResult collects err into an issue result. Errors that did not originate
// from construction checks are reported as processing failures.
func ToResult(err error) *issue.Result {
	result := issue.NewResult()
	if err == nil {
		return result
	}
	if e, ok := AsError(err); ok {
		result.AddIssue(e.Issue())
		return result
	}
	result.AddError(issue.CodeProcessing, err.Error())
	return result
}
