// Package issue defines model issues aligned with FHIR OperationOutcome.
package issue

// Severity represents the severity of an issue.
type Severity string

// Severity constants aligned with FHIR IssueSeverity.
const (
	SeverityFatal       Severity = "fatal"
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// Code represents the type of issue (IssueType).
type Code string

// Code constants aligned with FHIR IssueType.
const (
	CodeInvalid       Code = "invalid"
	CodeStructure     Code = "structure"
	CodeRequired      Code = "required"
	CodeValue         Code = "value"
	CodeInvariant     Code = "invariant"
	CodeProcessing    Code = "processing"
	CodeNotSupported  Code = "not-supported"
	CodeNotFound      Code = "not-found"
	CodeTooLong       Code = "too-long"
	CodeCodeInvalid   Code = "code-invalid"
	CodeInformational Code = "informational"
)

// Issue represents a single issue.
type Issue struct {
	// Severity indicates the severity level (error, warning, etc.)
	Severity Severity

	// Code indicates the type of issue
	Code Code

	// Diagnostics is the human-readable description of the issue
	Diagnostics string

	// Expression contains FHIRPath expression(s) pointing to the issue location
	Expression []string

	// Source identifies the component that generated this issue
	Source string

	// MessageID is the identifier from the diagnostic catalog
	MessageID string
}

// IsError reports whether the issue is of error or fatal severity.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError || i.Severity == SeverityFatal
}

// Result holds a collection of issues.
type Result struct {
	Issues []Issue
}

// defaultIssueCapacity is the pre-allocated capacity for the Issues slice.
const defaultIssueCapacity = 16

// NewResult creates a new empty Result with pre-allocated capacity.
func NewResult() *Result {
	return &Result{
		Issues: make([]Issue, 0, defaultIssueCapacity),
	}
}

// AddIssue adds an issue to the result.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddError adds an error-level issue.
func (r *Result) AddError(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityError,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// AddWarning adds a warning-level issue.
func (r *Result) AddWarning(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityWarning,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// AddInfo adds an information-level issue.
func (r *Result) AddInfo(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityInformation,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// HasErrors returns true if there are any error-level issues.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	return r.count(func(i Issue) bool { return i.IsError() })
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(func(i Issue) bool { return i.Severity == SeverityWarning })
}

// InfoCount returns the number of information-level issues.
func (r *Result) InfoCount() int {
	return r.count(func(i Issue) bool { return i.Severity == SeverityInformation })
}

func (r *Result) count(match func(Issue) bool) int {
	count := 0
	for _, issue := range r.Issues {
		if match(issue) {
			count++
		}
	}
	return count
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Filter returns a new Result with only issues matching the given severity.
func (r *Result) Filter(severity Severity) *Result {
	filtered := NewResult()
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			filtered.Issues = append(filtered.Issues, issue)
		}
	}
	return filtered
}
