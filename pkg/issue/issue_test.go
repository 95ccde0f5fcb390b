package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	r := NewResult()
	require.NotNil(t, r)
	assert.Empty(t, r.Issues)
	assert.False(t, r.HasErrors())
}

func TestResultAddError(t *testing.T) {
	r := NewResult()
	r.AddError(CodeStructure, "Unknown element 'foo'", "ChargeItem.foo")

	require.Len(t, r.Issues, 1)
	assert.Equal(t, SeverityError, r.Issues[0].Severity)
	assert.Equal(t, CodeStructure, r.Issues[0].Code)
	assert.Equal(t, []string{"ChargeItem.foo"}, r.Issues[0].Expression)
	assert.True(t, r.HasErrors())
}

func TestResultCounts(t *testing.T) {
	r := NewResult()
	r.AddError(CodeRequired, "e1")
	r.AddIssue(Issue{Severity: SeverityFatal, Code: CodeProcessing})
	r.AddWarning(CodeInformational, "w1")
	r.AddInfo(CodeInformational, "i1")
	r.AddInfo(CodeInformational, "i2")

	assert.Equal(t, 2, r.ErrorCount())
	assert.Equal(t, 1, r.WarningCount())
	assert.Equal(t, 2, r.InfoCount())
}

func TestResultMergeAndFilter(t *testing.T) {
	a := NewResult()
	a.AddError(CodeRequired, "a")
	b := NewResult()
	b.AddWarning(CodeValue, "b")

	a.Merge(b)
	a.Merge(nil)
	require.Len(t, a.Issues, 2)

	warnings := a.Filter(SeverityWarning)
	require.Len(t, warnings.Issues, 1)
	assert.Equal(t, "b", warnings.Issues[0].Diagnostics)
}

func TestFormatDiagnostic(t *testing.T) {
	tests := []struct {
		name   string
		id     DiagnosticID
		params map[string]any
		want   string
	}{
		{
			name:   "required element",
			id:     DiagElementRequired,
			params: map[string]any{"path": "ChargeItem.status"},
			want:   "Missing required element 'ChargeItem.status'",
		},
		{
			name: "choice type lists allowed types sorted",
			id:   DiagInvalidChoiceType,
			params: map[string]any{
				"type":    "string",
				"path":    "ChargeItem.occurrence",
				"allowed": []string{"Timing", "Period", "dateTime"},
			},
			want: "Invalid choice type 'string' for ChargeItem.occurrence. Allowed: Period, Timing, dateTime",
		},
		{
			name: "unknown id falls back to the id",
			id:   DiagnosticID("NOPE"),
			want: "NOPE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDiagnostic(tt.id, tt.params))
		})
	}
}

func TestAddErrorWithID(t *testing.T) {
	r := NewResult()
	r.AddErrorWithID(DiagSchemaTargetMismatch, map[string]any{
		"path":     "ChargeItem.subject",
		"expected": []string{"Patient", "Group"},
		"actual":   []string{"Patient"},
	}, "ChargeItem.subject")

	require.Len(t, r.Issues, 1)
	iss := r.Issues[0]
	assert.Equal(t, SeverityWarning, iss.Severity, "template severity is kept")
	assert.Equal(t, string(DiagSchemaTargetMismatch), iss.MessageID)
	assert.Contains(t, iss.Diagnostics, "Group, Patient")

	r.AddWarningWithID(DiagElementRequired, map[string]any{"path": "X.y"})
	assert.Equal(t, SeverityWarning, r.Issues[1].Severity)
	assert.Equal(t, CodeRequired, r.Issues[1].Code)
}

func TestGetDiagnosticTemplate(t *testing.T) {
	tmpl, ok := GetDiagnosticTemplate(DiagBindingRequired)
	require.True(t, ok)
	assert.Equal(t, DiagBindingRequired, tmpl.ID)
	assert.Equal(t, CodeCodeInvalid, tmpl.Code)

	_, ok = GetDiagnosticTemplate("missing")
	assert.False(t, ok)
}
