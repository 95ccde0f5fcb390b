package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/issue"
)

var bdl1 = Constraint{
	ID:          "bdl-1",
	Level:       LevelRule,
	Location:    "Bundle",
	Description: "total only when a search or history",
	Expression:  "total.empty() or (type = 'searchset') or (type = 'history')",
	Source:      "http://hl7.org/fhir/StructureDefinition/Bundle",
}

func TestCompileCaches(t *testing.T) {
	c := NewCompiler(4)

	first, err := c.Compile(bdl1.Expression)
	require.NoError(t, err)
	second, err := c.Compile(bdl1.Expression)
	require.NoError(t, err)
	assert.Same(t, first, second)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
}

func TestCheckAll(t *testing.T) {
	c := NewCompiler(4)
	broken := Constraint{ID: "x-1", Level: LevelRule, Location: "Bundle.entry", Expression: "fullUrl.where("}

	assert.NoError(t, c.Check(bdl1))
	assert.Error(t, c.Check(broken))

	result := c.CheckAll([]Constraint{bdl1, broken})
	require.Len(t, result.Issues, 1)
	assert.Equal(t, string(issue.DiagConstraintCompileError), result.Issues[0].MessageID)
	assert.Equal(t, []string{"Bundle.entry"}, result.Issues[0].Expression)
	assert.Contains(t, result.Issues[0].Diagnostics, "x-1")
}

func TestValidate(t *testing.T) {
	c := NewCompiler(0)
	tests := []struct {
		name     string
		resource string
		errors   int
	}{
		{"searchset with total", `{"resourceType":"Bundle","type":"searchset","total":2}`, 0},
		{"document without total", `{"resourceType":"Bundle","type":"document"}`, 0},
		{"document with total", `{"resourceType":"Bundle","type":"document","total":2}`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Validate([]Constraint{bdl1}, []byte(tt.resource))
			require.NoError(t, err)
			assert.Equal(t, tt.errors, result.ErrorCount())
		})
	}
}

func TestValidateWarningLevel(t *testing.T) {
	c := NewCompiler(0)
	warn := bdl1
	warn.Level = LevelWarning

	result, err := c.Validate([]Constraint{warn}, []byte(`{"resourceType":"Bundle","type":"document","total":2}`))
	require.NoError(t, err)
	assert.Equal(t, 0, result.ErrorCount())
	assert.Equal(t, 1, result.WarningCount())
	assert.Contains(t, result.Issues[0].Diagnostics, "total only when a search or history")
}

func TestValidateSkipsOtherLocations(t *testing.T) {
	c := NewCompiler(0)
	nested := bdl1
	nested.Location = "Bundle.entry"

	result, err := c.Validate([]Constraint{nested}, []byte(`{"resourceType":"Bundle","type":"document","total":2}`))
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestValidateBadInput(t *testing.T) {
	c := NewCompiler(0)

	_, err := c.Validate([]Constraint{bdl1}, []byte(`{`))
	assert.Error(t, err)

	_, err = c.Validate([]Constraint{bdl1}, []byte(`{"type":"document"}`))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.True(t, bdl1.IsRule())

	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	c := NewCompiler(4)
	SetDefault(c)
	assert.Same(t, c, Default())
	SetDefault(nil)
	assert.Same(t, c, Default())
}
