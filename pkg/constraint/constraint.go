// Package constraint holds the invariants declared by FHIR types and compiles
// their FHIRPath expressions.
package constraint

import (
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/gofhir/fhirpath"
	"github.com/pkg/errors"

	"github.com/gofhir/model/pkg/cache"
	"github.com/gofhir/model/pkg/issue"
	"github.com/gofhir/model/pkg/logger"
)

// Level is the severity of a violated constraint.
type Level string

const (
	LevelRule    Level = "Rule"
	LevelWarning Level = "Warning"
)

// Constraint is an invariant declared on a type or element.
type Constraint struct {
	// ID is the constraint key, e.g. "bdl-1".
	ID    string
	Level Level
	// Location is the path the expression is evaluated on, e.g. "Bundle.entry".
	Location    string
	Description string
	Expression  string
	// Source is the canonical URL of the defining StructureDefinition.
	Source string
}

// IsRule reports whether a violation is an error.
func (c Constraint) IsRule() bool { return c.Level == LevelRule }

// Compiler compiles FHIRPath expressions and keeps the most recently used
// ones.
type Compiler struct {
	cache *cache.Cache[string, *fhirpath.Expression]
}

// NewCompiler creates a Compiler that keeps up to capacity compiled
// expressions.
func NewCompiler(capacity int) *Compiler {
	return &Compiler{cache: cache.New[string, *fhirpath.Expression](capacity)}
}

// Compile returns the compiled form of expr.
func (c *Compiler) Compile(expr string) (*fhirpath.Expression, error) {
	return c.cache.GetOrLoad(expr, func() (*fhirpath.Expression, error) {
		compiled, err := fhirpath.Compile(expr)
		if err != nil {
			return nil, errors.Wrapf(err, "compile %q", expr)
		}
		logger.Debug().Str("expression", expr).Msg("compiled constraint")
		return compiled, nil
	})
}

// Check reports whether the expression of con compiles.
func (c *Compiler) Check(con Constraint) error {
	_, err := c.Compile(con.Expression)
	return errors.Wrap(err, con.ID)
}

// CheckAll compiles every constraint and reports the ones that fail.
func (c *Compiler) CheckAll(constraints []Constraint) *issue.Result {
	result := issue.NewResult()
	for _, con := range constraints {
		if _, err := c.Compile(con.Expression); err != nil {
			result.AddErrorWithID(issue.DiagConstraintCompileError, map[string]any{
				"key":   con.ID,
				"error": err.Error(),
			}, con.Location)
		}
	}
	return result
}

// Evaluate evaluates con against a resource in FHIR JSON form. An empty
// result means the constraint does not apply and counts as satisfied.
func (c *Compiler) Evaluate(con Constraint, resource []byte) (bool, error) {
	expr, err := c.Compile(con.Expression)
	if err != nil {
		return false, err
	}
	out, err := expr.Evaluate(resource)
	if err != nil {
		return false, errors.Wrapf(err, "evaluate %s", con.ID)
	}
	if out.Empty() {
		return true, nil
	}
	// Non-boolean results are truthy.
	if ok, convErr := out.ToBoolean(); convErr == nil {
		return ok, nil
	}
	return true, nil
}

// Validate evaluates the constraints located on the root of a resource in
// FHIR JSON form. Constraints on nested elements are skipped.
func (c *Compiler) Validate(constraints []Constraint, resource []byte) (*issue.Result, error) {
	var head struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(resource, &head); err != nil {
		return nil, errors.Wrap(err, "decode resource")
	}
	if head.ResourceType == "" {
		return nil, errors.New("resource has no resourceType")
	}

	result := issue.NewResult()
	for _, con := range constraints {
		if con.Location != head.ResourceType {
			continue
		}
		ok, err := c.Evaluate(con, resource)
		if err != nil {
			result.AddWarningWithID(issue.DiagConstraintEvalError, map[string]any{
				"key":   con.ID,
				"error": err.Error(),
			}, head.ResourceType)
			continue
		}
		if ok {
			continue
		}
		params := map[string]any{"key": con.ID, "human": con.Description}
		if con.IsRule() {
			result.AddErrorWithID(issue.DiagConstraintFailed, params, head.ResourceType)
		} else {
			result.AddWarningWithID(issue.DiagConstraintFailed, params, head.ResourceType)
		}
	}
	return result, nil
}

// Stats returns the statistics of the expression cache.
func (c *Compiler) Stats() cache.Stats {
	return c.cache.Stats()
}

var defaultCompiler atomic.Pointer[Compiler]

func init() {
	defaultCompiler.Store(NewCompiler(cache.DefaultCapacity))
}

// Default returns the process wide Compiler.
func Default() *Compiler { return defaultCompiler.Load() }

// SetDefault replaces the process wide Compiler.
func SetDefault(c *Compiler) {
	if c != nil {
		defaultCompiler.Store(c)
	}
}
