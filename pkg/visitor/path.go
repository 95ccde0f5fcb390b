package visitor

import (
	"strconv"
	"strings"
)

// PathVisitor receives values together with their FHIRPath-style location,
// e.g. "Bundle.entry[0].resource.subject.reference".
type PathVisitor interface {
	VisitPath(path string, value Visitable) bool
	VisitPathValue(path string, value any)
}

// PathAware is a Visitor that tracks the path of the value being visited and
// forwards every value to a PathVisitor.
type PathAware struct {
	delegate PathVisitor
	stack    []string
}

var _ Visitor = (*PathAware)(nil)

// NewPathAware creates a PathAware visitor around delegate.
func NewPathAware(delegate PathVisitor) *PathAware {
	return &PathAware{delegate: delegate}
}

// Path returns the path of the value currently being visited.
func (p *PathAware) Path() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

func (p *PathAware) child(elementName string, elementIndex int) string {
	var sb strings.Builder
	if parent := p.Path(); parent != "" {
		sb.WriteString(parent)
		sb.WriteByte('.')
	}
	sb.WriteString(elementName)
	if elementIndex >= 0 {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(elementIndex))
		sb.WriteByte(']')
	}
	return sb.String()
}

// PreVisit implements Visitor.
func (p *PathAware) PreVisit(Visitable) bool { return true }

// VisitStart implements Visitor.
func (p *PathAware) VisitStart(elementName string, elementIndex int, _ Visitable) {
	p.stack = append(p.stack, p.child(elementName, elementIndex))
}

// Visit implements Visitor.
func (p *PathAware) Visit(_ string, _ int, value Visitable) bool {
	return p.delegate.VisitPath(p.Path(), value)
}

// VisitValue implements Visitor.
func (p *PathAware) VisitValue(elementName string, elementIndex int, value any) {
	p.delegate.VisitPathValue(p.child(elementName, elementIndex), value)
}

// VisitEnd implements Visitor.
func (p *PathAware) VisitEnd(string, int, Visitable) {
	p.stack = p.stack[:len(p.stack)-1]
}

// PostVisit implements Visitor.
func (p *PathAware) PostVisit(Visitable) {}

// Step is one entry of a traversal trace.
type Step struct {
	Path  string
	Value any
	// Leaf is true for plain Go values reported through VisitValue.
	Leaf bool
}

type collector struct {
	steps []Step
}

func (c *collector) VisitPath(path string, value Visitable) bool {
	c.steps = append(c.steps, Step{Path: path, Value: value})
	return true
}

func (c *collector) VisitPathValue(path string, value any) {
	c.steps = append(c.steps, Step{Path: path, Value: value, Leaf: true})
}

// Collect traverses root and returns every visited value in visit order.
func Collect(rootName string, root Visitable) []Step {
	c := &collector{}
	root.Accept(rootName, -1, NewPathAware(c))
	return c.steps
}

// Paths returns the paths of Collect in visit order.
func Paths(rootName string, root Visitable) []string {
	steps := Collect(rootName, root)
	paths := make([]string, len(steps))
	for i, s := range steps {
		paths[i] = s.Path
	}
	return paths
}
