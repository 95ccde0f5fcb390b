// Package visitor provides double-dispatch traversal of model values.
//
// Every resource, data type and backbone element implements Visitable. Accept
// drives the visitor through the value and its children in declaration order:
//
//	PreVisit -> VisitStart -> Visit -> children... -> VisitEnd -> PostVisit
//
// Children are only visited when Visit returns true. Child elements carried as
// plain Go values (element ids, extension urls, primitive values) are reported
// through VisitValue. Repeating elements pass their position as elementIndex;
// singletons pass -1.
package visitor

// Visitable is implemented by every model value.
type Visitable interface {
	Accept(elementName string, elementIndex int, v Visitor)
}

// Visitor receives callbacks while a Visitable is traversed.
type Visitor interface {
	// PreVisit decides whether the value is traversed at all.
	PreVisit(value Visitable) bool
	VisitStart(elementName string, elementIndex int, value Visitable)
	// Visit decides whether the children of the value are traversed.
	Visit(elementName string, elementIndex int, value Visitable) bool
	VisitValue(elementName string, elementIndex int, value any)
	VisitEnd(elementName string, elementIndex int, value Visitable)
	PostVisit(value Visitable)
}

// Default is a Visitor that does nothing and visits everything.
// Embed it to implement only the callbacks of interest.
type Default struct{}

var _ Visitor = Default{}

// PreVisit implements Visitor.
func (Default) PreVisit(Visitable) bool { return true }

// VisitStart implements Visitor.
func (Default) VisitStart(string, int, Visitable) {}

// Visit implements Visitor.
func (Default) Visit(string, int, Visitable) bool { return true }

// VisitValue implements Visitor.
func (Default) VisitValue(string, int, any) {}

// VisitEnd implements Visitor.
func (Default) VisitEnd(string, int, Visitable) {}

// PostVisit implements Visitor.
func (Default) PostVisit(Visitable) {}

// Func adapts a function to a Visitor that is called once per visited value.
type Func func(elementName string, elementIndex int, value Visitable) bool

var _ Visitor = Func(nil)

// PreVisit implements Visitor.
func (Func) PreVisit(Visitable) bool { return true }

// VisitStart implements Visitor.
func (Func) VisitStart(string, int, Visitable) {}

// Visit implements Visitor.
func (f Func) Visit(elementName string, elementIndex int, value Visitable) bool {
	return f(elementName, elementIndex, value)
}

// VisitValue implements Visitor.
func (Func) VisitValue(string, int, any) {}

// VisitEnd implements Visitor.
func (Func) VisitEnd(string, int, Visitable) {}

// PostVisit implements Visitor.
func (Func) PostVisit(Visitable) {}
