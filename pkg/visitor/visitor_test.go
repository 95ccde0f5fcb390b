package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// node is a minimal Visitable following the same Accept template as the model.
type node struct {
	value    string
	children []*node
}

func (n *node) Accept(elementName string, elementIndex int, v Visitor) {
	if n == nil || !v.PreVisit(n) {
		return
	}
	v.VisitStart(elementName, elementIndex, n)
	if v.Visit(elementName, elementIndex, n) {
		if n.value != "" {
			v.VisitValue("value", -1, n.value)
		}
		for i, c := range n.children {
			c.Accept("child", i, v)
		}
	}
	v.VisitEnd(elementName, elementIndex, n)
	v.PostVisit(n)
}

type recorder struct {
	Default
	events []string
	skip   string
}

func (r *recorder) VisitStart(name string, _ int, _ Visitable) {
	r.events = append(r.events, "start:"+name)
}

func (r *recorder) Visit(name string, _ int, value Visitable) bool {
	r.events = append(r.events, "visit:"+name)
	return value.(*node).value != r.skip
}

func (r *recorder) VisitValue(name string, _ int, value any) {
	r.events = append(r.events, "value:"+value.(string))
}

func (r *recorder) VisitEnd(name string, _ int, _ Visitable) {
	r.events = append(r.events, "end:"+name)
}

func tree() *node {
	return &node{
		value: "root",
		children: []*node{
			{value: "a", children: []*node{{value: "a1"}}},
			{value: "b"},
		},
	}
}

func TestAcceptOrder(t *testing.T) {
	r := &recorder{}
	tree().Accept("Root", -1, r)

	assert.Equal(t, []string{
		"start:Root", "visit:Root", "value:root",
		"start:child", "visit:child", "value:a",
		"start:child", "visit:child", "value:a1", "end:child",
		"end:child",
		"start:child", "visit:child", "value:b", "end:child",
		"end:Root",
	}, r.events)
}

func TestVisitFalseSkipsChildren(t *testing.T) {
	r := &recorder{skip: "a"}
	tree().Accept("Root", -1, r)

	assert.NotContains(t, r.events, "value:a1")
	assert.Contains(t, r.events, "value:b")
}

func TestPaths(t *testing.T) {
	paths := Paths("Root", tree())

	assert.Equal(t, []string{
		"Root",
		"Root.value",
		"Root.child[0]",
		"Root.child[0].value",
		"Root.child[0].child[0]",
		"Root.child[0].child[0].value",
		"Root.child[1]",
		"Root.child[1].value",
	}, paths)
}

func TestCollectMarksLeaves(t *testing.T) {
	steps := Collect("Root", &node{value: "x"})

	assert.Len(t, steps, 2)
	assert.False(t, steps[0].Leaf)
	assert.True(t, steps[1].Leaf)
	assert.Equal(t, "x", steps[1].Value)
}

func TestFunc(t *testing.T) {
	var names []string
	f := Func(func(name string, index int, _ Visitable) bool {
		names = append(names, name)
		return index < 0
	})
	tree().Accept("Root", -1, f)

	// children of indexed nodes are not traversed
	assert.Equal(t, []string{"Root", "child", "child"}, names)
}
