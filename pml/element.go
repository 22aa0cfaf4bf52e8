package pml

import (
	"iter"
	"strings"
)

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of a parsed order document.
//
// Children are owned by their parent and the tree is never modified after
// [Build] returns it. Character data is split between Text, found inside the
// element before its first child, and the Tail of each child, found after
// that child's end tag. Name and attribute names keep any prefix.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
	Tail     string
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}

	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// TextContent returns all character data inside e in document order, its
// own Tail excluded. For a leaf this is exactly its Text.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}

	if len(e.Children) == 0 {
		return e.Text
	}

	var sb strings.Builder

	e.writeText(&sb)

	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	sb.WriteString(e.Text)

	for _, c := range e.Children {
		c.writeText(sb)
		sb.WriteString(c.Tail)
	}
}

// All returns an iterator over every descendant of e (e excluded) in
// document order.
func (e *Element) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if e != nil {
			e.walk(yield)
		}
	}
}

func (e *Element) walk(yield func(*Element) bool) bool {
	for _, c := range e.Children {
		if !yield(c) || !c.walk(yield) {
			return false
		}
	}

	return true
}

// Find returns all descendants of e with the given tag name in document
// order.
func (e *Element) Find(name string) []*Element {
	var found []*Element

	for d := range e.All() {
		if d.Name == name {
			found = append(found, d)
		}
	}

	return found
}

// First returns the first descendant-or-self of e with the given tag name.
func (e *Element) First(name string) (*Element, bool) {
	if e == nil {
		return nil, false
	}

	if e.Name == name {
		return e, true
	}

	for d := range e.All() {
		if d.Name == name {
			return d, true
		}
	}

	return nil, false
}
