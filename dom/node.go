// Package dom is the abstract tree surface the xpath evaluator is built
// against. It intentionally knows nothing about HTML parsing or
// sanitization — producing a well-formed root Element from raw markup is
// an upstream collaborator's job, not this package's.
package dom

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Attr is a single (name, value) pair. Element.Attributes returns these in
// document order; attribute names are unique per element.
type Attr struct {
	Name  string
	Value string
}

// Element is the only capability the evaluator requires of a tree node. Any
// implementation satisfying it — a sanitized HTML DOM, a hand-built test
// fixture, an XML document wrapper — can be evaluated against.
type Element interface {
	// Name returns the element's case-sensitive tag name.
	Name() string
	// Parent returns the enclosing element, or ok=false at the root.
	Parent() (parent Element, ok bool)
	// ChildElements returns direct element children in document order.
	// Non-element children (text, comments) are omitted.
	ChildElements() []Element
	// ChildElementsNamed returns direct element children whose Name
	// matches name case-insensitively.
	ChildElementsNamed(name string) []Element
	// DescendantElements returns every element descendant in preorder,
	// excluding the receiver itself.
	DescendantElements() []Element
	// Attribute returns the value of the named attribute, if present.
	Attribute(name string) (value string, ok bool)
	// Attributes returns all attributes in document order.
	Attributes() []Attr
	// TextContent returns the concatenation of all descendant text,
	// per DOM Level 2. Non-element, non-text children contribute nothing.
	TextContent() string
}

// Node is a dependency-light, mutable Element implementation. It exists so
// tests and callers without their own DOM type have something concrete to
// build fixtures from; it is not a general-purpose HTML parser.
type Node struct {
	tag      string
	attrs    []Attr
	attrIdx  map[string]int
	parent   *Node
	children []any // element children are *Node, text children are textNode
}

type textNode string

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Node {
	return &Node{tag: tag, attrIdx: make(map[string]int)}
}

// SetAttr sets (or overwrites) an attribute, preserving first-insertion
// order for new names.
func (n *Node) SetAttr(name, value string) *Node {
	if i, ok := n.attrIdx[name]; ok {
		n.attrs[i].Value = value
		return n
	}
	n.attrIdx[name] = len(n.attrs)
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return n
}

// AddChild appends an element child and sets its parent pointer.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// AddText appends a text child.
func (n *Node) AddText(text string) *Node {
	n.children = append(n.children, textNode(text))
	return n
}

func (n *Node) Name() string { return n.tag }

func (n *Node) Parent() (Element, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (n *Node) ChildElements() []Element {
	var out []Element
	for _, c := range n.children {
		if e, ok := c.(*Node); ok {
			out = append(out, e)
		}
	}
	return out
}

func (n *Node) ChildElementsNamed(name string) []Element {
	var out []Element
	for _, c := range n.children {
		if e, ok := c.(*Node); ok && strings.EqualFold(e.tag, name) {
			out = append(out, e)
		}
	}
	return out
}

func (n *Node) DescendantElements() []Element {
	var out []Element
	var walk func(*Node)
	walk = func(e *Node) {
		for _, c := range e.children {
			if child, ok := c.(*Node); ok {
				out = append(out, child)
				walk(child)
			}
		}
	}
	walk(n)
	return out
}

func (n *Node) Attribute(name string) (string, bool) {
	if i, ok := n.attrIdx[name]; ok {
		return n.attrs[i].Value, true
	}
	return "", false
}

func (n *Node) Attributes() []Attr {
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

func (n *Node) TextContent() string {
	var sb strings.Builder
	var walk func(*Node)
	walk = func(e *Node) {
		for _, c := range e.children {
			switch v := c.(type) {
			case textNode:
				sb.WriteString(string(v))
			case *Node:
				walk(v)
			}
		}
	}
	walk(n)
	return norm.NFC.String(sb.String())
}
