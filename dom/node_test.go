package dom

import "testing"

func buildTree() *Node {
	root := NewElement("div")
	a := NewElement("span")
	a.AddText("Foo")
	b := NewElement("div")
	b.SetAttr("id", "t1")
	b.SetAttr("class", "inner")
	b.AddText("Bar")
	root.AddChild(a)
	root.AddChild(b)
	return root
}

func TestChildElements(t *testing.T) {
	root := buildTree()
	kids := root.ChildElements()
	if len(kids) != 2 {
		t.Fatalf("ChildElements() = %d elements, want 2", len(kids))
	}
	if kids[0].Name() != "span" || kids[1].Name() != "div" {
		t.Errorf("ChildElements() order = [%s %s], want [span div]", kids[0].Name(), kids[1].Name())
	}
}

func TestChildElementsNamedCaseInsensitive(t *testing.T) {
	root := buildTree()
	if got := root.ChildElementsNamed("DIV"); len(got) != 1 {
		t.Errorf("ChildElementsNamed(%q) = %d, want 1", "DIV", len(got))
	}
}

func TestDescendantElements(t *testing.T) {
	root := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	b.AddChild(c)
	root.AddChild(b)
	desc := root.DescendantElements()
	if len(desc) != 2 {
		t.Fatalf("DescendantElements() = %d, want 2", len(desc))
	}
	if desc[0].Name() != "b" || desc[1].Name() != "c" {
		t.Errorf("DescendantElements() order = [%s %s], want [b c]", desc[0].Name(), desc[1].Name())
	}
}

func TestAttributeLookup(t *testing.T) {
	root := buildTree()
	inner := root.ChildElements()[1]
	v, ok := inner.Attribute("id")
	if !ok || v != "t1" {
		t.Errorf("Attribute(%q) = (%q, %v), want (%q, true)", "id", v, ok, "t1")
	}
	if _, ok := inner.Attribute("missing"); ok {
		t.Errorf("Attribute(%q) ok = true, want false", "missing")
	}
}

func TestAttributesOrder(t *testing.T) {
	inner := buildTree().ChildElements()[1]
	attrs := inner.Attributes()
	if len(attrs) != 2 || attrs[0].Name != "id" || attrs[1].Name != "class" {
		t.Errorf("Attributes() = %v, want [id class] order", attrs)
	}
}

func TestTextContentConcatenatesDescendants(t *testing.T) {
	root := buildTree()
	if got, want := root.TextContent(), "FooBar"; got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
}

func TestParent(t *testing.T) {
	root := buildTree()
	child := root.ChildElements()[0]
	p, ok := child.Parent()
	if !ok || p.Name() != "div" {
		t.Errorf("Parent() = (%v, %v), want (div, true)", p, ok)
	}
	if _, ok := root.Parent(); ok {
		t.Errorf("root.Parent() ok = true, want false")
	}
}
