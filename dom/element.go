package dom

import "strings"

// ElementNode is an element of the document tree. Tag and attribute names
// are normalized to lowercase at construction; attribute values are kept
// verbatim. Element nodes are created exclusively by the Builder and are
// immutable afterwards.
type ElementNode struct {
	tag      string
	attrs    []Attribute
	parent   Node
	children []Node
}

// Tag returns the lowercased tag name.
func (e *ElementNode) Tag() string {
	return e.tag
}

// Attr returns the value of the named attribute and whether it exists.
func (e *ElementNode) Attr(name string) (string, bool) {
	return lookupAttr(e.attrs, strings.ToLower(name))
}

// Attrs returns the element's attributes in source order.
func (e *ElementNode) Attrs() []Attribute {
	return e.attrs
}

// Parent returns the owning parent, or nil for the root.
func (e *ElementNode) Parent() Node {
	return e.parent
}

// Children returns the element's children in document order.
func (e *ElementNode) Children() []Node {
	return e.children
}

// Text returns the concatenation of all descendant text content.
func (e *ElementNode) Text() string {
	var sb strings.Builder
	for _, c := range e.children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

func (e *ElementNode) domNode() {}
