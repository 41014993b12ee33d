// Package dom provides an in-memory document tree for HTML markup: node
// types, navigation primitives over the tree, and a builder that assembles
// a validated tree from a stream of tokenizer events.
//
// Trees are immutable once built. A node's children are exclusively owned
// by it; parent references are non-owning back-references used only for
// upward navigation. Dropping the root drops the whole tree.
package dom

import "strings"

// Node is the capability set shared by every tree member. There are exactly
// two variants, *ElementNode and *TextNode; code that needs to distinguish
// them type-switches over these.
type Node interface {
	// Tag returns the lowercased tag name for elements and "" for text nodes.
	Tag() string

	// Attr returns the value of the named attribute and whether it exists.
	// Attribute names are case-insensitive; values are case-sensitive.
	Attr(name string) (string, bool)

	// Attrs returns the node's attributes in source order. The returned
	// slice is owned by the node and must not be modified.
	Attrs() []Attribute

	// Parent returns the owning parent, or nil for the root.
	Parent() Node

	// Children returns the node's children in document order. The returned
	// slice is owned by the node and must not be modified.
	Children() []Node

	// Text returns the concatenation of all descendant text content,
	// unescaped.
	Text() string

	// HTML returns the canonical markup form of the node.
	HTML() string

	// domNode restricts implementations to this package: the variant set is
	// closed by design of the tree model.
	domNode()
}

// Attribute is a single name/value pair on an element. Names are stored
// lowercased; values are kept verbatim.
type Attribute struct {
	Name  string
	Value string
}

// normalizeAttrs lowercases attribute names and collapses duplicates: a
// repeated name keeps the position of its first occurrence but takes the
// value of its last.
func normalizeAttrs(attrs []Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		name := strings.ToLower(a.Name)
		dup := false
		for i := range out {
			if out[i].Name == name {
				out[i].Value = a.Value
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, Attribute{Name: name, Value: a.Value})
		}
	}
	return out
}

// lookupAttr scans an attribute list for a (already lowercased) name.
func lookupAttr(attrs []Attribute, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Classes returns the whitespace-separated tokens of the node's class
// attribute, or nil if the node has none.
func Classes(n Node) []string {
	class, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}
