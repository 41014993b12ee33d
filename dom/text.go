package dom

// TextNode is a literal run of text in the document tree. It has no tag, no
// attributes, and no children.
//
// Two text nodes are the same node only if they are the same *TextNode
// pointer; content equality is deliberately not node equality. Compare
// Text() results when string comparison is wanted.
type TextNode struct {
	data   string
	parent Node
}

// Tag returns "" for text nodes.
func (t *TextNode) Tag() string {
	return ""
}

// Attr always reports the attribute as absent.
func (t *TextNode) Attr(name string) (string, bool) {
	return "", false
}

// Attrs returns nil for text nodes.
func (t *TextNode) Attrs() []Attribute {
	return nil
}

// Parent returns the owning parent, or nil.
func (t *TextNode) Parent() Node {
	return t.parent
}

// Children returns nil for text nodes.
func (t *TextNode) Children() []Node {
	return nil
}

// Text returns the literal, unescaped text content.
func (t *TextNode) Text() string {
	return t.data
}

func (t *TextNode) domNode() {}
