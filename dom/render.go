package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// voidElements is the fixed set of element types that can never have
// children and always self-terminate at the tree level.
// https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether tag names a void element. The check is
// case-insensitive.
func IsVoid(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// HTML returns the canonical markup form of the element: an open tag with
// escaped attribute values, the children's markup, and a close tag.
// Childless void elements render with self-closing syntax.
func (e *ElementNode) HTML() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Value))
		sb.WriteByte('"')
	}
	if len(e.children) == 0 {
		if IsVoid(e.tag) {
			sb.WriteString("/>")
		} else {
			sb.WriteString("></")
			sb.WriteString(e.tag)
			sb.WriteByte('>')
		}
		return sb.String()
	}
	sb.WriteByte('>')
	for _, c := range e.children {
		sb.WriteString(c.HTML())
	}
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
	return sb.String()
}

// HTML returns the escaped form of the text. Use Text for the raw content.
func (t *TextNode) HTML() string {
	return html.EscapeString(t.data)
}

// InnerHTML returns the markup of the node's children, without the node's
// own tags.
func InnerHTML(n Node) string {
	var sb strings.Builder
	for _, c := range n.Children() {
		sb.WriteString(c.HTML())
	}
	return sb.String()
}
