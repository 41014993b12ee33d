// Package html adapts a conformant streaming HTML tokenizer —
// golang.org/x/net/html — into the event stream consumed by the dom
// package's Builder, turning markup text into a document tree.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/chrisuehlinger/seldom/dom"
)

// Parse tokenizes markup and builds a document tree, returning its root.
// If the markup contains multiple top-level elements, only the first is
// returned and the rest are lost. Malformed markup with mismatched tags
// fails with a *dom.BuildError; there is no error recovery.
func Parse(markup string) (dom.Node, error) {
	return ParseReader(strings.NewReader(markup))
}

// ParseReader is like Parse but consumes markup from a reader.
func ParseReader(r io.Reader) (dom.Node, error) {
	z := html.NewTokenizer(r)
	b := dom.NewBuilder()

	// Token positions for error reporting, derived from the raw bytes the
	// tokenizer has consumed. Line is 1-based, offset is 0-based within the
	// line, both pointing at the start of the current token.
	line, offset := 1, 0

	for {
		tt := z.Next()
		b.SetPosition(line, offset)

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return b.Root()

		case html.StartTagToken:
			tok := z.Token()
			b.StartTag(tok.Data, convertAttrs(tok.Attr))

		case html.SelfClosingTagToken:
			// The builder closes void elements itself; a self-closing
			// spelling of a non-void tag still opens a normal element, so
			// both spellings normalize to the same tree shape.
			tok := z.Token()
			b.StartTag(tok.Data, convertAttrs(tok.Attr))

		case html.EndTagToken:
			tok := z.Token()
			if err := b.EndTag(tok.Data); err != nil {
				return nil, err
			}

		case html.TextToken:
			b.Text(z.Token().Data)

		case html.CommentToken, html.DoctypeToken:
			// Comments and doctypes have no representation in the tree.
		}

		for _, c := range z.Raw() {
			if c == '\n' {
				line++
				offset = 0
			} else {
				offset++
			}
		}
	}
}

// convertAttrs converts tokenizer attributes to the builder's form,
// preserving source order.
func convertAttrs(attrs []html.Attribute) []dom.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]dom.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = dom.Attribute{Name: a.Key, Value: a.Val}
	}
	return out
}
