package dom

import (
	"fmt"
	"strings"
)

// Builder assembles a document tree from an ordered stream of tokenizer
// events: StartTag, EndTag and Text. The events are expected to come from a
// conformant streaming HTML tokenizer; producing them is the caller's
// responsibility (see the html package for an adapter).
//
// The builder keeps an explicit stack of open frames — tag, attributes and
// the children accumulated so far — and converts a frame into an immutable
// *ElementNode only when its end tag arrives. It performs no error
// recovery: a mismatched or extra end tag aborts construction.
//
// A Builder must not be shared between goroutines.
type Builder struct {
	frames []openFrame
	root   Node
	line   int
	offset int
}

// openFrame is the builder-local representation of an element whose end tag
// has not arrived yet.
type openFrame struct {
	tag      string
	attrs    []Attribute
	children []Node
}

// NewBuilder returns an empty Builder positioned at line 1, offset 0.
func NewBuilder() *Builder {
	return &Builder{line: 1}
}

// SetPosition records the tokenizer's current position in the markup input.
// It is reported in any subsequent BuildError.
func (b *Builder) SetPosition(line, offset int) {
	b.line = line
	b.offset = offset
}

// errorf builds a *BuildError at the current position.
func (b *Builder) errorf(format string, args ...any) error {
	return &BuildError{Line: b.line, Offset: b.offset, Why: fmt.Sprintf(format, args...)}
}

// StartTag opens a new element. Tags in the void-element set are closed
// immediately with a synthetic end tag, so the self-closing and unclosed
// spellings of a void element produce identical trees.
func (b *Builder) StartTag(name string, attrs []Attribute) {
	tag := strings.ToLower(name)
	b.frames = append(b.frames, openFrame{tag: tag, attrs: normalizeAttrs(attrs)})
	if IsVoid(tag) {
		// Cannot fail: the frame just pushed is the innermost open element.
		_ = b.EndTag(tag)
	}
}

// Text appends a text node to the innermost open element. Text arriving
// before any element has opened has no home and is discarded.
func (b *Builder) Text(content string) {
	if len(b.frames) == 0 {
		return
	}
	top := &b.frames[len(b.frames)-1]
	top.children = append(top.children, &TextNode{data: content})
}

// EndTag closes the innermost open element. The name must match that
// element's tag case-insensitively; a mismatch, or an end tag with no open
// element at all, is a fatal construction error.
func (b *Builder) EndTag(name string) error {
	tag := strings.ToLower(name)
	if len(b.frames) == 0 {
		return b.errorf("extra end tag: %q", tag)
	}
	top := b.frames[len(b.frames)-1]
	if top.tag != tag {
		return b.errorf("expecting end tag %q, got %q", top.tag, tag)
	}
	b.frames = b.frames[:len(b.frames)-1]

	node := &ElementNode{tag: top.tag, attrs: top.attrs, children: top.children}
	for _, child := range top.children {
		switch c := child.(type) {
		case *ElementNode:
			c.parent = node
		case *TextNode:
			c.parent = node
		}
	}

	if len(b.frames) == 0 {
		// First completed top-level element becomes the root; any later
		// top-level siblings are lost.
		if b.root == nil {
			b.root = node
		}
		return nil
	}
	parent := &b.frames[len(b.frames)-1]
	parent.children = append(parent.children, node)
	return nil
}

// Root finishes processing and returns the root of the built tree. It
// fails if no element was ever opened, or if the bottom-most element is
// still open.
func (b *Builder) Root() (Node, error) {
	if b.root != nil {
		return b.root, nil
	}
	if len(b.frames) == 0 {
		return nil, b.errorf("no root tag")
	}
	return nil, b.errorf("root tag not closed yet")
}
