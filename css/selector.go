// Package css implements a selector engine over the dom package: a parser
// for a restricted subset of CSS Selectors Level 3 and a matcher that
// evaluates parsed selectors against document tree nodes.
//
// Supported grammar: type, universal, class, ID and attribute selectors,
// joined by the descendant, child, next-sibling and subsequent-sibling
// combinators, with comma-separated grouping. Pseudo-classes,
// pseudo-elements and namespace prefixes are rejected at parse time.
package css

import (
	"fmt"
	"regexp"
	"strings"
)

// Selector is one sequence of simple selectors together with its link to
// the sequence on its left. A full selector is a chain of these, held right
// to left: the rightmost (most specific) sequence is the head, and Previous
// walks toward the left end. Combinator describes the relation between this
// sequence and Previous.
//
// For instance, "main#main p.important > a[href]" parses into
//
//	Combinator: Child,      Tag: "a", Attrs: [href]          (head)
//	Combinator: Descendant, Tag: "p", Classes: [important]
//	Combinator: None,       Tag: "main", ID: "main"
type Selector struct {
	Tag        string // "" when absent; lowercased
	Classes    []string
	ID         string // "" when absent
	Attrs      []AttributeSelector
	Combinator CombinatorType
	Previous   *Selector
}

// SelectorGroup is a comma-separated list of independent selectors. The
// group matches a node as soon as any member matches.
type SelectorGroup []*Selector

// AttributeSelector is a single attribute predicate within a sequence.
// The name comparison is case-insensitive, the value comparison is
// case-sensitive.
type AttributeSelector struct {
	Name string // lowercased
	Op   AttributeOperator
	Val  string // meaningless when Op is AttrExists
}

// AttributeOperator is the closed set of attribute predicate kinds.
type AttributeOperator int

const (
	AttrExists    AttributeOperator = iota // [attr]
	AttrEquals                             // [attr=value]
	AttrIncludes                           // [attr~=value]
	AttrDashMatch                          // [attr|=value]
	AttrPrefix                             // [attr^=value]
	AttrSuffix                             // [attr$=value]
	AttrSubstring                          // [attr*=value]
)

// CombinatorType is the closed set of combinators relating two sequences.
type CombinatorType int

const (
	CombinatorNone              CombinatorType = iota // head of chain
	CombinatorDescendant                              // (whitespace)
	CombinatorChild                                   // >
	CombinatorNextSibling                             // +
	CombinatorSubsequentSibling                       // ~
)

// reIdentifier decides whether an attribute value can be rendered bare.
var reIdentifier = regexp.MustCompile(`^[\w-]+$`)

// String renders the group as equivalent selector text.
func (g SelectorGroup) String() string {
	parts := make([]string, len(g))
	for i, sel := range g {
		parts[i] = sel.String()
	}
	return strings.Join(parts, ", ")
}

// String renders the selector chain as equivalent (not necessarily
// byte-identical) selector text.
func (s *Selector) String() string {
	var sequences []string
	var delimiters []string
	for seq := s; seq != nil; seq = seq.Previous {
		sequences = append(sequences, seq.sequenceString())
		if seq.Previous == nil {
			break
		}
		switch seq.Combinator {
		case CombinatorDescendant:
			delimiters = append(delimiters, " ")
		case CombinatorChild:
			delimiters = append(delimiters, " > ")
		case CombinatorNextSibling:
			delimiters = append(delimiters, " + ")
		case CombinatorSubsequentSibling:
			delimiters = append(delimiters, " ~ ")
		default:
			panic(fmt.Sprintf("css: unexpected combinator %d in chain", seq.Combinator))
		}
	}
	var sb strings.Builder
	for i := len(sequences) - 1; i >= 0; i-- {
		sb.WriteString(sequences[i])
		if i > 0 {
			sb.WriteString(delimiters[i-1])
		}
	}
	return sb.String()
}

// sequenceString renders a single sequence without its combinator. A
// sequence with no atoms renders as the universal selector.
func (s *Selector) sequenceString() string {
	var sb strings.Builder
	sb.WriteString(s.Tag)
	for _, class := range s.Classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	if s.ID != "" {
		sb.WriteByte('#')
		sb.WriteString(s.ID)
	}
	for _, attr := range s.Attrs {
		sb.WriteString(attr.String())
	}
	if sb.Len() == 0 {
		return "*"
	}
	return sb.String()
}

// String renders the attribute selector, quoting the value when it is not a
// bare identifier.
func (a AttributeSelector) String() string {
	if a.Op == AttrExists {
		return "[" + a.Name + "]"
	}
	var op string
	switch a.Op {
	case AttrEquals:
		op = "="
	case AttrIncludes:
		op = "~="
	case AttrDashMatch:
		op = "|="
	case AttrPrefix:
		op = "^="
	case AttrSuffix:
		op = "$="
	case AttrSubstring:
		op = "*="
	default:
		panic(fmt.Sprintf("css: unexpected attribute operator %d", a.Op))
	}
	val := a.Val
	if !reIdentifier.MatchString(val) {
		val = `"` + strings.ReplaceAll(val, `"`, `\"`) + `"`
	}
	return "[" + a.Name + op + val + "]"
}
