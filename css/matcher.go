package css

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chrisuehlinger/seldom/dom"
)

// Matches reports whether any selector in the group matches n. If root is
// non-nil, ancestor lookups during descendant and child matching terminate
// at root.
func (g SelectorGroup) Matches(n dom.Node, root dom.Node) bool {
	for _, sel := range g {
		if sel.Matches(n, root) {
			return true
		}
	}
	return false
}

// Matches reports whether the selector matches n: the head sequence's atoms
// must all hold on n, and each leftward sequence must hold on a node in the
// structural relation named by its combinator.
func (s *Selector) Matches(n dom.Node, root dom.Node) bool {
	if s.Tag != "" {
		if n.Tag() == "" || n.Tag() != s.Tag {
			return false
		}
	}
	if s.ID != "" {
		if id, ok := n.Attr("id"); !ok || id != s.ID {
			return false
		}
	}
	if len(s.Classes) > 0 {
		classes := dom.Classes(n)
		for _, class := range s.Classes {
			if !slices.Contains(classes, class) {
				return false
			}
		}
	}
	for _, attr := range s.Attrs {
		if !attr.Matches(n) {
			return false
		}
	}

	if s.Previous == nil {
		return true
	}

	switch s.Combinator {
	case CombinatorDescendant:
		// Some ancestor must match; the scan stops at root inclusively.
		for a := n.Parent(); a != nil; a = a.Parent() {
			if s.Previous.Matches(a, root) {
				return true
			}
			if a == root {
				break
			}
		}
		return false

	case CombinatorChild:
		if n == root || n.Parent() == nil {
			return false
		}
		return s.Previous.Matches(n.Parent(), nil)

	case CombinatorNextSibling:
		sibling := dom.PreviousElementSibling(n)
		if sibling == nil {
			return false
		}
		return s.Previous.Matches(sibling, nil)

	case CombinatorSubsequentSibling:
		// The sibling scan itself is not bounded by root; only the
		// recursive ancestor checks of the previous sequence are.
		for _, sibling := range dom.PreviousSiblings(n) {
			el, ok := sibling.(*dom.ElementNode)
			if !ok {
				continue
			}
			if s.Previous.Matches(el, root) {
				return true
			}
		}
		return false

	default:
		panic(fmt.Sprintf("css: unexpected combinator %d in chain", s.Combinator))
	}
}

// Matches reports whether the attribute predicate holds on n. A node
// without the attribute never matches, whatever the operator.
func (a AttributeSelector) Matches(n dom.Node) bool {
	val, ok := n.Attr(a.Name)
	if !ok {
		return false
	}
	switch a.Op {
	case AttrExists:
		return true
	case AttrEquals:
		return val == a.Val
	case AttrIncludes:
		return slices.Contains(strings.Fields(val), a.Val)
	case AttrDashMatch:
		return val == a.Val || strings.HasPrefix(val, a.Val+"-")
	case AttrPrefix:
		return a.Val != "" && strings.HasPrefix(val, a.Val)
	case AttrSuffix:
		return a.Val != "" && strings.HasSuffix(val, a.Val)
	case AttrSubstring:
		return a.Val != "" && strings.Contains(val, a.Val)
	default:
		panic(fmt.Sprintf("css: unexpected attribute operator %d", a.Op))
	}
}
