package css

import "github.com/chrisuehlinger/seldom/dom"

// SelectAll returns every descendant of n matched by the group, in
// pre-order traversal order. Matching is rooted at n: ancestor lookups for
// descendant and child combinators stop there.
func SelectAll(n dom.Node, group SelectorGroup) []dom.Node {
	var out []dom.Node
	for _, d := range dom.Descendants(n) {
		if group.Matches(d, n) {
			out = append(out, d)
		}
	}
	return out
}

// Select returns the first descendant of n matched by the group, or nil.
func Select(n dom.Node, group SelectorGroup) dom.Node {
	for _, d := range dom.Descendants(n) {
		if group.Matches(d, n) {
			return d
		}
	}
	return nil
}

// MatchedBy reports whether n itself is matched by the group, with ancestor
// lookups bounded by root (which may be nil).
func MatchedBy(n dom.Node, group SelectorGroup, root dom.Node) bool {
	return group.Matches(n, root)
}

// QueryAll parses selector text and returns every matching descendant of n
// in pre-order. The text is parsed once for the whole query.
func QueryAll(n dom.Node, selector string) ([]dom.Node, error) {
	group, err := ParseSelectorGroup(selector)
	if err != nil {
		return nil, err
	}
	return SelectAll(n, group), nil
}

// Query parses selector text and returns the first matching descendant of
// n, or nil if nothing matches.
func Query(n dom.Node, selector string) (dom.Node, error) {
	group, err := ParseSelectorGroup(selector)
	if err != nil {
		return nil, err
	}
	return Select(n, group), nil
}

// Matches parses selector text and reports whether n itself is matched,
// with ancestor lookups bounded by root (which may be nil).
func Matches(n dom.Node, selector string, root dom.Node) (bool, error) {
	group, err := ParseSelectorGroup(selector)
	if err != nil {
		return false, err
	}
	return group.Matches(n, root), nil
}
