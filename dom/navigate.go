package dom

// Navigation primitives shared by both node variants. These are stateless:
// each call walks the tree afresh, so results can be re-derived at any time.
//
// The sibling helpers are not O(1): each call re-scans the parent's child
// list to locate the node.

// Ancestors returns the node's ancestors from the immediate parent upward.
// If root is non-nil the walk stops at root, which is included as the final
// entry; ErrNotAncestor is returned if root is not in the ancestor chain.
// If root is nil the walk continues to the top of the tree. A node with no
// parent yields an empty result, not an error (unless a root was demanded).
func Ancestors(n Node, root Node) ([]Node, error) {
	if root != nil && n == root {
		return nil, nil
	}
	var out []Node
	for a := n.Parent(); a != root; a = a.Parent() {
		if a == nil {
			return nil, ErrNotAncestor
		}
		out = append(out, a)
	}
	if root != nil {
		out = append(out, root)
	}
	return out, nil
}

// Descendants returns all descendants of n in pre-order: each node is
// immediately followed by its own subtree, depth-first, before its next
// sibling.
func Descendants(n Node) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		for _, c := range n.Children() {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// childIndex locates n in its parent's child list, or returns -1 for a
// parentless node.
func childIndex(n Node) int {
	p := n.Parent()
	if p == nil {
		return -1
	}
	for i, c := range p.Children() {
		if c == n {
			return i
		}
	}
	return -1
}

// NextSiblings returns the siblings after n in the parent's child order.
// Root nodes yield an empty result.
func NextSiblings(n Node) []Node {
	i := childIndex(n)
	if i < 0 {
		return nil
	}
	siblings := n.Parent().Children()[i+1:]
	if len(siblings) == 0 {
		return nil
	}
	out := make([]Node, len(siblings))
	copy(out, siblings)
	return out
}

// PreviousSiblings returns the siblings before n, nearest first (the
// reverse of document order). Root nodes yield an empty result.
func PreviousSiblings(n Node) []Node {
	i := childIndex(n)
	if i <= 0 {
		return nil
	}
	siblings := n.Parent().Children()[:i]
	out := make([]Node, 0, len(siblings))
	for j := len(siblings) - 1; j >= 0; j-- {
		out = append(out, siblings[j])
	}
	return out
}

// NextSibling returns the sibling immediately after n, or nil.
func NextSibling(n Node) Node {
	if next := NextSiblings(n); len(next) > 0 {
		return next[0]
	}
	return nil
}

// PreviousSibling returns the sibling immediately before n, or nil.
func PreviousSibling(n Node) Node {
	if prev := PreviousSiblings(n); len(prev) > 0 {
		return prev[0]
	}
	return nil
}

// NextElementSibling returns the nearest following sibling that is an
// element, skipping text nodes, or nil.
func NextElementSibling(n Node) *ElementNode {
	for _, s := range NextSiblings(n) {
		if el, ok := s.(*ElementNode); ok {
			return el
		}
	}
	return nil
}

// PreviousElementSibling returns the nearest preceding sibling that is an
// element, skipping text nodes, or nil.
func PreviousElementSibling(n Node) *ElementNode {
	for _, s := range PreviousSiblings(n) {
		if el, ok := s.(*ElementNode); ok {
			return el
		}
	}
	return nil
}

// FirstChild returns the first child of n, or nil if n has no children.
func FirstChild(n Node) Node {
	if children := n.Children(); len(children) > 0 {
		return children[0]
	}
	return nil
}

// LastChild returns the last child of n, or nil if n has no children.
func LastChild(n Node) Node {
	if children := n.Children(); len(children) > 0 {
		return children[len(children)-1]
	}
	return nil
}

// FirstElementChild returns the first child that is an element, or nil.
func FirstElementChild(n Node) *ElementNode {
	for _, c := range n.Children() {
		if el, ok := c.(*ElementNode); ok {
			return el
		}
	}
	return nil
}

// LastElementChild returns the last child that is an element, or nil.
func LastElementChild(n Node) *ElementNode {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if el, ok := children[i].(*ElementNode); ok {
			return el
		}
	}
	return nil
}
