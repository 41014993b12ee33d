package css

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError is returned when selector text cannot be parsed. It carries
// the full input and the cursor offset at which parsing failed.
type ParseError struct {
	Input  string
	Cursor int
	Why    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selector parser aborted at character %d of %q: %s", e.Cursor, e.Input, e.Why)
}

// The grammar deliberately over-accepts relative to the formal CSS spec in
// favor of simple, readable patterns: whitespace is \s and identifiers are
// [\w-]+, both ASCII. Attribute values are bare identifiers or quoted
// strings in which only the matching quote character is recognized as a
// backslash escape; every other escape sequence is taken literally.
var (
	reTypeSel      = regexp.MustCompile(`^[\w-]+`)
	reUniversalSel = regexp.MustCompile(`^\*`)
	reAttrSel      = regexp.MustCompile(`^\[\s*([\w-]+)\s*(?:([~|^$*]?=)\s*(?:([\w-]+)|"((?:\\.|[^\\"])*)"|'((?:\\.|[^\\'])*)')\s*)?\]`)
	reClassSel     = regexp.MustCompile(`^\.([\w-]+)`)
	reIDSel        = regexp.MustCompile(`^#([\w-]+)`)
	rePseudoClass  = regexp.MustCompile(`^:[\w-]+(?:\([^)]+\))?`)
	rePseudoElem   = regexp.MustCompile(`^::[\w-]+`)

	reChildCom   = regexp.MustCompile(`^\s*>\s*`)
	reNextSibCom = regexp.MustCompile(`^\s*\+\s*`)
	reSubSibCom  = regexp.MustCompile(`^\s*~\s*`)
	// End-of-selector and the descendant combinator must be tried after the
	// other combinators: their patterns are prefixes of the whitespace that
	// may surround ">", "+" and "~".
	reEndOfSel      = regexp.MustCompile(`^\s*($|,)`)
	reDescendantCom = regexp.MustCompile(`^\s+`)

	reLeadingSpace = regexp.MustCompile(`^\s*`)
)

// matchLen returns the length of re's anchored match at the start of rest,
// or -1 if there is no match. A zero return is a genuine empty match.
func matchLen(re *regexp.Regexp, rest string) int {
	loc := re.FindStringIndex(rest)
	if loc == nil {
		return -1
	}
	return loc[1]
}

// ParseSelectorGroup parses selector text into a group of selectors,
// consuming the whole input. It fails with a *ParseError on any grammar
// violation, including an empty input.
func ParseSelectorGroup(s string) (SelectorGroup, error) {
	var group SelectorGroup
	i := 0
	for i < len(s) {
		sel, next, err := ParseSelector(s, i)
		if err != nil {
			return nil, err
		}
		group = append(group, sel)
		i = next
	}
	if len(group) == 0 {
		return nil, &ParseError{Input: s, Cursor: i, Why: "selector group is empty"}
	}
	return group, nil
}

// ParseSelector parses exactly one comma-delimited selector starting at
// cursor and returns it along with the offset just past its trailing comma
// or at end of input, so a group can be parsed as repeated single-selector
// parses.
func ParseSelector(s string, cursor int) (*Selector, int, error) {
	var (
		tag     string
		classes []string
		id      string
		attrs   []AttributeSelector

		sel            *Selector
		prevCombinator = CombinatorNone
	)

	i := cursor
	i += matchLen(reLeadingSpace, s[i:])

	for i < len(s) {
		// One simple selector atom.
		rest := s[i:]
		switch {
		case reTypeSel.MatchString(rest):
			if tag != "" {
				return nil, 0, &ParseError{Input: s, Cursor: i, Why: "multiple type selectors found"}
			}
			m := reTypeSel.FindString(rest)
			tag = strings.ToLower(m)
			i += len(m)

		case reUniversalSel.MatchString(rest):
			i++

		case reAttrSel.MatchString(rest):
			attr, n, err := parseAttrSelector(s, i)
			if err != nil {
				return nil, 0, err
			}
			attrs = append(attrs, attr)
			i += n

		case reClassSel.MatchString(rest):
			m := reClassSel.FindStringSubmatch(rest)
			classes = append(classes, m[1])
			i += len(m[0])

		case reIDSel.MatchString(rest):
			if id != "" {
				return nil, 0, &ParseError{Input: s, Cursor: i, Why: "multiple id selectors found"}
			}
			m := reIDSel.FindStringSubmatch(rest)
			id = m[1]
			i += len(m[0])

		case rePseudoClass.MatchString(rest):
			return nil, 0, &ParseError{Input: s, Cursor: i, Why: "pseudo-classes not supported"}

		case rePseudoElem.MatchString(rest):
			return nil, 0, &ParseError{Input: s, Cursor: i, Why: "pseudo-elements not supported"}

		default:
			return nil, 0, &ParseError{Input: s, Cursor: i, Why: "expecting simple selector, found none"}
		}

		// A combinator, or the end of the selector. When neither is found
		// the sequence simply continues with another simple selector atom.
		rest = s[i:]
		var combinator CombinatorType
		if n := matchLen(reChildCom, rest); n >= 0 {
			combinator = CombinatorChild
			i += n
		} else if n := matchLen(reNextSibCom, rest); n >= 0 {
			combinator = CombinatorNextSibling
			i += n
		} else if n := matchLen(reSubSibCom, rest); n >= 0 {
			combinator = CombinatorSubsequentSibling
			i += n
		} else if n := matchLen(reEndOfSel, rest); n >= 0 {
			combinator = CombinatorNone
			i += n
		} else if n := matchLen(reDescendantCom, rest); n >= 0 {
			combinator = CombinatorDescendant
			i += n
		} else {
			continue
		}

		if combinator != CombinatorNone && i == len(s) {
			return nil, 0, &ParseError{Input: s, Cursor: i, Why: "unexpected end at combinator"}
		}

		// Close the current sequence, linking it leftward.
		sel = &Selector{
			Tag:        tag,
			Classes:    classes,
			ID:         id,
			Attrs:      attrs,
			Combinator: prevCombinator,
			Previous:   sel,
		}
		prevCombinator = combinator
		if combinator == CombinatorNone {
			break
		}
		tag, classes, id, attrs = "", nil, "", nil
	}

	if sel == nil {
		return nil, 0, &ParseError{Input: s, Cursor: i, Why: "selector is empty"}
	}
	return sel, i, nil
}

// parseAttrSelector parses one attribute selector at offset i of s and
// returns it along with the number of bytes consumed.
func parseAttrSelector(s string, i int) (AttributeSelector, int, error) {
	rest := s[i:]
	m := reAttrSel.FindStringSubmatchIndex(rest)
	group := func(k int) (string, bool) {
		if m[2*k] < 0 {
			return "", false
		}
		return rest[m[2*k]:m[2*k+1]], true
	}

	name, _ := group(1)
	attr := AttributeSelector{Name: strings.ToLower(name)}

	op, hasOp := group(2)
	if !hasOp {
		return attr, m[1], nil
	}
	switch op {
	case "=":
		attr.Op = AttrEquals
	case "~=":
		attr.Op = AttrIncludes
	case "|=":
		attr.Op = AttrDashMatch
	case "^=":
		attr.Op = AttrPrefix
	case "$=":
		attr.Op = AttrSuffix
	case "*=":
		attr.Op = AttrSubstring
	default:
		return attr, 0, &ParseError{Input: s, Cursor: i, Why: fmt.Sprintf("unrecognized operator %q in attribute selector", op)}
	}

	if ident, ok := group(3); ok {
		attr.Val = ident
	} else if dq, ok := group(4); ok {
		attr.Val = strings.ReplaceAll(dq, `\"`, `"`)
	} else if sq, ok := group(5); ok {
		attr.Val = strings.ReplaceAll(sq, `\'`, `'`)
	}
	return attr, m[1], nil
}
