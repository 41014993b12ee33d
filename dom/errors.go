package dom

import (
	"errors"
	"fmt"
)

// ErrNotAncestor reports a navigation contract violation: Ancestors was
// given a bounding root that does not appear in the node's ancestor chain.
// It is distinct from the normal empty result for parentless nodes.
var ErrNotAncestor = errors.New("root node not found in ancestral chain")

// BuildError is returned when the Builder detects malformed input:
// a mismatched or extra end tag, or a missing or unclosed root. It carries
// the position reported by the upstream tokenizer at the time of the error.
type BuildError struct {
	Line   int    // 1-based line in the markup input
	Offset int    // 0-based offset within the line
	Why    string // human-readable reason
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dom builder aborted at %d:%d: %s", e.Line, e.Offset, e.Why)
}
