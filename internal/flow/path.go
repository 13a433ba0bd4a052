// Package flow implements the execution-path engine: a generic
// fixed-point driver for intra-procedural, per-variable flow analysis
// used by checks that need more than syntactic matching (iterator
// invalidation, uninitialized-member tracking, and similar).
package flow

import "github.com/cwbudde/corecheck/internal/token"

// Path is the abstraction a concrete check provides to ride the driver.
// No path state is shared across check instances; Copy must return an
// independent value.
type Path interface {
	// VarID is the variable this path instance tracks.
	VarID() int

	// Copy returns a deep copy of the state, used at branch points.
	Copy() Path

	// Parse inspects a single non-control token, potentially mutating
	// the path or signalling it should be dropped via ok=false. It
	// returns the token to resume from (supporting token skipping).
	Parse(tok token.Tok) (next token.Tok, ok bool)

	// ParseCondition inspects the first token of a branch condition.
	// Returning true bails out every path for this check.
	ParseCondition(first token.Tok) bool

	// End is the finalization hook called when the enclosing scope
	// closes; the check emits any diagnostics it accumulated.
	End(scopeEnd token.Tok)

	// Equal reports value equality with other, used to collapse
	// equivalent paths at a join (fixed-point detection).
	Equal(other Path) bool
}

// controlKeywords are the tokens that open a branch or loop. The driver
// splits the running path set at if/for/while/switch; a "case" label is
// walked as an ordinary token.
var controlKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "case": true,
}

// IsControlToken reports whether tok opens a branch/loop construct.
func IsControlToken(tok token.Tok) bool {
	return controlKeywords[tok.Text()]
}
