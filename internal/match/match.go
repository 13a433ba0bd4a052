// Package match implements the pattern matcher every check uses to
// locate code shapes in the token stream without building an AST: a
// compact, whitespace-separated element DSL evaluated directly against
// the stream.
package match

import (
	"strings"

	"github.com/cwbudde/corecheck/internal/token"
)

// Match reports whether the tokens starting at first satisfy pattern.
// varid supplies the value every %varid% element in pattern is compared
// against; pass 0 if pattern has no %varid% element (a %varid% element
// never matches an id of 0).
func Match(first token.Tok, pattern string, varid int) bool {
	elements := strings.Fields(pattern)
	cur := first
	for _, elem := range elements {
		matched, optional := evalElement(cur, elem, varid)
		if matched {
			cur = cur.Next()
			continue
		}
		if optional {
			continue
		}
		return false
	}
	return true
}

// SimpleMatch is Match restricted to literal text: every pattern element
// must equal the corresponding token's text exactly. No meta-tokens,
// alternation, negation or character classes are interpreted.
func SimpleMatch(first token.Tok, pattern string) bool {
	elements := strings.Fields(pattern)
	cur := first
	for _, elem := range elements {
		if !cur.Valid() || cur.Text() != elem {
			return false
		}
		cur = cur.Next()
	}
	return true
}

// FindMatch scans forward from start (inclusive) and returns the first
// position where Match succeeds, or the invalid Tok if no such position
// exists before the stream ends.
func FindMatch(start token.Tok, pattern string, varid int) token.Tok {
	for tok := start; tok.Valid(); tok = tok.Next() {
		if Match(tok, pattern, varid) {
			return tok
		}
	}
	return token.Tok{}
}

func evalElement(tok token.Tok, elem string, varid int) (matched bool, optional bool) {
	switch {
	case elem == "%var%":
		return tok.Valid() && tok.IsName(), false
	case elem == "%type%":
		return tok.Valid() && (tok.IsName() || tok.IsStandardType()), false
	case elem == "%num%":
		return tok.Valid() && tok.IsNumber(), false
	case elem == "%any%":
		return tok.Valid(), false
	case elem == "%varid%":
		return tok.Valid() && varid != 0 && tok.IsName() && tok.VarID() == varid, false
	case strings.HasPrefix(elem, "!!"):
		want := elem[2:]
		return tok.Valid() && tok.Text() != want, false
	case strings.HasPrefix(elem, "[") && strings.HasSuffix(elem, "]") && len(elem) >= 2:
		charset := elem[1 : len(elem)-1]
		if !tok.Valid() || len(tok.Text()) != 1 {
			return false, false
		}
		return strings.ContainsRune(charset, rune(tok.Text()[0])), false
	case strings.Contains(elem, "|"):
		parts := strings.Split(elem, "|")
		optional = parts[len(parts)-1] == ""
		if optional {
			parts = parts[:len(parts)-1]
		}
		if !tok.Valid() {
			return false, optional
		}
		for _, p := range parts {
			if tok.Text() == p {
				return true, optional
			}
		}
		return false, optional
	default:
		return tok.Valid() && tok.Text() == elem, false
	}
}
