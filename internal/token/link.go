package token

import "fmt"

// LinkError reports a bracket-linkage violation: a closing bracket with
// no opener, an opener with no closer, or mismatched nesting. This
// indicates malformed input and must fail cleanly rather than silently
// leaving a bracket unlinked.
type LinkError struct {
	Tok Tok
	Msg string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Tok.File(), e.Tok.Line(), e.Msg)
}

var roundBrackets = map[string]string{"(": ")"}
var squareBrackets = map[string]string{"[": "]"}
var curlyBrackets = map[string]string{"{": "}"}

// LinkBrackets links every "(" in the stream to its matching ")", in a
// single forward pass with a stack. "[" and "{" are linked by
// LinkSquareBrackets and LinkCurlyBrackets. These three families are
// unambiguous in C-family token streams, unlike "<"/">" (see
// LinkAngleBrackets).
func LinkBrackets(first Tok) error {
	return linkPairs(first, roundBrackets)
}

// LinkSquareBrackets links "[" to "]". Kept separate from LinkBrackets
// so callers can choose which families their input actually needs linked
// (e.g. a fragment with no array subscripts).
func LinkSquareBrackets(first Tok) error {
	return linkPairs(first, squareBrackets)
}

// LinkCurlyBrackets links "{" to "}".
func LinkCurlyBrackets(first Tok) error {
	return linkPairs(first, curlyBrackets)
}

// LinkAngleBrackets links "<" to ">" for the token indices the caller has
// already identified as template/generic brackets. Disambiguating a bare
// "<" from a less-than operator is a lexer-level heuristic outside this
// package; callers that already know which occurrences are brackets
// (tests, or a preprocessor that annotates them) pass the pair list
// directly.
func LinkAngleBrackets(opens, closes []Tok) error {
	if len(opens) != len(closes) {
		return fmt.Errorf("corecheck: %d open angle brackets, %d close", len(opens), len(closes))
	}
	stack := make([]Tok, 0, len(opens))
	// Merge-walk both lists by token index so nesting is resolved
	// correctly regardless of call-site ordering.
	all := make([]Tok, 0, len(opens)+len(closes))
	isOpen := make(map[int32]bool, len(opens))
	for _, o := range opens {
		all = append(all, o)
		isOpen[o.idx] = true
	}
	all = append(all, closes...)
	sortByIndex(all)

	for _, tk := range all {
		if isOpen[tk.idx] {
			stack = append(stack, tk)
			continue
		}
		if len(stack) == 0 {
			return &LinkError{Tok: tk, Msg: "closing '>' without matching '<'"}
		}
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		open.SetLink(tk)
	}
	if len(stack) != 0 {
		return &LinkError{Tok: stack[len(stack)-1], Msg: "opening '<' without matching '>'"}
	}
	return nil
}

func sortByIndex(toks []Tok) {
	for i := 1; i < len(toks); i++ {
		for j := i; j > 0 && toks[j].idx < toks[j-1].idx; j-- {
			toks[j], toks[j-1] = toks[j-1], toks[j]
		}
	}
}

func linkPairs(first Tok, pairs map[string]string) error {
	closeOf := map[string]bool{}
	openOf := map[string]string{}
	for open, close := range pairs {
		closeOf[close] = true
		openOf[open] = close
	}

	var stack []Tok
	for tok := first; tok.Valid(); tok = tok.Next() {
		text := tok.Text()
		if _, isOpen := openOf[text]; isOpen {
			stack = append(stack, tok)
			continue
		}
		if closeOf[text] {
			if len(stack) == 0 {
				return &LinkError{Tok: tok, Msg: fmt.Sprintf("closing '%s' without matching opener", text)}
			}
			open := stack[len(stack)-1]
			wantClose := openOf[open.Text()]
			if wantClose != text {
				return &LinkError{Tok: tok, Msg: fmt.Sprintf("mismatched bracket: expected '%s', found '%s'", wantClose, text)}
			}
			stack = stack[:len(stack)-1]
			open.SetLink(tok)
		}
	}
	if len(stack) != 0 {
		return &LinkError{Tok: stack[len(stack)-1], Msg: fmt.Sprintf("opening '%s' without matching closer", stack[len(stack)-1].Text())}
	}
	return nil
}
