package flow

import "github.com/cwbudde/corecheck/internal/token"

// bailKeywords unconditionally abandon every path that reaches them:
// once control definitely leaves the scope, tracking further state
// along that path is meaningless.
var bailKeywords = map[string]bool{
	"break": true, "continue": true, "goto": true, "return": true,
}

// CheckScope walks the token range [scopeStart.Next(), scopeEnd)
// driving every path in paths to a fixed point. It handles if/else
// branching by copying paths at the branch and merging the two arms
// back together, collapsing value-equal paths via Path.Equal. Loop
// bodies (for/while/switch) are walked once: since a path's state space
// is finite and merges are idempotent, re-entrant flow through a loop
// converges to the same fixed point a single pass already reaches.
func CheckScope(scopeStart token.Tok, paths []Path) []Path {
	return Walk(scopeStart.Next(), scopeStart.Link(), paths)
}

// Walk drives every path in paths across the explicit token range
// [start, end), the same way CheckScope does for a whole brace-delimited
// scope. Use this when tracking needs to begin mid-scope, e.g. right
// after the statement that first makes a path's state interesting,
// rather than at the top of the enclosing block.
func Walk(start, end token.Tok, paths []Path) []Path {
	survivors := walkRange(start, end, paths)
	for _, p := range survivors {
		p.End(end)
	}
	return survivors
}

func walkRange(start, end token.Tok, paths []Path) []Path {
	t := start
	for t.Valid() && !t.Equal(end) && len(paths) > 0 {
		switch {
		case bailKeywords[t.Text()]:
			paths = bailOut(paths, t)
			t = skipToStatementEnd(t)
			continue

		case t.Text() == "if" || t.Text() == "while" || t.Text() == "for" || t.Text() == "switch":
			var next token.Tok
			paths, next = handleBranch(t, paths)
			t = next
			continue
		}

		paths, t = parseOne(paths, t)
	}

	return paths
}

// parseOne calls Parse on every surviving path for the current token,
// dropping any path whose Parse returns ok=false (bailOutVar's
// mechanism — a path "self-removes" by declining to survive a token).
// The walk resumes from the furthest token any surviving path asked to
// skip to, so paths sharing one check's logic over the same token text
// agree on how far to advance.
func parseOne(paths []Path, t token.Tok) ([]Path, token.Tok) {
	resume := t.Next()
	survivors := paths[:0:0]
	for _, p := range paths {
		next, ok := p.Parse(t)
		if !ok {
			continue
		}
		survivors = append(survivors, p)
		if next.Valid() && next.Index() > resume.Index() {
			resume = next
		}
	}
	return survivors, resume
}

// handleBranch processes one if/while/for/switch construct: it copies
// the incoming path set for each arm, walks each arm's body, and merges
// the arms' resulting path sets back together, collapsing equal paths.
func handleBranch(keyword token.Tok, incoming []Path) ([]Path, token.Tok) {
	condOpen := keyword.Next()
	if condOpen.Text() != "(" {
		// A bodyless control token ("else", a bare "do") — nothing to
		// branch on here; the caller treats it like any other token.
		return incoming, keyword.Next()
	}
	condClose := condOpen.Link()
	if !condClose.Valid() {
		return incoming, keyword.Next()
	}

	incoming = applyConditionBailout(condOpen.Next(), incoming)

	bodyStart := findBodyStart(condClose.Next())
	thenPaths, bodyEnd := walkBranchBody(bodyStart, copyAll(incoming))

	cursor := bodyEnd.Next()
	var elsePaths []Path
	if keyword.Text() == "if" && cursor.Text() == "else" {
		elseBodyStart := findBodyStart(cursor.Next())
		var elseBodyEnd token.Tok
		elsePaths, elseBodyEnd = walkBranchBody(elseBodyStart, copyAll(incoming))
		cursor = elseBodyEnd.Next()
	} else {
		elsePaths = incoming // no else: the fallthrough path set rejoins as-is
	}

	return mergePaths(thenPaths, elsePaths), cursor
}

// walkBranchBody walks one branch arm. If bodyStart opens a brace block
// it recurses through CheckScope-equivalent logic over that block; if
// the branch has no braces (a single statement), it walks up to the
// terminating ';'.
func walkBranchBody(bodyStart token.Tok, paths []Path) ([]Path, token.Tok) {
	if bodyStart.Text() == "{" {
		end := bodyStart.Link()
		return walkRange(bodyStart.Next(), end, paths), end
	}
	end := skipToStatementEnd(bodyStart)
	return walkRange(bodyStart, end, paths), end
}

func findBodyStart(t token.Tok) token.Tok {
	return t
}

func skipToStatementEnd(t token.Tok) token.Tok {
	for t.Valid() && t.Text() != ";" && t.Text() != "}" {
		t = t.Next()
	}
	return t
}

func applyConditionBailout(firstCondTok token.Tok, paths []Path) []Path {
	survivors := paths[:0:0]
	for _, p := range paths {
		if p.ParseCondition(firstCondTok) {
			continue
		}
		survivors = append(survivors, p)
	}
	return survivors
}

func copyAll(paths []Path) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = p.Copy()
	}
	return out
}

// bailOut drops every path for the current check instance.
func bailOut(paths []Path, at token.Tok) []Path {
	for _, p := range paths {
		p.End(at)
	}
	return nil
}

// BailOutVar removes every path tracking varID.
func BailOutVar(paths []Path, varID int) []Path {
	survivors := paths[:0:0]
	for _, p := range paths {
		if p.VarID() == varID {
			continue
		}
		survivors = append(survivors, p)
	}
	return survivors
}

// mergePaths unions two path sets from sibling branch arms, collapsing
// pairs the check considers equal.
func mergePaths(a, b []Path) []Path {
	out := make([]Path, 0, len(a)+len(b))
	out = append(out, a...)
	for _, p := range b {
		if !containsEqual(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func containsEqual(paths []Path, p Path) bool {
	for _, existing := range paths {
		if existing.Equal(p) {
			return true
		}
	}
	return false
}
