package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/symboldb"
	"github.com/cwbudde/corecheck/internal/token"
)

func init() {
	check.Register(&ConstructorsCheck{})
}

// ConstructorsCheck flags member variables that a constructor leaves
// uninitialized, neither in its initializer list nor by assignment in
// its body. A class-typed member is only flagged when its own type's
// need-initialization fixed point says it needs one.
type ConstructorsCheck struct{}

func (c *ConstructorsCheck) Name() string             { return "constructors" }
func (c *ConstructorsCheck) RunChecks(*check.Context) {}

func (c *ConstructorsCheck) RunSimplifiedChecks(ctx *check.Context) {
	if ctx.DB == nil {
		return
	}
	for _, scope := range ctx.DB.Classes {
		for _, fn := range scope.FunctionList {
			if fn.Type != symboldb.Constructor || !fn.HasBody {
				continue
			}
			touched := touchedMembers(fn)
			for _, v := range scope.VarList {
				if v.IsStatic || touched[v.NameToken.Text()] {
					continue
				}
				if v.IsClass && (v.TypeScope == nil || v.TypeScope.NeedInitialization != symboldb.NeedsInit) {
					continue
				}
				ctx.ReportError(fn.TokenDef, diag.Warning, "uninitVar",
					"Member variable not initialized in the constructor '"+scope.ClassName+"::"+v.NameToken.Text()+"'")
			}
		}
	}
}

// touchedMembers collects every member name the constructor either
// initializes in its ctor-initializer list ("Name(...)" before the
// body) or assigns in its body ("Name = ...").
func touchedMembers(fn *symboldb.Function) map[string]bool {
	touched := map[string]bool{}

	argOpen := fn.ArgTok
	if !argOpen.Valid() {
		argOpen = fn.ArgDefTok
	}
	if argOpen.Valid() {
		if argClose := argOpen.Link(); argClose.Valid() {
			collectInitializerList(argClose.Next(), fn.Token, touched)
		}
	}

	if fn.Token.Valid() && fn.Token.Text() == "{" {
		collectBodyAssignments(fn.Token.Next(), fn.Token.Link(), touched)
	}

	return touched
}

// collectInitializerList reads "Name ( ... )" or "Name { ... }" entries
// between a ':' and the constructor body's opening '{'.
func collectInitializerList(start, bodyStart token.Tok, touched map[string]bool) {
	t := start
	if !t.Valid() || t.Text() != ":" {
		return
	}
	t = t.Next()
	for t.Valid() && !t.Equal(bodyStart) {
		if t.IsName() {
			touched[t.Text()] = true
		}
		if t.Text() == "(" || t.Text() == "{" {
			t = t.Link()
			if !t.Valid() {
				return
			}
		}
		t = t.Next()
	}
}

// collectBodyAssignments scans a constructor body for direct member
// assignments "Name = ...;", ignoring comparisons ("==") and compound
// expressions on the right-hand side.
func collectBodyAssignments(start, end token.Tok, touched map[string]bool) {
	for t := start; t.Valid() && !t.Equal(end); t = t.Next() {
		if !t.IsName() {
			continue
		}
		next := t.Next()
		if next.Text() == "=" && next.Next().Text() != "=" {
			touched[t.Text()] = true
		}
	}
}
