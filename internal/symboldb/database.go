package symboldb

import (
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/token"
)

// Database is the symbol database: a forest of Scopes rooted at Global.
type Database struct {
	Global  *Scope
	Classes []*Scope // flat list of class/struct/union scopes, discovery order
}

// Build runs the four ordered construction stages over the token stream
// starting at first: skeleton scopes, class bodies, out-of-line linkage,
// then cross-reference resolution. logger may be nil; when non-nil it
// receives the non-fatal debug diagnostics the construction emits
// (missing var-ids, unresolved need-initialization).
func Build(first token.Tok, logger *diag.Logger) *Database {
	global, classes := buildSkeleton(first)
	parseClassBodies(global)
	linkOutOfLineBodies(first, classes)
	resolveCrossReferences(classes, logger)
	return &Database{Global: global, Classes: classes}
}

// FindClass returns the class/struct/union scope with the given name,
// or nil.
func (db *Database) FindClass(name string) *Scope {
	for _, c := range db.Classes {
		if c.ClassName == name {
			return c
		}
	}
	return nil
}

// ScopeAt returns the innermost scope whose [ClassStart, ClassEnd] range
// contains t, or the Global scope if none does.
func (db *Database) ScopeAt(t token.Tok) *Scope {
	best := db.Global
	var visit func(*Scope)
	visit = func(s *Scope) {
		for _, child := range s.NestedList {
			if !child.ClassStart.Valid() || !child.ClassEnd.Valid() {
				continue
			}
			if tokenBetween(child.ClassStart, t, child.ClassEnd) {
				best = child
				visit(child)
				return
			}
		}
	}
	visit(db.Global)
	return best
}

func tokenBetween(start, t, end token.Tok) bool {
	return t.Index() >= start.Index() && t.Index() <= end.Index()
}
