// Package checks implements the concrete syntactic and flow-driven
// checks run over a tokenized translation unit and its symbol database.
package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/flow"
	"github.com/cwbudde/corecheck/internal/match"
	"github.com/cwbudde/corecheck/internal/token"
)

func init() {
	check.Register(&IteratorCheck{})
}

// IteratorCheck flags STL iterator misuse: comparing an iterator
// obtained from one container against another container's end(), an
// iterator erased by value rather than by position, and any use of an
// iterator - a dereference, or handing it to a further insert/erase
// call - after the element it refers to has already been erased.
type IteratorCheck struct{}

func (c *IteratorCheck) Name() string { return "iterators" }

func (c *IteratorCheck) RunChecks(ctx *check.Context) {}

func (c *IteratorCheck) RunSimplifiedChecks(ctx *check.Context) {
	c.checkCrossContainer(ctx)
	c.checkEraseByValue(ctx)
	c.checkEraseInvalidation(ctx)
}

// checkCrossContainer matches "ITER = CONTAINER . begin ( ) ;" directly
// followed by "ITER != OTHER . end ( )" where CONTAINER and OTHER differ
// by name.
func (c *IteratorCheck) checkCrossContainer(ctx *check.Context) {
	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, "%var% = %var% . begin ( ) ;", 0) {
			continue
		}
		iterName := t.Text()
		container1 := t.TokAt(2).Text()

		cond := t.TokAt(8)
		if !match.Match(cond, "%var% != %var% . end ( )", 0) || cond.Text() != iterName {
			continue
		}
		container2 := cond.TokAt(2).Text()
		if container1 == container2 {
			continue
		}
		ctx.ReportError(cond, diag.Error, "iterators",
			"Same iterator is used with both "+container1+" and "+container2)
	}
}

// checkEraseByValue matches "CONTAINER . erase ( * ITER": erasing by
// dereferencing an iterator invalidates that iterator immediately,
// unlike erasing by position.
func (c *IteratorCheck) checkEraseByValue(ctx *check.Context) {
	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, "%var% . erase ( * %var%", 0) {
			continue
		}
		container := t.Text()
		iterName := t.TokAt(5).Text()
		ctx.ReportError(t, diag.Error, "eraseByValue",
			"Iterator '"+iterName+"' becomes invalid when deleted by value from '"+container+"'")
	}
}

// checkEraseInvalidation rides the execution-path engine from every
// "CONTAINER . erase ( ITER ) ;" call to the end of the enclosing
// block, reporting the first place along that path where the erased
// iterator is dereferenced or handed to another insert/erase call on
// the same container, before it is reassigned.
func (c *IteratorCheck) checkEraseInvalidation(ctx *check.Context) {
	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, "%var% . erase ( %var% ) ;", 0) {
			continue
		}
		scopeEnd := enclosingBlockEnd(t)
		if !scopeEnd.Valid() {
			continue
		}
		erased := t.TokAt(4)
		path := &erasedIteratorPath{
			ctx:            ctx,
			varID:          erased.VarID(),
			name:           erased.Text(),
			containerVarID: t.VarID(),
		}
		flow.Walk(t.TokAt(7), scopeEnd, []flow.Path{path})
	}
}

// enclosingBlockEnd returns the closing brace matching the nearest
// unmatched '{' preceding t, found by scanning backward and counting
// brace depth. It returns the invalid Tok if t is not nested inside any
// block.
func enclosingBlockEnd(t token.Tok) token.Tok {
	depth := 0
	for u := t.Prev(); u.Valid(); u = u.Prev() {
		switch u.Text() {
		case "}":
			depth++
		case "{":
			if depth == 0 {
				return u.Link()
			}
			depth--
		}
	}
	return token.Tok{}
}

// erasedIteratorPath tracks one iterator from the point it is erased,
// reporting a diagnostic the first time it is dereferenced or reused in
// another insert/erase call before being reassigned. Once reassigned
// the path keeps riding to the end of its scope but stops reporting.
type erasedIteratorPath struct {
	ctx            *check.Context
	varID          int
	name           string
	containerVarID int
	valid          bool
}

func (p *erasedIteratorPath) VarID() int { return p.varID }

func (p *erasedIteratorPath) Copy() flow.Path {
	cp := *p
	return &cp
}

func (p *erasedIteratorPath) ParseCondition(token.Tok) bool { return false }

func (p *erasedIteratorPath) End(token.Tok) {}

func (p *erasedIteratorPath) Equal(other flow.Path) bool {
	o, ok := other.(*erasedIteratorPath)
	return ok && o.varID == p.varID && o.valid == p.valid
}

func (p *erasedIteratorPath) Parse(tok token.Tok) (token.Tok, bool) {
	if p.valid {
		return tok.Next(), true
	}

	if tok.VarID() == p.varID {
		if tok.Next().Text() == "=" {
			p.valid = true
			return tok.Next().Next(), true
		}
		if tok.Prev().Text() == "*" {
			p.ctx.ReportError(tok.Prev(), diag.Error, "eraseDereference",
				"Dereferenced iterator '"+p.name+"' has been erased")
			return tok.Next(), false
		}
		return tok.Next(), true
	}

	if tok.VarID() == p.containerVarID &&
		match.Match(tok, "%var% . insert|erase ( %var% )", 0) &&
		tok.TokAt(4).VarID() == p.varID {
		p.ctx.ReportError(tok, diag.Error, "invalidIterator1", "Invalid iterator: "+p.name)
		return tok.Next(), false
	}

	return tok.Next(), true
}
