package symboldb

import (
	"github.com/cwbudde/corecheck/internal/match"
	"github.com/cwbudde/corecheck/internal/token"
)

// linkOutOfLineBodies scans the whole stream for "CLASS :: NAME (" out-
// of-line definitions and links each to the previously declared Function
// record of the matching name and argument signature. A definition that
// matches no declaration is left unlinked (it may be a free function in
// a namespace sharing the class's name, which is legal and outside this
// scope's concern).
func linkOutOfLineBodies(first token.Tok, classes []*Scope) {
	byName := make(map[string]*Scope, len(classes))
	for _, c := range classes {
		byName[c.ClassName] = c
	}

	for t := first; t.Valid(); t = t.Next() {
		if !match.Match(t, "%var% :: %var% (", 0) {
			continue
		}
		classScope, ok := byName[t.Text()]
		if !ok {
			continue
		}
		nameTok := t.TokAt(2)
		argOpen := t.TokAt(3)
		argClose := argOpen.Link()
		if !argClose.Valid() {
			continue
		}

		var isConstDef bool
		after := argClose.Next()
		if after.Text() == "const" {
			isConstDef = true
			after = after.Next()
		}
		if after.Text() != "{" {
			continue // a declaration repeated in a header, not a definition
		}

		decl := findMatchingDeclaration(classScope, nameTok.Text(), argOpen, isConstDef)
		if decl == nil || decl.HasBody {
			continue
		}

		decl.HasBody = true
		decl.Token = after
		decl.ArgTok = argOpen
		bodyScope := &Scope{
			Kind:          FunctionKind,
			ClassDefToken: nameTok,
			ClassStart:    after,
			ClassEnd:      after.Link(),
			FunctionOf:    classScope,
			Function:      decl,
		}
		classScope.addChild(bodyScope)
		decl.FunctionScope = bodyScope
		t = bodyScope.ClassEnd
	}
}

func findMatchingDeclaration(scope *Scope, name string, defArgOpen token.Tok, isConstDef bool) *Function {
	for _, f := range scope.FunctionList {
		if f.Name != name || f.HasBody {
			continue
		}
		if f.IsConst != isConstDef {
			continue
		}
		if argsMatch(f.ArgDefTok, defArgOpen) {
			return f
		}
	}
	return nil
}
