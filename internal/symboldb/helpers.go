package symboldb

import "github.com/cwbudde/corecheck/internal/token"

// isMemberVar reports whether tok refers to a member of scope or any of
// its (transitive) base classes. It conservatively treats "* this" or
// "this ->" prefixes as member access, and a bare name matching a
// member's spelling elsewhere in the same scope as a member reference
// too.
func isMemberVar(scope *Scope, tok token.Tok) bool {
	if scope == nil || !tok.Valid() {
		return false
	}
	prev := tok.Prev()
	if prev.Text() == "." && prev.Prev().Text() == "this" {
		return scopeHasVar(scope, tok.Text())
	}
	if prev.Text() == "->" && prev.Prev().Text() == "this" {
		return scopeHasVar(scope, tok.Text())
	}
	return scopeHasVar(scope, tok.Text())
}

func scopeHasVar(scope *Scope, name string) bool {
	if scope.FindVar(name) != nil {
		return true
	}
	for _, base := range scope.DerivedFromScopes {
		if scopeHasVar(base, name) {
			return true
		}
	}
	return false
}

// isConstMemberFunc reports whether tok (a call target's name) refers
// to a const-qualified member function of scope or a base class.
func isConstMemberFunc(scope *Scope, tok token.Tok) bool {
	if scope == nil || !tok.Valid() {
		return false
	}
	if f := scope.FindFunction(tok.Text()); f != nil {
		return f.IsConst
	}
	for _, base := range scope.DerivedFromScopes {
		if isConstMemberFunc(base, tok) {
			return true
		}
	}
	return false
}

// isVirtualFunc reports whether a base class declares a function with
// the same name marked virtual. Only names are compared; return types
// and argument lists are not. Unknown (unresolved) bases are
// conservatively treated as yes.
func isVirtualFunc(scope *Scope, tok token.Tok) bool {
	if scope == nil || !tok.Valid() {
		return false
	}
	if len(scope.DerivedFrom) > len(scope.DerivedFromScopes) {
		return true // at least one base class could not be resolved
	}
	for _, base := range scope.DerivedFromScopes {
		if f := base.FindFunction(tok.Text()); f != nil {
			if f.IsVirtual {
				return true
			}
		}
		if isVirtualFunc(base, tok) {
			return true
		}
	}
	return false
}

// nonCallKeywords are name tokens followed by "(" that are not calls.
var nonCallKeywords = map[string]bool{
	"if": true, "while": true, "for": true, "switch": true, "return": true,
	"sizeof": true, "catch": true,
}

// checkConstFunc reports whether the function body starting at
// bodyStart (its '{') is const-safe: no assignment to a member, no
// compound assignment to a member, no increment/decrement of a member,
// no non-const member-function call, no streaming into a member, and no
// "delete". Unknown callees are treated as non-const.
func checkConstFunc(scope *Scope, bodyStart token.Tok) bool {
	end := bodyStart.Link()
	if !end.Valid() {
		return true
	}
	for t := bodyStart.Next(); t.Valid() && !t.Equal(end); t = t.Next() {
		if t.Text() == "delete" {
			return false
		}
		if t.IsName() && t.Next().Text() == "(" && !nonCallKeywords[t.Text()] {
			if !isConstMemberFunc(scope, t) {
				return false
			}
			continue
		}
		if !t.IsName() || !isMemberVar(scope, t) {
			continue
		}
		next := t.Next()
		switch next.Text() {
		case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", "++", "--":
			return false
		case "<<":
			if scopeHasVar(scope, t.Text()) {
				return false
			}
		}
		if prevOp := t.Prev(); prevOp.Text() == "++" || prevOp.Text() == "--" {
			return false
		}
	}
	return true
}

// SuggestConst reports whether fn, a non-static, non-virtual member
// function of scope with a body, could be declared const: its body
// never mutates a member and never overrides a virtual function (whose
// signature a caller might depend on staying non-const).
func SuggestConst(scope *Scope, fn *Function) bool {
	if fn == nil || fn.IsConst || fn.IsStatic || fn.IsVirtual || !fn.HasBody {
		return false
	}
	if isVirtualFunc(scope, fn.TokenDef) {
		return false
	}
	return checkConstFunc(scope, fn.Token)
}
