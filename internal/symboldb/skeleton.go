package symboldb

import "github.com/cwbudde/corecheck/internal/token"

// buildSkeleton walks the whole token stream once, creating a Scope for
// every class/struct/union/namespace definition it finds and linking it
// under whichever scope is currently open. It returns the root Global
// scope and the flat list of class-like scopes discovered, in discovery
// order (cross-reference resolution needs this list to resolve
// derived-from names).
func buildSkeleton(first token.Tok) (*Scope, []*Scope) {
	global := NewGlobalScope()
	current := global
	var classLike []*Scope

	for t := first; t.Valid(); t = t.Next() {
		for current != global && t.Equal(current.ClassEnd) {
			current = current.NestedIn
		}

		kind, ok := scopeKindFor(t.Text())
		if !ok {
			continue
		}
		nameTok := t.Next()
		if !nameTok.Valid() || !nameTok.IsName() {
			continue
		}
		after := nameTok.Next()
		if after.Text() != "{" && after.Text() != ":" {
			// Forward declaration, or a local variable named like the
			// keyword's argument ("struct stat st;") — not a definition.
			continue
		}

		scope := &Scope{Kind: kind, ClassDefToken: t}
		if kind == Class || kind == Struct || kind == Union {
			scope.ClassName = nameTok.Text()
			classLike = append(classLike, scope)
		} else {
			scope.ClassName = nameTok.Text()
		}

		cursor := after
		if cursor.Text() == ":" {
			scope.DerivedFrom = readBaseList(cursor)
			for cursor.Text() != "{" && cursor.Valid() {
				cursor = cursor.Next()
			}
		}
		if !cursor.Valid() || cursor.Text() != "{" {
			continue // malformed input; the lexer contract was violated upstream
		}
		scope.ClassStart = cursor
		scope.ClassEnd = cursor.Link()
		if kind == Class {
			scope.Access = Private
		} else {
			scope.Access = Public
		}

		current.addChild(scope)
		current = scope
		t = cursor // resume the outer walk from '{'; the inner body is
		// re-visited in full by stage 2, which needs token-by-token
		// access to it anyway.
	}
	return global, classLike
}

func scopeKindFor(text string) (Kind, bool) {
	switch text {
	case "class":
		return Class, true
	case "struct":
		return Struct, true
	case "union":
		return Union, true
	case "namespace":
		return Namespace, true
	}
	return Global, false
}

// readBaseList reads "public|private|protected Base1, protected Base2"
// starting at the ':' token, returning the raw base class names.
func readBaseList(colon token.Tok) []string {
	var bases []string
	t := colon.Next()
	for t.Valid() && t.Text() != "{" {
		switch t.Text() {
		case "public", "private", "protected", "virtual":
			t = t.Next()
			continue
		}
		if t.IsName() {
			name := t.Text()
			for t.Next().Text() == "::" {
				t = t.Next().Next()
				name = t.Text()
			}
			bases = append(bases, name)
		}
		t = t.Next()
	}
	return bases
}
