package symboldb

import "github.com/cwbudde/corecheck/internal/token"

// parseClassBodies walks every class-like scope in the forest built by
// buildSkeleton and populates its FunctionList, access cursor and
// NumConstructors. Variable collection runs separately after base
// classes are resolved.
func parseClassBodies(global *Scope) {
	walkScopes(global, func(s *Scope) {
		if s.Kind.IsClassLike() {
			parseOneClassBody(s)
		}
	})
}

// walkScopes visits every scope in the forest, root first, then
// children left to right.
func walkScopes(s *Scope, visit func(*Scope)) {
	visit(s)
	for _, child := range s.NestedList {
		walkScopes(child, visit)
	}
}

func parseOneClassBody(scope *Scope) {
	t := scope.ClassStart.Next()
	for t.Valid() && !t.Equal(scope.ClassEnd) {
		switch t.Text() {
		case "public", "private", "protected":
			if t.Next().Text() == ":" {
				scope.Access = accessFor(t.Text())
				t = t.Next().Next()
				continue
			}
		}

		if nested := childScopeAt(scope, t); nested != nil {
			t = nested.ClassEnd.Next()
			continue
		}

		if f, next := parseFunctionDecl(scope, t); f != nil {
			scope.FunctionList = append(scope.FunctionList, f)
			if f.Type == Constructor || f.Type == CopyConstructor {
				scope.NumConstructors++
			}
			t = next.Next()
			continue
		}

		t = t.Next()
	}
}

func accessFor(text string) Access {
	switch text {
	case "public":
		return Public
	case "protected":
		return Protected
	default:
		return Private
	}
}

// childScopeAt returns the direct child scope whose defining keyword
// token is t, if any.
func childScopeAt(scope *Scope, t token.Tok) *Scope {
	for _, child := range scope.NestedList {
		if child.Kind.IsClassLike() && child.ClassDefToken.Equal(t) {
			return child
		}
	}
	return nil
}

// parseFunctionDecl attempts to parse a function declarator starting at
// t. On success it returns the Function record and the last token it
// consumed (the declaration's terminating ';' or the definition's
// closing '}'); on failure it returns (nil, t) and the caller should
// advance past t itself.
func parseFunctionDecl(scope *Scope, t token.Tok) (*Function, token.Tok) {
	mods := make(map[string]bool)
	for {
		switch t.Text() {
		case "virtual", "static", "friend", "explicit", "inline":
			mods[t.Text()] = true
			t = t.Next()
			continue
		}
		break
	}
	if !t.Valid() {
		return nil, t
	}

	var nameTok token.Tok
	isDestructor := false
	isOperator := false
	cur := t
	for cur.Valid() && cur.Text() != "(" {
		switch cur.Text() {
		case ";", "}", "{", ":":
			// Ran off the end of a declarator (e.g. a plain variable
			// declaration) without finding an argument list.
			return nil, t
		}
		if cur.Text() == "~" {
			isDestructor = true
		}
		if cur.Text() == "operator" {
			isOperator = true
		}
		nameTok = cur
		cur = cur.Next()
	}
	if !cur.Valid() || cur.Text() != "(" {
		return nil, t
	}
	argOpen := cur
	argClose := argOpen.Link()
	if !argClose.Valid() {
		return nil, t
	}
	after := argClose.Next()
	switch after.Text() {
	case ";", "const", "=", "{", ":":
	default:
		return nil, t
	}

	f := &Function{
		Name:      nameTok.Text(),
		TokenDef:  nameTok,
		Token:     nameTok,
		ArgDefTok: argOpen,
		Access:    scope.Access,
	}
	f.IsVirtual = mods["virtual"]
	f.IsStatic = mods["static"]
	f.IsFriend = mods["friend"]
	f.IsInline = mods["inline"]

	switch {
	case isDestructor:
		f.Type = Destructor
	case isOperator:
		f.IsOperator = true
		if argOpen.Prev().Text() == "=" {
			f.Type = OperatorEqual
		} else {
			f.Type = OperatorFunc
		}
	case nameTok.Text() == scope.ClassName:
		if isCopyConstructorSignature(scope, argOpen) {
			f.Type = CopyConstructor
		} else {
			f.Type = Constructor
		}
	default:
		f.Type = PlainFunction
	}

	p := after
	if p.Text() == "const" {
		f.IsConst = true
		p = p.Next()
	}
	if p.Text() == "=" && p.Next().Text() == "0" {
		f.IsPure = true
		p = p.Next().Next()
	}

	if p.Text() == ";" {
		f.HasBody = false
		return f, p
	}

	for p.Valid() && p.Text() != "{" {
		p = p.Next()
	}
	if !p.Valid() {
		return nil, t
	}
	f.HasBody = true
	f.Token = p
	bodyEnd := p.Link()
	bodyScope := &Scope{
		Kind:          FunctionKind,
		ClassDefToken: nameTok,
		ClassStart:    p,
		ClassEnd:      bodyEnd,
		FunctionOf:    scope,
		Function:      f,
	}
	scope.addChild(bodyScope)
	f.FunctionScope = bodyScope
	return f, bodyEnd
}

// isCopyConstructorSignature matches the single-parameter "const NAME &
// [NAME]" shape.
func isCopyConstructorSignature(scope *Scope, argOpen token.Tok) bool {
	t := argOpen.Next()
	if t.Text() != "const" {
		return false
	}
	t = t.Next()
	if t.Text() != scope.ClassName {
		return false
	}
	t = t.Next()
	if t.Text() != "&" {
		return false
	}
	t = t.Next()
	if t.IsName() {
		t = t.Next()
	}
	return t.Text() == ")"
}
