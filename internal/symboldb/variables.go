package symboldb

import (
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/token"
)

// collectVariables walks a class-like scope's body recognizing member
// variable declarations through a closed pattern set: plain "TYPE NAME
// ;", qualified "NS :: TYPE NAME ;" (up to three levels),
// pointer/reference forms, arrays "TYPE NAME [", template containers
// "TYPE < … > NAME ;" (nested angle brackets matched by depth counting,
// ">>" counted as two closers), and "struct|union TYPE NAME ;". Nested
// class and function bodies are skipped entirely.
func collectVariables(scope *Scope, logger *diag.Logger) {
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

		if next, skipped := skipRangeAt(scope, t); skipped {
			t = next
			continue
		}

		if v, next, ok := tryParseVariable(scope, t); ok {
			scope.VarList = append(scope.VarList, v)
			if v.NameToken.VarID() == 0 && logger != nil {
				logger.ReportDiagnostic(diag.New("varid0",
					diag.Debug,
					"Internal error: member variable "+v.NameToken.Text()+" has no var-id",
					[]diag.FileLocation{diag.NewFileLocation(v.NameToken.File(), v.NameToken.Line())}))
			}
			t = next
			continue
		}

		t = t.Next()
	}
}

// skipRangeAt returns the token following the end of whichever nested
// class-like or function-body child scope starts exactly at t, if any.
func skipRangeAt(scope *Scope, t token.Tok) (token.Tok, bool) {
	for _, child := range scope.NestedList {
		if child.Kind.IsClassLike() && child.ClassDefToken.Equal(t) {
			return child.ClassEnd.Next(), true
		}
		if child.Kind == FunctionKind && child.ClassStart.Equal(t) {
			return child.ClassEnd.Next(), true
		}
	}
	return token.Tok{}, false
}

func tryParseVariable(scope *Scope, start token.Tok) (*Variable, token.Tok, bool) {
	t := start
	var isConst, isStatic, isMutable bool
	for {
		switch t.Text() {
		case "const":
			isConst = true
		case "static":
			isStatic = true
		case "mutable":
			isMutable = true
		default:
			goto prefixDone
		}
		t = t.Next()
	}
prefixDone:

	isClass := false
	if t.Text() == "struct" || t.Text() == "union" {
		isClass = true
		t = t.Next()
	}
	if !t.Valid() || !t.IsName() {
		return nil, start, false
	}
	typeTok := t
	t = t.Next()

	for i := 0; i < 2 && t.Text() == "::"; i++ {
		t = t.Next()
		if !t.Valid() || !t.IsName() {
			return nil, start, false
		}
		typeTok = t
		t = t.Next()
	}

	if t.Text() == "<" {
		isClass = true
		depth := 1
		t = t.Next()
		for depth > 0 {
			if !t.Valid() {
				return nil, start, false
			}
			switch t.Text() {
			case "<":
				depth++
			case ">":
				depth--
			case ">>":
				depth -= 2
			}
			t = t.Next()
		}
	}

	for t.Text() == "*" || t.Text() == "&" {
		t = t.Next()
	}
	if !t.Valid() || !t.IsName() {
		return nil, start, false
	}
	nameTok := t
	t = t.Next()

	for t.Text() == "[" {
		closing := t.Link()
		if !closing.Valid() {
			return nil, start, false
		}
		t = closing.Next()
	}

	if t.Text() != ";" {
		return nil, start, false
	}
	t = t.Next()

	if !typeTok.IsStandardType() && !isClass {
		// A bare identifier type not recognized as a standard type is
		// treated as a user-defined (class) type; resolution to its
		// actual scope happens in stage 4's cross-reference pass.
		isClass = true
	}

	return &Variable{
		NameToken: nameTok,
		TypeToken: typeTok,
		Access:    scope.Access,
		IsMutable: isMutable,
		IsStatic:  isStatic,
		IsConst:   isConst,
		IsClass:   isClass,
	}, t, true
}
