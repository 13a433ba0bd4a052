package symboldb

import "github.com/cwbudde/corecheck/internal/token"

// FunctionType classifies a Function record.
type FunctionType int

const (
	PlainFunction FunctionType = iota
	Constructor
	CopyConstructor
	Destructor
	OperatorEqual
	OperatorFunc
)

// Function is a member or free function record.
type Function struct {
	Name string

	TokenDef   token.Tok // the declaring name token
	Token      token.Tok // body start, or equal to TokenDef if declaration-only
	ArgDefTok  token.Tok // '(' of the declaration's argument list
	ArgTok     token.Tok // '(' of the definition's argument list, if separate

	Access Access
	Type   FunctionType

	IsVirtual  bool
	IsStatic   bool
	IsFriend   bool
	IsInline   bool
	IsConst    bool
	IsExplicit bool
	IsPure     bool
	IsOperator bool
	HasBody    bool
	RetFuncPtr bool

	FunctionScope *Scope // the Function scope created for the body (inline or out-of-line), if any
}

// argsMatch reports whether the declaration's argument list (starting at
// the token after declArgsOpen, a '(') matches the definition's argument
// list (starting at the token after defArgsOpen): default values on the
// declaration side are tolerated, anonymous parameters on either side
// are tolerated, and qualified type names collapse to unqualified when
// resolved in the defining class's context.
func argsMatch(declArgsOpen, defArgsOpen token.Tok) bool {
	d := declArgsOpen.Next()
	u := defArgsOpen.Next()

	for {
		dIsClose := d.Text() == ")"
		uIsClose := u.Text() == ")"
		if dIsClose && uIsClose {
			return true
		}
		if dIsClose != uIsClose {
			return false
		}

		dType, dNext := readArgType(d)
		uType, uNext := readArgType(u)
		if !typeNamesMatch(dType, uType) {
			return false
		}
		d, u = dNext, uNext

		// Skip an optional parameter name on either side (anonymous
		// parameters are tolerated on either list independently).
		if d.Text() != "," && d.Text() != ")" && d.Text() != "=" {
			d = d.Next()
		}
		if u.Text() != "," && u.Text() != ")" {
			u = u.Next()
		}

		// A default value on the declaration side only: "= expr" up to
		// the next comma or close-paren.
		if d.Text() == "=" {
			d = d.Next()
			for d.Text() != "," && d.Text() != ")" {
				d = d.Next()
			}
		}

		if d.Text() == "," {
			d = d.Next()
		}
		if u.Text() == "," {
			u = u.Next()
		}
	}
}

// readArgType reads a (possibly qualified, possibly pointer/reference)
// type spelling starting at tok, returning its normalized (last-segment)
// name and the token following the type.
func readArgType(tok token.Tok) (string, token.Tok) {
	var lastName string
	t := tok
	for {
		if t.Text() == "const" || t.Text() == "struct" || t.Text() == "class" {
			t = t.Next()
			continue
		}
		if t.IsName() {
			lastName = t.Text()
			t = t.Next()
			if t.Text() == "::" {
				t = t.Next()
				continue
			}
			break
		}
		break
	}
	for t.Text() == "*" || t.Text() == "&" || t.Text() == "const" {
		t = t.Next()
	}
	return lastName, t
}

func typeNamesMatch(a, b string) bool {
	return a == b
}
