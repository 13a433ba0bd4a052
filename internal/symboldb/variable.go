package symboldb

import "github.com/cwbudde/corecheck/internal/token"

// Variable is a member variable record.
type Variable struct {
	NameToken token.Tok
	TypeToken token.Tok

	Access    Access
	IsMutable bool
	IsStatic  bool
	IsConst   bool
	IsClass   bool // the type is a user-defined (class/struct/union) type

	TypeScope *Scope // resolved scope of the variable's type, if user-defined

	// Assign and Init are not filled in by Build and stay false; the
	// constructors check scans each constructor itself instead.
	Assign bool
	Init   bool
}
