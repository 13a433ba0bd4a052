// Package symboldb builds the symbol database: a forest of Scopes
// describing namespaces, classes/structs/unions and functions, with
// their member variables, constructors and base-class relationships,
// resolved from the token stream without building a full AST.
package symboldb

import "github.com/cwbudde/corecheck/internal/token"

// Kind classifies a Scope.
type Kind int

const (
	Global Kind = iota
	Namespace
	Class
	Struct
	Union
	FunctionKind
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "Global"
	case Namespace:
		return "Namespace"
	case Class:
		return "Class"
	case Struct:
		return "Struct"
	case Union:
		return "Union"
	case FunctionKind:
		return "Function"
	default:
		return "Unknown"
	}
}

// IsClassLike reports whether the scope kind carries class-like state
// (function/var lists, derived-from, access cursor).
func (k Kind) IsClassLike() bool {
	return k == Class || k == Struct || k == Union
}

// Access is a class member's visibility.
type Access int

const (
	Public Access = iota
	Protected
	Private
)

// NeedInit is the tri-state result of the need-initialization fixed
// point.
type NeedInit int

const (
	Unknown NeedInit = iota
	NeedsInit
	NoInitNeeded
)

// Scope is one node of the symbol database's scope forest.
type Scope struct {
	Kind Kind

	ClassDefToken token.Tok // the defining keyword token; invalid for Global
	ClassStart    token.Tok // the scope's '{'; invalid for Global
	ClassEnd      token.Tok // the scope's matching '}'; invalid for Global

	NestedIn   *Scope
	NestedList []*Scope

	// Class-like fields (Class, Struct, Union).
	ClassName          string
	Access             Access // current access cursor while parsing the body
	FunctionList       []*Function
	VarList            []*Variable
	FriendList         []string
	DerivedFrom        []string
	DerivedFromScopes  []*Scope
	NumConstructors    int
	NeedInitialization NeedInit

	// Function-scope fields.
	FunctionOf *Scope // back-reference to the owning class scope, if any
	Function   *Function
}

// NewGlobalScope creates the root of the scope forest.
func NewGlobalScope() *Scope {
	return &Scope{Kind: Global}
}

// addChild appends child to s's nested list and sets its parent back-link.
func (s *Scope) addChild(child *Scope) {
	child.NestedIn = s
	s.NestedList = append(s.NestedList, child)
}

// FindFunction returns the function record in this scope (not bases)
// whose name token text equals name, or nil.
func (s *Scope) FindFunction(name string) *Function {
	for _, f := range s.FunctionList {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FindVar returns the variable record in this scope whose name equals
// name, or nil.
func (s *Scope) FindVar(name string) *Variable {
	for _, v := range s.VarList {
		if v.NameToken.Text() == name {
			return v
		}
	}
	return nil
}

// IsBaseOf reports whether s appears, directly or transitively, among
// other's resolved base classes.
func (s *Scope) IsBaseOf(other *Scope) bool {
	for _, base := range other.DerivedFromScopes {
		if base == s || s.IsBaseOf(base) {
			return true
		}
	}
	return false
}
