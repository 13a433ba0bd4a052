package token

// Tok is a handle to a single token within an Arena. The zero value (a
// Tok obtained by walking off either end of the stream) is invalid; test
// it with Valid before dereferencing any field.
type Tok struct {
	a   *Arena
	idx int32
}

// Valid reports whether t refers to an actual token.
func (t Tok) Valid() bool { return t.a != nil && t.idx != None }

// Index returns the token's stable arena index, usable as a cheap
// identity for equality comparisons and for %varid% bookkeeping across
// calls into the pattern matcher.
func (t Tok) Index() int32 { return t.idx }

func (t Tok) rec() *record { return &t.a.toks[t.idx] }

// Text returns the token's spelling.
func (t Tok) Text() string {
	if !t.Valid() {
		return ""
	}
	return t.rec().text
}

// Line returns the token's source line.
func (t Tok) Line() int {
	if !t.Valid() {
		return 0
	}
	return t.rec().line
}

// FileIndex returns the index of the token's source file within the
// owning Arena's file table.
func (t Tok) FileIndex() int {
	if !t.Valid() {
		return 0
	}
	return t.rec().fileIndex
}

// File resolves the token's source file name.
func (t Tok) File() string {
	if !t.Valid() {
		return ""
	}
	return t.a.FileName(t.rec().fileIndex)
}

// VarID returns the token's variable identity, or 0 if the token is not a
// variable occurrence.
func (t Tok) VarID() int {
	if !t.Valid() {
		return 0
	}
	return t.rec().varID
}

// SetVarID assigns the token's variable identity. Called by the
// (external) preprocessor/lexer contract producing the stream, or by
// tests constructing one directly.
func (t Tok) SetVarID(id int) {
	if t.Valid() {
		t.rec().varID = id
	}
}

// IsName reports whether the token is an identifier-shaped token
// (keyword or name).
func (t Tok) IsName() bool {
	if !t.Valid() {
		return false
	}
	return t.rec().isName
}

// SetIsName marks the token as name-shaped.
func (t Tok) SetIsName(v bool) {
	if t.Valid() {
		t.rec().isName = v
	}
}

// IsStandardType reports whether the token spells a standard type
// keyword (int, char, bool, ...).
func (t Tok) IsStandardType() bool {
	if !t.Valid() {
		return false
	}
	return t.rec().isStandardType
}

// SetIsStandardType marks the token as a standard-type keyword.
func (t Tok) SetIsStandardType(v bool) {
	if t.Valid() {
		t.rec().isStandardType = v
	}
}

// IsNumber reports whether the token is a numeric literal.
func (t Tok) IsNumber() bool {
	if !t.Valid() {
		return false
	}
	return t.rec().isNumber
}

// SetIsNumber marks the token as a numeric literal.
func (t Tok) SetIsNumber(v bool) {
	if t.Valid() {
		t.rec().isNumber = v
	}
}

// Next returns the following token in the stream, or the invalid Tok at
// the end of the stream.
func (t Tok) Next() Tok {
	if !t.Valid() {
		return Tok{}
	}
	return Tok{a: t.a, idx: t.rec().next}
}

// Prev returns the preceding token in the stream, or the invalid Tok at
// the start of the stream.
func (t Tok) Prev() Tok {
	if !t.Valid() {
		return Tok{}
	}
	return Tok{a: t.a, idx: t.rec().prev}
}

// Link returns the token's matching bracket partner, or the invalid Tok
// if this token is not a linked bracket.
func (t Tok) Link() Tok {
	if !t.Valid() {
		return Tok{}
	}
	return Tok{a: t.a, idx: t.rec().link}
}

// SetLink links two bracket tokens to each other. Both directions are
// recorded so that t.Link().Link() == t.
func (t Tok) SetLink(other Tok) {
	if !t.Valid() || !other.Valid() || t.a != other.a {
		return
	}
	t.rec().link = other.idx
	other.rec().link = t.idx
}

// TokAt advances n tokens forward (or, if n is negative, backward) from
// t, returning the invalid Tok if the walk falls off either end.
func (t Tok) TokAt(n int) Tok {
	cur := t
	if n >= 0 {
		for i := 0; i < n && cur.Valid(); i++ {
			cur = cur.Next()
		}
	} else {
		for i := 0; i > n && cur.Valid(); i-- {
			cur = cur.Prev()
		}
	}
	return cur
}

// StrAt is tokAt(n).Text(): the spelling of the token n positions away,
// or "" if that position does not exist.
func (t Tok) StrAt(n int) string {
	return t.TokAt(n).Text()
}

// Equal reports whether t and o refer to the same token in the same
// arena.
func (t Tok) Equal(o Tok) bool {
	return t.a == o.a && t.idx == o.idx
}
