// Package token implements the analyzer's token stream: a doubly-linked
// sequence of lexical tokens carrying variable identity and bracket
// linkage.
//
// Tokens are not addressed by pointer. They live in an Arena — a
// growable slice of token records — and are referenced by index. This
// sidesteps the cyclic-ownership problem a pointer-linked stream would
// create (every token would point at its neighbors and its bracket
// partner) while still giving O(1) prev/next/link traversal.
package token

// None is the sentinel index meaning "no such token" (nil prev/next/link).
// VarID uses 0, not None, for "not a variable".
const None int32 = -1

type record struct {
	text           string
	line           int
	fileIndex      int
	varID          int
	isName         bool
	isStandardType bool
	isNumber       bool
	prev, next     int32
	link           int32
}

// Arena owns a file's token stream. Zero value is not usable; use
// NewArena.
type Arena struct {
	toks  []record
	files []string
	first int32
	last  int32
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{first: None, last: None}
}

// AddFile registers a source file name and returns its stable index, to
// be used as a token's FileIndex.
func (a *Arena) AddFile(name string) int {
	a.files = append(a.files, name)
	return len(a.files) - 1
}

// FileName resolves a file index back to its registered name.
func (a *Arena) FileName(fileIndex int) string {
	if fileIndex < 0 || fileIndex >= len(a.files) {
		return ""
	}
	return a.files[fileIndex]
}

// Append creates a new token at the end of the stream and returns a
// handle to it.
func (a *Arena) Append(text string, line, fileIndex int) Tok {
	idx := int32(len(a.toks))
	a.toks = append(a.toks, record{
		text:      text,
		line:      line,
		fileIndex: fileIndex,
		prev:      a.last,
		next:      None,
		link:      None,
	})
	if a.last != None {
		a.toks[a.last].next = idx
	} else {
		a.first = idx
	}
	a.last = idx
	return Tok{a: a, idx: idx}
}

// First returns the first token of the stream, or the zero (invalid) Tok
// if the stream is empty.
func (a *Arena) First() Tok { return Tok{a: a, idx: a.first} }

// Last returns the last token of the stream, or the zero (invalid) Tok if
// the stream is empty.
func (a *Arena) Last() Tok { return Tok{a: a, idx: a.last} }

// Len reports the number of tokens in the arena.
func (a *Arena) Len() int { return len(a.toks) }
