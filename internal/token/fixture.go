package token

import "unicode"

// NewFixture tokenizes src into an Arena. It is a minimal stand-in for
// the real preprocessor/lexer, which is treated as an external
// collaborator producing the token stream this package consumes: it
// splits on whitespace and punctuation, classifies names/numbers, links
// "(", "[" and "{" brackets, and assigns a variable id to every distinct
// identifier spelling that is not a known keyword (so repeated
// occurrences of the same variable share an id).
// "<"/">" are left unlinked; callers that need template-bracket linkage
// for a fixture call LinkAngleBrackets themselves once they know which
// occurrences are brackets.
func NewFixture(file, src string) *Arena {
	a := NewArena()
	fileIdx := a.AddFile(file)

	line := 1
	varIDs := map[string]int{}
	nextVarID := 1

	runes := []rune(src)
	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '\n':
			line++
			i++
		case unicode.IsSpace(ch):
			i++
		case isIdentStart(ch):
			start := i
			for i < len(runes) && isIdentPart(runes[i]) {
				i++
			}
			text := string(runes[start:i])
			tok := a.Append(text, line, fileIdx)
			tok.SetIsName(true)
			if isStandardTypeKeyword(text) {
				tok.SetIsStandardType(true)
			}
			if !isKeyword(text) {
				id, ok := varIDs[text]
				if !ok {
					id = nextVarID
					nextVarID++
					varIDs[text] = id
				}
				tok.SetVarID(id)
			}
		case unicode.IsDigit(ch):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tok := a.Append(string(runes[start:i]), line, fileIdx)
			tok.SetIsNumber(true)
		default:
			// Multi-character punctuation tokens used by C-family checks.
			if twoCh, ok := peekTwoCharOp(runes, i); ok {
				a.Append(twoCh, line, fileIdx)
				i += len(twoCh)
				continue
			}
			a.Append(string(ch), line, fileIdx)
			i++
		}
	}

	_ = LinkBrackets(a.First())
	_ = LinkSquareBrackets(a.First())
	_ = LinkCurlyBrackets(a.First())
	return a
}

func peekTwoCharOp(runes []rune, i int) (string, bool) {
	if i+1 >= len(runes) {
		return "", false
	}
	two := string(runes[i : i+2])
	switch two {
	case "::", "!=", "==", "<=", ">=", "&&", "||", "++", "--", "->", "+=", "-=":
		return two, true
	}
	return "", false
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

var keywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "int": true, "long": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true, "struct": true,
	"switch": true, "typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true, "class": true, "namespace": true, "public": true,
	"private": true, "protected": true, "virtual": true, "friend": true, "explicit": true,
	"operator": true, "new": true, "delete": true, "this": true, "template": true,
	"typename": true, "using": true, "try": true, "catch": true, "throw": true,
	"true": true, "false": true, "nullptr": true, "bool": true, "mutable": true,
	"std": true, "const_cast": true, "static_cast": true, "dynamic_cast": true,
}

var standardTypes = map[string]bool{
	"int": true, "char": true, "bool": true, "float": true, "double": true,
	"long": true, "short": true, "unsigned": true, "signed": true, "void": true,
	"size_t": true, "wchar_t": true,
}

func isKeyword(text string) bool        { return keywords[text] }
func isStandardTypeKeyword(t string) bool { return standardTypes[t] }
