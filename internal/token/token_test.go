package token

import "testing"

func TestArenaAppendAndTraverse(t *testing.T) {
	a := NewArena()
	fi := a.AddFile("test.cpp")
	a.Append("int", 1, fi)
	a.Append("x", 1, fi)
	a.Append(";", 1, fi)

	tok := a.First()
	var texts []string
	for tok.Valid() {
		texts = append(texts, tok.Text())
		tok = tok.Next()
	}
	want := []string{"int", "x", ";"}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestIndexIsStrictTotalOrderAlongNext(t *testing.T) {
	a := NewFixture("t.cpp", "int x ; float y ; return 0 ;")
	prevIdx := int32(-1)
	n := 0
	for tok := a.First(); tok.Valid(); tok = tok.Next() {
		if tok.Index() <= prevIdx {
			t.Fatalf("Index() did not strictly increase: %d -> %d", prevIdx, tok.Index())
		}
		prevIdx = tok.Index()
		n++
	}
	if n != a.Len() {
		t.Fatalf("traversed %d tokens, arena reports Len() = %d", n, a.Len())
	}
	last := a.Last()
	for tok := last; tok.Valid(); tok = tok.Prev() {
		if tok.Next().Valid() && tok.Next().Index() != tok.Index()+1 {
			t.Fatalf("Prev/Next indices not contiguous at %d", tok.Index())
		}
	}
}

func TestTokAtAndStrAt(t *testing.T) {
	a := NewFixture("t.cpp", "int x ; float y ;")
	first := a.First()
	if first.StrAt(2) != ";" {
		t.Errorf("StrAt(2) = %q, want ';'", first.StrAt(2))
	}
	if first.TokAt(100).Valid() {
		t.Errorf("TokAt out of range should be invalid")
	}
	last := a.Last()
	if last.TokAt(-1).Text() != "y" {
		t.Errorf("TokAt(-1) from end = %q, want 'y'", last.TokAt(-1).Text())
	}
}

func TestLinkBracketsRoundtrip(t *testing.T) {
	a := NewFixture("t.cpp", "void f ( int a , int b ) { return ; }")
	var open, close Tok
	for tok := a.First(); tok.Valid(); tok = tok.Next() {
		if tok.Text() == "(" {
			open = tok
		}
		if tok.Text() == ")" {
			close = tok
		}
	}
	if !open.Link().Equal(close) {
		t.Errorf("'(' did not link to ')'")
	}
	if !close.Link().Equal(open) {
		t.Errorf("Link().Link() invariant broken")
	}
}

func TestLinkBracketsMismatchErrors(t *testing.T) {
	a := NewArena()
	fi := a.AddFile("bad.cpp")
	a.Append("(", 1, fi)
	a.Append(")", 1, fi)
	a.Append(")", 1, fi)
	if err := LinkBrackets(a.First()); err == nil {
		t.Errorf("expected LinkError for unmatched closer")
	}
}

func TestVarIDSharedAcrossOccurrences(t *testing.T) {
	a := NewFixture("t.cpp", "int x ; x = 1 ;")
	var ids []int
	for tok := a.First(); tok.Valid(); tok = tok.Next() {
		if tok.Text() == "x" {
			ids = append(ids, tok.VarID())
		}
	}
	if len(ids) != 2 || ids[0] == 0 || ids[0] != ids[1] {
		t.Errorf("expected shared nonzero var-id, got %v", ids)
	}
}

func TestLinkAngleBrackets(t *testing.T) {
	a := NewFixture("t.cpp", "std :: list < int > :: iterator it")
	var opens, closes []Tok
	for tok := a.First(); tok.Valid(); tok = tok.Next() {
		switch tok.Text() {
		case "<":
			opens = append(opens, tok)
		case ">":
			closes = append(closes, tok)
		}
	}
	if err := LinkAngleBrackets(opens, closes); err != nil {
		t.Fatalf("LinkAngleBrackets: %v", err)
	}
	if !opens[0].Link().Equal(closes[0]) {
		t.Errorf("'<' did not link to '>'")
	}
}
