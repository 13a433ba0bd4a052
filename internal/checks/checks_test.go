package checks_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/corecheck/internal/check"
	_ "github.com/cwbudde/corecheck/internal/checks"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/settings"
	"github.com/cwbudde/corecheck/internal/symboldb"
	"github.com/cwbudde/corecheck/internal/token"
)

func runAll(t *testing.T, src string, withDB bool) string {
	t.Helper()
	arena := token.NewFixture("a.cpp", src)

	buf := &bytes.Buffer{}
	logger := diag.NewLogger(buf)

	s := settings.New()
	s.CheckCodingStyle = true

	var db *symboldb.Database
	if withDB {
		db = symboldb.Build(arena.First(), logger)
	}

	ctx := check.NewContext(arena.First(), db, s, logger)
	check.Run(ctx)
	return buf.String()
}

func TestScenarioS1IteratorCrossContainer(t *testing.T) {
	out := runAll(t, `void f(){ std::list<int> a,b; for(std::list<int>::iterator it=a.begin(); it!=b.end(); ++it){} }`, false)
	if !strings.Contains(out, "(error)") || !strings.Contains(out, "Same iterator is used with both a and b") {
		t.Fatalf("expected an iterators error diagnostic, got %q", out)
	}
}

func TestScenarioS2MismatchingContainers(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> a,b; std::find(a.begin(), b.end(), 22); }`, false)
	if !strings.Contains(out, "(error)") || !strings.Contains(out, "mismatching containers") {
		t.Fatalf("expected a mismatchingContainers diagnostic, got %q", out)
	}
}

func TestScenarioS3DereferenceAfterErase(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> v; auto i=v.begin()+2; v.erase(i); *i; }`, false)
	if !strings.Contains(out, "(error)") || !strings.Contains(out, "Dereferenced iterator 'i' has been erased") {
		t.Fatalf("expected an eraseDereference diagnostic, got %q", out)
	}
}

func TestScenarioS4OutOfBounds(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> v; for(unsigned i=0;i<=v.size();++i){ v[i]=0; } }`, false)
	if !strings.Contains(out, "When i==v.size(), v[i] is out of bounds") {
		t.Fatalf("expected a stlOutOfBounds diagnostic, got %q", out)
	}
}

func TestScenarioS5UninitializedMember(t *testing.T) {
	out := runAll(t, `class C{ public: C(){} int i; };`, true)
	if !strings.Contains(out, "(warning)") || !strings.Contains(out, "Member variable not initialized in the constructor 'C::i'") {
		t.Fatalf("expected a constructor uninitVar diagnostic, got %q", out)
	}
}

func TestNoFalsePositiveWhenMemberIsInitialized(t *testing.T) {
	out := runAll(t, `class C{ public: C() : i(0) {} int i; };`, true)
	if strings.Contains(out, "not initialized") {
		t.Fatalf("expected no uninitVar diagnostic once the initializer list sets i, got %q", out)
	}
}

func TestEraseByValueInvalidatesIterator(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> v; auto i=v.begin()+2; v.erase(*i); }`, false)
	if !strings.Contains(out, "(error)") || !strings.Contains(out, "Iterator 'i' becomes invalid when deleted by value from 'v'") {
		t.Fatalf("expected an eraseByValue diagnostic, got %q", out)
	}
}

func TestReusingErasedIteratorIsInvalid(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> v; auto i=v.begin(); v.erase(i); v.erase(i); }`, false)
	if !strings.Contains(out, "(error)") || !strings.Contains(out, "Invalid iterator: i") {
		t.Fatalf("expected an invalidIterator1 diagnostic, got %q", out)
	}
}

func TestNoFalsePositiveForSameContainerIterators(t *testing.T) {
	out := runAll(t, `void f(){ std::list<int> a; for(std::list<int>::iterator it=a.begin(); it!=a.end(); ++it){} }`, false)
	if strings.Contains(out, "Same iterator") {
		t.Fatalf("expected no iterators diagnostic when both ends use the same container, got %q", out)
	}
}

func TestDereferenceAfterEraseInsideNestedBranch(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> v; auto i=v.begin()+2; v.erase(i); if(cond){ if(other){} } *i; }`, false)
	if !strings.Contains(out, "(error)") || !strings.Contains(out, "Dereferenced iterator 'i' has been erased") {
		t.Fatalf("expected the dereference past a nested if/if block to still be caught, got %q", out)
	}
}

func TestReassignedIteratorIsNoLongerInvalid(t *testing.T) {
	out := runAll(t, `void f(){ std::vector<int> v; auto i=v.begin(); v.erase(i); i=v.begin(); *i; }`, false)
	if strings.Contains(out, "eraseDereference") || strings.Contains(out, "has been erased") {
		t.Fatalf("expected no diagnostic once the iterator is reassigned, got %q", out)
	}
}

func TestSuggestConstOnNonMutatingMember(t *testing.T) {
	out := runAll(t, `class C{ public: int get(){ return i; } int i; };`, true)
	if !strings.Contains(out, "(style)") || !strings.Contains(out, "Technically the member function 'C::get' can be const.") {
		t.Fatalf("expected a functionConst diagnostic, got %q", out)
	}
}

func TestNoSuggestConstWhenMemberIsMutated(t *testing.T) {
	out := runAll(t, `class C{ public: void set(int v){ i=v; } int i; };`, true)
	if strings.Contains(out, "member function 'C::set' can be const") {
		t.Fatalf("expected no functionConst diagnostic for a mutating function, got %q", out)
	}
}

func TestUninitializedClassTypedMemberIsFlaggedWhenItNeedsInit(t *testing.T) {
	out := runAll(t, `class Inner{ public: int i; }; class Outer{ public: Outer(){} Inner inner; };`, true)
	if !strings.Contains(out, "Member variable not initialized in the constructor 'Outer::inner'") {
		t.Fatalf("expected inner to be flagged since Inner has no user default constructor and needs init, got %q", out)
	}
}

func TestUninitializedClassTypedMemberSkippedWhenItIsSelfInitializing(t *testing.T) {
	out := runAll(t, `class Inner{ public: Inner(){} int i; }; class Outer{ public: Outer(){} Inner inner; };`, true)
	if strings.Contains(out, "Outer::inner") {
		t.Fatalf("expected no diagnostic for inner since Inner's own default constructor satisfies need-init, got %q", out)
	}
}
