package check_test

import (
	"bytes"
	"testing"

	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/settings"
	"github.com/cwbudde/corecheck/internal/token"
)

type recordingCheck struct {
	name        string
	onRun       func(ctx *check.Context)
	onSimplify  func(ctx *check.Context)
	ranChecks   bool
	ranSimplify bool
}

func (r *recordingCheck) Name() string { return r.name }
func (r *recordingCheck) RunChecks(ctx *check.Context) {
	r.ranChecks = true
	if r.onRun != nil {
		r.onRun(ctx)
	}
}
func (r *recordingCheck) RunSimplifiedChecks(ctx *check.Context) {
	r.ranSimplify = true
	if r.onSimplify != nil {
		r.onSimplify(ctx)
	}
}

func newTestContext(t *testing.T) (*check.Context, *bytes.Buffer) {
	t.Helper()
	arena := token.NewFixture("a.cpp", "int x ;")
	var buf bytes.Buffer
	logger := diag.NewLogger(&buf)
	return check.NewContext(arena.First(), nil, settings.New(), logger), &buf
}

func TestReportErrorIncludesCallStack(t *testing.T) {
	ctx, buf := newTestContext(t)
	ctx.PushCallStack(diag.NewFileLocation("caller.cpp", 3))
	ctx.ReportError(ctx.First, diag.Error, "testId", "something bad")
	ctx.PopCallStack()

	out := buf.String()
	if !contains(out, "caller.cpp:3") {
		t.Fatalf("expected rendered diagnostic to include the pushed call stack frame, got %q", out)
	}
	if !contains(out, "a.cpp:1") {
		t.Fatalf("expected rendered diagnostic to include the reporting token's own location, got %q", out)
	}
}

func TestReportErrorGatesStyleSeverity(t *testing.T) {
	ctx, buf := newTestContext(t)
	ctx.Settings.CheckCodingStyle = false

	if ok := ctx.ReportError(ctx.First, diag.Style, "styleId", "style issue"); ok {
		t.Fatalf("expected style diagnostic to be suppressed when CheckCodingStyle is off")
	}
	if buf.Len() != 0 {
		t.Fatalf("suppressed diagnostic should not be rendered, got %q", buf.String())
	}

	ctx.Settings.CheckCodingStyle = true
	if ok := ctx.ReportError(ctx.First, diag.Style, "styleId", "style issue"); !ok {
		t.Fatalf("expected style diagnostic to fire once CheckCodingStyle is on")
	}
}

func TestRegistryRunCallsBothPhasesOnEveryCheck(t *testing.T) {
	a := &recordingCheck{name: "a"}
	b := &recordingCheck{name: "b"}
	check.Register(a)
	check.Register(b)

	ctx, _ := newTestContext(t)
	check.Run(ctx)

	for _, c := range []*recordingCheck{a, b} {
		if !c.ranChecks || !c.ranSimplify {
			t.Errorf("check %q did not run both phases: ranChecks=%v ranSimplify=%v", c.name, c.ranChecks, c.ranSimplify)
		}
	}
}

func TestRegistryIsolatesPanickingCheck(t *testing.T) {
	ok := &recordingCheck{name: "ok"}
	panicky := &recordingCheck{
		name: "panicky",
		onRun: func(ctx *check.Context) {
			panic("boom")
		},
	}
	check.Register(panicky)
	check.Register(ok)

	ctx, _ := newTestContext(t)
	check.Run(ctx) // must not panic out of the test

	if !ok.ranChecks || !ok.ranSimplify {
		t.Fatalf("a panicking check should not prevent other checks from running")
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
