package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/corecheck/internal/diag"
)

func TestLoggerDeduplicatesByRenderedString(t *testing.T) {
	var buf bytes.Buffer
	l := diag.NewLogger(&buf)

	d := diag.New("nullPointer", diag.Warning, "Possible null pointer dereference", []diag.FileLocation{
		diag.NewFileLocation("a.cpp", 10),
	})

	if !l.ReportDiagnostic(d) {
		t.Fatalf("first report of a diagnostic should not be a duplicate")
	}
	if l.ReportDiagnostic(d) {
		t.Fatalf("second report of the same diagnostic should be a duplicate")
	}
	if n := strings.Count(buf.String(), "nullPointer"); n != 1 {
		t.Fatalf("expected exactly one rendered line, got %d in %q", n, buf.String())
	}
}

func TestLoggerDedupByIDFileLineIgnoresMessageChanges(t *testing.T) {
	var buf bytes.Buffer
	l := diag.NewLogger(&buf)
	l.Dedup = diag.DedupByIDFileLine

	loc := []diag.FileLocation{diag.NewFileLocation("a.cpp", 10)}
	first := diag.New("nullPointer", diag.Warning, "message one", loc)
	second := diag.New("nullPointer", diag.Warning, "message two", loc)

	if !l.ReportDiagnostic(first) {
		t.Fatalf("first report should not be a duplicate")
	}
	if l.ReportDiagnostic(second) {
		t.Fatalf("same id/file/line with a different message should still dedup")
	}
}

func TestLoggerErrorsOnlySuppressesReportOut(t *testing.T) {
	var buf bytes.Buffer
	l := diag.NewLogger(&buf)
	l.ErrorsOnly = true

	l.ReportOut("checking a.cpp...")
	if buf.Len() != 0 {
		t.Fatalf("ReportOut should be suppressed when ErrorsOnly is set, got %q", buf.String())
	}
}

func TestLoggerXMLWrapsHeaderAndFooter(t *testing.T) {
	var buf bytes.Buffer
	l := diag.NewLogger(&buf)
	l.XML = true
	l.XMLVersion = 2

	l.Open()
	l.ReportDiagnostic(diag.New("id", diag.Error, "msg", nil))
	l.Close()

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("XML output should start with the XML prologue, got %q", out)
	}
	if !strings.Contains(out, "<error id=\"id\"") {
		t.Fatalf("XML output should contain the rendered error element, got %q", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</results>") {
		t.Fatalf("XML output should end with the results footer, got %q", out)
	}
}

func TestLoggerSinkReceivesAcceptedDiagnosticsOnly(t *testing.T) {
	var buf bytes.Buffer
	l := diag.NewLogger(&buf)

	var captured []diag.Diagnostic
	l.Sink = func(d diag.Diagnostic) { captured = append(captured, d) }

	d := diag.New("nullPointer", diag.Warning, "message", nil)
	l.ReportDiagnostic(d)
	l.ReportDiagnostic(d) // duplicate: must not reach the sink again

	if len(captured) != 1 {
		t.Fatalf("expected exactly one diagnostic delivered to the sink, got %d", len(captured))
	}
	if !captured[0].Equal(d) {
		t.Fatalf("sink received %+v, want %+v", captured[0], d)
	}
}

func TestLoggerOutputFormatTemplate(t *testing.T) {
	var buf bytes.Buffer
	l := diag.NewLogger(&buf)
	l.OutputFormat = "{severity}: {message}"

	l.ReportDiagnostic(diag.New("id", diag.Warning, "something is wrong", nil))
	if got := strings.TrimSpace(buf.String()); got != "warning: something is wrong" {
		t.Fatalf("got %q", got)
	}
}
