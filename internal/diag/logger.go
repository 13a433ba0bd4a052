package diag

import (
	"fmt"
	"io"
	"strconv"
	"sync"
)

// DedupMode selects how Logger recognizes a diagnostic it has already
// reported. The parallel driver de-duplicates by exact rendered string;
// a single-process run may use the cheaper (id, file, line) key instead.
type DedupMode int

const (
	DedupByRenderedString DedupMode = iota
	DedupByIDFileLine
)

// Logger renders diagnostics to an underlying writer, honoring Settings-
// driven output selection (plain text, XML v1/v2, or a free-form
// template) and de-duplicating repeats across a run.
type Logger struct {
	mu sync.Mutex
	w  io.Writer

	Verbose        bool
	OutputFormat   string // empty selects the default text rendering
	XML            bool
	XMLVersion     int
	ErrorsOnly     bool
	ReportProgress bool
	Dedup          DedupMode

	// Sink, if set, is called with every diagnostic accepted past
	// de-duplication, in addition to the normal rendering to w. The
	// parallel driver's worker side uses this to capture each
	// Diagnostic for serialization onto its pipe frame, without
	// disturbing the single-process rendering path.
	Sink func(Diagnostic)

	seen map[string]bool
}

// NewLogger creates a Logger writing to w with default (plain text, no
// dedup-across-restart) settings; callers set the exported fields to
// match their Settings before first use.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w, seen: make(map[string]bool), XMLVersion: 2}
}

// Open writes the output-format prologue (the XML header, if XML
// rendering is selected). It is a no-op for plain-text output.
func (l *Logger) Open() {
	if l.XML {
		fmt.Fprintln(l.w, XMLHeader(l.XMLVersion))
	}
}

// Close writes the output-format epilogue (the XML footer).
func (l *Logger) Close() {
	if l.XML {
		fmt.Fprintln(l.w, XMLFooter())
	}
}

// ReportOut emits an informational output line. Suppressed when
// ErrorsOnly is set.
func (l *Logger) ReportOut(msg string) {
	if l.ErrorsOnly {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, msg)
}

// ReportStatus emits a progress message (done/total files checked).
// Suppressed unless ReportProgress is set.
func (l *Logger) ReportStatus(done, total int) {
	if !l.ReportProgress || l.ErrorsOnly {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%d/%d files checked\n", done, total)
}

// ReportDiagnostic renders and de-duplicates one diagnostic.
func (l *Logger) ReportDiagnostic(d Diagnostic) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rendered := l.render(d)
	key := rendered
	if l.Dedup == DedupByIDFileLine {
		key = d.ID + "|" + dedupLocation(d)
	}
	if l.seen[key] {
		return false
	}
	l.seen[key] = true
	fmt.Fprintln(l.w, rendered)
	if l.Sink != nil {
		l.Sink(d)
	}
	return true
}

func dedupLocation(d Diagnostic) string {
	if len(d.CallStack) == 0 {
		return ""
	}
	last := d.CallStack[len(d.CallStack)-1]
	return last.File + ":" + strconv.Itoa(last.Line)
}

func (l *Logger) render(d Diagnostic) string {
	switch {
	case l.XML:
		return d.ToXML(l.Verbose, l.XMLVersion)
	case l.OutputFormat != "":
		return d.FormatTemplate(l.Verbose, l.OutputFormat)
	default:
		return d.String(l.Verbose)
	}
}
