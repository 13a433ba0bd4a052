// Package diag implements the diagnostic model: severities, stable
// identifiers, short/verbose messages, multi-location call stacks, and
// their serialization to the pipe wire format and to XML.
package diag

import (
	"strconv"
	"strings"

	"github.com/cwbudde/corecheck/internal/pathutil"
)

// FileLocation is one frame of a diagnostic's call stack.
type FileLocation struct {
	File string
	Line int
}

// NewFileLocation normalizes file to the internal forward-slash path
// form used for comparison and storage.
func NewFileLocation(file string, line int) FileLocation {
	return FileLocation{File: pathutil.FromNative(file), Line: line}
}

// Diagnostic is a single structured finding.
type Diagnostic struct {
	ID             string
	Severity       Severity
	ShortMessage   string
	VerboseMessage string
	CallStack      []FileLocation // deepest last
}

// New builds a Diagnostic from a raw message. If msg contains a newline,
// the text before it is the short message and the remainder is the
// verbose message; otherwise the two coincide.
func New(id string, severity Severity, msg string, callStack []FileLocation) Diagnostic {
	short, verbose := msg, msg
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		short = msg[:idx]
		verbose = msg[idx+1:]
	}
	return Diagnostic{
		ID:             id,
		Severity:       severity,
		ShortMessage:   short,
		VerboseMessage: verbose,
		CallStack:      callStack,
	}
}

// Message returns the short or verbose message per the verbose flag.
func (d Diagnostic) Message(verbose bool) string {
	if verbose {
		return d.VerboseMessage
	}
	return d.ShortMessage
}

// Equal compares the fields the wire serialization preserves: id,
// severity, short message and call stack. The verbose message is
// intentionally excluded, since the pipe format never carries it.
func (d Diagnostic) Equal(o Diagnostic) bool {
	if d.ID != o.ID || d.Severity != o.Severity || d.ShortMessage != o.ShortMessage {
		return false
	}
	if len(d.CallStack) != len(o.CallStack) {
		return false
	}
	for i := range d.CallStack {
		if d.CallStack[i] != o.CallStack[i] {
			return false
		}
	}
	return true
}

// CallStackString renders the call stack for plain-text output:
// "[file:line] -> [file:line]", outermost (declaration order) first.
func CallStackString(stack []FileLocation) string {
	var sb strings.Builder
	for i, loc := range stack {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString("[")
		sb.WriteString(loc.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(loc.Line))
		sb.WriteString("]")
	}
	return sb.String()
}

// String renders the diagnostic as a single text line: an optional
// call-stack prefix, the severity tag, and the message.
func (d Diagnostic) String(verbose bool) string {
	var sb strings.Builder
	if len(d.CallStack) > 0 {
		sb.WriteString(CallStackString(d.CallStack))
		sb.WriteString(": ")
	}
	if d.Severity != None {
		sb.WriteString("(")
		sb.WriteString(d.Severity.String())
		sb.WriteString(") ")
	}
	sb.WriteString(d.Message(verbose))
	return sb.String()
}
