// Package check implements the check framework: a process-wide registry
// of named checks, each re-entrant per instance, run over every input
// file's token stream and symbol database.
package check

import (
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/settings"
	"github.com/cwbudde/corecheck/internal/symboldb"
	"github.com/cwbudde/corecheck/internal/token"
)

// Check is a single named analysis. Both phases are optional; a check
// that only cares about raw tokens implements RunChecks and leaves
// RunSimplifiedChecks a no-op, and vice versa.
type Check interface {
	// Name identifies the check for logging and self-registration.
	Name() string

	// RunChecks runs over the unsimplified token stream.
	RunChecks(ctx *Context)

	// RunSimplifiedChecks runs after simplification passes have
	// normalized the token stream.
	RunSimplifiedChecks(ctx *Context)
}

// Context threads everything a check needs through both of its phases:
// the file's first token, its symbol database, the active settings and
// the logger to report through. Checks must hold no mutable state of
// their own across calls; anything per-run lives here.
type Context struct {
	First    token.Tok
	DB       *symboldb.Database
	Settings *settings.Settings
	Logger   *diag.Logger

	callStack []diag.FileLocation
}

// NewContext builds a Context for one file.
func NewContext(first token.Tok, db *symboldb.Database, s *settings.Settings, logger *diag.Logger) *Context {
	return &Context{First: first, DB: db, Settings: s, Logger: logger}
}

// PushCallStack records an enclosing location (e.g. the call site that
// led into the code currently being examined) that subsequent
// reportError calls should prefix onto their diagnostic's call stack.
func (c *Context) PushCallStack(loc diag.FileLocation) {
	c.callStack = append(c.callStack, loc)
}

// PopCallStack removes the most recently pushed location.
func (c *Context) PopCallStack() {
	if len(c.callStack) > 0 {
		c.callStack = c.callStack[:len(c.callStack)-1]
	}
}

// ReportError composes a diagnostic from tok's file+line plus whatever
// enclosing context is currently pushed, and hands it to the logger. It
// returns false if the severity is disabled by the active settings
// (style/performance gated on CheckCodingStyle, debug on Debug), letting a check short-circuit expensive
// follow-up work when its finding won't be reported anyway.
func (c *Context) ReportError(tok token.Tok, severity diag.Severity, id, message string) bool {
	if !c.severityEnabled(severity) {
		return false
	}
	stack := make([]diag.FileLocation, 0, len(c.callStack)+1)
	stack = append(stack, c.callStack...)
	stack = append(stack, diag.NewFileLocation(tok.File(), tok.Line()))

	d := diag.New(id, severity, message, stack)
	if c.Logger != nil {
		c.Logger.ReportDiagnostic(d)
	}
	return true
}

func (c *Context) severityEnabled(severity diag.Severity) bool {
	if c.Settings == nil {
		return true
	}
	switch severity {
	case diag.Style, diag.Performance:
		return c.Settings.CheckCodingStyle
	case diag.Debug:
		return c.Settings.Debug
	default:
		return true
	}
}
