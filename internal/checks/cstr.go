package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/match"
)

func init() {
	check.Register(&DanglingCStrCheck{})
}

// DanglingCStrCheck flags "throw x . c_str ( ) ;": the temporary string
// the pointer was taken from is gone by the time a handler could read it.
type DanglingCStrCheck struct{}

func (c *DanglingCStrCheck) Name() string             { return "stlcstr" }
func (c *DanglingCStrCheck) RunChecks(*check.Context) {}

func (c *DanglingCStrCheck) RunSimplifiedChecks(ctx *check.Context) {
	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, "throw %var% . c_str ( ) ;", 0) {
			continue
		}
		ctx.ReportError(t, diag.Error, "stlcstr", "Dangerous usage of c_str()")
	}
}
