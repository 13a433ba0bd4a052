package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/match"
)

func init() {
	check.Register(&OutOfBoundsCheck{})
}

// OutOfBoundsCheck flags a loop condition of the form "i <= v . size ( )"
// that lets the loop index reach v.size(), one past the last valid
// element.
type OutOfBoundsCheck struct{}

func (c *OutOfBoundsCheck) Name() string             { return "stlOutOfBounds" }
func (c *OutOfBoundsCheck) RunChecks(*check.Context) {}

func (c *OutOfBoundsCheck) RunSimplifiedChecks(ctx *check.Context) {
	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, "%var% <= %var% . size ( )", 0) {
			continue
		}
		index := t.Text()
		container := t.TokAt(2).Text()

		ctx.ReportError(t, diag.Error, "stlOutOfBounds",
			"When "+index+"=="+container+".size(), "+container+"["+index+"] is out of bounds")
	}
}
