package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/match"
)

func init() {
	check.Register(&MismatchingContainersCheck{})
}

// MismatchingContainersCheck flags STL algorithm calls whose begin/end
// range arguments come from two different containers.
type MismatchingContainersCheck struct{}

func (c *MismatchingContainersCheck) Name() string             { return "mismatchingContainers" }
func (c *MismatchingContainersCheck) RunChecks(*check.Context) {}

func (c *MismatchingContainersCheck) RunSimplifiedChecks(ctx *check.Context) {
	const pattern = "std :: find|find_if|count|transform|replace|replace_if|sort ( " +
		"%var% . begin|rbegin ( ) , %var% . end|rend ( ) ,"

	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, pattern, 0) {
			continue
		}
		first := t.TokAt(4).Text()
		second := t.TokAt(10).Text()
		if first != second {
			ctx.ReportError(t, diag.Error, "mismatchingContainers", "mismatching containers")
		}
	}
}
