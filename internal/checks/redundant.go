package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/match"
)

func init() {
	check.Register(&RedundantIfRemoveCheck{})
}

// RedundantIfRemoveCheck flags the shape
// "if ( v . find ( x ) != v . end ( ) ) { v . remove ( x ) ; }": the
// remove() call already does nothing when x isn't present, so the find
// guard is redundant.
type RedundantIfRemoveCheck struct{}

func (c *RedundantIfRemoveCheck) Name() string             { return "redundantIfRemove" }
func (c *RedundantIfRemoveCheck) RunChecks(*check.Context) {}

func (c *RedundantIfRemoveCheck) RunSimplifiedChecks(ctx *check.Context) {
	const pattern = "if ( %var% . find ( %any% ) != %var% . end ( ) ) {"

	for t := ctx.First; t.Valid(); t = t.Next() {
		if !match.Match(t, pattern, 0) {
			continue
		}
		container1 := t.TokAt(2).Text()
		needle1 := t.TokAt(6).Text()
		container2 := t.TokAt(9).Text()

		inner := t.TokAt(15).Next()
		if !match.Match(inner, "%var% . remove ( %any% ) ; }", 0) {
			continue
		}
		container3 := inner.Text()
		needle2 := inner.TokAt(4).Text()

		if container1 == container2 && container2 == container3 && needle1 == needle2 {
			ctx.ReportError(t, diag.Style, "redundantIfRemove",
				"Redundant checking of STL container element. "+
					"The remove method in the STL will not do anything if element doesn't exist")
		}
	}
}
