package checks

import (
	"github.com/cwbudde/corecheck/internal/check"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/symboldb"
)

func init() {
	check.Register(&ConstFunctionCheck{})
}

// ConstFunctionCheck flags a non-static, non-virtual member function
// with a body that could be declared const: nothing in it mutates a
// member, calls a non-const sibling member function, or overrides a
// base class's virtual.
type ConstFunctionCheck struct{}

func (c *ConstFunctionCheck) Name() string             { return "functionConst" }
func (c *ConstFunctionCheck) RunChecks(*check.Context) {}

func (c *ConstFunctionCheck) RunSimplifiedChecks(ctx *check.Context) {
	if ctx.DB == nil {
		return
	}
	for _, scope := range ctx.DB.Classes {
		for _, fn := range scope.FunctionList {
			if !symboldb.SuggestConst(scope, fn) {
				continue
			}
			ctx.ReportError(fn.TokenDef, diag.Style, "functionConst",
				"Technically the member function '"+scope.ClassName+"::"+fn.Name+"' can be const.")
		}
	}
}
