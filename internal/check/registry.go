package check

import "github.com/cwbudde/corecheck/internal/diag"

// Registry is the process-wide set of self-registered checks. Checks
// register themselves at init time via Register; the core enumerates
// the registry once per input file.
type Registry struct {
	checks []Check
}

var global = &Registry{}

// Register adds c to the process-wide registry. Intended to be called
// from a check package's init() function.
func Register(c Check) {
	global.checks = append(global.checks, c)
}

// All returns the registered checks in registration order.
func All() []Check {
	out := make([]Check, len(global.checks))
	copy(out, global.checks)
	return out
}

// Run executes RunChecks then RunSimplifiedChecks for every registered
// check against ctx. A panicking check is isolated (recovered and
// reported as a debug diagnostic) so it cannot take down the rest of
// the run.
func Run(ctx *Context) {
	for _, c := range All() {
		runPhaseIsolated(c, ctx, c.RunChecks)
	}
	for _, c := range All() {
		runPhaseIsolated(c, ctx, c.RunSimplifiedChecks)
	}
}

func runPhaseIsolated(c Check, ctx *Context, phase func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			ctx.ReportError(ctx.First, diag.Debug, "internalError",
				"check "+c.Name()+" panicked and was isolated from the run")
		}
	}()
	phase(ctx)
}
