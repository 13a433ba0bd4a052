package symboldb

import (
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/token"
)

const needInitMaxRounds = 100

// resolveCrossReferences resolves derived-from class names, collects
// member variables, and computes the need-initialization fixed point.
func resolveCrossReferences(classes []*Scope, logger *diag.Logger) {
	resolveDerivedFrom(classes)
	for _, c := range classes {
		collectVariables(c, logger)
	}
	resolveMemberTypeScopes(classes)
	computeNeedInitialization(classes, logger)
}

// resolveDerivedFrom resolves each class's raw DerivedFrom names against
// the known class scopes, preferring a match in the same enclosing
// (namespace) scope over any other.
func resolveDerivedFrom(classes []*Scope) {
	for _, c := range classes {
		for _, baseName := range c.DerivedFrom {
			base := findBestMatch(c, baseName, classes)
			if base != nil {
				c.DerivedFromScopes = append(c.DerivedFromScopes, base)
			}
		}
	}
}

func findBestMatch(from *Scope, name string, classes []*Scope) *Scope {
	var fallback *Scope
	for _, c := range classes {
		if c.ClassName != name {
			continue
		}
		if c.NestedIn == from.NestedIn {
			return c
		}
		if fallback == nil {
			fallback = c
		}
	}
	return fallback
}

// resolveMemberTypeScopes links each class-typed member variable to its
// resolved Scope, needed by need-initialization and the constructors check.
func resolveMemberTypeScopes(classes []*Scope) {
	byName := make(map[string]*Scope, len(classes))
	for _, c := range classes {
		byName[c.ClassName] = c
	}
	for _, c := range classes {
		for _, v := range c.VarList {
			if v.IsClass {
				v.TypeScope = byName[v.TypeToken.Text()]
			}
		}
	}
}

// computeNeedInitialization computes a fixed point over the class
// forest: a class with a user-defined default constructor is False;
// otherwise it is True if any non-class member exists or any member's
// type is True; False only if all member types are known False; it
// remains Unknown until its dependencies resolve. Bounded at 100 rounds;
// anything still Unknown after that emits a non-fatal debug diagnostic.
func computeNeedInitialization(classes []*Scope, logger *diag.Logger) {
	for _, c := range classes {
		c.NeedInitialization = Unknown
	}

	for round := 0; round < needInitMaxRounds; round++ {
		changed := false
		for _, c := range classes {
			if c.NeedInitialization != Unknown {
				continue
			}
			if hasUserDefaultConstructor(c) {
				c.NeedInitialization = NoInitNeeded
				changed = true
				continue
			}
			if resolved, val := evalNeedInit(c); resolved {
				c.NeedInitialization = val
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	if logger == nil {
		return
	}
	for _, c := range classes {
		if c.NeedInitialization == Unknown {
			logger.ReportDiagnostic(diag.New("needInitialization",
				diag.Debug,
				"Internal error: could not determine if "+c.ClassName+" needs initialization",
				[]diag.FileLocation{diag.NewFileLocation(c.ClassDefToken.File(), c.ClassDefToken.Line())}))
		}
	}
}

func hasUserDefaultConstructor(c *Scope) bool {
	for _, f := range c.FunctionList {
		if f.Type == Constructor && countArgs(f.ArgDefTok) == 0 {
			return true
		}
	}
	return false
}

// countArgs counts the comma-separated parameters of an argument list
// starting at its opening '(', treating a bare "( )" or "( void )" as
// zero arguments.
func countArgs(argOpen token.Tok) int {
	t := argOpen.Next()
	if t.Text() == ")" {
		return 0
	}
	if t.Text() == "void" && t.Next().Text() == ")" {
		return 0
	}
	count := 1
	depth := 0
	for t.Valid() && !(depth == 0 && t.Text() == ")") {
		switch t.Text() {
		case "(", "<", "[":
			depth++
		case ")", ">", "]":
			depth--
		case ",":
			if depth == 0 {
				count++
			}
		}
		t = t.Next()
	}
	return count
}

// evalNeedInit evaluates a single class's member list against the
// already-resolved state of its class-typed members. It returns
// (false, _) if the result still depends on an Unknown member type.
func evalNeedInit(c *Scope) (resolved bool, val NeedInit) {
	anyNonClass := false
	allClassFalse := true
	sawAny := false

	for _, v := range c.VarList {
		if v.IsStatic {
			continue
		}
		sawAny = true
		if !v.IsClass {
			anyNonClass = true
			continue
		}
		if v.TypeScope == nil {
			// Unresolvable (e.g. a standard-library container type not
			// present in this translation unit's symbol database):
			// conservatively treat as needing initialization.
			anyNonClass = true
			continue
		}
		switch v.TypeScope.NeedInitialization {
		case NoInitNeeded:
			continue
		case NeedsInit:
			return true, NeedsInit
		default:
			allClassFalse = false
		}
	}

	if anyNonClass {
		return true, NeedsInit
	}
	if !sawAny {
		return true, NoInitNeeded
	}
	if allClassFalse {
		return true, NoInitNeeded
	}
	return false, Unknown
}
