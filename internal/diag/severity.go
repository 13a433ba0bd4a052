package diag

// Severity tags a diagnostic's importance. It carries no ordering beyond
// its canonical string form: severities are a classification, not a
// scale.
type Severity int

const (
	None Severity = iota
	Debug
	Style
	Performance
	Warning
	Error
)

var severityNames = [...]string{
	None:        "none",
	Debug:       "debug",
	Style:       "style",
	Performance: "performance",
	Warning:     "warning",
	Error:       "error",
}

// String returns the canonical lowercase form of the severity.
func (s Severity) String() string {
	if s < None || s > Error {
		return "none"
	}
	return severityNames[s]
}

// ParseSeverity parses the canonical string form of a severity. It
// reports false for any string outside the closed set.
func ParseSeverity(s string) (Severity, bool) {
	for sev, name := range severityNames {
		if name == s {
			return Severity(sev), true
		}
	}
	return None, false
}
