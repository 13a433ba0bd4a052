package diag

import (
	"strconv"
	"strings"
)

// FormatTemplate renders the diagnostic through a free-form output-format
// template honoring the placeholders {id}, {severity}, {message}, {file}
// and {line}. {file}/{line} are taken from the deepest call-stack frame,
// or rendered empty if the diagnostic has no call stack. A literal "{"
// not introducing one of these five placeholders is passed through
// unchanged, since substitution only ever matches on an exact literal
// placeholder and never touches anything else.
func (d Diagnostic) FormatTemplate(verbose bool, template string) string {
	result := template
	result = findAndReplace(result, "{id}", d.ID)
	result = findAndReplace(result, "{severity}", d.Severity.String())
	result = findAndReplace(result, "{message}", d.Message(verbose))

	if len(d.CallStack) > 0 {
		deepest := d.CallStack[len(d.CallStack)-1]
		result = findAndReplace(result, "{file}", deepest.File)
		result = findAndReplace(result, "{line}", strconv.Itoa(deepest.Line))
	} else {
		result = findAndReplace(result, "{file}", "")
		result = findAndReplace(result, "{line}", "")
	}
	return result
}

func findAndReplace(source, searchFor, replaceWith string) string {
	return strings.ReplaceAll(source, searchFor, replaceWith)
}
