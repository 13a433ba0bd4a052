package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// XMLHeader returns the `<?xml ...?><results ...>` prologue for the given
// XML version.
func XMLHeader(version int) string {
	if version > 1 {
		return fmt.Sprintf("<?xml version=\"1.0\"?>\n<results version=\"%d\">", version)
	}
	return "<?xml version=\"1.0\"?>\n<results>"
}

// XMLFooter returns the closing `</results>` tag.
func XMLFooter() string {
	return "</results>"
}

// ToXML renders a single diagnostic as one `<error>` element. Version 1
// is the legacy single-line form used only for backward compatibility: a
// self-closed element carrying just the deepest call-stack frame and a
// severity collapsed to "error"/"style". Version 2 is the current form:
// a full element with nested, innermost-first <location> children.
func (d Diagnostic) ToXML(verbose bool, version int) string {
	var xml strings.Builder
	if version == 1 {
		xml.WriteString("<error")
		if len(d.CallStack) > 0 {
			deepest := d.CallStack[len(d.CallStack)-1]
			xml.WriteString(" file=\"")
			xml.WriteString(xmlEscape(deepest.File))
			xml.WriteString("\" line=\"")
			xml.WriteString(strconv.Itoa(deepest.Line))
			xml.WriteString("\"")
		}
		sevTag := "style"
		if d.Severity == Error {
			sevTag = "error"
		}
		xml.WriteString(" id=\"")
		xml.WriteString(d.ID)
		xml.WriteString("\" severity=\"")
		xml.WriteString(sevTag)
		xml.WriteString("\" msg=\"")
		xml.WriteString(xmlEscape(d.Message(verbose)))
		xml.WriteString("\"/>")
		return xml.String()
	}

	xml.WriteString("  <error id=\"")
	xml.WriteString(d.ID)
	xml.WriteString("\" severity=\"")
	xml.WriteString(d.Severity.String())
	xml.WriteString("\" msg=\"")
	xml.WriteString(xmlEscape(d.ShortMessage))
	xml.WriteString("\" verbose=\"")
	xml.WriteString(xmlEscape(d.VerboseMessage))
	xml.WriteString("\">\n")
	for i := len(d.CallStack) - 1; i >= 0; i-- {
		loc := d.CallStack[i]
		xml.WriteString("    <location file=\"")
		xml.WriteString(xmlEscape(loc.File))
		xml.WriteString("\" line=\"")
		xml.WriteString(strconv.Itoa(loc.Line))
		xml.WriteString("\"/>\n")
	}
	xml.WriteString("  </error>")
	return xml.String()
}

// xmlEscape escapes the five characters the wire format requires: <, >,
// &, " and newline (rendered as the numeric character reference &#xa;,
// since attribute values cannot contain a literal newline).
func xmlEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '&':
			sb.WriteString("&amp;")
		case '"':
			sb.WriteString("&quot;")
		case '\n':
			sb.WriteString("&#xa;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
