package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Serialize renders the diagnostic in the length-prefixed wire format used
// by the parallel driver's pipe protocol:
//
//	LEN " " id LEN " " severity LEN " " short-message STACKLEN " " (LEN " " "LINE:FILE")*
func (d Diagnostic) Serialize() string {
	var sb strings.Builder
	writeField(&sb, d.ID)
	writeField(&sb, d.Severity.String())
	writeField(&sb, d.ShortMessage)
	sb.WriteString(strconv.Itoa(len(d.CallStack)))
	sb.WriteString(" ")
	for _, loc := range d.CallStack {
		writeField(&sb, fmt.Sprintf("%d:%s", loc.Line, loc.File))
	}
	return sb.String()
}

func writeField(sb *strings.Builder, field string) {
	sb.WriteString(strconv.Itoa(len(field)))
	sb.WriteString(" ")
	sb.WriteString(field)
}

// Deserialize parses the wire format produced by Serialize. For every
// diagnostic m, Deserialize(m.Serialize()) reconstructs the same
// (id, severity, short message, call stack) tuple.
func Deserialize(data string) (Diagnostic, error) {
	sc := &fieldScanner{s: data}

	id, err := sc.readField()
	if err != nil {
		return Diagnostic{}, fmt.Errorf("diag: reading id: %w", err)
	}
	sevStr, err := sc.readField()
	if err != nil {
		return Diagnostic{}, fmt.Errorf("diag: reading severity: %w", err)
	}
	short, err := sc.readField()
	if err != nil {
		return Diagnostic{}, fmt.Errorf("diag: reading short message: %w", err)
	}
	count, err := sc.readCount()
	if err != nil {
		return Diagnostic{}, fmt.Errorf("diag: reading call stack length: %w", err)
	}

	stack := make([]FileLocation, 0, count)
	for i := 0; i < count; i++ {
		frame, err := sc.readField()
		if err != nil {
			return Diagnostic{}, fmt.Errorf("diag: reading call stack frame %d: %w", i, err)
		}
		idx := strings.IndexByte(frame, ':')
		if idx < 0 {
			return Diagnostic{}, fmt.Errorf("diag: malformed call stack frame %q", frame)
		}
		line, err := strconv.Atoi(frame[:idx])
		if err != nil {
			return Diagnostic{}, fmt.Errorf("diag: malformed call stack line in %q: %w", frame, err)
		}
		stack = append(stack, FileLocation{Line: line, File: frame[idx+1:]})
	}

	sev, ok := ParseSeverity(sevStr)
	if !ok {
		return Diagnostic{}, fmt.Errorf("diag: unknown severity %q", sevStr)
	}

	return Diagnostic{
		ID:             id,
		Severity:       sev,
		ShortMessage:   short,
		VerboseMessage: short,
		CallStack:      stack,
	}, nil
}

type fieldScanner struct {
	s   string
	pos int
}

func (sc *fieldScanner) readCount() (int, error) {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] != ' ' {
		sc.pos++
	}
	if sc.pos >= len(sc.s) {
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(sc.s[start:sc.pos])
	if err != nil {
		return 0, err
	}
	sc.pos++ // skip the separating space
	return n, nil
}

func (sc *fieldScanner) readField() (string, error) {
	n, err := sc.readCount()
	if err != nil {
		return "", err
	}
	if sc.pos+n > len(sc.s) {
		return "", io.ErrUnexpectedEOF
	}
	field := sc.s[sc.pos : sc.pos+n]
	sc.pos += n
	return field, nil
}
