package parallel

import (
	"io"
	"strconv"

	"github.com/cwbudde/corecheck/internal/diag"
)

// AnalyzeFunc instantiates a fresh analyzer for one file and reports
// every diagnostic it finds through report.
type AnalyzeFunc func(file string, report func(diag.Diagnostic))

// RunWorker analyzes file and writes its diagnostics, in emission
// order, as '2' frames to w, followed by exactly one '3' frame carrying
// the file's result count.
func RunWorker(w io.Writer, file string, analyze AnalyzeFunc) error {
	count := 0
	var firstErr error

	analyze(file, func(d diag.Diagnostic) {
		count++
		if firstErr != nil {
			return
		}
		if err := WriteFrame(w, FrameDiagnostic, d.Serialize()); err != nil {
			firstErr = err
		}
	})
	if firstErr != nil {
		return firstErr
	}

	return WriteFrame(w, FrameDone, strconv.Itoa(count))
}
