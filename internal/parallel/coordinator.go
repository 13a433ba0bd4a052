package parallel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/corecheck/internal/diag"
	"golang.org/x/sync/errgroup"
)

// Run analyzes every file in files across up to jobs concurrent workers
// and reports their output and diagnostics through logger, which must
// already be configured for rendered-string de-duplication (the
// default DedupMode) since diagnostics from different files may
// interleave arbitrarily. It returns the sum of each worker's own
// per-file result count, not the post-dedup count logger actually
// rendered.
//
// Within one file, frames are forwarded in the emission order
// RunWorker wrote them. An abnormal worker exit is treated as fatal:
// the first error aborts outstanding work and is returned to the
// caller.
func Run(ctx context.Context, files []string, jobs int, analyze AnalyzeFunc, logger *diag.Logger) (int, error) {
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var total int64

	for _, file := range files {
		file := file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			count, err := runOneFile(file, analyze, logger)
			if err != nil {
				return fmt.Errorf("parallel: %s: %w", file, err)
			}
			atomic.AddInt64(&total, int64(count))
			return nil
		})
	}

	err := g.Wait()
	return int(total), err
}

// runOneFile pipes one file's worker through an in-memory pipe and
// forwards its frames to logger as they arrive.
func runOneFile(file string, analyze AnalyzeFunc, logger *diag.Logger) (int, error) {
	pr, pw := io.Pipe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := RunWorker(pw, file, analyze)
		pw.CloseWithError(err)
	}()
	defer wg.Wait()

	reader := bufio.NewReader(pr)
	count := 0
	for {
		frame, err := ReadFrame(reader)
		if err != nil {
			if err == io.EOF {
				return count, nil
			}
			return count, err
		}

		switch frame.Type {
		case FrameOutput:
			logger.ReportOut(frame.Payload)
		case FrameDiagnostic:
			d, err := diag.Deserialize(frame.Payload)
			if err != nil {
				return count, fmt.Errorf("decoding diagnostic frame: %w", err)
			}
			logger.ReportDiagnostic(d)
		case FrameDone:
			n, err := parseCount(frame.Payload)
			if err != nil {
				return count, err
			}
			return n, nil
		default:
			return count, fmt.Errorf("unknown frame type %q", frame.Type)
		}
	}
}

func parseCount(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("malformed completion count %q", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
