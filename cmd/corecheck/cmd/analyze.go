package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/corecheck/internal/check"
	_ "github.com/cwbudde/corecheck/internal/checks"
	"github.com/cwbudde/corecheck/internal/diag"
	"github.com/cwbudde/corecheck/internal/parallel"
	"github.com/cwbudde/corecheck/internal/settings"
	"github.com/cwbudde/corecheck/internal/symboldb"
	"github.com/cwbudde/corecheck/internal/token"
)

var analyzeSettings = settings.New()

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Run checks over one or more source files",
	Long: `analyze tokenizes each source file, builds its symbol database and
runs every registered check against it, reporting diagnostics to
stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	flags := analyzeCmd.Flags()
	flags.IntVarP(&analyzeSettings.Jobs, "jobs", "j", 1, "number of files to check concurrently")
	flags.BoolVar(&analyzeSettings.CheckCodingStyle, "style", false, "enable style and performance diagnostics")
	flags.BoolVar(&analyzeSettings.Inconclusive, "inconclusive", false, "allow inconclusive diagnostics")
	flags.BoolVar(&analyzeSettings.Debug, "debug", false, "enable internal debug diagnostics")
	flags.BoolVar(&analyzeSettings.DebugWarnings, "debug-warnings", false, "show warnings the simplification passes produced")
	flags.BoolVar(&analyzeSettings.Force, "force", false, "check all configurations, not just the first")
	flags.BoolVar(&analyzeSettings.ErrorsOnly, "quiet", false, "only report diagnostics, suppressing progress output")
	flags.IntVar(&analyzeSettings.ExitCode, "error-exitcode", 0, "exit with this status if any diagnostic is reported (0 disables)")
	flags.BoolVar(&analyzeSettings.XML, "xml", false, "report diagnostics as XML")
	flags.IntVar(&analyzeSettings.XMLVersion, "xml-version", 2, "XML schema version (1 or 2)")
	flags.StringSliceVarP(&analyzeSettings.IncludePaths, "include", "I", nil, "additional include search path")
	flags.StringVar(&analyzeSettings.UserDefines, "define", "", "semicolon-separated preprocessor defines")
	flags.StringVar(&analyzeSettings.OutputFormat, "template", "", "free-form output template, e.g. \"{file}:{line}: {severity}: {message}\"")
	flags.BoolVar(&analyzeSettings.ReportProgress, "report-progress", false, "report the number of files checked so far")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := diag.NewLogger(os.Stdout)
	logger.Verbose = verbose
	logger.ErrorsOnly = analyzeSettings.ErrorsOnly
	logger.ReportProgress = analyzeSettings.ReportProgress
	logger.XML = analyzeSettings.XML
	logger.XMLVersion = analyzeSettings.XMLVersion
	logger.OutputFormat = analyzeSettings.OutputFormat

	logger.Open()
	defer logger.Close()

	analyze := func(file string, report func(diag.Diagnostic)) {
		analyzeFile(file, report)
	}

	total, err := parallel.Run(context.Background(), args, analyzeSettings.EffectiveJobs(), analyze, logger)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	logger.ReportStatus(len(args), len(args))

	if analyzeSettings.ExitCode != 0 && total > 0 {
		os.Exit(analyzeSettings.ExitCode)
	}
	return nil
}

// analyzeFile tokenizes one file, builds its symbol database, and runs
// every registered check against it, reporting each diagnostic through
// report. It is the single-file analyzer the parallel driver's worker
// side runs once per assigned file.
func analyzeFile(file string, report func(diag.Diagnostic)) {
	src, err := os.ReadFile(file)
	if err != nil {
		report(diag.New("fileOpen", diag.Error, "Unable to read file: "+err.Error(), nil))
		return
	}

	arena := token.NewFixture(file, string(src))
	first := arena.First()

	recorder := diag.NewLogger(new(strings.Builder))
	recorder.Sink = report

	db := symboldb.Build(first, recorder)

	ctx := check.NewContext(first, db, analyzeSettings, recorder)
	check.Run(ctx)
}
