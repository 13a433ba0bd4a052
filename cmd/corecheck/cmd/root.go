package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "corecheck",
	Short: "Static analyzer for C-family sources",
	Long: `corecheck tokenizes, builds a symbol database for, and runs a set
of pattern- and flow-sensitive checks over C-family source files,
reporting diagnostics about suspicious or incorrect code.

corecheck does not parse a full AST and does not generate object code;
analysis is a hybrid of token-stream pattern matching and lightweight
intra-procedural flow analysis.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "use the verbose form of diagnostic messages")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
