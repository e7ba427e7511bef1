package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"iomode/internal/diagfmt"
	"iomode/internal/driver"
	"iomode/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] [file.io]",
	Short: "Print Io source with ANSI syntax colors",
	Long: `Highlight reads an Io source file (or stdin when no file is given) and
writes it back with ANSI colors per token category. Without colors the
output is byte-identical to the input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if len(args) == 1 {
		result, err = driver.Tokenize(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("highlight failed: %w", err)
		}
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		result = driver.TokenizeBytes("<stdin>", content, maxDiagnostics)
	}

	if result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	return highlight.Write(os.Stdout, result.Tokens, highlight.Options{
		Color: useColor(cmd, os.Stdout),
	})
}
