package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"iomode/internal/driver"
	"iomode/internal/normalize"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file.io]",
	Short: "Collapse Io source into one logical line",
	Long: `Normalize strips comments and joins line breaks so a multi-line Io
fragment can be fed to a line-oriented interpreter as a single statement
list. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var collapsed string
	if len(args) == 1 {
		var err error
		collapsed, err = driver.NormalizeFile(args[0])
		if err != nil {
			return fmt.Errorf("normalize failed: %w", err)
		}
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		collapsed = normalize.Normalize(string(content))
	}

	fmt.Fprintln(os.Stdout, collapsed)
	return nil
}
