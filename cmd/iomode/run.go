package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iomode/internal/config"
	"iomode/internal/driver"
	"iomode/internal/repl"
)

var runCmd = &cobra.Command{
	Use:   "run file.io",
	Short: "Run an Io source file through the configured interpreter",
	Long: `Run collapses the file into a single logical line and feeds it to the
interpreter's stdin, the same way the repl submits fragments.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Discover("")
	if err != nil {
		return err
	}

	collapsed, err := driver.NormalizeFile(args[0])
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	session, err := repl.StartSession(cmd.Context(), cfg.Repl, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if sendErr := session.Send(collapsed); sendErr != nil {
		_ = session.Close()
		return sendErr
	}
	return session.Close()
}
