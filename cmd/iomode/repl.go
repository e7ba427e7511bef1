package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"iomode/internal/config"
	"iomode/internal/repl"
	"iomode/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Io interpreter session",
	Long: `Repl launches the configured Io interpreter and relays input to it.
Multi-line fragments are collapsed into one logical line before submission.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Bool("plain", false, "plain line-oriented loop instead of the terminal UI")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}

	cfg, err := config.Discover("")
	if err != nil {
		return err
	}

	if plain || !isTerminal(os.Stdout) {
		return runPlainRepl(cmd, cfg)
	}
	return runReplUI(cmd, cfg)
}

func runPlainRepl(cmd *cobra.Command, cfg config.Config) error {
	session, err := repl.StartSession(cmd.Context(), cfg.Repl, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if loopErr := repl.Loop(os.Stdin, os.Stdout, session); loopErr != nil {
		_ = session.Close()
		return loopErr
	}
	return session.Close()
}

func runReplUI(cmd *cobra.Command, cfg config.Config) error {
	outputs := make(chan string, 256)
	lw := ui.NewLineWriter(outputs)

	session, err := repl.StartSession(cmd.Context(), cfg.Repl, lw, lw)
	if err != nil {
		return err
	}

	exited := make(chan error, 1)
	go func() {
		waitErr := session.Wait()
		lw.Flush()
		close(outputs)
		exited <- waitErr
	}()

	title := fmt.Sprintf("io repl (%s)", cfg.Repl.Interpreter)
	model := ui.NewReplModel(title, session, outputs)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	// UI больше не читает outputs; сливаем остаток, иначе интерпретатор,
	// продолжающий писать, навсегда заблокирует LineWriter и Wait.
	go ui.DrainLines(outputs)

	_ = session.CloseStdin()
	waitErr := <-exited
	if uiErr != nil {
		return uiErr
	}
	return waitErr
}
