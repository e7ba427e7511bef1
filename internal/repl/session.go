package repl

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"iomode/internal/config"
)

// Session is a running interpreter subprocess. Its stdout and stderr are
// relayed to the writers given at start; input goes in through Send.
type Session struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// StartSession launches the configured interpreter. The process inherits ctx:
// cancelling it kills the interpreter.
func StartSession(ctx context.Context, cfg config.Repl, stdout, stderr io.Writer) (*Session, error) {
	if cfg.Interpreter == "" {
		return nil, config.ErrInterpreterMissing
	}
	path, err := exec.LookPath(cfg.Interpreter)
	if err != nil {
		return nil, fmt.Errorf("interpreter %q not found: %w", cfg.Interpreter, err)
	}

	cmd := exec.CommandContext(ctx, path, cfg.Args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %q: %w", cfg.Interpreter, err)
	}
	return &Session{cmd: cmd, stdin: stdin}, nil
}

// Send collapses the fragment into one logical line and writes it to the
// interpreter's stdin.
func (s *Session) Send(text string) error {
	_, err := io.WriteString(s.stdin, Payload(text))
	return err
}

// CloseStdin signals end of input. Line-oriented interpreters exit on it.
func (s *Session) CloseStdin() error {
	return s.stdin.Close()
}

// Wait blocks until the interpreter exits.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Close shuts stdin and waits for the interpreter to exit.
func (s *Session) Close() error {
	if err := s.stdin.Close(); err != nil {
		_ = s.cmd.Wait()
		return err
	}
	return s.cmd.Wait()
}
