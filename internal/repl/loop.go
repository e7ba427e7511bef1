package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt is printed before each input line in the plain loop.
const Prompt = ">> "

// Loop reads lines from in and forwards each one through the sender until EOF
// or the :quit command. It is the fallback surface when the terminal UI is
// not wanted.
func Loop(in io.Reader, out io.Writer, sender Sender) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		fmt.Fprint(out, Prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := sc.Text()
		if isQuit(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := sender.Send(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q", "exit":
		return true
	}
	return false
}
