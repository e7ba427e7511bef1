// Package repl bridges to an external Io interpreter process. Source is
// handed over line-oriented: multi-line fragments are collapsed into a
// single logical line before submission.
package repl

import (
	"golang.org/x/text/unicode/norm"

	"iomode/internal/normalize"
)

// Sender accepts source text for evaluation.
type Sender interface {
	// Send submits one fragment. The fragment may span multiple lines; the
	// implementation collapses it before the interpreter sees it.
	Send(text string) error
}

// Payload converts a source fragment into the exact byte sequence written to
// the interpreter's stdin: comments stripped, line breaks joined, the result
// NFC-normalized and terminated with a single newline.
func Payload(text string) string {
	return norm.NFC.String(normalize.Normalize(text)) + "\n"
}
