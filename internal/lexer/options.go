package lexer

import (
	"iomode/internal/diag"
	"iomode/internal/source"
)

// Options configures a Lexer.
type Options struct {
	Reporter diag.Reporter // may be nil: diagnostics are dropped, scanning continues
}

// Всё, что сканер сообщает, уходит warning'ом: токенизация не падает, она
// только аннотирует.
func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
