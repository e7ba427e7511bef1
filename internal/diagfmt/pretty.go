package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"iomode/internal/diag"
	"iomode/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид, по одной на блок:
// <path>:<line>:<col>: <SEV> <CODE>: <message>
// затем строка-контекст с подчёркиванием ^~~~ по первичному спану.
// Ожидается bag.Sort() заранее.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		sev := d.Severity.String()
		if opts.Color {
			switch d.Severity {
			case diag.SevError:
				sev = errColor.Sprint(sev)
			case diag.SevWarning:
				sev = warnColor.Sprint(sev)
			default:
				sev = infoColor.Sprint(sev)
			}
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

		line := f.Line(int(start.Line))
		if line != "" {
			fmt.Fprintf(w, "  %s\n", line)
			width := int(d.Primary.Len())
			if width < 1 {
				width = 1
			}
			if remain := len(line) - int(start.Col) + 1; width > remain && remain > 0 {
				width = remain
			}
			fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", int(start.Col)-1), strings.Repeat("~", width-1))
		}

		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", f.Path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}
