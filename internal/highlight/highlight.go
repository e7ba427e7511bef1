// Package highlight renders tokenized Io source with ANSI colors. Word
// classification follows the category tables in internal/token; the fixed
// precedence there means a word like "self" always colors as a
// self-reference even though it is also a valid message.
package highlight

import (
	"io"

	"github.com/fatih/color"

	"iomode/internal/token"
)

// Options controls rendering.
type Options struct {
	// Color disables ANSI sequences when false; output is then the source
	// text verbatim.
	Color bool
}

var categoryColors = map[token.Category]*color.Color{
	token.CategorySelfRef:  color.New(color.FgMagenta, color.Bold),
	token.CategoryComment:  color.New(color.FgHiBlack),
	token.CategoryOperator: color.New(color.FgYellow),
	token.CategoryBool:     color.New(color.FgRed),
	token.CategoryProto:    color.New(color.FgCyan, color.Bold),
	token.CategoryMessage:  color.New(color.FgGreen),
}

var (
	stringColor  = color.New(color.FgHiGreen)
	numberColor  = color.New(color.FgBlue)
	invalidColor = color.New(color.FgWhite, color.BgRed)
)

// Write renders the token stream to w. Trivia text (whitespace and comments)
// is emitted verbatim, so the output lines up byte-for-byte with the source
// when coloring is off.
func Write(w io.Writer, tokens []token.Token, opts Options) error {
	for _, tok := range tokens {
		for _, tv := range tok.Leading {
			if err := writeSpan(w, tv.Text, triviaColor(tv), opts); err != nil {
				return err
			}
		}
		if tok.Kind == token.EOF {
			break
		}
		if err := writeSpan(w, tok.Text, tokenColor(tok), opts); err != nil {
			return err
		}
	}
	return nil
}

func triviaColor(tv token.Trivia) *color.Color {
	if tv.IsComment() {
		return categoryColors[token.CategoryComment]
	}
	return nil
}

func tokenColor(tok token.Token) *color.Color {
	switch {
	case tok.Kind == token.Invalid:
		return invalidColor
	case tok.Kind == token.NumberLit:
		return numberColor
	case tok.Kind == token.StringLit || tok.Kind == token.TriQuoteLit:
		return stringColor
	case tok.IsOperator():
		return categoryColors[token.CategoryOperator]
	case tok.Kind == token.Ident:
		if cat, ok := token.Classify(tok.Text); ok {
			return categoryColors[cat]
		}
	}
	return nil
}

func writeSpan(w io.Writer, text string, c *color.Color, opts Options) error {
	if text == "" {
		return nil
	}
	if !opts.Color || c == nil {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := c.Fprint(w, text)
	return err
}
