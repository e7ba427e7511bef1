package token

import "iomode/internal/source"

// TriviaKind classifies the non-semantic text collected in front of a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment  // "# ..." or "// ..." up to end of line
	TriviaBlockComment // "/* ... */", closed by the nearest "*/"
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// Trivia is a run of whitespace or comment text attached to the token that
// follows it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or block comment.
func (tv Trivia) IsComment() bool {
	return tv.Kind == TriviaLineComment || tv.Kind == TriviaBlockComment
}
