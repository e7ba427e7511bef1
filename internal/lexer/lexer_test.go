package lexer_test

import (
	"fmt"
	"testing"

	"iomode/internal/diag"
	"iomode/internal/lexer"
	"iomode/internal/source"
	"iomode/internal/token"
)

// bagMessages форматирует накопленные диагностики для сообщений об ошибках.
func bagMessages(bag *diag.Bag) []string {
	out := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}

// makeTestLexer создаёт лексер для тестовой строки. Диагностика идёт через
// diag.BagReporter, тем же путём, что и в driver.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.io", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF включительно.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность токенов (без EOF).
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nwarnings: %v",
			len(expected), len(tokens), input, tokens, bagMessages(bag))
	}
	for i := range tokens {
		if tokens[i].Kind != expected[i] {
			t.Errorf("token %d: got %v (%q), want %v\ninput: %q",
				i, tokens[i].Kind, tokens[i].Text, expected[i], input)
		}
	}
}

func TestAssignOperators(t *testing.T) {
	expectTokens(t, `x := 1`, []token.Kind{token.Ident, token.ColonAssign, token.NumberLit})
	expectTokens(t, `x ::= 1`, []token.Kind{token.Ident, token.ColonColonAssign, token.NumberLit})
	expectTokens(t, `x = 1`, []token.Kind{token.Ident, token.Assign, token.NumberLit})
}

func TestMessageChain(t *testing.T) {
	expectTokens(t, `Account clone println`,
		[]token.Kind{token.Ident, token.Ident, token.Ident})
	expectTokens(t, `obj foo(1, "two")`,
		[]token.Kind{token.Ident, token.Ident, token.LParen, token.NumberLit,
			token.Comma, token.StringLit, token.RParen})
}

func TestOperatorGreediness(t *testing.T) {
	expectTokens(t, `a @@ b @ c`, []token.Kind{token.Ident, token.AtAt, token.Ident, token.At, token.Ident})
	expectTokens(t, `a <= b == c`, []token.Kind{token.Ident, token.LtEq, token.Ident, token.EqEq, token.Ident})
	expectTokens(t, `1 .. 2`, []token.Kind{token.NumberLit, token.DotDot, token.NumberLit})
}

func TestNumbers(t *testing.T) {
	expectTokens(t, `0x1F 3.14 1e10 2.5e-3 .5`,
		[]token.Kind{token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit})
}

func TestLineCommentTrivia(t *testing.T) {
	for _, input := range []string{"# note\nx", "// note\nx"} {
		lx, _ := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Ident || tok.Text != "x" {
			t.Fatalf("input %q: token = %v %q", input, tok.Kind, tok.Text)
		}
		var kinds []token.TriviaKind
		for _, tv := range tok.Leading {
			kinds = append(kinds, tv.Kind)
		}
		if len(kinds) != 2 || kinds[0] != token.TriviaLineComment || kinds[1] != token.TriviaNewline {
			t.Fatalf("input %q: leading = %v, want [LineComment Newline]", input, kinds)
		}
	}
}

func TestBlockCommentNearestClose(t *testing.T) {
	// Nesting is not honored: the first */ closes the comment.
	lx, bag := makeTestLexer("/* a /* b */ x")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("token = %v %q, want Ident x", tok.Kind, tok.Text)
	}
	if len(tok.Leading) == 0 || tok.Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("leading = %v, want BlockComment first", tok.Leading)
	}
	if tok.Leading[0].Text != "/* a /* b */" {
		t.Fatalf("comment text = %q", tok.Leading[0].Text)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected warnings: %v", bagMessages(bag))
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("x /* never closed")
	toks := collectAllTokens(lx)
	if toks[0].Kind != token.Ident {
		t.Fatalf("first token = %v", toks[0].Kind)
	}
	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token = %v", last.Kind)
	}
	// the comment rides on EOF's leading trivia
	found := false
	for _, tv := range last.Leading {
		if tv.Kind == token.TriviaBlockComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("EOF leading = %v, want BlockComment", last.Leading)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("warnings = %v", bagMessages(bag))
	}
	if bag.Items()[0].Severity != diag.SevWarning {
		t.Fatalf("severity = %v, want SevWarning", bag.Items()[0].Severity)
	}
}

func TestStrings(t *testing.T) {
	expectTokens(t, `"hi \" there"`, []token.Kind{token.StringLit})
	expectTokens(t, `"""multi
line"""`, []token.Kind{token.TriQuoteLit})

	lx, bag := makeTestLexer("\"broken\nnext")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("token = %v, want Invalid", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexNewlineInString {
		t.Fatalf("warnings = %v", bagMessages(bag))
	}
}

func TestUnknownChar(t *testing.T) {
	lx, bag := makeTestLexer("x ~ y")
	toks := collectAllTokens(lx)
	if toks[1].Kind != token.Invalid {
		t.Fatalf("middle token = %v, want Invalid", toks[1].Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("warnings = %v", bagMessages(bag))
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("Peek %v %q != Next %v %q", p.Kind, p.Text, n.Kind, n.Text)
	}
	if lx.Next().Text != "b" {
		t.Fatalf("second Next must yield b")
	}
}
