package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"iomode/internal/diagfmt"
	"iomode/internal/lexer"
	"iomode/internal/source"
	"iomode/internal/token"
)

func tokenizeString(t *testing.T, input string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.io", []byte(input))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, fs
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs := tokenizeString(t, "x := Object clone")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"Ident", "ColonAssign", `"Object"`, "<prototype-type>", "<builtin-message>"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := tokenizeString(t, "self print # done")

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded[0].Category != "self-reference" {
		t.Fatalf("self category = %q", decoded[0].Category)
	}
	last := decoded[len(decoded)-1]
	if last.Kind != "EOF" {
		t.Fatalf("last kind = %q", last.Kind)
	}
	// the trailing comment rides on EOF's leading trivia
	if len(last.Leading) == 0 || last.Leading[len(last.Leading)-1] != "LineComment" {
		t.Fatalf("EOF leading = %v, want trailing LineComment", last.Leading)
	}
}
