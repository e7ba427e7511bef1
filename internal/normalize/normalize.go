// Package normalize collapses a multi-line Io fragment into a single logical
// line suitable for a line-oriented interpreter front-end.
//
// The transform is purely textual and line-local: comments are erased first
// so later stages never misread commented-out syntax, then whitespace and
// line breaks collapse according to bracket context. String literals are NOT
// protected — a newline or a '#' inside a multi-line string is treated like
// any other text. Known limitation, kept on purpose: fixing it needs a real
// lexer tracking string state, and callers that care should not route string
// heavy fragments through here.
package normalize

import (
	"strings"
)

// Normalize converts fragment into a single logical line. Statements that
// were separated by significant newlines are joined with "; "; newlines
// adjacent to '(' or ',' or ')' vanish so multi-line argument lists collapse
// cleanly. Empty and all-comment input normalizes to "".
//
// Normalize never reorders characters and is idempotent.
func Normalize(fragment string) string {
	s := StripComments(fragment)
	s = collapseSpaces(s)
	s = elideBracketBreaks(s)
	s = joinLineBreaks(s)
	return s
}

// StripComments removes every "#..." and "//..." run up to end of line and
// every "/*...*/" block up to the nearest following "*/". An unterminated
// block comment extends to end of input. Purely textual: markers inside
// string literals are stripped too.
func StripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]

		if c == '#' || (c == '/' && i+1 < len(s) && s[i+1] == '/') {
			// line comment: drop up to, not including, the newline
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			// block comment: nearest "*/" closes it
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				break // runs to end of input
			}
			i += 2 + end + 2
			continue
		}

		b.WriteByte(c)
		i++
	}
	return b.String()
}

// collapseSpaces replaces every maximal run of spaces and tabs with a single
// space. Newlines pass through untouched.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		if c == ' ' || c == '\t' {
			for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// elideBracketBreaks deletes every whitespace run (spaces and line breaks)
// immediately preceded by '(' or ',' or immediately followed by ')'. These
// breaks separate nothing: they only lay out argument lists.
func elideBracketBreaks(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		if !isBreakWS(c) {
			b.WriteByte(c)
			i++
			continue
		}

		j := i
		for j < len(s) && isBreakWS(s[j]) {
			j++
		}

		prevOpens := i > 0 && (s[i-1] == '(' || s[i-1] == ',')
		nextCloses := j < len(s) && s[j] == ')'
		if !prevOpens && !nextCloses {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

// joinLineBreaks replaces every remaining whitespace run containing a line
// break with the statement separator "; ". Runs at the very start or end of
// the fragment terminate nothing and are dropped instead.
func joinLineBreaks(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		if !isBreakWS(c) {
			b.WriteByte(c)
			i++
			continue
		}

		j := i
		hasBreak := false
		for j < len(s) && isBreakWS(s[j]) {
			if s[j] == '\n' || s[j] == '\r' {
				hasBreak = true
			}
			j++
		}

		switch {
		case !hasBreak:
			b.WriteString(s[i:j])
		case i == 0 || j == len(s):
			// boundary break: delete
		default:
			b.WriteString("; ")
		}
		i = j
	}
	return b.String()
}

func isBreakWS(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r'
}
