package token

import (
	"iomode/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TriQuoteLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is bracket/separator punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, LBracket, RBracket, Comma, Semicolon, Dot:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case ColonAssign, ColonColonAssign, Assign, EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		Plus, Minus, Star, Slash, Percent, Caret, Amp, Pipe, AndAnd, OrOr,
		At, AtAt, Question, Bang, DotDot, Arrow:
		return true
	default:
		return false
	}
}
