package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or message name.
	Ident

	// NumberLit represents a numeric literal token.
	NumberLit
	// StringLit represents a "..." string literal.
	StringLit
	// TriQuoteLit represents a """...""" string literal (may span lines).
	TriQuoteLit

	// ColonAssign represents the ':=' slot-creation operator.
	ColonAssign // :=
	// ColonColonAssign represents the '::=' slot-creation-with-setter operator.
	ColonColonAssign // ::=
	// Assign represents the '=' slot-update operator.
	Assign // =
	// EqEq represents the '==' comparison.
	EqEq // ==
	// BangEq represents the '!=' comparison.
	BangEq // !=
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Caret represents '^'.
	Caret // ^
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// At represents the '@' future-send operator.
	At // @
	// AtAt represents the '@@' async-send operator.
	AtAt // @@
	// Question represents '?'.
	Question // ?
	// Bang represents '!'.
	Bang // !
	// DotDot represents the '..' sequence-append operator.
	DotDot // ..
	// Arrow represents '->'.
	Arrow // ->

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Dot represents '.'.
	Dot // .
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	NumberLit:        "NumberLit",
	StringLit:        "StringLit",
	TriQuoteLit:      "TriQuoteLit",
	ColonAssign:      "ColonAssign",
	ColonColonAssign: "ColonColonAssign",
	Assign:           "Assign",
	EqEq:             "EqEq",
	BangEq:           "BangEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Caret:            "Caret",
	Amp:              "Amp",
	Pipe:             "Pipe",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	At:               "At",
	AtAt:             "AtAt",
	Question:         "Question",
	Bang:             "Bang",
	DotDot:           "DotDot",
	Arrow:            "Arrow",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	Comma:            "Comma",
	Semicolon:        "Semicolon",
	Dot:              "Dot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
