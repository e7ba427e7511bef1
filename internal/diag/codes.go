package diag

// Code identifies a diagnostic kind. The scanner is deliberately forgiving,
// so the set is small: nothing here ever aborts a run.
type Code uint16

const (
	// Unknown is the zero code.
	Unknown Code = iota
	// LexUnterminatedBlockComment: "/*" with no closing "*/"; the comment is
	// taken to extend to end of input.
	LexUnterminatedBlockComment
	// LexUnterminatedString: a string literal with no closing quote.
	LexUnterminatedString
	// LexNewlineInString: a raw newline inside a "..." literal.
	LexNewlineInString
	// LexUnknownChar: a byte no scanner claims.
	LexUnknownChar
)

var codeIDs = [...]string{
	Unknown:                     "IO0000",
	LexUnterminatedBlockComment: "IO0001",
	LexUnterminatedString:       "IO0002",
	LexNewlineInString:          "IO0003",
	LexUnknownChar:              "IO0004",
}

// ID returns the stable printable identifier of the code.
func (c Code) ID() string {
	if int(c) < len(codeIDs) {
		return codeIDs[c]
	}
	return "IO????"
}

func (c Code) String() string { return c.ID() }
