package token

// Category is the semantic bucket a word or operator belongs to for
// highlighting purposes. Categories are checked in declaration order and the
// first match wins, so SelfRef shadows everything below it.
type Category uint8

const (
	// CategoryNone means the text matched no table.
	CategoryNone Category = iota
	// CategorySelfRef covers receiver references: self, thisContext, call.
	CategorySelfRef
	// CategoryComment covers comment marker text.
	CategoryComment
	// CategoryOperator covers symbolic and word operators.
	CategoryOperator
	// CategoryBool covers the boolean-ish literals true, false, nil.
	CategoryBool
	// CategoryProto covers capitalized core prototype names.
	CategoryProto
	// CategoryMessage covers builtin Object messages.
	CategoryMessage
)

var categoryNames = [...]string{
	CategoryNone:     "none",
	CategorySelfRef:  "self-reference",
	CategoryComment:  "comment",
	CategoryOperator: "operator",
	CategoryBool:     "boolean-literal",
	CategoryProto:    "prototype-type",
	CategoryMessage:  "builtin-message",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Word tables mirror the mode's font-lock alternations. Plain data on
// purpose: consumers resolve overlaps through Classify, never by reaching
// into a particular list.

// SelfRefWords are references to the current receiver or activation record.
var SelfRefWords = []string{
	"self", "thisContext", "call",
}

// CommentMarkers open a comment: line markers run to end of line, "/*" runs
// to the nearest "*/".
var CommentMarkers = []string{
	"#", "//", "/*",
}

// OperatorWords are the word-shaped operators; symbolic operators are token
// kinds and classified through Token.IsOperator.
var OperatorWords = []string{
	"and", "or", "not", "return", "break", "continue",
}

// BoolWords are the boolean-ish literals.
var BoolWords = []string{
	"true", "false", "nil",
}

// ProtoWords are the capitalized core prototypes cloned to make new kinds of
// objects.
var ProtoWords = []string{
	"Array", "AudioDevice", "AudioMixer", "Block", "Box", "Buffer", "CFunction",
	"CGI", "Color", "Curses", "DBM", "DNSResolver", "DOConnection", "DOProxy",
	"DOServer", "Date", "Directory", "Duration", "DynLib", "Error", "Exception",
	"FFT", "File", "Fnmatch", "Font", "Future", "GL", "GLE", "GLScissor", "GLU",
	"GLUCylinder", "GLUQuadric", "GLUSphere", "GLUT", "Host", "Image",
	"Importer", "LinkedList", "List", "Lobby", "Map", "Message", "Movie", "Nil",
	"Notifier", "Number", "Object", "OpenGL", "Point", "Protos", "Random",
	"Regex", "SGML", "SGMLElement", "SGMLParser", "SQLite", "Sequence", "Server",
	"ShowMessage", "SleepyCat", "SleepyCatCursor", "Socket", "SocketManager",
	"Sound", "Soup", "Store", "String", "Tree", "UDPSender", "UPDReceiver",
	"URL", "User", "Warning", "WeakLink",
}

// MessageWords are builtin messages looked up on Object and friends.
var MessageWords = []string{
	"activate", "activeCoroCount", "asString", "block", "catch", "checkErrno",
	"clone", "collectGarbage", "compileString", "do", "doFile", "doMessage",
	"doString", "else", "elseif", "exit", "for", "foreach", "forward",
	"getEnvironmentVariable", "getSlot", "hasSlot", "if", "ifFalse", "ifNil",
	"ifTrue", "isActive", "isNil", "isResumable", "list", "message", "method",
	"parent", "pass", "pause", "perform", "performWithArgList", "print",
	"println", "proto", "raise", "raiseResumable", "removeSlot", "resend",
	"resume", "schedulerSleepSeconds", "sender", "setSchedulerSleepSeconds",
	"setSlot", "shallowCopy", "slotNames", "super", "system", "then",
	"thisBlock", "try", "type", "uniqueId", "updateSlot", "wait", "while",
	"write", "writeln", "yield",
}

// categoryOrder fixes the precedence: earlier entries win overlapping words
// (e.g. "self" is also a valid message but highlights as a self-reference).
var categoryOrder = []struct {
	cat   Category
	words []string
}{
	{CategorySelfRef, SelfRefWords},
	{CategoryComment, CommentMarkers},
	{CategoryOperator, OperatorWords},
	{CategoryBool, BoolWords},
	{CategoryProto, ProtoWords},
	{CategoryMessage, MessageWords},
}

var wordCategories = buildWordCategories()

func buildWordCategories() map[string]Category {
	m := make(map[string]Category, 256)
	for _, group := range categoryOrder {
		for _, w := range group.words {
			if _, taken := m[w]; taken {
				continue // earlier category wins
			}
			m[w] = group.cat
		}
	}
	return m
}

// Classify resolves a text span against the word tables in precedence order.
// Returns CategoryNone, false when the text is in no table.
func Classify(text string) (Category, bool) {
	cat, ok := wordCategories[text]
	if !ok {
		return CategoryNone, false
	}
	return cat, true
}
