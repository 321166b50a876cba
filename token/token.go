package token

// Kind is the lexical category of a token.
type Kind uint8

const (
	// Punctuation
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Period
	Minus
	Plus
	SemiColon
	Asterisk
	BackSlash

	// Comparison and assignment
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Literals
	String
	Number
	Identifier

	// Keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Special tokens
	Error
	Eof

	numKinds
)

const (
	firstKeyword = And
	lastKeyword  = While
)

// kinds is the single table both the kind names and the keyword lookup
// are derived from. Spelling is empty for kinds without fixed source text.
var kinds = [numKinds]struct {
	name     string
	spelling string
}{
	LeftParen:    {"LeftParen", "("},
	RightParen:   {"RightParen", ")"},
	LeftBrace:    {"LeftBrace", "{"},
	RightBrace:   {"RightBrace", "}"},
	Comma:        {"Comma", ","},
	Period:       {"Period", "."},
	Minus:        {"Minus", "-"},
	Plus:         {"Plus", "+"},
	SemiColon:    {"SemiColon", ";"},
	Asterisk:     {"Asterisk", "*"},
	BackSlash:    {"BackSlash", "/"},
	Bang:         {"Bang", "!"},
	BangEqual:    {"BangEqual", "!="},
	Equal:        {"Equal", "="},
	EqualEqual:   {"EqualEqual", "=="},
	Less:         {"Less", "<"},
	LessEqual:    {"LessEqual", "<="},
	Greater:      {"Greater", ">"},
	GreaterEqual: {"GreaterEqual", ">="},
	String:       {"String", ""},
	Number:       {"Number", ""},
	Identifier:   {"Identifier", ""},
	And:          {"And", "and"},
	Class:        {"Class", "class"},
	Else:         {"Else", "else"},
	False:        {"False", "false"},
	For:          {"For", "for"},
	Fun:          {"Fun", "fun"},
	If:           {"If", "if"},
	Nil:          {"Nil", "nil"},
	Or:           {"Or", "or"},
	Print:        {"Print", "print"},
	Return:       {"Return", "return"},
	Super:        {"Super", "super"},
	This:         {"This", "this"},
	True:         {"True", "true"},
	Var:          {"Var", "var"},
	While:        {"While", "while"},
	Error:        {"Error", ""},
	Eof:          {"Eof", ""},
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, lastKeyword-firstKeyword+1)
	for k := firstKeyword; k <= lastKeyword; k++ {
		m[kinds[k].spelling] = k
	}
	return m
}()

// String returns the name of the kind, e.g. "LeftParen" or "Identifier".
func (k Kind) String() string {
	if k >= numKinds {
		return "Kind(?)"
	}
	return kinds[k].name
}

// Spelling returns the fixed source text of punctuation, operator and
// keyword kinds. It returns "" for literals, identifiers, Error and Eof.
func (k Kind) Spelling() string {
	if k >= numKinds {
		return ""
	}
	return kinds[k].spelling
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= firstKeyword && k <= lastKeyword
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	all := make([]Kind, numKinds)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's kind.
// Otherwise, it returns Identifier. Matching is case-sensitive.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// NoIndex is the Index of tokens that carry no identifier or literal.
const NoIndex uint32 = 0

// Location is a position in the source.
type Location struct {
	Line   int // 1-based
	Column int // 1-based, counted in bytes
	Offset int // 0-based byte offset
}

// Token represents a lexical token.
//
// Index refers to the identifier table for Identifier tokens, to the
// string literal store for String tokens and to the number literal store
// for Number tokens. It is NoIndex for every other kind.
type Token struct {
	Kind  Kind
	Loc   Location
	Index uint32
}
