package shell

// Kind identifies the lexical category of a token.
type Kind int

const (
	// Word is a run of non-reserved bytes.
	Word Kind = iota
	// Pipe is a single '|'.
	Pipe
	// Less is a single '<'.
	Less
	// Greater is a bare '>'.
	Greater
	// GreaterGreater is '>>'.
	GreaterGreater
	// GreaterAmpersand is '>&'.
	GreaterAmpersand
	// GreaterGreaterAmpersand is '>>&'.
	GreaterGreaterAmpersand
	// Ampersand is a single '&'.
	Ampersand
	// End marks exhaustion of the input line. It is always the last
	// token produced and repeats stably on further Next calls.
	End
)

var kindNames = [...]string{
	Word:                    "Word",
	Pipe:                    "Pipe",
	Less:                    "Less",
	Greater:                 "Greater",
	GreaterGreater:          "GreaterGreater",
	GreaterAmpersand:        "GreaterAmpersand",
	GreaterGreaterAmpersand: "GreaterGreaterAmpersand",
	Ampersand:               "Ampersand",
	End:                     "End",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is a zero-copy view into the line buffer being lexed. Start and
// End are half-open byte offsets; Start == End for the End token. Tokens
// are only valid against the buffer the lexer was created with.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Text returns the token's span within buf.
func (t Token) Text(buf []byte) string {
	return string(buf[t.Start:t.End])
}
