package shell

// Lexer splits a single input line into shell tokens. It allocates
// nothing: every token is a byte span into the buffer handed to NewLexer,
// which the caller keeps alive for the duration of the line. The cursor
// only ever moves forward, and once End has been produced the lexer keeps
// returning End at the same position.
//
// The grammar has no quoting or escaping. Words are delimited purely by
// the reserved bytes, and the '>' family is matched greedily: ">>&" is one
// token, never three.
type Lexer struct {
	buf []byte
	pos int
}

// NewLexer binds a borrowed line buffer with the cursor at zero.
func NewLexer(buf []byte) *Lexer {
	return &Lexer{buf: buf}
}

// Pos returns the current cursor position.
func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) at(i int) byte {
	if i >= len(l.buf) {
		return 0
	}
	return l.buf[i]
}

// isLineEnd reports bytes that truncate the token stream. A newline is
// end-of-input here, not a token to skip past.
func isLineEnd(c byte) bool {
	return c == 0 || c == '\n' || c == '\r'
}

func isReserved(c byte) bool {
	switch c {
	case '&', '|', '<', '>', ' ', '\t':
		return true
	}
	return isLineEnd(c)
}

// Next advances the cursor and returns exactly one token. It is total:
// there is no input for which it fails, and a bounded number of calls
// (len(buf)+1 at most) always reaches End.
func (l *Lexer) Next() Token {
	for l.at(l.pos) == ' ' || l.at(l.pos) == '\t' {
		l.pos++
	}

	start := l.pos
	c := l.at(l.pos)
	switch {
	case isLineEnd(c):
		return Token{Kind: End, Start: start, End: start}
	case c == '|':
		l.pos++
		return Token{Kind: Pipe, Start: start, End: l.pos}
	case c == '<':
		l.pos++
		return Token{Kind: Less, Start: start, End: l.pos}
	case c == '&':
		l.pos++
		return Token{Kind: Ampersand, Start: start, End: l.pos}
	case c == '>':
		l.pos++
		return l.lexGreater(start)
	}
	return l.lexWord(start)
}

// lexGreater resolves the '>' operator family with the cursor just past
// the first '>'. Longest match wins and nothing is un-consumed.
func (l *Lexer) lexGreater(start int) Token {
	switch l.at(l.pos) {
	case '&':
		l.pos++
		return Token{Kind: GreaterAmpersand, Start: start, End: l.pos}
	case '>':
		l.pos++
		if l.at(l.pos) == '&' {
			l.pos++
			return Token{Kind: GreaterGreaterAmpersand, Start: start, End: l.pos}
		}
		return Token{Kind: GreaterGreater, Start: start, End: l.pos}
	}
	return Token{Kind: Greater, Start: start, End: l.pos}
}

// lexWord consumes greedily until a reserved byte, which stays unconsumed
// so the word ends exactly before its delimiter.
func (l *Lexer) lexWord(start int) Token {
	for !isReserved(l.at(l.pos)) {
		l.pos++
	}
	return Token{Kind: Word, Start: start, End: l.pos}
}
