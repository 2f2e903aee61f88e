package lexer

import (
	"strings"

	"github.com/akashmaji946/go-scm/schemeerr"
)

// Lexer scans Scheme source text byte by byte, producing a flat Token
// stream. Unlike a line-oriented language lexer, there is no line/column
// state to track (spec.md §4.1): errors are reported in production order
// only.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
}

// NewLexer initializes a Lexer positioned at the first byte of src.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
	}
}

// Peek looks at the next byte without consuming it, returning 0 at end of
// source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes the current byte and moves to the next one.
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

func (lex *Lexer) atEnd() bool {
	return lex.Position >= lex.SrcLength
}

// IgnoreWhitespaceAndComments skips spaces, tabs, newlines, and `;` line
// comments. Scheme has no block-comment form in this subset.
func (lex *Lexer) IgnoreWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(lex.Current):
			lex.Advance()
		case lex.Current == ';':
			lex.skipLineComment()
		default:
			return
		}
	}
}

func (lex *Lexer) skipLineComment() {
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// Tokenize scans all of src into a Token slice. It does not stop at the
// first lexical error: every failure encountered is collected and, if any
// occurred, returned together as a single *schemeerr.LexingFailures so a
// caller sees every problem in the source at once (spec.md §4.1).
func Tokenize(src string) ([]Token, error) {
	lex := NewLexer(src)
	var tokens []Token
	var errs []error

	for {
		lex.IgnoreWhitespaceAndComments()
		if lex.atEnd() {
			break
		}

		tok, err := lex.nextToken()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
	}

	if len(errs) > 0 {
		return tokens, &schemeerr.LexingFailures{Errors: errs}
	}
	return tokens, nil
}

func (lex *Lexer) nextToken() (Token, error) {
	switch c := lex.Current; {
	case c == '(':
		lex.Advance()
		return Token{Type: LParen, Literal: "("}, nil
	case c == ')':
		lex.Advance()
		return Token{Type: RParen, Literal: ")"}, nil
	case c == '\'':
		lex.Advance()
		return Token{Type: QuoteTick, Literal: "'"}, nil
	case c == '#':
		return lex.readBool()
	case c == '"':
		return lex.readString()
	case isDigit(c) || (c == '-' && isDigit(lex.Peek())):
		return lex.readNumber()
	case isSymbolStart(c):
		return lex.readSymbolOrKeyword()
	default:
		lex.Advance()
		return Token{}, &schemeerr.UnexpectedChar{Ch: c}
	}
}

// readBool reads the two-character `#t` / `#f` booleans. Any other
// character following `#` is a malformed token: this subset has no vector,
// character, or other `#`-prefixed literal syntax.
func (lex *Lexer) readBool() (Token, error) {
	lex.Advance() // consume '#'
	switch lex.Current {
	case 't':
		lex.Advance()
		return Token{Type: Bool, Literal: "#t"}, nil
	case 'f':
		lex.Advance()
		return Token{Type: Bool, Literal: "#f"}, nil
	default:
		bad := lex.Current
		lex.Advance()
		return Token{}, &schemeerr.MalformedToken{
			Reason: "'#" + string(bad) + "' is not a valid boolean literal",
		}
	}
}

// readString reads a `"`-delimited string literal. There is no escape
// sequence handling in this subset (spec.md §4.1); an unterminated string
// is a lexing error.
func (lex *Lexer) readString() (Token, error) {
	lex.Advance() // consume opening quote
	var b strings.Builder
	for lex.Current != '"' {
		if lex.atEnd() {
			return Token{}, &schemeerr.UnterminatedString{}
		}
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // consume closing quote
	return Token{Type: String, Literal: b.String()}, nil
}

// readNumber greedily reads a run of digits with at most one leading minus
// sign and at most one decimal point, matching float64's literal grammar.
func (lex *Lexer) readNumber() (Token, error) {
	start := lex.Position
	if lex.Current == '-' {
		lex.Advance()
	}
	sawDigit := false
	sawDot := false
	for isDigit(lex.Current) || (lex.Current == '.' && !sawDot) {
		if lex.Current == '.' {
			sawDot = true
		} else {
			sawDigit = true
		}
		lex.Advance()
	}
	lit := lex.Src[start:lex.Position]
	if !sawDigit {
		return Token{}, &schemeerr.MalformedToken{Reason: "'" + lit + "' is not a valid number"}
	}
	return Token{Type: Number, Literal: lit}, nil
}

// readSymbolOrKeyword reads a run of identifier bytes terminated by
// whitespace, a paren, a quote tick, or a comment start, then classifies it
// as a keyword or a plain Symbol.
func (lex *Lexer) readSymbolOrKeyword() (Token, error) {
	start := lex.Position
	for isSymbolChar(lex.Current) {
		lex.Advance()
	}
	lit := lex.Src[start:lex.Position]
	if lit == "" {
		bad := lex.Current
		lex.Advance()
		return Token{}, &schemeerr.UnexpectedChar{Ch: bad}
	}
	return Token{Type: lookupIdentifier(lit), Literal: lit}, nil
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbolStart(c byte) bool {
	return isSymbolChar(c) && !isDigit(c)
}

func isSymbolChar(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\r', '(', ')', '\'', '"', ';', '#':
		return false
	default:
		return true
	}
}
