package chemformula

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenSymbol is an element symbol, one uppercase letter optionally
	// followed by one lowercase letter.
	tokenSymbol
	// tokenNum is a count, a run of decimal digits.
	tokenNum
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "Symbol"
	case tokenNum:
		return "Num"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OpenBrackets and CloseBrackets contain the runes which group parts of a
// formula. All kinds of brackets are interchangeable: "[Cu(NH3)4}" is as
// balanced as "[Cu(NH3)4]".
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// Separators contains the runes other than whitespace which the lexer skips
// entirely. They commonly join the parts of adducts and hydrates, as in
// CuSO4.5H2O, but carry no meaning for the composition.
const Separators = ".*"

// ignored reports whether the lexer skips r.
func ignored(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(Separators, r)
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func isLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads the next rune from src that the lexer does not ignore and
// updates the lexer's position info. Ignored runes still count toward
// positions, but they never separate the parts of a token, so "C a" is the
// same symbol as "Ca".
func (l *lexer) readRune() (r rune, err error) {
	for {
		r, sz, err := l.src.ReadRune()
		if sz > 0 {
			l.rune++
		}
		if err != nil {
			return r, err
		}
		if !ignored(r) {
			return r, nil
		}
	}
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an EOF token with a nil error. Subsequent times,
// the result is an empty token with io.EOF.
//
// When next returns an InputError, the offending text has been consumed and
// the lexer may continue with the following token.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	r, err := l.readRune()
	tok := lexToken{pos: l.rune}
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		return tok, err
	}
	switch {
	case isUpper(r):
		l.buf.WriteRune(r)
		if err := l.scanLower(); err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenSymbol
		if len(tok.text) > 2 {
			return tok, &InvalidElementSymbolError{Col: tok.pos, Symbol: tok.text}
		}
		return tok, nil
	case isLower(r):
		// A symbol never starts with a lowercase letter. Consume the whole
		// run so that the error shows what was written.
		l.buf.WriteRune(r)
		if err := l.scanLower(); err != nil {
			return tok, err
		}
		return tok, &InvalidElementSymbolError{Col: tok.pos, Symbol: l.buf.String()}
	case isDigit(r):
		l.buf.WriteRune(r)
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
		return tok, nil
	default:
		if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
			tok.text = OpenBrackets[k : k+1]
			tok.kind = tokenOpen
			return tok, nil
		}
		if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
			tok.text = CloseBrackets[k : k+1]
			tok.kind = tokenClose
			return tok, nil
		}
		return tok, &InvalidCharacterError{Col: tok.pos, Char: r}
	}
}

// scanLower appends the run of lowercase letters at the current position to
// the buffer.
func (l *lexer) scanLower() error {
	return l.scanWhile(isLower)
}

// scanNum appends the run of digits at the current position to the buffer.
func (l *lexer) scanNum() error {
	return l.scanWhile(isDigit)
}

func (l *lexer) scanWhile(ok func(rune) bool) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Leave EOF for the next call to next.
				return nil
			}
			return err
		}
		if !ok(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}
