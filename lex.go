package shunt

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
	// tokenNum is a numeric literal, possibly with attached signs.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an opening parenthesis.
	tokenOpen
	// tokenClose is a closing parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// prev is the kind of the last emitted token. An operator rune is
	// binary after a number or a closing parenthesis and unary otherwise.
	prev tokenKind
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
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
// encountered, the result is an EOF token with a nil error. Subsequent
// times, the result is an empty token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.', r == ',':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			l.prev = tokenNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			l.prev = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			l.prev = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			if l.prev == tokenNum || l.prev == tokenClose {
				tok.text = string(r)
				tok.kind = tokenOp
				l.prev = tokenOp
				return tok, nil
			}
			// Unary position: the sign becomes part of the literal.
			l.buf.WriteRune(r)
			if err := l.scanSigned(wseof); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			l.prev = tokenNum
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error()
		}
	}
}

// scanNum scans a run of digits and decimal separators into the buffer,
// normalizing , to . as it goes. Validation is deferred to evaluation,
// where the literal must parse fully as a float.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case r == '.', r == ',':
			l.buf.WriteByte('.')
		default:
			l.unreadRune()
			return nil
		}
	}
}

// scanSigned continues a literal that began with an operator rune in
// unary position. Further operator runes accumulate, spaces between the
// sign and the digits are skipped, and the first digit or separator
// hands off to scanNum. A sign run that never reaches a digit is emitted
// as-is and rejected as an invalid number at evaluation.
func (l *lexer) scanSigned(wseof string) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				l.unreadRune()
				return nil
			}
			continue
		case '0' <= r && r <= '9', r == '.', r == ',':
			l.unreadRune()
			return l.scanNum()
		case strings.ContainsRune(Operators, r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) error() error {
	return &LexError{
		Text: l.buf.String(),
		Col:  l.rune,
	}
}

// LexError indicates a rune outside the expression grammar. It
// implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
