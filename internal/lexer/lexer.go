// Package lexer converts Monkey source code into a stream of tokens.
//
// A Lexer is created with New and consumed by calling Next repeatedly.
// Once the end of the input is reached, Next returns an EOF token on
// every subsequent call.
package lexer

import (
	"errors"
	"strings"

	"github.com/monkey-lang/monkey/internal/token"
)

// ErrUnterminatedString indicates a string literal that was still open when
// the line or the input ended.
var ErrUnterminatedString = errors.New("unterminated string literal")

// Lexer holds the state used to tokenize a single input string.
type Lexer struct {
	input     string
	pos       int  // index of ch
	readPos   int  // next read position (pos + 1)
	ch        byte // current character under examination
	line      int  // 0-indexed line number of ch
	lineStart int  // byte offset of the start of the current line
	filename  string
}

// New returns a Lexer positioned at the first character of the input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// SetFilename sets the file name attached to token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the file name attached to token positions.
func (l *Lexer) Filename() string {
	return l.filename
}

// GetLineText returns the full line of input text containing the given token.
// It is used to provide source context in error messages.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	text := l.input[start:]
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return text
}

// Next returns the next token from the input. The EOF token is returned
// idempotently once the input is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespaceAndComments()

	start := l.position()

	switch l.ch {
	case 0:
		return l.emit(token.EOF, "", start), nil
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emitAdvance(token.EQ, "==", start), nil
		}
		return l.emitAdvance(token.ASSIGN, "=", start), nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emitAdvance(token.NOT_EQ, "!=", start), nil
		}
		return l.emitAdvance(token.BANG, "!", start), nil
	case '+':
		return l.emitAdvance(token.PLUS, "+", start), nil
	case '-':
		return l.emitAdvance(token.MINUS, "-", start), nil
	case '*':
		return l.emitAdvance(token.ASTERISK, "*", start), nil
	case '/':
		return l.emitAdvance(token.SLASH, "/", start), nil
	case '<':
		return l.emitAdvance(token.LT, "<", start), nil
	case '>':
		return l.emitAdvance(token.GT, ">", start), nil
	case '(':
		return l.emitAdvance(token.LPAREN, "(", start), nil
	case ')':
		return l.emitAdvance(token.RPAREN, ")", start), nil
	case '{':
		return l.emitAdvance(token.LBRACE, "{", start), nil
	case '}':
		return l.emitAdvance(token.RBRACE, "}", start), nil
	case '[':
		return l.emitAdvance(token.LBRACKET, "[", start), nil
	case ']':
		return l.emitAdvance(token.RBRACKET, "]", start), nil
	case ',':
		return l.emitAdvance(token.COMMA, ",", start), nil
	case ':':
		return l.emitAdvance(token.COLON, ":", start), nil
	case ';':
		return l.emitAdvance(token.SEMICOLON, ";", start), nil
	case '"':
		return l.readString(start)
	default:
		if isLetter(l.ch) {
			return l.readIdentifier(start), nil
		}
		if isDigit(l.ch) {
			return l.readNumber(start), nil
		}
		return l.emitAdvance(token.ILLEGAL, string(l.ch), start), nil
	}
}

// readChar advances the lexer by one byte. When the input is exhausted,
// ch is set to 0 as the end-of-input sentinel.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.readPos
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next byte without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// position returns the Position of the current character.
func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.filename,
	}
}

// emit builds a token spanning from start to the current position.
func (l *Lexer) emit(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// emitAdvance builds a token whose last character is the current one, then
// advances past it.
func (l *Lexer) emitAdvance(typ token.Type, literal string, start token.Position) token.Token {
	l.readChar()
	return l.emit(typ, literal, start)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			if l.peekChar() != '/' {
				return
			}
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	begin := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	literal := l.input[begin:l.pos]
	return l.emit(token.LookupIdentifier(literal), literal, start)
}

func (l *Lexer) readNumber(start token.Position) token.Token {
	begin := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.emit(token.INT, l.input[begin:l.pos], start)
}

// readString scans a double-quoted string literal. Escape sequences
// \n, \t, \", and \\ are decoded; any other backslash pair is kept as-is.
func (l *Lexer) readString(start token.Position) (token.Token, error) {
	l.readChar() // consume the opening quote

	var buf []byte
	for {
		switch l.ch {
		case '"':
			l.readChar() // consume the closing quote
			return l.emit(token.STRING, string(buf), start), nil
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			default:
				buf = append(buf, '\\', l.ch)
			}
			l.readChar()
		case '\n', 0:
			return l.emit(token.ILLEGAL, string(buf), start), ErrUnterminatedString
		default:
			buf = append(buf, l.ch)
			l.readChar()
		}
	}
}

// isLetter reports whether b can start or continue an identifier.
// Identifiers follow the pattern [a-zA-Z_][a-zA-Z0-9_]*.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
