// Package lexer turns source text into the token stream the parser
// consumes, via a single-pass byte scanner over the Lox-family token set.
package lexer

import (
	"strings"

	"github.com/loxwalk/loxwalk/internal/token"
)

// Lexer is a single-pass scanner over a source string.
type Lexer struct {
	input        string
	position     int // start of the current rune
	readPosition int // position after the current rune
	ch           byte
	line         int
	column       int
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken scans and returns the next token, advancing the lexer.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, col := l.line, l.column

	if l.ch == 0 {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: line, Column: col}
	}

	switch l.ch {
	case '(':
		return l.simple(token.LeftParen, line, col)
	case ')':
		return l.simple(token.RightParen, line, col)
	case '{':
		return l.simple(token.LeftBrace, line, col)
	case '}':
		return l.simple(token.RightBrace, line, col)
	case ',':
		return l.simple(token.Comma, line, col)
	case '.':
		return l.simple(token.Dot, line, col)
	case '-':
		return l.simple(token.Minus, line, col)
	case '+':
		return l.simple(token.Plus, line, col)
	case ';':
		return l.simple(token.Semicolon, line, col)
	case '*':
		return l.simple(token.Star, line, col)
	case '/':
		return l.simple(token.Slash, line, col)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.lexeme(token.BangEqual, "!=", line, col)
		}
		return l.simple(token.Bang, line, col)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.lexeme(token.EqualEqual, "==", line, col)
		}
		return l.simple(token.Equal, line, col)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			return l.lexeme(token.LessEqual, "<=", line, col)
		}
		return l.simple(token.Less, line, col)
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			return l.lexeme(token.GreaterEqual, ">=", line, col)
		}
		return l.simple(token.Greater, line, col)
	case '"':
		return l.readString(line, col)
	}

	if isDigit(l.ch) {
		return l.readNumber(line, col)
	}
	if isAlpha(l.ch) {
		return l.readIdentifier(line, col)
	}

	tok := token.Token{Kind: token.ILLEGAL, Lexeme: string(l.ch), Line: line, Column: col}
	l.readChar()
	return tok
}

func (l *Lexer) simple(kind token.Kind, line, col int) token.Token {
	tok := token.Token{Kind: kind, Lexeme: string(l.ch), Line: line, Column: col}
	l.readChar()
	return tok
}

func (l *Lexer) lexeme(kind token.Kind, lex string, line, col int) token.Token {
	tok := token.Token{Kind: kind, Lexeme: lex, Line: line, Column: col}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

// readString consumes a double-quoted string literal, including the
// surrounding quotes in Lexeme. An unterminated string yields an ILLEGAL
// token so the parser can report it as a parse error.
func (l *Lexer) readString(line, col int) token.Token {
	var sb strings.Builder
	sb.WriteByte('"')
	l.readChar() // consume opening quote
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{Kind: token.ILLEGAL, Lexeme: sb.String(), Line: line, Column: col}
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	sb.WriteByte('"')
	l.readChar() // consume closing quote
	return token.Token{Kind: token.String, Lexeme: sb.String(), Line: line, Column: col}
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.position]
	return token.Token{Kind: token.Number, Lexeme: lexeme, Line: line, Column: col}
}

func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isAlpha(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Line: line, Column: col}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// ScanAll lexes input to completion, returning every token including the
// trailing EOF.
func ScanAll(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}
