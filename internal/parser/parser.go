// Package parser implements a recursive-descent parser: one function per
// named precedence level, an explicit assignment-target reinterpretation
// step, for-loop desugaring into a while, and panic-mode error recovery
// via synchronize() so a single pass can collect more than one ParseError.
package parser

import (
	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/lexer"
	"github.com/loxwalk/loxwalk/internal/token"
)

const maxArgs = 255

// Parser consumes a flat token slice (the lexer already ran to
// completion) and produces a program: a slice of top-level statements.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*diagnostics.ParseError
}

// New builds a Parser over an already-scanned token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse scans source with the lexer and parses it to completion.
func Parse(source string) ([]ast.Statement, []*diagnostics.ParseError) {
	p := New(lexer.ScanAll(source))
	return p.ParseProgram(), p.errors
}

// ParseProgram parses a full program: declaration* EOF. It recovers after
// each malformed declaration via synchronize() so multiple ParseErrors
// can be collected in a single pass.
func (p *Parser) ParseProgram() []ast.Statement {
	var statements []ast.Statement
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// Errors reports every ParseError collected during the most recent parse.
func (p *Parser) Errors() []*diagnostics.ParseError { return p.errors }

// --- token stream plumbing ---

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, code diagnostics.ParseErrorCode, args ...interface{}) (token.Token, *diagnostics.ParseError) {
	if p.check(kind) {
		return p.advance(), nil
	}
	found := p.peek()
	return token.Token{}, diagnostics.NewParseError(code, found, append(args, found.Lexeme)...)
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so parsing can resume after an error without cascading.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
