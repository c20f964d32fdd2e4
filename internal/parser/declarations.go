package parser

import (
	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/token"
)

// declaration -> classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() (ast.Statement, *diagnostics.ParseError) {
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDecl -> "class" IDENTIFIER ( "<" IDENTIFIER )? "{" function* "}"
func (p *Parser) classDeclaration() (ast.Statement, *diagnostics.ParseError) {
	name, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, "class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(token.Less) {
		superName, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, "superclass name")
		if err != nil {
			return nil, err
		}
		superclass = &ast.Variable{Name: superName}
	}

	if _, err := p.consume(token.LeftBrace, diagnostics.ErrExpectedToken, "'{' before class body"); err != nil {
		return nil, err
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, stmt.(*ast.FunctionStmt))
	}

	if _, err := p.consume(token.RightBrace, diagnostics.ErrExpectedToken, "'}' after class body"); err != nil {
		return nil, err
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}, nil
}

// function -> IDENTIFIER "(" parameters? ")" block
// kind is "function" or "method", used only for error messages.
func (p *Parser) function(kind string) (ast.Statement, *diagnostics.ParseError) {
	name, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, kind+" name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, diagnostics.ErrExpectedToken, "'(' after "+kind+" name"); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errors = append(p.errors, diagnostics.NewParseError(diagnostics.ErrTooManyParameters, p.peek()))
			}
			param, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, diagnostics.ErrExpectedToken, "')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, diagnostics.ErrExpectedToken, "'{' before "+kind+" body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// varDecl -> "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() (ast.Statement, *diagnostics.ParseError) {
	name, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, "variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, diagnostics.ErrExpectedToken, "';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Init: init}, nil
}
