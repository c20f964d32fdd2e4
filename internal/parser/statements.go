package parser

import (
	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/token"
)

// statement -> exprStmt | forStmt | ifStmt | printStmt | returnStmt
//            | whileStmt | block
func (p *Parser) statement() (ast.Statement, *diagnostics.ParseError) {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		brace := p.previous()
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Token: brace, Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

// block -> "{" declaration* "}" ; the opening brace has already been
// consumed by the caller.
func (p *Parser) block() ([]ast.Statement, *diagnostics.ParseError) {
	var statements []ast.Statement
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(token.RightBrace, diagnostics.ErrExpectedToken, "'}' after block"); err != nil {
		return nil, err
	}
	return statements, nil
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() (ast.Statement, *diagnostics.ParseError) {
	ifTok := p.previous()
	if _, err := p.consume(token.LeftParen, diagnostics.ErrExpectedToken, "'(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, diagnostics.ErrExpectedToken, "')' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Token: ifTok, Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

// printStmt -> "print" expression ";"
func (p *Parser) printStatement() (ast.Statement, *diagnostics.ParseError) {
	printTok := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, diagnostics.ErrExpectedToken, "';' after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Token: printTok, Expression: value}, nil
}

// returnStmt -> "return" expression? ";"
func (p *Parser) returnStatement() (ast.Statement, *diagnostics.ParseError) {
	keyword := p.previous()
	var value ast.Expression
	if !p.check(token.Semicolon) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.consume(token.Semicolon, diagnostics.ErrExpectedToken, "';' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() (ast.Statement, *diagnostics.ParseError) {
	whileTok := p.previous()
	if _, err := p.consume(token.LeftParen, diagnostics.ErrExpectedToken, "'(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, diagnostics.ErrExpectedToken, "')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Token: whileTok, Condition: cond, Body: body}, nil
}

// forStmt -> "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// Desugared into: Block{ initializer?, While(cond,
// Block{body, increment?}) }. A missing condition defaults to `true`.
func (p *Parser) forStatement() (ast.Statement, *diagnostics.ParseError) {
	forTok := p.previous()
	if _, err := p.consume(token.LeftParen, diagnostics.ErrExpectedToken, "'(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer ast.Statement
	var err *diagnostics.ParseError
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expression
	if !p.check(token.Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, diagnostics.ErrExpectedToken, "';' after loop condition"); err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !p.check(token.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, diagnostics.ErrExpectedToken, "')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Token: forTok, Statements: []ast.Statement{
			body,
			&ast.ExpressionStmt{Token: forTok, Expression: increment},
		}}
	}
	if condition == nil {
		condition = &ast.Literal{Token: forTok, Value: true}
	}
	body = &ast.WhileStmt{Token: forTok, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Token: forTok, Statements: []ast.Statement{initializer, body}}
	}
	return body, nil
}

// exprStmt -> expression ";"
func (p *Parser) expressionStatement() (ast.Statement, *diagnostics.ParseError) {
	startTok := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, diagnostics.ErrExpectedToken, "';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Token: startTok, Expression: expr}, nil
}
