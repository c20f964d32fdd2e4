package parser

import (
	"strconv"

	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/token"
)

// expression -> assignment
func (p *Parser) expression() (ast.Expression, *diagnostics.ParseError) {
	return p.assignment()
}

// assignment -> ( call "." )? IDENTIFIER "=" assignment | logic_or
//
// Parsed by first parsing the left side as logic_or (which already covers
// a bare call/get chain), then reinterpreting it as an assignment target
// if an '=' follows, avoiding unbounded lookahead.
func (p *Parser) assignment() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assignment{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			return nil, diagnostics.NewParseError(diagnostics.ErrInvalidAssignmentTarget, equals)
		}
	}
	return expr, nil
}

// logic_or -> logic_and ( "or" logic_and )*
func (p *Parser) or() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// logic_and -> equality ( "and" equality )*
func (p *Parser) and() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// equality -> comparison ( ("!=" | "==") comparison )*
func (p *Parser) equality() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// comparison -> term ( (">" | ">=" | "<" | "<=") term )*
func (p *Parser) comparison() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// term -> factor ( ("-" | "+") factor )*
func (p *Parser) term() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// factor -> unary ( ("/" | "*") unary )*
func (p *Parser) factor() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary -> ("!" | "-") unary | call
func (p *Parser) unary() (ast.Expression, *diagnostics.ParseError) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" | "." IDENTIFIER )*
func (p *Parser) call() (ast.Expression, *diagnostics.ParseError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.Dot):
			name, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, "property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, *diagnostics.ParseError) {
	var args []ast.Expression
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errors = append(p.errors, diagnostics.NewParseError(diagnostics.ErrTooManyArguments, p.peek()))
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, diagnostics.ErrExpectedToken, "')' after arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, ClosingParen: paren, Arguments: args}, nil
}

// primary -> "true" | "false" | "nil" | NUMBER | STRING | "(" expression ")"
//          | IDENTIFIER | "super" "." IDENTIFIER | "this"
func (p *Parser) primary() (ast.Expression, *diagnostics.ParseError) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Token: p.previous(), Value: false}, nil
	case p.match(token.True):
		return &ast.Literal{Token: p.previous(), Value: true}, nil
	case p.match(token.Nil):
		return &ast.Literal{Token: p.previous(), Value: nil}, nil
	case p.match(token.Number):
		tok := p.previous()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, diagnostics.NewParseError(diagnostics.ErrInvalidNumber, tok, tok.Lexeme)
		}
		return &ast.Literal{Token: tok, Value: v}, nil
	case p.match(token.String):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: unquote(tok.Lexeme)}, nil
	case p.match(token.Super):
		keyword := p.previous()
		if _, err := p.consume(token.Dot, diagnostics.ErrExpectedToken, "'.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.consume(token.Identifier, diagnostics.ErrExpectedToken, "superclass method name")
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, diagnostics.ErrExpectedToken, "')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Token: paren, Expression: expr}, nil
	}
	if p.isAtEnd() {
		return nil, diagnostics.NewParseError(diagnostics.ErrEndOfFile, p.peek())
	}
	return nil, diagnostics.NewParseError(diagnostics.ErrUnexpectedToken, p.peek(), "expected an expression, got '"+p.peek().Lexeme+"'")
}

// unquote strips the surrounding double quotes the lexer keeps in a
// STRING token's Lexeme.
func unquote(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
