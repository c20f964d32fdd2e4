package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/token"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: 1}
}

func lit(v interface{}) *ast.Literal {
	return &ast.Literal{Token: tok(token.Number, "lit"), Value: v}
}

func run(t *testing.T, stmts []ast.Statement) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	e := New()
	e.Out = &buf
	err := e.Interpret(stmts)
	return buf.String(), err
}

// print (1 + 2) * 3;
func TestInterpretArithmeticAndPrint(t *testing.T) {
	expr := &ast.Binary{
		Left: &ast.Grouping{
			Token: tok(token.LeftParen, "("),
			Expression: &ast.Binary{
				Left:  lit(1.0),
				Op:    tok(token.Plus, "+"),
				Right: lit(2.0),
			},
		},
		Op:    tok(token.Star, "*"),
		Right: lit(3.0),
	}
	stmts := []ast.Statement{&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: expr}}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "9" {
		t.Fatalf("got %q, want %q", out, "9")
	}
}

// var x = 1; { var x = 2; print x; } print x;
func TestInterpretBlockScopingShadowsThenRestores(t *testing.T) {
	name := tok(token.Identifier, "x")
	stmts := []ast.Statement{
		&ast.VarStmt{Name: name, Init: lit(1.0)},
		&ast.BlockStmt{Token: tok(token.LeftBrace, "{"), Statements: []ast.Statement{
			&ast.VarStmt{Name: name, Init: lit(2.0)},
			&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Variable{Name: name}},
		}},
		&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Variable{Name: name}},
	}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n1\n" {
		t.Fatalf("got %q, want %q", out, "2\n1\n")
	}
}

// var i = 0; while (i < 3) { print i; i = i + 1; }
func TestInterpretWhileLoop(t *testing.T) {
	iName := tok(token.Identifier, "i")
	stmts := []ast.Statement{
		&ast.VarStmt{Name: iName, Init: lit(0.0)},
		&ast.WhileStmt{
			Token: tok(token.While, "while"),
			Condition: &ast.Binary{
				Left: &ast.Variable{Name: iName}, Op: tok(token.Less, "<"), Right: lit(3.0),
			},
			Body: &ast.BlockStmt{Token: tok(token.LeftBrace, "{"), Statements: []ast.Statement{
				&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Variable{Name: iName}},
				&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Assignment{
					Name: iName,
					Value: &ast.Binary{Left: &ast.Variable{Name: iName}, Op: tok(token.Plus, "+"), Right: lit(1.0)},
				}},
			}},
		},
	}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q, want %q", out, "0\n1\n2\n")
	}
}

// fun makeCounter() { var i = 0; fun count() { i = i + 1; return i; } return count; }
// var c = makeCounter(); print c(); print c();
func TestInterpretClosureCapturesMutableOuterVariable(t *testing.T) {
	iName := tok(token.Identifier, "i")
	countName := tok(token.Identifier, "count")
	makeCounterName := tok(token.Identifier, "makeCounter")
	cName := tok(token.Identifier, "c")

	countFn := &ast.FunctionStmt{
		Name:   countName,
		Params: nil,
		Body: []ast.Statement{
			&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Assignment{
				Name:  iName,
				Value: &ast.Binary{Left: &ast.Variable{Name: iName}, Op: tok(token.Plus, "+"), Right: lit(1.0)},
			}},
			&ast.ReturnStmt{Keyword: tok(token.Return, "return"), Value: &ast.Variable{Name: iName}},
		},
	}
	makeCounterFn := &ast.FunctionStmt{
		Name:   makeCounterName,
		Params: nil,
		Body: []ast.Statement{
			&ast.VarStmt{Name: iName, Init: lit(0.0)},
			countFn,
			&ast.ReturnStmt{Keyword: tok(token.Return, "return"), Value: &ast.Variable{Name: countName}},
		},
	}

	callC := func() ast.Statement {
		return &ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Call{
			Callee:       &ast.Variable{Name: cName},
			ClosingParen: tok(token.RightParen, ")"),
		}}
	}

	stmts := []ast.Statement{
		makeCounterFn,
		&ast.VarStmt{Name: cName, Init: &ast.Call{
			Callee:       &ast.Variable{Name: makeCounterName},
			ClosingParen: tok(token.RightParen, ")"),
		}},
		callC(),
		callC(),
	}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Fatalf("got %q, want %q (closures must share one mutable environment per call)", out, "1\n2\n")
	}
}

// class Greeter { greet() { print "hi"; } }
// var g = Greeter(); g.greet();
func TestInterpretClassInstantiationAndMethodCall(t *testing.T) {
	className := tok(token.Identifier, "Greeter")
	gName := tok(token.Identifier, "g")
	greetName := tok(token.Identifier, "greet")

	greetMethod := &ast.FunctionStmt{
		Name: greetName, Params: nil,
		Body: []ast.Statement{
			&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Literal{Token: tok(token.String, `"hi"`), Value: "hi"}},
		},
	}
	classStmt := &ast.ClassStmt{Name: className, Methods: []*ast.FunctionStmt{greetMethod}}

	stmts := []ast.Statement{
		classStmt,
		&ast.VarStmt{Name: gName, Init: &ast.Call{Callee: &ast.Variable{Name: className}, ClosingParen: tok(token.RightParen, ")")}},
		&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Call{
			Callee:       &ast.Get{Object: &ast.Variable{Name: gName}, Name: greetName},
			ClosingParen: tok(token.RightParen, ")"),
		}},
	}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "hi" {
		t.Fatalf("got %q, want %q", out, "hi")
	}
}

// class Box { set(value) { this.v = value; } get() { return this.v; } }
// var b = Box(); b.set(7); print b.get();
func TestInterpretThisBindsFieldsOnTheCallingInstance(t *testing.T) {
	className := tok(token.Identifier, "Box")
	bName := tok(token.Identifier, "b")
	vName := tok(token.Identifier, "v")
	setName := tok(token.Identifier, "set")
	getName := tok(token.Identifier, "get")
	paramName := tok(token.Identifier, "value")

	setMethod := &ast.FunctionStmt{
		Name:   setName,
		Params: []token.Token{paramName},
		Body: []ast.Statement{
			&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Set{
				Object: &ast.This{Keyword: tok(token.This, "this")},
				Name:   vName,
				Value:  &ast.Variable{Name: paramName},
			}},
		},
	}
	getMethod := &ast.FunctionStmt{
		Name:   getName,
		Params: nil,
		Body: []ast.Statement{
			&ast.ReturnStmt{Keyword: tok(token.Return, "return"), Value: &ast.Get{
				Object: &ast.This{Keyword: tok(token.This, "this")},
				Name:   vName,
			}},
		},
	}
	classStmt := &ast.ClassStmt{Name: className, Methods: []*ast.FunctionStmt{setMethod, getMethod}}

	stmts := []ast.Statement{
		classStmt,
		&ast.VarStmt{Name: bName, Init: &ast.Call{Callee: &ast.Variable{Name: className}, ClosingParen: tok(token.RightParen, ")")}},
		&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Call{
			Callee:       &ast.Get{Object: &ast.Variable{Name: bName}, Name: setName},
			Arguments:    []ast.Expression{lit(7.0)},
			ClosingParen: tok(token.RightParen, ")"),
		}},
		&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Call{
			Callee:       &ast.Get{Object: &ast.Variable{Name: bName}, Name: getName},
			ClosingParen: tok(token.RightParen, ")"),
		}},
	}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q, want %q", out, "7")
	}
}

// class Pastry { bake() { print "plain"; } }
// class Cake < Pastry { bake() { super.bake(); print "iced"; } }
// Cake().bake();
func TestInterpretSuperCallsOverriddenSuperclassMethod(t *testing.T) {
	pastryName := tok(token.Identifier, "Pastry")
	cakeName := tok(token.Identifier, "Cake")
	bakeName := tok(token.Identifier, "bake")

	pastryBake := &ast.FunctionStmt{
		Name: bakeName, Params: nil,
		Body: []ast.Statement{
			&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Literal{Token: tok(token.String, `"plain"`), Value: "plain"}},
		},
	}
	cakeBake := &ast.FunctionStmt{
		Name: bakeName, Params: nil,
		Body: []ast.Statement{
			&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Call{
				Callee:       &ast.Super{Keyword: tok(token.Super, "super"), Method: bakeName},
				ClosingParen: tok(token.RightParen, ")"),
			}},
			&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Literal{Token: tok(token.String, `"iced"`), Value: "iced"}},
		},
	}

	pastryStmt := &ast.ClassStmt{Name: pastryName, Methods: []*ast.FunctionStmt{pastryBake}}
	cakeStmt := &ast.ClassStmt{
		Name:       cakeName,
		Superclass: &ast.Variable{Name: pastryName},
		Methods:    []*ast.FunctionStmt{cakeBake},
	}

	stmts := []ast.Statement{
		pastryStmt,
		cakeStmt,
		&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Call{
			Callee: &ast.Get{
				Object: &ast.Call{Callee: &ast.Variable{Name: cakeName}, ClosingParen: tok(token.RightParen, ")")},
				Name:   bakeName,
			},
			ClosingParen: tok(token.RightParen, ")"),
		}},
	}

	out, err := run(t, stmts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "plain\niced\n" {
		t.Fatalf("got %q, want %q (super.bake() must run before the overriding method's own body)", out, "plain\niced\n")
	}
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	stmts := []ast.Statement{
		&ast.PrintStmt{Token: tok(token.Print, "print"), Expression: &ast.Variable{Name: tok(token.Identifier, "nope")}},
	}
	_, err := run(t, stmts)
	if err == nil {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
	if !strings.Contains(err.Error(), "Runtime Error") {
		t.Fatalf("got %q, want it to mention Runtime Error", err.Error())
	}
}

func TestInterpretDivisionByZero(t *testing.T) {
	stmts := []ast.Statement{
		&ast.ExpressionStmt{Token: tok(token.Semicolon, ";"), Expression: &ast.Binary{
			Left: lit(1.0), Op: tok(token.Slash, "/"), Right: lit(0.0),
		}},
	}
	_, err := run(t, stmts)
	if err == nil || !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("got %v, want a division by zero error", err)
	}
}
