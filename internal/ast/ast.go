// Package ast defines the expression and statement node types produced by
// the parser and walked by the evaluator, using a Visitor/Accept/
// TokenLiteral idiom for double dispatch.
package ast

import "github.com/loxwalk/loxwalk/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor) any
}

// TokenProvider is implemented by every node so the evaluator can recover a
// line/column for error reporting without a type switch.
type TokenProvider interface {
	GetToken() token.Token
}

// Expression is a Node that yields a value when evaluated.
type Expression interface {
	Node
	TokenProvider
	expressionNode()
}

// Statement is a Node executed for effect.
type Statement interface {
	Node
	TokenProvider
	statementNode()
}

// --- Expressions ---

// Literal wraps a constant value. Value is nil to denote the Nil literal;
// otherwise it holds a bool, float64, or string.
type Literal struct {
	Token token.Token
	Value interface{}
}

func (l *Literal) expressionNode()          {}
func (l *Literal) TokenLiteral() string     { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token    { return l.Token }
func (l *Literal) Accept(v Visitor) any     { return v.VisitLiteral(l) }

// Grouping wraps a parenthesized expression.
type Grouping struct {
	Token      token.Token // the '('
	Expression Expression
}

func (g *Grouping) expressionNode()       {}
func (g *Grouping) TokenLiteral() string  { return g.Token.Lexeme }
func (g *Grouping) GetToken() token.Token { return g.Token }
func (g *Grouping) Accept(v Visitor) any  { return v.VisitGrouping(g) }

// Unary is a prefix operator applied to a single operand (`-x`, `!x`).
type Unary struct {
	Op    token.Token
	Right Expression
}

func (u *Unary) expressionNode()       {}
func (u *Unary) TokenLiteral() string  { return u.Op.Lexeme }
func (u *Unary) GetToken() token.Token { return u.Op }
func (u *Unary) Accept(v Visitor) any  { return v.VisitUnary(u) }

// Binary is an infix arithmetic/comparison/equality operation.
type Binary struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (b *Binary) expressionNode()       {}
func (b *Binary) TokenLiteral() string  { return b.Op.Lexeme }
func (b *Binary) GetToken() token.Token { return b.Op }
func (b *Binary) Accept(v Visitor) any  { return v.VisitBinary(b) }

// Logical is `and`/`or`; kept distinct from Binary for short-circuiting.
type Logical struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (l *Logical) expressionNode()       {}
func (l *Logical) TokenLiteral() string  { return l.Op.Lexeme }
func (l *Logical) GetToken() token.Token { return l.Op }
func (l *Logical) Accept(v Visitor) any  { return v.VisitLogical(l) }

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

func (va *Variable) expressionNode()       {}
func (va *Variable) TokenLiteral() string  { return va.Name.Lexeme }
func (va *Variable) GetToken() token.Token { return va.Name }
func (va *Variable) Accept(v Visitor) any  { return v.VisitVariable(va) }

// Assignment is `name = value`.
type Assignment struct {
	Name  token.Token
	Value Expression
}

func (a *Assignment) expressionNode()       {}
func (a *Assignment) TokenLiteral() string  { return a.Name.Lexeme }
func (a *Assignment) GetToken() token.Token { return a.Name }
func (a *Assignment) Accept(v Visitor) any  { return v.VisitAssignment(a) }

// Call is a function/class/method invocation.
type Call struct {
	Callee       Expression
	ClosingParen token.Token // for error line reporting
	Arguments    []Expression
}

func (c *Call) expressionNode()       {}
func (c *Call) TokenLiteral() string  { return c.ClosingParen.Lexeme }
func (c *Call) GetToken() token.Token { return c.ClosingParen }
func (c *Call) Accept(v Visitor) any  { return v.VisitCall(c) }

// Get is `object.name` property access.
type Get struct {
	Object Expression
	Name   token.Token
}

func (g *Get) expressionNode()       {}
func (g *Get) TokenLiteral() string  { return g.Name.Lexeme }
func (g *Get) GetToken() token.Token { return g.Name }
func (g *Get) Accept(v Visitor) any  { return v.VisitGet(g) }

// Set is `object.name = value` property assignment.
type Set struct {
	Object Expression
	Name   token.Token
	Value  Expression
}

func (s *Set) expressionNode()       {}
func (s *Set) TokenLiteral() string  { return s.Name.Lexeme }
func (s *Set) GetToken() token.Token { return s.Name }
func (s *Set) Accept(v Visitor) any  { return v.VisitSet(s) }

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword token.Token
}

func (t *This) expressionNode()       {}
func (t *This) TokenLiteral() string  { return t.Keyword.Lexeme }
func (t *This) GetToken() token.Token { return t.Keyword }
func (t *This) Accept(v Visitor) any  { return v.VisitThis(t) }

// Super is `super.method` used inside a subclass method body.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (s *Super) expressionNode()       {}
func (s *Super) TokenLiteral() string  { return s.Keyword.Lexeme }
func (s *Super) GetToken() token.Token { return s.Keyword }
func (s *Super) Accept(v Visitor) any  { return v.VisitSuper(s) }

// --- Statements ---

// ExpressionStmt evaluates an expression for effect, discarding the value.
type ExpressionStmt struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStmt) statementNode()     {}
func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Lexeme }
func (e *ExpressionStmt) GetToken() token.Token { return e.Token }
func (e *ExpressionStmt) Accept(v Visitor) any  { return v.VisitExpressionStmt(e) }

// PrintStmt evaluates an expression and writes its stringified form.
type PrintStmt struct {
	Token      token.Token
	Expression Expression
}

func (p *PrintStmt) statementNode()      {}
func (p *PrintStmt) TokenLiteral() string { return p.Token.Lexeme }
func (p *PrintStmt) GetToken() token.Token { return p.Token }
func (p *PrintStmt) Accept(v Visitor) any  { return v.VisitPrintStmt(p) }

// VarStmt declares a variable, with an optional initializer.
type VarStmt struct {
	Name token.Token
	Init Expression // nil if omitted; defaults to Nil at evaluation
}

func (va *VarStmt) statementNode()      {}
func (va *VarStmt) TokenLiteral() string { return va.Name.Lexeme }
func (va *VarStmt) GetToken() token.Token { return va.Name }
func (va *VarStmt) Accept(v Visitor) any  { return v.VisitVarStmt(va) }

// BlockStmt is `{ statements }`, introducing a new lexical scope.
type BlockStmt struct {
	Token      token.Token // the '{', or the 'for' keyword for blocks built by for-loop desugaring
	Statements []Statement
}

func (b *BlockStmt) statementNode()      {}
func (b *BlockStmt) TokenLiteral() string { return b.Token.Lexeme }
func (b *BlockStmt) GetToken() token.Token { return b.Token }
func (b *BlockStmt) Accept(v Visitor) any  { return v.VisitBlockStmt(b) }

// IfStmt is `if (cond) then else? else_`.
type IfStmt struct {
	Token     token.Token
	Condition Expression
	Then      Statement
	Else      Statement // nil if omitted
}

func (i *IfStmt) statementNode()      {}
func (i *IfStmt) TokenLiteral() string { return i.Token.Lexeme }
func (i *IfStmt) GetToken() token.Token { return i.Token }
func (i *IfStmt) Accept(v Visitor) any  { return v.VisitIfStmt(i) }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) statementNode()      {}
func (w *WhileStmt) TokenLiteral() string { return w.Token.Lexeme }
func (w *WhileStmt) GetToken() token.Token { return w.Token }
func (w *WhileStmt) Accept(v Visitor) any  { return v.VisitWhileStmt(w) }

// FunctionStmt is a named function or method declaration.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Statement
}

func (f *FunctionStmt) statementNode()      {}
func (f *FunctionStmt) TokenLiteral() string { return f.Name.Lexeme }
func (f *FunctionStmt) GetToken() token.Token { return f.Name }
func (f *FunctionStmt) Accept(v Visitor) any  { return v.VisitFunctionStmt(f) }

// ReturnStmt is `return expr?;`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expression // nil if omitted
}

func (r *ReturnStmt) statementNode()      {}
func (r *ReturnStmt) TokenLiteral() string { return r.Keyword.Lexeme }
func (r *ReturnStmt) GetToken() token.Token { return r.Keyword }
func (r *ReturnStmt) Accept(v Visitor) any  { return v.VisitReturnStmt(r) }

// ClassStmt is a class declaration with an optional superclass and methods.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil if there is no superclass
	Methods    []*FunctionStmt
}

func (c *ClassStmt) statementNode()      {}
func (c *ClassStmt) TokenLiteral() string { return c.Name.Lexeme }
func (c *ClassStmt) GetToken() token.Token { return c.Name }
func (c *ClassStmt) Accept(v Visitor) any  { return v.VisitClassStmt(c) }

// Visitor dispatches over every concrete expression/statement node.
type Visitor interface {
	VisitLiteral(*Literal) any
	VisitGrouping(*Grouping) any
	VisitUnary(*Unary) any
	VisitBinary(*Binary) any
	VisitLogical(*Logical) any
	VisitVariable(*Variable) any
	VisitAssignment(*Assignment) any
	VisitCall(*Call) any
	VisitGet(*Get) any
	VisitSet(*Set) any
	VisitThis(*This) any
	VisitSuper(*Super) any

	VisitExpressionStmt(*ExpressionStmt) any
	VisitPrintStmt(*PrintStmt) any
	VisitVarStmt(*VarStmt) any
	VisitBlockStmt(*BlockStmt) any
	VisitIfStmt(*IfStmt) any
	VisitWhileStmt(*WhileStmt) any
	VisitFunctionStmt(*FunctionStmt) any
	VisitReturnStmt(*ReturnStmt) any
	VisitClassStmt(*ClassStmt) any
}
