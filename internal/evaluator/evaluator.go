// Package evaluator walks the AST produced by internal/parser, maintaining
// a chain of Environments and executing statements for effect. Each block
// gets a freshly enclosed scope, and a sentinel *ReturnValue Object
// unwinds a function call on return, while ordinary errors use Go's
// explicit (Object, error) return convention throughout.
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/token"
)

// Evaluator holds the global environment and output sink shared across a
// single program run (or a single REPL session).
type Evaluator struct {
	Globals *Environment
	Out     io.Writer
	Logger  *Logger

	// env is the environment the Visitor methods see while a node's
	// Accept is executing. eval saves/restores it around each dispatch
	// so nested evaluate/execute calls with a different env nest
	// correctly.
	env *Environment
}

// New builds an Evaluator with a fresh global scope populated by the
// native function registry.
func New() *Evaluator {
	e := &Evaluator{Globals: NewEnvironment(), Out: os.Stdout, Logger: NewLogger(os.Stderr)}
	registerBuiltins(e.Globals)
	return e
}

// Interpret runs a full program: a sequence of statements sharing Globals.
// It stops and returns the first RuntimeError encountered; there is no
// recovery once execution has begun.
func (e *Evaluator) Interpret(statements []ast.Statement) error {
	for _, stmt := range statements {
		if _, err := e.execute(stmt, e.Globals); err != nil {
			return err
		}
	}
	return nil
}

// eval dispatches a single node through the Visitor and normalizes the
// `any` result Accept returns into Go's (Object, error) shape.
func (e *Evaluator) eval(node ast.Node, env *Environment) (Object, error) {
	prev := e.env
	e.env = env
	result := node.Accept(e)
	e.env = prev

	if err, ok := result.(error); ok {
		return nil, err
	}
	obj, ok := result.(Object)
	if !ok {
		return nil, fmt.Errorf("evaluator: node %T produced non-Object result %#v", node, result)
	}
	return obj, nil
}

// evaluate runs an expression node and returns its value.
func (e *Evaluator) evaluate(expr ast.Expression, env *Environment) (Object, error) {
	return e.eval(expr, env)
}

// execute runs a statement node. Most statements evaluate to *Nil; a
// return statement evaluates to a *ReturnValue that callers must check
// for and propagate.
func (e *Evaluator) execute(stmt ast.Statement, env *Environment) (Object, error) {
	return e.eval(stmt, env)
}

// executeBlock runs statements in env (callers pass a freshly enclosed
// scope for each block or call), stopping and propagating the first error
// or *ReturnValue it encounters.
func (e *Evaluator) executeBlock(statements []ast.Statement, env *Environment) (Object, error) {
	var last Object = &Nil{}
	for _, stmt := range statements {
		result, err := e.execute(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, isReturn := result.(*ReturnValue); isReturn {
			return result, nil
		}
		last = result
	}
	return last, nil
}

// runtimeErr is a small convenience wrapper so Visit* methods can return
// `any` holding either an Object or an error value interchangeably.
func runtimeErr(code diagnostics.RuntimeErrorCode, tok token.Token, args ...interface{}) error {
	return diagnostics.NewRuntimeError(code, tok, args...)
}
