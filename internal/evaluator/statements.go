package evaluator

import (
	"fmt"

	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
)

func (e *Evaluator) VisitExpressionStmt(node *ast.ExpressionStmt) any {
	_, err := e.evaluate(node.Expression, e.env)
	if err != nil {
		return err
	}
	return &Nil{}
}

func (e *Evaluator) VisitPrintStmt(node *ast.PrintStmt) any {
	val, err := e.evaluate(node.Expression, e.env)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Out, Stringify(val))
	return &Nil{}
}

func (e *Evaluator) VisitVarStmt(node *ast.VarStmt) any {
	var value Object = &Nil{}
	if node.Init != nil {
		v, err := e.evaluate(node.Init, e.env)
		if err != nil {
			return err
		}
		value = v
	}
	e.env.Define(node.Name.Lexeme, value)
	return &Nil{}
}

func (e *Evaluator) VisitBlockStmt(node *ast.BlockStmt) any {
	blockEnv := NewEnclosedEnvironment(e.env)
	result, err := e.executeBlock(node.Statements, blockEnv)
	if err != nil {
		return err
	}
	return result
}

func (e *Evaluator) VisitIfStmt(node *ast.IfStmt) any {
	cond, err := e.evaluate(node.Condition, e.env)
	if err != nil {
		return err
	}
	if IsTruthy(cond) {
		return wrap(e.execute(node.Then, e.env))
	}
	if node.Else != nil {
		return wrap(e.execute(node.Else, e.env))
	}
	return &Nil{}
}

func (e *Evaluator) VisitWhileStmt(node *ast.WhileStmt) any {
	for {
		cond, err := e.evaluate(node.Condition, e.env)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return &Nil{}
		}
		result, err := e.execute(node.Body, e.env)
		if err != nil {
			return err
		}
		if _, isReturn := result.(*ReturnValue); isReturn {
			return result
		}
	}
}

// VisitFunctionStmt declares a named function, closing over the current
// environment via a captured *Environment, then binds it by name.
func (e *Evaluator) VisitFunctionStmt(node *ast.FunctionStmt) any {
	fn := &Function{Decl: node, Closure: e.env}
	e.env.Define(node.Name.Lexeme, fn)
	return &Nil{}
}

func (e *Evaluator) VisitReturnStmt(node *ast.ReturnStmt) any {
	var value Object = &Nil{}
	if node.Value != nil {
		v, err := e.evaluate(node.Value, e.env)
		if err != nil {
			return err
		}
		value = v
	}
	return &ReturnValue{Value: value}
}

// VisitClassStmt declares a class, resolving its optional superclass and
// building each method's closure: a superclass binds "super" one scope
// outside each method's own closure.
func (e *Evaluator) VisitClassStmt(node *ast.ClassStmt) any {
	var superclass *Class
	if node.Superclass != nil {
		sc, err := e.evaluate(node.Superclass, e.env)
		if err != nil {
			return err
		}
		classVal, ok := sc.(*Class)
		if !ok {
			return runtimeErr(diagnostics.ErrUnexpectedType, node.Superclass.Name, "superclass must be a class")
		}
		superclass = classVal
	}

	methodEnv := e.env
	if superclass != nil {
		methodEnv = NewEnclosedEnvironment(e.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(node.Methods))
	for _, m := range node.Methods {
		methods[m.Name.Lexeme] = &Function{
			Decl:    m,
			Closure: methodEnv,
			IsInit:  m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: node.Name.Lexeme, Superclass: superclass, Methods: methods}
	e.env.Define(node.Name.Lexeme, class)
	return &Nil{}
}

// wrap adapts an (Object, error) pair back into the `any` shape Visit*
// methods return, for call sites that delegate to execute/evaluate inline.
func wrap(obj Object, err error) any {
	if err != nil {
		return err
	}
	return obj
}
