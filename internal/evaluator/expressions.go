package evaluator

import (
	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/token"
)

// VisitLiteral returns the constant value carried by the node; a nil
// Value denotes the Nil literal.
func (e *Evaluator) VisitLiteral(node *ast.Literal) any {
	switch v := node.Value.(type) {
	case nil:
		return &Nil{}
	case bool:
		return &Boolean{Value: v}
	case float64:
		return &Number{Value: v}
	case string:
		return &String{Value: v}
	default:
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Token, "unrecognized literal value")
	}
}

func (e *Evaluator) VisitGrouping(node *ast.Grouping) any {
	obj, err := e.evaluate(node.Expression, e.env)
	if err != nil {
		return err
	}
	return obj
}

func (e *Evaluator) VisitUnary(node *ast.Unary) any {
	right, err := e.evaluate(node.Right, e.env)
	if err != nil {
		return err
	}
	switch node.Op.Kind {
	case token.Minus:
		num, ok := right.(*Number)
		if !ok {
			return runtimeErr(diagnostics.ErrUnexpectedType, node.Op, "operand must be a number")
		}
		return &Number{Value: -num.Value}
	case token.Bang:
		return &Boolean{Value: !IsTruthy(right)}
	default:
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Op, "unknown unary operator")
	}
}

func (e *Evaluator) VisitBinary(node *ast.Binary) any {
	left, err := e.evaluate(node.Left, e.env)
	if err != nil {
		return err
	}
	right, err := e.evaluate(node.Right, e.env)
	if err != nil {
		return err
	}

	switch node.Op.Kind {
	case token.Plus:
		if ln, ok := left.(*Number); ok {
			if rn, ok := right.(*Number); ok {
				return &Number{Value: ln.Value + rn.Value}
			}
		}
		if ls, ok := left.(*String); ok {
			if rs, ok := right.(*String); ok {
				return &String{Value: ls.Value + rs.Value}
			}
		}
		return runtimeErr(diagnostics.ErrInvalidOperand, node.Op, "operands must be two numbers or two strings")
	case token.Minus:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		return &Number{Value: ln - rn}
	case token.Star:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		return &Number{Value: ln * rn}
	case token.Slash:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		if rn == 0 {
			return runtimeErr(diagnostics.ErrDivisionByZero, node.Op)
		}
		return &Number{Value: ln / rn}
	case token.Greater:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		return &Boolean{Value: ln > rn}
	case token.GreaterEqual:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		return &Boolean{Value: ln >= rn}
	case token.Less:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		return &Boolean{Value: ln < rn}
	case token.LessEqual:
		ln, rn, err := e.numberOperands(left, right, node.Op)
		if err != nil {
			return err
		}
		return &Boolean{Value: ln <= rn}
	case token.EqualEqual:
		return &Boolean{Value: IsEqual(left, right)}
	case token.BangEqual:
		return &Boolean{Value: !IsEqual(left, right)}
	default:
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Op, "unknown binary operator")
	}
}

func (e *Evaluator) numberOperands(left, right Object, op token.Token) (float64, float64, error) {
	ln, ok := left.(*Number)
	if !ok {
		return 0, 0, runtimeErr(diagnostics.ErrUnexpectedType, op, "operands must be numbers")
	}
	rn, ok := right.(*Number)
	if !ok {
		return 0, 0, runtimeErr(diagnostics.ErrUnexpectedType, op, "operands must be numbers")
	}
	return ln.Value, rn.Value, nil
}

func (e *Evaluator) VisitLogical(node *ast.Logical) any {
	left, err := e.evaluate(node.Left, e.env)
	if err != nil {
		return err
	}
	if node.Op.Kind == token.Or {
		if IsTruthy(left) {
			return left
		}
	} else { // And
		if !IsTruthy(left) {
			return left
		}
	}
	right, err := e.evaluate(node.Right, e.env)
	if err != nil {
		return err
	}
	return right
}

func (e *Evaluator) VisitVariable(node *ast.Variable) any {
	val, ok := e.env.Get(node.Name.Lexeme)
	if !ok {
		return runtimeErr(diagnostics.ErrUndefinedVariable, node.Name, node.Name.Lexeme)
	}
	return val
}

func (e *Evaluator) VisitAssignment(node *ast.Assignment) any {
	val, err := e.evaluate(node.Value, e.env)
	if err != nil {
		return err
	}
	if !e.env.Assign(node.Name.Lexeme, val) {
		return runtimeErr(diagnostics.ErrUndefinedVariable, node.Name, node.Name.Lexeme)
	}
	return val
}

func (e *Evaluator) VisitCall(node *ast.Call) any {
	callee, err := e.evaluate(node.Callee, e.env)
	if err != nil {
		return err
	}

	args := make([]Object, 0, len(node.Arguments))
	for _, a := range node.Arguments {
		v, err := e.evaluate(a, e.env)
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	result, callErr := e.callValue(callee, node.ClosingParen, args)
	if callErr != nil {
		return callErr
	}
	return result
}

// callValue dispatches a call expression by the callee's dynamic type:
// Function, Builtin, and Class are each callable; anything else is a
// RuntimeError.
func (e *Evaluator) callValue(callee Object, paren token.Token, args []Object) (Object, error) {
	switch fn := callee.(type) {
	case *Function:
		return e.callFunction(fn, paren, args)
	case *Builtin:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, runtimeErr(diagnostics.ErrArityMismatch, paren, fn.Arity, len(args))
		}
		return fn.Fn(e, paren, args)
	case *Class:
		if len(args) != fn.Arity() {
			return nil, runtimeErr(diagnostics.ErrArityMismatch, paren, fn.Arity(), len(args))
		}
		instance := NewInstance(fn)
		if init, ok := fn.FindMethod("init"); ok {
			if _, err := e.callFunction(init.Bind(instance), paren, args); err != nil {
				return nil, err
			}
		}
		return instance, nil
	default:
		return nil, runtimeErr(diagnostics.ErrNotCallable, paren)
	}
}

// callFunction applies a user-defined Function to args in a fresh scope
// enclosed by its closure.
func (e *Evaluator) callFunction(fn *Function, paren token.Token, args []Object) (Object, error) {
	if len(args) != len(fn.Decl.Params) {
		return nil, runtimeErr(diagnostics.ErrArityMismatch, paren, len(fn.Decl.Params), len(args))
	}
	callEnv := NewEnclosedEnvironment(fn.Closure)
	for i, param := range fn.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	result, err := e.executeBlock(fn.Decl.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if fn.IsInit {
		this, _ := fn.Closure.Get("this")
		return this, nil
	}
	if ret, ok := result.(*ReturnValue); ok {
		return ret.Value, nil
	}
	return &Nil{}, nil
}

func (e *Evaluator) VisitGet(node *ast.Get) any {
	obj, err := e.evaluate(node.Object, e.env)
	if err != nil {
		return err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Name, "only instances have properties")
	}
	val, ok := instance.Get(node.Name.Lexeme)
	if !ok {
		return runtimeErr(diagnostics.ErrUndefinedProperty, node.Name, node.Name.Lexeme)
	}
	return val
}

func (e *Evaluator) VisitSet(node *ast.Set) any {
	obj, err := e.evaluate(node.Object, e.env)
	if err != nil {
		return err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Name, "only instances have fields")
	}
	val, err := e.evaluate(node.Value, e.env)
	if err != nil {
		return err
	}
	instance.Set(node.Name.Lexeme, val)
	return val
}

func (e *Evaluator) VisitThis(node *ast.This) any {
	val, ok := e.env.Get("this")
	if !ok {
		return runtimeErr(diagnostics.ErrUndefinedVariable, node.Keyword, "this")
	}
	return val
}

func (e *Evaluator) VisitSuper(node *ast.Super) any {
	superVal, ok := e.env.Get("super")
	if !ok {
		return runtimeErr(diagnostics.ErrUndefinedVariable, node.Keyword, "super")
	}
	superclass, ok := superVal.(*Class)
	if !ok {
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Keyword, "super must resolve to a class")
	}
	thisVal, ok := e.env.Get("this")
	if !ok {
		return runtimeErr(diagnostics.ErrUndefinedVariable, node.Keyword, "this")
	}
	instance, ok := thisVal.(*Instance)
	if !ok {
		return runtimeErr(diagnostics.ErrUnexpectedType, node.Keyword, "this must resolve to an instance")
	}
	method, ok := superclass.FindMethod(node.Method.Lexeme)
	if !ok {
		return runtimeErr(diagnostics.ErrUndefinedProperty, node.Method, node.Method.Lexeme)
	}
	return method.Bind(instance)
}
