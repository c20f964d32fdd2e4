package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/loxwalk/loxwalk/internal/ast"
	"github.com/loxwalk/loxwalk/internal/token"
)

// ObjectType tags the concrete variant behind an Object, mirroring the
// teacher's own ObjectType enum.
type ObjectType string

const (
	NIL_OBJ           ObjectType = "NIL"
	BOOLEAN_OBJ       ObjectType = "BOOLEAN"
	NUMBER_OBJ        ObjectType = "NUMBER"
	STRING_OBJ        ObjectType = "STRING"
	FUNCTION_OBJ      ObjectType = "FUNCTION"
	BUILTIN_OBJ       ObjectType = "BUILTIN"
	CLASS_OBJ         ObjectType = "CLASS"
	INSTANCE_OBJ      ObjectType = "INSTANCE"
	RETURN_VALUE_OBJ  ObjectType = "RETURN_VALUE"
)

// Object is any value a Lox program can produce or hold.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Nil is the sole inhabitant of the Nil type.
type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

// Boolean wraps a Go bool.
type Boolean struct{ Value bool }

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// Number is a double-precision float, the language's only numeric type.
type Number struct{ Value float64 }

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return formatNumber(n.Value) }

// formatNumber renders a float the way Lox's reference printer does:
// integral values lose their trailing ".0".
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String wraps a Go string. Lox strings are byte sequences; equality is
// defined over exact byte content.
type String struct{ Value string }

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// Function is a user-defined function or method, closing over the
// environment active at its declaration site.
type Function struct {
	Decl      *ast.FunctionStmt
	Closure   *Environment
	IsInit    bool // true when this is a class's "init" method
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme) }

// Bind returns a copy of f whose closure is extended with "this" bound to
// instance, realizing method binding on property access.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInit: f.IsInit}
}

// Builtin is a native function implemented in Go.
type Builtin struct {
	Name string
	Arity int // -1 means variadic/any arity
	Fn    func(e *Evaluator, tok token.Token, args []Object) (Object, error)
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return fmt.Sprintf("<native fn %s>", b.Name) }

// Class is a Lox class: a name, an optional superclass, and its own
// methods keyed by name.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return fmt.Sprintf("<class %s>", c.Name) }

// FindMethod looks up name on c, then on its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity reports the declared parameter count of the class's "init"
// constructor, or 0 if it has none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return len(init.Decl.Params)
	}
	return 0
}

// Instance is a runtime object of some Class, carrying its own field
// table plus a stable identity.
type Instance struct {
	ID     uuid.UUID
	Class  *Class
	Fields map[string]Object
}

// NewInstance allocates an Instance with a fresh identity.
func NewInstance(class *Class) *Instance {
	return &Instance{ID: uuid.New(), Class: class, Fields: make(map[string]Object)}
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (i *Instance) Inspect() string  { return fmt.Sprintf("<%s instance>", i.Class.Name) }

// Get reads a field, then falls back to a bound method.
func (i *Instance) Get(name string) (Object, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field directly; Lox instances may gain fields freely.
func (i *Instance) Set(name string, value Object) {
	i.Fields[name] = value
}

// ReturnValue is the internal control-flow signal used to unwind a
// function body on `return`. It is never observable from Lox code.
type ReturnValue struct{ Value Object }

func (r *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (r *ReturnValue) Inspect() string  { return r.Value.Inspect() }

// Stringify renders an Object the way `print` does.
func Stringify(obj Object) string {
	switch v := obj.(type) {
	case *Nil:
		return "nil"
	case *Boolean:
		return strconv.FormatBool(v.Value)
	case *Number:
		return formatNumber(v.Value)
	case *String:
		return v.Value
	default:
		return obj.Inspect()
	}
}

// IsTruthy implements Lox truthiness: only nil and false are falsy.
func IsTruthy(obj Object) bool {
	switch v := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// IsEqual implements Lox equality: same-variant only, IEEE-754 semantics
// for Number (so NaN != NaN), byte equality for String.
func IsEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}

// TypeName renders a human-facing type name, used by the type() builtin.
func TypeName(obj Object) string {
	return strings.ToLower(string(obj.Type()))
}
