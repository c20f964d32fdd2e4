package evaluator

import (
	"time"

	"github.com/google/uuid"

	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/token"
)

// registerBuiltins installs the native function registry into the global
// environment, exposing each native as a *Builtin value bound by name at
// startup.
func registerBuiltins(globals *Environment) {
	for _, b := range []*Builtin{
		{Name: "clock", Arity: 0, Fn: builtinClock},
		{Name: "len", Arity: 1, Fn: builtinLen},
		{Name: "str", Arity: 1, Fn: builtinStr},
		{Name: "type", Arity: 1, Fn: builtinType},
		{Name: "uid", Arity: 0, Fn: builtinUID},
	} {
		globals.Define(b.Name, b)
	}
}

func builtinClock(e *Evaluator, tok token.Token, args []Object) (Object, error) {
	return &Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

func builtinLen(e *Evaluator, tok token.Token, args []Object) (Object, error) {
	s, ok := args[0].(*String)
	if !ok {
		return nil, diagnostics.NewRuntimeError(diagnostics.ErrUnexpectedType, tok, "len() expects a string")
	}
	return &Number{Value: float64(len(s.Value))}, nil
}

func builtinStr(e *Evaluator, tok token.Token, args []Object) (Object, error) {
	return &String{Value: Stringify(args[0])}, nil
}

func builtinType(e *Evaluator, tok token.Token, args []Object) (Object, error) {
	return &String{Value: TypeName(args[0])}, nil
}

func builtinUID(e *Evaluator, tok token.Token, args []Object) (Object, error) {
	return &String{Value: uuid.New().String()}, nil
}
