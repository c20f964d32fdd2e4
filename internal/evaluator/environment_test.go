package evaluator

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &Number{Value: 42})

	v, ok := env.Get("x")
	if !ok {
		t.Fatalf("expected x to be defined")
	}
	if n, ok := v.(*Number); !ok || n.Value != 42 {
		t.Fatalf("got %#v, want Number{42}", v)
	}
}

func TestEnvironmentGetMissingFails(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("missing"); ok {
		t.Fatalf("expected lookup of undefined name to fail")
	}
}

func TestEnclosedEnvironmentSeesOuterBindings(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Number{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("x")
	if !ok {
		t.Fatalf("expected inner scope to see outer binding")
	}
	if n := v.(*Number); n.Value != 1 {
		t.Fatalf("got %v, want 1", n.Value)
	}
}

func TestEnclosedEnvironmentShadowsOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Number{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", &Number{Value: 2})

	v, _ := inner.Get("x")
	if n := v.(*Number); n.Value != 2 {
		t.Fatalf("got %v, want shadowed value 2", n.Value)
	}
	outerVal, _ := outer.Get("x")
	if n := outerVal.(*Number); n.Value != 1 {
		t.Fatalf("shadowing mutated outer scope: got %v, want 1", n.Value)
	}
}

func TestEnvironmentAssignMutatesNearestBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &Number{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	if !inner.Assign("x", &Number{Value: 99}) {
		t.Fatalf("expected assign to find x in outer scope")
	}
	v, _ := outer.Get("x")
	if n := v.(*Number); n.Value != 99 {
		t.Fatalf("got %v, want 99", n.Value)
	}
}

func TestEnvironmentAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment()
	if env.Assign("never_declared", &Nil{}) {
		t.Fatalf("expected assign to undeclared name to fail")
	}
}

func TestAncestorAndGetAt(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", &Number{Value: 7})
	mid := NewEnclosedEnvironment(root)
	leaf := NewEnclosedEnvironment(mid)

	v, ok := leaf.GetAt(2, "x")
	if !ok {
		t.Fatalf("expected GetAt(2) to find x on root")
	}
	if n := v.(*Number); n.Value != 7 {
		t.Fatalf("got %v, want 7", n.Value)
	}

	if !leaf.AssignAt(2, "x", &Number{Value: 8}) {
		t.Fatalf("expected AssignAt(2) to succeed")
	}
	v, _ = root.Get("x")
	if n := v.(*Number); n.Value != 8 {
		t.Fatalf("got %v, want 8", n.Value)
	}
}
