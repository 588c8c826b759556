package pink

import (
	"slices"
	"testing"
)

func TestEnvLookupWalksParents(t *testing.T) {
	global := newEnv(nil)
	global.Define("x", NewNumber(1))
	global.Define("y", NewNumber(2))
	local := newEnv(global)
	local.Define("x", NewNumber(10))

	x, err := local.Get("x")
	if err != nil || x.Number() != 10 {
		t.Fatalf("expected shadowed x=10, got %v (%v)", x, err)
	}
	y, err := local.Get("y")
	if err != nil || y.Number() != 2 {
		t.Fatalf("expected y=2 from parent, got %v (%v)", y, err)
	}

	if _, err := local.Get("missing"); ErrorKindOf(err) != KindUndefinedVariable {
		t.Fatalf("expected undefined variable error, got %v", err)
	}
}

func TestEnvAssignNeverCreates(t *testing.T) {
	global := newEnv(nil)
	global.Define("count", NewNumber(0))
	local := newEnv(global)

	if err := local.Assign("count", NewNumber(5)); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if v, _ := global.Get("count"); v.Number() != 5 {
		t.Fatalf("expected assignment to reach the defining scope, got %v", v)
	}
	if _, ok := local.values["count"]; ok {
		t.Fatalf("assignment must not create a local binding")
	}

	if err := local.Assign("fresh", NewNumber(1)); ErrorKindOf(err) != KindUndefinedVariable {
		t.Fatalf("expected undefined variable error, got %v", err)
	}
	if _, err := global.Get("fresh"); err == nil {
		t.Fatalf("failed assignment must not define the variable")
	}
}

func TestEnvNames(t *testing.T) {
	global := newEnv(nil)
	global.Define("b", NewNull())
	global.Define("a", NewNull())
	local := newEnv(global)
	local.Define("a", NewNull())
	local.Define("c", NewNull())

	if got := local.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected names %v", got)
	}
}
