package compiler

import (
	"strings"
	"testing"
)

func compile(t *testing.T, source string) string {
	t.Helper()
	text, err := Compile(source, Options{})
	if err != nil {
		t.Fatalf("Compile(%q): %v", source, err)
	}
	return text
}

func TestCompile_Literals(t *testing.T) {
	cases := map[string]string{
		`1`:       "return 1",
		`"a"`:     `return "a"`,
		`true`:    "return true",
		`false`:   "return false",
		`nil`:     "return nil",
		`{}`:      "return {}",
		`{1 "a"}`: `return {"a"}`,
	}
	for src, want := range cases {
		got := compile(t, src)
		if !strings.Contains(got, want) {
			t.Errorf("Compile(%q) = %q, want substring %q", src, got, want)
		}
	}
}

func TestCompile_MultipleTopLevelForms(t *testing.T) {
	got := compile(t, `(var x 1) (+ x 1)`)
	if !strings.Contains(got, "local ") || !strings.Contains(got, "return (") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestCompile_LastFormForwardsFullArity(t *testing.T) {
	got := compile(t, `(values 1 2 3)`)
	if !strings.Contains(got, "return 1, 2, 3") {
		t.Errorf("expected the last top-level form's full arity to be returned, got %q", got)
	}
}

func TestTossRest_CollapsesMultiFragment(t *testing.T) {
	scope := NewScope(nil)
	parent := NewChunk()
	res := tossRest(scope, parent, Result{Expr: []string{"a", "b", "c"}, ValidStatement: true})
	if len(res.Expr) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(res.Expr))
	}
	rendered := Render(parent, "  ")
	if !strings.Contains(rendered, "local ") || !strings.Contains(rendered, "= a") {
		t.Errorf("expected first fragment bound to a local, got %q", rendered)
	}
	if !strings.Contains(rendered, "b") || !strings.Contains(rendered, "c") {
		t.Errorf("expected remaining fragments emitted as statements, got %q", rendered)
	}
}

func TestTossRest_NoFragmentsBecomesNil(t *testing.T) {
	scope := NewScope(nil)
	parent := NewChunk()
	res := tossRest(scope, parent, Result{})
	if len(res.Expr) != 1 || res.Expr[0] != "nil" {
		t.Fatalf("expected nil fragment, got %v", res.Expr)
	}
}

func TestMangle_ReservedWordPrefixed(t *testing.T) {
	scope := NewScope(nil)
	name, err := Mangle(scope, "end")
	if err != nil {
		t.Fatalf("Mangle: %v", err)
	}
	if !strings.HasPrefix(name, "_") {
		t.Errorf("expected reserved word to be prefixed, got %q", name)
	}
}

func TestMangle_SameNameSameScope(t *testing.T) {
	scope := NewScope(nil)
	a, _ := Mangle(scope, "x")
	b, _ := Mangle(scope, "x")
	if a != b {
		t.Errorf("Mangle(x) twice returned different names: %q vs %q", a, b)
	}
}

func TestMangle_VarargOutsideVariadicScope(t *testing.T) {
	scope := NewScope(nil)
	if _, err := Mangle(scope, "..."); err == nil {
		t.Error("expected an error mangling ... outside a variadic scope")
	}
}

func TestGenSym_Unique(t *testing.T) {
	scope := NewScope(nil)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := GenSym(scope)
		if seen[name] {
			t.Fatalf("GenSym produced a duplicate: %q", name)
		}
		seen[name] = true
	}
}
