package slc_test

import (
	"strings"
	"testing"

	"github.com/funvibe/funxy/pkg/slc"
)

func TestCompile_Arithmetic(t *testing.T) {
	text, err := slc.Compile(`(+ 1 2)`, slc.Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(text, "return") || !strings.Contains(text, "1") || !strings.Contains(text, "2") {
		t.Errorf("unexpected output: %q", text)
	}
}

func TestCompile_Fn(t *testing.T) {
	text, err := slc.Compile(`(fn add [a b] (+ a b))`, slc.Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(text, "local function") || !strings.Contains(text, "end") {
		t.Errorf("unexpected output: %q", text)
	}
}

func TestParseAndAstToString_RoundTrips(t *testing.T) {
	forms, _, err := slc.Parse(`(+ 1 2)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(forms))
	}
	back := slc.AstToString(forms[0])
	if !strings.Contains(back, "+") {
		t.Errorf("AstToString lost the head symbol: %q", back)
	}
}

func TestNewScopeAndGensym(t *testing.T) {
	scope := slc.NewScope(nil)
	a := slc.Gensym(scope)
	b := slc.Gensym(scope)
	if a == b {
		t.Errorf("Gensym produced the same name twice: %q", a)
	}
}

func TestListAndSym(t *testing.T) {
	v := slc.List(slc.Sym("+"), slc.Sym("a"), slc.Sym("b"))
	if !strings.Contains(slc.AstToString(v), "+ a b") {
		t.Errorf("unexpected rendering: %q", slc.AstToString(v))
	}
}
