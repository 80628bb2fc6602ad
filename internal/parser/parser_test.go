package parser

import (
	"testing"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/reader"
)

func readerOf(s string) *reader.Reader { return reader.NewString(s) }

func TestParseSimpleList(t *testing.T) {
	forms, n, err := ParseAll("(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 top-level form, got %d", n)
	}
	form := forms.List()[0]
	if !form.IsList() || form.Len() != 3 {
		t.Fatalf("expected 3-element list, got %v", form)
	}
	head := form.List()[0]
	if !head.IsSymbol() || head.Symbol() != "+" {
		t.Fatalf("expected head symbol '+', got %v", head)
	}
}

func TestParseNestedAndVectorsAsLists(t *testing.T) {
	forms, _, err := ParseAll("(fn [a b] (+ a b))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form := forms.List()[0]
	params := form.List()[1]
	if !params.IsList() || params.Len() != 2 {
		t.Fatalf("expected param vector to parse as 2-element list, got %v", params)
	}
}

func TestParseMap(t *testing.T) {
	forms, _, err := ParseAll(`{"a" 1 "b" 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := forms.List()[0]
	if !m.IsMap() || len(m.Entries()) != 2 {
		t.Fatalf("expected a 2-entry map, got %v", m)
	}
}

func TestParseMapDropsOddTrailingKey(t *testing.T) {
	forms, _, err := ParseAll(`{"a" 1 "b"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := forms.List()[0]
	if len(m.Entries()) != 1 {
		t.Fatalf("expected trailing odd key to be dropped, got %d entries", len(m.Entries()))
	}
}

func TestParseScalars(t *testing.T) {
	forms, n, err := ParseAll(`nil true false 42 "hi"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 forms, got %d", n)
	}
	kinds := []ast.Kind{ast.KindNil, ast.KindBool, ast.KindBool, ast.KindNumber, ast.KindString}
	for i, k := range kinds {
		if forms.List()[i].Kind() != k {
			t.Fatalf("form %d: got kind %v, want %v", i, forms.List()[i].Kind(), k)
		}
	}
}

func TestUnmatchedDelimiterIsFatal(t *testing.T) {
	if _, _, err := ParseAll("(+ 1 2]"); err == nil {
		t.Fatalf("expected a parse error for mismatched delimiter")
	}
}

func TestUnterminatedListIsFatal(t *testing.T) {
	if _, _, err := ParseAll("(+ 1 2"); err == nil {
		t.Fatalf("expected a parse error for unterminated list")
	}
}

func TestDispatchCallbackFiresPerForm(t *testing.T) {
	var seen []string
	_, n, err := Parse(readerOf("(a) (b) (c)"), func(v *ast.Value) error {
		seen = append(seen, v.List()[0].Symbol())
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("dispatch mode should return an empty collected count, got %d", n)
	}
	if len(seen) != 3 || seen[0] != "a" || seen[1] != "b" || seen[2] != "c" {
		t.Fatalf("unexpected dispatch order: %v", seen)
	}
}

func TestEscapedQuoteIsNotTerminator(t *testing.T) {
	forms, _, err := ParseAll(`"a\"b"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forms.List()[0].Str() != `a"b` {
		t.Fatalf("got %q, want a\"b", forms.List()[0].Str())
	}
}
