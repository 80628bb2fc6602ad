package rpcservice

import "testing"

func TestNew_ParsesEmbeddedSchema(t *testing.T) {
	s, err := New("  ", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.sd.GetName() != "CompileService" {
		t.Errorf("service name = %q, want CompileService", s.sd.GetName())
	}
	methods := s.sd.GetMethods()
	if len(methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(methods))
	}
}

func TestAstToStruct_Scalars(t *testing.T) {
	// Exercised end to end through ParseToStruct; here we only check that
	// astToStruct encodes the scalar kinds it special-cases without error.
	forms, _, err := parseForStruct(`(f nil true 1 "s")`)
	if err != nil {
		t.Fatalf("parseForStruct: %v", err)
	}
	if _, err := astToStruct(forms); err != nil {
		t.Fatalf("astToStruct: %v", err)
	}
}
