// Package compiler implements the expression compiler, the special-form
// dispatch table, the macro engine, the chunk-tree assembler and the
// reflective compiler bridge — components E through J of the pipeline.
// They share one package, the way the teacher's VM compiler spreads scope
// handling, expression compilation and statement lowering across several
// files of a single `vm` package rather than splitting each concern into
// its own importable unit.
package compiler

import "github.com/funvibe/funxy/internal/ast"

// Macro is a compile-time transformer: it receives the unevaluated
// arguments of a macro call site and returns a replacement form, which
// must be a List.
type Macro func(args []*ast.Value) (*ast.Value, error)

// Special emits one primitive construct's target-language fragments
// directly into parent, and returns the compile result describing what it
// emitted. form is the full AST list including the head symbol.
type Special func(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error)

// Scope is a nested symbol table: identifier manglings, user macros and
// the special-form table are all looked up by walking the parent chain,
// the way the teacher's Compiler.resolveLocal walks c.enclosing. Writes —
// recording a new mangling, installing a macro — always land in the
// current scope, never a parent's.
type Scope struct {
	Manglings   map[string]string
	Unmanglings map[string]string
	Macros      map[string]Macro
	Specials    map[string]Special
	Parent      *Scope
	Vararg      bool
	Depth       int

	gensymCounter int
}

// NewScope creates a child scope. Passing a nil parent creates a root
// scope pre-populated with the built-in special forms; every other scope
// inherits specials by walking up to that root.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		Manglings:   make(map[string]string),
		Unmanglings: make(map[string]string),
		Macros:      make(map[string]Macro),
		Parent:      parent,
	}
	if parent == nil {
		s.Specials = RootSpecials()
		s.Depth = 0
	} else {
		s.Specials = make(map[string]Special)
		s.Depth = parent.Depth + 1
		s.Vararg = parent.Vararg
	}
	return s
}

// lookupMacro walks the scope chain for a user macro bound to name.
func lookupMacro(scope *Scope, name string) (Macro, bool) {
	for s := scope; s != nil; s = s.Parent {
		if m, ok := s.Macros[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// lookupSpecial walks the scope chain for a special-form emitter.
func lookupSpecial(scope *Scope, name string) (Special, bool) {
	for s := scope; s != nil; s = s.Parent {
		if sp, ok := s.Specials[name]; ok {
			return sp, true
		}
	}
	return nil, false
}

// lookupMangling walks the scope chain for an already-recorded mangling
// of a source name.
func lookupMangling(scope *Scope, name string) (string, bool) {
	for s := scope; s != nil; s = s.Parent {
		if m, ok := s.Manglings[name]; ok {
			return m, true
		}
	}
	return "", false
}

// unmangledExists walks the whole chain to check whether target is
// already taken by some other recorded mangling, so fresh names and
// mangled names never collide across nested scopes.
func unmangledExists(scope *Scope, target string) bool {
	for s := scope; s != nil; s = s.Parent {
		if _, ok := s.Unmanglings[target]; ok {
			return true
		}
	}
	return false
}
