// Package slc is the embeddable public API of the compiler: parse,
// compile and manage scopes without reaching into internal/*, the way
// the teacher's pkg/embed wraps internal/vm for host applications.
package slc

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/compiler"
	"github.com/funvibe/funxy/internal/parser"
	"github.com/funvibe/funxy/internal/reader"
	"github.com/funvibe/funxy/internal/serializer"
)

// Value is an AST node, re-exported so callers never import internal/ast
// directly.
type Value = ast.Value

// Options configures a Compile/Eval call. It mirrors compiler.Options.
type Options = compiler.Options

// Loader and Runnable back the *compiler reflective bridge.
type Loader = compiler.Loader
type Runnable = compiler.Runnable

// Scope is the compiler's mangling/macro/special-form environment.
type Scope = compiler.Scope

// NewScope creates a root scope (parent nil) or a child scope.
func NewScope(parent *Scope) *Scope {
	return compiler.NewScope(parent)
}

// Gensym returns a fresh identifier not yet used in scope's chain.
func Gensym(scope *Scope) string {
	return compiler.GenSym(scope)
}

// CreateReader wraps source in a byte-addressable Reader.
func CreateReader(source string) *reader.Reader {
	return reader.NewString(source)
}

// List builds a List AST value from elements — a convenience re-export
// so callers building ASTs by hand don't need internal/ast.
func List(elems ...*Value) *Value {
	return ast.NewList(elems...)
}

// Sym builds a Symbol AST value.
func Sym(name string) *Value {
	return ast.NewSymbol(name)
}

// Parse parses source into its top-level forms.
func Parse(source string) ([]*Value, int, error) {
	list, n, err := parser.ParseAll(source)
	if err != nil {
		return nil, 0, err
	}
	return list.List(), n, nil
}

// AstToString renders an AST value back to S-language surface syntax.
func AstToString(v *Value) string {
	return serializer.ToString(v)
}

// Compile compiles source text to target text.
func Compile(source string, opts Options) (string, error) {
	return compiler.Compile(source, opts)
}

// CompileAST compiles a single already-parsed form to target text.
func CompileAST(v *Value, opts Options) (string, error) {
	return compiler.CompileAST(v, opts)
}

// Eval compiles source and invokes it through opts.Loader, returning
// whatever the host runtime produces. It exists for callers that want a
// single call from source text to a running result, without managing the
// Loader/Runnable seam themselves.
func Eval(source string, opts Options) (interface{}, error) {
	text, err := Compile(source, opts)
	if err != nil {
		return nil, err
	}
	if opts.Loader == nil {
		return text, nil
	}
	runnable, err := opts.Loader.Load(text)
	if err != nil {
		return nil, err
	}
	return runnable.Invoke()
}
