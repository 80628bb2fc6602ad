package compiler

import (
	"strings"

	"github.com/funvibe/funxy/internal/ast"
)

// specialVar and specialSet implement `var`/`set`: one or more target
// Symbols followed by a trailing expression, compiled in full-arity mode
// so e.g. (var a b (values 1 2)) assigns both targets at once. `var`
// introduces fresh local bindings; `set` reuses whatever mangling the
// targets already carry (or introduces one, if a caller writes to a name
// that was never bound — the target language doesn't distinguish).
func specialVar(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	return compileBinding(c, scope, parent, form, "var", true)
}

func specialSet(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	return compileBinding(c, scope, parent, form, "set", false)
}

func compileBinding(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value, name string, declare bool) (Result, error) {
	if len(form) < 3 {
		return Result{}, &FormError{Form: name, Message: "expects one or more targets and a trailing expression"}
	}
	targets := form[1 : len(form)-1]
	exprForm := form[len(form)-1]

	mangled := make([]string, len(targets))
	for i, t := range targets {
		if !t.IsSymbol() {
			return Result{}, &FormError{Form: name, Message: "targets must be symbols"}
		}
		m, err := Mangle(scope, t.Symbol())
		if err != nil {
			return Result{}, err
		}
		mangled[i] = m
	}

	exprRes, err := c.CompileExpr(scope, parent, exprForm)
	if err != nil {
		return Result{}, err
	}

	rhs := exprRes.Expr
	if len(rhs) == 0 {
		rhs = []string{"nil"}
	}
	prefix := ""
	if declare {
		prefix = "local "
	}
	parent.AddLine(prefix + strings.Join(mangled, ", ") + " = " + strings.Join(rhs, ", "))

	return Result{}, nil
}

// specialComment implements `--`: every argument must be a String, each
// emitted as its own comment line. It has no value and no side effects.
func specialComment(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	for _, a := range form[1:] {
		if !a.IsString() {
			return Result{}, &FormError{Form: "--", Message: "arguments must be strings"}
		}
		parent.AddLine("-- " + a.Str())
	}
	return Result{}, nil
}
