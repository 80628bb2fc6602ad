package compiler

import (
	"fmt"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
)

// specialFn implements `fn`: (fn [name] [params...] body...). A leading
// Symbol names the function (mangled in the enclosing scope, so it is
// visible both to callers outside and, via scope inheritance, to the body
// itself for recursion); without one a fresh name is generated. The last
// body form is compiled in full-arity mode and returned with `return`;
// every earlier form is compiled for its side effects only.
func specialFn(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	idx := 1
	named := false
	var rawName string
	if idx < len(form) && form[idx].IsSymbol() {
		rawName = form[idx].Symbol()
		named = true
		idx++
	}
	if idx >= len(form) || !form[idx].IsList() {
		return Result{}, &FormError{Form: "fn", Message: "missing parameter vector"}
	}
	params := form[idx].List()
	idx++
	body := form[idx:]
	if len(body) == 0 {
		return Result{}, &FormError{Form: "fn", Message: "missing body"}
	}

	var targetName string
	var err error
	if named {
		targetName, err = Mangle(scope, rawName)
		if err != nil {
			return Result{}, err
		}
	} else {
		targetName = GenSym(scope)
	}

	childScope := NewScope(scope)
	// fn establishes a new function boundary: it never inherits the
	// enclosing scope's variadic-ness, only what its own params declare.
	childScope.Vararg = false
	var paramNames []string
	for _, p := range params {
		if !p.IsSymbol() {
			return Result{}, &FormError{Form: "fn", Message: "parameter vector must contain only symbols"}
		}
		if p.Symbol() == "..." {
			childScope.Vararg = true
		}
	}
	for _, p := range params {
		name := p.Symbol()
		if name == "..." {
			paramNames = append(paramNames, "...")
			continue
		}
		mangled, err := Mangle(childScope, name)
		if err != nil {
			return Result{}, err
		}
		paramNames = append(paramNames, mangled)
	}

	parent.AddLine(fmt.Sprintf("local function %s(%s)", targetName, strings.Join(paramNames, ", ")))
	bodyChunk := parent.NewChild()
	for _, f := range body[:len(body)-1] {
		if err := c.CompileStatement(childScope, bodyChunk, f); err != nil {
			return Result{}, err
		}
	}
	tailRes, err := c.CompileExpr(childScope, bodyChunk, body[len(body)-1])
	if err != nil {
		return Result{}, err
	}
	if len(tailRes.Expr) == 0 {
		bodyChunk.AddLine("return")
	} else {
		bodyChunk.AddLine("return " + strings.Join(tailRes.Expr, ", "))
	}
	parent.AddLine("end")

	return literalResult(targetName), nil
}
