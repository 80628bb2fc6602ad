package compiler

import (
	"fmt"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
)

// specialBlock implements `block`: a fresh scope, a bare `do ... end`, pure
// statement-compiled body. It evaluates to nil and carries no side effects
// of its own — whatever the body does, it has already done directly into
// parent by the time specialBlock returns.
func specialBlock(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	childScope := NewScope(scope)
	parent.AddLine("do")
	body := parent.NewChild()
	for _, f := range form[1:] {
		if err := c.CompileStatement(childScope, body, f); err != nil {
			return Result{}, err
		}
	}
	parent.AddLine("end")
	return literalResult("nil"), nil
}

// specialDo implements `do`: like block, except the tail form's value
// flows out as the form's own Result instead of being discarded.
//
// The tail is compiled once into a detached scratch chunk so its Result
// can be inspected before deciding how to surround it: if the tail's
// arity is statically unknown (e.g. a function call), the whole body is
// wrapped in an immediately-invoked local function so the call's full,
// unknown-length tail keeps flowing outward unchanged; otherwise fresh
// locals are hoisted in parent for each known value and assigned from
// inside a plain do/end, which avoids the function-call indirection when
// it isn't needed.
func specialDo(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) < 2 {
		return Result{}, &FormError{Form: "do", Message: "missing body"}
	}
	childScope := NewScope(scope)
	body := NewChunk()
	for _, f := range form[1 : len(form)-1] {
		if err := c.CompileStatement(childScope, body, f); err != nil {
			return Result{}, err
		}
	}
	tailRes, err := c.CompileExpr(childScope, body, form[len(form)-1])
	if err != nil {
		return Result{}, err
	}

	if tailRes.UnknownExprCount {
		funcName := GenSym(scope)
		varargParam := ""
		if scope.Vararg {
			varargParam = "..."
		}
		parent.AddLine(fmt.Sprintf("local function %s(%s)", funcName, varargParam))
		inner := parent.NewChild()
		inner.Append(body)
		if len(tailRes.Expr) == 0 {
			inner.AddLine("return")
		} else {
			inner.AddLine("return " + strings.Join(tailRes.Expr, ", "))
		}
		parent.AddLine("end")
		invocation := fmt.Sprintf("%s(%s)", funcName, varargParam)
		return Result{
			Expr:             []string{invocation},
			SideEffects:      true,
			ValidStatement:   true,
			UnknownExprCount: true,
		}, nil
	}

	count := len(tailRes.Expr)
	if count == 0 {
		count = 1
	}
	names := make([]string, count)
	for i := range names {
		names[i] = GenSym(scope)
	}
	parent.AddLine("local " + strings.Join(names, ", "))
	parent.AddLine("do")
	inner := parent.NewChild()
	inner.Append(body)
	assignVals := tailRes.Expr
	if len(assignVals) == 0 {
		assignVals = []string{"nil"}
	}
	inner.AddLine(strings.Join(names, ", ") + " = " + strings.Join(assignVals, ", "))
	parent.AddLine("end")

	return Result{
		Expr:       names,
		SingleEval: true,
		Scoped:     true,
	}, nil
}
