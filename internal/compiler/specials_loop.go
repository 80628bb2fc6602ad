package compiler

import (
	"fmt"

	"github.com/funvibe/funxy/internal/ast"
)

// specialWhile implements *while: (*while cond body...), a pre-test loop.
func specialWhile(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) < 2 {
		return Result{}, &FormError{Form: "*while", Message: "missing condition"}
	}
	condRes, err := c.CompileExpr(scope, parent, form[1])
	if err != nil {
		return Result{}, err
	}
	condRes = tossRest(scope, parent, condRes)
	parent.AddLine(fmt.Sprintf("while %s do", condRes.Expr[0]))
	childScope := NewScope(scope)
	body := parent.NewChild()
	for _, f := range form[2:] {
		if err := c.CompileStatement(childScope, body, f); err != nil {
			return Result{}, err
		}
	}
	parent.AddLine("end")
	return Result{}, nil
}

// specialDowhile implements *dowhile: (*dowhile cond body...), a
// post-test loop. The condition is written last in the target source
// (repeat/until), but shares the body's scope, matching the target
// language's own until-can-see-body-locals rule.
func specialDowhile(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) < 2 {
		return Result{}, &FormError{Form: "*dowhile", Message: "missing condition"}
	}
	childScope := NewScope(scope)
	parent.AddLine("repeat")
	body := parent.NewChild()
	for _, f := range form[2:] {
		if err := c.CompileStatement(childScope, body, f); err != nil {
			return Result{}, err
		}
	}
	condRes, err := c.CompileExpr(childScope, body, form[1])
	if err != nil {
		return Result{}, err
	}
	condRes = tossRest(childScope, body, condRes)
	parent.AddLine(fmt.Sprintf("until %s", condRes.Expr[0]))
	return Result{}, nil
}

// specialFor implements *for: (*for i [start end step?] body...), a
// numeric range loop. The range expressions are compiled in the enclosing
// scope, before the loop variable exists; the loop variable and body are
// compiled in a fresh child scope.
func specialFor(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) < 3 || !form[1].IsSymbol() || !form[2].IsList() {
		return Result{}, &FormError{Form: "*for", Message: "expects a loop variable and a [start end step?] vector"}
	}
	bindings := form[2].List()
	if len(bindings) != 2 && len(bindings) != 3 {
		return Result{}, &FormError{Form: "*for", Message: "range vector must have 2 or 3 elements"}
	}

	startRes, err := c.CompileExpr(scope, parent, bindings[0])
	if err != nil {
		return Result{}, err
	}
	startRes = tossRest(scope, parent, startRes)
	endRes, err := c.CompileExpr(scope, parent, bindings[1])
	if err != nil {
		return Result{}, err
	}
	endRes = tossRest(scope, parent, endRes)

	stepFrag := ""
	if len(bindings) == 3 {
		stepRes, err := c.CompileExpr(scope, parent, bindings[2])
		if err != nil {
			return Result{}, err
		}
		stepRes = tossRest(scope, parent, stepRes)
		stepFrag = ", " + stepRes.Expr[0]
	}

	childScope := NewScope(scope)
	mangledVar, err := Mangle(childScope, form[1].Symbol())
	if err != nil {
		return Result{}, err
	}

	parent.AddLine(fmt.Sprintf("for %s = %s, %s%s do", mangledVar, startRes.Expr[0], endRes.Expr[0], stepFrag))
	body := parent.NewChild()
	for _, f := range form[3:] {
		if err := c.CompileStatement(childScope, body, f); err != nil {
			return Result{}, err
		}
	}
	parent.AddLine("end")
	return Result{}, nil
}

// specialBreak implements *break: an unconditional loop exit.
func specialBreak(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) != 1 {
		return Result{}, &FormError{Form: "*break", Message: "takes no arguments"}
	}
	parent.AddLine("break")
	return Result{}, nil
}
