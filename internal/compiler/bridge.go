package compiler

import (
	"fmt"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/google/uuid"
)

// specialCompiler implements *compiler (§4.J): the one reflective escape
// hatch. It compiles its argument as if it were a top-level form, prepends
// a prelude line destructuring the varargs the host loader will invoke it
// with, loads the result through c.Loader, and invokes it with the live
// scope, that scope's macro table, the parent chunk, the original
// unexpanded AST, and a literal true. The invoked code is free to mutate
// the macro table — that mutation is the entire point of the form — but
// specialCompiler itself never inspects what comes back.
func specialCompiler(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) != 2 {
		return Result{}, &FormError{Form: "*compiler", Message: "expects exactly one AST argument"}
	}
	if c.Loader == nil {
		return Result{}, &BridgeError{Err: fmt.Errorf("no loader configured for this compile unit")}
	}

	original := form[1]
	root := NewChunk()
	res, err := c.CompileExpr(scope, root, original)
	if err != nil {
		return Result{}, err
	}
	if len(res.Expr) == 0 {
		root.AddLine("return nil")
	} else {
		root.AddLine("return " + strings.Join(res.Expr, ", "))
	}

	source := "local _S, _M, _C, _A, __COMPILER_ENV__ = ...\n" + Render(root, c.Tab)

	c.Logger.WithField("bridge_id", uuid.NewString()).Info("*compiler: loading and invoking generated source")

	runnable, err := c.Loader.Load(source)
	if err != nil {
		return Result{}, &BridgeError{Err: err}
	}
	if _, err := runnable.Invoke(scope, scope.Macros, parent, original, true); err != nil {
		return Result{}, &BridgeError{Err: err}
	}

	return Result{}, nil
}
