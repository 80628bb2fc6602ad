package compiler

import (
	"fmt"

	"github.com/funvibe/funxy/internal/ast"
)

// specialAccess implements `.`: (. table key) reads an indexed field.
// Both operands are reduced to a single fragment; the table and key
// expressions are each only evaluated once, by construction of the
// emitted index expression.
func specialAccess(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	if len(form) != 3 {
		return Result{}, &FormError{Form: ".", Message: "expects exactly a table and a key"}
	}
	tableRes, err := c.CompileExpr(scope, parent, form[1])
	if err != nil {
		return Result{}, err
	}
	tableRes = tossRest(scope, parent, tableRes)

	keyRes, err := c.CompileExpr(scope, parent, form[2])
	if err != nil {
		return Result{}, err
	}
	keyRes = tossRest(scope, parent, keyRes)

	frag := fmt.Sprintf("%s[%s]", tableRes.Expr[0], keyRes.Expr[0])
	return Result{
		Expr:        []string{frag},
		SideEffects: true,
		SingleEval:  tableRes.SingleEval && keyRes.SingleEval,
	}, nil
}
