package compiler

import "github.com/funvibe/funxy/internal/ast"

// specialValues implements `values`: every argument but the last is
// reduced to one fragment (toss-rest); the last is compiled in full-arity
// mode so a trailing call's unknown-length tail passes through unchanged.
func specialValues(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	args := form[1:]
	var frags []string
	unknown := false
	for i, a := range args {
		res, err := c.CompileExpr(scope, parent, a)
		if err != nil {
			return Result{}, err
		}
		if i == len(args)-1 {
			frags = append(frags, res.Expr...)
			unknown = res.UnknownExprCount
		} else {
			res = tossRest(scope, parent, res)
			frags = append(frags, res.Expr[0])
		}
	}
	return Result{
		Expr:             frags,
		SideEffects:      true,
		UnknownExprCount: unknown,
	}, nil
}
