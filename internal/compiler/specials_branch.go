package compiler

import (
	"fmt"

	"github.com/funvibe/funxy/internal/ast"
)

// specialBranch implements *branch: a flat sequence starting with a
// condition and its body, where a literal *branch symbol appearing in the
// body opens the next clause — always followed by either `else` (no
// condition) or `elseif` (another condition expression). Bodies are
// compiled purely for their statements; *branch has no value.
func specialBranch(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	args := form[1:]
	if len(args) == 0 {
		return Result{}, &FormError{Form: "*branch", Message: "missing condition"}
	}

	i := 0
	clause := 0
	for i < len(args) {
		var cond *ast.Value
		isElse := false

		if clause == 0 {
			cond = args[i]
			i++
		} else {
			marker := args[i]
			if !marker.IsSymbol() || marker.Symbol() != "*branch" {
				return Result{}, &FormError{Form: "*branch", Message: "expected a *branch marker between clauses"}
			}
			i++
			if i >= len(args) || !args[i].IsSymbol() {
				return Result{}, &FormError{Form: "*branch", Message: "expected else or elseif after *branch"}
			}
			kind := args[i].Symbol()
			i++
			switch kind {
			case "else":
				isElse = true
			case "elseif":
				if i >= len(args) {
					return Result{}, &FormError{Form: "*branch", Message: "elseif missing condition"}
				}
				cond = args[i]
				i++
			default:
				return Result{}, &FormError{Form: "*branch", Message: "expected else or elseif, got " + kind}
			}
		}

		bodyStart := i
		for i < len(args) && !(args[i].IsSymbol() && args[i].Symbol() == "*branch") {
			i++
		}
		body := args[bodyStart:i]

		if isElse {
			parent.AddLine("else")
		} else {
			condRes, err := c.CompileExpr(scope, parent, cond)
			if err != nil {
				return Result{}, err
			}
			condRes = tossRest(scope, parent, condRes)
			keyword := "if"
			if clause > 0 {
				keyword = "elseif"
			}
			parent.AddLine(fmt.Sprintf("%s %s then", keyword, condRes.Expr[0]))
		}

		bodyChunk := parent.NewChild()
		clauseScope := NewScope(scope)
		for _, f := range body {
			if err := c.CompileStatement(clauseScope, bodyChunk, f); err != nil {
				return Result{}, err
			}
		}
		clause++
	}

	parent.AddLine("end")
	return Result{}, nil
}
