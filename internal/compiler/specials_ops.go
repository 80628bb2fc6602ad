package compiler

import (
	"fmt"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
)

// arithmeticOp describes one variadic arithmetic-family operator: op is
// its target-language infix spelling, unaryPrefix is the left operand
// used when exactly one argument is given (and the zero-argument
// constant, when no prefix is declared the zero-arity constant is "0").
type arithmeticOp struct {
	op          string
	unaryPrefix string
	hasPrefix   bool
}

var arithmeticOps = map[string]arithmeticOp{
	"+":   {op: "+"},
	"-":   {op: "-", unaryPrefix: "0", hasPrefix: true},
	"*":   {op: "*"},
	"/":   {op: "/"},
	"%":   {op: "%"},
	"^":   {op: "^"},
	"..":  {op: ".."},
	"or":  {op: "or"},
	"and": {op: "and"},
}

// makeArithmeticSpecial binds one arithmetic-family operator's Special
// closure. Zero arguments yield a constant; one argument yields either the
// unary-prefixed expression or the bare argument; two or more are folded
// left-to-right as `(a op b op c ...)`. Every operand is toss-rested, since
// unlike a function call there is no last-argument multi-value expansion
// in an infix expression.
func makeArithmeticSpecial(name string) Special {
	spec := arithmeticOps[name]
	return func(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
		args := form[1:]
		if len(args) == 0 {
			constant := "0"
			if spec.hasPrefix {
				constant = spec.unaryPrefix
			}
			return literalResult(constant), nil
		}

		frags := make([]string, len(args))
		for i, a := range args {
			res, err := c.CompileExpr(scope, parent, a)
			if err != nil {
				return Result{}, err
			}
			res = tossRest(scope, parent, res)
			frags[i] = res.Expr[0]
		}

		if len(args) == 1 {
			if spec.hasPrefix {
				return Result{
					Expr:        []string{fmt.Sprintf("(%s %s %s)", spec.unaryPrefix, spec.op, frags[0])},
					SideEffects: true,
				}, nil
			}
			return Result{Expr: []string{fmt.Sprintf("(%s)", frags[0])}, SideEffects: true}, nil
		}

		joined := strings.Join(frags, fmt.Sprintf(" %s ", spec.op))
		return Result{Expr: []string{"(" + joined + ")"}, SideEffects: true}, nil
	}
}

var comparatorOps = map[string]string{
	">":  ">",
	"<":  "<",
	">=": ">=",
	"<=": "<=",
	"=":  "==",
	"~=": "~=",
}

// makeComparatorSpecial binds one strictly-binary comparator operator.
func makeComparatorSpecial(name string) Special {
	op := comparatorOps[name]
	return func(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
		if len(form) != 3 {
			return Result{}, &FormError{Form: name, Message: "expects exactly two arguments"}
		}
		lhs, err := c.CompileExpr(scope, parent, form[1])
		if err != nil {
			return Result{}, err
		}
		lhs = tossRest(scope, parent, lhs)
		rhs, err := c.CompileExpr(scope, parent, form[2])
		if err != nil {
			return Result{}, err
		}
		rhs = tossRest(scope, parent, rhs)
		frag := fmt.Sprintf("((%s) %s (%s))", lhs.Expr[0], op, rhs.Expr[0])
		return Result{Expr: []string{frag}, SideEffects: true}, nil
	}
}

var unaryOps = map[string]string{
	"not": "not",
	"#":   "#",
}

// makeUnarySpecial binds one strictly-unary prefix operator.
func makeUnarySpecial(name string) Special {
	op := unaryOps[name]
	return func(c *Compiler, scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
		if len(form) != 2 {
			return Result{}, &FormError{Form: name, Message: "expects exactly one argument"}
		}
		res, err := c.CompileExpr(scope, parent, form[1])
		if err != nil {
			return Result{}, err
		}
		res = tossRest(scope, parent, res)
		sep := " "
		if op == "#" {
			sep = ""
		}
		frag := fmt.Sprintf("(%s%s%s)", op, sep, res.Expr[0])
		return Result{Expr: []string{frag}, SideEffects: true}, nil
	}
}
