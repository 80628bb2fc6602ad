package compiler

import "fmt"

// Result is the compile-time metadata threaded through every recursive
// call: not just the emitted fragments, but enough about their shape that
// a caller can decide whether to inline them, bind them to a temporary,
// or treat them as a statement.
type Result struct {
	// Expr holds the emitted target-language expression fragments. A
	// single-value expression has exactly one; a call or `values` form
	// may have any number, including zero.
	Expr []string
	// SideEffects is true if evaluating Expr may observably affect state.
	SideEffects bool
	// SingleEval is true if each fragment in Expr evaluates its
	// subexpressions exactly once, so it is safe to duplicate/reuse.
	SingleEval bool
	// ValidStatement is true if the fragments are legal as bare
	// stand-alone statements in the target language.
	ValidStatement bool
	// Scoped is true if emitting these fragments already introduced
	// target-language local bindings into the parent chunk, so a caller
	// must not re-emit them.
	Scoped bool
	// UnknownExprCount is true if the arity of Expr is not statically
	// known (e.g. the tail of a function call).
	UnknownExprCount bool
}

func literalResult(frag string) Result {
	return Result{Expr: []string{frag}, SingleEval: true, ValidStatement: false}
}

// tossRest collapses res to exactly one expression fragment, per the
// toss-rest policy: missing fragments become the literal nil; multiple
// fragments are reduced by binding the first to a fresh local (preserving
// evaluation order) and emitting the rest as side-effect-only statements.
func tossRest(scope *Scope, parent *Chunk, res Result) Result {
	switch len(res.Expr) {
	case 0:
		return literalResult("nil")
	case 1:
		return res
	default:
		name := GenSym(scope)
		parent.AddLine(fmt.Sprintf("local %s = %s", name, res.Expr[0]))
		for _, frag := range res.Expr[1:] {
			emitAsStatement(parent, frag, res.ValidStatement)
		}
		return Result{Expr: []string{name}, SingleEval: true, SideEffects: res.SideEffects}
	}
}

// emitAsStatement appends frag to parent as a top-level statement,
// wrapping it in a `do local _ = ... end` guard when frag is not already
// legal as a bare statement (e.g. a parenthesized arithmetic expression).
func emitAsStatement(parent *Chunk, frag string, validStatement bool) {
	if validStatement {
		parent.AddLine(frag)
	} else {
		parent.AddLine(fmt.Sprintf("do local _ = %s end", frag))
	}
}
