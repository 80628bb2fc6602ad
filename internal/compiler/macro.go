package compiler

import "github.com/funvibe/funxy/internal/ast"

// expandMacros implements the macro engine (§4.H): expansion is iterative
// at the call site, not recursive into sub-forms. While v's head resolves
// to a macro bound in scope, the macro is invoked on the tail arguments
// and the process repeats on the result. Sub-expressions are left
// unexpanded — they are only expanded lazily, when CompileExpr eventually
// visits them.
func (c *Compiler) expandMacros(scope *Scope, v *ast.Value) (*ast.Value, error) {
	for {
		name, ok := ast.HeadSymbol(v)
		if !ok {
			return v, nil
		}
		macro, ok := lookupMacro(scope, name)
		if !ok {
			return v, nil
		}
		args := v.List()[1:]
		expanded, err := macro(args)
		if err != nil {
			return nil, &MacroError{Macro: name, Message: err.Error()}
		}
		if expanded == nil || !expanded.IsList() {
			return nil, &MacroError{Macro: name, Message: "macro expansion did not produce a list"}
		}
		if _, ok := ast.HeadSymbol(expanded); !ok {
			return nil, &MacroError{Macro: name, Message: "macro expansion's head is not a symbol"}
		}
		v = expanded
	}
}
