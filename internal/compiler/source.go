package compiler

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/parser"
)

// parseTopLevel parses a complete source string into its top-level forms.
// It is the seam between the parser and compiler packages: Compile/Eval
// accept source text directly, so they need to reach the parser, but
// nothing in internal/parser needs to know about the compiler.
func parseTopLevel(source string) ([]*ast.Value, int, error) {
	list, n, err := parser.ParseAll(source)
	if err != nil {
		return nil, 0, err
	}
	return list.List(), n, nil
}
