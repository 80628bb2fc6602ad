package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Loader is the seam the reflective *compiler bridge calls into: loading
// and running the host's own scripting language is out of this
// repository's scope (spec.md §1), so it is modeled as an injected
// capability rather than an embedded VM. Runnable is whatever the loader
// produced for a chunk of target source.
type Loader interface {
	Load(source string) (Runnable, error)
}

// Runnable is a loaded chunk ready to be invoked with compile-time
// arguments by the *compiler bridge.
type Runnable interface {
	Invoke(args ...interface{}) (interface{}, error)
}

// Options configures a Compiler.
type Options struct {
	// Tab is the indent string the assembler uses for nested chunks.
	// Defaults to two spaces.
	Tab string
	// Scope, if non-nil, is used as the compile unit's root scope
	// instead of a freshly built one — this is how a REPL-style caller
	// keeps mangling/macro state alive across multiple Compile calls.
	Scope *Scope
	// Loader backs the *compiler bridge. A nil Loader makes *compiler
	// fail with BridgeError on first use.
	Loader Loader
	// Logger receives compile-unit lifecycle events. Defaults to
	// logrus's standard logger.
	Logger *log.Logger
}

// Compiler threads the options used throughout a single compile unit.
// It holds no AST or chunk state of its own — those are always passed
// explicitly — so a Compiler is safe to reuse (but not to share
// concurrently, since the scope chain it is handed is not locked).
type Compiler struct {
	Tab    string
	Loader Loader
	Logger *log.Logger
}

// New constructs a Compiler from Options, filling in defaults.
func New(opts Options) *Compiler {
	tab := opts.Tab
	if tab == "" {
		tab = "  "
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Compiler{Tab: tab, Loader: opts.Loader, Logger: logger}
}

// CompileExpr is the expression compiler (§4.F): it macro-expands v at
// the head position, then either emits it as a literal, dispatches it to
// a special form, or compiles it as a function application.
func (c *Compiler) CompileExpr(scope *Scope, parent *Chunk, v *ast.Value) (Result, error) {
	if v.IsList() && v.Len() > 0 {
		expanded, err := c.expandMacros(scope, v)
		if err != nil {
			return Result{}, err
		}
		v = expanded
	}

	if !v.IsList() {
		return c.compileLiteral(scope, parent, v)
	}

	if v.Len() == 0 {
		return literalResult("{}"), nil
	}

	form := v.List()
	if name, ok := ast.HeadSymbol(v); ok {
		if special, ok := lookupSpecial(scope, name); ok {
			res, err := special(c, scope, parent, form)
			if err != nil {
				return Result{}, err
			}
			if res.Expr == nil {
				res.Expr = []string{}
			}
			return res, nil
		}
	}

	return c.compileApplication(scope, parent, form)
}

// compileApplication treats form as a function call: the callee and
// every argument but the last are reduced to exactly one fragment each
// (toss-rest), and the last argument is compiled in full-arity mode so a
// multi-value tail flows into the call, matching the target language's
// own last-argument expansion rule.
func (c *Compiler) compileApplication(scope *Scope, parent *Chunk, form []*ast.Value) (Result, error) {
	calleeRes, err := c.CompileExpr(scope, parent, form[0])
	if err != nil {
		return Result{}, err
	}
	calleeRes = tossRest(scope, parent, calleeRes)
	callee := calleeRes.Expr[0]

	args := form[1:]
	var frags []string
	for i, a := range args {
		res, err := c.CompileExpr(scope, parent, a)
		if err != nil {
			return Result{}, err
		}
		if i == len(args)-1 {
			frags = append(frags, res.Expr...)
		} else {
			res = tossRest(scope, parent, res)
			frags = append(frags, res.Expr[0])
		}
	}

	frag := fmt.Sprintf("%s(%s)", callee, strings.Join(frags, ", "))
	return Result{
		Expr:             []string{frag},
		SideEffects:      true,
		SingleEval:       true,
		ValidStatement:   true,
		UnknownExprCount: true,
	}, nil
}

// compileLiteral emits a non-List AST value: a mangled identifier for a
// Symbol, a quoted string, a round-trippable number, a bool/nil keyword,
// or a table constructor for a Map.
func (c *Compiler) compileLiteral(scope *Scope, parent *Chunk, v *ast.Value) (Result, error) {
	switch v.Kind() {
	case ast.KindSymbol:
		name, err := Mangle(scope, v.Symbol())
		if err != nil {
			return Result{}, err
		}
		return literalResult(name), nil
	case ast.KindNumber:
		return literalResult(ast.FormatNumber(v.Num())), nil
	case ast.KindString:
		return literalResult(quoteString(v.Str())), nil
	case ast.KindBool:
		if v.Bool() {
			return literalResult("true"), nil
		}
		return literalResult("false"), nil
	case ast.KindNil:
		return literalResult("nil"), nil
	case ast.KindMap:
		frag, err := c.compileTableLiteral(scope, parent, v)
		if err != nil {
			return Result{}, err
		}
		return literalResult(frag), nil
	}
	return Result{}, &FormError{Form: v.Kind().String(), Message: "cannot compile as a literal"}
}

// compileTableLiteral renders a Map as a target table constructor:
// entries whose key is the next consecutive integer index are written
// positionally; every other entry is written as `[k] = v`. Any hoisting
// toss-rest needs to do for a non-scalar entry lands in parent, the same
// chunk the enclosing form is emitting into.
func (c *Compiler) compileTableLiteral(scope *Scope, parent *Chunk, v *ast.Value) (string, error) {
	var positional []string
	var keyed []string
	next := 1.0
	for _, e := range v.Entries() {
		valFrag, err := c.compileLiteralOrExpr(scope, parent, e.Val)
		if err != nil {
			return "", err
		}
		if e.Key.IsNumber() && e.Key.Num() == next {
			positional = append(positional, valFrag)
			next++
			continue
		}
		keyFrag, err := c.compileLiteralOrExpr(scope, parent, e.Key)
		if err != nil {
			return "", err
		}
		keyed = append(keyed, fmt.Sprintf("[%s] = %s", keyFrag, valFrag))
	}
	all := append(positional, keyed...)
	return "{" + strings.Join(all, ", ") + "}", nil
}

// compileLiteralOrExpr compiles a Map entry's key or value: Lists inside
// a literal are still ordinary compiled expressions (so e.g. a macro call
// nested in a table literal still expands), everything else is a literal.
func (c *Compiler) compileLiteralOrExpr(scope *Scope, parent *Chunk, v *ast.Value) (string, error) {
	if v.IsList() {
		res, err := c.CompileExpr(scope, parent, v)
		if err != nil {
			return "", err
		}
		res = tossRest(scope, parent, res)
		return res.Expr[0], nil
	}
	res, err := c.compileLiteral(scope, parent, v)
	if err != nil {
		return "", err
	}
	return res.Expr[0], nil
}

// quoteString renders s as a target-language string literal; bytes at or
// above 128 are escaped as backslash-decimal so the emitted source stays
// 7-bit clean regardless of the host's source encoding.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			b.WriteString(`\"`)
		case ch == '\\':
			b.WriteString(`\\`)
		case ch == '\n':
			b.WriteString(`\n`)
		case ch == '\r':
			b.WriteString(`\r`)
		case ch >= 128:
			b.WriteByte('\\')
			b.WriteString(strconv.Itoa(int(ch)))
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// CompileStatement compiles v for its side effects only, emitting any
// resulting fragments into parent as statements (wrapping non-statement
// fragments in a `do local _ = ... end` guard). This is used for every
// body form except a block or function's value-producing tail.
func (c *Compiler) CompileStatement(scope *Scope, parent *Chunk, v *ast.Value) error {
	res, err := c.CompileExpr(scope, parent, v)
	if err != nil {
		return err
	}
	if res.Scoped {
		return nil
	}
	for _, frag := range res.Expr {
		if !res.SideEffects {
			continue
		}
		emitAsStatement(parent, frag, res.ValidStatement)
	}
	return nil
}

// Compile compiles every top-level form of source independently,
// concatenating their emitted statements; the last form is compiled with
// a trailing `return` so its result flows out of the produced chunk.
func Compile(source string, opts Options) (string, error) {
	forms, _, err := parseTopLevel(source)
	if err != nil {
		return "", err
	}
	return compileForms(forms, opts)
}

// CompileAST compiles a single already-parsed form the same way Compile
// compiles the last top-level form of a source string: with a trailing
// return.
func CompileAST(v *ast.Value, opts Options) (string, error) {
	return compileForms([]*ast.Value{v}, opts)
}

func compileForms(forms []*ast.Value, opts Options) (string, error) {
	c := New(opts)
	scope := opts.Scope
	if scope == nil {
		scope = NewScope(nil)
	}
	root := NewChunk()

	logger := c.Logger.WithField("compile_id", uuid.NewString())
	logger.WithField("forms", len(forms)).Debug("compile: starting compile unit")

	for i, form := range forms {
		isLast := i == len(forms)-1
		if !isLast {
			if err := c.CompileStatement(scope, root, form); err != nil {
				return "", err
			}
			continue
		}
		res, err := c.CompileExpr(scope, root, form)
		if err != nil {
			return "", err
		}
		if len(res.Expr) == 0 {
			root.AddLine("return nil")
		} else {
			root.AddLine("return " + strings.Join(res.Expr, ", "))
		}
	}

	logger.Debug("compile: compile unit finished")
	return Render(root, c.Tab), nil
}
