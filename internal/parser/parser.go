// Package parser implements a token-free recursive descent parser: it
// drives internal/reader directly byte by byte rather than through a
// separate lexer pass, since the grammar has no keywords and only six
// delimiter bytes to recognize.
package parser

import (
	"strconv"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/reader"
)

const (
	lparen   = '('
	rparen   = ')'
	lbracket = '['
	rbracket = ']'
	lbrace   = '{'
	rbrace   = '}'
)

func isDelimiter(b byte) bool {
	switch b {
	case lparen, rparen, lbracket, rbracket, lbrace, rbrace:
		return true
	}
	return false
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return 9 <= b && b <= 13
}

// Dispatch is invoked once per completed top-level form, as soon as it is
// parsed, before the rest of the input has been read. This is what a
// streaming caller (feeding a Reader lazily) uses to act on forms as they
// arrive rather than waiting for EOF.
type Dispatch func(*ast.Value) error

type parser struct {
	r        *reader.Reader
	pos      int // next unread absolute index (1-based)
	dispatch Dispatch
}

// Parse reads every top-level form from r. If dispatch is non-nil, it is
// called for each form as soon as it is complete, and the returned AST
// List is empty (the caller consumed forms via dispatch instead). If
// dispatch is nil, the returned List collects every top-level form.
func Parse(r *reader.Reader, dispatch Dispatch) (*ast.Value, int, error) {
	p := &parser{r: r, pos: 1, dispatch: dispatch}
	var forms []*ast.Value
	for {
		if err := p.skipWhitespace(); err != nil {
			return nil, 0, err
		}
		if !p.more() {
			break
		}
		form, err := p.readAtom()
		if err != nil {
			return nil, 0, err
		}
		if dispatch != nil {
			if err := dispatch(form); err != nil {
				return nil, 0, err
			}
			p.r.Free(p.pos - 1)
		} else {
			forms = append(forms, form)
		}
	}
	return ast.NewList(forms...), len(forms), nil
}

// ParseAll is a convenience wrapper over Parse for a complete in-memory
// source string, with no streaming and no dispatch callback.
func ParseAll(source string) (*ast.Value, int, error) {
	return Parse(reader.NewString(source), nil)
}

// ParseAllReader parses every top-level form from an already-constructed
// reader without dispatching.
func ParseAllReader(r *reader.Reader) (*ast.Value, int, error) {
	return Parse(r, nil)
}

// more reports whether another byte is available at p.pos without
// treating end-of-input as an error.
func (p *parser) more() bool {
	return p.r.Available(p.pos)
}

func (p *parser) peek() (byte, bool) {
	b, err := p.r.Byte(p.pos)
	if err != nil {
		return 0, false
	}
	return b, true
}

func (p *parser) advance() byte {
	b, _ := p.r.Byte(p.pos)
	p.pos++
	return b
}

func (p *parser) skipWhitespace() error {
	for {
		b, ok := p.peek()
		if !ok {
			return nil
		}
		if !isWhitespace(b) {
			return nil
		}
		p.advance()
	}
}

// readAtom parses one atom: a list, vector, map, string, or word. Vectors
// are represented with the same List AST kind as lists — the grammar only
// needs the distinction to guide the reader, special forms recognize a
// parameter/binding vector by argument position, not by a separate tag.
func (p *parser) readAtom() (*ast.Value, error) {
	b, ok := p.peek()
	if !ok {
		return nil, newParseError(p.pos, "unexpected end of input")
	}
	switch b {
	case lparen:
		p.advance()
		elems, err := p.readSequence(rparen)
		if err != nil {
			return nil, err
		}
		return ast.NewList(elems...), nil
	case lbracket:
		p.advance()
		elems, err := p.readSequence(rbracket)
		if err != nil {
			return nil, err
		}
		return ast.NewList(elems...), nil
	case lbrace:
		p.advance()
		elems, err := p.readSequence(rbrace)
		if err != nil {
			return nil, err
		}
		return ast.NewMapFromFlat(elems), nil
	case rparen, rbracket, rbrace:
		return nil, newParseError(p.pos, "unexpected closing delimiter %q", b)
	case '"', '\'':
		return p.readString(b)
	default:
		return p.readWord()
	}
}

// readSequence reads atoms until it finds close, which must match the
// delimiter that was opened; mismatches and unterminated sequences are
// both fatal parse errors.
func (p *parser) readSequence(close byte) ([]*ast.Value, error) {
	var elems []*ast.Value
	for {
		if err := p.skipWhitespace(); err != nil {
			return nil, err
		}
		b, ok := p.peek()
		if !ok {
			return nil, newParseError(p.pos, "unexpected end of input: unterminated %q", close)
		}
		if b == close {
			p.advance()
			return elems, nil
		}
		if isCloseDelimiter(b) {
			return nil, newParseError(p.pos, "mismatched closing delimiter %q, expected %q", b, close)
		}
		elem, err := p.readAtom()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

func isCloseDelimiter(b byte) bool {
	return b == rparen || b == rbracket || b == rbrace
}

// readString decodes a quoted string literal. quote is the opening quote
// byte ('"' or '\''); the matching close is the same byte, unless it is
// preceded by an odd number of backslashes, in which case it is escaped
// text rather than the terminator.
func (p *parser) readString(quote byte) (*ast.Value, error) {
	start := p.pos
	p.advance() // opening quote
	var out strings.Builder
	for {
		b, ok := p.peek()
		if !ok {
			return nil, newParseError(start, "unterminated string")
		}
		if b == '\\' {
			p.advance()
			esc, ok := p.peek()
			if !ok {
				return nil, newParseError(start, "unterminated string")
			}
			p.advance()
			out.WriteByte(decodeEscape(esc))
			continue
		}
		if b == quote {
			p.advance()
			return ast.NewString(out.String()), nil
		}
		out.WriteByte(p.advance())
	}
}

func decodeEscape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return b
	}
}

// readWord reads a run of non-whitespace, non-delimiter bytes and
// classifies it as nil/true/false, a number, or (failing that) a Symbol.
func (p *parser) readWord() (*ast.Value, error) {
	var out strings.Builder
	for {
		b, ok := p.peek()
		if !ok || isWhitespace(b) || isDelimiter(b) {
			break
		}
		out.WriteByte(p.advance())
	}
	word := out.String()
	if word == "" {
		return nil, newParseError(p.pos, "empty word")
	}
	switch word {
	case "nil":
		return ast.Nil(), nil
	case "true":
		return ast.NewBool(true), nil
	case "false":
		return ast.NewBool(false), nil
	}
	if n, err := strconv.ParseFloat(word, 64); err == nil {
		return ast.NewNumber(n), nil
	}
	return ast.NewSymbol(word), nil
}
