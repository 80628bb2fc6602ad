// Package serializer implements astToString: rendering an AST value back
// into S-language source text that the parser can re-read. It is the
// inverse of internal/parser for the 7-bit-safe scalar/List/Symbol/Map
// subset described by the round-trip contract; the textual-pretty-printer
// contract beyond that (comment preservation, layout) is out of scope.
package serializer

import (
	"strconv"
	"strings"

	"github.com/funvibe/funxy/internal/ast"
)

// ToString renders v as re-parseable S-language source text.
func ToString(v *ast.Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v *ast.Value) {
	switch v.Kind() {
	case ast.KindNil:
		b.WriteString("nil")
	case ast.KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ast.KindNumber:
		b.WriteString(ast.FormatNumber(v.Num()))
	case ast.KindSymbol:
		b.WriteString(v.Symbol())
	case ast.KindString:
		writeString(b, v.Str())
	case ast.KindList:
		b.WriteByte('(')
		for i, e := range v.List() {
			if i > 0 {
				b.WriteByte(' ')
			}
			write(b, e)
		}
		b.WriteByte(')')
	case ast.KindMap:
		b.WriteByte('{')
		first := true
		for _, entry := range v.Entries() {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			write(b, entry.Key)
			b.WriteByte(' ')
			write(b, entry.Val)
		}
		b.WriteByte('}')
	}
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				b.WriteString(`\` + strconv.Itoa(int(r)))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
