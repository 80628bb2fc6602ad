package rpcservice

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/parser"
)

// parseForStruct parses source into a single List value wrapping every
// top-level form, so ParseToStruct can hand the whole program back as one
// Struct regardless of how many top-level forms it contains.
func parseForStruct(source string) (*ast.Value, int, error) {
	list, n, err := parser.ParseAll(source)
	if err != nil {
		return nil, 0, err
	}
	return list, n, nil
}

// astToStruct re-expresses an AST value as a generic protobuf Struct, the
// way a JSON encoding would, since there is no fixed message per AST
// shape: the string, symbol, list and map variants become single-field
// wrapper structs tagged by kind, and nil, bool and number map directly
// onto the matching Struct value kinds, so a client that only understands
// google.protobuf.Struct can still walk the tree.
func astToStruct(v *ast.Value) (*structpb.Value, error) {
	switch v.Kind() {
	case ast.KindNil:
		return structpb.NewNullValue(), nil
	case ast.KindBool:
		return structpb.NewBoolValue(v.Bool()), nil
	case ast.KindNumber:
		return structpb.NewNumberValue(v.Num()), nil
	case ast.KindString:
		return wrap("string", structpb.NewStringValue(v.Str()))
	case ast.KindSymbol:
		return wrap("symbol", structpb.NewStringValue(v.Symbol()))
	case ast.KindList:
		elems := make([]*structpb.Value, 0, v.Len())
		for _, e := range v.List() {
			ev, err := astToStruct(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return wrap("list", structpb.NewListValue(&structpb.ListValue{Values: elems}))
	case ast.KindMap:
		entries := make([]*structpb.Value, 0, len(v.Entries()))
		for _, e := range v.Entries() {
			keyVal, err := astToStruct(e.Key)
			if err != nil {
				return nil, err
			}
			valVal, err := astToStruct(e.Val)
			if err != nil {
				return nil, err
			}
			pair := structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{keyVal, valVal}})
			entries = append(entries, pair)
		}
		return wrap("map", structpb.NewListValue(&structpb.ListValue{Values: entries}))
	default:
		return nil, fmt.Errorf("rpcservice: cannot encode %s as a Struct", v.Kind())
	}
}

func wrap(tag string, val *structpb.Value) (*structpb.Value, error) {
	s, err := structpb.NewStruct(map[string]interface{}{})
	if err != nil {
		return nil, err
	}
	s.Fields[tag] = val
	return structpb.NewStructValue(s), nil
}
