package encode

import (
	"strconv"

	"github.com/signadot/mother/ir"
)

// ToAny converts node to plain Go values: map[string]any, []any, string,
// bool, nil, int for integers that fit and float64 for other numbers. A
// number literal that fits neither is returned as its text.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[field] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return int(*node.Int64)
		case node.Float64 != nil:
			return *node.Float64
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	}
	return nil
}
