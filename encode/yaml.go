package encode

import (
	"fmt"
	"io"

	"github.com/signadot/mother/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// toYAML converts node to values go-yaml encodes in order.
func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: field, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		if node.Number == "" {
			return nil, fmt.Errorf("%w: number without value", ErrEncoding)
		}
		return numberLiteral(node.Number), nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

// numberLiteral is a number too large for int64 or float64, written as its
// source text.
type numberLiteral string

func (n numberLiteral) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}
