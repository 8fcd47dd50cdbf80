package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/mother/format"
	"github.com/signadot/mother/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, es.format)
	}
}

// String encodes node and returns the result without the trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	}
	s, err := leafJSON(node)
	if err != nil {
		return err
	}
	return writeString(w, es.color(node.Type, ValueColor, s))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object with %d fields and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	if len(node.Values) == 0 {
		return writeString(w, es.color(ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		sep := ":"
		if !es.wire {
			sep = ": "
		}
		kv := es.color(ir.ObjectType, FieldColor, quote(field)) + es.color(ir.ObjectType, SepColor, sep)
		if err := writeString(w, kv); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, es.color(ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

func leafJSON(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.StringType:
		return quote(node.String), nil
	case ir.NumberType:
		return numberJSON(node)
	default:
		return "", fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func numberJSON(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: unsupported number %v", ErrEncoding, f)
		}
		d, err := json.Marshal(f)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return string(d), nil
	default:
		return "", fmt.Errorf("%w: number without value", ErrEncoding)
	}
}

// quote renders s as a JSON string without escaping HTML characters.
func quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
