package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/mother/debug"
	"github.com/signadot/mother/format"
	"github.com/signadot/mother/ir"

	"github.com/goccy/go-yaml"
)

// Parse parses a single document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	var (
		node *ir.Node
		err  error
	)
	switch pOpts.format {
	case format.JSONFormat:
		node, err = parseJSON(d)
	case format.YAMLFormat:
		node, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrParse, format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s document %v\n", pOpts.format, node)
	}
	return node, nil
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: unexpected %v after document at offset %d", ErrParse, tok, dec.InputOffset())
	}
	return node, nil
}

func decodeValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %v at offset %d", ErrParse, v, dec.InputOffset())
	case string:
		return ir.FromString(v), nil
	case json.Number:
		return ir.FromNumber(string(v)), nil
	case bool:
		return ir.FromBool(v), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func decodeObject(dec *json.Decoder) (*ir.Node, error) {
	res := ir.Object()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected object key, got %v", ErrParse, tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Put(key, val)
	}
	if err := closing(dec, '}'); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeArray(dec *json.Decoder) (*ir.Node, error) {
	res := ir.Array()
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
	if err := closing(dec, ']'); err != nil {
		return nil, err
	}
	return res, nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if tok != want {
		return fmt.Errorf("%w: expected %v, got %v", ErrParse, want, tok)
	}
	return nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}
