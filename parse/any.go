package parse

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/signadot/mother/ir"

	"github.com/goccy/go-yaml"
)

// FromAny converts a Go value to a node. Nodes are cloned. Maps with string
// keys become objects with sorted keys, yaml.MapSlice keeps its order, and
// anything else is converted through encoding/json.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case json.Number:
		if !validNumber(string(x)) {
			return nil, fmt.Errorf("%w: bad number %q", ir.ErrTypeMismatch, string(x))
		}
		return ir.FromNumber(string(x)), nil
	case map[string]any:
		res := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res[k] = n
		}
		return ir.FromMap(res), nil
	case map[string]*ir.Node:
		res := ir.Object()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Put(k, n)
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Put(mapKey(item.Key), n)
		}
		return res, nil
	case []ir.KeyVal:
		res := ir.Object()
		for _, kv := range x {
			n, err := FromAny(kv.Val)
			if err != nil {
				return nil, err
			}
			res.Put(kv.Key, n)
		}
		return res, nil
	case []any:
		res := ir.Array()
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, n)
		}
		return res, nil
	case []*ir.Node:
		res := ir.Array()
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, n)
		}
		return res, nil
	case []string:
		res := ir.Array()
		for _, elt := range x {
			res.Values = append(res.Values, ir.FromString(elt))
		}
		return res, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot convert %T: %w", ir.ErrTypeMismatch, v, err)
	}
	res, err := parseJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot convert %T: %w", ir.ErrTypeMismatch, v, err)
	}
	return res, nil
}

// validNumber reports whether lit is a JSON number.
func validNumber(lit string) bool {
	if lit == "" || (lit[0] != '-' && (lit[0] < '0' || lit[0] > '9')) {
		return false
	}
	return json.Valid([]byte(lit))
}

func fromUint(u uint64) *ir.Node {
	if u > math.MaxInt64 {
		return ir.FromNumber(strconv.FormatUint(u, 10))
	}
	return ir.FromInt(int64(u))
}

func fromFloat(f float64) (*ir.Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v is not a JSON number", ir.ErrTypeMismatch, f)
	}
	return ir.FromFloat(f), nil
}

func mapKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
