package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a document tree. Which payload fields are meaningful
// depends on Type:
//   - ObjectType: Fields[i] is the key of Values[i]
//   - ArrayType: Values
//   - StringType: String
//   - BoolType: Bool
//   - NumberType: Int64 or Float64, with Number holding the literal text
//     when known
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	return res
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber makes a number node from its literal text. The text is kept
// verbatim for encoding; Int64 or Float64 is filled in when it fits.
func FromNumber(lit string) *Node {
	res := &Node{
		Type:   NumberType,
		Number: lit,
	}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals makes an object with the given entries in order. A repeated
// key keeps its first position and its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

// FromMap makes an object with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	res := &Node{
		Type:   ObjectType,
		Fields: keys,
		Values: make([]*Node, len(keys)),
	}
	for i, key := range keys {
		res.Values[i] = yMap[key]
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Object returns an empty object.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
}

// Array returns an empty array.
func Array() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

func (y *Node) fieldIndex(field string) int {
	return slices.Index(y.Fields, field)
}

// Get returns the value of field in object y, or nil.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.fieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Put sets field to v in object y. An existing field keeps its position, a
// new one is appended.
func (y *Node) Put(field string, v *Node) {
	if i := y.fieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Delete removes field from object y, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	i := y.fieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Len is the number of entries of an object or array, and 0 otherwise.
func (y *Node) Len() int {
	return len(y.Values)
}

// padTo grows array y with nulls until index i is addressable.
func (y *Node) padTo(i int) {
	for len(y.Values) <= i {
		y.Values = append(y.Values, Null())
	}
}

// removeAt deletes element i of array y, shifting later elements left.
func (y *Node) removeAt(i int) {
	y.Values = slices.Delete(y.Values, i, i+1)
}
