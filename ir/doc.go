// Package ir provides the in-memory tree used for documents.
//
// # Node Structure
//
// A Node is a tagged union: the Type field says which payload fields carry
// the value.
//
//   - NullType: null value
//   - BoolType: Bool
//   - NumberType: Int64 or Float64, Number keeps the literal text if parsed
//   - StringType: String
//   - ArrayType: Values, an ordered list of nodes
//   - ObjectType: Fields[i] is the key for Values[i], keys are unique and
//     keep insertion order
//
// Nodes do not point to their parents. A tree is owned by whoever holds its
// root and is changed through that root, for example with SetKPath and
// RemoveKPath. Use Clone to hand out an independent copy.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "id", Val: ir.FromInt(1)},
//	    {Key: "title", Val: ir.FromString("The Great Gatsby")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()})
//
// # Paths
//
// Paths are parsed by package kpath:
//
//	kp, _ := kpath.Parse("genres[0].type")
//	err := root.SetKPath(kp, ir.FromString("novel"))
//	node, err := root.GetKPath(kp)
//	err = root.RemoveKPath(kp)
//
// Setting creates missing objects and arrays and pads arrays with nulls;
// removing and getting never create anything.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes for each goroutine.
package ir
