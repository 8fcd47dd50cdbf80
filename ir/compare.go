package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Objects compare by their sorted keys and the corresponding values, so key
// order does not affect equality. Numbers compare by value where both sides
// have one.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Int64 == nil && a.Float64 == nil, b.Int64 == nil && b.Float64 == nil:
		return strings.Compare(a.Number, b.Number)
	}
	return cmp.Compare(asFloat(a), asFloat(b))
}

func asFloat(n *Node) float64 {
	if n.Int64 != nil {
		return float64(*n.Int64)
	}
	return *n.Float64
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	keysA := slices.Sorted(slices.Values(a.Fields))
	keysB := slices.Sorted(slices.Values(b.Fields))
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(keysA[i]), b.Get(keysB[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
