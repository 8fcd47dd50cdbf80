package ir

import (
	"testing"
)

func book() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "id", Val: FromInt(1)},
		{Key: "title", Val: FromString("The Great Gatsby")},
		{Key: "author", Val: FromKeyVals([]KeyVal{
			{Key: "name", Val: FromString("F. Scott Fitzgerald")},
		})},
		{Key: "genres", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "type", Val: FromString("novel")}}),
			FromKeyVals([]KeyVal{{Key: "type", Val: FromString("fiction")}}),
		})},
	})
}

func TestCloneIsDeep(t *testing.T) {
	orig := book()
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs from original")
	}
	c.Get("author").Put("name", FromString("Ernest Hemingway"))
	c.Get("genres").Values[0] = Null()
	*c.Get("id").Int64 = 2
	if got := orig.Get("author").Get("name").String; got != "F. Scott Fitzgerald" {
		t.Errorf("original author changed to %q", got)
	}
	if orig.Get("genres").Values[0].Type != ObjectType {
		t.Errorf("original genres changed")
	}
	if *orig.Get("id").Int64 != 1 {
		t.Errorf("original id changed")
	}
}

func TestPutKeepsPosition(t *testing.T) {
	y := book()
	y.Put("title", FromString("Tender Is the Night"))
	y.Put("language", FromString("English"))
	want := []string{"id", "title", "author", "genres", "language"}
	if len(y.Fields) != len(want) {
		t.Fatalf("fields %v", y.Fields)
	}
	for i := range want {
		if y.Fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, y.Fields[i], want[i])
		}
	}
	if y.Get("title").String != "Tender Is the Night" {
		t.Errorf("title not overwritten")
	}
}

func TestDelete(t *testing.T) {
	y := book()
	if !y.Delete("title") {
		t.Errorf("expected title to be deleted")
	}
	if y.Delete("title") {
		t.Errorf("expected second delete to report absence")
	}
	if y.Get("title") != nil || len(y.Fields) != len(y.Values) || len(y.Fields) != 3 {
		t.Errorf("bad object after delete: %v", y.Fields)
	}
}

func TestFromKeyValsDuplicate(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	if len(y.Fields) != 2 || y.Fields[0] != "a" || *y.Get("a").Int64 != 3 {
		t.Errorf("unexpected object %v", y.Fields)
	}
}

func TestFromMapSorted(t *testing.T) {
	y := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	if y.Fields[0] != "a" || y.Fields[1] != "b" || y.Fields[2] != "c" {
		t.Errorf("unexpected order %v", y.Fields)
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		lit     string
		isInt   bool
		isFloat bool
	}{
		{"1925", true, false},
		{"-3", true, false},
		{"1.5", false, true},
		{"1e14", false, true},
		{"123456789012345678901234567890", false, true},
	}
	for _, tt := range tests {
		n := FromNumber(tt.lit)
		if n.Number != tt.lit {
			t.Errorf("%s: literal %q", tt.lit, n.Number)
		}
		if (n.Int64 != nil) != tt.isInt || (n.Float64 != nil) != tt.isFloat {
			t.Errorf("%s: int %v float %v", tt.lit, n.Int64 != nil, n.Float64 != nil)
		}
	}
}

func TestCompare(t *testing.T) {
	a := FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}, {Key: "y", Val: FromNumber("2.0")}})
	b := FromKeyVals([]KeyVal{{Key: "y", Val: FromFloat(2)}, {Key: "x", Val: FromNumber("1")}})
	if !Equal(a, b) {
		t.Errorf("expected objects to be equal regardless of key order")
	}
	if Compare(FromInt(1), FromInt(2)) != -1 {
		t.Errorf("1 < 2")
	}
	if Compare(Null(), FromBool(false)) != -1 {
		t.Errorf("null < bool")
	}
	if Equal(FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), Null()})) {
		t.Errorf("arrays of different length are equal")
	}
	if Equal(FromString("a"), FromString("b")) {
		t.Errorf("strings equal")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round tripped to %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Comment")); err == nil {
		t.Errorf("expected error")
	}
}
