package parse

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/signadot/mother/ir"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

type translation struct {
	Language string `json:"language"`
	Year     int    `json:"year,omitempty"`
}

func TestFromAny(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, `null`},
		{"bool", true, `true`},
		{"string", "x", `"x"`},
		{"int", 7, `7`},
		{"int8", int8(-3), `-3`},
		{"uint64 big", uint64(math.MaxUint64), `18446744073709551615`},
		{"float", 2.5, `2.5`},
		{"json number", json.Number("1.0"), `1.0`},
		{"map sorted", map[string]any{"b": 1, "a": []any{true, nil}}, `{"a":[true,null],"b":1}`},
		{"node map", map[string]*ir.Node{"z": ir.FromInt(1), "y": nil}, `{"y":null,"z":1}`},
		{"map slice", yaml.MapSlice{{Key: "b", Value: 1}, {Key: 2, Value: "two"}}, `{"b":1,"2":"two"}`},
		{"key vals", []ir.KeyVal{{Key: "q", Val: ir.FromBool(false)}}, `{"q":false}`},
		{"strings", []string{"a", "b"}, `["a","b"]`},
		{"nodes", []*ir.Node{ir.Null(), ir.FromString("s")}, `[null,"s"]`},
		{"struct", translation{Language: "French"}, `{"language":"French"}`},
		{"struct ptr", &translation{Language: "German", Year: 1953}, `{"language":"German","year":1953}`},
		{"int slice", []int{1, 2}, `[1,2]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := FromAny(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, wire(t, n)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromAnyJSONNumbers(t *testing.T) {
	for _, lit := range []string{"0", "-0", "12", "-3.25", "1e400", "6.02E+23", "18446744073709551616"} {
		n, err := FromAny(json.Number(lit))
		if err != nil {
			t.Errorf("%s: %v", lit, err)
			continue
		}
		if got := wire(t, n); got != lit {
			t.Errorf("got %s want %s", got, lit)
		}
	}
}

func TestFromAnyClonesNodes(t *testing.T) {
	orig := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	n, err := FromAny(orig)
	if err != nil {
		t.Fatal(err)
	}
	n.Put("a", ir.FromInt(2))
	if *orig.Get("a").Int64 != 1 {
		t.Errorf("FromAny shared the node")
	}
}

func TestFromAnyErrors(t *testing.T) {
	for name, in := range map[string]any{
		"nan":     math.NaN(),
		"inf":     float32(math.Inf(1)),
		"chan":    make(chan int),
		"func":    func() {},
		"nested":  map[string]any{"a": []any{math.Inf(-1)}},
		"bad num": json.Number("abc"),
		"NaN":     json.Number("NaN"),
		"Inf":     json.Number("Inf"),
		"hex":     json.Number("0x1p4"),
		"grouped": json.Number("1_0"),
		"plus":    json.Number("+1"),
		"empty":   json.Number(""),
		"listed":  []any{json.Number("-Inf")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromAny(in)
			if !errors.Is(err, ir.ErrTypeMismatch) {
				t.Errorf("got %v, want ErrTypeMismatch", err)
			}
		})
	}
}
