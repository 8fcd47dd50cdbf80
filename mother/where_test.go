package mother

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const editions = `{"editions":[{"lang":"fr","year":1926},{"lang":"de","year":1928},{"lang":"de","year":1953}],"title":"T"}`

func TestSetWhere(t *testing.T) {
	cases := []struct {
		name      string
		predicate string
		path      string
		v         any
		want      string
	}{
		{
			name:      "field variable",
			predicate: `lang == "de"`,
			path:      "year",
			v:         1929,
			want:      `{"editions":[{"lang":"fr","year":1926},{"lang":"de","year":1929},{"lang":"de","year":1953}],"title":"T"}`,
		},
		{
			name:      "it and index",
			predicate: `it.lang == "de" && index > 1`,
			path:      "reprint.of",
			v:         1928,
			want:      `{"editions":[{"lang":"fr","year":1926},{"lang":"de","year":1928},{"lang":"de","year":1953,"reprint":{"of":1928}}],"title":"T"}`,
		},
		{
			name:      "whole element",
			predicate: `year < 1927`,
			path:      "",
			v:         map[string]any{"lang": "en"},
			want:      `{"editions":[{"lang":"en"},{"lang":"de","year":1928},{"lang":"de","year":1953}],"title":"T"}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := fromJSON(t, editions)
			if err := m.SetWhere("editions", c.predicate, c.path, c.v); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, wire(t, m)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetWhereScalars(t *testing.T) {
	m := fromJSON(t, `{"tags":["a","b","c"]}`)
	if err := m.SetWhere("tags", `it == "b"`, "", "B"); err != nil {
		t.Fatal(err)
	}
	if got := wire(t, m); got != `{"tags":["a","B","c"]}` {
		t.Errorf("got %s", got)
	}
}

func TestRemoveWhere(t *testing.T) {
	cases := []struct {
		predicate string
		n         int
		want      string
	}{
		{`lang == "de"`, 2, `{"editions":[{"lang":"fr","year":1926}],"title":"T"}`},
		{`index == 0 || year == 1953`, 2, `{"editions":[{"lang":"de","year":1928}],"title":"T"}`},
		{`lang == "en"`, 0, editions},
		{`true`, 3, `{"editions":[],"title":"T"}`},
	}
	for _, c := range cases {
		t.Run(c.predicate, func(t *testing.T) {
			m := fromJSON(t, editions)
			n, err := m.RemoveWhere("editions", c.predicate)
			if err != nil {
				t.Fatal(err)
			}
			if n != c.n {
				t.Errorf("removed %d, want %d", n, c.n)
			}
			if diff := cmp.Diff(c.want, wire(t, m)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestWhereErrors(t *testing.T) {
	cases := []struct {
		name      string
		arrayPath string
		predicate string
		want      error
	}{
		{"no match", "editions", `lang == "en"`, ErrPathNotFound},
		{"missing array", "printings", `true`, ErrPathNotFound},
		{"not an array", "title", `true`, ErrTypeMismatch},
		{"bad array path", "editions[", `true`, ErrPathSyntax},
		{"syntax", "editions", `lang ==`, ErrPredicate},
		{"not bool", "editions", `1 + 1`, ErrPredicate},
		{"runtime", "editions", `year > "x"`, ErrPredicate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := fromJSON(t, editions)
			err := m.SetWhere(c.arrayPath, c.predicate, "year", 1)
			if !errors.Is(err, c.want) {
				t.Errorf("SetWhere: got %v want %v", err, c.want)
			}
			if c.want == ErrPathNotFound && c.arrayPath == "editions" {
				return
			}
			if _, err := m.RemoveWhere(c.arrayPath, c.predicate); !errors.Is(err, c.want) {
				t.Errorf("RemoveWhere: got %v want %v", err, c.want)
			}
			if got := wire(t, m); got != editions {
				t.Errorf("document changed to %s", got)
			}
		})
	}
}
