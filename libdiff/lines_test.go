package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffLines(t *testing.T) {
	from := "{\n  \"id\": 1,\n  \"title\": \"a\"\n}\n"
	to := "{\n  \"id\": 1,\n  \"title\": \"b\",\n  \"x\": true\n}\n"
	got := DiffLines(from, to)
	want := []Line{
		{Equal, "{"},
		{Equal, `  "id": 1,`},
		{Delete, `  "title": "a"`},
		{Insert, `  "title": "b",`},
		{Insert, `  "x": true`},
		{Equal, "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("expected change")
	}
}

func TestDiffLinesSame(t *testing.T) {
	got := DiffLines("a\nb", "a\nb")
	want := []Line{{Equal, "a"}, {Equal, "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if Changed(got) {
		t.Errorf("expected no change")
	}
	if got := DiffLines("", ""); len(got) != 0 {
		t.Errorf("empty diff %v", got)
	}
}

func TestFormat(t *testing.T) {
	lines := []Line{{Equal, "{"}, {Delete, "a"}, {Insert, "b"}, {Equal, "}"}}
	got := Format(lines, false)
	want := "  {\n- a\n+ b\n  }\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	colored := Format(lines, true)
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("no escape codes in %q", colored)
	}
	if !strings.Contains(colored, "  {\n") {
		t.Errorf("equal line coloured: %q", colored)
	}
}
