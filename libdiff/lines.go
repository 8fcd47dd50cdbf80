package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "<unknown>"
	}
}

// Prefix is the marker Format puts in front of a line.
func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	default:
		return "  "
	}
}

type Line struct {
	Op   Op
	Text string
}

// DiffLines diffs from and to line by line. Text carries no trailing newline.
func DiffLines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := []Line{}
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i := range parts {
		parts[i] = strings.TrimSuffix(parts[i], "\n")
	}
	return parts
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Format renders lines one per row, each with its prefix. Inserted lines are
// green and deleted lines red when colors is set.
func Format(lines []Line, colors bool) string {
	var (
		ins = color.New(color.FgGreen)
		del = color.New(color.FgRed)
	)
	if colors {
		ins.EnableColor()
		del.EnableColor()
	}
	buf := &strings.Builder{}
	for i := range lines {
		line := &lines[i]
		s := line.Op.Prefix() + line.Text
		if colors {
			switch line.Op {
			case Insert:
				s = ins.Sprint(s)
			case Delete:
				s = del.Sprint(s)
			}
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	return buf.String()
}
