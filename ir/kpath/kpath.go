package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("path syntax error")

// KPath is a parsed path, ordered from the root towards the target. The last
// segment is the target, every preceding segment is a navigation step.
type KPath []Segment

// Parse parses a path string.
//
// Examples:
//   - "a.b.c" → Field(a), Field(b), Field(c)
//   - "genres[2]" → Field(genres), Index(2)
//   - "genres[10].type" → Field(genres), Index(10), Field(type)
//   - "m[0][1]" → Field(m), Index(0), Index(1)
//
// Every error wraps ErrSyntax.
func Parse(path string) (KPath, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	res := make(KPath, 0, strings.Count(path, ".")+strings.Count(path, "[")+1)
	i := 0
	for {
		j := i
		for j < len(path) && !isSep(path[j]) {
			j++
		}
		if j == i {
			return nil, syntaxErr(path, i, "expected field name")
		}
		res = append(res, Field(path[i:j]))
		i = j
		for i < len(path) && path[i] == '[' {
			end := strings.IndexByte(path[i+1:], ']')
			if end == -1 {
				return nil, syntaxErr(path, i, "unclosed '['")
			}
			index, err := parseIndex(path[i+1 : i+1+end])
			if err != nil {
				return nil, syntaxErr(path, i+1, err.Error())
			}
			res = append(res, Index(index))
			i += end + 2
		}
		if i == len(path) {
			return res, nil
		}
		if path[i] != '.' {
			return nil, syntaxErr(path, i, fmt.Sprintf("unexpected %q", path[i]))
		}
		i++
	}
}

// MustParse is like Parse but panics on error. It is meant for paths known
// at compile time.
func MustParse(path string) KPath {
	kp, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return kp
}

func isSep(c byte) bool {
	return c == '.' || c == '[' || c == ']'
}

func parseIndex(is string) (int, error) {
	if is == "" {
		return 0, fmt.Errorf("empty array index")
	}
	for i := 0; i < len(is); i++ {
		if is[i] < '0' || is[i] > '9' {
			return 0, fmt.Errorf("invalid array index %q", is)
		}
	}
	n, err := strconv.Atoi(is)
	if err != nil {
		return 0, fmt.Errorf("array index %q out of range", is)
	}
	return n, nil
}

func syntaxErr(path string, off int, msg string) error {
	return fmt.Errorf("%w: %s in %q at offset %d", ErrSyntax, msg, path, off)
}

// String returns the canonical path string, such that Parse(kp.String())
// yields kp.
func (kp KPath) String() string {
	var b strings.Builder
	for i, seg := range kp {
		if seg.IsField() && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Last returns the target segment. It panics on an empty path.
func (kp KPath) Last() Segment {
	return kp[len(kp)-1]
}

// Parent returns the navigation segments, i.e. every segment but the last.
func (kp KPath) Parent() KPath {
	if len(kp) == 0 {
		return nil
	}
	return kp[:len(kp)-1]
}

// Append returns a new path with segs added after the segments of kp.
func (kp KPath) Append(segs ...Segment) KPath {
	res := make(KPath, 0, len(kp)+len(segs))
	res = append(res, kp...)
	return append(res, segs...)
}
