package kpath

import (
	"strconv"
)

type EntryKind int

const (
	FieldEntry EntryKind = iota
	ArrayEntry
)

func (k EntryKind) String() string {
	switch k {
	case FieldEntry:
		return "field"
	case ArrayEntry:
		return "index"
	default:
		return "<unknown entry kind>"
	}
}

// Segment is one step of a path. Field is set for FieldEntry segments and
// Index for ArrayEntry segments.
type Segment struct {
	Kind  EntryKind
	Field string
	Index int
}

func Field(name string) Segment {
	return Segment{Kind: FieldEntry, Field: name}
}

func Index(i int) Segment {
	return Segment{Kind: ArrayEntry, Index: i}
}

func (s Segment) IsField() bool { return s.Kind == FieldEntry }
func (s Segment) IsIndex() bool { return s.Kind == ArrayEntry }

// String returns the segment as it would appear alone in a path:
//   - Field("a") → "a"
//   - Index(3) → "[3]"
func (s Segment) String() string {
	if s.Kind == ArrayEntry {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Field
}
