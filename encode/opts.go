package encode

import "github.com/signadot/mother/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent sets the number of spaces per nesting level, 2 by default.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire selects the compact single line JSON form. It has no effect on
// YAML.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
