package mother

import (
	"github.com/signadot/mother/encode"
	"github.com/signadot/mother/format"
)

type config struct {
	format  format.Format
	encOpts []encode.EncodeOption
}

type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFormat sets the format documents are parsed from and serialized to.
// JSON is the default.
func WithFormat(f format.Format) Option {
	return func(c *config) { c.format = f }
}

// WithEncodeOptions sets default options for Serialize and Build.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *config) { c.encOpts = append(c.encOpts, opts...) }
}
