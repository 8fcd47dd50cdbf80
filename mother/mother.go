package mother

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/mother/debug"
	"github.com/signadot/mother/encode"
	"github.com/signadot/mother/format"
	"github.com/signadot/mother/ir"
	"github.com/signadot/mother/ir/kpath"
	"github.com/signadot/mother/libdiff"
	"github.com/signadot/mother/parse"
	"github.com/signadot/mother/resource"
)

type Mother struct {
	cfg  *config
	base *ir.Node
	doc  *ir.Node
	errs []error
}

// Load makes a Mother from a copy of doc, which must be an object.
func Load(doc *ir.Node, opts ...Option) (*Mother, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrInvalidDocument)
	}
	if doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: root is %s, want object", ErrInvalidDocument, doc.Type)
	}
	base := doc.Clone()
	return &Mother{
		cfg:  newConfig(opts),
		base: base,
		doc:  base.Clone(),
	}, nil
}

// Parse parses d in the configured format and loads the result.
func Parse(d []byte, opts ...Option) (*Mother, error) {
	cfg := newConfig(opts)
	doc, err := parse.Parse(d, parse.ParseFormat(cfg.format))
	if err != nil {
		return nil, err
	}
	return Load(doc, opts...)
}

// Of loads the named resource. The format follows the name's suffix unless
// opts set one.
func Of(loader resource.Loader, name string, opts ...Option) (*Mother, error) {
	d, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithFormat(format.FromSuffix(name))}, opts...)
	m, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", name, err)
	}
	return m, nil
}

// Set sets the value at path to v, creating missing containers. On error the
// document is left unchanged.
func (m *Mother) Set(path string, v any) error {
	kp, err := kpath.Parse(path)
	if err != nil {
		return err
	}
	return m.setKPath(kp, v)
}

func (m *Mother) setKPath(kp kpath.KPath, v any) error {
	node, err := parse.FromAny(v)
	if err != nil {
		return fmt.Errorf("setting %q: %w", kp.String(), err)
	}
	if err := m.doc.SetKPath(kp, node); err != nil {
		return err
	}
	if debug.Mutate() {
		debug.Logf("set %s to %v\n", kp, node)
	}
	return nil
}

// Remove removes the value at path. A missing target is not an error, but
// everything above it must exist.
func (m *Mother) Remove(path string) error {
	kp, err := kpath.Parse(path)
	if err != nil {
		return err
	}
	if err := m.doc.RemoveKPath(kp); err != nil {
		return err
	}
	if debug.Mutate() {
		debug.Logf("removed %s\n", kp)
	}
	return nil
}

// Get returns a copy of the value at path.
func (m *Mother) Get(path string) (*ir.Node, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return m.doc.GetKPath(kp)
}

// WithProperty is Set for chaining. Errors are kept for Err and Build.
func (m *Mother) WithProperty(path string, v any) *Mother {
	if err := m.Set(path, v); err != nil {
		m.errs = append(m.errs, err)
	}
	return m
}

// WithRemovedProperty is Remove for chaining. Errors are kept for Err and
// Build.
func (m *Mother) WithRemovedProperty(path string) *Mother {
	if err := m.Remove(path); err != nil {
		m.errs = append(m.errs, err)
	}
	return m
}

// Err returns the errors of all failed chained calls joined, or nil.
func (m *Mother) Err() error {
	return errors.Join(m.errs...)
}

// Serialize renders the current document, pretty printed JSON unless
// configured otherwise. opts are applied after the configured ones.
func (m *Mother) Serialize(opts ...encode.EncodeOption) (string, error) {
	all := slices.Concat(
		[]encode.EncodeOption{encode.EncodeFormat(m.cfg.format)},
		m.cfg.encOpts,
		opts)
	return encode.String(m.doc, all...)
}

// Build is Serialize, failing instead if any chained call failed.
func (m *Mother) Build() (string, error) {
	if err := m.Err(); err != nil {
		return "", err
	}
	return m.Serialize()
}

// Node returns a copy of the current document.
func (m *Mother) Node() *ir.Node {
	return m.doc.Clone()
}

// Changed reports whether the current document differs from the base,
// ignoring object key order.
func (m *Mother) Changed() bool {
	return !ir.Equal(m.base, m.doc)
}

// Diff renders a line diff from the base document to the current one.
func (m *Mother) Diff(colors bool) (string, error) {
	opt := encode.EncodeFormat(m.cfg.format)
	from, err := encode.String(m.base, opt)
	if err != nil {
		return "", err
	}
	to, err := encode.String(m.doc, opt)
	if err != nil {
		return "", err
	}
	return libdiff.Format(libdiff.DiffLines(from, to), colors), nil
}

// replace installs doc as the current document if it is an object.
func (m *Mother) replace(doc *ir.Node) error {
	if doc.Type != ir.ObjectType {
		return fmt.Errorf("%w: root is %s, want object", ErrInvalidDocument, doc.Type)
	}
	m.doc = doc
	return nil
}
