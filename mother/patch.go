package mother

import (
	"fmt"

	"github.com/signadot/mother/debug"
	"github.com/signadot/mother/encode"
	"github.com/signadot/mother/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the document. Object keys come
// out of the patch in sorted order. On error the document is unchanged.
func (m *Mother) Patch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return m.patchWith("json patch", func(doc []byte) ([]byte, error) {
		return ops.Apply(doc)
	})
}

// MergePatch applies an RFC 7386 merge patch to the document. Object keys
// come out of the patch in sorted order. On error the document is unchanged.
func (m *Mother) MergePatch(patch []byte) error {
	return m.patchWith("merge patch", func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func (m *Mother) patchWith(what string, apply func([]byte) ([]byte, error)) error {
	d, err := encode.String(m.doc, encode.EncodeWire(true))
	if err != nil {
		return err
	}
	out, err := apply([]byte(d))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	doc, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if err := m.replace(doc); err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("%s result %v\n", what, doc)
	}
	return nil
}
