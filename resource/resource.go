// Package resource loads fixture documents by logical name.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

var ErrNotFound = errors.New("resource not found")

// Loader returns the bytes of the named resource, or an error wrapping
// ErrNotFound if there is none.
type Loader interface {
	Load(name string) ([]byte, error)
}

type fsLoader struct {
	fsyss []fs.FS
}

// FS returns a Loader searching fsyss in order. Names are slash separated
// and may carry a leading slash, as with class path resources.
func FS(fsyss ...fs.FS) Loader {
	return &fsLoader{fsyss: fsyss}
}

// Dir returns a Loader searching the given directories in order.
func Dir(dirs ...string) Loader {
	fsyss := make([]fs.FS, len(dirs))
	for i, dir := range dirs {
		fsyss[i] = os.DirFS(dir)
	}
	return FS(fsyss...)
}

func (l *fsLoader) Load(name string) ([]byte, error) {
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("%w: invalid name %q", ErrNotFound, name)
	}
	for _, fsys := range l.fsyss {
		d, err := fs.ReadFile(fsys, clean)
		if err == nil {
			return d, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, fmt.Errorf("loading %q: %w", name, err)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
