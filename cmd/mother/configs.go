package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/mother/encode"
	"github.com/signadot/mother/format"
	"github.com/signadot/mother/mother"
	"github.com/signadot/mother/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of the document in file.
func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return in
}

// colors reports whether output to w is coloured: as asked with -color, or
// else when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, in format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(in)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type opKind int

const (
	setOp opKind = iota
	removeOp
	patchOp
	mergeOp
)

// mutation is one mutating option, applied in command line order.
type mutation struct {
	kind  opKind
	path  string
	value any
}

func (mu *mutation) apply(m *mother.Mother) error {
	switch mu.kind {
	case setOp:
		return m.Set(mu.path, mu.value)
	case removeOp:
		return m.Remove(mu.path)
	case patchOp, mergeOp:
		d, err := os.ReadFile(mu.path)
		if err != nil {
			return err
		}
		if mu.kind == patchOp {
			return m.Patch(d)
		}
		return m.MergePatch(d)
	}
	return fmt.Errorf("unknown mutation kind %d", mu.kind)
}

type MutateConfig struct {
	*MainConfig

	Mutations []mutation
}

// parseSet parses a path=value argument. A value which is not JSON is
// taken as a string.
func parseSet(a string) (mutation, error) {
	path, val, ok := strings.Cut(a, "=")
	if !ok || path == "" {
		return mutation{}, fmt.Errorf("%w: argument %q expected path=value", cli.ErrUsage, a)
	}
	var v any = val
	if node, err := parse.Parse([]byte(val)); err == nil {
		v = node
	}
	return mutation{kind: setOp, path: path, value: v}, nil
}

func (cfg *MutateConfig) setOpt(_ *cli.Context, a string) (any, error) {
	mu, err := parseSet(a)
	if err != nil {
		return nil, err
	}
	cfg.Mutations = append(cfg.Mutations, mu)
	return nil, nil
}

func (cfg *MutateConfig) removeOpt(_ *cli.Context, a string) (any, error) {
	cfg.Mutations = append(cfg.Mutations, mutation{kind: removeOp, path: a})
	return nil, nil
}

func (cfg *MutateConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	cfg.Mutations = append(cfg.Mutations, mutation{kind: patchOp, path: a})
	return nil, nil
}

func (cfg *MutateConfig) mergeOpt(_ *cli.Context, a string) (any, error) {
	cfg.Mutations = append(cfg.Mutations, mutation{kind: mergeOp, path: a})
	return nil, nil
}

func (cfg *MutateConfig) mutate(m *mother.Mother) error {
	for i := range cfg.Mutations {
		mu := &cfg.Mutations[i]
		if err := mu.apply(m); err != nil {
			return fmt.Errorf("error applying %s %q: %w", mu.kind, mu.path, err)
		}
	}
	return nil
}

func (k opKind) String() string {
	switch k {
	case setOp:
		return "-s"
	case removeOp:
		return "-r"
	case patchOp:
		return "-p"
	case mergeOp:
		return "-m"
	}
	return "<unknown>"
}

type BuildConfig struct {
	*MutateConfig

	Build *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MutateConfig

	Quiet bool `cli:"name=q aliases=quiet desc='only set the exit code'"`

	Diff *cli.Command
}
