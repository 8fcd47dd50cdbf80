package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/mother/format"
	"github.com/signadot/mother/mother"
	"github.com/signadot/mother/resource"

	"github.com/scott-cotton/cli"
)

func motherMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// load reads the document in file, or stdin for "-", into a Mother.
func load(cfg *MainConfig, cc *cli.Context, file string) (*mother.Mother, format.Format, error) {
	in := cfg.inFormat(file)
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, in, fmt.Errorf("error reading stdin: %w", err)
		}
		m, err := mother.Parse(d, mother.WithFormat(in))
		return m, in, err
	}
	loader := resource.Dir(filepath.Dir(file))
	m, err := mother.Of(loader, filepath.Base(file), mother.WithFormat(in))
	return m, in, err
}

// fileArg returns the single optional file argument.
func fileArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
}
