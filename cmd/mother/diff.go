package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	m, _, err := load(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	if err := cfg.mutate(m); err != nil {
		return err
	}
	if !m.Changed() {
		return nil
	}
	if !cfg.Quiet {
		d, err := m.Diff(cfg.colors(cc.Out))
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, d); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
