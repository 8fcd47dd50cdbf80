package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	m, in, err := load(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	if err := cfg.mutate(m); err != nil {
		return err
	}
	s, err := m.Serialize(cfg.encOpts(cc.Out, in)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, s)
	return err
}
