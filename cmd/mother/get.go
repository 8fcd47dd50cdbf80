package main

import (
	"fmt"

	"github.com/signadot/mother/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	file, err := fileArg(args[1:])
	if err != nil {
		return err
	}
	m, in, err := load(cfg.MainConfig, cc, file)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	node, err := m.Get(path)
	if err != nil {
		return err
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out, in)...)
}
