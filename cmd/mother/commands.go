package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y (default input format)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mother").
		WithSynopsis("mother [opts] command [opts]").
		WithDescription("mother builds test fixtures by mutating a base document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return motherMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg))
}

// mutationOpts adds the options of commands which mutate a document.
func mutationOpts(cfg *MutateConfig) []*cli.Opt {
	return []*cli.Opt{
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"set"},
			Description: "set path to value, parsed as JSON or else taken as a string",
			Type:        cli.NamedFuncOpt(cfg.setOpt, "(path=value)"),
		},
		&cli.Opt{
			Name:        "r",
			Aliases:     []string{"rm"},
			Description: "remove path",
			Type:        cli.NamedFuncOpt(cfg.removeOpt, "(path)"),
		},
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"patch"},
			Description: "apply an RFC 6902 JSON patch file",
			Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "m",
			Aliases:     []string{"merge"},
			Description: "apply an RFC 7386 JSON merge patch file",
			Type:        cli.NamedFuncOpt(cfg.mergeOpt, "(filepath)"),
		},
	}
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MutateConfig: &MutateConfig{MainConfig: mainCfg}}
	opts := mutationOpts(cfg.MutateConfig)
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [-s path=value] [-r path] [-p patch] [-m merge] [file]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build loads a base document and applies mutations in the order given.

The document is read from file, or stdin if file is "-" or missing.

-s path=value sets the value at path, creating objects and arrays as
needed. Paths are dotted field names with bracketed indices, such as

  author.name
  genres[2].type

-r path removes the value at path.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [file]").
		WithDescription("get the value at path of a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MutateConfig: &MutateConfig{MainConfig: mainCfg}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, mutationOpts(cfg.MutateConfig)...)
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-s path=value] [-r path] [-p patch] [-m merge] [file]").
		WithDescription("show the line diff mutations make to a document, exiting 1 if there is one").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
