package main

import (
	"runtime"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "nbt").
		WithSynopsis("nbt [opts] command [opts]").
		WithDescription("nbt is a tool for working with binary and text NBT.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CompactCommand(cfg),
			EncodeCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PackCommand(cfg),
			UnpackCommand(cfg),
			HashCommand(cfg),
			CheckCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("print binary nbt files as snbt").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CompactCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Compact: true}
	cmd := cli.NewCommand("compact").
		WithAliases("c").
		WithSynopsis("compact [files]").
		WithDescription("print binary nbt files as single line snbt").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "enc").
		WithOpts(opts...).
		WithSynopsis("encode [-name name] [file]").
		WithDescription("encode snbt text as binary nbt").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeSNBT(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path[:TYPE]> [files]").
		WithDescription(getDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

const getDescription = `get prints the value at a path of keys and list indices, such as
Level.Sections.0.Y.

With a type suffix, such as Level.xPos:INT, the path must name compound
keys only and the file is read as a stream which stops as soon as the
field is found.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s] a b").
		WithDescription("list the changes between two nbt trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StructureConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("pack").
		WithSynopsis("pack [file]").
		WithDescription("print a binary structure template as structure snbt").
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
	cfg.Structure = cmd
	return cmd
}

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StructureConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("unpack").
		WithSynopsis("unpack [file]").
		WithDescription("encode structure snbt as a binary structure template").
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
	cfg.Structure = cmd
	return cmd
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("hash").
		WithSynopsis("hash [files]").
		WithDescription("print the content digest of nbt trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
	cfg.Hash = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Jobs: runtime.GOMAXPROCS(0)}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithOpts(opts...).
		WithSynopsis("check [-j jobs] files").
		WithDescription("decode files concurrently and report the ones that fail").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
