package main

import (
	"fmt"

	"github.com/nbtkit/go-nbt/libdiff"
	"github.com/nbtkit/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.load(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.load(cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	changes := libdiff.Diff(a, b)
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, c); err != nil {
			return fmt.Errorf("unable to write diff: %w", err)
		}
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *DiffConfig) load(cc *cli.Context, file string) (tag.Tag, error) {
	if cfg.SNBT {
		return readSNBT(cc, file)
	}
	_, t, err := cfg.readTag(cc, file)
	return t, err
}
