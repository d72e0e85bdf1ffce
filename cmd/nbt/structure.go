package main

import (
	"fmt"
	"io"

	"github.com/nbtkit/go-nbt/structure"

	"github.com/scott-cotton/cli"
)

func pack(cfg *StructureConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Structure.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: pack takes at most one file", cli.ErrUsage)
	}
	c, err := cfg.readCompound(cc, inputs(args)[0])
	if err != nil {
		return err
	}
	s := structure.ToSNBT(c, cfg.encOpts(cc.Out)...)
	_, err = io.WriteString(cc.Out, s+"\n")
	return err
}

func unpack(cfg *StructureConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Structure.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: unpack takes at most one file", cli.ErrUsage)
	}
	file := inputs(args)[0]
	d, err := readText(cc, file)
	if err != nil {
		return err
	}
	c, err := structure.FromSNBT(d, structure.WithLogger(theLog))
	if err != nil {
		return fmt.Errorf("error unpacking %s: %w", file, err)
	}
	return cfg.writeTag(cc.Out, "", c)
}
