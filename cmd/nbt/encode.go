package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func encodeSNBT(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: encode takes at most one file", cli.ErrUsage)
	}
	file := inputs(args)[0]
	t, err := readSNBT(cc, file)
	if err != nil {
		return err
	}
	if err := cfg.writeTag(cc.Out, cfg.Name, t); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
