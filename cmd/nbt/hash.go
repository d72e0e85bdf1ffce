package main

import (
	"fmt"

	"github.com/nbtkit/go-nbt/tag"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		_, t, err := cfg.readTag(cc, file)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s  %s\n", tag.Hash(t), file); err != nil {
			return err
		}
	}
	return nil
}
