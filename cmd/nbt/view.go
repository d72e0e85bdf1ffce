package main

import (
	"fmt"
	"io"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/token"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 && !cfg.Compact {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	name, t, err := cfg.readTag(cc, file)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	if cfg.Compact {
		opts = append(opts, encode.EncodeCompact(true))
	}
	if cfg.Structure {
		opts = append(opts, encode.EncodeRules(encode.StructureRules()))
	}
	if cfg.Names && !cfg.Network {
		if _, err := fmt.Fprintf(w, "%s: ", token.QuoteKey(name)); err != nil {
			return err
		}
	}
	if err := encode.Encode(t, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
