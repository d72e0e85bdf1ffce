package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/wire"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Network     bool   `cli:"name=network aliases=n desc='read and write unnamed roots'"`
	Compression string `cli:"name=z desc='compression codec none gzip zlib lz4 or zstd which is detected on read when unset'"`
	Quota       int    `cli:"name=quota desc='decode budget in bits with 0 for no limit'"`
	Color       bool   `cli:"name=color desc='print with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) compression() (wire.Compression, error) {
	c, err := wire.ParseCompression(cfg.Compression)
	if err != nil {
		return wire.None, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return c, nil
}

func (cfg *MainConfig) accounter() *wire.Accounter {
	if cfg.Quota == 0 {
		return wire.Unlimited()
	}
	return wire.NewAccounter(int64(cfg.Quota))
}

func (cfg *MainConfig) readOpts(acc *wire.Accounter) ([]wire.Option, error) {
	opts := []wire.Option{wire.WithAccounter(acc)}
	if cfg.Compression == "" {
		return append(opts, wire.WithDetectCompression()), nil
	}
	c, err := cfg.compression()
	if err != nil {
		return nil, err
	}
	return append(opts, wire.WithCompression(c)), nil
}

func (cfg *MainConfig) writeOpts() ([]wire.Option, error) {
	c, err := cfg.compression()
	if err != nil {
		return nil, err
	}
	return []wire.Option{wire.WithCompression(c)}, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Compact   bool `cli:"name=c desc='print on a single line'"`
	Structure bool `cli:"name=s desc='lay out structure templates'"`
	Names     bool `cli:"name=names desc='print the root name before each tree'"`

	View *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Name string `cli:"name=name desc='root name'"`

	Encode *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	SNBT    bool `cli:"name=s desc='inputs are snbt text'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type StructureConfig struct {
	*MainConfig

	Structure *cli.Command
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Jobs int `cli:"name=j desc='number of files decoded at once'"`

	Check *cli.Command
}
