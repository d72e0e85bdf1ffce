package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nbtkit/go-nbt/debug"
	"github.com/nbtkit/go-nbt/parse"
	"github.com/nbtkit/go-nbt/tag"
	"github.com/nbtkit/go-nbt/wire"

	"github.com/scott-cotton/cli"
)

func openInput(cc *cli.Context, file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, nil
}

// readTag decodes the binary root in file, "-" being stdin. Network
// roots have no name.
func (cfg *MainConfig) readTag(cc *cli.Context, file string) (string, tag.Tag, error) {
	r, err := openInput(cc, file)
	if err != nil {
		return "", nil, err
	}
	defer r.Close()
	acc := cfg.accounter()
	opts, err := cfg.readOpts(acc)
	if err != nil {
		return "", nil, err
	}
	var (
		name string
		t    tag.Tag
	)
	if cfg.Network {
		t, err = wire.ReadUnnamed(r, opts...)
	} else {
		name, t, err = wire.ReadNamed(r, opts...)
	}
	if err != nil {
		return "", nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	if debug.Decode() {
		theLog.Debug("decoded", "file", file, "name", name, "type", t.ID().Name(), "bits", acc.Usage())
	}
	return name, t, nil
}

func (cfg *MainConfig) readCompound(cc *cli.Context, file string) (*tag.Compound, error) {
	_, t, err := cfg.readTag(cc, file)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*tag.Compound)
	if !ok {
		return nil, fmt.Errorf("%s: %w, got %s", file, wire.ErrNotCompound, t.ID().Name())
	}
	return c, nil
}

func readText(cc *cli.Context, file string) ([]byte, error) {
	r, err := openInput(cc, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}

func readSNBT(cc *cli.Context, file string) (tag.Tag, error) {
	d, err := readText(cc, file)
	if err != nil {
		return nil, err
	}
	t, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return t, nil
}

func (cfg *MainConfig) writeTag(w io.Writer, name string, t tag.Tag) error {
	opts, err := cfg.writeOpts()
	if err != nil {
		return err
	}
	if cfg.Network {
		return wire.WriteUnnamed(w, t, opts...)
	}
	return wire.Write(w, name, t, opts...)
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
