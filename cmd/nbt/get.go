package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nbtkit/go-nbt/encode"
	"github.com/nbtkit/go-nbt/stream"
	"github.com/nbtkit/go-nbt/tag"
	"github.com/nbtkit/go-nbt/wire"

	"github.com/scott-cotton/cli"
)

var errNotFound = errors.New("path not found")

type query struct {
	keys  []string
	typ   tag.Type
	typed bool
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	q, err := parseQuery(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range inputs(args[1:]) {
		t, err := cfg.query(cc, file, q)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, args[0], err)
		}
		if err := encode.Encode(t, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

// parseQuery splits a.b.0:TYPE into its keys and optional type. A
// suffix after the last colon that is not a type name belongs to the
// last key.
func parseQuery(s string) (*query, error) {
	q := &query{}
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		if t, ok := parseType(s[i+1:]); ok {
			q.typ, q.typed = t, true
			s = s[:i]
		}
	}
	if s == "" {
		return nil, fmt.Errorf("invalid path %q", s)
	}
	q.keys = strings.Split(s, ".")
	for _, k := range q.keys {
		if k == "" {
			return nil, fmt.Errorf("invalid path %q: empty key", s)
		}
	}
	return q, nil
}

func parseType(name string) (tag.Type, bool) {
	for _, t := range tag.Types() {
		if t == tag.EndType {
			continue
		}
		if strings.EqualFold(name, t.PrettyName()) || strings.EqualFold(name, t.Name()) {
			return t, true
		}
	}
	return 0, false
}

func (cfg *GetConfig) query(cc *cli.Context, file string, q *query) (tag.Tag, error) {
	if q.typed && !cfg.Network {
		return cfg.collect(cc, file, q)
	}
	_, t, err := cfg.readTag(cc, file)
	if err != nil {
		return nil, err
	}
	v, ok := lookup(t, q.keys)
	if !ok || (q.typed && v.ID() != q.typ) {
		return nil, errNotFound
	}
	return v, nil
}

// collect streams file, materializing only the selected field.
func (cfg *GetConfig) collect(cc *cli.Context, file string, q *query) (tag.Tag, error) {
	r, err := openInput(cc, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	opts, err := cfg.readOpts(cfg.accounter())
	if err != nil {
		return nil, err
	}
	n := len(q.keys)
	v := stream.NewCollectFields(stream.Select(q.typ, q.keys[n-1], q.keys[:n-1]...))
	if err := wire.Parse(r, v, opts...); err != nil {
		return nil, err
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if v.Missing() > 0 || v.Result() == nil {
		return nil, errNotFound
	}
	res, ok := lookup(v.Result(), q.keys)
	if !ok {
		return nil, errNotFound
	}
	return res, nil
}

type indexed interface {
	Len() int
	Get(int) tag.Tag
}

// lookup follows keys through compounds and, as decimal indices,
// through lists and arrays.
func lookup(t tag.Tag, keys []string) (tag.Tag, bool) {
	for _, k := range keys {
		switch x := t.(type) {
		case *tag.Compound:
			v, ok := x.Get(k)
			if !ok {
				return nil, false
			}
			t = v
		case indexed:
			i, err := strconv.Atoi(k)
			if err != nil || i < 0 || i >= x.Len() {
				return nil, false
			}
			t = x.Get(i)
		default:
			return nil, false
		}
	}
	return t, true
}
