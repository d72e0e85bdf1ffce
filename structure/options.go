package structure

import (
	"log/slog"

	"github.com/nbtkit/go-nbt/debug"
	"github.com/nbtkit/go-nbt/parse"
)

type options struct {
	log   *slog.Logger
	parse []parse.ParseOption
}

type Option func(*options)

// WithLogger sets where malformed block states are reported.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithParseOptions passes options to the SNBT parser used by FromSNBT.
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *options) { o.parse = append(o.parse, opts...) }
}

func makeOptions(opts []Option) *options {
	o := &options{log: slog.Default()}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *options) debugf(msg string, args ...any) {
	if debug.Structure() {
		o.log.Debug(msg, args...)
	}
}
