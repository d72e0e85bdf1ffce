package wire

type options struct {
	acc         *Accounter
	compression Compression
	detect      bool
}

// Option configures reading and writing.
type Option func(*options)

func makeOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.acc == nil {
		o.acc = Unlimited()
	}
	return o
}

// WithQuota bounds decoding to bits bits charged to a fresh Accounter.
func WithQuota(bits int64) Option {
	return func(o *options) { o.acc = NewAccounter(bits) }
}

// WithAccounter charges decoding to acc, which may be shared across
// several reads.
func WithAccounter(acc *Accounter) Option {
	return func(o *options) { o.acc = acc }
}

// WithCompression sets the framing used to read or write.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
		o.detect = false
	}
}

// WithDetectCompression makes readers sniff the framing from the input.
func WithDetectCompression() Option {
	return func(o *options) { o.detect = true }
}
