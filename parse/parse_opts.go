package parse

// DefaultMaxDepth bounds the nesting of parsed lists and compounds.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
