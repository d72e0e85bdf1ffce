package wire

import (
	"fmt"

	"github.com/nbtkit/go-nbt/stream"
	"github.com/nbtkit/go-nbt/tag"
)

// Codec holds the binary behavior of one tag type. Load, Skip and Parse
// consume exactly the same bytes for a given payload.
type Codec struct {
	Type tag.Type
	// Size is the fixed payload width in bytes, -1 for variable width
	// payloads.
	Size int

	// Load decodes one payload at nesting depth depth.
	Load func(r *Reader, depth int) (tag.Tag, error)
	// Skip consumes one payload without materializing it.
	Skip func(r *Reader, depth int) error
	// Parse feeds one payload to a visitor.
	Parse func(r *Reader, depth int, v stream.Visitor) (stream.Result, error)
}

// SkipN consumes n consecutive payloads.
func (c *Codec) SkipN(r *Reader, depth, n int) error {
	if c.Size >= 0 {
		return r.Skip(int64(c.Size) * int64(n))
	}
	for range n {
		if err := c.Skip(r, depth); err != nil {
			return err
		}
	}
	return nil
}

var codecs [tag.LongArrayType + 1]*Codec

func init() {
	codecs = [...]*Codec{
		tag.EndType:       {Type: tag.EndType, Size: 0, Load: loadEnd, Parse: parseEnd},
		tag.ByteType:      {Type: tag.ByteType, Size: 1, Load: loadByte, Parse: parseByte},
		tag.ShortType:     {Type: tag.ShortType, Size: 2, Load: loadShort, Parse: parseShort},
		tag.IntType:       {Type: tag.IntType, Size: 4, Load: loadInt, Parse: parseInt},
		tag.LongType:      {Type: tag.LongType, Size: 8, Load: loadLong, Parse: parseLong},
		tag.FloatType:     {Type: tag.FloatType, Size: 4, Load: loadFloat, Parse: parseFloat},
		tag.DoubleType:    {Type: tag.DoubleType, Size: 8, Load: loadDouble, Parse: parseDouble},
		tag.ByteArrayType: {Type: tag.ByteArrayType, Size: -1, Load: loadByteArray, Skip: skipArray(1), Parse: parseByteArray},
		tag.StringType:    {Type: tag.StringType, Size: -1, Load: loadString, Skip: skipString, Parse: parseString},
		tag.ListType:      {Type: tag.ListType, Size: -1, Load: loadList, Skip: skipList, Parse: parseList},
		tag.CompoundType:  {Type: tag.CompoundType, Size: -1, Load: loadCompound, Skip: skipCompound, Parse: parseCompound},
		tag.IntArrayType:  {Type: tag.IntArrayType, Size: -1, Load: loadIntArray, Skip: skipArray(4), Parse: parseIntArray},
		tag.LongArrayType: {Type: tag.LongArrayType, Size: -1, Load: loadLongArray, Skip: skipArray(8), Parse: parseLongArray},
	}
	for _, c := range codecs {
		if c.Size >= 0 {
			c.Skip = skipStatic(c.Size)
		}
	}
}

// CodecFor returns the codec of t. Unknown ids get a codec whose every
// operation fails with ErrMalformed.
func CodecFor(t tag.Type) *Codec {
	if t.Valid() {
		return codecs[t]
	}
	return invalidCodec(t)
}

func invalidCodec(t tag.Type) *Codec {
	err := fmt.Errorf("%w: invalid tag id %d", ErrMalformed, byte(t))
	return &Codec{
		Type: t,
		Size: -1,
		Load: func(*Reader, int) (tag.Tag, error) { return nil, err },
		Skip: func(*Reader, int) error { return err },
		Parse: func(*Reader, int, stream.Visitor) (stream.Result, error) {
			return stream.Halt, err
		},
	}
}

func checkDepth(depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: depth > %d", ErrDepthExceeded, MaxDepth)
	}
	return nil
}

func skipStatic(size int) func(*Reader, int) error {
	return func(r *Reader, _ int) error {
		return r.Skip(int64(size))
	}
}

func skipArray(width int64) func(*Reader, int) error {
	return func(r *Reader, _ int) error {
		n, err := r.ReadCount()
		if err != nil {
			return err
		}
		return r.Skip(int64(n) * width)
	}
}

func skipString(r *Reader, _ int) error {
	return r.SkipString()
}

func readListHeader(r *Reader) (*Codec, int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, 0, err
	}
	n, err := r.ReadCount()
	if err != nil {
		return nil, 0, err
	}
	elem := tag.Type(b)
	if !elem.Valid() {
		return nil, 0, fmt.Errorf("%w: invalid list element id %d", ErrMalformed, b)
	}
	if elem == tag.EndType && n > 0 {
		return nil, 0, fmt.Errorf("%w: missing type on list of %d elements", ErrMalformed, n)
	}
	return CodecFor(elem), n, nil
}

func skipList(r *Reader, depth int) error {
	if err := checkDepth(depth); err != nil {
		return err
	}
	c, n, err := readListHeader(r)
	if err != nil {
		return err
	}
	return c.SkipN(r, depth+1, n)
}

func skipCompound(r *Reader, depth int) error {
	if err := checkDepth(depth); err != nil {
		return err
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b == 0 {
			return nil
		}
		if err := r.SkipString(); err != nil {
			return err
		}
		if err := CodecFor(tag.Type(b)).Skip(r, depth+1); err != nil {
			return err
		}
	}
}
