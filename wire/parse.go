package wire

import (
	"github.com/nbtkit/go-nbt/stream"
	"github.com/nbtkit/go-nbt/tag"
)

func parseEnd(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(endBits); err != nil {
		return stream.Halt, err
	}
	return v.VisitEnd(), nil
}

func parseByte(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(byteBits); err != nil {
		return stream.Halt, err
	}
	b, err := r.ReadByte()
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitByte(int8(b)), nil
}

func parseShort(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(shortBits); err != nil {
		return stream.Halt, err
	}
	x, err := r.ReadUint16()
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitShort(int16(x)), nil
}

func parseInt(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(intBits); err != nil {
		return stream.Halt, err
	}
	x, err := r.ReadInt32()
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitInt(x), nil
}

func parseLong(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(longBits); err != nil {
		return stream.Halt, err
	}
	x, err := r.ReadInt64()
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitLong(x), nil
}

func parseFloat(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(floatBits); err != nil {
		return stream.Halt, err
	}
	x, err := r.ReadFloat32()
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitFloat(x), nil
}

func parseDouble(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(doubleBits); err != nil {
		return stream.Halt, err
	}
	x, err := r.ReadFloat64()
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitDouble(x), nil
}

func parseString(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	s, err := readAccountedString(r)
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitString(s), nil
}

func parseByteArray(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	d, err := readByteArray(r)
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitByteArray(d), nil
}

func parseIntArray(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	d, err := readIntArray(r)
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitIntArray(d), nil
}

func parseLongArray(r *Reader, _ int, v stream.Visitor) (stream.Result, error) {
	d, err := readLongArray(r)
	if err != nil {
		return stream.Halt, err
	}
	return v.VisitLongArray(d), nil
}

func parseList(r *Reader, depth int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(listBits); err != nil {
		return stream.Halt, err
	}
	if err := checkDepth(depth); err != nil {
		return stream.Halt, err
	}
	c, n, err := readListHeader(r)
	if err != nil {
		return stream.Halt, err
	}
	switch v.VisitList(c.Type, n) {
	case stream.Halt:
		return stream.Halt, nil
	case stream.Break, stream.Skip:
		if err := c.SkipN(r, depth+1, n); err != nil {
			return stream.Halt, err
		}
		return v.VisitContainerEnd(), nil
	}
	if err := r.account(32 * int64(n)); err != nil {
		return stream.Halt, err
	}
	i := 0
loop:
	for ; i < n; i++ {
		switch v.VisitElement(c.Type, i) {
		case stream.Halt:
			return stream.Halt, nil
		case stream.Break:
			if err := c.Skip(r, depth+1); err != nil {
				return stream.Halt, err
			}
			break loop
		case stream.Skip:
			if err := c.Skip(r, depth+1); err != nil {
				return stream.Halt, err
			}
			continue
		}
		res, err := c.Parse(r, depth+1, v)
		if err != nil {
			return stream.Halt, err
		}
		switch res {
		case stream.Halt:
			return stream.Halt, nil
		case stream.Break:
			break loop
		}
	}
	if rest := n - 1 - i; rest > 0 {
		if err := c.SkipN(r, depth+1, rest); err != nil {
			return stream.Halt, err
		}
	}
	return v.VisitContainerEnd(), nil
}

func parseCompound(r *Reader, depth int, v stream.Visitor) (stream.Result, error) {
	if err := r.account(compoundBits); err != nil {
		return stream.Halt, err
	}
	if err := checkDepth(depth); err != nil {
		return stream.Halt, err
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			return stream.Halt, err
		}
		if b == 0 {
			return v.VisitContainerEnd(), nil
		}
		t := tag.Type(b)
		c := CodecFor(t)
		switch v.VisitEntry(t) {
		case stream.Halt:
			return stream.Halt, nil
		case stream.Break:
			if err := skipEntry(r, depth, c, true); err != nil {
				return stream.Halt, err
			}
			return drainCompound(r, depth, v)
		case stream.Skip:
			if err := skipEntry(r, depth, c, true); err != nil {
				return stream.Halt, err
			}
			continue
		}
		key, units, err := r.ReadString()
		if err != nil {
			return stream.Halt, err
		}
		if err := r.account(entryBits + 16*int64(units)); err != nil {
			return stream.Halt, err
		}
		switch v.VisitEntryKey(t, key) {
		case stream.Halt:
			return stream.Halt, nil
		case stream.Break:
			if err := skipEntry(r, depth, c, false); err != nil {
				return stream.Halt, err
			}
			return drainCompound(r, depth, v)
		case stream.Skip:
			if err := skipEntry(r, depth, c, false); err != nil {
				return stream.Halt, err
			}
			continue
		}
		res, err := c.Parse(r, depth+1, v)
		if err != nil {
			return stream.Halt, err
		}
		switch res {
		case stream.Halt:
			return stream.Halt, nil
		case stream.Break:
			return drainCompound(r, depth, v)
		}
	}
}

func skipEntry(r *Reader, depth int, c *Codec, withKey bool) error {
	if withKey {
		if err := r.SkipString(); err != nil {
			return err
		}
	}
	return c.Skip(r, depth+1)
}

// drainCompound consumes the entries left after a break and closes the
// compound.
func drainCompound(r *Reader, depth int, v stream.Visitor) (stream.Result, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return stream.Halt, err
		}
		if b == 0 {
			return v.VisitContainerEnd(), nil
		}
		if err := skipEntry(r, depth, CodecFor(tag.Type(b)), true); err != nil {
			return stream.Halt, err
		}
	}
}
