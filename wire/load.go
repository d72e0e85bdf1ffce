package wire

import (
	"github.com/nbtkit/go-nbt/tag"
)

// Bits charged for the representation of each tag, independent of its
// payload length.
const (
	endBits       = 64
	byteBits      = 72
	shortBits     = 80
	intBits       = 96
	longBits      = 128
	floatBits     = 96
	doubleBits    = 128
	arrayBits     = 192
	stringBits    = 288
	listBits      = 296
	compoundBits  = 384
	entryBits     = 224
	overwriteBits = 288
)

func loadEnd(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(endBits); err != nil {
		return nil, err
	}
	return tag.End{}, nil
}

func loadByte(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(byteBits); err != nil {
		return nil, err
	}
	b, err := r.ReadByte()
	return tag.Byte(int8(b)), err
}

func loadShort(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(shortBits); err != nil {
		return nil, err
	}
	v, err := r.ReadUint16()
	return tag.Short(int16(v)), err
}

func loadInt(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(intBits); err != nil {
		return nil, err
	}
	v, err := r.ReadInt32()
	return tag.Int(v), err
}

func loadLong(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(longBits); err != nil {
		return nil, err
	}
	v, err := r.ReadInt64()
	return tag.Long(v), err
}

func loadFloat(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(floatBits); err != nil {
		return nil, err
	}
	v, err := r.ReadFloat32()
	return tag.Float(v), err
}

func loadDouble(r *Reader, _ int) (tag.Tag, error) {
	if err := r.account(doubleBits); err != nil {
		return nil, err
	}
	v, err := r.ReadFloat64()
	return tag.Double(v), err
}

func loadString(r *Reader, _ int) (tag.Tag, error) {
	s, err := readAccountedString(r)
	if err != nil {
		return nil, err
	}
	return tag.String(s), nil
}

func readAccountedString(r *Reader) (string, error) {
	if err := r.account(stringBits); err != nil {
		return "", err
	}
	s, units, err := r.ReadString()
	if err != nil {
		return "", err
	}
	if err := r.account(16 * int64(units)); err != nil {
		return "", err
	}
	return s, nil
}

// readArrayHeader charges the array overhead and width bits per
// declared element before any element is read.
func readArrayHeader(r *Reader, width int64) (int, error) {
	if err := r.account(arrayBits); err != nil {
		return 0, err
	}
	n, err := r.ReadCount()
	if err != nil {
		return 0, err
	}
	if err := r.account(width * int64(n)); err != nil {
		return 0, err
	}
	return n, nil
}

func loadByteArray(r *Reader, _ int) (tag.Tag, error) {
	d, err := readByteArray(r)
	if err != nil {
		return nil, err
	}
	return tag.NewByteArray(d), nil
}

func readByteArray(r *Reader) ([]byte, error) {
	n, err := readArrayHeader(r, 8)
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(int64(n))
}

func loadIntArray(r *Reader, _ int) (tag.Tag, error) {
	d, err := readIntArray(r)
	if err != nil {
		return nil, err
	}
	return tag.NewIntArray(d), nil
}

func readIntArray(r *Reader) ([]int32, error) {
	n, err := readArrayHeader(r, 32)
	if err != nil {
		return nil, err
	}
	return r.readInt32s(n)
}

func loadLongArray(r *Reader, _ int) (tag.Tag, error) {
	d, err := readLongArray(r)
	if err != nil {
		return nil, err
	}
	return tag.NewLongArray(d), nil
}

func readLongArray(r *Reader) ([]int64, error) {
	n, err := readArrayHeader(r, 64)
	if err != nil {
		return nil, err
	}
	return r.readInt64s(n)
}

func loadList(r *Reader, depth int) (tag.Tag, error) {
	if err := r.account(listBits); err != nil {
		return nil, err
	}
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	c, n, err := readListHeader(r)
	if err != nil {
		return nil, err
	}
	if err := r.account(32 * int64(n)); err != nil {
		return nil, err
	}
	l := tag.NewList()
	for range n {
		t, err := c.Load(r, depth+1)
		if err != nil {
			return nil, err
		}
		if err := l.Add(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func loadCompound(r *Reader, depth int) (tag.Tag, error) {
	if err := r.account(compoundBits); err != nil {
		return nil, err
	}
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	res := tag.NewCompound()
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return res, nil
		}
		key, units, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if err := r.account(entryBits + 16*int64(units)); err != nil {
			return nil, err
		}
		t, err := CodecFor(tag.Type(b)).Load(r, depth+1)
		if err != nil {
			return nil, err
		}
		if res.Put(key, t) != nil {
			if err := r.account(overwriteBits); err != nil {
				return nil, err
			}
		}
	}
}
