package wire

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
)

// chunkSize bounds how much is allocated ahead of bytes actually read
// when a payload declares a length.
const chunkSize = 64 << 10

// Reader decodes big endian primitives from a buffered stream and
// charges an Accounter. The Reader buffers its input: once a Reader
// has been created, further reads of the same stream must go through
// it.
type Reader struct {
	r   *bufio.Reader
	acc *Accounter
	off int64
	buf [8]byte
}

// NewReader wraps r. A nil acc means Unlimited.
func NewReader(r io.Reader, acc *Accounter) *Reader {
	if acc == nil {
		acc = Unlimited()
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br, acc: acc}
}

// Accounter returns the accounter charged by r.
func (r *Reader) Accounter() *Accounter { return r.acc }

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

func (r *Reader) account(bits int64) error {
	return r.acc.AccountBits(bits)
}

func (r *Reader) eof(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of input at offset %d: %w", ErrMalformed, r.off, io.ErrUnexpectedEOF)
	}
	return err
}

func (r *Reader) fill(n int) ([]byte, error) {
	b := r.buf[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, r.eof(err)
	}
	r.off += int64(n)
	return b, nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.eof(err)
	}
	r.off++
	return b, nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadInt32()
	return math.Float32frombits(uint32(v)), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}

// ReadString reads a u16 length prefixed modified UTF-8 string and
// returns it with its length in UTF-16 units.
func (r *Reader) ReadString() (string, int, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", 0, err
	}
	d := make([]byte, n)
	if _, err := io.ReadFull(r.r, d); err != nil {
		return "", 0, r.eof(err)
	}
	r.off += int64(n)
	return decodeMUTF8(d)
}

// SkipString skips a u16 length prefixed string.
func (r *Reader) SkipString() error {
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}
	return r.Skip(int64(n))
}

// ReadCount reads an i32 element count, rejecting negative values.
func (r *Reader) ReadCount() (int, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d at offset %d", ErrMalformed, n, r.off-4)
	}
	return int(n), nil
}

// ReadBytes reads exactly n bytes. Memory grows with the bytes
// actually present, so a truncated input claiming a huge length fails
// without a proportional allocation.
func (r *Reader) ReadBytes(n int64) ([]byte, error) {
	buf := make([]byte, 0, min(n, chunkSize))
	for int64(len(buf)) < n {
		k := int(min(n-int64(len(buf)), chunkSize))
		start := len(buf)
		buf = slices.Grow(buf, k)[:start+k]
		if _, err := io.ReadFull(r.r, buf[start:]); err != nil {
			return nil, r.eof(err)
		}
		r.off += int64(k)
	}
	return buf, nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n int64) error {
	for n > 0 {
		k := int(min(n, 1<<30))
		d, err := r.r.Discard(k)
		r.off += int64(d)
		if err != nil {
			return r.eof(err)
		}
		n -= int64(k)
	}
	return nil
}

func (r *Reader) readInt32s(n int) ([]int32, error) {
	b, err := r.ReadBytes(int64(n) * 4)
	if err != nil {
		return nil, err
	}
	res := make([]int32, n)
	for i := range res {
		res[i] = int32(binary.BigEndian.Uint32(b[i*4:]))
	}
	return res, nil
}

func (r *Reader) readInt64s(n int) ([]int64, error) {
	b, err := r.ReadBytes(int64(n) * 8)
	if err != nil {
		return nil, err
	}
	res := make([]int64, n)
	for i := range res {
		res[i] = int64(binary.BigEndian.Uint64(b[i*8:]))
	}
	return res, nil
}
