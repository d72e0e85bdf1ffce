package wire

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/nbtkit/go-nbt/tag"
)

// Writer encodes tags in big endian binary form. Call Flush when done.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Writer{w: bw, buf: make([]byte, 0, 64)}
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) WriteByte(b byte) error {
	return w.w.WriteByte(b)
}

func (w *Writer) WriteUint16(v uint16) error {
	w.buf = binary.BigEndian.AppendUint16(w.buf[:0], v)
	_, err := w.w.Write(w.buf)
	return err
}

func (w *Writer) WriteInt32(v int32) error {
	w.buf = binary.BigEndian.AppendUint32(w.buf[:0], uint32(v))
	_, err := w.w.Write(w.buf)
	return err
}

func (w *Writer) WriteInt64(v int64) error {
	w.buf = binary.BigEndian.AppendUint64(w.buf[:0], uint64(v))
	_, err := w.w.Write(w.buf)
	return err
}

// WriteString writes s as u16 length prefixed modified UTF-8.
func (w *Writer) WriteString(s string) error {
	n := mutf8Len(s)
	if n > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, n)
	}
	w.buf = binary.BigEndian.AppendUint16(w.buf[:0], uint16(n))
	w.buf = appendMUTF8(w.buf, s)
	_, err := w.w.Write(w.buf)
	return err
}

// WritePayload writes the payload of t without its type id or name.
func (w *Writer) WritePayload(t tag.Tag) error {
	switch x := t.(type) {
	case tag.End:
		return nil
	case tag.Byte:
		return w.WriteByte(byte(x))
	case tag.Short:
		return w.WriteUint16(uint16(x))
	case tag.Int:
		return w.WriteInt32(int32(x))
	case tag.Long:
		return w.WriteInt64(int64(x))
	case tag.Float:
		return w.WriteInt32(int32(math.Float32bits(float32(x))))
	case tag.Double:
		return w.WriteInt64(int64(math.Float64bits(float64(x))))
	case tag.String:
		return w.WriteString(string(x))
	case *tag.ByteArray:
		if err := w.WriteInt32(int32(len(x.Data))); err != nil {
			return err
		}
		_, err := w.w.Write(x.Data)
		return err
	case *tag.IntArray:
		if err := w.WriteInt32(int32(len(x.Data))); err != nil {
			return err
		}
		for _, v := range x.Data {
			if err := w.WriteInt32(v); err != nil {
				return err
			}
		}
		return nil
	case *tag.LongArray:
		if err := w.WriteInt32(int32(len(x.Data))); err != nil {
			return err
		}
		for _, v := range x.Data {
			if err := w.WriteInt64(v); err != nil {
				return err
			}
		}
		return nil
	case *tag.List:
		return w.writeList(x)
	case *tag.Compound:
		return w.writeCompound(x)
	}
	return fmt.Errorf("cannot encode %T", t)
}

func (w *Writer) writeList(l *tag.List) error {
	if err := w.WriteByte(byte(l.ElemType())); err != nil {
		return err
	}
	if err := w.WriteInt32(int32(l.Len())); err != nil {
		return err
	}
	for _, t := range l.All() {
		if err := w.WritePayload(t); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeCompound(c *tag.Compound) error {
	for k, t := range c.All() {
		if err := w.WriteNamed(k, t); err != nil {
			return err
		}
	}
	return w.WriteByte(byte(tag.EndType))
}

// WriteNamed writes the type id of t, then name, then the payload. An
// End tag is written as its id alone.
func (w *Writer) WriteNamed(name string, t tag.Tag) error {
	if err := w.WriteByte(byte(t.ID())); err != nil {
		return err
	}
	if t.ID() == tag.EndType {
		return nil
	}
	if err := w.WriteString(name); err != nil {
		return err
	}
	return w.WritePayload(t)
}

// WriteUnnamed writes the type id of t followed by its payload, the
// form used on the network.
func (w *Writer) WriteUnnamed(t tag.Tag) error {
	if err := w.WriteByte(byte(t.ID())); err != nil {
		return err
	}
	return w.WritePayload(t)
}
