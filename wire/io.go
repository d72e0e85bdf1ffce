package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/nbtkit/go-nbt/stream"
	"github.com/nbtkit/go-nbt/tag"
)

// rootDepth is the nesting depth of a root container.
const rootDepth = 1

func (o *options) reader(r io.Reader) (*Reader, io.Closer, error) {
	c := o.compression
	if o.detect {
		br, sniffed, err := sniff(r)
		if err != nil {
			return nil, nil, err
		}
		r, c = br, sniffed
	}
	rc, err := NewDecompressor(r, c)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(rc, o.acc), rc, nil
}

// ReadNamed reads a root tag: its type id, its name and its payload.
// An End root has an empty name.
func (r *Reader) ReadNamed() (string, tag.Tag, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", nil, err
	}
	t := tag.Type(b)
	if t == tag.EndType {
		return "", tag.End{}, nil
	}
	name, _, err := r.ReadString()
	if err != nil {
		return "", nil, err
	}
	v, err := CodecFor(t).Load(r, rootDepth)
	if err != nil {
		return "", nil, fmt.Errorf("loading %s %q: %w", t.Name(), name, err)
	}
	return name, v, nil
}

// ReadUnnamed reads a root tag without a name, the form used on the
// network.
func (r *Reader) ReadUnnamed() (tag.Tag, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	t := tag.Type(b)
	if t == tag.EndType {
		return tag.End{}, nil
	}
	v, err := CodecFor(t).Load(r, rootDepth)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", t.Name(), err)
	}
	return v, nil
}

// Parse feeds a named root tag to v. The name is skipped. Parsing stops
// early when v halts; r is then positioned inside the tree.
func (r *Reader) Parse(v stream.Visitor) error {
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	t := tag.Type(b)
	if t == tag.EndType {
		if v.VisitRootEntry(t) == stream.Continue {
			v.VisitEnd()
		}
		return nil
	}
	c := CodecFor(t)
	switch v.VisitRootEntry(t) {
	case stream.Halt:
		return nil
	case stream.Break, stream.Skip:
		if err := r.SkipString(); err != nil {
			return err
		}
		return c.Skip(r, rootDepth)
	}
	if err := r.SkipString(); err != nil {
		return err
	}
	_, err = c.Parse(r, rootDepth, v)
	return err
}

// ReadNamed reads one named root tag from r.
func ReadNamed(r io.Reader, opts ...Option) (string, tag.Tag, error) {
	rd, closer, err := makeOptions(opts).reader(r)
	if err != nil {
		return "", nil, err
	}
	defer closer.Close()
	return rd.ReadNamed()
}

// ReadUnnamed reads one unnamed root tag from r.
func ReadUnnamed(r io.Reader, opts ...Option) (tag.Tag, error) {
	rd, closer, err := makeOptions(opts).reader(r)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return rd.ReadUnnamed()
}

// ReadCompound reads a named root that must be a compound.
func ReadCompound(r io.Reader, opts ...Option) (*tag.Compound, error) {
	_, t, err := ReadNamed(r, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*tag.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotCompound, t.ID().Name())
	}
	return c, nil
}

// ReadCompressed reads a compound root, detecting the framing of r.
func ReadCompressed(r io.Reader, opts ...Option) (*tag.Compound, error) {
	return ReadCompound(r, append([]Option{WithDetectCompression()}, opts...)...)
}

// Parse feeds the named root read from r to v.
func Parse(r io.Reader, v stream.Visitor, opts ...Option) error {
	rd, closer, err := makeOptions(opts).reader(r)
	if err != nil {
		return err
	}
	defer closer.Close()
	return rd.Parse(v)
}

func write(w io.Writer, o *options, f func(*Writer) error) (err error) {
	cw, err := NewCompressor(w, o.compression)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, cw.Close())
	}()
	bw := NewWriter(cw)
	if err := f(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes t as a root named name.
func Write(w io.Writer, name string, t tag.Tag, opts ...Option) error {
	return write(w, makeOptions(opts), func(bw *Writer) error {
		return bw.WriteNamed(name, t)
	})
}

// WriteUnnamed writes t as an unnamed root.
func WriteUnnamed(w io.Writer, t tag.Tag, opts ...Option) error {
	return write(w, makeOptions(opts), func(bw *Writer) error {
		return bw.WriteUnnamed(t)
	})
}

// WriteCompressed writes c as a root with an empty name framed by comp.
func WriteCompressed(w io.Writer, c *tag.Compound, comp Compression) error {
	return Write(w, "", c, WithCompression(comp))
}

// Encode returns the binary form of t as a root with an empty name.
func Encode(t tag.Tag, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, "", t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads the root tag held in d, ignoring its name.
func Decode(d []byte, opts ...Option) (tag.Tag, error) {
	_, t, err := ReadNamed(bytes.NewReader(d), opts...)
	return t, err
}
