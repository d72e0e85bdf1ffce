package tag

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/zeebo/blake3"
)

// Digest is a 32 byte BLAKE3 content hash of a tag tree.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Hash returns the content digest of t. Trees that are Equal hash the
// same: compound entries are hashed in lexical key order. It panics if
// t is nil.
func Hash(t Tag) Digest {
	if t == nil {
		panic("tag: Hash called on nil tag")
	}
	h := blake3.New()
	hashTo(h, t)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func hashTo(h *blake3.Hasher, t Tag) {
	var b [8]byte
	u64 := func(v uint64) {
		binary.BigEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}
	h.Write([]byte{byte(t.ID())})
	switch v := t.(type) {
	case End:
	case Byte:
		u64(uint64(v))
	case Short:
		u64(uint64(v))
	case Int:
		u64(uint64(v))
	case Long:
		u64(uint64(v))
	case Float:
		if v == 0 {
			v = 0
		}
		u64(uint64(math.Float32bits(float32(v))))
	case Double:
		if v == 0 {
			v = 0
		}
		u64(math.Float64bits(float64(v)))
	case String:
		u64(uint64(len(v)))
		h.Write([]byte(v))
	case *ByteArray:
		u64(uint64(len(v.Data)))
		h.Write(v.Data)
	case *IntArray:
		u64(uint64(len(v.Data)))
		for _, e := range v.Data {
			u64(uint64(e))
		}
	case *LongArray:
		u64(uint64(len(v.Data)))
		for _, e := range v.Data {
			u64(uint64(e))
		}
	case *List:
		h.Write([]byte{byte(v.elem)})
		u64(uint64(len(v.items)))
		for _, e := range v.items {
			hashTo(h, e)
		}
	case *Compound:
		u64(uint64(len(v.keys)))
		for _, k := range v.SortedKeys() {
			u64(uint64(len(k)))
			h.Write([]byte(k))
			hashTo(h, v.m[k])
		}
	}
}
