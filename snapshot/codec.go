package snapshot

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer wraps an io.Writer with the atomic primitives the snapshot layout
// is built from: fixed-width words, length-prefixed strings, and
// length-prefixed sequences/sets/maps thereof.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first error encountered by any Write* call, if any.
func (sw *Writer) Err() error { return sw.err }

func (sw *Writer) WriteUint64(v uint64) {
	if sw.err != nil {
		return
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, sw.err = sw.w.Write(buf[:])
}

func (sw *Writer) WriteInt32(v int32) { sw.WriteUint64(uint64(uint32(v))) }

func (sw *Writer) WriteFloat64(v float64) { sw.WriteUint64(math.Float64bits(v)) }

func (sw *Writer) WriteMagic(m uint64) { sw.WriteUint64(m) }

func (sw *Writer) WriteString(s string) {
	sw.WriteUint64(uint64(len(s)))
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s)
}

func (sw *Writer) WriteStringSeq(seq []string) {
	sw.WriteUint64(uint64(len(seq)))
	for _, s := range seq {
		sw.WriteString(s)
	}
}

// WriteStringSet writes a set of strings. Iteration order over a Go map is
// randomized per-run; callers that need deterministic snapshot bytes
// should sort before calling, or tolerate iteration-order-only deltas.
func (sw *Writer) WriteStringSet(set map[string]struct{}) {
	sw.WriteUint64(uint64(len(set)))
	for s := range set {
		sw.WriteString(s)
	}
}

// WriteStringIntMap writes a map[string]int as a count word followed by
// (key, value) pairs in iteration order.
func (sw *Writer) WriteStringIntMap(m map[string]int) {
	sw.WriteUint64(uint64(len(m)))
	for k, v := range m {
		sw.WriteString(k)
		sw.WriteUint64(uint64(int64(v)))
	}
}

func (sw *Writer) WriteInt32Seq(seq []int32) {
	sw.WriteUint64(uint64(len(seq)))
	for _, v := range seq {
		sw.WriteInt32(v)
	}
}

// Reader wraps an io.Reader with the matching atomic read primitives.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Err returns the first error encountered by any Read* call, if any.
func (sr *Reader) Err() error { return sr.err }

func (sr *Reader) ReadUint64() uint64 {
	if sr.err != nil {
		return 0
	}
	var buf [8]byte
	if _, err := io.ReadFull(sr.r, buf[:]); err != nil {
		sr.err = wrapIO(err)
		return 0
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (sr *Reader) ReadInt32() int32 { return int32(uint32(sr.ReadUint64())) }

func (sr *Reader) ReadFloat64() float64 { return math.Float64frombits(sr.ReadUint64()) }

// ReadMagic reads a magic word and classifies it. If it doesn't match
// magicCSR, it sets Err to ErrLegacyMagic (for recognized legacy magics)
// or ErrBadMagic (otherwise) and returns false.
func (sr *Reader) ReadMagic() bool {
	m := sr.ReadUint64()
	if sr.err != nil {
		return false
	}
	switch m {
	case magicCSR:
		return true
	case magicV1, magicLegacy:
		sr.err = ErrLegacyMagic
	default:
		sr.err = ErrBadMagic
	}
	return false
}

func (sr *Reader) ReadString() string {
	n := sr.ReadUint64()
	if sr.err != nil {
		return ""
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		sr.err = wrapIO(err)
		return ""
	}
	return string(buf)
}

func (sr *Reader) ReadStringSeq() []string {
	n := sr.ReadUint64()
	if sr.err != nil {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = sr.ReadString()
		if sr.err != nil {
			return nil
		}
	}
	return out
}

func (sr *Reader) ReadStringSet() map[string]struct{} {
	n := sr.ReadUint64()
	if sr.err != nil {
		return nil
	}
	out := make(map[string]struct{}, n)
	for i := uint64(0); i < n; i++ {
		s := sr.ReadString()
		if sr.err != nil {
			return nil
		}
		out[s] = struct{}{}
	}
	return out
}

func (sr *Reader) ReadStringIntMap() map[string]int {
	n := sr.ReadUint64()
	if sr.err != nil {
		return nil
	}
	out := make(map[string]int, n)
	for i := uint64(0); i < n; i++ {
		k := sr.ReadString()
		v := sr.ReadUint64()
		if sr.err != nil {
			return nil
		}
		out[k] = int(int64(v))
	}
	return out
}

func (sr *Reader) ReadInt32Seq() []int32 {
	n := sr.ReadUint64()
	if sr.err != nil {
		return nil
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = sr.ReadInt32()
		if sr.err != nil {
			return nil
		}
	}
	return out
}
