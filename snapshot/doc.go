// Package snapshot implements the binary codec for the knowledge-base
// graph: the atomic read/write primitives (§2 item 1 of the design) and
// the magic-delimited section reader/writer that persists a csr.Graph to
// and from a flat byte stream (spec.md §6).
//
// Every integer "word" on the wire (magic markers, lengths, counts) is a
// fixed 8-byte little-endian unsigned integer; every length-prefixed
// string is that 8-byte length followed by its raw UTF-8 bytes. Sequences
// are a count word followed by that many elements; sets are identical on
// the wire (iteration order is not significant for a set, only for
// round-trip byte-identity of the reader it came from); maps are a count
// word followed by (key, value) pairs.
//
// Four section markers (magic_id_csr = 0x110501) gate the four top-level
// regions of the layout, and two legacy magics (0x070201, 0x080826) are
// recognized — and rejected with ErrLegacyMagic — so a reader can tell a
// pre-2.0 snapshot apart from ordinary corruption.
package snapshot
