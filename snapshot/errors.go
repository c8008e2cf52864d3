package snapshot

import (
	"errors"
	"fmt"
	"io"
)

// Magic markers. magicCSR gates every section of the current (2.0) binary
// layout; magicV1 and magicLegacy identify pre-2.0 formats that this
// package refuses to read.
const (
	magicCSR    uint64 = 0x110501
	magicV1     uint64 = 0x070201
	magicLegacy uint64 = 0x080826
)

// Sentinel errors for snapshot package operations.
var (
	// ErrBadMagic indicates a magic marker did not match magicCSR and was
	// not one of the recognized legacy magics either.
	ErrBadMagic = errors.New("snapshot: invalid magic marker")

	// ErrLegacyMagic indicates a pre-2.0 snapshot; convert it with an
	// offline conversion utility before loading it here.
	ErrLegacyMagic = errors.New("snapshot: legacy (pre-2.0) snapshot format, convert it first")

	// ErrTruncated indicates the stream ended (EOF/unexpected EOF) before a
	// fixed-width word or length-prefixed payload was fully read.
	ErrTruncated = errors.New("snapshot: truncated stream")

	// ErrIO indicates the underlying reader failed for a reason other than
	// running out of data — a real I/O error, distinct from ErrTruncated,
	// that a caller may want to retry rather than treat as a corrupt
	// snapshot.
	ErrIO = errors.New("snapshot: io error")

	// ErrSizeMismatch indicates the in-memory vertex/edge counts disagree
	// with the CSR array sizes; the writer refuses to emit an
	// inconsistent snapshot.
	ErrSizeMismatch = errors.New("snapshot: vertex/edge count mismatch before write")
)

// wrapIO classifies a failed io.ReadFull: an EOF or unexpected EOF means
// the stream was short (ErrTruncated); anything else is a genuine I/O
// failure (ErrIO).
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
