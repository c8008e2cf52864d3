package snapshot

import (
	"io"

	"github.com/arzeth/kbgraph/csr"
)

// Read parses a binary snapshot from r and reconstructs a *csr.Graph. On
// any mismatch of a magic marker or short read, it returns a descriptive
// error (ErrBadMagic, ErrLegacyMagic, or a wrapped ErrTruncated) and no
// partial graph.
func Read(r io.Reader) (*csr.Graph, error) {
	sr := NewReader(r)

	if !sr.ReadMagic() {
		return nil, sr.Err()
	}
	relSources := sr.ReadStringSet()
	relTypes := sr.ReadStringSeq()
	nameIndex := sr.ReadStringIntMap()
	if sr.Err() != nil {
		return nil, sr.Err()
	}

	if !sr.ReadMagic() {
		return nil, sr.Err()
	}
	edgeN := sr.ReadUint64()
	vertexN := sr.ReadUint64()
	if sr.Err() != nil {
		return nil, sr.Err()
	}

	if !sr.ReadMagic() {
		return nil, sr.Err()
	}
	rowStartF := sr.ReadInt32Seq()
	columnF := sr.ReadInt32Seq()
	rowStartB := sr.ReadInt32Seq()
	columnB := sr.ReadInt32Seq()
	backToFwd := sr.ReadInt32Seq()
	if sr.Err() != nil {
		return nil, sr.Err()
	}

	vertexNames := make([]string, vertexN)
	for i := range vertexNames {
		vertexNames[i] = sr.ReadString()
	}
	edgeProps := make([]csr.EdgeProperty, edgeN)
	for i := range edgeProps {
		w := sr.ReadFloat64()
		mask := sr.ReadUint64()
		edgeProps[i] = csr.EdgeProperty{Weight: w, RTypeMask: uint32(mask)}
	}
	if sr.Err() != nil {
		return nil, sr.Err()
	}

	if !sr.ReadMagic() {
		return nil, sr.Err()
	}
	notes := sr.ReadStringSeq()
	if sr.Err() != nil {
		return nil, sr.Err()
	}

	return csr.FromParts(vertexNames, nameIndex, rowStartF, columnF, edgeProps, rowStartB, columnB, backToFwd, relTypes, relSources, notes), nil
}
