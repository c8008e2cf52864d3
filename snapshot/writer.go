package snapshot

import (
	"io"

	"github.com/arzeth/kbgraph/csr"
)

// Write emits g to w in the binary snapshot layout of spec.md §6. It
// cross-checks vertex/edge counts against the independently-tracked CSR
// row-start and column arrays before writing anything, guarding against a
// Graph built with mismatched forward/backward adjacency.
func Write(w io.Writer, g *csr.Graph) error {
	vertexN := g.VertexCount()
	edgeN := g.EdgeCount()
	if len(g.RowStartForward()) != vertexN+1 || len(g.RowStartBackward()) != vertexN+1 {
		return ErrSizeMismatch
	}
	if len(g.ColumnForward()) != edgeN || len(g.ColumnBackward()) != edgeN || len(g.BackToForward()) != edgeN {
		return ErrSizeMismatch
	}

	sw := NewWriter(w)

	sw.WriteMagic(magicCSR)
	sw.WriteStringSet(g.RelSources())
	sw.WriteStringSeq(g.RelTypes())
	sw.WriteStringIntMap(g.NameIndex())

	sw.WriteMagic(magicCSR)
	sw.WriteUint64(uint64(edgeN))
	sw.WriteUint64(uint64(vertexN))

	sw.WriteMagic(magicCSR)
	sw.WriteInt32Seq(g.RowStartForward())
	sw.WriteInt32Seq(g.ColumnForward())
	sw.WriteInt32Seq(g.RowStartBackward())
	sw.WriteInt32Seq(g.ColumnBackward())
	sw.WriteInt32Seq(g.BackToForward())

	for _, name := range g.VertexNames() {
		sw.WriteString(name)
	}
	for _, ep := range g.EdgePropertiesForward() {
		sw.WriteFloat64(ep.Weight)
		sw.WriteUint64(uint64(ep.RTypeMask))
	}

	sw.WriteMagic(magicCSR)
	sw.WriteStringSeq(g.Notes())

	return sw.Err()
}
