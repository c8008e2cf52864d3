package precsr

import "github.com/arzeth/kbgraph/csr"

// edgeKey is the ordered-pair key used to deduplicate edges by
// (source, target) during ingest.
type edgeKey struct {
	u, v int
}

// Buffer accumulates vertex names, edges, and the relation-type registry
// as a text ingest source is read, and is consumed exactly once
// by csr.Build to produce the final immutable Graph.
type Buffer struct {
	vertexIndex map[string]int
	vertexNames []string

	edgeMap   map[edgeKey]int
	endpoints []csr.EdgeEndpoints
	edgeProps []csr.EdgeProperty

	relTypes     []string
	relTypeIndex map[string]int
	relSources   map[string]struct{}
}

// NewBuffer returns an empty preconstruction buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		vertexIndex:  make(map[string]int),
		edgeMap:      make(map[edgeKey]int),
		relTypeIndex: make(map[string]int),
		relSources:   make(map[string]struct{}),
	}
}

// AddRelSource registers a relation-source provenance tag, idempotently.
func (b *Buffer) AddRelSource(src string) { b.relSources[src] = struct{}{} }

// RelSources returns the relation-source registry accumulated so far.
func (b *Buffer) RelSources() map[string]struct{} { return b.relSources }

// InsertVertex idempotently interns name to a dense index: first sight
// allocates a new index and appends to the vertex-name array.
func (b *Buffer) InsertVertex(name string) int {
	if idx, ok := b.vertexIndex[name]; ok {
		return idx
	}
	idx := len(b.vertexNames)
	b.vertexNames = append(b.vertexNames, name)
	b.vertexIndex[name] = idx
	return idx
}

// InsertEdge ensures both endpoints exist, looks up (u,v) in the edge map;
// if absent it appends a new edge with weight w and an empty relation-type
// mask. It then always ORs rtypeIdx's bit into the edge's mask — so a
// second call for the same (u,v) pair merges relation types instead of
// duplicating the arc. Returns the edge's dense index.
//
// rtypeIdx < 0 means "no relation type for this record" (t: field absent);
// no bit is set in that case.
func (b *Buffer) InsertEdge(uName, vName string, w float64, rtypeIdx int) int {
	u := b.InsertVertex(uName)
	v := b.InsertVertex(vName)

	key := edgeKey{u, v}
	idx, ok := b.edgeMap[key]
	if !ok {
		idx = len(b.endpoints)
		b.endpoints = append(b.endpoints, csr.EdgeEndpoints{Source: u, Target: v})
		b.edgeProps = append(b.edgeProps, csr.EdgeProperty{Weight: w})
		b.edgeMap[key] = idx
	}
	if rtypeIdx >= 0 {
		b.edgeProps[idx].RTypeMask |= 1 << uint(rtypeIdx)
	}
	return idx
}

// RelTypeIndex returns relName's registry index, registering it if new.
// Fails with ErrTooManyRelationTypes past csr.RelTypeCap distinct names.
func (b *Buffer) RelTypeIndex(relName string) (int, error) {
	if idx, ok := b.relTypeIndex[relName]; ok {
		return idx, nil
	}
	if len(b.relTypes) >= csr.RelTypeCap {
		return 0, ErrTooManyRelationTypes
	}
	idx := len(b.relTypes)
	b.relTypes = append(b.relTypes, relName)
	b.relTypeIndex[relName] = idx
	return idx, nil
}

// VertexCount returns the number of distinct vertex names interned so far.
func (b *Buffer) VertexCount() int { return len(b.vertexNames) }

// EdgeCount returns the number of distinct (source, target) arcs so far.
func (b *Buffer) EdgeCount() int { return len(b.endpoints) }

// VertexNames returns the dense-indexed vertex-name array. The returned
// slice aliases internal storage and must be treated as read-only.
func (b *Buffer) VertexNames() []string { return b.vertexNames }

// Endpoints returns the unsorted edge endpoint list, aligned with
// EdgeProperties, ready for csr.Build.
func (b *Buffer) Endpoints() []csr.EdgeEndpoints { return b.endpoints }

// EdgeProperties returns the edge property list, aligned with Endpoints.
func (b *Buffer) EdgeProperties() []csr.EdgeProperty { return b.edgeProps }

// RelTypes returns the relation-type registry in registration order.
func (b *Buffer) RelTypes() []string { return b.relTypes }
