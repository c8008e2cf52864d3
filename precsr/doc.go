// Package precsr implements the append-only preconstruction buffer used by
// the text ingester (and any future bulk-loading path) to turn a stream of
// (source, target, weight, relation-type) records into the dense-indexed
// arrays csr.Build consumes.
//
// Vertex names are interned to dense indices on first sight. Edges are
// deduplicated by (source, target) pair: a second occurrence between the
// same ordered pair merges its relation-type bit into the existing edge
// rather than appending a new one, preserving CSR's one-entry-per-arc
// invariant. Edges are emitted by the text parser in arbitrary order and
// may repeat when the same pair of synsets carries more than one relation
// type, which is exactly the case this package exists to collapse.
package precsr
