package csr

// The accessors and constructor in this file exist solely so package
// snapshot can persist and restore a Graph's exact on-wire arrays without
// csr needing to know anything about the binary format itself.

// RowStartForward returns the forward rowstart[V+1] array.
func (g *Graph) RowStartForward() []int32 { return g.rowStartF }

// ColumnForward returns the forward column[E] array.
func (g *Graph) ColumnForward() []int32 { return g.columnF }

// EdgePropertiesForward returns the forward edge-property array.
func (g *Graph) EdgePropertiesForward() []EdgeProperty { return g.edgePropF }

// RowStartBackward returns the backward rowstart[V+1] array.
func (g *Graph) RowStartBackward() []int32 { return g.rowStartB }

// ColumnBackward returns the backward column[E] array.
func (g *Graph) ColumnBackward() []int32 { return g.columnB }

// BackToForward returns the backward per-edge payload: a permutation from
// backward edge slot to forward edge index.
func (g *Graph) BackToForward() []int32 { return g.backToFwd }

// VertexNames returns the dense-indexed vertex-name array.
func (g *Graph) VertexNames() []string { return g.vertexNames }

// NameIndex returns the name-to-index mapping.
func (g *Graph) NameIndex() map[string]int { return g.nameIndex }

// FromParts reconstructs a Graph directly from already-computed CSR
// arrays, as read from a binary snapshot. Unlike Build, it performs no
// sorting and no validation: the arrays are trusted to already be in CSR
// form and mutually consistent. snapshot.Read does not cross-check them
// either; it only verifies magic markers and complete reads.
func FromParts(
	vertexNames []string,
	nameIndex map[string]int,
	rowStartF, columnF []int32,
	edgePropF []EdgeProperty,
	rowStartB, columnB, backToFwd []int32,
	relTypes []string,
	relSources map[string]struct{},
	notes []string,
) *Graph {
	return &Graph{
		vertexNames: vertexNames,
		nameIndex:   nameIndex,
		rowStartF:   rowStartF,
		columnF:     columnF,
		edgePropF:   edgePropF,
		rowStartB:   rowStartB,
		columnB:     columnB,
		backToFwd:   backToFwd,
		relTypes:    relTypes,
		relSources:  relSources,
		notes:       notes,
	}
}
