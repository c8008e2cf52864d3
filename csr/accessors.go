package csr

// OutDegree returns the number of out-edges of vertex v.
func (g *Graph) OutDegree(v int) int {
	return int(g.rowStartF[v+1] - g.rowStartF[v])
}

// InDegree returns the number of in-edges of vertex v.
func (g *Graph) InDegree(v int) int {
	return int(g.rowStartB[v+1] - g.rowStartB[v])
}

// OutEdges returns v's out-edges as (target, forward-edge-index) pairs.
// The returned slice is freshly allocated on every call (nil for a vertex
// with no out-edges).
func (g *Graph) OutEdges(v int) []EdgeRef {
	return g.edgeRefSlice(g.rowStartF, g.columnF, nil, v)
}

// InEdges returns v's in-edges as (source, forward-edge-index) pairs — the
// forward-edge-index is recovered via the backward permutation so callers
// get the same EdgeProperty record regardless of traversal direction.
func (g *Graph) InEdges(v int) []EdgeRef {
	return g.edgeRefSlice(g.rowStartB, g.columnB, g.backToFwd, v)
}

func (g *Graph) edgeRefSlice(rowStart []int32, column []int32, toFwd []int32, v int) []EdgeRef {
	lo, hi := rowStart[v], rowStart[v+1]
	if hi == lo {
		return nil
	}
	out := make([]EdgeRef, 0, hi-lo)
	for i := lo; i < hi; i++ {
		edgeIdx := i
		if toFwd != nil {
			edgeIdx = toFwd[i]
		}
		out = append(out, EdgeRef{Vertex: int(column[i]), Edge: int(edgeIdx)})
	}
	return out
}

// HasEdge reports whether a forward arc u->v exists, and if so its forward
// edge index. Runs in O(out-degree(u)); CSR does not index within a row.
func (g *Graph) HasEdge(u, v int) (int, bool) {
	lo, hi := g.rowStartF[u], g.rowStartF[u+1]
	for i := lo; i < hi; i++ {
		if int(g.columnF[i]) == v {
			return int(i), true
		}
	}
	return 0, false
}
