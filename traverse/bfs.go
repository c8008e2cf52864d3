package traverse

import "github.com/arzeth/kbgraph/csr"

// BFS performs a breadth-first search from source over g, returning a
// predecessor array: parent[source] == source, parent[v] == the BFS
// predecessor of v for every reached v, and parent[v] == v for every
// vertex BFS never reaches.
//
// This mirrors the original's on_initialize_vertex / on_tree_edge visitor
// pair: every vertex is first set to its own parent (the "undiscovered"
// sentinel), then overwritten as the tree grows.
//
// parent is reused if already sized to g.VertexCount(); otherwise a fresh
// slice is allocated and returned.
func BFS(g *csr.Graph, source int, parent []int) ([]int, error) {
	v := g.VertexCount()
	if source < 0 || source >= v {
		return nil, ErrVertexOutOfRange
	}
	parent = ensureSized(parent, v)
	for i := range parent {
		parent[i] = i
	}

	visited := make([]bool, v)
	visited[source] = true
	queue := make([]int, 0, v)
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, ref := range g.OutEdges(u) {
			if !visited[ref.Vertex] {
				visited[ref.Vertex] = true
				parent[ref.Vertex] = u
				queue = append(queue, ref.Vertex)
			}
		}
	}
	return parent, nil
}

// ensureSized returns s if len(s) == n, else a freshly allocated slice of
// length n. Matches the engine's "reuse caller-provided storage" contract.
func ensureSized(s []int, n int) []int {
	if len(s) == n {
		return s
	}
	return make([]int, n)
}
