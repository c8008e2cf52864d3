package traverse

import (
	"container/heap"
	"math"

	"github.com/arzeth/kbgraph/csr"
)

// Dijkstra computes shortest paths from source over g using edge weight as
// nonnegative cost, with a binary-heap priority queue that has no
// decrease-key: a vertex is pushed again on every improvement and stale
// entries are skipped when popped. Returns a predecessor
// array using the same convention as BFS (parent[source] == source,
// parent[v] == v for unreached v).
func Dijkstra(g *csr.Graph, source int, parent []int) ([]int, error) {
	v := g.VertexCount()
	if source < 0 || source >= v {
		return nil, ErrVertexOutOfRange
	}
	parent = ensureSized(parent, v)
	for i := range parent {
		parent[i] = i
	}

	dist := make([]float64, v)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(distPQ, 0, v)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{vertex: source, dist: 0})

	done := make([]bool, v)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.vertex
		if done[u] {
			continue
		}
		done[u] = true

		for _, ref := range g.OutEdges(u) {
			w := g.EdgeProperties(ref.Edge).Weight
			if done[ref.Vertex] {
				continue
			}
			nd := dist[u] + w
			if nd < dist[ref.Vertex] {
				dist[ref.Vertex] = nd
				parent[ref.Vertex] = u
				heap.Push(&pq, &distItem{vertex: ref.Vertex, dist: nd})
			}
		}
	}
	return parent, nil
}

type distItem struct {
	vertex int
	dist   float64
}

type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
