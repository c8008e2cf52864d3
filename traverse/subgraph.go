package traverse

import "github.com/arzeth/kbgraph/csr"

// Subgraph is the result of a bounded-radius BFS extraction: Order holds
// the admitted vertices in discovery order (Order[0] == source), and
// Successors[i] holds the local positions (indices into Order) of i's
// recorded successors.
type Subgraph struct {
	Order      []int
	Successors [][]int
}

// BoundedSubgraph runs BFS from source, admitting vertices in discovery
// order until limit are admitted, then stops (spec.md §4.5).
//
// On a tree edge (u->v) where v is newly admitted, v is recorded as a
// successor of u; if the reverse arc v->u also exists in the graph, u is
// additionally recorded as a successor of v (since standard BFS would
// never otherwise traverse that specific arc if v's own expansion is cut
// short by the cap). On a non-tree edge (u->v) where both endpoints are
// already admitted, v is recorded as a successor of u. Any edge whose
// target would exceed the cap is silently dropped, and exploration stops
// the instant the cap is reached — mirrored here with a plain boundary
// check instead of the exception-based unwind the original engine used
// (spec.md §9).
func BoundedSubgraph(g *csr.Graph, source, limit int) (*Subgraph, error) {
	v := g.VertexCount()
	if source < 0 || source >= v {
		return nil, ErrVertexOutOfRange
	}
	if limit <= 0 {
		return &Subgraph{}, nil
	}

	sg := &Subgraph{}
	admitted := make(map[int]int)
	recorded := make(map[[2]int]struct{})

	admit := func(vertex int) int {
		if len(sg.Order) >= limit {
			return -1
		}
		pos := len(sg.Order)
		sg.Order = append(sg.Order, vertex)
		sg.Successors = append(sg.Successors, nil)
		admitted[vertex] = pos
		return pos
	}
	addSuccessor := func(uPos, vPos int) {
		key := [2]int{uPos, vPos}
		if _, ok := recorded[key]; ok {
			return
		}
		recorded[key] = struct{}{}
		sg.Successors[uPos] = append(sg.Successors[uPos], vPos)
	}

	admit(source)
	queue := []int{source}

	for head := 0; head < len(queue); head++ {
		if len(sg.Order) >= limit {
			break
		}
		u := queue[head]
		uPos := admitted[u]
		for _, ref := range g.OutEdges(u) {
			if len(sg.Order) >= limit {
				break
			}
			vertex := ref.Vertex
			if vPos, ok := admitted[vertex]; ok {
				addSuccessor(uPos, vPos)
				continue
			}
			vPos := admit(vertex)
			if vPos == -1 {
				continue
			}
			addSuccessor(uPos, vPos)
			if _, ok := g.HasEdge(vertex, u); ok {
				addSuccessor(vPos, uPos)
			}
			queue = append(queue, vertex)
		}
	}
	return sg, nil
}
