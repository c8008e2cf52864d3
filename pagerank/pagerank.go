package pagerank

import (
	"math"
	"sync"

	"github.com/arzeth/kbgraph/csr"
	"github.com/arzeth/kbgraph/kbsettings"
)

// Driver runs personalized PageRank over a fixed graph, memoizing the
// out-coefficient vector and a uniform-teleport static ranking the first
// time each is requested.
type Driver struct {
	g        *csr.Graph
	settings kbsettings.PageRankSettings

	outCoefOnce sync.Once
	outCoef     []float64

	staticOnce  sync.Once
	staticRanks []float64
	staticErr   error
}

// NewDriver binds a PageRank driver to g using the given tunables.
func NewDriver(g *csr.Graph, settings kbsettings.PageRankSettings) *Driver {
	return &Driver{g: g, settings: settings}
}

// outCoefficients returns, for every vertex, the sum of its out-edge
// weights (weighted mode) or its out-degree (unweighted mode). Computed
// once and cached; edge weights overwritten in place on the graph after
// the first computation are not reflected in the cached vector.
func (d *Driver) outCoefficients() []float64 {
	d.outCoefOnce.Do(func() {
		n := d.g.VertexCount()
		coef := make([]float64, n)
		for v := 0; v < n; v++ {
			if d.settings.UseWeight {
				var sum float64
				for _, ref := range d.g.OutEdges(v) {
					sum += d.g.EdgeProperties(ref.Edge).Weight
				}
				coef[v] = sum
			} else {
				coef[v] = float64(d.g.OutDegree(v))
			}
		}
		d.outCoef = coef
	})
	return d.outCoef
}

// PageRankPPV runs power iteration with teleportation:
//
//	rank' = (1-d)*ppv + d*(Wᵀrank + danglingMass*ppv)
//
// where W[u,v] = weight(u,v)/out_coef(u) in weighted mode or
// 1/out_degree(u) in unweighted mode, and danglingMass is the rank held by
// vertices with out_coef == 0, redistributed back through ppv so total
// mass is conserved. ppvIn must sum to 1; PageRankPPV does not normalize
// it. ranksOut is reused when already sized to the graph's vertex count.
func (d *Driver) PageRankPPV(ppvIn []float64, ranksOut []float64) ([]float64, error) {
	n := d.g.VertexCount()
	if len(ppvIn) != n {
		return nil, ErrSizeMismatch
	}
	if len(ranksOut) != n {
		ranksOut = make([]float64, n)
	}

	coef := d.outCoefficients()
	damping := d.settings.Damping
	threshold := d.settings.Threshold

	rank := make([]float64, n)
	copy(rank, ppvIn)
	next := make([]float64, n)

	for iter := 0; iter < d.settings.NumIterations; iter++ {
		for i := range next {
			next[i] = 0
		}
		var danglingMass float64
		for u := 0; u < n; u++ {
			if coef[u] == 0 {
				danglingMass += rank[u]
				continue
			}
			share := rank[u] / coef[u]
			for _, ref := range d.g.OutEdges(u) {
				w := 1.0
				if d.settings.UseWeight {
					w = d.g.EdgeProperties(ref.Edge).Weight
				}
				next[ref.Vertex] += share * w
			}
		}

		var l1Delta float64
		for i := 0; i < n; i++ {
			val := (1-damping)*ppvIn[i] + damping*(next[i]+danglingMass*ppvIn[i])
			l1Delta += math.Abs(val - rank[i])
			next[i] = val
		}
		rank, next = next, rank

		if l1Delta < threshold {
			break
		}
	}

	copy(ranksOut, rank)
	return ranksOut, nil
}

// StaticPRank returns a memoized PageRank computed with a uniform
// teleportation vector (ppv[i] = 1/V for every i). On an empty graph it
// returns an empty, non-nil slice.
func (d *Driver) StaticPRank() ([]float64, error) {
	d.staticOnce.Do(func() {
		n := d.g.VertexCount()
		if n == 0 {
			d.staticRanks = []float64{}
			return
		}
		ppv := make([]float64, n)
		uniform := 1.0 / float64(n)
		for i := range ppv {
			ppv[i] = uniform
		}
		ranks, err := d.PageRankPPV(ppv, nil)
		if err != nil {
			d.staticErr = err
			return
		}
		d.staticRanks = ranks
	})
	if d.staticErr != nil {
		return nil, d.staticErr
	}
	return d.staticRanks, nil
}
