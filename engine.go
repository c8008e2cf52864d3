package kbgraph

import (
	"fmt"
	"io"
	"math"

	"github.com/arzeth/kbgraph/csr"
	"github.com/arzeth/kbgraph/kbrand"
	"github.com/arzeth/kbgraph/kbsettings"
	"github.com/arzeth/kbgraph/pagerank"
)

// Engine is a façade over one loaded graph: name lookups, relation-type
// bookkeeping, traversal-adjacent queries, PageRank, and text/binary dumps.
// An Engine owns its graph exclusively for its lifetime; concurrent callers
// must provide their own external mutual exclusion (spec.md §5).
type Engine struct {
	g        *csr.Graph
	settings kbsettings.Settings
	rand     kbrand.Source
	prank    *pagerank.Driver
}

// NewEngine wraps g as a façade using settings for PageRank tunables and
// rnd for GetRandomVertex. rnd may be nil, in which case kbrand.Default{}
// is used.
func NewEngine(g *csr.Graph, settings kbsettings.Settings, rnd kbrand.Source) *Engine {
	if rnd == nil {
		rnd = kbrand.Default{}
	}
	return &Engine{
		g:        g,
		settings: settings,
		rand:     rnd,
		prank:    pagerank.NewDriver(g, settings.PageRank()),
	}
}

// Graph exposes the underlying CSR graph for callers that need direct
// access (traversal, snapshot writing).
func (e *Engine) Graph() *csr.Graph { return e.g }

// GetVertexByName looks up a vertex index by name.
func (e *Engine) GetVertexByName(name string) (int, bool) {
	return e.g.VertexByName(name)
}

// GetEdgeRelTypes expands edge e's relation-type bitset into names.
func (e *Engine) GetEdgeRelTypes(edge int) ([]string, error) {
	return e.g.RelTypeNames(edge)
}

// EdgeAddRelType registers name if new (subject to the 32-type cap) and
// ORs its bit into edge's mask.
func (e *Engine) EdgeAddRelType(edge int, name string) error {
	return e.g.SetEdgeRelType(edge, name)
}

// GetRandomVertex picks a vertex uniformly via the engine's RNG
// collaborator. Returns false on an empty graph.
func (e *Engine) GetRandomVertex() (int, bool) {
	n := e.g.VertexCount()
	if n == 0 {
		return 0, false
	}
	return e.rand.Intn(n), true
}

// IndegMaxMin scans every vertex once and returns (max, min) in-degree.
// On an empty graph it returns (math.MaxInt, 0), an explicit convention the
// source left unspecified.
func (e *Engine) IndegMaxMin() (max, min int) {
	return degMaxMin(e.g.VertexCount(), e.g.InDegree)
}

// OutdegMaxMin scans every vertex once and returns (max, min) out-degree,
// with the same empty-graph convention as IndegMaxMin.
func (e *Engine) OutdegMaxMin() (max, min int) {
	return degMaxMin(e.g.VertexCount(), e.g.OutDegree)
}

func degMaxMin(n int, deg func(int) int) (max, min int) {
	if n == 0 {
		return math.MaxInt, 0
	}
	max, min = deg(0), deg(0)
	for v := 1; v < n; v++ {
		d := deg(v)
		if d > max {
			max = d
		}
		if d < min {
			min = d
		}
	}
	return max, min
}

// AddComment appends a free-text annotation to the graph's note history.
func (e *Engine) AddComment(note string) { e.g.AddNote(note) }

// AddRelSource registers a relation-source provenance tag.
func (e *Engine) AddRelSource(src string) { e.g.AddRelSource(src) }

// DisplayInfo writes a human-readable summary: vertex/edge counts, the
// relation-type registry, and the number of relation sources and notes
// (their contents are not printed).
func (e *Engine) DisplayInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "vertices: %d\nedges: %d\nrelation types: %v\nrelation sources: %d\nnotes: %d\n",
		e.g.VertexCount(), e.g.EdgeCount(), e.g.RelTypes(), len(e.g.RelSources()), len(e.g.Notes()))
	return err
}

// DumpGraph writes every vertex's adjacency as "name -> name1 name2 ...".
func (e *Engine) DumpGraph(w io.Writer) error {
	for v := 0; v < e.g.VertexCount(); v++ {
		if _, err := fmt.Fprintf(w, "%s ->", e.g.VertexName(v)); err != nil {
			return err
		}
		for _, ref := range e.g.OutEdges(v) {
			if _, err := fmt.Fprintf(w, " %s", e.g.VertexName(ref.Vertex)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteText serializes every forward arc back into the "u:.. v:.. w:.."
// relations text format, one line per (edge, relation type) pair, or a
// single bare line when an edge carries no relation type.
func (e *Engine) WriteText(w io.Writer) error {
	for v := 0; v < e.g.VertexCount(); v++ {
		for _, ref := range e.g.OutEdges(v) {
			props := e.g.EdgeProperties(ref.Edge)
			uName, vName := e.g.VertexName(v), e.g.VertexName(ref.Vertex)
			types, err := e.g.RelTypeNames(ref.Edge)
			if err != nil {
				return err
			}
			if len(types) == 0 {
				if _, err := fmt.Fprintf(w, "u:%s v:%s w:%g d:1\n", uName, vName, props.Weight); err != nil {
					return err
				}
				continue
			}
			for _, t := range types {
				if _, err := fmt.Fprintf(w, "u:%s v:%s w:%g t:%s d:1\n", uName, vName, props.Weight, t); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// PPVWeights reassigns every edge's weight to ppv[target], matching the
// original's ppv_weights reassignment step ahead of a personalized run.
func (e *Engine) PPVWeights(ppv []float64) error {
	if len(ppv) != e.g.VertexCount() {
		return pagerank.ErrSizeMismatch
	}
	for v := 0; v < e.g.VertexCount(); v++ {
		for _, ref := range e.g.OutEdges(v) {
			e.g.SetEdgeWeight(ref.Edge, ppv[ref.Vertex])
		}
	}
	return nil
}

// PageRankPPV runs personalized PageRank; see pagerank.Driver.PageRankPPV.
func (e *Engine) PageRankPPV(ppvIn, ranksOut []float64) ([]float64, error) {
	return e.prank.PageRankPPV(ppvIn, ranksOut)
}

// StaticPRank returns the memoized uniform-teleport PageRank.
func (e *Engine) StaticPRank() ([]float64, error) {
	return e.prank.StaticPRank()
}

// FilterRanksVNames zips ranks with vertex names. The source's filter_mode
// parameter is dropped: only its implemented mode (no filtering) is
// preserved (spec.md §9).
func (e *Engine) FilterRanksVNames(ranks []float64) ([]float64, []string) {
	names := make([]string, len(ranks))
	for i := range ranks {
		names[i] = e.g.VertexName(i)
	}
	return ranks, names
}
