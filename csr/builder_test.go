package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzeth/kbgraph/csr"
)

func TestBuild_ForwardAndBackwardMirror(t *testing.T) {
	require := require.New(t)

	// a -> b -> c, plus a -> c
	names := []string{"a", "b", "c"}
	endpoints := []csr.EdgeEndpoints{
		{Source: 0, Target: 1},
		{Source: 1, Target: 2},
		{Source: 0, Target: 2},
	}
	props := []csr.EdgeProperty{
		{Weight: 1.0},
		{Weight: 2.0},
		{Weight: 3.0},
	}

	g, err := csr.Build(names, endpoints, props, nil, nil)
	require.NoError(err)
	require.Equal(3, g.VertexCount())
	require.Equal(3, g.EdgeCount())

	require.Equal(2, g.OutDegree(0))
	require.Equal(1, g.OutDegree(1))
	require.Equal(0, g.OutDegree(2))

	require.Equal(0, g.InDegree(0))
	require.Equal(1, g.InDegree(1))
	require.Equal(2, g.InDegree(2))

	// every forward edge has a matching backward edge pointing back at it
	for v := 0; v < g.VertexCount(); v++ {
		for _, ref := range g.OutEdges(v) {
			found := false
			for _, back := range g.InEdges(ref.Vertex) {
				if back.Vertex == v && back.Edge == ref.Edge {
					found = true
				}
			}
			require.True(found, "no backward mirror for forward edge %d->%d", v, ref.Vertex)
		}
	}

	idxAC, ok := g.HasEdge(0, 2)
	require.True(ok)
	require.Equal(3.0, g.EdgeProperties(idxAC).Weight)
}

func TestBuild_SizeMismatch(t *testing.T) {
	_, err := csr.Build([]string{"a"}, []csr.EdgeEndpoints{{Source: 0, Target: 0}}, nil, nil, nil)
	require.ErrorIs(t, err, csr.ErrSizeMismatch)
}

func TestAddRelType_Cap(t *testing.T) {
	require := require.New(t)
	g, err := csr.Build([]string{"a", "b"}, []csr.EdgeEndpoints{{Source: 0, Target: 1}}, []csr.EdgeProperty{{Weight: 1}}, nil, nil)
	require.NoError(err)

	for i := 0; i < csr.RelTypeCap; i++ {
		_, err := g.AddRelType(relTypeName(i))
		require.NoError(err)
	}
	_, err = g.AddRelType("one-too-many")
	require.ErrorIs(err, csr.ErrTooManyRelationTypes)
}

func relTypeName(i int) string {
	return string(rune('A' + i))
}

func TestSetEdgeRelType_And_RelTypeNames(t *testing.T) {
	require := require.New(t)
	g, err := csr.Build([]string{"a", "b"}, []csr.EdgeEndpoints{{Source: 0, Target: 1}}, []csr.EdgeProperty{{Weight: 1}}, nil, nil)
	require.NoError(err)

	require.NoError(g.SetEdgeRelType(0, "hyper"))
	require.NoError(g.SetEdgeRelType(0, "mero"))
	names, err := g.RelTypeNames(0)
	require.NoError(err)
	require.ElementsMatch([]string{"hyper", "mero"}, names)
}

func TestSetEdgeRelType_EdgeOutOfRange(t *testing.T) {
	g, err := csr.Build([]string{"a", "b"}, []csr.EdgeEndpoints{{Source: 0, Target: 1}}, []csr.EdgeProperty{{Weight: 1}}, nil, nil)
	require.NoError(t, err)

	require.ErrorIs(t, g.SetEdgeRelType(5, "hyper"), csr.ErrEdgeOutOfRange)
	_, err = g.RelTypeNames(5)
	require.ErrorIs(t, err, csr.ErrEdgeOutOfRange)
}
