package traverse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzeth/kbgraph/kbsettings"
	"github.com/arzeth/kbgraph/textfmt"
	"github.com/arzeth/kbgraph/traverse"
)

func TestBFS_PredecessorChain(t *testing.T) {
	require := require.New(t)
	input := "u:a v:b d:1\nu:b v:c d:1\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(err)

	a := mustIdx(t, g, "a")
	b := mustIdx(t, g, "b")
	c := mustIdx(t, g, "c")

	parent, err := traverse.BFS(g, a, nil)
	require.NoError(err)
	require.Equal(a, parent[a])
	require.Equal(a, parent[b])
	require.Equal(b, parent[c])
}

func TestBFS_UnreachedVertexIsSelfParent(t *testing.T) {
	require := require.New(t)
	input := "u:a v:b d:1\nu:c v:d d:1\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(err)

	a := mustIdx(t, g, "a")
	c := mustIdx(t, g, "c")

	parent, err := traverse.BFS(g, a, nil)
	require.NoError(err)
	require.Equal(c, parent[c])
}

func TestBFS_ReusesProvidedSlice(t *testing.T) {
	require := require.New(t)
	input := "u:a v:b d:1\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(err)

	a := mustIdx(t, g, "a")
	parent := make([]int, g.VertexCount())
	got, err := traverse.BFS(g, a, parent)
	require.NoError(err)
	require.Same(&parent[0], &got[0])
}

func TestBFS_VertexOutOfRange(t *testing.T) {
	input := "u:a v:b d:1\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(t, err)

	_, err = traverse.BFS(g, g.VertexCount()+1, nil)
	require.ErrorIs(t, err, traverse.ErrVertexOutOfRange)
}

func mustIdx(t *testing.T, g interface {
	VertexByName(string) (int, bool)
}, name string) int {
	t.Helper()
	idx, ok := g.VertexByName(name)
	require.True(t, ok)
	return idx
}
