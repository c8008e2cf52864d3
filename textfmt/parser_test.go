package textfmt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzeth/kbgraph/kbsettings"
	"github.com/arzeth/kbgraph/textfmt"
)

func TestBuildGraph_TwoEdgeUndirected(t *testing.T) {
	require := require.New(t)
	input := "u:a v:b w:2.0\nu:b v:c\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(err)
	require.Equal(3, g.VertexCount())
	require.Equal(4, g.EdgeCount())

	idx, ok := g.VertexByName("a")
	require.True(ok)
	_ = idx

	ab, ok := g.HasEdge(mustIdx(t, g, "a"), mustIdx(t, g, "b"))
	require.True(ok)
	require.Equal(2.0, g.EdgeProperties(ab).Weight)

	bc, ok := g.HasEdge(mustIdx(t, g, "b"), mustIdx(t, g, "c"))
	require.True(ok)
	require.Equal(1.0, g.EdgeProperties(bc).Weight)
}

func TestBuildGraph_SelfLoopSuppressed(t *testing.T) {
	require := require.New(t)
	g, err := textfmt.BuildGraph(strings.NewReader("u:x v:x w:5\n"), kbsettings.NewDefaultSettings())
	require.NoError(err)
	require.Equal(0, g.VertexCount())
	require.Equal(0, g.EdgeCount())
}

func TestBuildGraph_DuplicateEdgeMultipleTypes(t *testing.T) {
	require := require.New(t)
	input := "u:a v:b t:hyper d:1\nu:a v:b t:mero d:1\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(err)
	require.Equal(2, g.VertexCount())
	require.Equal(1, g.EdgeCount())

	e, ok := g.HasEdge(mustIdx(t, g, "a"), mustIdx(t, g, "b"))
	require.True(ok)
	names, err := g.RelTypeNames(e)
	require.NoError(err)
	require.ElementsMatch([]string{"hyper", "mero"}, names)
}

func TestBuildGraph_SourceFilter(t *testing.T) {
	require := require.New(t)
	input := "u:a v:b s:wn30 d:1\nu:c v:d s:other d:1\n"
	settings := kbsettings.NewDefaultSettings(kbsettings.WithFilterSrc(map[string]struct{}{"wn30": {}}))
	g, err := textfmt.BuildGraph(strings.NewReader(input), settings)
	require.NoError(err)
	require.Equal(2, g.VertexCount())
	require.Equal(1, g.EdgeCount())
}

func TestParse_MalformedLine(t *testing.T) {
	_, err := textfmt.BuildGraph(strings.NewReader("u:a garbage\n"), kbsettings.NewDefaultSettings())
	require.Error(t, err)
	require.True(t, errors.Is(err, textfmt.ErrMalformedLine))
	var lineErr *textfmt.LineError
	require.True(t, errors.As(err, &lineErr))
	require.Equal(t, 1, lineErr.Line)
}

func TestParse_MissingEndpoint(t *testing.T) {
	_, err := textfmt.BuildGraph(strings.NewReader("u:a\n"), kbsettings.NewDefaultSettings())
	require.True(t, errors.Is(err, textfmt.ErrMissingEndpoint))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := textfmt.BuildGraph(strings.NewReader("u:a v:b z:1\n"), kbsettings.NewDefaultSettings())
	require.True(t, errors.Is(err, textfmt.ErrUnknownField))
}

func TestParse_CommentsAndBlankLinesSkipped(t *testing.T) {
	require := require.New(t)
	input := "# comment\n\n   \nu:a v:b\n"
	g, err := textfmt.BuildGraph(strings.NewReader(input), kbsettings.NewDefaultSettings())
	require.NoError(err)
	require.Equal(2, g.VertexCount())
}

func mustIdx(t *testing.T, g interface {
	VertexByName(string) (int, bool)
}, name string) int {
	t.Helper()
	idx, ok := g.VertexByName(name)
	require.True(t, ok)
	return idx
}
