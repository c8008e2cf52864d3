package snapshot_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzeth/kbgraph/kbsettings"
	"github.com/arzeth/kbgraph/snapshot"
	"github.com/arzeth/kbgraph/textfmt"
)

// errReader fails every Read with a non-EOF error, simulating a disk or
// network fault distinct from the stream simply running out of bytes.
type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("simulated disk fault")
}

func buildSample(t *testing.T) *bytes.Buffer {
	t.Helper()
	return bytes.NewBufferString("u:a v:b t:hyper d:1 w:2.5\nu:b v:c s:wn30\n")
}

func TestWriteThenRead_RoundTrip(t *testing.T) {
	require := require.New(t)

	g, err := textfmt.BuildGraph(buildSample(t), kbsettings.NewDefaultSettings())
	require.NoError(err)
	g.AddNote("built for test")

	var buf bytes.Buffer
	require.NoError(snapshot.Write(&buf, g))

	g2, err := snapshot.Read(&buf)
	require.NoError(err)

	require.Equal(g.VertexCount(), g2.VertexCount())
	require.Equal(g.EdgeCount(), g2.EdgeCount())
	require.Equal(g.VertexNames(), g2.VertexNames())
	require.Equal(g.RelTypes(), g2.RelTypes())
	require.Equal(g.RelSources(), g2.RelSources())
	require.Equal(g.Notes(), g2.Notes())

	for v := 0; v < g.VertexCount(); v++ {
		require.ElementsMatch(g.OutEdges(v), g2.OutEdges(v))
		require.ElementsMatch(g.InEdges(v), g2.InEdges(v))
	}
	for e := 0; e < g.EdgeCount(); e++ {
		require.Equal(g.EdgeProperties(e), g2.EdgeProperties(e))
	}
}

func TestRead_BadMagic(t *testing.T) {
	_, err := snapshot.Read(strings.NewReader("garbage not a magic!!!!"))
	require.Error(t, err)
}

func TestRead_LegacyMagic(t *testing.T) {
	var buf bytes.Buffer
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], 0x080826)
	buf.Write(word[:])

	_, err := snapshot.Read(&buf)
	require.ErrorIs(t, err, snapshot.ErrLegacyMagic)
}

func TestRead_Truncated(t *testing.T) {
	var buf bytes.Buffer
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], 0x110501)
	buf.Write(word[:4]) // short

	_, err := snapshot.Read(&buf)
	require.ErrorIs(t, err, snapshot.ErrTruncated)
}

func TestRead_IOFailureDistinctFromTruncated(t *testing.T) {
	_, err := snapshot.Read(errReader{})
	require.ErrorIs(t, err, snapshot.ErrIO)
	require.NotErrorIs(t, err, snapshot.ErrTruncated)
}
