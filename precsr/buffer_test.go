package precsr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzeth/kbgraph/precsr"
)

func TestInsertVertex_Idempotent(t *testing.T) {
	require := require.New(t)
	b := precsr.NewBuffer()
	i1 := b.InsertVertex("a")
	i2 := b.InsertVertex("a")
	require.Equal(i1, i2)
	require.Equal(1, b.VertexCount())
}

func TestInsertEdge_DeduplicatesAndMergesRelTypes(t *testing.T) {
	require := require.New(t)
	b := precsr.NewBuffer()

	hyperIdx, err := b.RelTypeIndex("hyper")
	require.NoError(err)
	meroIdx, err := b.RelTypeIndex("mero")
	require.NoError(err)

	e1 := b.InsertEdge("a", "b", 1.0, hyperIdx)
	e2 := b.InsertEdge("a", "b", 1.0, meroIdx)

	require.Equal(e1, e2, "same ordered pair must collapse to one edge")
	require.Equal(1, b.EdgeCount())
	mask := b.EdgeProperties()[e1].RTypeMask
	require.Equal(uint32(1<<hyperIdx|1<<meroIdx), mask)
}

func TestRelTypeIndex_Cap(t *testing.T) {
	require := require.New(t)
	b := precsr.NewBuffer()
	for i := 0; i < 32; i++ {
		_, err := b.RelTypeIndex(string(rune('A' + i)))
		require.NoError(err)
	}
	_, err := b.RelTypeIndex("overflow")
	require.ErrorIs(err, precsr.ErrTooManyRelationTypes)
}

func TestInsertEdge_NoRelType(t *testing.T) {
	require := require.New(t)
	b := precsr.NewBuffer()
	e := b.InsertEdge("a", "b", 2.5, -1)
	require.Equal(uint32(0), b.EdgeProperties()[e].RTypeMask)
	require.Equal(2.5, b.EdgeProperties()[e].Weight)
}
