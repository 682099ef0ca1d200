package geoseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holodeck-hpc/torusba/geoseq"
)

func TestSlice_WalksInOrder(t *testing.T) {
	s := geoseq.NewSlice([4]int{1, 2, 2, 2}, [4]int{1, 4, 1, 1})

	g, ok := s.Geometry()
	require.True(t, ok)
	require.Equal(t, [4]int{1, 2, 2, 2}, g)

	require.True(t, s.Advance())
	g, ok = s.Geometry()
	require.True(t, ok)
	require.Equal(t, [4]int{1, 4, 1, 1}, g)

	require.False(t, s.Advance())
	_, ok = s.Geometry()
	require.False(t, ok)
}

func TestSlice_Empty(t *testing.T) {
	s := geoseq.NewSlice()
	_, ok := s.Geometry()
	require.False(t, ok)
	require.False(t, s.Advance())
}

func TestSingle_YieldsOnce(t *testing.T) {
	s := geoseq.Single([4]int{1, 1, 1, 1})
	g, ok := s.Geometry()
	require.True(t, ok)
	require.Equal(t, [4]int{1, 1, 1, 1}, g)

	require.False(t, s.Advance())
	_, ok = s.Geometry()
	require.False(t, ok)
}
