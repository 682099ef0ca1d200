package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holodeck-hpc/torusba/fabric"
	"github.com/holodeck-hpc/torusba/pathfind"
)

func TestFind_Geometry1Torus_SetsWrapped(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)
	f.Lock()
	defer f.Unlock()

	start, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)

	touched, blockEnd, passEnd, ok, err := pathfind.Find(start, fabric.X, 1, fabric.Torus, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, touched)
	require.Equal(t, 0, blockEnd)
	require.Equal(t, 0, passEnd)
	require.True(t, start.AlterSwitch[fabric.X].Has(fabric.SwitchWrapped))
}

func TestFind_FullRing_NoPassthroughs(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)
	f.Lock()
	defer f.Unlock()

	start, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)

	touched, blockEnd, passEnd, ok, err := pathfind.Find(start, fabric.X, 4, fabric.Torus, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, touched, 3, "every other midplane on the ring besides start")
	require.Equal(t, 3, blockEnd)
	require.Equal(t, 3, passEnd)

	for _, mp := range touched {
		require.True(t, mp.AlterSwitch[fabric.X].Has(fabric.SwitchIn))
		require.False(t, mp.AlterSwitch[fabric.X].Has(fabric.SwitchPass), "no midplane should be a pure passthrough")
	}

	last, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)
	require.True(t, last.AlterSwitch[fabric.X].Has(fabric.SwitchOut))
}

func TestFind_SurplusBecomesPassthrough(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)
	f.Lock()
	defer f.Unlock()

	start, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)

	touched, blockEnd, passEnd, ok, err := pathfind.Find(start, fabric.X, 2, fabric.Torus, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, touched, 3)
	require.Equal(t, 1, blockEnd)
	require.Equal(t, 3, passEnd)

	mid1, err := f.MPAt(fabric.Coord{0, 2, 0, 0})
	require.NoError(t, err)
	require.True(t, mid1.AlterSwitch[fabric.X].Has(fabric.SwitchPass), "beyond block_end, not yet geometry: pure passthrough")
}

func TestFind_DenyPassCausesFailure(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)
	f.Lock()
	defer f.Unlock()

	start, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)

	var found fabric.PassFound
	deny := fabric.RequestPassCheck{Deny: fabric.DenyX, Found: &found}

	_, _, _, ok, err := pathfind.Find(start, fabric.X, 2, fabric.Torus, deny)
	require.NoError(t, err)
	require.False(t, ok, "the surplus midplane can only be claimed as a denied passthrough")
	require.True(t, found.Has(fabric.FoundX))
}

func TestFind_AlreadyUsedStartFails(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)
	f.Lock()
	defer f.Unlock()

	start, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)
	start.Used = fabric.UsedTrue

	_, _, _, ok, err := pathfind.Find(start, fabric.X, 2, fabric.Torus, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFind_Mesh_ReturnsEarlyAtGeometry(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)
	f.Lock()
	defer f.Unlock()

	start, err := f.MPAt(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)

	touched, blockEnd, _, ok, err := pathfind.Find(start, fabric.X, 2, fabric.Mesh, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, touched, 1)
	require.Equal(t, 1, blockEnd)
	require.False(t, start.AlterSwitch[fabric.X].Has(fabric.SwitchWrapped))
}
