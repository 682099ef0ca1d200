package fabric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holodeck-hpc/torusba/fabric"
)

func TestNew_BadDims(t *testing.T) {
	_, err := fabric.New(fabric.Coord{0, 4, 4, 4})
	require.ErrorIs(t, err, fabric.ErrBadDims)
}

func TestNew_RingsWrap(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 4, 1, 1})
	require.NoError(t, err)

	mp, err := f.Coord2MP(fabric.Coord{0, 3, 0, 0})
	require.NoError(t, err)
	require.Equal(t, fabric.Coord{0, 0, 0, 0}, mp.Next[fabric.X].Coord)

	// every MP reachable by following Next[X] exactly dims[X] times returns to start
	start, err := f.Coord2MP(fabric.Coord{0, 0, 0, 0})
	require.NoError(t, err)
	cur := start
	for i := 0; i < 4; i++ {
		cur = cur.Next[fabric.X]
	}
	require.Equal(t, start.Coord, cur.Coord)
}

func TestCoord2MP_OutOfRange(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 2, 2, 2})
	require.NoError(t, err)

	_, err = f.Coord2MP(fabric.Coord{0, 2, 0, 0})
	require.ErrorIs(t, err, fabric.ErrOutOfRange)
}

func TestReset_PreservesOrClearsNodeState(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 2, 1, 1}, fabric.WithNodeStateFn(func(c fabric.Coord) fabric.NodeState {
		if c[fabric.X] == 1 {
			return fabric.NodeDown
		}
		return fabric.NodeIdle
	}))
	require.NoError(t, err)

	mp, _ := f.Coord2MP(fabric.Coord{0, 1, 0, 0})
	mp.Used = fabric.UsedTrue
	mp.AxisSwitch[fabric.X] = fabric.SwitchIn

	f.Reset(true)
	mp, _ = f.Coord2MP(fabric.Coord{0, 1, 0, 0})
	require.Equal(t, fabric.UsedFalse, mp.Used)
	require.Equal(t, fabric.SwitchNone, mp.AxisSwitch[fabric.X])
	require.Equal(t, fabric.NodeDown, mp.NodeState, "track_down preserves hardware state")

	f.Reset(false)
	mp, _ = f.Coord2MP(fabric.Coord{0, 1, 0, 0})
	require.Equal(t, fabric.NodeIdle, mp.NodeState, "track_down=false clears hardware state too")
}

func TestSetAllExcept(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 2, 2, 1})
	require.NoError(t, err)

	keep, _ := f.Coord2MP(fabric.Coord{0, 0, 0, 0})
	err = f.SetAllExcept([]string{"host-" + keep.CoordStr})
	require.NoError(t, err)

	keep, _ = f.Coord2MP(fabric.Coord{0, 0, 0, 0})
	require.False(t, keep.Used.Has(fabric.UsedTemp))

	other, _ := f.Coord2MP(fabric.Coord{0, 1, 0, 0})
	require.True(t, other.Used.Has(fabric.UsedTemp))
}

func TestFindLoc(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 2, 2, 2})
	require.NoError(t, err)

	mp, _ := f.Coord2MP(fabric.Coord{0, 1, 0, 1})
	got, err := f.FindLoc(mp.CoordStr)
	require.NoError(t, err)
	require.Equal(t, mp.Coord, got)

	_, err = f.FindLoc("ZZZZ")
	require.ErrorIs(t, err, fabric.ErrLabelNotFound)
}

func TestSnapshotRestore(t *testing.T) {
	f, err := fabric.New(fabric.Coord{1, 2, 1, 1})
	require.NoError(t, err)

	snap := f.Snapshot()
	mp, _ := f.Coord2MP(fabric.Coord{0, 0, 0, 0})
	mp.Used = fabric.UsedTrue

	f.Restore(snap)
	mp, _ = f.Coord2MP(fabric.Coord{0, 0, 0, 0})
	require.Equal(t, fabric.UsedFalse, mp.Used)
}
