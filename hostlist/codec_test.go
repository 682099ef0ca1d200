package hostlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holodeck-hpc/torusba/hostlist"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := [][4]int{
		{0, 0, 0, 0},
		{0, 9, 9, 9},
		{0, 10, 20, 35},
		{3, 0, 1, 2},
	}
	for _, c := range cases {
		label := hostlist.Encode(c)
		require.Len(t, label, 4)
		got, err := hostlist.Decode(label)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestEncode_DigitTenIsA(t *testing.T) {
	require.Equal(t, "0A00", hostlist.Encode([4]int{0, 10, 0, 0}))
}

func TestDecode_Errors(t *testing.T) {
	_, err := hostlist.Decode("abc")
	require.ErrorIs(t, err, hostlist.ErrBadLength)

	_, err = hostlist.Decode("0a00")
	require.ErrorIs(t, err, hostlist.ErrBadChar)
}

func TestLastFour(t *testing.T) {
	c, err := hostlist.LastFour("rack17-mp0A12")
	require.NoError(t, err)
	require.Equal(t, [4]int{0, 10, 1, 2}, c)

	_, err = hostlist.LastFour("M0")
	require.ErrorIs(t, err, hostlist.ErrBadLength)
}
