package hostlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holodeck-hpc/torusba/hostlist"
)

func TestJoin(t *testing.T) {
	require.Equal(t, "", hostlist.Join(nil))
	require.Equal(t, "R000", hostlist.Join([]string{"R000"}))
	require.Equal(t, "R000,R001", hostlist.Join([]string{"R000", "R001"}))
}
