package physical_test

import (
	"testing"

	"github.com/opendaylight/vtn-sub010/physical"
	tu "github.com/opendaylight/vtn-sub010/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestParseContext(t *testing.T) {
	tu.SetT(t)

	ctx := tu.NoErr(physical.ParseContext(nil, physical.List))
	require.Equal(t, physical.Context{
		Operation:    physical.OpNormal,
		Presentation: physical.List,
		Target:       physical.TargetState,
	}, ctx)
	require.False(t, ctx.Detailed())

	ctx = tu.NoErr(physical.ParseContext([]byte(`{"op":"detail","targetdb":"running"}`), physical.List))
	require.Equal(t, physical.OpDetail, ctx.Operation)
	require.Equal(t, physical.TargetRunning, ctx.Target)
	require.True(t, ctx.Detailed())

	ctx = tu.NoErr(physical.ParseContext([]byte(`{"op":"COUNT"}`), physical.Show))
	require.Equal(t, physical.OpCount, ctx.Operation)
	require.Equal(t, physical.TargetState, ctx.Target)
	require.True(t, ctx.Detailed())

	err := tu.Err(physical.ParseContext([]byte(`{"op":"sideways"}`), physical.Show))
	require.Equal(t, physical.ErrMalformedValue{Field: "op", Value: "sideways"}, err)
	tu.Err(physical.ParseContext([]byte(`{"targetdb":"candidate"}`), physical.Show))
	tu.Err(physical.ParseContext([]byte(`{"op":`), physical.Show))
}
