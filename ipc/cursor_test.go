package ipc_test

import (
	"errors"
	"testing"

	"github.com/opendaylight/vtn-sub010/ipc"
	tu "github.com/opendaylight/vtn-sub010/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestCursorNext(t *testing.T) {
	tu.SetT(t)

	key := ipc.NewStruct("key_ctr").SetValid("controller_name", ipc.String("ctr1"))
	c := ipc.NewCursor(ipc.Stream{ipc.Uint32(0x200), key, ipc.String("tail")})
	require.Equal(t, 3, c.Len())
	require.Equal(t, 3, c.Remaining())

	require.Equal(t, uint64(0x200), tu.NoErr(c.NextUint()))
	require.Same(t, key, tu.NoErr(c.NextStruct()))
	require.Equal(t, 1, c.Remaining())

	// wrong record type still consumes the record
	err := tu.Err(c.NextStruct())
	var rt ipc.ErrRecordType
	require.True(t, errors.As(err, &rt))
	require.Equal(t, 2, rt.Pos)
	require.Equal(t, ipc.KindString, rt.Got)
	require.True(t, errors.Is(err, ipc.ErrProtocol))
	require.Equal(t, 0, c.Remaining())
}

func TestCursorUnderrun(t *testing.T) {
	tu.SetT(t)

	c := ipc.NewCursor(ipc.Stream{ipc.Uint8(1)})
	require.NoError(t, c.Skip(1))

	err := tu.Err(c.Next())
	require.Equal(t, ipc.ErrStreamUnderrun{Pos: 1, Len: 1}, err)
	require.True(t, errors.Is(err, ipc.ErrProtocol))

	c = ipc.NewCursor(ipc.Stream{ipc.Uint8(1), ipc.Uint8(2)})
	require.Error(t, c.Skip(3))
	require.Equal(t, 0, c.Pos())
	require.Error(t, c.Skip(-1))
}

func TestCursorExactness(t *testing.T) {
	tu.SetT(t)

	stream := ipc.Stream{}
	for i := 0; i < 4; i++ {
		stream = append(stream, ipc.Uint32(1), ipc.NewStruct("key"), ipc.NewStruct("val"))
	}
	c := ipc.NewCursor(stream)
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Skip(3))
	}
	require.Equal(t, len(stream)-9, c.Remaining())
}
