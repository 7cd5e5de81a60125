package capture_test

import (
	"testing"

	"github.com/opendaylight/vtn-sub010/capture"
	"github.com/opendaylight/vtn-sub010/ipc"
	tu "github.com/opendaylight/vtn-sub010/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestId(t *testing.T) {
	id := capture.Id("switch", []byte{0x80, 0x00})
	require.Regexp(t, `^switch/[0-9a-f]{16}$`, id)
	require.Equal(t, id, capture.Id("switch", []byte{0x80, 0x00}))
	require.NotEqual(t, id, capture.Id("port", []byte{0x80, 0x00}))
	require.Equal(t, "switch", capture.KindOf(id))
}

func testStoreBasic(t *testing.T, store capture.Store) {
	tu.SetT(t)
	wire1 := []byte{0x01, 0x02, 0x03}
	wire2 := []byte{0x04, 0x05, 0x06}

	// get when empty
	data, err := store.Get(capture.Id("switch", wire1))
	require.NoError(t, err)
	require.Nil(t, data)
	require.Empty(t, tu.NoErr(store.List("")))

	id1 := tu.NoErr(store.Put("switch", wire1))
	id2 := tu.NoErr(store.Put("switch", wire2))
	id3 := tu.NoErr(store.Put("port", wire1))
	require.Equal(t, id1, tu.NoErr(store.Put("switch", wire1)))
	require.NotEqual(t, id1, id3)

	require.Equal(t, wire1, tu.NoErr(store.Get(id1)))
	require.Equal(t, wire2, tu.NoErr(store.Get(id2)))

	require.ElementsMatch(t, []string{id1, id2}, tu.NoErr(store.List("switch")))
	require.Equal(t, []string{id3}, tu.NoErr(store.List("port")))
	require.Len(t, tu.NoErr(store.List("")), 3)
	require.Empty(t, tu.NoErr(store.List("swi")))

	require.NoError(t, store.Remove(id1))
	require.Nil(t, tu.NoErr(store.Get(id1)))
	require.Equal(t, []string{id2}, tu.NoErr(store.List("switch")))

	tu.Err(store.Put("", wire1))
	tu.Err(store.Put("a/b", wire1))
}

func testStoreStream(t *testing.T, store capture.Store) {
	tu.SetT(t)
	stream := ipc.Stream{
		ipc.Uint32(0x201),
		ipc.NewStruct("key_switch").SetValid("switch_id", ipc.String("s1")),
		ipc.Uint32(3),
	}
	id := tu.NoErr(capture.PutStream(store, "switch", stream))
	got := tu.NoErr(capture.GetStream(store, id))
	require.Equal(t, ipc.EncodeStream(stream), ipc.EncodeStream(got))

	tu.Err(capture.GetStream(store, "switch/0000000000000000"))
}

func TestMemoryStore(t *testing.T) {
	store := capture.NewMemoryStore()
	testStoreBasic(t, store)
	testStoreStream(t, store)
	require.NoError(t, store.Close())
}

func TestBadgerStore(t *testing.T) {
	tu.SetT(t)
	store := tu.NoErr(capture.NewBadgerStore(t.TempDir()))
	testStoreBasic(t, store)
	testStoreStream(t, store)
	require.NoError(t, store.Close())
}
