package tools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical"
	tu "github.com/opendaylight/vtn-sub010/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string) string {
	path := filepath.Join(dir, "physdec.yml")
	cfg := "log_level: warn\nstore_dir: " + filepath.Join(dir, "store") + "\nvendor_names:\n  odc: OpenDaylight\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func switchCapture(t *testing.T, dir string) string {
	stream := ipc.Stream{
		ipc.Uint32(physical.KeyTypeSwitch),
		ipc.NewStruct("key_switch").SetValid("switch_id", ipc.String("s1")),
		ipc.NewStruct("val_switch_st").
			SetValid("oper_status", ipc.Uint8(1)).
			SetInner("switch", ipc.NewStruct("val_switch").SetValid("description", ipc.String("hello"))),
	}
	path := filepath.Join(dir, "switch.cap")
	require.NoError(t, os.WriteFile(path, ipc.EncodeStream(stream), 0644))
	return path
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	s := &settings{configFile: writeConfig(t, dir)}
	file := switchCapture(t, dir)

	out := &bytes.Buffer{}
	require.NoError(t, (&Decode{settings: s, show: true}).exec(out, []string{"switch", file}))
	require.JSONEq(t, `{"switch":{"switchid":"s1","description":"hello","operstatus":"up"}}`, out.String())

	out.Reset()
	require.NoError(t, (&Decode{settings: s}).exec(out, []string{"switch", file}))
	require.JSONEq(t, `{"switches":[{"switchid":"s1"}]}`, out.String())

	require.Error(t, (&Decode{settings: s, op: "bogus"}).exec(out, []string{"switch", file}))
	require.Error(t, (&Decode{settings: s}).exec(out, []string{"vtn", file}))
	require.Error(t, (&Decode{settings: s}).exec(out, []string{"switch", filepath.Join(dir, "missing")}))
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}

	missing := &settings{configFile: filepath.Join(dir, "missing.yml")}
	require.Error(t, (&Decode{settings: missing}).exec(out, []string{"switch", "-"}))

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("log_level: warn\nunknown_key: 1\n"), 0644))
	_, err := (&settings{configFile: bad}).load()
	require.Error(t, err)

	_, err = (&settings{configFile: writeConfig(t, dir), logLevel: "loud"}).load()
	require.Error(t, err)

	cfg, err := (&settings{configFile: writeConfig(t, dir), logLevel: "error"}).load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestCaptureWithoutStore(t *testing.T) {
	dir := t.TempDir()
	file := switchCapture(t, dir)
	tool := &Capture{settings: &settings{}}
	err := tool.exec(tool.put, &bytes.Buffer{}, []string{"switch", file})
	require.ErrorContains(t, err, "store_dir")
}

func TestEncodeAndDump(t *testing.T) {
	dir := t.TempDir()
	s := &settings{configFile: writeConfig(t, dir)}
	req := filepath.Join(dir, "req.json")
	require.NoError(t, os.WriteFile(req,
		[]byte(`{"controller":{"controllerid":"c1","type":"OpenDaylight","ipaddr":"10.0.0.1"}}`), 0644))
	capFile := filepath.Join(dir, "req.cap")

	require.NoError(t, (&Encode{settings: s, outFile: capFile}).exec(&bytes.Buffer{}, []string{"controller", req}))

	tu.SetT(t)
	stream := tu.NoErr(ipc.ParseStream(tu.NoErr(os.ReadFile(capFile))))
	require.Len(t, stream, 3)
	v, _ := stream[2].(*ipc.Struct).Lookup("type")
	require.Equal(t, ipc.Uint8(4), v)

	out := &bytes.Buffer{}
	require.NoError(t, (&Dump{settings: s}).exec(out, []string{capFile}))
	require.True(t, strings.HasPrefix(out.String(), "   bytes="))
	require.Contains(t, out.String(), " records=3\n")
	require.Contains(t, out.String(), "key_ctr")
}

func TestCaptureStore(t *testing.T) {
	dir := t.TempDir()
	s := &settings{configFile: writeConfig(t, dir)}
	file := switchCapture(t, dir)
	tool := &Capture{settings: s}

	out := &bytes.Buffer{}
	require.NoError(t, tool.exec(tool.put, out, []string{"switch", file}))
	id := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(id, "switch/"))

	out.Reset()
	require.NoError(t, tool.exec(tool.list, out, []string{"switch"}))
	require.Equal(t, id+"\n", out.String())

	out.Reset()
	require.NoError(t, (&Decode{settings: s, show: true, fromStore: true}).exec(out, []string{"switch", id}))
	require.JSONEq(t, `{"switch":{"switchid":"s1","description":"hello","operstatus":"up"}}`, out.String())

	require.NoError(t, tool.exec(tool.remove, &bytes.Buffer{}, []string{id}))
	require.Error(t, tool.exec(tool.remove, &bytes.Buffer{}, []string{id}))
	require.Error(t, tool.exec(tool.get, &bytes.Buffer{}, []string{id}))

	bad := filepath.Join(dir, "bad.cap")
	require.NoError(t, os.WriteFile(bad, []byte{0x01, 0x02}, 0644))
	require.Error(t, tool.exec(tool.put, &bytes.Buffer{}, []string{"switch", bad}))
}
