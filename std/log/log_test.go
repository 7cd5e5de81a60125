package log_test

import (
	"bytes"
	"testing"

	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "decoder" }

func TestParseLevel(t *testing.T) {
	level, err := log.ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, log.LevelDebug, level)

	level, err = log.ParseLevel("TRACE")
	require.NoError(t, err)
	require.Equal(t, log.LevelTrace, level)

	_, err = log.ParseLevel("verbose")
	require.Error(t, err)
	require.Equal(t, "UNKNOWN", log.Level(3).String())
}

func TestLoggerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.NewText(buf)

	l.Debug(testTag{}, "hidden")
	require.Empty(t, buf.String())

	prev := l.SetLevel(log.LevelDebug)
	require.Equal(t, log.LevelInfo, prev)
	l.Debug(testTag{}, "shown", "ordinal", 7)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "tag=decoder")
	require.Contains(t, buf.String(), "ordinal=7")
}

func TestLoggerJson(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.NewJson(buf)
	l.Warn("capture", "store slow")
	require.Contains(t, buf.String(), `"level":"WARN"`)
	require.Contains(t, buf.String(), `"tag":"capture"`)
}
