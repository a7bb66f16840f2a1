package main

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestReplay_run(t *testing.T) {
	t.Parallel()

	log, hook := test.NewNullLogger()
	log.SetOutput(io.Discard)

	s := &scenario{
		Universe: request{Index: 0, Length: 100},
		Allocs: []request{
			{Index: 25, Length: 50},
			{Index: 30, Length: 5},
			{Index: 99, Length: 1},
			{Index: 95, Length: 10},
		},
	}

	var out strings.Builder

	require.NoError(t, (&Replay{}).run(&out, log, s))

	require.Equal(t, strings.Join([]string{
		"[25, 75)\tgranted",
		"[30, 35)\trejected",
		"[99, 100)\tgranted",
		"[95, 105)\trejected",
		"free [[0, 25) [75, 99)] (49)",
		"",
	}, "\n"), out.String())

	// Only the two rejections are logged at the default level.
	require.Len(t, hook.AllEntries(), 2)
	require.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	require.Equal(t, int64(95), hook.LastEntry().Data["index"])
	require.Equal(t, 3, hook.LastEntry().Data["request"])
}

func TestReplay_runDump(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()

	s := &scenario{
		Universe: request{Index: 0, Length: 10},
		Allocs: []request{
			{Index: 4, Length: 2},
		},
	}

	var out strings.Builder

	require.NoError(t, (&Replay{dump: true}).run(&out, log, s))

	require.Equal(t, strings.Join([]string{
		"[4, 6)\tgranted",
		"[0, 10) sub",
		"  [0, 4) leaf",
		"  [6, 10) leaf",
		"free [[0, 4) [6, 10)] (8)",
		"",
	}, "\n"), out.String())
}
