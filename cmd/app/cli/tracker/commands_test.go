package tracker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
)

type cliEnv struct {
	app          *cli.App
	out          *bytes.Buffer
	settingsPath string
	exportDir    string
}

func newCLIEnv(t *testing.T) *cliEnv {
	dir := t.TempDir()
	e := &cliEnv{
		out:          &bytes.Buffer{},
		settingsPath: filepath.Join(dir, "settings.json"),
		exportDir:    filepath.Join(dir, "exports"),
	}
	t.Setenv("DROPTRACKER_SETTINGS_PATH", e.settingsPath)
	t.Setenv("DROPTRACKER_EXPORT_DIR", e.exportDir)
	t.Setenv("DROPTRACKER_LOG_FILE", "")
	t.Setenv("DROPTRACKER_POSTGRES_DSN", "")
	t.Setenv("DROPTRACKER_NATS_URL", "")
	t.Setenv("DROPTRACKER_INFRA_CONNECT_ATTEMPTS", "1")

	e.app = &cli.App{
		Name:     "droptracker",
		Writer:   e.out,
		Commands: Commands(),
	}
	return e
}

// run executes one command in a fresh app, the way separate CLI invocations
// do, and returns what it printed.
func (e *cliEnv) run(t *testing.T, args ...string) string {
	t.Helper()
	e.out.Reset()
	require.NoError(t, e.app.Run(append([]string{"droptracker"}, args...)))
	return e.out.String()
}

func (e *cliEnv) snapshot(t *testing.T) gjson.Result {
	t.Helper()
	b, err := os.ReadFile(e.settingsPath)
	require.NoError(t, err)
	return gjson.ParseBytes(b)
}

func TestRecordAndUndo(t *testing.T) {
	e := newCLIEnv(t)

	assert.Equal(t, "logged drop #0\n", e.run(t, "record", "--raid", "Akasha", "--item", "NoDrop", "--chest", "None"))
	assert.Equal(t, "logged drop #1\n", e.run(t, "record", "-r", "Akasha", "-i", "NoDrop", "-c", "None"))
	assert.Equal(t, "logged drop #2\n", e.run(t, "record", "-r", "Akasha", "-i", "GoldBar"))

	assert.Equal(t, "removed\n", e.run(t, "undo", "-r", "Akasha", "-i", "GoldBar"))
	assert.Equal(t, "nothing to undo\n", e.run(t, "undo", "-r", "Akasha", "-i", "GoldBar"))

	assert.Equal(t, "logged drop #3\n", e.run(t, "record", "-r", "Akasha", "-i", "GoldBar"))

	snap := e.snapshot(t)
	assert.Equal(t, int64(3), snap.Get("ledger.#").Int())
	assert.Equal(t, int64(4), snap.Get("next_drop_id").Int())
	ids := lo.Map(snap.Get("ledger.#.drop_id").Array(), func(r gjson.Result, _ int) int64 {
		return r.Int()
	})
	assert.Equal(t, []int64{0, 1, 3}, ids)
}

func TestRecordRejectsUnknownNames(t *testing.T) {
	e := newCLIEnv(t)

	assert.Error(t, e.app.Run([]string{"droptracker", "record", "-r", "Nowhere", "-i", "GoldBar"}))
	assert.Error(t, e.app.Run([]string{"droptracker", "record", "-r", "Akasha", "-i", "GoldBar", "-c", "Purple"}))
	assert.Error(t, e.app.Run([]string{"droptracker", "record", "-r", "None", "-i", "GoldBar"}))
}

func TestStatsRecentQuery(t *testing.T) {
	e := newCLIEnv(t)
	e.run(t, "record", "-r", "Akasha", "-i", "NoDrop", "-c", "None")
	e.run(t, "record", "-r", "Akasha", "-i", "NoDrop", "-c", "None")
	e.run(t, "record", "-r", "Akasha", "-i", "GoldBar")
	e.run(t, "record", "-r", "PBHL", "-i", "GoldBar", "-c", "Host", "--honors", "2m")

	out := e.run(t, "stats", "-r", "Akasha")
	assert.Contains(t, out, "3 kills")
	assert.Contains(t, out, "No Drop: 2")
	assert.Contains(t, out, "Gold Bar: 1 (33.33%)")

	out = e.run(t, "stats", "-r", "Akasha", "--by-kills=false")
	assert.Contains(t, out, "Gold Bar: 1 (100.00%)")

	out = e.run(t, "stats", "-r", "PBHL")
	assert.Contains(t, out, "honors 2m: 1")

	lines := strings.Split(strings.TrimSpace(e.run(t, "recent", "-n", "2")), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#3\t"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "\tPBHL\tGoldBar\tHost\t2m"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "#2\t"), lines[1])

	lines = strings.Split(strings.TrimSpace(e.run(t, "query", `Item == "NoDrop"`)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "#0\t"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "#1\t"), lines[1])

	assert.Error(t, e.app.Run([]string{"droptracker", "query", "Item =="}))
}

func TestExport(t *testing.T) {
	e := newCLIEnv(t)
	e.run(t, "record", "-r", "Xeno", "-i", "EternitySand", "-c", "Flip")

	out := e.run(t, "export")
	assert.True(t, strings.HasPrefix(out, "exported 1 drops to "+e.exportDir), out)
	assert.Contains(t, out, "(cleared: false, archived: 0)")

	entries, err := os.ReadDir(e.exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	b, err := os.ReadFile(filepath.Join(e.exportDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(b), ",Xeno,EternitySand,Flip,")

	assert.Equal(t, int64(1), e.snapshot(t).Get("ledger.#").Int())
}
