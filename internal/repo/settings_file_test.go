package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/model"
)

func newSettingsFile(t *testing.T) *SettingsFile {
	conf := &appconfig.Config{}
	conf.SettingsPath = filepath.Join(t.TempDir(), "nested", "settings.json")
	return NewSettingsFile(conf)
}

func TestSettingsFileFresh(t *testing.T) {
	r := newSettingsFile(t)

	s, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SettingsVersion, s.Version)
	assert.Equal(t, model.DefaultPreferences(), s.Preferences)
	assert.Empty(t, s.Ledger)
}

func TestSettingsFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newSettingsFile(t)

	s := &model.Settings{
		Version:     model.SettingsVersion,
		Preferences: model.Preferences{ResetOnExport: true, RecentLimit: 5},
		Ledger: []model.ItemDrop{
			{DropID: 0, Timestamp: "2024-01-01 20:00:00", Raid: model.RaidPBHL, Item: model.ItemGoldBar, Chest: model.ChestHost, Honors: null.StringFrom("1.8m")},
			{DropID: 3, Timestamp: "2024-01-01 20:10:00", Raid: model.RaidQilin, Item: model.ItemNoDrop, Chest: model.ChestNone},
		},
	}

	written, err := r.Save(ctx, s)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = r.Save(ctx, s)
	require.NoError(t, err)
	assert.False(t, written, "unchanged settings must not be rewritten")

	loaded, err := newSettingsFileAt(r.Path()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	s.Preferences.ShowHonors = true
	written, err = r.Save(ctx, s)
	require.NoError(t, err)
	assert.True(t, written)
}

func newSettingsFileAt(path string) *SettingsFile {
	conf := &appconfig.Config{}
	conf.SettingsPath = path
	return NewSettingsFile(conf)
}

func TestSettingsFileLegacy(t *testing.T) {
	r := newSettingsFile(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(r.Path()), 0o755))
	legacy := `{
		"reset_on_export": true,
		"drops_by_kills": false,
		"drop_log": [
			{"drop_id": 0, "timestamp": "2023-12-24 19:00:00", "raid": "Akasha", "item": "GoldBar", "chest": "Blue", "honors": null}
		]
	}`
	require.NoError(t, os.WriteFile(r.Path(), []byte(legacy), 0o644))

	s, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SettingsVersion, s.Version)
	assert.True(t, s.Preferences.ResetOnExport)
	assert.False(t, s.Preferences.DropsByKills)
	assert.True(t, s.Preferences.ShowHonors, "preferences absent from the legacy blob keep their defaults")
	require.Len(t, s.Ledger, 1)
	assert.Equal(t, model.RaidAkasha, s.Ledger[0].Raid)
}

func TestMigrate(t *testing.T) {
	current := []byte(`{"version":1,"preferences":{},"ledger":[]}`)
	out, err := Migrate(current)
	require.NoError(t, err)
	assert.Equal(t, current, out)

	out, err = Migrate([]byte(`{"show_honors":false,"drop_log":[]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.GetBytes(out, "version").Int())
	assert.False(t, gjson.GetBytes(out, "drop_log").Exists())
	assert.True(t, gjson.GetBytes(out, "ledger").IsArray())
	assert.Equal(t, "false", gjson.GetBytes(out, "preferences.show_honors").Raw)

	_, err = Migrate([]byte(`{"version":7}`))
	assert.True(t, errors.Is(err, ErrUnsupportedSettingsVersion))

	_, err = Migrate([]byte(`{not json`))
	assert.Error(t, err)
}

func TestSettingsFileRejectsUnknownEnum(t *testing.T) {
	r := newSettingsFile(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(r.Path()), 0o755))
	blob := `{"version":1,"preferences":{},"ledger":[{"drop_id":0,"timestamp":"","raid":"Lucilius","item":"GoldBar","chest":"Blue","honors":null}]}`
	require.NoError(t, os.WriteFile(r.Path(), []byte(blob), 0o644))

	_, err := r.Load(context.Background())
	assert.Error(t, err)
}
