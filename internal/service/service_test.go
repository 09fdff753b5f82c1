package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/pkg/dterr"
	"github.com/raidlog/droptracker/internal/repo"
)

var fixedNow = time.Date(2024, 3, 1, 21, 15, 0, 0, time.UTC)

func testConfig(t *testing.T) *appconfig.Config {
	dir := t.TempDir()
	conf := &appconfig.Config{}
	conf.SettingsPath = filepath.Join(dir, "settings.json")
	conf.ExportDir = filepath.Join(dir, "exports")
	return conf
}

func newTracker() *Tracker {
	tr := NewTracker(NewEvents(nil, &appconfig.Config{}))
	tr.SetClock(func() time.Time { return fixedNow })
	return tr
}

func TestTrackerLogDrop(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()

	d, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidPBHL, Item: model.ItemGoldBar, Chest: model.ChestHost, Honors: model.Honors2m})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), d.DropID)
	assert.Equal(t, "2024-03-01 21:15:00", d.Timestamp)
	assert.Equal(t, null.StringFrom("2m"), d.Honors)

	d, err = tr.LogDrop(ctx, DropInput{Raid: model.RaidAkasha, Item: model.ItemGoldBar, Chest: model.ChestBlue, Honors: model.Honors2m})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.DropID)
	assert.False(t, d.Honors.Valid, "honors only sticks to PBHL drops")

	_, err = tr.LogDrop(ctx, DropInput{Raid: model.RaidNone, Item: model.ItemGoldBar})
	var derr *dterr.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dterr.CodeInvalidRequest, derr.ErrorCode)
	assert.Equal(t, 2, tr.Len())
}

func TestTrackerUndoDrop(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()

	for i := 0; i < 2; i++ {
		_, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidGOHL, Item: model.ItemNoDrop, Chest: model.ChestNone})
		require.NoError(t, err)
	}
	_, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidGOHL, Item: model.ItemGoldBar, Chest: model.ChestBlue})
	require.NoError(t, err)

	assert.True(t, tr.UndoDrop(ctx, model.RaidGOHL, model.ItemNoDrop, model.ChestNone))
	assert.False(t, tr.UndoDrop(ctx, model.RaidGOHL, model.ItemLineageRing, model.ChestBlue))

	recent := tr.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, uint64(2), recent[0].DropID)
	assert.Equal(t, uint64(0), recent[1].DropID)
}

func TestTrackerSummaryHonorsPreference(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()

	inputs := []DropInput{
		{Raid: model.RaidAkasha, Item: model.ItemGoldBar, Chest: model.ChestBlue},
		{Raid: model.RaidAkasha, Item: model.ItemNoDrop, Chest: model.ChestNone},
		{Raid: model.RaidAkasha, Item: model.ItemNoDrop, Chest: model.ChestNone},
		{Raid: model.RaidAkasha, Item: model.ItemGoldBar, Chest: model.ChestHost},
	}
	for _, in := range inputs {
		_, err := tr.LogDrop(ctx, in)
		require.NoError(t, err)
	}

	assert.Equal(t, "Gold Bar: 1 (33.33%)", tr.Percentage(model.RaidAkasha, model.ItemGoldBar, model.ChestBlue, null.Bool{}))
	assert.Equal(t, "Gold Bar: 1 (100.00%)", tr.Percentage(model.RaidAkasha, model.ItemGoldBar, model.ChestBlue, null.BoolFrom(false)))

	prefs := tr.Preferences()
	prefs.DropsByKills = false
	tr.SetPreferences(prefs)

	s, err := tr.RaidSummary(model.RaidAkasha, null.Bool{})
	require.NoError(t, err)
	assert.False(t, s.ByKills)
	assert.Equal(t, 3, s.Kills)
	assert.Equal(t, "Gold Bar: 1 (100.00%)", s.Lines[1].Display)

	_, err = tr.RaidSummary(model.RaidNone, null.Bool{})
	assert.Error(t, err)
}

func TestTrackerQuery(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()
	_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidPBHL, Item: model.ItemGoldBar, Chest: model.ChestHost})
	_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidPBHL, Item: model.ItemGoldBar, Chest: model.ChestBlue})

	got, err := tr.Query(`Raid == "PBHL" && Chest == "Host"`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(0), got[0].DropID)

	_, err = tr.Query(`Raid ==`)
	var derr *dterr.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, dterr.CodeInvalidRequest, derr.ErrorCode)
}

func TestTrackerConcurrentLogDrop(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidXeno, Item: model.ItemEternitySand, Chest: model.ChestFlip})
		}()
	}
	wg.Wait()

	ids := make(map[uint64]struct{})
	for _, d := range tr.Recent(0) {
		ids[d.DropID] = struct{}{}
	}
	assert.Len(t, ids, 50)
}

func TestSettingsPersistence(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t)

	tr := newTracker()
	s := NewSettings(repo.NewSettingsFile(conf), tr)
	require.NoError(t, s.Load(ctx))

	_, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidHLQL, Item: model.ItemVerdantAzurite, Chest: model.ChestBlue})
	require.NoError(t, err)
	_, err = s.UpdatePreferences(ctx, model.Preferences{ResetOnExport: true, RecentLimit: 3})
	require.NoError(t, err)

	written, err := s.Save(ctx)
	require.NoError(t, err)
	assert.False(t, written, "preferences update already wrote the snapshot")

	restored := newTracker()
	require.NoError(t, NewSettings(repo.NewSettingsFile(conf), restored).Load(ctx))
	assert.Equal(t, tr.Snapshot(), restored.Snapshot())

	d, err := restored.LogDrop(ctx, DropInput{Raid: model.RaidHLQL, Item: model.ItemNoDrop, Chest: model.ChestNone})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.DropID)
}

func TestSnapshotKeepsDropIDCounter(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()
	for i := 0; i < 3; i++ {
		_, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidAkasha, Item: model.ItemNoDrop, Chest: model.ChestNone})
		require.NoError(t, err)
	}
	_, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidAkasha, Item: model.ItemGoldBar, Chest: model.ChestBlue})
	require.NoError(t, err)
	require.True(t, tr.UndoDrop(ctx, model.RaidAkasha, model.ItemGoldBar, model.ChestBlue))

	snap := tr.Snapshot()
	assert.Equal(t, uint64(4), snap.NextDropID)

	restored := newTracker()
	restored.Restore(snap)
	d, err := restored.LogDrop(ctx, DropInput{Raid: model.RaidAkasha, Item: model.ItemNoDrop, Chest: model.ChestNone})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), d.DropID, "undone id is not handed out again")

	assert.Equal(t, 4, restored.Clear(ctx))
	cleared := newTracker()
	cleared.Restore(restored.Snapshot())
	d, err = cleared.LogDrop(ctx, DropInput{Raid: model.RaidAkasha, Item: model.ItemNoDrop, Chest: model.ChestNone})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), d.DropID, "ids keep counting after a cleared snapshot")
}

func TestSettingsPersistsDropIDCounter(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t)

	tr := newTracker()
	s := NewSettings(repo.NewSettingsFile(conf), tr)
	require.NoError(t, s.Load(ctx))
	for i := 0; i < 2; i++ {
		_, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidUBHL, Item: model.ItemNoDrop, Chest: model.ChestNone})
		require.NoError(t, err)
	}
	tr.Clear(ctx)
	_, err := s.Save(ctx)
	require.NoError(t, err)

	restored := newTracker()
	require.NoError(t, NewSettings(repo.NewSettingsFile(conf), restored).Load(ctx))
	d, err := restored.LogDrop(ctx, DropInput{Raid: model.RaidUBHL, Item: model.ItemNoDrop, Chest: model.ChestNone})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), d.DropID)
}

func newExport(t *testing.T, conf *appconfig.Config, tr *Tracker) *Export {
	archive := NewArchive(fxtest.NewLifecycle(t), repo.NewDropArchive(nil))
	return NewExport(conf, tr, archive)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t)
	tr := newTracker()
	_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidPBHL, Item: model.ItemGoldBar, Chest: model.ChestHost, Honors: model.Honors1_5m})
	_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidUBHL, Item: model.ItemSilverCentrum, Chest: model.ChestBlue})

	res, err := newExport(t, conf, tr).ExportCSV(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.False(t, res.Cleared)
	assert.Zero(t, res.Archived)
	assert.Equal(t, filepath.Join(conf.ExportDir, "drops-"+res.BatchID+".csv"), res.Path)

	b, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"drop_id,timestamp,raid,item,chest,honors",
		"0,2024-03-01 21:15:00,PBHL,GoldBar,Host,1.5m",
		"1,2024-03-01 21:15:00,UBHL,SilverCentrum,Blue,",
		"",
	}, "\n"), string(b))
	assert.Equal(t, 2, tr.Len())
}

func TestExportCSVResetOnExport(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t)
	tr := newTracker()
	tr.SetPreferences(model.Preferences{ResetOnExport: true})
	_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidQilin, Item: model.ItemGoldBar, Chest: model.ChestMvp})

	res, err := newExport(t, conf, tr).ExportCSV(ctx)
	require.NoError(t, err)
	assert.True(t, res.Cleared)
	assert.Zero(t, tr.Len())

	d, err := tr.LogDrop(ctx, DropInput{Raid: model.RaidQilin, Item: model.ItemNoDrop, Chest: model.ChestNone})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d.DropID, "ids keep counting after a reset")
}

type failingFile struct {
	*os.File
}

func (f failingFile) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestExportCSVRemovesPartialFile(t *testing.T) {
	ctx := context.Background()
	conf := testConfig(t)
	tr := newTracker()
	_, _ = tr.LogDrop(ctx, DropInput{Raid: model.RaidGOHL, Item: model.ItemGoldBar, Chest: model.ChestBlue})

	orig := createExportFile
	createExportFile = func(path string) (io.WriteCloser, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		return failingFile{f}, nil
	}
	t.Cleanup(func() { createExportFile = orig })

	_, err := newExport(t, conf, tr).ExportCSV(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write export file")

	entries, err := os.ReadDir(conf.ExportDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, tr.Len(), "a failed export keeps the ledger")
}

func TestExportCSVEmptyLedger(t *testing.T) {
	conf := testConfig(t)

	res, err := newExport(t, conf, newTracker()).ExportCSV(context.Background())
	require.NoError(t, err)

	b, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "drop_id,timestamp,raid,item,chest,honors\n", string(b))
}

func TestHealthWithoutInfra(t *testing.T) {
	assert.NoError(t, NewHealth(nil, nil).Ping(context.Background()))
}
