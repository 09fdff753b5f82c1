package filterexpr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/model"
)

var records = []model.ItemDrop{
	{DropID: 0, Timestamp: "2024-01-01 20:00:00", Raid: model.RaidPBHL, Item: model.ItemGoldBar, Chest: model.ChestHost, Honors: null.StringFrom("2m")},
	{DropID: 1, Timestamp: "2024-01-01 20:05:00", Raid: model.RaidPBHL, Item: model.ItemNoDrop, Chest: model.ChestNone},
	{DropID: 2, Timestamp: "2024-01-02 21:00:00", Raid: model.RaidAkasha, Item: model.ItemGoldBar, Chest: model.ChestBlue},
}

func TestSelect(t *testing.T) {
	type testCase struct {
		source string
		want   []uint64
	}

	cases := []testCase{
		{source: `Raid == "PBHL" && Chest == "Host"`, want: []uint64{0}},
		{source: `Item == "GoldBar"`, want: []uint64{0, 2}},
		{source: `Honors != ""`, want: []uint64{0}},
		{source: `DropID >= 1`, want: []uint64{1, 2}},
		{source: `Timestamp startsWith "2024-01-02"`, want: []uint64{2}},
		{source: `Raid in ["Akasha", "GOHL"] || DropID == 1`, want: []uint64{1, 2}},
		{source: `false`, want: []uint64{}},
	}

	for _, tc := range cases {
		source, want := tc.source, tc.want
		f, err := Compile(source)
		require.NoError(t, err, source)

		got, err := f.Select(records)
		require.NoError(t, err, source)

		ids := make([]uint64, 0, len(got))
		for _, d := range got {
			ids = append(ids, d.DropID)
		}
		assert.Equal(t, want, ids, source)
	}
}

func TestCompileRejects(t *testing.T) {
	for _, source := range []string{`Raid + 1`, `Boss == "x"`, `Raid ==`} {
		_, err := Compile(source)
		assert.True(t, errors.Is(err, ErrInvalidExpr), source)
	}
}
