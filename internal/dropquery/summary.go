package dropquery

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/raidlog/droptracker/internal/model"
)

type Line struct {
	Item    model.Item      `json:"item"`
	Chest   model.ChestType `json:"chest"`
	Dropped int             `json:"dropped"`
	Display string          `json:"display"`
}

// Summary is everything a raid panel renders.
type Summary struct {
	Raid    model.Raid `json:"raid"`
	Kills   int        `json:"kills"`
	Chests  int        `json:"chests"`
	ByKills bool       `json:"byKills"`
	Lines   []Line     `json:"lines"`
}

// Summarize evaluates every counter of raid's counter table.
func Summarize(src Source, raid model.Raid, byKills bool) Summary {
	return Summary{
		Raid:    raid,
		Kills:   TotalForRaid(src, raid),
		Chests:  TotalChests(src, raid),
		ByKills: byKills,
		Lines: lo.Map(Counters(raid), func(c Counter, _ int) Line {
			return Line{
				Item:    c.Item,
				Chest:   c.Chest,
				Dropped: Dropped(src, raid, c.Item, c.Chest),
				Display: PercentageForItem(src, raid, c.Item, c.Chest, byKills),
			}
		}),
	}
}

// Tally is the number of drops logged for one (item, chest) pair.
type Tally struct {
	Item  model.Item      `json:"item"`
	Chest model.ChestType `json:"chest"`
	Count int             `json:"count"`
}

// Breakdown groups the drops of raid by (item, chest), including pairs that
// are not part of the raid's counter table. Results are ordered by item, then
// chest.
func Breakdown(records []model.ItemDrop, raid model.Raid) []Tally {
	var tallies []Tally
	linq.From(records).
		WhereT(func(d model.ItemDrop) bool { return d.Raid == raid }).
		GroupByT(
			func(d model.ItemDrop) Counter { return Counter{Item: d.Item, Chest: d.Chest} },
			func(d model.ItemDrop) model.ItemDrop { return d },
		).
		SelectT(func(g linq.Group) Tally {
			key := g.Key.(Counter)
			return Tally{Item: key.Item, Chest: key.Chest, Count: len(g.Group)}
		}).
		OrderByT(func(t Tally) int { return int(t.Item) }).
		ThenByT(func(t Tally) int { return int(t.Chest) }).
		ToSlice(&tallies)
	return tallies
}

// HonorsBreakdown counts PBHL drops per recorded honors tier. Drops without a
// tier are not counted.
func HonorsBreakdown(records []model.ItemDrop) map[string]int {
	out := make(map[string]int)
	linq.From(records).
		WhereT(func(d model.ItemDrop) bool { return d.Raid == model.RaidPBHL && d.Honors.Valid }).
		GroupByT(
			func(d model.ItemDrop) string { return d.Honors.String },
			func(d model.ItemDrop) model.ItemDrop { return d },
		).
		ToMapByT(&out,
			func(g linq.Group) string { return g.Key.(string) },
			func(g linq.Group) int { return len(g.Group) },
		)
	return out
}
