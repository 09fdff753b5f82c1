// Package dropquery derives the counters and drop rates shown to the player
// from a drop ledger. Every function here is pure.
package dropquery

import (
	"github.com/samber/lo"

	"github.com/raidlog/droptracker/internal/model"
)

// Source is anything that can count its drops against a predicate.
// *ledger.Ledger satisfies it.
type Source interface {
	CountMatching(pred func(model.ItemDrop) bool) int
}

// Filter selects drops declaratively. An empty field places no constraint.
type Filter struct {
	Raids         []model.Raid
	Items         []model.Item
	Chests        []model.ChestType
	ExcludeChests []model.ChestType
}

func (f Filter) Match(d model.ItemDrop) bool {
	if len(f.Raids) > 0 && !lo.Contains(f.Raids, d.Raid) {
		return false
	}
	if len(f.Items) > 0 && !lo.Contains(f.Items, d.Item) {
		return false
	}
	if len(f.Chests) > 0 && !lo.Contains(f.Chests, d.Chest) {
		return false
	}
	return !lo.Contains(f.ExcludeChests, d.Chest)
}

// Count counts the drops in src selected by any of the filters.
func Count(src Source, filters ...Filter) int {
	return src.CountMatching(func(d model.ItemDrop) bool {
		return lo.SomeBy(filters, func(f Filter) bool {
			return f.Match(d)
		})
	})
}
