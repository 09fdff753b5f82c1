// Package ledger holds the ordered, append-only log of drops recorded during
// a raiding session.
package ledger

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/model"
)

// Ledger is an ordered sequence of drops. Insertion order is significant: it
// drives the recent drops feed and the export row order.
//
// A Ledger is not safe for concurrent use; its owner serializes access.
type Ledger struct {
	drops []model.ItemDrop

	// nextID is the id handed out by the next Append. It only ever grows, so
	// ids stay unique after removals.
	nextID uint64
}

func New() *Ledger {
	return &Ledger{}
}

// FromSnapshot rebuilds a ledger from persisted records, keeping their order
// and ids. The next id is the larger of nextID and one past the highest id
// seen, so snapshots written before the counter was persisted still load.
func FromSnapshot(records []model.ItemDrop, nextID uint64) *Ledger {
	l := &Ledger{drops: make([]model.ItemDrop, len(records)), nextID: nextID}
	copy(l.drops, records)
	for _, d := range records {
		if d.DropID >= l.nextID {
			l.nextID = d.DropID + 1
		}
	}
	return l
}

// Append records a drop and returns its id.
func (l *Ledger) Append(raid model.Raid, item model.Item, chest model.ChestType, honors null.String, timestamp string) uint64 {
	id := l.nextID
	l.nextID++
	l.drops = append(l.drops, model.ItemDrop{
		DropID:    id,
		Timestamp: timestamp,
		Raid:      raid,
		Item:      item,
		Chest:     chest,
		Honors:    honors,
	})
	return id
}

// RemoveLastMatching removes the most recently appended drop logged as
// (raid, item, chest) and reports whether one was found.
func (l *Ledger) RemoveLastMatching(raid model.Raid, item model.Item, chest model.ChestType) bool {
	_, removed := l.removeLast(func(d model.ItemDrop) bool {
		return d.Matches(raid, item, chest)
	})
	return removed
}

// PopLastMatching is RemoveLastMatching that also hands back the removed drop.
func (l *Ledger) PopLastMatching(raid model.Raid, item model.Item, chest model.ChestType) (model.ItemDrop, bool) {
	return l.removeLast(func(d model.ItemDrop) bool {
		return d.Matches(raid, item, chest)
	})
}

func (l *Ledger) removeLast(pred func(model.ItemDrop) bool) (model.ItemDrop, bool) {
	for i := len(l.drops) - 1; i >= 0; i-- {
		if pred(l.drops[i]) {
			d := l.drops[i]
			l.drops = append(l.drops[:i], l.drops[i+1:]...)
			return d, true
		}
	}
	return model.ItemDrop{}, false
}

// CountMatching counts the drops satisfying pred.
func (l *Ledger) CountMatching(pred func(model.ItemDrop) bool) int {
	return lo.CountBy(l.drops, pred)
}

// Clear empties the ledger. Ids are not reused afterwards.
func (l *Ledger) Clear() {
	l.drops = nil
}

// NextID is the id the next Append will hand out.
func (l *Ledger) NextID() uint64 {
	return l.nextID
}

func (l *Ledger) Len() int {
	return len(l.drops)
}

// Records returns a copy of the drops in insertion order.
func (l *Ledger) Records() []model.ItemDrop {
	out := make([]model.ItemDrop, len(l.drops))
	copy(out, l.drops)
	return out
}

// Recent returns up to limit drops, newest first. A non-positive limit
// returns every drop.
func (l *Ledger) Recent(limit int) []model.ItemDrop {
	out := lo.Reverse(l.Records())
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Rows returns the drops as flat tuples in insertion order, in the column
// order of model.RowHeader.
func (l *Ledger) Rows() [][]string {
	return lo.Map(l.drops, func(d model.ItemDrop, _ int) []string {
		return d.Row()
	})
}
