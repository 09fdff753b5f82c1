package model

import (
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// TimestampLayout is the layout drop timestamps are recorded with.
const TimestampLayout = "2006-01-02 15:04:05"

// ItemDrop is one logged drop. Records are immutable once created; they can
// only be removed as a whole.
type ItemDrop struct {
	DropID    uint64      `json:"drop_id"`
	Timestamp string      `json:"timestamp"`
	Raid      Raid        `json:"raid"`
	Item      Item        `json:"item"`
	Chest     ChestType   `json:"chest"`
	Honors    null.String `json:"honors"`
}

// Matches reports whether the record was logged as the given (raid, item, chest).
func (d ItemDrop) Matches(raid Raid, item Item, chest ChestType) bool {
	return d.Raid == raid && d.Item == item && d.Chest == chest
}

// Row flattens the record into the tabular export field order:
// drop_id, timestamp, raid, item, chest, honors.
func (d ItemDrop) Row() []string {
	return []string{
		strconv.FormatUint(d.DropID, 10),
		d.Timestamp,
		d.Raid.String(),
		d.Item.String(),
		d.Chest.String(),
		d.Honors.String,
	}
}

// RowHeader names the columns produced by ItemDrop.Row.
var RowHeader = []string{"drop_id", "timestamp", "raid", "item", "chest", "honors"}
