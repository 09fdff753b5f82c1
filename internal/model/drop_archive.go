package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// DropArchive is an exported drop kept in the archive database.
type DropArchive struct {
	bun.BaseModel `bun:"drop_archives,alias:da"`

	ArchiveID  int         `bun:"archive_id,pk,autoincrement" json:"id"`
	BatchID    string      `bun:"batch_id" json:"batchId"`
	DropID     uint64      `bun:"drop_id" json:"dropId"`
	Timestamp  string      `bun:"timestamp" json:"timestamp"`
	Raid       string      `bun:"raid" json:"raid"`
	Item       string      `bun:"item" json:"item"`
	Chest      string      `bun:"chest" json:"chest"`
	Honors     null.String `bun:"honors" json:"honors"`
	ArchivedAt *time.Time  `bun:"archived_at" json:"archivedAt"`
}

func NewDropArchive(batchID string, d ItemDrop, at time.Time) *DropArchive {
	return &DropArchive{
		BatchID:    batchID,
		DropID:     d.DropID,
		Timestamp:  d.Timestamp,
		Raid:       d.Raid.String(),
		Item:       d.Item.String(),
		Chest:      d.Chest.String(),
		Honors:     d.Honors,
		ArchivedAt: &at,
	}
}
