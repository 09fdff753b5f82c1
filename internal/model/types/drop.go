package types

import (
	"github.com/raidlog/droptracker/internal/dropquery"
	"github.com/raidlog/droptracker/internal/model"
)

type LogDropRequest struct {
	Raid   string `json:"raid" validate:"required,raid"`
	Item   string `json:"item" validate:"required,item"`
	Chest  string `json:"chest" validate:"required,chest"`
	Honors string `json:"honors" validate:"honors"`
}

type LogDropResponse struct {
	DropID uint64         `json:"dropId"`
	Drop   model.ItemDrop `json:"drop"`
}

type UndoDropRequest struct {
	Raid  string `json:"raid" validate:"required,raid"`
	Item  string `json:"item" validate:"required,item"`
	Chest string `json:"chest" validate:"required,chest"`
}

type UndoDropResponse struct {
	Removed bool `json:"removed"`
}

type DropsQuery struct {
	// Limit bounds the recent feed; zero applies the RecentLimit preference.
	Limit int `query:"limit" validate:"gte=0,lte=10000"`
	// Filter is an expression over drop fields. When set the matching drops
	// are returned oldest first instead of the recent feed.
	Filter string `query:"filter" validate:"max=512"`
}

type DropsResponse struct {
	Drops []model.ItemDrop `json:"drops"`
}

type PercentageQuery struct {
	Item  string `query:"item" validate:"required,item"`
	Chest string `query:"chest" validate:"required,chest"`
}

type PercentageResponse struct {
	Display string `json:"display"`
}

type RaidSummaryResponse struct {
	dropquery.Summary
	Breakdown []dropquery.Tally `json:"breakdown"`
	Honors    map[string]int    `json:"honors,omitempty"`
}

type CounterEntry struct {
	Item  model.Item      `json:"item"`
	Chest model.ChestType `json:"chest"`
	Label string          `json:"label"`
}

type RaidEntry struct {
	Raid     model.Raid     `json:"raid"`
	Counters []CounterEntry `json:"counters"`
	// HonorsTiers is only listed for raids recording honors.
	HonorsTiers []model.Honors `json:"honorsTiers,omitempty"`
}

type RaidsResponse struct {
	Raids []RaidEntry `json:"raids"`
}
