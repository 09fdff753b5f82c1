package dropquery

import (
	"fmt"

	"github.com/raidlog/droptracker/internal/model"
)

// hostsBucket is the shared host bar pool: UBHL and Xeno kills, PBHL host
// chests and every Huanglong, Qilin and HLQL kill feed the same counter.
var hostsBucket = []Filter{
	{Raids: []model.Raid{model.RaidUBHL, model.RaidXeno}},
	{Raids: []model.Raid{model.RaidPBHL}, Chests: []model.ChestType{model.ChestHost}},
	{Raids: []model.Raid{model.RaidHuanglong, model.RaidQilin, model.RaidHLQL}},
}

var bars = []model.ChestType{model.ChestHost, model.ChestFlip}

// TotalForRaid counts the kills logged for raid. Host and flip bar drops are
// bonus rewards and are left out, except for UBHL and Xeno whose total is the
// shared hosts bucket.
func TotalForRaid(src Source, raid model.Raid) int {
	if raid == model.RaidUBHL || raid == model.RaidXeno {
		return Count(src, hostsBucket...)
	}
	return Count(src, Filter{
		Raids:         []model.Raid{raid},
		ExcludeChests: bars,
	})
}

// TotalChests counts the qualifying chest openings logged for raid: drops
// whose chest is neither blue nor unset.
func TotalChests(src Source, raid model.Raid) int {
	return Count(src, Filter{
		Raids:         []model.Raid{raid},
		ExcludeChests: []model.ChestType{model.ChestBlue, model.ChestNone},
	})
}

// Dropped counts the drops logged exactly as (raid, item, chest).
func Dropped(src Source, raid model.Raid, item model.Item, chest model.ChestType) int {
	return Count(src, Filter{
		Raids:  []model.Raid{raid},
		Items:  []model.Item{item},
		Chests: []model.ChestType{chest},
	})
}

// PercentageForItem renders the counter for (raid, item, chest), e.g.
// "Gold Bar: 3 (1.52%)". The percentage is taken against kills when byKills
// is set and against qualifying chests otherwise, and is left out when
// nothing dropped or the denominator is zero. ChestNone counters have no
// meaningful rate and render as "No Drop: n".
func PercentageForItem(src Source, raid model.Raid, item model.Item, chest model.ChestType, byKills bool) string {
	dropped := Dropped(src, raid, item, chest)
	if chest == model.ChestNone {
		return fmt.Sprintf("No Drop: %d", dropped)
	}

	label := fmt.Sprintf("%s: %d", Label(item), dropped)
	if dropped == 0 {
		return label
	}

	var denominator int
	if byKills {
		denominator = TotalForRaid(src, raid)
	} else {
		denominator = TotalChests(src, raid)
	}
	if denominator == 0 {
		return label
	}

	return fmt.Sprintf("%s (%s)", label, FormatPercent(float64(dropped)/float64(denominator)*100))
}

// FormatPercent renders pct with two decimal digits and a trailing percent sign.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}
