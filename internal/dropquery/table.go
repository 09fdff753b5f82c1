package dropquery

import "github.com/raidlog/droptracker/internal/model"

// Counter is one (item, chest) button/counter pair shown for a raid.
type Counter struct {
	Item  model.Item
	Chest model.ChestType
}

func blue(items ...model.Item) []Counter {
	out := make([]Counter, 0, len(items))
	for _, it := range items {
		out = append(out, Counter{Item: it, Chest: model.ChestBlue})
	}
	return out
}

func join(groups ...[]Counter) []Counter {
	var out []Counter
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var noDrop = []Counter{{Item: model.ItemNoDrop, Chest: model.ChestNone}}

var rings = blue(model.ItemCoronationRing, model.ItemLineageRing, model.ItemIntricacyRing)

var merits = blue(model.ItemChampionMerit, model.ItemSupremeMerit, model.ItemLegendaryMerit)

var marks = blue(model.ItemWeaponPlusMark1, model.ItemWeaponPlusMark2, model.ItemWeaponPlusMark3)

var raidCounters = map[model.Raid][]Counter{
	model.RaidAkasha: join(noDrop, blue(model.ItemGoldBar), rings, merits, marks),
	model.RaidPBHL: join(noDrop, blue(model.ItemGoldBar), rings, merits, []Counter{
		{Item: model.ItemGoldBar, Chest: model.ChestHost},
		{Item: model.ItemNoDrop, Chest: model.ChestHost},
	}),
	model.RaidGOHL: join(noDrop, blue(model.ItemGoldBar), rings, merits, marks),
	model.RaidUBHL: join(noDrop, blue(model.ItemGoldBar, model.ItemSilverCentrum), rings, []Counter{
		{Item: model.ItemGoldBar, Chest: model.ChestFlip},
	}),
	model.RaidXeno: join(noDrop, []Counter{
		{Item: model.ItemEternitySand, Chest: model.ChestFlip},
		{Item: model.ItemNoDrop, Chest: model.ChestFlip},
	}),
	model.RaidHuanglong: join(noDrop, blue(model.ItemGoldBar, model.ItemVerdantAzurite), []Counter{
		{Item: model.ItemGoldBar, Chest: model.ChestMvp},
	}),
	model.RaidQilin: join(noDrop, blue(model.ItemGoldBar, model.ItemVerdantAzurite), []Counter{
		{Item: model.ItemGoldBar, Chest: model.ChestMvp},
	}),
	model.RaidHLQL: join(noDrop, blue(model.ItemGoldBar, model.ItemVerdantAzurite, model.ItemEternitySand), []Counter{
		{Item: model.ItemGoldBar, Chest: model.ChestMvp},
	}),
}

// Counters lists the counters shown for raid, in display order.
func Counters(raid model.Raid) []Counter {
	return raidCounters[raid]
}
