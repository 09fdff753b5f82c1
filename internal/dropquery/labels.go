package dropquery

import "github.com/raidlog/droptracker/internal/model"

var itemLabels = map[model.Item]string{
	model.ItemNoDrop:          "No Drop",
	model.ItemGoldBar:         "Gold Bar",
	model.ItemCoronationRing:  "Coronation Ring",
	model.ItemLineageRing:     "Lineage Ring",
	model.ItemIntricacyRing:   "Intricacy Ring",
	model.ItemChampionMerit:   "Champion Merit",
	model.ItemSupremeMerit:    "Supreme Merit",
	model.ItemLegendaryMerit:  "Legendary Merit",
	model.ItemSilverCentrum:   "Silver Centrum",
	model.ItemWeaponPlusMark1: "Weapon Plus Mark +1",
	model.ItemWeaponPlusMark2: "Weapon Plus Mark +2",
	model.ItemWeaponPlusMark3: "Weapon Plus Mark +3",
	model.ItemEternitySand:    "Eternity Sand",
	model.ItemVerdantAzurite:  "Verdant Azurite",
}

// Label is the display name of item.
func Label(item model.Item) string {
	if l, ok := itemLabels[item]; ok {
		return l
	}
	return item.String()
}
