package model

// Item is a lootable item the tracker recognizes. ItemNoDrop is a loggable
// outcome on its own: a chest was opened and nothing of note came out.
type Item uint8

const (
	ItemNoDrop Item = iota
	ItemGoldBar
	ItemCoronationRing
	ItemLineageRing
	ItemIntricacyRing
	ItemChampionMerit
	ItemSupremeMerit
	ItemLegendaryMerit
	ItemSilverCentrum
	ItemWeaponPlusMark1
	ItemWeaponPlusMark2
	ItemWeaponPlusMark3
	ItemEternitySand
	ItemVerdantAzurite
)

var itemNames = []string{
	"NoDrop",
	"GoldBar",
	"CoronationRing",
	"LineageRing",
	"IntricacyRing",
	"ChampionMerit",
	"SupremeMerit",
	"LegendaryMerit",
	"SilverCentrum",
	"WeaponPlusMark1",
	"WeaponPlusMark2",
	"WeaponPlusMark3",
	"EternitySand",
	"VerdantAzurite",
}

func ParseItem(name string) (Item, error) {
	i, err := parseName("item", itemNames, name)
	return Item(i), err
}

func (i Item) String() string {
	return nameOf(itemNames, int(i))
}

func (i Item) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Item) UnmarshalText(text []byte) error {
	v, err := ParseItem(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
