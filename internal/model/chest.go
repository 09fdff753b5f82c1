package model

// ChestType is the reward source a drop came out of. ChestBlue is the ordinary
// chest; ChestHost and ChestFlip are the end-of-battle bonus bars some raids
// have. ChestNone marks counters where a chest bucket does not apply.
type ChestType uint8

const (
	ChestBlue ChestType = iota
	ChestHost
	ChestMvp
	ChestFlip
	ChestNone
)

var chestNames = []string{
	"Blue",
	"Host",
	"Mvp",
	"Flip",
	"None",
}

func ParseChestType(name string) (ChestType, error) {
	i, err := parseName("chest", chestNames, name)
	return ChestType(i), err
}

func (c ChestType) String() string {
	return nameOf(chestNames, int(c))
}

// IsBar reports whether c is one of the bonus bars that are kept out of
// ordinary kill statistics.
func (c ChestType) IsBar() bool {
	return c == ChestHost || c == ChestFlip
}

func (c ChestType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ChestType) UnmarshalText(text []byte) error {
	v, err := ParseChestType(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
