package model

// Raid is one of the cooperative raid encounters the tracker logs drops for.
// RaidNone marks an unset raid and is never a loggable value.
type Raid uint8

const (
	RaidAkasha Raid = iota
	RaidPBHL
	RaidGOHL
	RaidUBHL
	RaidXeno
	RaidHuanglong
	RaidQilin
	RaidHLQL
	RaidNone
)

var raidNames = []string{
	"Akasha",
	"PBHL",
	"GOHL",
	"UBHL",
	"Xeno",
	"Huanglong",
	"Qilin",
	"HLQL",
	"None",
}

// Raids lists every loggable raid, in display order.
var Raids = []Raid{
	RaidAkasha,
	RaidPBHL,
	RaidGOHL,
	RaidUBHL,
	RaidXeno,
	RaidHuanglong,
	RaidQilin,
	RaidHLQL,
}

func ParseRaid(name string) (Raid, error) {
	i, err := parseName("raid", raidNames, name)
	return Raid(i), err
}

func (r Raid) String() string {
	return nameOf(raidNames, int(r))
}

// Loggable reports whether drops may be recorded against r.
func (r Raid) Loggable() bool {
	return r < RaidNone
}

func (r Raid) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Raid) UnmarshalText(text []byte) error {
	v, err := ParseRaid(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
