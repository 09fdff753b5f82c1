package model

import "gopkg.in/guregu/null.v3"

// Honors is the self-reported PBHL contribution tier at the time of a drop.
// It is used for display and filtering only.
type Honors uint8

const (
	HonorsIgnore Honors = iota
	Honors800k
	Honors1m
	Honors1_5m
	Honors1_8m
	Honors2m
	Honors5m
	Honors10m
)

var honorsNames = []string{
	"Ignore",
	"800k",
	"1m",
	"1.5m",
	"1.8m",
	"2m",
	"5m",
	"10m",
}

// HonorsTiers lists the recordable tiers, lowest first.
var HonorsTiers = []Honors{
	Honors800k,
	Honors1m,
	Honors1_5m,
	Honors1_8m,
	Honors2m,
	Honors5m,
	Honors10m,
}

func ParseHonors(name string) (Honors, error) {
	i, err := parseName("honors", honorsNames, name)
	return Honors(i), err
}

func (h Honors) String() string {
	return nameOf(honorsNames, int(h))
}

// ForRecord returns the honors value stored on a record of raid r: only PBHL
// records carry a tier, and HonorsIgnore carries none.
func (h Honors) ForRecord(r Raid) null.String {
	if r != RaidPBHL || h == HonorsIgnore {
		return null.String{}
	}
	return null.StringFrom(h.String())
}

func (h Honors) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Honors) UnmarshalText(text []byte) error {
	v, err := ParseHonors(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
