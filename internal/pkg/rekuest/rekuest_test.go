package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type dropBody struct {
	Raid   string `json:"raid" validate:"required,raid"`
	Item   string `json:"item" validate:"required,item"`
	Chest  string `json:"chest" validate:"required,chest"`
	Honors string `json:"honors" validate:"honors"`
}

func TestDomainTags(t *testing.T) {
	assert.NoError(t, Validate.Struct(dropBody{Raid: "PBHL", Item: "GoldBar", Chest: "Host", Honors: "2m"}))
	assert.NoError(t, Validate.Struct(dropBody{Raid: "Akasha", Item: "NoDrop", Chest: "None"}))

	err := Validate.Struct(dropBody{Raid: "None", Item: "GoldBar", Chest: "Blue"})
	assert.ErrorContains(t, err, "'raid'")

	err = Validate.Struct(dropBody{Raid: "GOHL", Item: "Gold Bar", Chest: "Blue", Honors: "3m"})
	assert.ErrorContains(t, err, "'item'")
	assert.ErrorContains(t, err, "'honors'")
}
