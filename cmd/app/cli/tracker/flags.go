package tracker

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/model"
)

var (
	raidFlag = &cli.StringFlag{
		Name:     "raid",
		Aliases:  []string{"r"},
		Usage:    "raid name, e.g. PBHL",
		Required: true,
	}
	itemFlag = &cli.StringFlag{
		Name:     "item",
		Aliases:  []string{"i"},
		Usage:    "item name, e.g. GoldBar",
		Required: true,
	}
	chestFlag = &cli.StringFlag{
		Name:    "chest",
		Aliases: []string{"c"},
		Usage:   "chest type: Blue, Host, Mvp, Flip or None",
		Value:   model.ChestBlue.String(),
	}
	honorsFlag = &cli.StringFlag{
		Name:  "honors",
		Usage: "PBHL honors tier, e.g. 1.8m",
		Value: model.HonorsIgnore.String(),
	}
	byKillsFlag = &cli.BoolFlag{
		Name:  "by-kills",
		Usage: "take percentages against kills (true) or qualifying chests (false); defaults to the saved preference",
	}
)

func parseTriple(c *cli.Context) (model.Raid, model.Item, model.ChestType, error) {
	raid, err := model.ParseRaid(c.String(raidFlag.Name))
	if err != nil {
		return 0, 0, 0, err
	}
	if !raid.Loggable() {
		return 0, 0, 0, errors.Errorf("raid %s cannot be logged", raid)
	}
	item, err := model.ParseItem(c.String(itemFlag.Name))
	if err != nil {
		return 0, 0, 0, err
	}
	chest, err := model.ParseChestType(c.String(chestFlag.Name))
	if err != nil {
		return 0, 0, 0, err
	}
	return raid, item, chest, nil
}

func byKillsOverride(c *cli.Context) null.Bool {
	if !c.IsSet(byKillsFlag.Name) {
		return null.Bool{}
	}
	return null.BoolFrom(c.Bool(byKillsFlag.Name))
}
