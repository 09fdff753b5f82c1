package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/pkg/dterr"
)

// byKillsQuery reads the optional byKills override. Absent means "use the
// preference".
func byKillsQuery(ctx *fiber.Ctx) (null.Bool, error) {
	raw := ctx.Query("byKills")
	if raw == "" {
		return null.Bool{}, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return null.Bool{}, dterr.ErrInvalidReq.Msg("invalid request: byKills must be a boolean, got %q", raw)
	}
	return null.BoolFrom(v), nil
}

func raidParam(ctx *fiber.Ctx) (model.Raid, error) {
	raid, err := model.ParseRaid(ctx.Params("raid"))
	if err != nil || !raid.Loggable() {
		return model.RaidNone, dterr.ErrNotFound.Msg("unknown raid %q", ctx.Params("raid"))
	}
	return raid, nil
}

// triple parses names that already passed validation.
func triple(raid, item, chest string) (model.Raid, model.Item, model.ChestType) {
	r, _ := model.ParseRaid(raid)
	i, _ := model.ParseItem(item)
	c, _ := model.ParseChestType(chest)
	return r, i, c
}
