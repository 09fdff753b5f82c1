package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/model/types"
	"github.com/raidlog/droptracker/internal/pkg/cachectrl"
	"github.com/raidlog/droptracker/internal/pkg/rekuest"
	"github.com/raidlog/droptracker/internal/server/svr"
	"github.com/raidlog/droptracker/internal/service"
)

type Drop struct {
	fx.In

	TrackerService *service.Tracker
}

func RegisterDrop(v1 *svr.V1, c Drop) {
	v1.Get("/drops", c.GetDrops)
	v1.Post("/drops", c.LogDrop)
	v1.Post("/drops/undo", c.UndoDrop)
}

func (c *Drop) LogDrop(ctx *fiber.Ctx) error {
	var req types.LogDropRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	raid, item, chest := triple(req.Raid, req.Item, req.Chest)
	honors := model.HonorsIgnore
	if req.Honors != "" {
		honors, _ = model.ParseHonors(req.Honors)
	}

	drop, err := c.TrackerService.LogDrop(ctx.UserContext(), service.DropInput{
		Raid:   raid,
		Item:   item,
		Chest:  chest,
		Honors: honors,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(types.LogDropResponse{
		DropID: drop.DropID,
		Drop:   drop,
	})
}

func (c *Drop) UndoDrop(ctx *fiber.Ctx) error {
	var req types.UndoDropRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	raid, item, chest := triple(req.Raid, req.Item, req.Chest)
	return ctx.JSON(types.UndoDropResponse{
		Removed: c.TrackerService.UndoDrop(ctx.UserContext(), raid, item, chest),
	})
}

func (c *Drop) GetDrops(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)

	var query types.DropsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	if query.Filter == "" {
		return ctx.JSON(types.DropsResponse{Drops: c.TrackerService.Recent(query.Limit)})
	}

	drops, err := c.TrackerService.Query(query.Filter)
	if err != nil {
		return err
	}
	if query.Limit > 0 && len(drops) > query.Limit {
		drops = drops[len(drops)-query.Limit:]
	}
	return ctx.JSON(types.DropsResponse{Drops: drops})
}
