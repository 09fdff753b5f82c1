package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/server/svr"
	"github.com/raidlog/droptracker/internal/service"
)

type Archive struct {
	fx.In

	ArchiveService *service.Archive
}

func RegisterArchive(v1 *svr.V1, c Archive) {
	v1.Get("/archive/batches/:batchId", c.GetBatch)
	v1.Get("/archive/raids/:raid/count", c.GetRaidCount)
}

func (c *Archive) GetBatch(ctx *fiber.Ctx) error {
	rows, err := c.ArchiveService.Batch(ctx.UserContext(), ctx.Params("batchId"))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"batchId": ctx.Params("batchId"),
		"drops":   rows,
	})
}

func (c *Archive) GetRaidCount(ctx *fiber.Ctx) error {
	raid, err := raidParam(ctx)
	if err != nil {
		return err
	}

	n, err := c.ArchiveService.CountByRaid(ctx.UserContext(), raid)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"raid":  raid,
		"count": n,
	})
}
