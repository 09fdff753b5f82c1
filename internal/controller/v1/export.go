package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/server/svr"
	"github.com/raidlog/droptracker/internal/service"
)

type Export struct {
	fx.In

	ExportService   *service.Export
	SettingsService *service.Settings
}

func RegisterExport(v1 *svr.V1, c Export) {
	v1.Post("/export", c.Export)
}

func (c *Export) Export(ctx *fiber.Ctx) error {
	result, err := c.ExportService.ExportCSV(ctx.UserContext())
	if err != nil {
		return err
	}

	if result.Cleared {
		if _, err := c.SettingsService.Save(ctx.UserContext()); err != nil {
			return err
		}
	}

	return ctx.JSON(result)
}
