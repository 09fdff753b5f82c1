package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/pkg/bininfo"
	"github.com/raidlog/droptracker/internal/pkg/cachectrl"
	"github.com/raidlog/droptracker/internal/server/svr"
	"github.com/raidlog/droptracker/internal/service"
)

type Meta struct {
	fx.In

	HealthService  *service.Health
	TrackerService *service.Tracker
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx, time.Hour)
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// Health fails when a configured component is unreachable. Components that
// are not configured are reported as disabled.
func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status":     "ok",
		"components": c.HealthService.Components(),
		"ledgerSize": c.TrackerService.Len(),
	})
}
