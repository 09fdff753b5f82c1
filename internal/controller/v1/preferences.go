package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/model/types"
	"github.com/raidlog/droptracker/internal/pkg/cachectrl"
	"github.com/raidlog/droptracker/internal/pkg/flog"
	"github.com/raidlog/droptracker/internal/pkg/rekuest"
	"github.com/raidlog/droptracker/internal/server/svr"
	"github.com/raidlog/droptracker/internal/service"
)

type Preferences struct {
	fx.In

	SettingsService *service.Settings
}

func RegisterPreferences(v1 *svr.V1, c Preferences) {
	v1.Get("/preferences", c.GetPreferences)
	v1.Put("/preferences", c.PutPreferences)
}

func (c *Preferences) GetPreferences(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)
	return ctx.JSON(c.SettingsService.Preferences())
}

func (c *Preferences) PutPreferences(ctx *fiber.Ctx) error {
	var req types.PreferencesRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	prefs, err := c.SettingsService.UpdatePreferences(ctx.UserContext(), req.Preferences())
	if err != nil {
		return err
	}
	flog.InfoFrom(ctx).
		Str("evt.name", "preferences.updated").
		Bool("resetOnExport", prefs.ResetOnExport).
		Bool("dropsByKills", prefs.DropsByKills).
		Int("recentLimit", prefs.RecentLimit).
		Msg("preferences updated")
	return ctx.JSON(prefs)
}
