package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/dropquery"
	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/model/types"
	"github.com/raidlog/droptracker/internal/pkg/cachectrl"
	"github.com/raidlog/droptracker/internal/pkg/rekuest"
	"github.com/raidlog/droptracker/internal/server/svr"
	"github.com/raidlog/droptracker/internal/service"
)

type Raid struct {
	fx.In

	TrackerService *service.Tracker
}

func RegisterRaid(v1 *svr.V1, c Raid) {
	v1.Get("/raids", c.GetRaids)
	v1.Get("/raids/:raid/summary", c.GetSummary)
	v1.Get("/raids/:raid/percentage", c.GetPercentage)
}

// GetRaids lists the loggable raids with the counters shown for each.
func (c *Raid) GetRaids(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx, time.Hour)

	raids := lo.Map(model.Raids, func(raid model.Raid, _ int) types.RaidEntry {
		entry := types.RaidEntry{
			Raid: raid,
			Counters: lo.Map(dropquery.Counters(raid), func(counter dropquery.Counter, _ int) types.CounterEntry {
				return types.CounterEntry{
					Item:  counter.Item,
					Chest: counter.Chest,
					Label: dropquery.Label(counter.Item),
				}
			}),
		}
		if raid == model.RaidPBHL {
			entry.HonorsTiers = model.HonorsTiers
		}
		return entry
	})

	return ctx.JSON(types.RaidsResponse{Raids: raids})
}

func (c *Raid) GetSummary(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)

	raid, err := raidParam(ctx)
	if err != nil {
		return err
	}
	byKills, err := byKillsQuery(ctx)
	if err != nil {
		return err
	}

	summary, err := c.TrackerService.RaidSummary(raid, byKills)
	if err != nil {
		return err
	}
	breakdown, honors := c.TrackerService.Breakdown(raid)
	if breakdown == nil {
		breakdown = []dropquery.Tally{}
	}

	return ctx.JSON(types.RaidSummaryResponse{
		Summary:   summary,
		Breakdown: breakdown,
		Honors:    honors,
	})
}

func (c *Raid) GetPercentage(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)

	raid, err := raidParam(ctx)
	if err != nil {
		return err
	}
	byKills, err := byKillsQuery(ctx)
	if err != nil {
		return err
	}

	var query types.PercentageQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}
	_, item, chest := triple("", query.Item, query.Chest)

	return ctx.JSON(types.PercentageResponse{
		Display: c.TrackerService.Percentage(raid, item, chest, byKills),
	})
}
