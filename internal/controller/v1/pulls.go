package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raidlog/droptracker/internal/model/types"
	"github.com/raidlog/droptracker/internal/pkg/rekuest"
	"github.com/raidlog/droptracker/internal/pullcalc"
	"github.com/raidlog/droptracker/internal/server/svr"
)

func RegisterPulls(v1 *svr.V1) {
	v1.Post("/pulls", CalculatePulls)
}

func CalculatePulls(ctx *fiber.Ctx) error {
	var req types.PullsRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	r := pullcalc.Compute(
		pullcalc.ParseAmount(req.Crystals),
		pullcalc.ParseAmount(req.TenPullTickets),
		pullcalc.ParseAmount(req.SinglePullTickets),
	)
	return ctx.JSON(types.PullsResponse{
		TotalPulls:      r.TotalPulls,
		SparkPercentage: r.SparkPercentage,
		Display:         r.Display(),
	})
}
