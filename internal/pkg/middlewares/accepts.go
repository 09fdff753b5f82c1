package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/raidlog/droptracker/internal/pkg/dterr"
)

// Accepts rejects requests whose Accept header matches none of mimes.
func Accepts(mimes ...string) func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		if ctx.Accepts(mimes...) != "" {
			return ctx.Next()
		}

		return dterr.ErrInvalidReq.Msg("invalid or missing Accept header. Accepts: %s", strings.Join(mimes, ", "))
	}
}

var AcceptsJSON = Accepts(fiber.MIMEApplicationJSON)
