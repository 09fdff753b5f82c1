package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raidlog/droptracker/internal/pkg/flog"
)

// LocalsKeyRequestID is the fiber.Ctx locals key the request id is exposed under.
const LocalsKeyRequestID = "requestId"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(LocalsKeyRequestID, id.String())
		}
		return c.Next()
	}
}
