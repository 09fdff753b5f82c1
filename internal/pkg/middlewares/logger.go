package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raidlog/droptracker/internal/pkg/flog"
)

const HeaderRequestID = "X-Droptracker-Request-ID"

// Logger attaches a request-scoped logger carrying the request id, client
// address, method and url, and logs one access line per request.
func Logger(app *fiber.App) {
	handlers := []fiber.Handler{
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", HeaderRequestID),
		flog.RemoteAddrHandler("ip"),
		flog.MethodHandler("method"),
		flog.URLHandler("url"),
		flog.AccessHandler(logAccess),
	}
	for _, h := range handlers {
		app.Use(h)
	}
}

func logAccess(ctx *fiber.Ctx, duration time.Duration) {
	status := ctx.Response().StatusCode()

	level := zerolog.InfoLevel
	switch {
	case status >= fiber.StatusInternalServerError:
		level = zerolog.ErrorLevel
	case status >= fiber.StatusBadRequest:
		level = zerolog.WarnLevel
	case ctx.Path() == "/metrics":
		level = zerolog.DebugLevel
	}

	flog.FromFiberCtx(ctx).WithLevel(level).
		Str("evt.name", "http.request").
		Int("status", status).
		Int("size", len(ctx.Response().Body())).
		Dur("duration", duration).
		Msg("served request")
}
