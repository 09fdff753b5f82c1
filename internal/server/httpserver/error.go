package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/raidlog/droptracker/internal/pkg/dterr"
	"github.com/raidlog/droptracker/internal/pkg/flog"
)

// ErrorHandler renders every error returned by a handler as a dterr body.
// Server-side failures are logged with their stack; client errors are only
// warned about.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	e := dterr.From(err)

	if e.StatusCode >= fiber.StatusInternalServerError {
		log.Error().
			Stack().
			Err(err).
			Str("evt.name", "http.error").
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", e.StatusCode).
			Msg("Internal Server Error")
	} else {
		flog.WarnFrom(ctx).
			Err(err).
			Str("evt.name", "http.rejected").
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Str("code", e.ErrorCode).
			Msg(e.Message)
	}

	return ctx.Status(e.StatusCode).JSON(e.Body())
}
