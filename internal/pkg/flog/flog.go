// Package flog carries a per-request zerolog logger through fiber.Ctx.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type idKey struct{}

// FromFiberCtx returns the logger injected into the request's user context.
func FromFiberCtx(c *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(c.UserContext())
}

// NewHandlerMiddleware injects a copy of l into every request's user context.
func NewHandlerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// UpdateContext mutates the logger, so every request gets its own copy
		reqLogger := l.With().Logger()
		c.SetUserContext(reqLogger.WithContext(c.UserContext()))
		return c.Next()
	}
}

func fieldHandler(fieldKey string, value func(c *fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		FromFiberCtx(c).UpdateContext(func(zc zerolog.Context) zerolog.Context {
			return zc.Str(fieldKey, value(c))
		})
		return c.Next()
	}
}

func URLHandler(fieldKey string) fiber.Handler {
	return fieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.Path() })
}

func MethodHandler(fieldKey string) fiber.Handler {
	return fieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.Method() })
}

func RemoteAddrHandler(fieldKey string) fiber.Handler {
	return fieldHandler(fieldKey, func(c *fiber.Ctx) string { return c.IP() })
}

func IDFromFiberCtx(c *fiber.Ctx) (id xid.ID, ok bool) {
	if c == nil {
		return
	}
	return IDFromCtx(c.UserContext())
}

func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns every request an xid, logs it under fieldKey and
// echoes it in headerName. Either may be empty to skip it.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(c)
		if !ok {
			id = xid.New()
			c.SetUserContext(CtxWithID(c.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(c).UpdateContext(func(zc zerolog.Context) zerolog.Context {
				return zc.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			c.Set(headerName, id.String())
		}
		return c.Next()
	}
}

// AccessHandler calls f once the rest of the chain has run.
func AccessHandler(f func(c *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		f(c, time.Since(start))
		return err
	}
}

func InfoFrom(c *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(c).Info()
}

func WarnFrom(c *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(c).Warn()
}
