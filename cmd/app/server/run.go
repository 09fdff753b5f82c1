package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/app"
	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/app/appcontext"
)

func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(listen)).Run()
}

func listen(lc fx.Lifecycle, fiberApp *fiber.App, conf *appconfig.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "http.listen").
				Str("address", ln.Addr().String()).
				Msg("serving HTTP API")

			go func() {
				if err := fiberApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return fiberApp.ShutdownWithTimeout(conf.HTTPServerShutdownTimeout)
		},
	})
}
