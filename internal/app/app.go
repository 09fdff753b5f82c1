package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/app/appcontext"
	"github.com/raidlog/droptracker/internal/controller"
	"github.com/raidlog/droptracker/internal/infra"
	"github.com/raidlog/droptracker/internal/pkg/logger"
	"github.com/raidlog/droptracker/internal/repo"
	"github.com/raidlog/droptracker/internal/server"
	"github.com/raidlog/droptracker/internal/service"
	"github.com/raidlog/droptracker/internal/workers/autosavewkr"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	return OptionsWithConfig(conf, additionalOpts...)
}

// OptionsWithConfig builds the app graph around an already parsed
// configuration.
func OptionsWithConfig(conf *appconfig.Config, additionalOpts ...fx.Option) []fx.Option {
	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Load the settings snapshot before anything serves requests, and
		// write it back on shutdown. Keep this before controllers and workers
		// as fx#Invoke functions are called in the order of their registration.
		fx.Invoke(service.RegisterSettingsHooks),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(30 * time.Second),
		fx.StopTimeout(conf.HTTPServerShutdownTimeout + 5*time.Second),
	}

	// Workers
	if conf.AppContext.Env == appcontext.EnvServer {
		baseOpts = append(baseOpts, fx.Invoke(autosavewkr.Start))
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
