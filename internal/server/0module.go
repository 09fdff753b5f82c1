package server

import (
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/server/httpserver"
	"github.com/raidlog/droptracker/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
