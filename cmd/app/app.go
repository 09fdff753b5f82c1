package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/raidlog/droptracker/cmd/app/cli/calc"
	"github.com/raidlog/droptracker/cmd/app/cli/tracker"
	"github.com/raidlog/droptracker/cmd/app/server"
	"github.com/raidlog/droptracker/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "droptracker",
		Usage:       "log raid drops and keep running drop rates",
		Description: "Drop tracker for cooperative raids. Serves an HTTP API for the overlay UI and offers the same operations from the command line. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: append([]*cli.Command{
			server.Command(),
			calc.Command(),
		}, tracker.Commands()...),
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
