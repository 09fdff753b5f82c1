package server

import (
	"os"

	"github.com/urfave/cli/v2"
)

const envServiceAddress = "DROPTRACKER_SERVICE_ADDRESS"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "serve the HTTP API for the overlay",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "listen address, e.g. localhost:9020",
				EnvVars: []string{envServiceAddress},
			},
		},
		Action: func(c *cli.Context) error {
			// the configuration is parsed from the environment once the app graph is built
			if c.IsSet("address") {
				if err := os.Setenv(envServiceAddress, c.String("address")); err != nil {
					return err
				}
			}
			Run()
			return nil
		},
	}
}
