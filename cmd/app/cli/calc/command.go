package calc

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/raidlog/droptracker/internal/pullcalc"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "convert crystals and tickets into pulls and spark progress",
		ArgsUsage: "<crystals> <ten-pull tickets> <single-pull tickets>",
		Action: func(c *cli.Context) error {
			args := c.Args()
			_, err := fmt.Fprintln(c.App.Writer, pullcalc.Calculate(
				pullcalc.ParseAmount(args.Get(0)),
				pullcalc.ParseAmount(args.Get(1)),
				pullcalc.ParseAmount(args.Get(2)),
			))
			return err
		},
	}
}
