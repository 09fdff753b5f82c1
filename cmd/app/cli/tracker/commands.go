// Package tracker holds the CLI commands operating on the saved drop ledger.
package tracker

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/raidlog/droptracker/cmd/app/cli"
	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/service"
)

type CommandDeps struct {
	fx.In

	TrackerService *service.Tracker
	ExportService  *service.Export
}

func Commands() []*cli.Command {
	return []*cli.Command{
		recordCommand(),
		undoCommand(),
		statsCommand(),
		recentCommand(),
		queryCommand(),
		exportCommand(),
	}
}

func action(fn func(c *cli.Context, ctx context.Context, deps CommandDeps) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		return cliapp.With(c.Context, func(ctx context.Context, deps CommandDeps) error {
			return fn(c, ctx, deps)
		})
	}
}

func printDrops(w io.Writer, drops []model.ItemDrop) error {
	for _, d := range drops {
		line := fmt.Sprintf("#%d\t%s\t%s\t%s\t%s", d.DropID, d.Timestamp, d.Raid, d.Item, d.Chest)
		if d.Honors.Valid {
			line += "\t" + d.Honors.String
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func recordCommand() *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "log a drop",
		Flags: []cli.Flag{raidFlag, itemFlag, chestFlag, honorsFlag},
		Action: action(func(c *cli.Context, ctx context.Context, deps CommandDeps) error {
			raid, item, chest, err := parseTriple(c)
			if err != nil {
				return err
			}
			honors, err := model.ParseHonors(c.String(honorsFlag.Name))
			if err != nil {
				return err
			}

			d, err := deps.TrackerService.LogDrop(ctx, service.DropInput{Raid: raid, Item: item, Chest: chest, Honors: honors})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "logged drop #%d\n", d.DropID)
			return err
		}),
	}
}

func undoCommand() *cli.Command {
	return &cli.Command{
		Name:  "undo",
		Usage: "remove the most recent drop logged as raid, item and chest",
		Flags: []cli.Flag{raidFlag, itemFlag, chestFlag},
		Action: action(func(c *cli.Context, ctx context.Context, deps CommandDeps) error {
			raid, item, chest, err := parseTriple(c)
			if err != nil {
				return err
			}

			msg := "nothing to undo"
			if deps.TrackerService.UndoDrop(ctx, raid, item, chest) {
				msg = "removed"
			}
			_, err = fmt.Fprintln(c.App.Writer, msg)
			return err
		}),
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show the drop counters of a raid",
		Flags: []cli.Flag{raidFlag, byKillsFlag},
		Action: action(func(c *cli.Context, ctx context.Context, deps CommandDeps) error {
			raid, err := model.ParseRaid(c.String(raidFlag.Name))
			if err != nil {
				return err
			}
			summary, err := deps.TrackerService.RaidSummary(raid, byKillsOverride(c))
			if err != nil {
				return err
			}

			w := c.App.Writer
			fmt.Fprintf(w, "%s: %d kills, %d chests\n", summary.Raid, summary.Kills, summary.Chests)
			for _, line := range summary.Lines {
				fmt.Fprintf(w, "  [%s] %s\n", line.Chest, line.Display)
			}

			_, honors := deps.TrackerService.Breakdown(raid)
			for _, h := range model.HonorsTiers {
				if n, ok := honors[h.String()]; ok {
					fmt.Fprintf(w, "  honors %s: %d\n", h, n)
				}
			}
			return nil
		}),
	}
}

func recentCommand() *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "list the most recent drops, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "number of drops; 0 uses the saved preference"},
		},
		Action: action(func(c *cli.Context, ctx context.Context, deps CommandDeps) error {
			return printDrops(c.App.Writer, deps.TrackerService.Recent(c.Int("limit")))
		}),
	}
}

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "list the drops matching an expression",
		ArgsUsage: `<expression, e.g. 'Raid == "PBHL" && Chest == "Host"'>`,
		Action: action(func(c *cli.Context, ctx context.Context, deps CommandDeps) error {
			drops, err := deps.TrackerService.Query(c.Args().First())
			if err != nil {
				return err
			}
			return printDrops(c.App.Writer, drops)
		}),
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the ledger to a CSV file",
		Action: action(func(c *cli.Context, ctx context.Context, deps CommandDeps) error {
			result, err := deps.ExportService.ExportCSV(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "exported %d drops to %s (cleared: %t, archived: %d)\n",
				result.Rows, result.Path, result.Cleared, result.Archived)
			return err
		}),
	}
}
