package cli

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/app"
	"github.com/raidlog/droptracker/internal/app/appcontext"
)

// With starts the app with deps of type T populated, runs fn and stops the
// app again. Stopping runs the lifecycle stop hooks, which persist the
// settings snapshot, so changes made by fn are saved.
func With[T any](ctx context.Context, fn func(ctx context.Context, deps T) error) error {
	var deps T
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), fx.Populate(&deps))
	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start app")
	}

	runErr := fn(ctx, deps)

	if err := fxApp.Stop(ctx); err != nil {
		if runErr != nil {
			return runErr
		}
		return errors.Wrap(err, "failed to stop app")
	}
	return runErr
}
