package autosavewkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/service"
)

type WorkerDeps struct {
	fx.In
	SettingsService *service.Settings
}

type Worker struct {
	// count counts the snapshots written so far
	count int

	// interval describes the interval in-between snapshot attempts
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	WorkerDeps
}

// Start runs the worker for the lifetime of the app. A zero interval
// disables it.
func Start(lc fx.Lifecycle, conf *appconfig.Config, deps WorkerDeps) {
	if conf.AutosaveInterval <= 0 {
		log.Info().
			Str("evt.name", "worker.autosave.disabled").
			Msg("autosave interval is zero: autosave worker disabled")
		return
	}

	w := New(conf.AutosaveInterval, deps)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			w.Stop()
			return nil
		},
	})
}

func New(interval time.Duration, deps WorkerDeps) *Worker {
	return &Worker{
		interval:   interval,
		WorkerDeps: deps,
	}
}

func (w *Worker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	}()
}

func (w *Worker) tick(ctx context.Context) {
	written, err := w.SettingsService.Save(ctx)
	if err != nil {
		log.Error().
			Str("evt.name", "worker.autosave.error").
			Err(err).
			Msg("failed to autosave settings snapshot")
		return
	}
	if written {
		w.count++
		log.Debug().
			Str("evt.name", "worker.autosave.written").
			Int("count", w.count).
			Msg("settings snapshot autosaved")
	}
}

// Stop halts the worker and waits for an in-flight save to finish.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// Count is only meaningful once the worker has been stopped.
func (w *Worker) Count() int {
	return w.count
}
