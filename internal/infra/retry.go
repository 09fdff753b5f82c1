package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

// connect runs dial until it succeeds or attempts are exhausted, backing off in between.
func connect(ctx context.Context, component string, attempts uint, dial func() error) error {
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(dial,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.connect.retry").
				Str("component", component).
				Uint("attempt", n+1).
				Err(err).
				Msg("failed to connect. retrying...")
		}),
	)
}
