package infra

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/app/appconfig"
)

// NATS connects to the event bus. It yields a nil *nats.Conn when no URL is
// configured; drop events are then not published.
func NATS(lc fx.Lifecycle, conf *appconfig.Config) (*nats.Conn, error) {
	if conf.NatsURL == "" {
		log.Info().
			Str("evt.name", "infra.nats.disabled").
			Msg("no nats url configured: drop events disabled")
		return nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	var nc *nats.Conn
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err := connect(ctx, "nats", conf.InfraConnectAttempts, func() error {
		var err error
		nc, err = nats.Connect(conf.NatsURL,
			nats.Name("droptracker"),
			nats.PingInterval(time.Second*20),
			nats.ErrorHandler(errorHandler),
		)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "infra: nats: failed to connect")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return nc.Drain()
		},
	})

	return nc, nil
}
