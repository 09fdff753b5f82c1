package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/model"
)

// Events publishes ledger changes to NATS. Without a connection every
// publish is a no-op.
type Events struct {
	nc     *nats.Conn
	prefix string
}

func NewEvents(nc *nats.Conn, conf *appconfig.Config) *Events {
	return &Events{
		nc:     nc,
		prefix: conf.NatsSubjectPrefix,
	}
}

func (s *Events) Enabled() bool {
	return s.nc != nil
}

// Subject returns the subject events of kind are published on.
func (s *Events) Subject(kind string) string {
	if s.prefix == "" {
		return kind
	}
	return s.prefix + "." + kind
}

func (s *Events) Publish(ctx context.Context, evt model.DropEvent) error {
	if !s.Enabled() {
		return nil
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "failed to encode drop event")
	}

	subject := s.Subject(evt.Kind)
	if err := s.nc.Publish(subject, b); err != nil {
		return errors.Wrapf(err, "failed to publish drop event to %s", subject)
	}

	log.Trace().
		Str("evt.name", "events.published").
		Str("subject", subject).
		Int("ledgerSize", evt.LedgerSize).
		Msg("drop event published")
	return nil
}

// publishQuietly is used where a failed publish must not fail the ledger
// change that triggered it.
func (s *Events) publishQuietly(ctx context.Context, evt model.DropEvent) {
	if err := s.Publish(ctx, evt); err != nil {
		log.Warn().
			Str("evt.name", "events.publish_failed").
			Str("kind", evt.Kind).
			Err(err).
			Msg("failed to publish drop event")
	}
}
