package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var (
	ErrDatabaseNotReachable = errors.New("database not reachable")
	ErrNATSNotReachable     = errors.New("nats not reachable")
)

// Health checks the optional infrastructure. Components that are not
// configured are skipped.
type Health struct {
	db *bun.DB
	nc *nats.Conn
}

func NewHealth(db *bun.DB, nc *nats.Conn) *Health {
	return &Health{
		db: db,
		nc: nc,
	}
}

// Components reports which optional infrastructure is configured.
func (s *Health) Components() map[string]bool {
	return map[string]bool{
		"archive": s.db != nil,
		"events":  s.nc != nil,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return errors.Wrap(ErrDatabaseNotReachable, err.Error())
		}
	}

	if s.nc != nil {
		status := s.nc.Status()
		if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
			return errors.Wrap(ErrNATSNotReachable, status.String())
		}
	}

	return nil
}
