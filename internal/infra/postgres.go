package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/app/appconfig"
)

// Postgres opens the drop archive database. It yields a nil *bun.DB when no
// DSN is configured; consumers treat that as archiving being disabled.
func Postgres(lc fx.Lifecycle, conf *appconfig.Config) (*bun.DB, error) {
	if conf.PostgresDSN == "" {
		log.Info().
			Str("evt.name", "infra.postgres.disabled").
			Msg("no postgres dsn configured: drop archive disabled")
		return nil, nil
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.PostgresDSN)))
	pgdb.SetMaxOpenConns(conf.PostgresMaxOpenConns)

	db := bun.NewDB(pgdb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(conf.DevMode),
		bundebug.WithVerbose(conf.BunDebugVerbose),
	))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err := connect(ctx, "postgres", conf.InfraConnectAttempts, func() error {
		return db.PingContext(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "infra: postgres: failed to connect")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}
