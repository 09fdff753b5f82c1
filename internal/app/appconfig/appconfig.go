package appconfig

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/raidlog/droptracker/internal/app/appcontext"
)

const envPrefix = "droptracker"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var config ConfigSpec
	err := envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
