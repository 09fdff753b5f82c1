// Package testentry boots the full app graph for tests, isolated in a
// temporary directory.
package testentry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/raidlog/droptracker/internal/app"
	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/app/appcontext"
)

// Config returns a configuration writing every file below a per-test
// temporary directory, with no optional infrastructure.
func Config(t testing.TB) *appconfig.Config {
	dir := t.TempDir()
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            "127.0.0.1:0",
			TrustedProxies:            []string{"127.0.0.1"},
			SettingsPath:              filepath.Join(dir, "settings.json"),
			ExportDir:                 filepath.Join(dir, "exports"),
			NatsSubjectPrefix:         "droptracker",
			InfraConnectAttempts:      1,
			HTTPServerShutdownTimeout: time.Second,
		},
		AppContext: appcontext.Declare(appcontext.EnvTest),
	}
}

// Populate starts the app graph with conf and fills targets. The app is
// stopped when the test finishes.
func Populate(t testing.TB, conf *appconfig.Config, targets ...any) {
	t.Helper()

	opts := app.OptionsWithConfig(conf, fx.Populate(targets...))
	// for testing, the fx event log is too annoying
	opts = append(opts, fx.NopLogger)
	log.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.InfoLevel)

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	t.Cleanup(func() { fxApp.RequireStop() })
}
