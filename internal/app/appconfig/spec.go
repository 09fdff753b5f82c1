package appconfig

import (
	"time"

	"github.com/raidlog/droptracker/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP API is served on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9020"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is where the rotating log file is written to. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1"`

	// DevMode to indicate development mode. When true, the program logs at trace level and
	// renders panics with their stack trace.
	DevMode bool `split_words:"true"`

	// SettingsPath is the settings snapshot file holding preferences and the drop ledger.
	SettingsPath string `required:"true" split_words:"true" default:"data/settings.json"`

	// ExportDir is the directory CSV exports are written into.
	ExportDir string `required:"true" split_words:"true" default:"exports"`

	// AutosaveInterval is the interval in-between periodic settings snapshots.
	// Zero disables the autosave worker; the snapshot is still written on shutdown.
	AutosaveInterval time.Duration `split_words:"true" default:"1m"`

	// infrastructure components connection instructions. All of them are optional.

	// PostgresDSN is the data source name for the PostgreSQL drop archive. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	// Leaving this empty disables archiving.
	PostgresDSN string `split_words:"true"`

	PostgresMaxOpenConns int `split_words:"true" default:"4"`

	BunDebugVerbose bool `split_words:"true"`

	// NatsURL is the URL of the NATS server drop events are published to. See
	// https://pkg.go.dev/github.com/nats-io/nats.go#Connect for more information on how to construct a NATS URL.
	// Leaving this empty disables event publishing.
	NatsURL string `split_words:"true"`

	// NatsSubjectPrefix prefixes every published event kind.
	NatsSubjectPrefix string `split_words:"true" default:"droptracker"`

	// InfraConnectAttempts bounds the retries made when connecting to optional infrastructure.
	InfraConnectAttempts uint `split_words:"true" default:"3"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"10s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
