package repo

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/zeebo/xxh3"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/model"
)

var ErrUnsupportedSettingsVersion = errors.New("unsupported settings version")

// legacyPreferenceKeys were stored at the top level before preferences got
// their own object.
var legacyPreferenceKeys = []string{"reset_on_export", "drops_by_kills", "show_honors"}

// SettingsFile stores the settings blob as a JSON document on disk.
type SettingsFile struct {
	path string

	mu       sync.Mutex
	lastHash uint64
}

func NewSettingsFile(conf *appconfig.Config) *SettingsFile {
	return &SettingsFile{path: conf.SettingsPath}
}

func (r *SettingsFile) Path() string {
	return r.path
}

// Load reads the snapshot. A missing file yields fresh default settings.
func (r *SettingsFile) Load(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().
			Str("evt.name", "settings.load.fresh").
			Str("path", r.path).
			Msg("no settings snapshot found, starting with an empty ledger")
		return &model.Settings{
			Version:     model.SettingsVersion,
			Preferences: model.DefaultPreferences(),
			Ledger:      []model.ItemDrop{},
		}, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to read settings snapshot")
	}

	r.lastHash = xxh3.Hash(b)

	b, err = Migrate(b)
	if err != nil {
		return nil, err
	}

	settings := &model.Settings{Preferences: model.DefaultPreferences()}
	if err := json.Unmarshal(b, settings); err != nil {
		return nil, errors.Wrapf(err, "failed to decode settings snapshot %s", r.path)
	}
	if settings.Ledger == nil {
		settings.Ledger = []model.ItemDrop{}
	}
	return settings, nil
}

// Save writes settings unless the encoded content is unchanged since the last
// Load or Save. It reports whether the file was written.
func (r *SettingsFile) Save(ctx context.Context, settings *model.Settings) (bool, error) {
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return false, errors.Wrap(err, "failed to encode settings")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	hash := xxh3.Hash(b)
	if hash == r.lastHash {
		return false, nil
	}

	if err := writeFileAtomic(r.path, b); err != nil {
		return false, err
	}
	r.lastHash = hash
	return true, nil
}

// Migrate upgrades a settings document to the current version. Version 0
// documents carry no version field, keep the ledger under "drop_log" and the
// preferences at the top level.
func Migrate(b []byte) ([]byte, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New("settings snapshot is not valid JSON")
	}

	version := gjson.GetBytes(b, "version")
	switch {
	case !version.Exists():
		return migrateV0(b)
	case version.Int() == model.SettingsVersion:
		return b, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedSettingsVersion, "version %s", version.Raw)
	}
}

func migrateV0(b []byte) ([]byte, error) {
	var err error
	if dropLog := gjson.GetBytes(b, "drop_log"); dropLog.Exists() {
		if b, err = sjson.SetRawBytes(b, "ledger", []byte(dropLog.Raw)); err != nil {
			return nil, errors.Wrap(err, "failed to migrate legacy ledger")
		}
		if b, err = sjson.DeleteBytes(b, "drop_log"); err != nil {
			return nil, errors.Wrap(err, "failed to migrate legacy ledger")
		}
	}

	for _, key := range legacyPreferenceKeys {
		value := gjson.GetBytes(b, key)
		if !value.Exists() {
			continue
		}
		if b, err = sjson.SetRawBytes(b, "preferences."+key, []byte(value.Raw)); err != nil {
			return nil, errors.Wrapf(err, "failed to migrate legacy preference %s", key)
		}
		if b, err = sjson.DeleteBytes(b, key); err != nil {
			return nil, errors.Wrapf(err, "failed to migrate legacy preference %s", key)
		}
	}

	b, err = sjson.SetBytes(b, "version", model.SettingsVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stamp settings version")
	}

	log.Info().
		Str("evt.name", "settings.migrate").
		Int("from", 0).
		Int("to", model.SettingsVersion).
		Msg("migrated legacy settings snapshot")
	return b, nil
}

func writeFileAtomic(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create settings directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary settings file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "failed to write settings")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write settings")
	}

	return errors.Wrap(os.Rename(tmp.Name(), path), "failed to replace settings file")
}
