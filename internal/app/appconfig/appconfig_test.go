package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raidlog/droptracker/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DROPTRACKER_SETTINGS_PATH", "/tmp/dt/settings.json")
	t.Setenv("DROPTRACKER_AUTOSAVE_INTERVAL", "30s")

	conf, err := Parse(appcontext.Declare(appcontext.EnvTest))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/dt/settings.json", conf.SettingsPath)
	assert.Equal(t, 30*time.Second, conf.AutosaveInterval)
	assert.Equal(t, "exports", conf.ExportDir)
	assert.Equal(t, "droptracker", conf.NatsSubjectPrefix)
	assert.Empty(t, conf.PostgresDSN)
	assert.Equal(t, appcontext.EnvTest, conf.AppContext.Env)
}

func TestParseInvalid(t *testing.T) {
	t.Setenv("DROPTRACKER_AUTOSAVE_INTERVAL", "soon")

	_, err := Parse(appcontext.Declare(appcontext.EnvTest))
	assert.Error(t, err)
}
