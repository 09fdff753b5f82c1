package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/pkg/observability"
	"github.com/raidlog/droptracker/internal/repo"
)

// Settings persists the tracker state to the settings snapshot.
type Settings struct {
	repo    *repo.SettingsFile
	tracker *Tracker
}

func NewSettings(settingsRepo *repo.SettingsFile, tracker *Tracker) *Settings {
	return &Settings{
		repo:    settingsRepo,
		tracker: tracker,
	}
}

// RegisterSettingsHooks loads the snapshot when the app starts and writes it
// back when the app stops.
func RegisterSettingsHooks(lc fx.Lifecycle, s *Settings) {
	lc.Append(fx.Hook{
		OnStart: s.Load,
		OnStop: func(ctx context.Context) error {
			_, err := s.Save(ctx)
			return err
		},
	})
}

func (s *Settings) Load(ctx context.Context) error {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.tracker.Restore(settings)

	log.Info().
		Str("evt.name", "settings.loaded").
		Str("path", s.repo.Path()).
		Int("drops", len(settings.Ledger)).
		Msg("settings snapshot loaded")
	return nil
}

// Save writes the current tracker state. It reports false when nothing
// changed since the last save.
func (s *Settings) Save(ctx context.Context) (bool, error) {
	start := time.Now()
	written, err := s.repo.Save(ctx, s.tracker.Snapshot())

	result := "written"
	switch {
	case err != nil:
		result = "error"
	case !written:
		result = "unchanged"
	}
	observability.SettingsSaveDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		return false, err
	}
	if written {
		log.Debug().
			Str("evt.name", "settings.saved").
			Str("path", s.repo.Path()).
			Msg("settings snapshot written")
	}
	return written, nil
}

func (s *Settings) Preferences() model.Preferences {
	return s.tracker.Preferences()
}

// UpdatePreferences replaces the preferences and persists them right away.
func (s *Settings) UpdatePreferences(ctx context.Context, p model.Preferences) (model.Preferences, error) {
	s.tracker.SetPreferences(p)
	if _, err := s.Save(ctx); err != nil {
		return p, err
	}
	return p, nil
}
