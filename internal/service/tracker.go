package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"github.com/raidlog/droptracker/internal/dropquery"
	"github.com/raidlog/droptracker/internal/ledger"
	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/pkg/dterr"
	"github.com/raidlog/droptracker/internal/pkg/filterexpr"
	"github.com/raidlog/droptracker/internal/pkg/observability"
)

type DropInput struct {
	Raid   model.Raid
	Item   model.Item
	Chest  model.ChestType
	Honors model.Honors
}

// Tracker owns the drop ledger and the display preferences applied to it.
// Every exported method is safe for concurrent use.
type Tracker struct {
	events *Events

	mu     sync.RWMutex
	ledger *ledger.Ledger
	prefs  model.Preferences
	now    func() time.Time
}

func NewTracker(events *Events) *Tracker {
	return &Tracker{
		events: events,
		ledger: ledger.New(),
		prefs:  model.DefaultPreferences(),
		now:    time.Now,
	}
}

// SetClock replaces the clock drop timestamps are taken from.
func (s *Tracker) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Tracker) LogDrop(ctx context.Context, in DropInput) (model.ItemDrop, error) {
	if !in.Raid.Loggable() {
		return model.ItemDrop{}, dterr.ErrInvalidReq.Msg("invalid request: raid %s cannot be logged", in.Raid)
	}

	drop := model.ItemDrop{
		Raid:   in.Raid,
		Item:   in.Item,
		Chest:  in.Chest,
		Honors: in.Honors.ForRecord(in.Raid),
	}

	s.mu.Lock()
	drop.Timestamp = s.now().Format(model.TimestampLayout)
	drop.DropID = s.ledger.Append(drop.Raid, drop.Item, drop.Chest, drop.Honors, drop.Timestamp)
	size := s.ledger.Len()
	s.mu.Unlock()

	observability.DropsLogged.WithLabelValues(in.Raid.String(), in.Chest.String()).Inc()
	observability.LedgerSize.Set(float64(size))

	log.Debug().
		Str("evt.name", "tracker.drop.logged").
		Uint64("dropId", drop.DropID).
		Stringer("raid", in.Raid).
		Stringer("item", in.Item).
		Stringer("chest", in.Chest).
		Msg("drop logged")

	s.events.publishQuietly(ctx, model.DropEvent{Kind: model.EventDropLogged, Drop: &drop, LedgerSize: size})
	return drop, nil
}

// UndoDrop removes the most recent drop logged as (raid, item, chest). It
// reports false when there was nothing to undo.
func (s *Tracker) UndoDrop(ctx context.Context, raid model.Raid, item model.Item, chest model.ChestType) bool {
	s.mu.Lock()
	drop, ok := s.ledger.PopLastMatching(raid, item, chest)
	size := s.ledger.Len()
	s.mu.Unlock()

	if !ok {
		return false
	}

	observability.DropsRemoved.WithLabelValues(raid.String()).Inc()
	observability.LedgerSize.Set(float64(size))

	s.events.publishQuietly(ctx, model.DropEvent{Kind: model.EventDropRemoved, Drop: &drop, LedgerSize: size})
	return true
}

// Recent returns up to limit drops, newest first. A non-positive limit falls
// back to the RecentLimit preference, and a zero preference means everything.
func (s *Tracker) Recent(limit int) []model.ItemDrop {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = s.prefs.RecentLimit
	}
	return s.ledger.Recent(limit)
}

func (s *Tracker) byKills(override null.Bool) bool {
	if override.Valid {
		return override.Bool
	}
	return s.prefs.DropsByKills
}

// RaidSummary evaluates the counters of raid. byKills overrides the
// DropsByKills preference when set.
func (s *Tracker) RaidSummary(raid model.Raid, byKills null.Bool) (dropquery.Summary, error) {
	if !raid.Loggable() {
		return dropquery.Summary{}, dterr.ErrInvalidReq.Msg("invalid request: raid %s has no statistics", raid)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return dropquery.Summarize(s.ledger, raid, s.byKills(byKills)), nil
}

func (s *Tracker) Percentage(raid model.Raid, item model.Item, chest model.ChestType, byKills null.Bool) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dropquery.PercentageForItem(s.ledger, raid, item, chest, s.byKills(byKills))
}

// Breakdown groups the records of raid by (item, chest) and, for PBHL, by
// honors tier.
func (s *Tracker) Breakdown(raid model.Raid) ([]dropquery.Tally, map[string]int) {
	s.mu.RLock()
	records := s.ledger.Records()
	s.mu.RUnlock()

	tallies := dropquery.Breakdown(records, raid)
	if raid != model.RaidPBHL {
		return tallies, nil
	}
	return tallies, dropquery.HonorsBreakdown(records)
}

// Query returns the records matched by a filter expression, oldest first.
func (s *Tracker) Query(source string) ([]model.ItemDrop, error) {
	f, err := filterexpr.Compile(source)
	if err != nil {
		return nil, dterr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	s.mu.RLock()
	records := s.ledger.Records()
	s.mu.RUnlock()

	return f.Select(records)
}

func (s *Tracker) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Len()
}

func (s *Tracker) Preferences() model.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

func (s *Tracker) SetPreferences(p model.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
}

// Clear empties the ledger and returns the number of records dropped.
func (s *Tracker) Clear(ctx context.Context) int {
	s.mu.Lock()
	n := s.clearLocked()
	s.mu.Unlock()

	if n > 0 {
		s.events.publishQuietly(ctx, model.DropEvent{Kind: model.EventLedgerClear, LedgerSize: 0})
	}
	return n
}

func (s *Tracker) clearLocked() int {
	n := s.ledger.Len()
	s.ledger.Clear()
	observability.LedgerSize.Set(0)
	return n
}

// Drain hands the current records and their export rows to fn while holding
// the ledger, so no drop is logged in between. When fn succeeds and the
// ResetOnExport preference is set the ledger is cleared afterwards.
func (s *Tracker) Drain(ctx context.Context, fn func(records []model.ItemDrop, rows [][]string) error) (cleared bool, err error) {
	s.mu.Lock()
	if err = fn(s.ledger.Records(), s.ledger.Rows()); err != nil {
		s.mu.Unlock()
		return false, err
	}
	cleared = s.prefs.ResetOnExport
	if cleared {
		s.clearLocked()
	}
	s.mu.Unlock()

	if cleared {
		s.events.publishQuietly(ctx, model.DropEvent{Kind: model.EventLedgerClear, LedgerSize: 0})
	}
	return cleared, nil
}

// Snapshot captures preferences and ledger for persistence.
func (s *Tracker) Snapshot() *model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &model.Settings{
		Version:     model.SettingsVersion,
		Preferences: s.prefs,
		Ledger:      s.ledger.Records(),
		NextDropID:  s.ledger.NextID(),
	}
}

// Restore replaces the tracker state with a persisted snapshot.
func (s *Tracker) Restore(settings *model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = settings.Preferences
	s.ledger = ledger.FromSnapshot(settings.Ledger, settings.NextDropID)
	observability.LedgerSize.Set(float64(s.ledger.Len()))
}
