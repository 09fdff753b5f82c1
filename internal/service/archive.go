package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/pkg/dterr"
	"github.com/raidlog/droptracker/internal/repo"
)

var errArchiveNotConfigured = dterr.ErrNotFound.Msg("drop archive is not configured")

// Archive copies exported drops into the archive database, when one is
// configured.
type Archive struct {
	repo *repo.DropArchive
}

func NewArchive(lc fx.Lifecycle, archiveRepo *repo.DropArchive) *Archive {
	s := &Archive{repo: archiveRepo}
	if s.Enabled() {
		lc.Append(fx.Hook{
			OnStart: archiveRepo.EnsureSchema,
		})
	}
	return s
}

func (s *Archive) Enabled() bool {
	return s.repo.Enabled()
}

// Store archives records under batchID and returns how many were stored.
func (s *Archive) Store(ctx context.Context, batchID string, records []model.ItemDrop) (int, error) {
	if !s.Enabled() {
		return 0, nil
	}

	now := time.Now()
	rows := lo.Map(records, func(d model.ItemDrop, _ int) *model.DropArchive {
		return model.NewDropArchive(batchID, d, now)
	})
	if err := s.repo.InsertBatch(ctx, rows); err != nil {
		return 0, err
	}

	log.Info().
		Str("evt.name", "archive.stored").
		Str("batchId", batchID).
		Int("rows", len(rows)).
		Msg("drops archived")
	return len(rows), nil
}

// Batch returns the drops archived by one export.
func (s *Archive) Batch(ctx context.Context, batchID string) ([]*model.DropArchive, error) {
	if !s.Enabled() {
		return nil, errArchiveNotConfigured
	}
	return s.repo.GetByBatchID(ctx, batchID)
}

// CountByRaid counts every drop of raid ever archived.
func (s *Archive) CountByRaid(ctx context.Context, raid model.Raid) (int, error) {
	if !s.Enabled() {
		return 0, errArchiveNotConfigured
	}
	return s.repo.CountByRaid(ctx, raid)
}
