package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/repo/selector"
)

// ErrArchiveDisabled is returned by every DropArchive method when no
// database is configured.
var ErrArchiveDisabled = errors.New("drop archive is disabled")

type DropArchive struct {
	db  *bun.DB
	sel selector.S[model.DropArchive]
}

func NewDropArchive(db *bun.DB) *DropArchive {
	return &DropArchive{db: db, sel: selector.New[model.DropArchive](db)}
}

func (r *DropArchive) Enabled() bool {
	return r.db != nil
}

// EnsureSchema creates the archive table when it does not exist yet.
func (r *DropArchive) EnsureSchema(ctx context.Context) error {
	if !r.Enabled() {
		return ErrArchiveDisabled
	}
	_, err := r.db.NewCreateTable().
		Model((*model.DropArchive)(nil)).
		IfNotExists().
		Exec(ctx)
	return errors.Wrap(err, "failed to create drop archive table")
}

// InsertBatch archives rows in a single transaction.
func (r *DropArchive) InsertBatch(ctx context.Context, rows []*model.DropArchive) error {
	if !r.Enabled() {
		return ErrArchiveDisabled
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&rows).
			Returning("archive_id").
			Exec(ctx)
		return err
	})
}

func (r *DropArchive) GetByBatchID(ctx context.Context, batchID string) ([]*model.DropArchive, error) {
	if !r.Enabled() {
		return nil, ErrArchiveDisabled
	}
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("batch_id = ?", batchID).Order("drop_id ASC")
	})
}

func (r *DropArchive) CountByRaid(ctx context.Context, raid model.Raid) (int, error) {
	if !r.Enabled() {
		return 0, ErrArchiveDisabled
	}
	return r.db.NewSelect().
		Model((*model.DropArchive)(nil)).
		Where("raid = ?", raid.String()).
		Count(ctx)
}
