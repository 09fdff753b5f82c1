package service

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/raidlog/droptracker/internal/app/appconfig"
	"github.com/raidlog/droptracker/internal/model"
	"github.com/raidlog/droptracker/internal/pkg/observability"
)

type ExportResult struct {
	BatchID  string `json:"batchId"`
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	Cleared  bool   `json:"cleared"`
	Archived int    `json:"archived"`
}

// Export writes the ledger out as CSV.
type Export struct {
	dir     string
	tracker *Tracker
	archive *Archive
}

func NewExport(conf *appconfig.Config, tracker *Tracker, archive *Archive) *Export {
	return &Export{
		dir:     conf.ExportDir,
		tracker: tracker,
		archive: archive,
	}
}

// ExportCSV writes every record, in insertion order, to a new file in the
// export directory. An empty ledger yields a header-only file. Archiving
// failures are logged and do not fail the export.
func (s *Export) ExportCSV(ctx context.Context) (*ExportResult, error) {
	result := &ExportResult{BatchID: ulid.Make().String()}
	result.Path = filepath.Join(s.dir, "drops-"+result.BatchID+".csv")

	var exported []model.ItemDrop
	cleared, err := s.tracker.Drain(ctx, func(records []model.ItemDrop, rows [][]string) error {
		exported = records
		return writeCSV(result.Path, rows)
	})
	if err != nil {
		return nil, err
	}
	result.Rows = len(exported)
	result.Cleared = cleared
	observability.ExportedRows.Add(float64(result.Rows))

	archived, err := s.archive.Store(ctx, result.BatchID, exported)
	if err != nil {
		log.Error().
			Str("evt.name", "export.archive_failed").
			Str("batchId", result.BatchID).
			Err(err).
			Msg("failed to archive exported drops")
	}
	result.Archived = archived

	log.Info().
		Str("evt.name", "export.written").
		Str("path", result.Path).
		Int("rows", result.Rows).
		Bool("cleared", result.Cleared).
		Msg("ledger exported")
	return result, nil
}

// createExportFile opens the destination of an export. Tests swap it to
// inject write failures.
var createExportFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeCSV writes the header and rows to path. A partially written file is
// removed when any step fails.
func writeCSV(path string, rows [][]string) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create export directory")
	}

	f, err := createExportFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to create export file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := csv.NewWriter(f)
	_ = w.Write(model.RowHeader)
	_ = w.WriteAll(rows)
	if err = w.Error(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to write export file")
	}

	return errors.Wrap(f.Close(), "failed to close export file")
}
