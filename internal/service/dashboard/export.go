package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// Export renders the current view of one entity as a workbook. An empty view
// yields domain.ErrEmptyExport and no file.
func (w *Workspace) Export(ctx context.Context, e domain.EntityType, q table.Query) ([]byte, string, error) {
	r, err := w.Resource(e)
	if err != nil {
		return nil, "", err
	}
	data, err := r.Export(q)
	if err != nil {
		return nil, "", fmt.Errorf("dashboard.Export %s: %w", e, err)
	}

	name := w.exporter.FileName(sheetKey(e))
	w.log.InfoContext(ctx, "export written",
		slog.String("entity", e.String()),
		slog.String("file", name),
		slog.Int("bytes", len(data)))
	return data, name, nil
}

// ExportAll renders every non-empty entity as one sheet of a workbook.
func (w *Workspace) ExportAll(ctx context.Context) ([]byte, string, error) {
	var sheets []export.Sheet
	for _, e := range domain.EntityTypes {
		sh, err := w.resources[e].Sheet(table.Query{})
		if errors.Is(err, domain.ErrEmptyExport) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("dashboard.ExportAll %s: %w", e, err)
		}
		sheets = append(sheets, sh)
	}

	data, err := w.exporter.Workbook(sheets...)
	if err != nil {
		return nil, "", fmt.Errorf("dashboard.ExportAll: %w", err)
	}

	name := w.exporter.FileName("sheet.dashboard")
	w.log.InfoContext(ctx, "workbook written", slog.Int("sheets", len(sheets)), slog.Int("bytes", len(data)))
	return data, name, nil
}
