// Package export renders table views into xlsx workbooks with localized
// headers and values.
package export

import (
	"fmt"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one rendered worksheet.
type Sheet struct {
	Name   string
	Header []string
	Widths []float64
	Rows   [][]any
}

// Exporter builds workbooks in a fixed locale.
type Exporter struct {
	loc *Localizer
}

// New creates an exporter for locale, e.g. "ar" or "en".
func New(locale string) (*Exporter, error) {
	loc, err := NewLocalizer(locale)
	if err != nil {
		return nil, err
	}
	return &Exporter{loc: loc}, nil
}

// Localizer returns the exporter's localizer.
func (e *Exporter) Localizer() *Localizer { return e.loc }

// FileName returns the download name for a sheet key, e.g. "المنتجات.xlsx".
func (e *Exporter) FileName(sheetKey string) string {
	return e.loc.Label(sheetKey) + ".xlsx"
}

// BuildSheet renders records in the given order. An empty records slice
// yields domain.ErrEmptyExport.
func BuildSheet[T any](e *Exporter, sheetKey string, records []T, cols []Column[T]) (Sheet, error) {
	if len(records) == 0 {
		return Sheet{}, fmt.Errorf("%s: %w", sheetKey, domain.ErrEmptyExport)
	}

	sh := Sheet{
		Name:   e.loc.Label(sheetKey),
		Header: make([]string, len(cols)),
		Widths: make([]float64, len(cols)),
		Rows:   make([][]any, 0, len(records)),
	}
	for i, c := range cols {
		sh.Header[i] = e.loc.Label(c.Header)
		sh.Widths[i] = c.Width
	}
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = e.loc.cell(c.Format, c.Value(rec))
		}
		sh.Rows = append(sh.Rows, row)
	}
	return sh, nil
}

// Export renders records into a single-sheet workbook.
func Export[T any](e *Exporter, sheetKey string, records []T, cols []Column[T]) ([]byte, error) {
	sh, err := BuildSheet(e, sheetKey, records, cols)
	if err != nil {
		return nil, err
	}
	return e.Workbook(sh)
}

// Workbook writes sheets into one xlsx file, in order.
func (e *Exporter) Workbook(sheets ...Sheet) (_ []byte, err error) {
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyExport
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", sh.Name, err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return nil, fmt.Errorf("add sheet %q: %w", sh.Name, err)
		}

		if err := e.writeSheet(f, sh, headerStyle); err != nil {
			return nil, fmt.Errorf("write sheet %q: %w", sh.Name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeSheet(f *excelize.File, sh Sheet, headerStyle int) error {
	header := make([]any, len(sh.Header))
	for i, h := range sh.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sh.Name, "A1", &header); err != nil {
		return err
	}

	if len(header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sh.Name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for i, w := range sh.Widths {
		if w <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sh.Name, col, col, w); err != nil {
			return err
		}
	}

	for r, row := range sh.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.Name, cell, &row); err != nil {
			return err
		}
	}

	if e.loc.RightToLeft() {
		rtl := true
		if err := f.SetSheetView(sh.Name, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return err
		}
	}
	return nil
}
