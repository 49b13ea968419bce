// Package report renders a normalized workbook as a styled multi-sheet
// xlsx file: dark blue header rows, thin cell borders, autofilter, a
// frozen header, and width-fitted columns.
package report

import (
	"fmt"
	"log/slog"

	"github.com/santoshrk11/acrf-pdf-extractor/internal/tabulate"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary     = "Summary"
	sheetAnnotations = "Annotations"
	sheetBookmarks   = "Bookmarks"
	sheetPages       = "Pages"
	sheetStyledText  = "Styled Text"
)

const (
	headerFillColor = "1F4E78"
	maxColumnWidth  = 50
	zoomScale       = 85
)

// Config controls report rendering.
type Config struct {
	// Logger receives write progress and failures. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

func (c Config) defaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Writer renders workbooks to disk.
type Writer struct {
	logger *slog.Logger
}

// New creates a report writer.
func New(cfg Config) *Writer {
	cfg = cfg.defaults()
	return &Writer{logger: cfg.Logger}
}

// Write renders the workbook at path. The summary sheet is always present;
// data sheets appear only when they carry rows. Unlike earlier stages a
// failure here is returned to the caller, not swallowed.
func (w *Writer) Write(path string, wb *tabulate.Workbook) error {
	if wb == nil {
		wb = &tabulate.Workbook{}
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.Debug("workbook close failed", "error", err)
		}
	}()

	styles, err := newSheetStyles(f)
	if err != nil {
		return fmt.Errorf("failed to build styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	headers, rows := summaryTable(wb.Summary)
	if err := w.fillSheet(f, styles, sheetSummary, headers, rows); err != nil {
		return err
	}

	if len(wb.Sheets.Annotations) > 0 {
		headers, rows := annotationTable(wb.Sheets.Annotations)
		if err := w.addSheet(f, styles, sheetAnnotations, headers, rows); err != nil {
			return err
		}
	}
	if len(wb.Sheets.Bookmarks) > 0 {
		headers, rows := bookmarkTable(wb.Sheets.Bookmarks)
		if err := w.addSheet(f, styles, sheetBookmarks, headers, rows); err != nil {
			return err
		}
	}
	if len(wb.Sheets.Pages) > 0 {
		headers, rows := pageTable(wb.Sheets.Pages)
		if err := w.addSheet(f, styles, sheetPages, headers, rows); err != nil {
			return err
		}
	}
	if len(wb.Sheets.StyledText) > 0 {
		headers, rows := styledTextTable(wb.Sheets.StyledText)
		if err := w.addSheet(f, styles, sheetStyledText, headers, rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		w.logger.Error("report write failed", "path", path, "error", err)
		return fmt.Errorf("failed to write report: %w", err)
	}
	w.logger.Info("report written", "path", path, "sheets", len(f.GetSheetList()))
	return nil
}

func (w *Writer) addSheet(f *excelize.File, styles sheetStyles, sheet string, headers []string, rows [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
	}
	return w.fillSheet(f, styles, sheet, headers, rows)
}

// fillSheet writes the header and data rows, then applies the shared
// styling: header fill, borders, autofilter, frozen header, widths, zoom.
func (w *Writer) fillSheet(f *excelize.File, styles sheetStyles, sheet string, headers []string, rows [][]string) error {
	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d of %s: %w", i+2, sheet, err)
		}
		if err := f.SetSheetRow(sheet, ref, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return w.styleSheet(f, styles, sheet, headers, rows)
}

func (w *Writer) styleSheet(f *excelize.File, styles sheetStyles, sheet string, headers []string, rows [][]string) error {
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("failed to size sheet %s: %w", sheet, err)
	}
	lastRow := len(rows) + 1

	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.header); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", sheet, err)
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, lastRow), styles.data); err != nil {
			return fmt.Errorf("failed to style rows of %s: %w", sheet, err)
		}
	}

	filterRange := fmt.Sprintf("A1:%s%d", lastCol, lastRow)
	if err := f.AutoFilter(sheet, filterRange, []excelize.AutoFilterOptions{}); err != nil {
		return fmt.Errorf("failed to set autofilter on %s: %w", sheet, err)
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header of %s: %w", sheet, err)
	}

	zoom := float64(zoomScale)
	if err := f.SetSheetView(sheet, -1, &excelize.ViewOptions{ZoomScale: &zoom}); err != nil {
		return fmt.Errorf("failed to set zoom on %s: %w", sheet, err)
	}

	for i, h := range headers {
		width := len(h)
		for _, row := range rows {
			if i < len(row) && len(row[i]) > width {
				width = len(row[i])
			}
		}
		width += 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to size column %d of %s: %w", i+1, sheet, err)
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return fmt.Errorf("failed to size column %s of %s: %w", col, sheet, err)
		}
	}
	return nil
}

type sheetStyles struct {
	header int
	data   int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	borders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    borders,
	})
	if err != nil {
		return sheetStyles{}, err
	}

	data, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    borders,
	})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, data: data}, nil
}
