package report

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/santoshrk11/acrf-pdf-extractor/internal/tabulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleWorkbook() *tabulate.Workbook {
	return &tabulate.Workbook{
		Summary: tabulate.Summary{Components: []tabulate.Component{
			{Component: "Total Pages", Count: 2},
			{Component: "Annotations", Count: 2},
			{Component: "Bookmarks", Count: 1},
			{Component: "Styled Text Elements", Count: 1},
		}},
		Sheets: tabulate.Sheets{
			Annotations: []tabulate.AnnotationRow{
				{
					PageNumber:   1,
					Type:         "Highlight",
					Content:      "AEYN: any adverse events?",
					Position:     "[66.5, 686.25, 200, 700.8]",
					RawFlags:     "4",
					ColorsStroke: "[1, 0, 0]",
					StrokeColor:  "#FF0000",
					Opacity:      "0.75",
					Flags:        "4",
					IsOpen:       "false",
					PopupRect:    "[210.33, 640, 310, 700]",
				},
				{
					PageNumber:   2,
					Type:         "FreeText",
					Content:      "=SUM(A1:A9)",
					Position:     "[100, 600, 300, 650.55]",
					RawFlags:     "0",
					BorderWidth:  "1.5",
					BorderDashes: "[3, 2]",
					BorderStyle:  "D",
					Rotation:     "90",
					Flags:        "0",
				},
			},
			Bookmarks: []tabulate.BookmarkRow{
				{Level: 1, Title: "Demographics", Page: 1},
			},
			Pages: []tabulate.PageRow{
				{PageNumber: 1, Text: "Subject identifier recorded at screening on the first visit"},
			},
			StyledText: []tabulate.StyledTextRow{
				{PageNumber: 1, Text: "Subject identifier", Font: "Helvetica", FontSize: "12", FontColor: "#000000", Position: "[72, 700, 93, 712]"},
			},
		},
	}
}

func TestWriteFullWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := New(Config{Logger: testLogger()})

	require.NoError(t, w.Write(path, sampleWorkbook()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Annotations", "Bookmarks", "Pages", "Styled Text"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Component", "Count"},
		{"Total Pages", "2"},
		{"Annotations", "2"},
		{"Bookmarks", "1"},
		{"Styled Text Elements", "1"},
	}, summary)

	header, err := f.GetRows("Annotations")
	require.NoError(t, err)
	require.Len(t, header[0], 17)
	assert.Equal(t, "Page Number", header[0][0])
	assert.Equal(t, "flags", header[0][4])
	assert.Equal(t, "Flags", header[0][14])
	assert.Equal(t, "Popup Rectangle", header[0][16])

	for cell, want := range map[string]string{
		"A2": "1",
		"B2": "Highlight",
		"C2": "AEYN: any adverse events?",
		"H2": "#FF0000",
		"P2": "false",
		"Q2": "[210.33, 640, 310, 700]",
		"J3": "1.5",
		"N3": "90",
	} {
		got, err := f.GetCellValue("Annotations", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}

	bookmarks, err := f.GetRows("Bookmarks")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Level", "Title", "Page"},
		{"1", "Demographics", "1"},
	}, bookmarks)

	styled, err := f.GetRows("Styled Text")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Page Number", "Text", "Font", "Font Size", "Font Color", "Position"},
		{"1", "Subject identifier", "Helvetica", "12", "#000000", "[72, 700, 93, 712]"},
	}, styled)
}

func TestWriteStripsFormulaPrefixes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := New(Config{Logger: testLogger()})

	wb := &tabulate.Workbook{
		Sheets: tabulate.Sheets{
			Pages: []tabulate.PageRow{
				{PageNumber: 1, Text: "=SUM(A1:A9)"},
				{PageNumber: 2, Text: "==cmd|' /C calc'!A0"},
				{PageNumber: 3, Text: "a=b stays put"},
			},
		},
	}
	require.NoError(t, w.Write(path, wb))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pages")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Page Number", "Text"},
		{"1", "SUM(A1:A9)"},
		{"2", "cmd|' /C calc'!A0"},
		{"3", "a=b stays put"},
	}, rows)
}

func TestWriteCapsColumnWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := New(Config{Logger: testLogger()})

	require.NoError(t, w.Write(path, sampleWorkbook()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// The page text is longer than the cap allows.
	width, err := f.GetColWidth("Pages", "B")
	require.NoError(t, err)
	assert.Equal(t, float64(maxColumnWidth), width)

	// "Page Number" plus padding, untouched by the cap.
	width, err = f.GetColWidth("Pages", "A")
	require.NoError(t, err)
	assert.Equal(t, float64(13), width)
}

func TestWriteSkipsEmptySheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := New(Config{Logger: testLogger()})

	wb := &tabulate.Workbook{
		Summary: tabulate.Summary{Components: []tabulate.Component{
			{Component: "Total Pages", Count: 1},
			{Component: "Annotations", Count: 0},
			{Component: "Bookmarks", Count: 2},
			{Component: "Styled Text Elements", Count: 0},
		}},
		Sheets: tabulate.Sheets{
			Bookmarks: []tabulate.BookmarkRow{
				{Level: 1, Title: "Demographics", Page: 1},
				{Level: 2, Title: "Vital Signs", Page: 1},
			},
		},
	}
	require.NoError(t, w.Write(path, wb))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Bookmarks"}, f.GetSheetList())
}

func TestWriteNilWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := New(Config{Logger: testLogger()})

	require.NoError(t, w.Write(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary"}, f.GetSheetList())
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Component", "Count"}}, rows)
}

func TestWriteFailsOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "report.xlsx")
	w := New(Config{Logger: testLogger()})

	err := w.Write(path, sampleWorkbook())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}
