package report

import "github.com/santoshrk11/acrf-pdf-extractor/internal/tabulate"

var annotationHeaders = []string{
	"Page Number", "Annotation Type", "Content", "Position", "flags",
	"colors stroke", "colors fill", "Stroke Color", "Opacity",
	"Border Width", "Border Dashes", "Border Style", "Border Clouds",
	"Rotation", "Flags", "Is Open", "Popup Rectangle",
}

func summaryTable(s tabulate.Summary) ([]string, [][]string) {
	rows := make([][]string, 0, len(s.Components))
	for _, c := range s.Components {
		rows = append(rows, []string{cleanCell(c.Component), cleanCell(c.Count)})
	}
	return []string{"Component", "Count"}, rows
}

func annotationTable(rs []tabulate.AnnotationRow) ([]string, [][]string) {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{
			cleanCell(r.PageNumber),
			cleanCell(r.Type),
			cleanCell(r.Content),
			cleanCell(r.Position),
			cleanCell(r.RawFlags),
			cleanCell(r.ColorsStroke),
			cleanCell(r.ColorsFill),
			cleanCell(r.StrokeColor),
			cleanCell(r.Opacity),
			cleanCell(r.BorderWidth),
			cleanCell(r.BorderDashes),
			cleanCell(r.BorderStyle),
			cleanCell(r.BorderClouds),
			cleanCell(r.Rotation),
			cleanCell(r.Flags),
			cleanCell(r.IsOpen),
			cleanCell(r.PopupRect),
		})
	}
	return annotationHeaders, rows
}

func bookmarkTable(rs []tabulate.BookmarkRow) ([]string, [][]string) {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{cleanCell(r.Level), cleanCell(r.Title), cleanCell(r.Page)})
	}
	return []string{"Level", "Title", "Page"}, rows
}

func pageTable(rs []tabulate.PageRow) ([]string, [][]string) {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{cleanCell(r.PageNumber), cleanCell(r.Text)})
	}
	return []string{"Page Number", "Text"}, rows
}

func styledTextTable(rs []tabulate.StyledTextRow) ([]string, [][]string) {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{
			cleanCell(r.PageNumber),
			cleanCell(r.Text),
			cleanCell(r.Font),
			cleanCell(r.FontSize),
			cleanCell(r.FontColor),
			cleanCell(r.Position),
		})
	}
	return []string{"Page Number", "Text", "Font", "Font Size", "Font Color", "Position"}, rows
}
