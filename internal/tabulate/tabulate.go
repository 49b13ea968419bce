// Package tabulate reshapes a raw document record set into
// spreadsheet-ready rows: nested attributes flatten to display strings,
// summary counts are computed per category, and pages without text drop
// out of the pages sheet.
package tabulate

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/santoshrk11/acrf-pdf-extractor/internal/extract"
)

// FromRawFile loads a persisted raw record set and reshapes it. A file
// that cannot be read or decoded fails the whole stage. Outline entries
// that do not decode as a [level, title, page] triple are skipped as sheet
// rows but still count toward the summary, which reflects the list as
// persisted.
func FromRawFile(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw records: %w", err)
	}
	var raw struct {
		Bookmarks   []json.RawMessage    `json:"bookmarks"`
		Pages       []extract.Page       `json:"pages"`
		Annotations []extract.Annotation `json:"annotations"`
		StyledText  []extract.Span       `json:"styled_text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode raw records: %w", err)
	}
	doc := &extract.RawDocument{
		Bookmarks:   decodeBookmarks(raw.Bookmarks),
		Pages:       raw.Pages,
		Annotations: raw.Annotations,
		StyledText:  raw.StyledText,
	}
	return fromRaw(doc, len(raw.Bookmarks)), nil
}

// decodeBookmarks parses the persisted outline entries, dropping any that
// do not hold a bookmark triple.
func decodeBookmarks(entries []json.RawMessage) extract.BookmarkList {
	list := make(extract.BookmarkList, 0, len(entries))
	for _, entry := range entries {
		var b extract.Bookmark
		if err := json.Unmarshal(entry, &b); err != nil {
			continue
		}
		list = append(list, b)
	}
	return list
}

// FromRaw reshapes a raw record set. Summary counts are taken from the raw
// list lengths before any sheet filtering, so filtered sheets still report
// their full totals.
func FromRaw(doc *extract.RawDocument) *Workbook {
	if doc == nil {
		doc = &extract.RawDocument{}
	}
	return fromRaw(doc, len(doc.Bookmarks))
}

func fromRaw(doc *extract.RawDocument, bookmarkTotal int) *Workbook {
	wb := &Workbook{
		Summary: Summary{Components: []Component{
			{Component: "Total Pages", Count: len(doc.Pages)},
			{Component: "Annotations", Count: len(doc.Annotations)},
			{Component: "Bookmarks", Count: bookmarkTotal},
			{Component: "Styled Text Elements", Count: len(doc.StyledText)},
		}},
		Sheets: Sheets{
			Annotations: make([]AnnotationRow, 0, len(doc.Annotations)),
			Bookmarks:   make([]BookmarkRow, 0, len(doc.Bookmarks)),
			Pages:       make([]PageRow, 0, len(doc.Pages)),
			StyledText:  make([]StyledTextRow, 0, len(doc.StyledText)),
		},
	}

	for _, a := range doc.Annotations {
		wb.Sheets.Annotations = append(wb.Sheets.Annotations, annotationRow(a))
	}
	for _, b := range doc.Bookmarks {
		wb.Sheets.Bookmarks = append(wb.Sheets.Bookmarks, BookmarkRow{
			Level: b.Level,
			Title: b.Title,
			Page:  b.Page,
		})
	}
	for _, p := range doc.Pages {
		if p.Text == "" {
			continue
		}
		wb.Sheets.Pages = append(wb.Sheets.Pages, PageRow{PageNumber: p.PageNumber, Text: p.Text})
	}
	for _, s := range doc.StyledText {
		wb.Sheets.StyledText = append(wb.Sheets.StyledText, styledTextRow(s))
	}
	return wb
}

func annotationRow(a extract.Annotation) AnnotationRow {
	row := AnnotationRow{
		PageNumber:  a.PageNumber,
		Type:        a.Type,
		Content:     a.Content,
		Position:    displayFloats(a.Rect),
		StrokeColor: a.StrokeColor,
		PopupRect:   displayFloats(a.PopupRect),
	}
	if a.Flags != nil {
		v := strconv.Itoa(*a.Flags)
		row.RawFlags = v
		row.Flags = v
	}
	if a.Colors != nil {
		row.ColorsStroke = displayFloats(a.Colors.Stroke)
		row.ColorsFill = displayFloats(a.Colors.Fill)
	}
	if a.Opacity != nil {
		row.Opacity = formatFloat(*a.Opacity)
	}
	if a.Border != nil {
		if a.Border.Width != nil {
			row.BorderWidth = formatFloat(*a.Border.Width)
		}
		row.BorderDashes = displayInts(a.Border.Dashes)
		row.BorderStyle = a.Border.Style
		if a.Border.Clouds != nil {
			row.BorderClouds = strconv.Itoa(*a.Border.Clouds)
		}
	}
	if a.Rotation != nil {
		row.Rotation = strconv.Itoa(*a.Rotation)
	}
	if a.IsOpen != nil {
		row.IsOpen = strconv.FormatBool(*a.IsOpen)
	}
	return row
}

func styledTextRow(s extract.Span) StyledTextRow {
	row := StyledTextRow{
		PageNumber: s.PageNumber,
		Text:       s.Text,
		Font:       s.Font,
		FontColor:  s.Color,
		Position:   displayFloats(s.BBox),
	}
	if s.Size != 0 {
		row.FontSize = formatFloat(s.Size)
	}
	return row
}
