package tabulate

// Workbook is the normalizer's output: summary counts plus sheet-ready row
// sets, in the shape persisted as the tabular JSON artifact.
type Workbook struct {
	Summary Summary `json:"summary"`
	Sheets  Sheets  `json:"sheets"`
}

// Summary holds the per-category record counts. Counts reflect the raw
// record set before any sheet filtering.
type Summary struct {
	Components []Component `json:"components"`
}

// Component is one summary row.
type Component struct {
	Component string `json:"Component"`
	Count     int    `json:"Count"`
}

// Sheets carries the rows for each data sheet. Keys in each row match the
// spreadsheet column headers.
type Sheets struct {
	Annotations []AnnotationRow `json:"annotations"`
	Bookmarks   []BookmarkRow   `json:"bookmarks"`
	Pages       []PageRow       `json:"pages"`
	StyledText  []StyledTextRow `json:"styled_text"`
}

// AnnotationRow is one flattened annotation. Optional attributes render as
// display strings with "" when absent, so every row has the full column
// set. The flags value appears under both its lowercase and capitalized
// headers.
type AnnotationRow struct {
	PageNumber   int    `json:"Page Number"`
	Type         string `json:"Annotation Type"`
	Content      string `json:"Content"`
	Position     string `json:"Position"`
	RawFlags     string `json:"flags"`
	ColorsStroke string `json:"colors stroke"`
	ColorsFill   string `json:"colors fill"`
	StrokeColor  string `json:"Stroke Color"`
	Opacity      string `json:"Opacity"`
	BorderWidth  string `json:"Border Width"`
	BorderDashes string `json:"Border Dashes"`
	BorderStyle  string `json:"Border Style"`
	BorderClouds string `json:"Border Clouds"`
	Rotation     string `json:"Rotation"`
	Flags        string `json:"Flags"`
	IsOpen       string `json:"Is Open"`
	PopupRect    string `json:"Popup Rectangle"`
}

// BookmarkRow is one outline entry.
type BookmarkRow struct {
	Level int    `json:"Level"`
	Title string `json:"Title"`
	Page  int    `json:"Page"`
}

// PageRow is one page with non-empty text.
type PageRow struct {
	PageNumber int    `json:"Page Number"`
	Text       string `json:"Text"`
}

// StyledTextRow is one styled-text span.
type StyledTextRow struct {
	PageNumber int    `json:"Page Number"`
	Text       string `json:"Text"`
	Font       string `json:"Font"`
	FontSize   string `json:"Font Size"`
	FontColor  string `json:"Font Color"`
	Position   string `json:"Position"`
}
