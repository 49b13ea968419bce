package extract

import (
	"encoding/json"
	"fmt"
)

// RawDocument is the extractor's output: everything read from one PDF in a
// single pass, in the shape persisted as the raw JSON artifact.
type RawDocument struct {
	Bookmarks   BookmarkList `json:"bookmarks"`
	Pages       []Page       `json:"pages"`
	Annotations []Annotation `json:"annotations"`
	StyledText  []Span       `json:"styled_text"`
}

// Page holds the plain text of one page. Text may be empty; the raw set
// keeps every processed page so its length matches the processed count.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// Span is one styled-text run: a stretch of page text sharing font, size
// and color within a line.
type Span struct {
	PageNumber int       `json:"page_number"`
	Text       string    `json:"text,omitempty"`
	Font       string    `json:"font,omitempty"`
	Size       float64   `json:"font_size,omitempty"`
	Color      string    `json:"font_color,omitempty"`
	BBox       []float64 `json:"bbox,omitempty"`
}

// Annotation is one markup object read from a page. The record is sparse:
// optional attributes stay nil or empty and drop out of the JSON encoding.
type Annotation struct {
	PageNumber       int         `json:"page_number"`
	Type             string      `json:"type,omitempty"`
	Rect             []float64   `json:"rect,omitempty"`
	Flags            *int        `json:"flags,omitempty"`
	Contents         string      `json:"contents,omitempty"`
	Colors           *ColorPair  `json:"colors,omitempty"`
	StrokeColor      string      `json:"stroke_color,omitempty"`
	FillColor        string      `json:"fill_color,omitempty"`
	Opacity          *float64    `json:"opacity,omitempty"`
	Border           *Border     `json:"border,omitempty"`
	PopupRect        []float64   `json:"popup_rect,omitempty"`
	Vertices         [][]float64 `json:"vertices,omitempty"`
	LineEndpoints    [][]float64 `json:"line_endpoints,omitempty"`
	Rotation         *int        `json:"rotation,omitempty"`
	QuadPoints       []float64   `json:"quad_points,omitempty"`
	IsOpen           *bool       `json:"is_open,omitempty"`
	Title            string      `json:"title,omitempty"`
	Subject          string      `json:"subject,omitempty"`
	Creator          string      `json:"creator,omitempty"`
	Content          string      `json:"content,omitempty"`
	Name             string      `json:"name,omitempty"`
	State            string      `json:"state,omitempty"`
	StateModel       string      `json:"state_model,omitempty"`
	CreationDate     string      `json:"creation_date,omitempty"`
	ModificationDate string      `json:"modification_date,omitempty"`
	FontName         string      `json:"font_name,omitempty"`
	FontSize         *int        `json:"font_size,omitempty"`
	FontColor        string      `json:"font_color,omitempty"`
}

// ColorPair carries the raw stroke/fill color components as read from the
// document (normalized 0-1 floats).
type ColorPair struct {
	Stroke []float64 `json:"stroke,omitempty"`
	Fill   []float64 `json:"fill,omitempty"`
}

func (c *ColorPair) isEmpty() bool {
	return c == nil || (len(c.Stroke) == 0 && len(c.Fill) == 0)
}

// Border describes an annotation border. All fields are optional; a border
// with nothing set is dropped from the record.
type Border struct {
	Width  *float64 `json:"width,omitempty"`
	Dashes []int    `json:"dashes,omitempty"`
	Style  string   `json:"style,omitempty"`
	Clouds *int     `json:"clouds,omitempty"`
}

func (b *Border) isEmpty() bool {
	return b == nil || (b.Width == nil && len(b.Dashes) == 0 && b.Style == "" && b.Clouds == nil)
}

// Bookmark is one outline entry. It serializes as the 3-element sequence
// [level, title, page] used by the raw JSON artifact.
type Bookmark struct {
	Level int
	Title string
	Page  int
}

// MarshalJSON renders the bookmark as [level, title, page].
func (b Bookmark) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{b.Level, b.Title, b.Page})
}

// UnmarshalJSON accepts ordered sequences shaped [level, title, page, ...];
// elements past the third are ignored.
func (b *Bookmark) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 3 {
		return fmt.Errorf("bookmark entry has %d elements, want at least 3", len(parts))
	}
	if err := json.Unmarshal(parts[0], &b.Level); err != nil {
		return fmt.Errorf("bookmark level: %w", err)
	}
	if err := json.Unmarshal(parts[1], &b.Title); err != nil {
		return fmt.Errorf("bookmark title: %w", err)
	}
	if err := json.Unmarshal(parts[2], &b.Page); err != nil {
		return fmt.Errorf("bookmark page: %w", err)
	}
	return nil
}

// BookmarkList is the document outline flattened to reading order.
type BookmarkList []Bookmark
