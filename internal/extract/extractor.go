// Package extract reads a PDF file and collects its bookmarks, per-page
// text, annotations, and styled text spans into a single raw document
// record. Parsing failures are confined to the page or field they occur
// on; the rest of the document is still collected.
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxFileSize limits source files to 100MB.
const DefaultMaxFileSize = 100 * 1024 * 1024

// Config controls how documents are read.
type Config struct {
	// Logger receives progress and degradation reports. Defaults to
	// slog.Default.
	Logger *slog.Logger
	// MaxFileSize is the largest source file accepted, in bytes.
	MaxFileSize int64
	// MaxPages caps how many pages a single run scans. Zero means all.
	MaxPages int
}

func (c Config) defaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	return c
}

// Extractor reads PDF files into raw document records.
type Extractor struct {
	logger      *slog.Logger
	maxFileSize int64
	maxPages    int
}

// New creates an extractor with the given configuration.
func New(cfg Config) *Extractor {
	cfg = cfg.defaults()
	return &Extractor{
		logger:      cfg.Logger,
		maxFileSize: cfg.MaxFileSize,
		maxPages:    cfg.MaxPages,
	}
}

// Extract reads the document at path and returns everything it could
// collect. It fails only when the file cannot be opened at all; content
// problems inside an otherwise readable document degrade to partial
// results with error logs.
func (e *Extractor) Extract(path string) (*RawDocument, error) {
	if err := validateSourceFile(path, e.maxFileSize); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := clampPageCount(total, e.maxPages)
	if pages < total {
		e.logger.Info("page cap applied", "path", path, "pages", total, "scanning", pages)
	}

	st := e.readStructure(path)
	e.logger.Info("parsed document",
		"path", path,
		"pages", total,
		"pdf_version", st.Version,
		"producer", e.documentProducer(reader),
	)

	doc := &RawDocument{
		Bookmarks:   BookmarkList{},
		Pages:       []Page{},
		Annotations: []Annotation{},
		StyledText:  []Span{},
	}
	if len(st.Bookmarks) > 0 {
		doc.Bookmarks = BookmarkList(st.Bookmarks)
	}

	for pageNum := 1; pageNum <= pages; pageNum++ {
		e.logger.Info("processing page", "page", pageNum, "total", pages)
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{PageNumber: pageNum})
			continue
		}

		annots := e.annotationsForPage(page, pageNum)
		spans := e.styledSpans(page, pageNum)
		doc.Pages = append(doc.Pages, Page{PageNumber: pageNum, Text: e.pageText(page, pageNum)})
		doc.Annotations = append(doc.Annotations, annots...)
		doc.StyledText = append(doc.StyledText, spans...)
		e.logger.Debug("page scanned", "page", pageNum, "annotations", len(annots), "spans", len(spans))
	}

	e.logger.Info("document extracted",
		"path", path,
		"pages", len(doc.Pages),
		"annotations", len(doc.Annotations),
		"bookmarks", len(doc.Bookmarks),
		"spans", len(doc.StyledText),
	)
	return doc, nil
}

// pageText extracts the plain text of one page. A failed page yields an
// empty string and an error log.
func (e *Extractor) pageText(page pdf.Page, pageNumber int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("text extraction failed", "page", pageNumber, "cause", r)
			text = ""
		}
	}()

	content, err := page.GetPlainText(nil)
	if err != nil {
		e.logger.Error("text extraction failed", "page", pageNumber, "error", err)
		return ""
	}
	return strings.TrimSpace(content)
}

// documentProducer reads the Producer entry of the document info
// dictionary, if there is one.
func (e *Extractor) documentProducer(reader *pdf.Reader) (producer string) {
	defer func() {
		if recover() != nil {
			producer = ""
		}
	}()

	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return ""
	}
	return textValue(info.Key("Producer"))
}

func clampPageCount(total, limit int) int {
	if total < 0 {
		return 0
	}
	if limit > 0 && total > limit {
		return limit
	}
	return total
}
