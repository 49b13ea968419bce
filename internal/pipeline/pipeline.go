// Package pipeline chains the three stages over a single PDF: extract the
// raw records, reshape them into workbook form, and render the styled
// report. Each stage's output is persisted so later stages can be re-run
// from the artifacts alone.
package pipeline

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santoshrk11/acrf-pdf-extractor/internal/extract"
	"github.com/santoshrk11/acrf-pdf-extractor/internal/report"
	"github.com/santoshrk11/acrf-pdf-extractor/internal/tabulate"
)

const (
	suffixRawJSON     = "_raw.json"
	suffixTabularJSON = "_tabular.json"
	suffixReport      = "_report.xlsx"
)

// Config controls one pipeline run.
type Config struct {
	// Logger receives stage progress and caught errors. Defaults to
	// slog.Default.
	Logger *slog.Logger

	// MaxFileSize and MaxPages bound the extraction stage. Zero values
	// take the extractor defaults.
	MaxFileSize int64
	MaxPages    int

	// OutputDir receives the three artifacts. Defaults to the current
	// directory.
	OutputDir string

	// RawJSON, TabularJSON and Report override the artifact filenames.
	// When empty the names derive from the source base name.
	RawJSON     string
	TabularJSON string
	Report      string
}

func (c Config) defaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return c
}

// Pipeline runs the extract, tabulate and report stages in order.
type Pipeline struct {
	logger      *slog.Logger
	extractor   *extract.Extractor
	reporter    *report.Writer
	outputDir   string
	rawName     string
	tabularName string
	reportName  string
}

// New creates a pipeline from cfg.
func New(cfg Config) *Pipeline {
	cfg = cfg.defaults()
	return &Pipeline{
		logger: cfg.Logger,
		extractor: extract.New(extract.Config{
			Logger:      cfg.Logger,
			MaxFileSize: cfg.MaxFileSize,
			MaxPages:    cfg.MaxPages,
		}),
		reporter:    report.New(report.Config{Logger: cfg.Logger}),
		outputDir:   cfg.OutputDir,
		rawName:     cfg.RawJSON,
		tabularName: cfg.TabularJSON,
		reportName:  cfg.Report,
	}
}

// Run processes the PDF at path. Stage failures before the report are
// logged and end the run without an error: the run simply produces fewer
// artifacts. Only a report write failure is returned to the caller.
func (p *Pipeline) Run(path string) error {
	doc, err := p.extractor.Extract(path)
	if err != nil {
		p.logger.Error("extraction failed", "path", path, "error", err)
		return nil
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		p.logger.Error("cannot create output directory", "dir", p.outputDir, "error", err)
		return nil
	}

	rawPath := p.artifactPath(path, p.rawName, suffixRawJSON)
	if err := writeJSON(rawPath, doc); err != nil {
		p.logger.Error("raw record write failed", "path", rawPath, "error", err)
		return nil
	}
	p.logger.Info("raw records written", "path", rawPath)

	wb, err := tabulate.FromRawFile(rawPath)
	if err != nil {
		p.logger.Error("normalization failed", "path", rawPath, "error", err)
		return nil
	}

	tabularPath := p.artifactPath(path, p.tabularName, suffixTabularJSON)
	if err := writeJSON(tabularPath, wb); err != nil {
		p.logger.Error("tabular record write failed", "path", tabularPath, "error", err)
		return nil
	}
	p.logger.Info("tabular records written", "path", tabularPath)

	reportPath := p.artifactPath(path, p.reportName, suffixReport)
	return p.reporter.Write(reportPath, wb)
}

// artifactPath resolves one artifact location: an explicit override name
// wins, otherwise the source base name plus the stage suffix.
func (p *Pipeline) artifactPath(src, override, suffix string) string {
	name := override
	if name == "" {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		name = base + suffix
	}
	return filepath.Join(p.outputDir, name)
}
