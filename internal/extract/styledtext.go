package extract

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Runs whose baselines differ by less than this many points belong to the
// same line.
const baselineTolerance = 0.5

// styledSpans flattens a page's positioned text runs into span records.
// Consecutive runs sharing a baseline, font, and size merge into one span.
func (e *Extractor) styledSpans(page pdf.Page, pageNumber int) []Span {
	return spansFromRuns(e.textRunsForPage(page, pageNumber), pageNumber)
}

// textRunsForPage reads the page content stream. The parser panics on
// malformed streams; the guard turns that into an empty result for the page.
func (e *Extractor) textRunsForPage(page pdf.Page, pageNumber int) (runs []pdf.Text) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("styled text scan failed", "page", pageNumber, "cause", r)
			runs = nil
		}
	}()
	return page.Content().Text
}

func spansFromRuns(runs []pdf.Text, pageNumber int) []Span {
	var spans []Span
	var cur *spanBuilder
	flush := func() {
		if cur == nil {
			return
		}
		spans = append(spans, cur.build(pageNumber))
		cur = nil
	}
	for _, run := range runs {
		if run.S == "" {
			continue
		}
		if cur != nil && cur.accepts(run) {
			cur.add(run)
			continue
		}
		flush()
		cur = newSpanBuilder(run)
	}
	flush()
	return spans
}

// spanBuilder accumulates runs into one span and tracks its horizontal
// extent along the shared baseline.
type spanBuilder struct {
	text     strings.Builder
	font     string
	size     float64
	baseline float64
	minX     float64
	maxX     float64
}

func newSpanBuilder(run pdf.Text) *spanBuilder {
	b := &spanBuilder{
		font:     run.Font,
		size:     run.FontSize,
		baseline: run.Y,
		minX:     run.X,
		maxX:     run.X + run.W,
	}
	b.text.WriteString(run.S)
	return b
}

func (b *spanBuilder) accepts(run pdf.Text) bool {
	return run.Font == b.font &&
		run.FontSize == b.size &&
		math.Abs(run.Y-b.baseline) < baselineTolerance
}

func (b *spanBuilder) add(run pdf.Text) {
	b.text.WriteString(run.S)
	if run.X < b.minX {
		b.minX = run.X
	}
	if right := run.X + run.W; right > b.maxX {
		b.maxX = right
	}
}

// build finalizes the span. The content stream carries no fill-color state
// through this layer, so spans report the default black. A span whose text
// trims to nothing keeps its record; the empty text drops out of the JSON
// while the position and font stay.
func (b *spanBuilder) build(pageNumber int) Span {
	return Span{
		PageNumber: pageNumber,
		Text:       strings.TrimSpace(b.text.String()),
		Font:       b.font,
		Size:       b.size,
		Color:      hexFromPacked(0),
		BBox:       roundedFloats([]float64{b.minX, b.baseline, b.maxX, b.baseline + b.size}, 3),
	}
}
