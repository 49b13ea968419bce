package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pdfBuilder assembles a small but structurally valid PDF with exact xref
// offsets, so both document readers accept it.
type pdfBuilder struct {
	buf     strings.Builder
	offsets []int
}

func newPDFBuilder() *pdfBuilder {
	b := &pdfBuilder{}
	b.buf.WriteString("%PDF-1.4\n")
	b.offsets = append(b.offsets, 0)
	return b
}

func (b *pdfBuilder) addObject(body string) {
	num := len(b.offsets)
	b.offsets = append(b.offsets, b.buf.Len())
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

func (b *pdfBuilder) addStream(stream string) {
	b.addObject(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
}

func (b *pdfBuilder) bytes(rootRef, infoRef string) []byte {
	xrefOffset := b.buf.Len()
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", len(b.offsets))
	b.buf.WriteString("0000000000 65535 f \n")
	for _, off := range b.offsets[1:] {
		fmt.Fprintf(&b.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d /Root %s", len(b.offsets), rootRef)
	if infoRef != "" {
		fmt.Fprintf(&b.buf, " /Info %s", infoRef)
	}
	fmt.Fprintf(&b.buf, " >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)
	return []byte(b.buf.String())
}

// buildReviewPDF writes a two-page document with an outline, an info
// dictionary, a Highlight with a popup on page one, and a FreeText on
// page two.
func buildReviewPDF() []byte {
	b := newPDFBuilder()
	b.addObject(`<< /Type /Catalog /Pages 2 0 R /Outlines 10 0 R >>`)
	b.addObject(`<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>`)
	b.addObject(`<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 5 0 R ` +
		`/Resources << /Font << /Helvetica 7 0 R >> >> /Annots [8 0 R 12 0 R] >>`)
	b.addObject(`<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 6 0 R ` +
		`/Resources << /Font << /Helvetica 7 0 R >> >> /Annots [9 0 R] >>`)
	b.addStream("BT\n/Helvetica 12 Tf\n72 700 Td\n(Subject identifier recorded at screening) Tj\nET")
	b.addStream("BT\n/Helvetica 12 Tf\n72 700 Td\n(Adverse event term and onset date) Tj\nET")
	b.addObject(`<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>`)
	b.addObject(`<< /Type /Annot /Subtype /Highlight /Rect [66.504 686.25 200 700.8] /C [1 0 0] ` +
		`/QuadPoints [66 701 200 701 66 686 200 686] /Contents (AEYN: any adverse events?) ` +
		`/T (Reviewer 1) /Subj (Data Mapping) /NM (annot-0001) ` +
		`/CreationDate (D:20230615143000Z) /M (D:20230616091500Z) ` +
		`/F 4 /CA 0.75 /Open false /Popup 12 0 R >>`)
	b.addObject(`<< /Type /Annot /Subtype /FreeText /Rect [100 600 300 650.55] ` +
		`/DA (/Helv 12 Tf 0 0 1 rg) /Contents (Derived from the visit date) ` +
		`/BS << /W 1.5 /S /D /D [3 2] >> /Rotate 90 >>`)
	b.addObject(`<< /Type /Outlines /First 11 0 R /Last 13 0 R /Count 2 >>`)
	b.addObject(`<< /Title (Demographics) /Parent 10 0 R /Next 13 0 R /Dest [3 0 R /Fit] >>`)
	b.addObject(`<< /Type /Annot /Subtype /Popup /Rect [210.333 640 310 700] /Parent 8 0 R >>`)
	b.addObject(`<< /Title (Adverse Events) /Parent 10 0 R /Prev 11 0 R /Dest [4 0 R /Fit] >>`)
	b.addObject(`<< /Producer (acroform-tools 2.1) /CreationDate (D:20230601120000Z) >>`)
	return b.bytes("1 0 R", "14 0 R")
}

// buildShapePDF writes a single page carrying one Polygon annotation with
// stroke and fill colors, vertices, line endpoints, a legacy border array,
// and a cloud effect.
func buildShapePDF() []byte {
	b := newPDFBuilder()
	b.addObject(`<< /Type /Catalog /Pages 2 0 R >>`)
	b.addObject(`<< /Type /Pages /Kids [3 0 R] /Count 1 >>`)
	b.addObject(`<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R ` +
		`/Resources << /Font << /Helvetica 5 0 R >> >> /Annots [6 0 R] >>`)
	b.addStream("BT\n/Helvetica 10 Tf\n72 700 Td\n(Visit window shape) Tj\nET")
	b.addObject(`<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>`)
	b.addObject(`<< /Type /Annot /Subtype /Polygon /Rect [50 50 250 250] /C [0 0 1] /IC [0 1 0] ` +
		`/Vertices [50 50 250 50 150 250] /L [10 20 30 40] ` +
		`/Border [0 0 2 [4 1]] /BE << /S /C /I 2 >> >>`)
	return b.bytes("1 0 R", "")
}

// writeTestPDF drops the raw bytes into a temp file and returns its path.
func writeTestPDF(t *testing.T, raw []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
