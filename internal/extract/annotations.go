package extract

import (
	"regexp"
	"strconv"

	"github.com/ledongthuc/pdf"
)

const annotTypeFreeText = "FreeText"

// Appearance-string grammar: "/Name Size Tf" selects the font and
// "r g b rg" sets the fill color. Either directive may be absent.
var (
	fontDirectiveRe  = regexp.MustCompile(`/([^\s]+)\s+(\d+)\s+Tf`)
	colorDirectiveRe = regexp.MustCompile(`(\d*\.?\d+)\s+(\d*\.?\d+)\s+(\d*\.?\d+)\s+rg`)
)

// appearance holds the pieces parsed out of a FreeText default-appearance
// string.
type appearance struct {
	FontName  string
	FontSize  int
	FontColor string
}

// parseAppearance extracts the font and fill-color directives from a
// default-appearance string. Absent directives leave zero values.
func parseAppearance(da string) appearance {
	var app appearance
	if m := fontDirectiveRe.FindStringSubmatch(da); m != nil {
		app.FontName = m[1]
		app.FontSize, _ = strconv.Atoi(m[2])
	}
	if m := colorDirectiveRe.FindStringSubmatch(da); m != nil {
		rgb := make([]float64, 3)
		for i := range rgb {
			rgb[i], _ = strconv.ParseFloat(m[i+1], 64)
		}
		app.FontColor = hexFromComponents(rgb)
	}
	return app
}

// annotationsForPage walks the page's /Annots array and builds one record
// per annotation dictionary. A page-level failure yields whatever was
// collected so far plus an error log; it never aborts other pages.
func (e *Extractor) annotationsForPage(page pdf.Page, pageNumber int) (records []Annotation) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("annotation scan failed", "page", pageNumber, "cause", r)
		}
	}()

	annots := page.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Kind() != pdf.Dict {
			continue
		}
		// Popups surface through their parent's popup_rect, not as
		// records of their own.
		if annot.Key("Subtype").Name() == "Popup" {
			continue
		}
		records = append(records, e.annotationRecord(annot, pageNumber))
	}
	return records
}

// annotationRecord collects every attribute of one annotation. Each field
// group is read under its own guard so a malformed value costs only that
// field, not the record.
func (e *Extractor) annotationRecord(annot pdf.Value, pageNumber int) Annotation {
	rec := Annotation{PageNumber: pageNumber}

	e.readField(pageNumber, "type", func() {
		rec.Type = annot.Key("Subtype").Name()
	})
	e.readField(pageNumber, "rect", func() {
		rec.Rect = roundedFloats(floatsFromArray(annot.Key("Rect")), 2)
	})
	e.readField(pageNumber, "flags", func() {
		flags := 0
		if f, ok := numericValue(annot.Key("F")); ok {
			flags = int(f)
		}
		rec.Flags = &flags
	})
	e.readField(pageNumber, "contents", func() {
		rec.Contents = textValue(annot.Key("Contents"))
	})
	e.readField(pageNumber, "colors", func() {
		pair := &ColorPair{
			Stroke: floatsFromArray(annot.Key("C")),
			Fill:   floatsFromArray(annot.Key("IC")),
		}
		if !pair.isEmpty() {
			rec.Colors = pair
		}
		rec.StrokeColor = hexFromComponents(pair.Stroke)
		rec.FillColor = hexFromComponents(pair.Fill)
	})
	e.readField(pageNumber, "opacity", func() {
		if v, ok := numericValue(annot.Key("CA")); ok {
			rec.Opacity = &v
		}
	})
	e.readField(pageNumber, "border", func() {
		if b := borderDescriptor(annot); !b.isEmpty() {
			rec.Border = b
		}
	})
	e.readField(pageNumber, "popup", func() {
		if popup := annot.Key("Popup"); popup.Kind() == pdf.Dict {
			rec.PopupRect = roundedFloats(floatsFromArray(popup.Key("Rect")), 2)
		}
	})
	e.readField(pageNumber, "geometry", func() {
		rec.Vertices = pointPairs(floatsFromArray(annot.Key("Vertices")))
		rec.LineEndpoints = pointPairs(floatsFromArray(annot.Key("L")))
		rec.QuadPoints = floatsFromArray(annot.Key("QuadPoints"))
	})
	e.readField(pageNumber, "rotation", func() {
		if v, ok := numericValue(annot.Key("Rotate")); ok {
			rot := int(v)
			rec.Rotation = &rot
		}
	})
	e.readField(pageNumber, "open", func() {
		if open := annot.Key("Open"); open.Kind() == pdf.Bool {
			v := open.Bool()
			rec.IsOpen = &v
		}
	})
	e.readField(pageNumber, "info", func() {
		rec.Title = textValue(annot.Key("T"))
		rec.Subject = textValue(annot.Key("Subj"))
		rec.Creator = textValue(annot.Key("Creator"))
		rec.Content = textValue(annot.Key("Contents"))
		rec.Name = textValue(annot.Key("NM"))
		rec.State = textValue(annot.Key("State"))
		rec.StateModel = textValue(annot.Key("StateModel"))
	})
	e.readField(pageNumber, "dates", func() {
		rec.CreationDate = e.normalizedDate(pageNumber, "CreationDate", annot.Key("CreationDate"))
		rec.ModificationDate = e.normalizedDate(pageNumber, "M", annot.Key("M"))
	})
	if rec.Type == annotTypeFreeText {
		e.readField(pageNumber, "appearance", func() {
			app := parseAppearance(textValue(annot.Key("DA")))
			if app.FontName != "" {
				rec.FontName = app.FontName
				size := app.FontSize
				rec.FontSize = &size
			}
			rec.FontColor = app.FontColor
		})
	}
	return rec
}

// readField runs one guarded attribute read. The document layer panics on
// malformed object graphs; a failed read leaves the field absent while the
// rest of the annotation is still collected.
func (e *Extractor) readField(pageNumber int, field string, read func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("annotation field unavailable", "page", pageNumber, "field", field, "cause", r)
		}
	}()
	read()
}

func (e *Extractor) normalizedDate(pageNumber int, key string, v pdf.Value) string {
	s, err := normalizeDate(textValue(v))
	if err != nil {
		e.logger.Debug("unparseable annotation date", "page", pageNumber, "key", key, "error", err)
		return ""
	}
	return s
}

// borderDescriptor reads /BS (plus the /BE cloud effect) and falls back to
// the legacy /Border array for width and dashes.
func borderDescriptor(annot pdf.Value) *Border {
	b := &Border{}
	if bs := annot.Key("BS"); bs.Kind() == pdf.Dict {
		if w, ok := numericValue(bs.Key("W")); ok {
			b.Width = &w
		}
		b.Dashes = intsFromArray(bs.Key("D"))
		b.Style = bs.Key("S").Name()
	}
	if be := annot.Key("BE"); be.Kind() == pdf.Dict && be.Key("S").Name() == "C" {
		intensity := 0
		if v, ok := numericValue(be.Key("I")); ok {
			intensity = int(v)
		}
		b.Clouds = &intensity
	}
	if legacy := annot.Key("Border"); legacy.Kind() == pdf.Array && legacy.Len() >= 3 {
		if b.Width == nil {
			if w, ok := numericValue(legacy.Index(2)); ok {
				b.Width = &w
			}
		}
		if len(b.Dashes) == 0 && legacy.Len() >= 4 {
			b.Dashes = intsFromArray(legacy.Index(3))
		}
	}
	return b
}
