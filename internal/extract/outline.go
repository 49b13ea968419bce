package extract

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// structureInfo carries what the structural reader contributes on top of
// the content reader: the flattened outline and the header version.
type structureInfo struct {
	Bookmarks []Bookmark
	Version   string
}

// readStructure loads the document through pdfcpu and flattens its outline
// tree into [level, title, page] records. Structural problems are logged
// and yield an empty result; they never abort the extraction.
func (e *Extractor) readStructure(path string) structureInfo {
	var info structureInfo

	f, err := os.Open(path)
	if err != nil {
		e.logger.Error("structural read failed", "path", path, "error", err)
		return info
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		e.logger.Error("structural read failed", "path", path, "error", err)
		return info
	}
	if ctx.HeaderVersion != nil {
		info.Version = ctx.HeaderVersion.String()
	}

	bms, err := pdfcpu.Bookmarks(ctx)
	if err != nil {
		e.logger.Debug("document has no outline", "path", path, "error", err)
		return info
	}
	info.Bookmarks = flattenOutline(bms, 1)
	return info
}

// flattenOutline walks the bookmark tree depth first, emitting each node
// before its children. Top-level entries sit at level 1.
func flattenOutline(bms []pdfcpu.Bookmark, level int) []Bookmark {
	var out []Bookmark
	for _, bm := range bms {
		out = append(out, Bookmark{Level: level, Title: bm.Title, Page: bm.PageFrom})
		out = append(out, flattenOutline(bm.Kids, level+1)...)
	}
	return out
}
