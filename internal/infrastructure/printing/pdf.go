package printing

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"
)

// pdfWriter sizes every PDF page to its sheet and embeds the sheet raster.
type pdfWriter struct {
	out   io.Writer
	doc   *fpdf.Fpdf
	pages int
}

func newPDFWriter(out io.Writer, job Job) *pdfWriter {
	sw, sh := job.SheetSize()
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: sw, Ht: sh},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("pagecore", true)
	if job.Title != "" {
		doc.SetTitle(job.Title, true)
	}
	return &pdfWriter{out: out, doc: doc}
}

func (p *pdfWriter) startPage(width, height float64) error {
	p.doc.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
	return p.doc.Error()
}

func (p *pdfWriter) emitSheet(img *image.RGBA, width, height float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	name := fmt.Sprintf("sheet-%d", p.pages)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.doc.RegisterImageOptionsReader(name, opts, &buf)
	p.doc.ImageOptions(name, 0, 0, width, height, false, opts, 0, "")
	return p.doc.Error()
}

func (p *pdfWriter) endPage() error {
	p.pages++
	return p.doc.Error()
}

func (p *pdfWriter) finish() error {
	return p.doc.Output(p.out)
}
