package printing

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"image"
	"io"
)

const hexLineBytes = 39

// postScriptWriter emits DSC-conforming PostScript, one raster image per
// sheet. Landscape sheets are printed sideways on portrait paper.
type postScriptWriter struct {
	w     *bufio.Writer
	err   error
	job   Job
	pages int
	// paper extent in portrait orientation
	paperW, paperH float64
	sideways       bool
}

func newPostScriptWriter(out io.Writer, job Job) (*postScriptWriter, error) {
	pw, ph := job.PaperWidth, job.PaperHeight
	if pw > ph {
		pw, ph = ph, pw
	}
	ps := &postScriptWriter{
		w:      bufio.NewWriter(out),
		job:    job,
		paperW: pw,
		paperH: ph,
	}
	orientation := "Portrait"
	if job.Landscape {
		orientation = "Landscape"
	}
	title := job.Title
	if title == "" {
		title = "pagecore"
	}
	ps.printf("%%!PS-Adobe-3.0\n")
	ps.printf("%%%%Creator: pagecore\n")
	ps.printf("%%%%Title: (%s)\n", escapePS(title))
	ps.printf("%%%%LanguageLevel: %d\n", job.Level)
	ps.printf("%%%%Orientation: %s\n", orientation)
	ps.printf("%%%%BoundingBox: 0 0 %d %d\n", int(pw+0.5), int(ph+0.5))
	ps.printf("%%%%DocumentMedia: plain %d %d 0 () ()\n", int(pw+0.5), int(ph+0.5))
	ps.printf("%%%%Pages: (atend)\n")
	ps.printf("%%%%EndComments\n")
	ps.printf("%%%%BeginProlog\n%%%%EndProlog\n")
	ps.printf("%%%%BeginSetup\n%%%%EndSetup\n")
	return ps, ps.err
}

func (p *postScriptWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *postScriptWriter) startPage(width, height float64) error {
	p.pages++
	p.sideways = width > height
	orientation := "Portrait"
	if p.sideways {
		orientation = "Landscape"
	}
	p.printf("%%%%Page: %d %d\n", p.pages, p.pages)
	p.printf("%%%%PageOrientation: %s\n", orientation)
	p.printf("%%%%PageBoundingBox: 0 0 %d %d\n", int(p.paperW+0.5), int(p.paperH+0.5))
	p.printf("gsave\n")
	if p.sideways {
		// sheet x runs up the paper, sheet y runs right to left
		p.printf("%.2f 0 translate 90 rotate\n", p.paperW)
	}
	return p.err
}

func (p *postScriptWriter) emitSheet(img *image.RGBA, width, height float64) error {
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	p.printf("%.2f %.2f scale\n", width, height)
	p.printf("/DeviceRGB setcolorspace\n")
	p.printf("<< /ImageType 1 /Width %d /Height %d /BitsPerComponent 8\n", iw, ih)
	p.printf("   /Decode [0 1 0 1 0 1] /ImageMatrix [%d 0 0 -%d 0 %d]\n", iw, ih, ih)
	p.printf("   /DataSource currentfile /ASCIIHexDecode filter >> image\n")
	if p.err != nil {
		return p.err
	}

	line := make([]byte, 0, hexLineBytes)
	enc := make([]byte, hex.EncodedLen(hexLineBytes))
	flush := func() {
		if len(line) == 0 || p.err != nil {
			return
		}
		n := hex.Encode(enc, line)
		if _, err := p.w.Write(enc[:n]); err != nil {
			p.err = err
			return
		}
		p.err = p.w.WriteByte('\n')
		line = line[:0]
	}
	for y := 0; y < ih; y++ {
		row := img.Pix[(y)*img.Stride:]
		for x := 0; x < iw; x++ {
			px := row[x*4 : x*4+3]
			line = append(line, px...)
			if len(line) >= hexLineBytes {
				flush()
			}
		}
	}
	flush()
	p.printf(">\n")
	return p.err
}

func (p *postScriptWriter) endPage() error {
	p.printf("grestore\nshowpage\n")
	return p.err
}

func (p *postScriptWriter) finish() error {
	p.printf("%%%%Trailer\n%%%%Pages: %d\n%%%%EOF\n", p.pages)
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

func escapePS(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', ')', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
