// Package printing renders paginated content onto sheets and writes them as
// PDF or PostScript.
package printing

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"
	xdraw "golang.org/x/image/draw"

	"github.com/bnema/pagecore/internal/application/port"
	pagination "github.com/bnema/pagecore/internal/domain/printing"
)

// ErrUnavailable is returned when no print surface could be created or no job
// is running. The job is aborted.
var ErrUnavailable = errors.New("printing unavailable")

// DefaultResolution is the number of device pixels per paper point.
const DefaultResolution = 2.0

// Kind is the output device of a job.
type Kind int

const (
	KindPDF Kind = iota
	KindPostScript
)

func (k Kind) String() string {
	if k == KindPostScript {
		return "postscript"
	}
	return "pdf"
}

// Job describes one print or PDF export.
type Job struct {
	pagination.Params

	PrintBackgrounds bool
	// Level is the PostScript language level, 2 or 3. Ignored for PDF.
	Level int
	// Output receives the document. When nil, OutputFile is created.
	Output     io.Writer
	OutputFile string
	Resolution float64
	Title      string
}

type backend interface {
	startPage(width, height float64) error
	emitSheet(img *image.RGBA, width, height float64) error
	endPage() error
	finish() error
}

// Session owns the print surface of one page session.
type Session struct {
	logger zerolog.Logger

	job     Job
	kind    Kind
	backend backend
	closer  io.Closer
	running bool
	sheets  int

	surface     *gg.Pixmap
	surfaceW    int
	surfaceH    int
	surfacePage int
	surfaceKind Kind
	generation  int

	scaled  *image.RGBA
	scaledW int
	scaledH int
}

// NewSession returns an idle session.
func NewSession(logger zerolog.Logger) *Session {
	return &Session{logger: logger.With().Str("component", "print-session").Logger()}
}

// PrintStart begins a PostScript job.
func (s *Session) PrintStart(job Job) error {
	if job.Level == 0 {
		job.Level = 2
	}
	if job.Level != 2 && job.Level != 3 {
		return fmt.Errorf("unsupported PostScript level %d", job.Level)
	}
	return s.start(job, KindPostScript)
}

// PDFStart begins a PDF job.
func (s *Session) PDFStart(job Job) error {
	return s.start(job, KindPDF)
}

func (s *Session) start(job Job, kind Kind) error {
	if err := pagination.Validate(job.PagesPerSheet); err != nil {
		return err
	}
	if job.PaperWidth <= 0 || job.PaperHeight <= 0 {
		return fmt.Errorf("invalid paper size %.1fx%.1f", job.PaperWidth, job.PaperHeight)
	}
	if job.Resolution <= 0 {
		job.Resolution = DefaultResolution
	}
	if s.running {
		s.abort()
	}

	w := job.Output
	if w == nil {
		if job.OutputFile == "" {
			return fmt.Errorf("print job has no output")
		}
		f, err := os.Create(job.OutputFile)
		if err != nil {
			return fmt.Errorf("create print output: %w", err)
		}
		w = f
		s.closer = f
	}

	s.job = job
	s.kind = kind
	s.sheets = 0
	switch kind {
	case KindPostScript:
		ps, err := newPostScriptWriter(w, job)
		if err != nil {
			s.closeOutput()
			return err
		}
		s.backend = ps
	default:
		s.backend = newPDFWriter(w, job)
	}
	s.running = true
	s.logger.Info().
		Str("kind", kind.String()).
		Int("pages_per_sheet", job.PagesPerSheet).
		Bool("landscape", job.Landscape).
		Msg("print job started")
	return nil
}

// Running reports whether a job is in progress.
func (s *Session) Running() bool { return s.running }

// Kind returns the output device of the current job.
func (s *Session) Kind() Kind { return s.kind }

// EnsureSurface makes the print surface w×h for page. The existing surface is
// reused when size, page and kind are unchanged. It returns false when no
// surface could be allocated.
func (s *Session) EnsureSurface(w, h, page int) bool {
	if s.surface != nil && s.surfaceW == w && s.surfaceH == h && s.surfacePage == page && s.surfaceKind == s.kind {
		return true
	}
	s.surface = nil
	s.scaled = nil

	pm, err := allocate(w, h)
	if err != nil {
		s.logger.Warn().Err(err).Msg("print surface unavailable")
		return false
	}
	s.surface = pm
	s.surfaceW, s.surfaceH, s.surfacePage, s.surfaceKind = w, h, page, s.kind
	s.generation++
	return true
}

func allocate(w, h int) (pm *gg.Pixmap, err error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid print surface size %dx%d", w, h)
	}
	defer func() {
		if r := recover(); r != nil {
			pm, err = nil, fmt.Errorf("allocate %dx%d print surface: %v", w, h, r)
		}
	}()
	return gg.NewPixmap(w, h), nil
}

// Surface returns the current print surface, or nil.
func (s *Session) Surface() image.Image {
	if s.surface == nil {
		return nil
	}
	return s.surface
}

// Layout resolves the sheet packing for content.
func (s *Session) Layout(content port.PrintableContent) (pagination.Layout, error) {
	cw, ch := content.PageSize()
	return pagination.Compute(s.job.Params, cw, ch)
}

// SheetCount returns how many sheets content needs with the current job.
func (s *Session) SheetCount(content port.PrintableContent) int {
	l, err := s.Layout(content)
	if err != nil {
		return 0
	}
	return l.SheetCount(content.PageCount())
}

// StartPage opens a new output page sized to the current sheet.
func (s *Session) StartPage() error {
	if !s.running {
		return ErrUnavailable
	}
	sw, sh := s.job.SheetSize()
	return s.backend.startPage(sw, sh)
}

// EndPage closes the current output page.
func (s *Session) EndPage() error {
	if !s.running {
		return ErrUnavailable
	}
	s.sheets++
	return s.backend.endPage()
}

// PrintSpool renders sheet (zero based) of content and writes it out.
func (s *Session) PrintSpool(content port.PrintableContent, sheet int) error {
	if !s.running {
		return ErrUnavailable
	}
	layout, err := s.Layout(content)
	if err != nil {
		return fmt.Errorf("print layout: %w", err)
	}
	pages := layout.PagesOnSheet(sheet, content.PageCount())
	if len(pages) == 0 {
		return fmt.Errorf("sheet %d out of range", sheet)
	}

	res := s.job.Resolution
	w := int(math.Ceil(layout.SheetWidth * res))
	h := int(math.Ceil(layout.SheetHeight * res))
	if !s.EnsureSurface(w, h, sheet) {
		s.abort()
		return ErrUnavailable
	}
	s.surface.Clear(gg.White)
	s.scaled = nil

	flipped := layout.Rotate && s.kind == KindPostScript
	for pos, index := range pages {
		if err := s.renderCell(content, layout, pos, index, flipped); err != nil {
			s.abort()
			return err
		}
	}

	if err := s.StartPage(); err != nil {
		return err
	}
	if err := s.backend.emitSheet(s.surface.ToImage(), layout.SheetWidth, layout.SheetHeight); err != nil {
		s.abort()
		return fmt.Errorf("emit sheet %d: %w", sheet, err)
	}
	if err := s.EndPage(); err != nil {
		return err
	}
	s.logger.Debug().Int("sheet", sheet).Ints("pages", pages).Msg("sheet spooled")
	return nil
}

// renderCell paints one content page into its own cell context, rotated about
// the cell origin when needed, and copies it onto the sheet.
func (s *Session) renderCell(content port.PrintableContent, l pagination.Layout, pos, index int, flipped bool) error {
	res := s.job.Resolution
	cw := int(math.Ceil(l.CellWidth * res))
	ch := int(math.Ceil(l.CellHeight * res))
	cell, err := allocate(cw, ch)
	if err != nil {
		s.logger.Warn().Err(err).Int("page", index).Msg("print cell unavailable")
		return ErrUnavailable
	}
	cell.Clear(gg.White)

	dc := gg.NewContext(cw, ch, gg.WithPixmap(cell))
	defer func() { _ = dc.Close() }()
	dc.Push()
	if l.Rotate {
		dc.Translate(float64(cw), 0)
		dc.Rotate(math.Pi / 2)
	}
	dc.Scale(res*l.Scale, res*l.Scale)
	content.PaintPage(dc, index, s.job.PrintBackgrounds)
	dc.Pop()

	ox, oy := l.CellOrigin(pos, flipped)
	blend(s.surface, cell, int(math.Round(ox*res)), int(math.Round(oy*res)))
	return nil
}

// blend copies src onto dst at (x, y), clipped to dst.
func blend(dst, src *gg.Pixmap, x, y int) {
	dw, dh := dst.Width(), dst.Height()
	sw, sh := src.Width(), src.Height()
	w := min(sw, dw-x)
	h := min(sh, dh-y)
	if x < 0 || y < 0 || w <= 0 || h <= 0 {
		return
	}
	dd, sd := dst.Data(), src.Data()
	for row := 0; row < h; row++ {
		so := row * sw * 4
		do := ((y+row)*dw + x) * 4
		copy(dd[do:do+w*4], sd[so:so+w*4])
	}
}

// ScaledSurface returns a bilinear copy of the print surface at w×h for
// previews. The copy is cached until the size or the surface changes.
func (s *Session) ScaledSurface(w, h int) image.Image {
	if s.surface == nil || w <= 0 || h <= 0 {
		return nil
	}
	if s.scaled != nil && s.scaledW == w && s.scaledH == h {
		return s.scaled
	}
	src := s.surface.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	s.scaled, s.scaledW, s.scaledH = dst, w, h
	return dst
}

// PrintingFinished completes the document and releases the session.
func (s *Session) PrintingFinished() error {
	if !s.running {
		return nil
	}
	err := s.backend.finish()
	if cerr := s.closeOutput(); err == nil {
		err = cerr
	}
	s.logger.Info().Int("sheets", s.sheets).Err(err).Msg("print job finished")
	s.reset()
	if err != nil {
		return fmt.Errorf("finish print job: %w", err)
	}
	return nil
}

func (s *Session) abort() {
	s.logger.Warn().Msg("print job aborted")
	_ = s.closeOutput()
	s.reset()
}

func (s *Session) reset() {
	s.running = false
	s.backend = nil
	s.surface = nil
	s.scaled = nil
}

func (s *Session) closeOutput() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
