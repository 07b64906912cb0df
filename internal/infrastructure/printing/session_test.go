package printing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pagination "github.com/bnema/pagecore/internal/domain/printing"
)

type fakeDocument struct {
	pages   int
	w, h    float64
	painted []int
}

func (d *fakeDocument) PageCount() int               { return d.pages }
func (d *fakeDocument) PageSize() (float64, float64) { return d.w, d.h }
func (d *fakeDocument) PaintPage(dc *gg.Context, index int, _ bool) {
	d.painted = append(d.painted, index)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(10, 10, d.w-20, d.h-20)
	_ = dc.Fill()
}

func letter(pagesPerSheet int, landscape bool) pagination.Params {
	return pagination.Params{
		PaperWidth:    612,
		PaperHeight:   792,
		Margins:       pagination.Margins{Left: 18, Top: 18, Right: 18, Bottom: 18},
		Landscape:     landscape,
		PagesPerSheet: pagesPerSheet,
	}
}

func newJob(buf *bytes.Buffer, pagesPerSheet int, landscape bool) Job {
	return Job{
		Params:     letter(pagesPerSheet, landscape),
		Output:     buf,
		Resolution: 0.25,
	}
}

func TestPDF_WritesOnePagePerSheet(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	require.NoError(t, s.PDFStart(newJob(&buf, 4, false)))

	doc := &fakeDocument{pages: 6, w: 612, h: 792}
	require.Equal(t, 2, s.SheetCount(doc))
	for sheet := 0; sheet < s.SheetCount(doc); sheet++ {
		require.NoError(t, s.PrintSpool(doc, sheet))
	}
	require.NoError(t, s.PrintingFinished())

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, doc.painted)
	assert.False(t, s.Running())
}

func TestPostScript_EmitsOrientationComments(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	job := newJob(&buf, 1, true)
	job.Level = 3
	require.NoError(t, s.PrintStart(job))

	doc := &fakeDocument{pages: 1, w: 792, h: 612}
	require.NoError(t, s.PrintSpool(doc, 0))
	require.NoError(t, s.PrintingFinished())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-3.0\n"))
	assert.Contains(t, out, "%%LanguageLevel: 3\n")
	assert.Contains(t, out, "%%Orientation: Landscape\n")
	assert.Contains(t, out, "%%PageOrientation: Landscape\n")
	assert.Contains(t, out, "%%PageBoundingBox: 0 0 612 792\n", "sideways sheets keep portrait paper")
	assert.Contains(t, out, "612.00 0 translate 90 rotate\n")
	assert.Contains(t, out, "%%Pages: 1\n")
	assert.True(t, strings.HasSuffix(out, "%%EOF\n"))
}

func TestPostScript_RejectsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	job := newJob(&buf, 1, false)
	job.Level = 1
	assert.Error(t, NewSession(zerolog.Nop()).PrintStart(job))
}

func TestStart_RejectsBadPagesPerSheet(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewSession(zerolog.Nop()).PDFStart(newJob(&buf, 3, false)))
}

func TestStart_CreatesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	s := NewSession(zerolog.Nop())
	require.NoError(t, s.PDFStart(Job{Params: letter(1, false), OutputFile: path, Resolution: 0.1}))
	require.NoError(t, s.PrintSpool(&fakeDocument{pages: 1, w: 612, h: 792}, 0))
	require.NoError(t, s.PrintingFinished())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestEnsureSurface_IsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	require.NoError(t, s.PDFStart(newJob(&buf, 1, false)))

	require.True(t, s.EnsureSurface(100, 50, 0))
	first := s.Surface()
	require.True(t, s.EnsureSurface(100, 50, 0))
	assert.Same(t, first, s.Surface())
	assert.Equal(t, 1, s.generation)

	require.True(t, s.EnsureSurface(100, 50, 1))
	assert.Equal(t, 2, s.generation, "a new page recreates the surface")
	require.True(t, s.EnsureSurface(120, 50, 1))
	assert.Equal(t, 3, s.generation)
}

func TestEnsureSurface_KindChangeRecreates(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	require.NoError(t, s.PDFStart(newJob(&buf, 1, false)))
	require.True(t, s.EnsureSurface(10, 10, 0))

	require.NoError(t, s.PrintStart(newJob(&buf, 1, false)))
	require.True(t, s.EnsureSurface(10, 10, 0))
	assert.Equal(t, 2, s.generation)
}

func TestEnsureSurface_FailureLeavesNoSurface(t *testing.T) {
	s := NewSession(zerolog.Nop())
	assert.False(t, s.EnsureSurface(0, 10, 0))
	assert.Nil(t, s.Surface())
}

func TestPrintSpool_WithoutJobIsUnavailable(t *testing.T) {
	s := NewSession(zerolog.Nop())
	err := s.PrintSpool(&fakeDocument{pages: 1, w: 10, h: 10}, 0)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestPrintSpool_SheetOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	require.NoError(t, s.PDFStart(newJob(&buf, 2, false)))
	assert.Error(t, s.PrintSpool(&fakeDocument{pages: 2, w: 612, h: 792}, 1))
}

func TestPrintSpool_RotatedCellsAreDrawn(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	job := newJob(&buf, 2, false)
	job.Resolution = 0.5
	require.NoError(t, s.PDFStart(job))

	doc := &fakeDocument{pages: 2, w: 612, h: 792}
	require.NoError(t, s.PrintSpool(doc, 0))

	img := s.Surface()
	require.NotNil(t, img)
	dark := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		for x := b.Min.X; x < b.Max.X; x += 4 {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0x8000 {
				dark++
			}
		}
	}
	assert.Positive(t, dark)
}

func TestScaledSurface_IsCachedPerSize(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(zerolog.Nop())
	require.NoError(t, s.PDFStart(newJob(&buf, 1, false)))
	assert.Nil(t, s.ScaledSurface(10, 10))

	require.True(t, s.EnsureSurface(40, 40, 0))
	a := s.ScaledSurface(20, 20)
	require.NotNil(t, a)
	assert.Equal(t, 20, a.Bounds().Dx())
	assert.Same(t, a, s.ScaledSurface(20, 20))

	c := s.ScaledSurface(30, 10)
	assert.NotSame(t, a, c)
	assert.Equal(t, 30, c.Bounds().Dx())
}
