// Package printing computes how content pages are packed onto printed sheets.
package printing

import (
	"fmt"
	"math"
)

// Gutter is the space between two cells of a sheet (0.2in at 72 units per inch).
const Gutter = 14.4

// ValidPagesPerSheet lists the supported packings.
var ValidPagesPerSheet = []int{1, 2, 4, 6, 9}

// Validate rejects unsupported pages-per-sheet values.
func Validate(pagesPerSheet int) error {
	for _, v := range ValidPagesPerSheet {
		if v == pagesPerSheet {
			return nil
		}
	}
	return fmt.Errorf("unsupported pages per sheet %d (want one of %v)", pagesPerSheet, ValidPagesPerSheet)
}

// NumColumns returns the number of cell columns on a sheet.
func NumColumns(landscape bool, pagesPerSheet int) int {
	switch pagesPerSheet {
	case 2:
		if landscape {
			return 1
		}
		return 2
	case 4:
		return 2
	case 6:
		if landscape {
			return 2
		}
		return 3
	case 9:
		return 3
	default:
		return 1
	}
}

// NumRows returns the number of cell rows on a sheet.
func NumRows(landscape bool, pagesPerSheet int) int {
	switch pagesPerSheet {
	case 2:
		if landscape {
			return 2
		}
		return 1
	case 4:
		return 2
	case 6:
		if landscape {
			return 3
		}
		return 2
	case 9:
		return 3
	default:
		return 1
	}
}

// NeedsRotate reports whether cells are rotated 90 degrees relative to the
// natural content orientation. Only the 2 and 6 packings change the aspect.
func NeedsRotate(_ bool, pagesPerSheet int) bool {
	return pagesPerSheet == 2 || pagesPerSheet == 6
}

// Margins are printable-area insets in paper units.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Params describe the physical sheet.
type Params struct {
	PaperWidth    float64
	PaperHeight   float64
	Margins       Margins
	Landscape     bool
	PagesPerSheet int
}

// SheetSize returns the sheet extents in the requested orientation.
func (p Params) SheetSize() (w, h float64) {
	w, h = p.PaperWidth, p.PaperHeight
	if p.Landscape != (w > h) {
		w, h = h, w
	}
	return w, h
}

// Layout is the resolved packing of content pages on a sheet.
type Layout struct {
	Columns int
	Rows    int
	Rotate  bool
	Scale   float64

	// CellWidth and CellHeight are the scaled cell extents on the sheet.
	CellWidth  float64
	CellHeight float64

	SheetWidth  float64
	SheetHeight float64
	margins     Margins
}

// Compute resolves the layout for content pages of contentW x contentH.
func Compute(p Params, contentW, contentH float64) (Layout, error) {
	if err := Validate(p.PagesPerSheet); err != nil {
		return Layout{}, err
	}
	if contentW <= 0 || contentH <= 0 {
		return Layout{}, fmt.Errorf("invalid content size %.1fx%.1f", contentW, contentH)
	}

	sw, sh := p.SheetSize()
	l := Layout{
		Columns:     NumColumns(p.Landscape, p.PagesPerSheet),
		Rows:        NumRows(p.Landscape, p.PagesPerSheet),
		Rotate:      NeedsRotate(p.Landscape, p.PagesPerSheet),
		SheetWidth:  sw,
		SheetHeight: sh,
		margins:     p.Margins,
	}

	printableW := sw - p.Margins.Left - p.Margins.Right
	printableH := sh - p.Margins.Top - p.Margins.Bottom
	if printableW <= 0 || printableH <= 0 {
		return Layout{}, fmt.Errorf("margins leave no printable area on %.1fx%.1f sheet", sw, sh)
	}

	l.Scale = ScaleFactor(printableW, printableH, contentW, contentH, l.Columns, l.Rows, l.Rotate)

	cw, ch := contentW, contentH
	if l.Rotate {
		cw, ch = ch, cw
	}
	l.CellWidth = cw * l.Scale
	l.CellHeight = ch * l.Scale
	return l, nil
}

// ScaleFactor returns the largest scale at which a cols x rows grid of
// content pages, separated by gutters, fits the printable area.
func ScaleFactor(printableW, printableH, contentW, contentH float64, cols, rows int, rotate bool) float64 {
	if rotate {
		contentW, contentH = contentH, contentW
	}
	availW := printableW - Gutter*float64(cols-1)
	availH := printableH - Gutter*float64(rows-1)
	scaleW := availW / (float64(cols) * contentW)
	scaleH := availH / (float64(rows) * contentH)
	return math.Max(0, math.Min(scaleW, scaleH))
}

// PagesPerSheet returns the number of cells on a sheet.
func (l Layout) PagesPerSheet() int { return l.Columns * l.Rows }

// SheetCount returns how many sheets pageCount content pages need.
func (l Layout) SheetCount(pageCount int) int {
	per := l.PagesPerSheet()
	if pageCount <= 0 || per <= 0 {
		return 0
	}
	return (pageCount + per - 1) / per
}

// PagesOnSheet returns the content page indexes printed on sheet.
func (l Layout) PagesOnSheet(sheet, pageCount int) []int {
	per := l.PagesPerSheet()
	first := sheet * per
	var pages []int
	for i := first; i < first+per && i < pageCount; i++ {
		pages = append(pages, i)
	}
	return pages
}

// CellOrigin returns the top-left corner of cell index (row-major) on the
// sheet. With flipped set the column order is mirrored, which PostScript
// output needs once the sheet itself is rotated.
func (l Layout) CellOrigin(index int, flipped bool) (x, y float64) {
	col := index % l.Columns
	row := index / l.Columns
	if flipped {
		col = l.Columns - 1 - col
	}
	x = l.margins.Left + float64(col)*(l.CellWidth+Gutter)
	y = l.margins.Top + float64(row)*(l.CellHeight+Gutter)
	return x, y
}
