package content

import (
	"github.com/gogpu/gg"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// View is the scrollable viewport of a Frame.
type View struct {
	frame   *Frame
	size    entity.Size
	scroll  entity.Point
	hScroll port.ScrollbarMode
	vScroll port.ScrollbarMode
}

var _ port.FrameView = (*View)(nil)

func (v *View) ScrollPosition() entity.Point { return v.scroll }

// SetScrollPosition moves the viewport. The caller clamps.
func (v *View) SetScrollPosition(p entity.Point) { v.scroll = p }

func (v *View) MinimumScrollPosition() entity.Point { return entity.Point{} }

// MaximumScrollPosition is the offset that shows the end of the document.
// Axes with scrolling turned off stay at zero.
func (v *View) MaximumScrollPosition() entity.Point {
	cs := v.ContentsSize()
	p := entity.Point{X: max(cs.Width-v.size.Width, 0), Y: max(cs.Height-v.size.Height, 0)}
	if v.hScroll == port.ScrollbarAlwaysOff {
		p.X = 0
	}
	if v.vScroll == port.ScrollbarAlwaysOff {
		p.Y = 0
	}
	return p
}

func (v *View) VisibleSize() entity.Size { return v.size }

func (v *View) ContentsSize() entity.Size {
	d := v.frame.doc
	if d == nil {
		return v.size
	}
	return entity.Size{Width: max(d.width, v.size.Width), Height: max(d.height, v.size.Height)}
}

// Resize relayouts the document when the width changes.
func (v *View) Resize(size entity.Size) {
	if size == v.size {
		return
	}
	widthChanged := size.Width != v.size.Width
	v.size = size
	if widthChanged {
		v.frame.relayout()
	}
}

func (v *View) SetScrollbarModes(horizontal, vertical port.ScrollbarMode) {
	v.hScroll, v.vScroll = horizontal, vertical
}

// toDocument converts a viewport point to document coordinates.
func (v *View) toDocument(p entity.Point) entity.Point { return p.Add(v.scroll) }

// PaintContents paints the part of the document under dirty, which is in
// viewport coordinates.
func (v *View) PaintContents(dc *gg.Context, dirty entity.Rect, _ port.InterpolationQuality) {
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(float64(dirty.X), float64(dirty.Y), float64(dirty.Width), float64(dirty.Height))
	_ = dc.Fill()

	d := v.frame.doc
	if d == nil {
		return
	}
	dc.Push()
	dc.Translate(float64(-v.scroll.X), float64(-v.scroll.Y))
	area := entity.NewRect(dirty.X+v.scroll.X, dirty.Y+v.scroll.Y, dirty.Width, dirty.Height)
	for _, b := range d.boxes {
		if b.rect.Intersect(area).IsEmpty() {
			continue
		}
		paintBox(dc, b, b == v.frame.focused, true)
	}
	dc.Pop()
}

// paintBox draws b in document coordinates. Text is drawn as bars the width
// of each wrapped line.
func paintBox(dc *gg.Context, b *box, focused, backgrounds bool) {
	x, y := float64(b.rect.X), float64(b.rect.Y)
	w, h := float64(b.rect.Width), float64(b.rect.Height)

	switch b.kind {
	case boxText, boxHeading:
		if b.kind == boxHeading {
			dc.SetRGB(0.1, 0.1, 0.1)
		} else {
			dc.SetRGB(0.35, 0.35, 0.35)
		}
		paintLines(dc, b, x, y)
	case boxLink:
		dc.SetRGB(0.1, 0.3, 0.8)
		paintLines(dc, b, x, y)
		if focused {
			dc.SetLineWidth(1)
			dc.DrawRectangle(x-2, y, w+4, h)
			_ = dc.Stroke()
		}
	case boxInput, boxButton:
		if backgrounds {
			if b.kind == boxButton {
				dc.SetRGB(0.88, 0.88, 0.88)
			} else {
				dc.SetRGB(0.97, 0.97, 0.97)
			}
			dc.DrawRectangle(x, y, w, h)
			_ = dc.Fill()
		}
		if focused {
			dc.SetRGB(0.2, 0.45, 0.9)
			dc.SetLineWidth(2)
		} else {
			dc.SetRGB(0.55, 0.55, 0.55)
			dc.SetLineWidth(1)
		}
		dc.DrawRectangle(x, y, w, h)
		_ = dc.Stroke()
		text := b.text
		if b.elem != nil && b.kind == boxInput {
			text = b.elem.Value()
		}
		if n := len([]rune(text)); n > 0 {
			dc.SetRGB(0.2, 0.2, 0.2)
			bw := min(float64(n*CharWidth), w-8)
			dc.DrawRectangle(x+4, y+h/2-3, bw, 6)
			_ = dc.Fill()
		}
	case boxImage:
		if backgrounds {
			dc.SetRGB(0.85, 0.87, 0.9)
			dc.DrawRectangle(x, y, w, h)
			_ = dc.Fill()
		}
		dc.SetRGB(0.6, 0.62, 0.65)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, w, h)
		dc.DrawLine(x, y, x+w, y+h)
		dc.DrawLine(x+w, y, x, y+h)
		_ = dc.Stroke()
	}
}

func paintLines(dc *gg.Context, b *box, x, y float64) {
	for i, n := range b.lines {
		ly := y + float64(i*LineHeight)
		dc.DrawRectangle(x, ly+LineHeight/2-4, float64(n*CharWidth), 8)
	}
	_ = dc.Fill()
	if b.kind == boxLink {
		for i, n := range b.lines {
			ly := y + float64(i*LineHeight) + LineHeight - 4
			dc.DrawRectangle(x, ly, float64(n*CharWidth), 1)
		}
		_ = dc.Fill()
	}
}
