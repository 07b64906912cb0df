// Package damage tracks stale regions of a raster surface on a fixed tile grid
// and coalesces them into rectangular repaint spans.
package damage

import (
	"sort"

	"github.com/bnema/pagecore/internal/domain/entity"
)

// DefaultTileSize is the edge length of a tile in pixels.
const DefaultTileSize = 64

// Visitor receives one finalized span in surface pixels.
type Visitor func(x, y, w, h int)

// tileRect is a half-open rectangle in tile indices.
type tileRect struct {
	x0, y0, x1, y1 int
}

func (r tileRect) union(o tileRect) tileRect {
	return tileRect{
		x0: min(r.x0, o.x0),
		y0: min(r.y0, o.y0),
		x1: max(r.x1, o.x1),
		y1: max(r.y1, o.y1),
	}
}

// Tracker is a bitmap of dirty tiles plus the bounding rect of everything
// marked since the last Clear. It is not safe for concurrent use; the owning
// surface serializes access on the main loop.
type Tracker struct {
	tileSize int
	width    int
	height   int
	tilesX   int
	tilesY   int
	dirty    []bool

	bounds      tileRect
	boundsValid bool
}

// New creates an empty tracker. A non-positive tileSize selects DefaultTileSize.
func New(tileSize int) *Tracker {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Tracker{tileSize: tileSize}
}

// TileSize returns the tile edge length in pixels.
func (t *Tracker) TileSize() int { return t.tileSize }

// Width returns the tracked surface width.
func (t *Tracker) Width() int { return t.width }

// Height returns the tracked surface height.
func (t *Tracker) Height() int { return t.height }

// Rows returns the number of tiles along the x axis.
func (t *Tracker) Rows() int { return t.tilesX }

// Columns returns the number of tiles along the y axis.
func (t *Tracker) Columns() int { return t.tilesY }

// Resize re-derives the tile grid. Any change of dimensions marks the whole
// grid dirty since no tile can be assumed valid afterwards.
func (t *Tracker) Resize(width, height int) {
	if width == t.width && height == t.height {
		return
	}
	t.width = max(width, 0)
	t.height = max(height, 0)
	t.tilesX = entity.CeilDiv(t.width, t.tileSize)
	t.tilesY = entity.CeilDiv(t.height, t.tileSize)
	t.dirty = make([]bool, t.tilesX*t.tilesY)
	t.boundsValid = false
	t.InvalidateAll()
}

// InvalidateAll marks every tile dirty.
func (t *Tracker) InvalidateAll() {
	if t.tilesX == 0 || t.tilesY == 0 {
		return
	}
	for i := range t.dirty {
		t.dirty[i] = true
	}
	t.bounds = tileRect{x0: 0, y0: 0, x1: t.tilesX, y1: t.tilesY}
	t.boundsValid = true
}

// Invalidate marks the tiles covering the pixel rect dirty. The rect is
// clipped to the surface first; nothing happens when the clipped rect is empty.
//
// Clipping compares against the remaining extent rather than summing
// coordinates, so huge sizes never overflow.
func (t *Tracker) Invalidate(x, y, w, h int) {
	if w <= 0 || h <= 0 || x >= t.width || y >= t.height {
		return
	}
	// w and h are positive here, so adding a negative origin cannot overflow.
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = min(w, t.width-x)
	h = min(h, t.height-y)
	if w <= 0 || h <= 0 {
		return
	}

	r := tileRect{
		x0: x / t.tileSize,
		y0: y / t.tileSize,
		x1: entity.CeilDiv(x+w, t.tileSize),
		y1: entity.CeilDiv(y+h, t.tileSize),
	}
	for ty := r.y0; ty < r.y1; ty++ {
		row := ty * t.tilesX
		for tx := r.x0; tx < r.x1; tx++ {
			t.dirty[row+tx] = true
		}
	}

	if t.boundsValid {
		t.bounds = t.bounds.union(r)
	} else {
		t.bounds = r
		t.boundsValid = true
	}
}

// InvalidateRect is Invalidate for an entity.Rect.
func (t *Tracker) InvalidateRect(r entity.Rect) {
	t.Invalidate(r.X, r.Y, r.Width, r.Height)
}

// HasDamage reports whether anything was invalidated since the last Clear.
func (t *Tracker) HasDamage() bool { return t.boundsValid }

// DamagedRect returns the pixel bounding rect of all damage, clipped to the
// surface, or the zero rect when clean.
func (t *Tracker) DamagedRect() entity.Rect {
	if !t.boundsValid {
		return entity.Rect{}
	}
	return t.pixelRect(t.bounds)
}

// IsTileDirty reports the state of a single tile. Out-of-range tiles are clean.
func (t *Tracker) IsTileDirty(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= t.tilesX || ty >= t.tilesY {
		return false
	}
	return t.dirty[ty*t.tilesX+tx]
}

// Clear marks every tile clean.
func (t *Tracker) Clear() {
	for i := range t.dirty {
		t.dirty[i] = false
	}
	t.boundsValid = false
	t.bounds = tileRect{}
}

// VisitDamagedTiles reports dirty tiles as rectangular spans, top to bottom
// then left to right. Horizontal runs of a row are merged with the open span
// above them only when both share the same x range, so the result covers all
// damage but is not guaranteed to be the minimal rect set.
func (t *Tracker) VisitDamagedTiles(visit Visitor) {
	if !t.boundsValid || visit == nil {
		return
	}

	var done []tileRect
	open := make(map[int]tileRect)

	for ty := t.bounds.y0; ty < t.bounds.y1; ty++ {
		next := make(map[int]tileRect, len(open))
		row := ty * t.tilesX

		for tx := t.bounds.x0; tx < t.bounds.x1; {
			if !t.dirty[row+tx] {
				tx++
				continue
			}
			start := tx
			for tx < t.bounds.x1 && t.dirty[row+tx] {
				tx++
			}

			if prev, ok := open[start]; ok && prev.x1 == tx {
				prev.y1 = ty + 1
				next[start] = prev
				delete(open, start)
				continue
			}
			next[start] = tileRect{x0: start, y0: ty, x1: tx, y1: ty + 1}
		}

		for _, r := range open {
			done = append(done, r)
		}
		open = next
	}
	for _, r := range open {
		done = append(done, r)
	}

	sort.Slice(done, func(i, j int) bool {
		if done[i].y0 != done[j].y0 {
			return done[i].y0 < done[j].y0
		}
		return done[i].x0 < done[j].x0
	})

	for _, r := range done {
		p := t.pixelRect(r)
		if p.IsEmpty() {
			continue
		}
		visit(p.X, p.Y, p.Width, p.Height)
	}
}

func (t *Tracker) pixelRect(r tileRect) entity.Rect {
	x := r.x0 * t.tileSize
	y := r.y0 * t.tileSize
	w := min(r.x1*t.tileSize, t.width) - x
	h := min(r.y1*t.tileSize, t.height) - y
	if w <= 0 || h <= 0 {
		return entity.Rect{}
	}
	return entity.NewRect(x, y, w, h)
}
