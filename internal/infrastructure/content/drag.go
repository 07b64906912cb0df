package content

import (
	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
)

// dragController accepts text drops on editable fields.
type dragController struct {
	page *Page

	over     *box
	lastOp   entity.DragOperation
	sourceAt entity.Point
	drops    int
}

var _ port.DragController = (*dragController)(nil)

func (d *dragController) operation(data entity.DragData, p entity.Point) entity.DragOperation {
	if data.IsEmpty() || d.page.closed {
		return entity.DragOperationNone
	}
	b := d.page.main.boxAt(p)
	d.over = b
	if b == nil || b.elem == nil || !b.elem.IsEditable() {
		return entity.DragOperationNone
	}
	return entity.DragOperationCopy
}

func (d *dragController) DragEntered(data entity.DragData, p entity.Point) entity.DragOperation {
	return d.operation(data, p)
}

func (d *dragController) DragUpdated(data entity.DragData, p entity.Point) entity.DragOperation {
	return d.operation(data, p)
}

func (d *dragController) DragExited(entity.DragData, entity.Point) { d.over = nil }

// PerformDrop inserts the dragged text, or the URL when there is none, into
// the field under p.
func (d *dragController) PerformDrop(data entity.DragData, p entity.Point) bool {
	if d.operation(data, p) == entity.DragOperationNone {
		return false
	}
	text := data.Text
	if text == "" {
		text = data.URL
	}
	el := d.over.elem
	el.SetValue(el.Value() + text)
	d.page.main.focus(d.over)
	d.over = nil
	d.drops++
	return true
}

func (d *dragController) DragSourceEndedAt(p entity.Point, op entity.DragOperation) {
	d.sourceAt, d.lastOp = p, op
}
