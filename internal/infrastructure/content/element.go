package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/pagecore/internal/application/port"
)

// Element is a handle on a parsed node.
type Element struct {
	sel   *goquery.Selection
	doc   *document
	value string
}

var (
	_ port.Element = (*Element)(nil)
	_ port.Form    = (*Form)(nil)
)

func (e *Element) TagName() string { return goquery.NodeName(e.sel) }

// InputType is the lowercased type of an input, "text" when absent. Other
// elements report their tag name.
func (e *Element) InputType() string {
	switch e.TagName() {
	case "input":
		t := strings.ToLower(strings.TrimSpace(e.sel.AttrOr("type", "")))
		if t == "" {
			return "text"
		}
		return t
	case "textarea":
		return "textarea"
	default:
		return e.TagName()
	}
}

func (e *Element) Name() string { return e.sel.AttrOr("name", "") }

func (e *Element) Value() string { return e.value }

func (e *Element) SetValue(v string) { e.value = v }

// IsEditable reports whether the element accepts typed text.
func (e *Element) IsEditable() bool {
	if _, disabled := e.sel.Attr("disabled"); disabled {
		return false
	}
	if _, ro := e.sel.Attr("readonly"); ro {
		return false
	}
	switch e.TagName() {
	case "textarea":
		return true
	case "input":
		switch e.InputType() {
		case "hidden", "submit", "button", "reset", "checkbox", "radio", "image", "file", "range", "color":
			return false
		}
		return true
	}
	_, ok := e.sel.Attr("contenteditable")
	return ok
}

// Form returns the enclosing form, or the one named by the form attribute.
func (e *Element) Form() port.Form {
	if id, ok := e.sel.Attr("form"); ok {
		if f := e.doc.doc.Find("form#" + id).First(); f.Length() > 0 {
			return e.doc.form(f)
		}
	}
	f := e.sel.Closest("form")
	if f.Length() == 0 {
		return nil
	}
	return e.doc.form(f)
}

// Form is a parsed form.
type Form struct {
	sel *goquery.Selection
	doc *document
}

// Action is the absolute submission URL.
func (f *Form) Action() string {
	action := f.sel.AttrOr("action", "")
	if action == "" {
		return f.doc.url.String()
	}
	return f.doc.resolve(action)
}

// Elements returns the controls of the form in document order.
func (f *Form) Elements() []port.Element {
	var out []port.Element
	f.sel.Find("input,textarea,select,button").Each(func(_ int, s *goquery.Selection) {
		out = append(out, f.doc.element(s))
	})
	return out
}
