// Package content is a small built-in engine behind the content ports. It
// parses HTML with goquery and lays every block out as fixed height lines.
// It is not a layout engine; it gives the page sessions something real to
// load, paint, focus, print and drag.
package content

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bnema/pagecore/internal/domain/entity"
)

// Layout metrics in content pixels.
const (
	LineHeight = 20
	CharWidth  = 8
	Margin     = 16

	inputWidth   = 240
	imageDefault = 3 * LineHeight
)

const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,pre,blockquote,td,th,dt,dd,figcaption"

// boxKind classifies a laid out box.
type boxKind int

const (
	boxText boxKind = iota
	boxHeading
	boxLink
	boxInput
	boxButton
	boxImage
)

type box struct {
	kind  boxKind
	rect  entity.Rect
	text  string
	lines []int // rune count of every wrapped line
	href  string
	src   string
	elem  *Element
}

func (b *box) focusable() bool {
	return b.kind == boxLink || b.kind == boxInput || b.kind == boxButton
}

// document is a parsed page and its layout at one width.
type document struct {
	url     *url.URL
	doc     *goquery.Document
	title   string
	boxes   []*box
	elems   map[*html.Node]*Element
	forms   map[*html.Node]*Form
	width   int
	height  int
	subres  []string
	isBlank bool
}

func parseDocument(data []byte, rawURL string) (*document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		base = &url.URL{}
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if u, err := base.Parse(href); err == nil {
			base = u
		}
	}
	d := &document{
		url:     base,
		doc:     doc,
		title:   strings.TrimSpace(doc.Find("title").First().Text()),
		elems:   make(map[*html.Node]*Element),
		forms:   make(map[*html.Node]*Form),
		isBlank: rawURL == aboutBlank,
	}
	d.subres = d.collectSubresources()
	return d, nil
}

func blankDocument() *document {
	d, _ := parseDocument(nil, aboutBlank)
	return d
}

// resolve makes ref absolute against the document URL.
func (d *document) resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := d.url.Parse(ref)
	if err != nil {
		return ref
	}
	return u.String()
}

func (d *document) collectSubresources() []string {
	var out []string
	add := func(sel, attr string) {
		d.doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if v, ok := s.Attr(attr); ok {
				if u := d.resolve(v); u != "" && !strings.HasPrefix(u, "data:") {
					out = append(out, u)
				}
			}
		})
	}
	add("link[rel=stylesheet][href]", "href")
	add("script[src]", "src")
	add("img[src]", "src")
	add("iframe[src]", "src")
	return out
}

// layout places boxes top to bottom for a viewport width.
func (d *document) layout(width int) {
	if width <= 0 {
		width = 800
	}
	d.width = width
	d.boxes = d.boxes[:0]
	y := Margin
	avail := max(width-2*Margin, CharWidth)

	place := func(b *box, h int) {
		b.rect = entity.NewRect(Margin, y, min(b.rect.Width, avail), h)
		d.boxes = append(d.boxes, b)
		y += h + LineHeight/2
	}

	d.doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		switch {
		case s.Is(blockSelector):
			if s.ParentsFiltered(blockSelector).Length() > 0 {
				return
			}
			text := ownText(s)
			if text == "" {
				return
			}
			kind := boxText
			if strings.HasPrefix(tag, "h") && len(tag) == 2 {
				kind = boxHeading
			}
			b := &box{kind: kind, text: text, rect: entity.Rect{Width: avail}}
			b.lines = wrap(text, avail/CharWidth)
			place(b, len(b.lines)*LineHeight)
		case tag == "a":
			href, ok := s.Attr("href")
			if !ok {
				return
			}
			text := collapse(s.Text())
			if text == "" {
				text = href
			}
			b := &box{kind: boxLink, text: text, href: d.resolve(href), elem: d.element(s)}
			b.lines = wrap(text, avail/CharWidth)
			b.rect.Width = longest(b.lines) * CharWidth
			place(b, len(b.lines)*LineHeight)
		case tag == "input" || tag == "textarea" || tag == "select":
			el := d.element(s)
			if el.InputType() == "hidden" {
				return
			}
			kind := boxInput
			if t := el.InputType(); t == "submit" || t == "button" || t == "reset" {
				kind = boxButton
			}
			h := LineHeight + 4
			if tag == "textarea" {
				h = 3 * LineHeight
			}
			b := &box{kind: kind, elem: el, rect: entity.Rect{Width: inputWidth}}
			place(b, h)
		case tag == "button":
			text := collapse(s.Text())
			b := &box{kind: boxButton, text: text, elem: d.element(s), rect: entity.Rect{Width: max(len(text)*CharWidth+2*CharWidth, 4*CharWidth)}}
			place(b, LineHeight+4)
		case tag == "img":
			src, _ := s.Attr("src")
			w := intAttr(s, "width", 4*imageDefault)
			h := intAttr(s, "height", imageDefault)
			b := &box{kind: boxImage, src: d.resolve(src), text: s.AttrOr("alt", ""), rect: entity.Rect{Width: w}}
			place(b, h)
		}
	})
	d.height = y + Margin
}

// element returns the handle of the node of s. Handles are kept across
// relayouts so edited values survive a resize.
func (d *document) element(s *goquery.Selection) *Element {
	node := s.Get(0)
	if el, ok := d.elems[node]; ok {
		return el
	}
	el := &Element{sel: s, doc: d, value: s.AttrOr("value", "")}
	if goquery.NodeName(s) == "textarea" {
		el.value = s.Text()
	}
	d.elems[node] = el
	return el
}

func (d *document) form(s *goquery.Selection) *Form {
	node := s.Get(0)
	if f, ok := d.forms[node]; ok {
		return f
	}
	f := &Form{sel: s, doc: d}
	d.forms[node] = f
	return f
}

// boxAt returns the topmost box containing p in document coordinates.
func (d *document) boxAt(p entity.Point) *box {
	for i := len(d.boxes) - 1; i >= 0; i-- {
		if d.boxes[i].rect.Contains(p) {
			return d.boxes[i]
		}
	}
	return nil
}

func (d *document) focusables() []*box {
	var out []*box
	for _, b := range d.boxes {
		if b.focusable() {
			out = append(out, b)
		}
	}
	return out
}

// ownText is the text of s without the text of its links, which get their
// own boxes.
func ownText(s *goquery.Selection) string {
	c := s.Clone()
	c.Find("a[href]").Remove()
	return collapse(c.Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wrap splits text into lines of at most width runes on word boundaries and
// returns the rune count of each line.
func wrap(text string, width int) []int {
	width = max(width, 1)
	var lines []int
	cur := 0
	for _, w := range strings.Fields(text) {
		n := len([]rune(w))
		switch {
		case cur == 0:
			cur = n
		case cur+1+n <= width:
			cur += 1 + n
		default:
			lines = append(lines, cur)
			cur = n
		}
		for cur > width {
			lines = append(lines, width)
			cur -= width
		}
	}
	if cur > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

func longest(lines []int) int {
	m := 0
	for _, n := range lines {
		m = max(m, n)
	}
	return max(m, 1)
}

func intAttr(s *goquery.Selection, name string, def int) int {
	v, ok := s.Attr(name)
	if !ok {
		return def
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n <= 0 {
		return def
	}
	return n
}
