package state

import "image"

// Text is a single line of text whose baseline starts at the anchor.
// Both anchors are always the same point.
type Text struct {
	base
	text string
	font Font
}

func NewText(style Style, x, y int, text string, f Font) *Text {
	return &Text{base: newBase(style, x, y, x, y), text: text, font: f}
}

func (t *Text) Kind() Kind      { return KindText }
func (t *Text) Content() string { return t.text }
func (t *Text) Font() Font      { return t.font }

// Bounds covers the measured glyph run: it extends right by the advance
// width and up by one line height from the anchor.
func (t *Text) Bounds() Rect {
	w, h := t.font.Measure(t.text)
	return Rect{Left: t.start.X, Top: t.start.Y - h, Right: t.start.X + w, Bottom: t.start.Y}
}

func (t *Text) ContainsPoint(x, y int) bool {
	return t.Bounds().Contains(x, y)
}

func (t *Text) IsResizeHandle(x, y int) bool {
	return t.selected && t.Bounds().NearCorner(x, y)
}

// SetEndPoint is a no-op: text has no extent of its own to drag.
func (t *Text) SetEndPoint(x, y int) {}

func (t *Text) Draw(s Surface) {
	s.SetColor(t.style.Color)
	s.Text(t.text, float64(t.start.X), float64(t.start.Y), t.font)
	if t.selected {
		drawSelection(s, t.Bounds())
	}
}

func (t *Text) Clone() Shape {
	return &Text{base: t.copyBase(), text: t.text, font: t.font}
}

// Image places a raster, scaled to width x height, at the top-left of its
// anchors. The raster itself is never modified and is shared by copies.
type Image struct {
	base
	img           image.Image
	width, height int
}

// NewImage spans img across the box from (x1, y1) to (x2, y2).
func NewImage(img image.Image, x1, y1, x2, y2 int) *Image {
	return &Image{
		base:   newBase(DefaultStyle(), x1, y1, x2, y2),
		img:    img,
		width:  abs(x2 - x1),
		height: abs(y2 - y1),
	}
}

func (m *Image) Kind() Kind          { return KindImage }
func (m *Image) Raster() image.Image { return m.img }
func (m *Image) Size() (w, h int)    { return m.width, m.height }

func (m *Image) Bounds() Rect {
	left, top := min(m.start.X, m.end.X), min(m.start.Y, m.end.Y)
	return Rect{Left: left, Top: top, Right: left + m.width, Bottom: top + m.height}
}

func (m *Image) ContainsPoint(x, y int) bool {
	return m.Bounds().Contains(x, y)
}

func (m *Image) IsResizeHandle(x, y int) bool {
	return m.selected && m.Bounds().NearCorner(x, y)
}

func (m *Image) SetEndPoint(x, y int) {
	m.end = image.Pt(x, y)
	m.width = abs(m.end.X - m.start.X)
	m.height = abs(m.end.Y - m.start.Y)
}

func (m *Image) Draw(s Surface) {
	b := m.Bounds()
	if m.img != nil && m.width > 0 && m.height > 0 {
		s.Image(m.img, float64(b.Left), float64(b.Top), float64(m.width), float64(m.height))
	}
	if m.selected {
		drawSelection(s, b)
	}
}

func (m *Image) Clone() Shape {
	return &Image{base: m.copyBase(), img: m.img, width: m.width, height: m.height}
}
